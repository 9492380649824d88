package memory

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"context"
	"sync"

	"github.com/google/uuid"
)

type GenerationStore struct {
	mu          sync.Mutex
	generations map[uuid.UUID]models.PathGeneration
}

func NewGenerationStore() *GenerationStore {
	return &GenerationStore{generations: make(map[uuid.UUID]models.PathGeneration)}
}

func (s *GenerationStore) CreateGeneration(ctx context.Context, gen models.PathGeneration) (*models.PathGeneration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen.ID == uuid.Nil {
		gen.ID = uuid.New()
	}
	s.generations[gen.ID] = gen
	return &gen, nil
}

func (s *GenerationStore) GenerationByID(ctx context.Context, id uuid.UUID) (*models.PathGeneration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen, ok := s.generations[id]
	if !ok {
		return nil, app_errors.ErrGenerationNotFound
	}
	return &gen, nil
}

func (s *GenerationStore) MarkReady(ctx context.Context, id, pathID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	gen, ok := s.generations[id]
	if !ok {
		return app_errors.ErrGenerationNotFound
	}
	gen.Status = models.GenerationReady
	gen.PathID = &pathID
	s.generations[id] = gen
	return nil
}
