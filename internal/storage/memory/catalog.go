package memory

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"context"
	"sync"

	"github.com/google/uuid"
)

// CatalogStore holds the learning-path catalog. Paths are treated as
// immutable once added; generated paths are appended at the end.
type CatalogStore struct {
	mu    sync.RWMutex
	paths map[uuid.UUID]models.LearningPath
	order []uuid.UUID
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{paths: make(map[uuid.UUID]models.LearningPath)}
}

func (s *CatalogStore) AddPath(ctx context.Context, path models.LearningPath) (*models.LearningPath, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if path.ID == uuid.Nil {
		path.ID = uuid.New()
	}
	if _, exists := s.paths[path.ID]; !exists {
		s.order = append(s.order, path.ID)
	}
	s.paths[path.ID] = path
	return &path, nil
}

func (s *CatalogStore) PathByID(ctx context.Context, id uuid.UUID) (*models.LearningPath, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	path, ok := s.paths[id]
	if !ok {
		return nil, app_errors.ErrPathNotFound
	}
	return &path, nil
}

func (s *CatalogStore) ListPaths(ctx context.Context) ([]models.LearningPath, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]models.LearningPath, 0, len(s.order))
	for _, id := range s.order {
		paths = append(paths, s.paths[id])
	}
	return paths, nil
}
