package memory

import (
	"PathForge/internal/models"
	"context"
	"sync"

	"github.com/google/uuid"
)

type progressKey struct {
	userID   uuid.UUID
	moduleID uuid.UUID
}

// ProgressStore keeps per-learner module state separate from the
// immutable catalog, keyed by (user, module).
type ProgressStore struct {
	mu       sync.RWMutex
	progress map[progressKey]models.ModuleProgress
	answers  map[progressKey]map[uuid.UUID]int
}

func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		progress: make(map[progressKey]models.ModuleProgress),
		answers:  make(map[progressKey]map[uuid.UUID]int),
	}
}

func (s *ProgressStore) ModuleProgress(ctx context.Context, userID, moduleID uuid.UUID) (models.ModuleProgress, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mp, ok := s.progress[progressKey{userID: userID, moduleID: moduleID}]
	return mp, ok, nil
}

func (s *ProgressStore) SaveModuleProgress(ctx context.Context, mp models.ModuleProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.progress[progressKey{userID: mp.UserID, moduleID: mp.ModuleID}] = mp
	return nil
}

func (s *ProgressStore) PathModuleProgress(ctx context.Context, userID, pathID uuid.UUID) ([]models.ModuleProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []models.ModuleProgress
	for _, mp := range s.progress {
		if mp.UserID == userID && mp.PathID == pathID {
			result = append(result, mp)
		}
	}
	return result, nil
}

func (s *ProgressStore) RecordAnswer(ctx context.Context, userID, moduleID, questionID uuid.UUID, option int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := progressKey{userID: userID, moduleID: moduleID}
	if s.answers[key] == nil {
		s.answers[key] = make(map[uuid.UUID]int)
	}
	s.answers[key][questionID] = option
	return nil
}

func (s *ProgressStore) Answers(ctx context.Context, userID, moduleID uuid.UUID) (map[uuid.UUID]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recorded := s.answers[progressKey{userID: userID, moduleID: moduleID}]
	answers := make(map[uuid.UUID]int, len(recorded))
	for questionID, option := range recorded {
		answers[questionID] = option
	}
	return answers, nil
}
