package memory

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// UserStore keeps every account in process memory. Iteration order is
// insertion order so the directory endpoint is stable.
type UserStore struct {
	mu      sync.RWMutex
	users   map[uuid.UUID]models.User
	byEmail map[string]uuid.UUID
	order   []uuid.UUID
}

func NewUserStore() *UserStore {
	return &UserStore{
		users:   make(map[uuid.UUID]models.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (s *UserStore) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(user.Email)
	if _, exists := s.byEmail[email]; exists {
		return nil, app_errors.ErrUserExists
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.Email = email
	s.users[user.ID] = user
	s.byEmail[email] = user.ID
	s.order = append(s.order, user.ID)
	return &user, nil
}

func (s *UserStore) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, app_errors.ErrUserNotFound
	}
	return &user, nil
}

func (s *UserStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, app_errors.ErrUserNotFound
	}
	user := s.users[id]
	return &user, nil
}

func (s *UserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]models.User, 0, len(s.order))
	for _, id := range s.order {
		users = append(users, s.users[id])
	}
	return users, nil
}

func (s *UserStore) SetOnline(ctx context.Context, id uuid.UUID, online bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return app_errors.ErrUserNotFound
	}
	user.IsOnline = online
	s.users[id] = user
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
