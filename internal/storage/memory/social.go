package memory

import (
	"PathForge/internal/app_errors"
	"PathForge/internal/models"
	"context"
	"sync"

	"github.com/google/uuid"
)

// SocialStore holds friend requests and the symmetric friendship
// edges produced by accepting them.
type SocialStore struct {
	mu       sync.RWMutex
	requests map[uuid.UUID]models.FriendRequest
	order    []uuid.UUID
	friends  map[uuid.UUID][]uuid.UUID
}

func NewSocialStore() *SocialStore {
	return &SocialStore{
		requests: make(map[uuid.UUID]models.FriendRequest),
		friends:  make(map[uuid.UUID][]uuid.UUID),
	}
}

func (s *SocialStore) CreateRequest(ctx context.Context, req models.FriendRequest) (*models.FriendRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	s.requests[req.ID] = req
	s.order = append(s.order, req.ID)
	return &req, nil
}

func (s *SocialStore) RequestByID(ctx context.Context, id uuid.UUID) (*models.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	req, ok := s.requests[id]
	if !ok {
		return nil, app_errors.ErrRequestNotFound
	}
	return &req, nil
}

func (s *SocialStore) SetRequestStatus(ctx context.Context, id uuid.UUID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	req, ok := s.requests[id]
	if !ok {
		return app_errors.ErrRequestNotFound
	}
	req.Status = status
	s.requests[id] = req
	return nil
}

// PendingBetween reports whether an unresolved request exists between
// the pair, in either direction.
func (s *SocialStore) PendingBetween(ctx context.Context, a, b uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, req := range s.requests {
		if req.Status != models.RequestPending {
			continue
		}
		if (req.SenderID == a && req.ReceiverID == b) || (req.SenderID == b && req.ReceiverID == a) {
			return true, nil
		}
	}
	return false, nil
}

func (s *SocialStore) PendingForReceiver(ctx context.Context, userID uuid.UUID) ([]models.FriendRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var pending []models.FriendRequest
	for _, id := range s.order {
		req := s.requests[id]
		if req.ReceiverID == userID && req.Status == models.RequestPending {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

func (s *SocialStore) AddFriendship(ctx context.Context, a, b uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !containsID(s.friends[a], b) {
		s.friends[a] = append(s.friends[a], b)
	}
	if !containsID(s.friends[b], a) {
		s.friends[b] = append(s.friends[b], a)
	}
	return nil
}

func (s *SocialStore) AreFriends(ctx context.Context, a, b uuid.UUID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return containsID(s.friends[a], b), nil
}

func (s *SocialStore) FriendIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]uuid.UUID, len(s.friends[userID]))
	copy(ids, s.friends[userID])
	return ids, nil
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
