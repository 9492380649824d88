package memory

import (
	"PathForge/internal/models"
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MessageStore is the session-wide ordered message log. Append order
// breaks timestamp ties, so thread reads are deterministic.
type MessageStore struct {
	mu  sync.RWMutex
	log []models.Message
}

func NewMessageStore() *MessageStore {
	return &MessageStore{}
}

func (s *MessageStore) Append(ctx context.Context, msg models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = append(s.log, msg)
	return nil
}

// Between returns every message exchanged between exactly the two
// users, in chronological order. The log itself is never modified.
func (s *MessageStore) Between(ctx context.Context, a, b uuid.UUID) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var thread []models.Message
	for _, msg := range s.log {
		if msg.Between(a, b) {
			thread = append(thread, msg)
		}
	}
	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].Timestamp.Before(thread[j].Timestamp)
	})
	return thread, nil
}
