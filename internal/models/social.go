package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestRejected = "rejected"
)

// FriendRequest status is monotonic: once accepted or rejected it
// never returns to pending.
type FriendRequest struct {
	ID           uuid.UUID `json:"id"`
	SenderID     uuid.UUID `json:"sender_id"`
	ReceiverID   uuid.UUID `json:"receiver_id"`
	SenderName   string    `json:"sender_name"`
	SenderAvatar string    `json:"sender_avatar,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r FriendRequest) Resolved() bool {
	return r.Status != RequestPending
}
