package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageTypeText  = "text"
	MessageTypeVoice = "voice"
)

// Message is immutable once appended to the session log. Duration is
// the voice clip length in seconds.
type Message struct {
	ID         uuid.UUID `json:"id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Content    string    `json:"content"`
	Type       string    `json:"type"`
	Timestamp  time.Time `json:"timestamp"`
	VoiceURL   string    `json:"voice_url,omitempty"`
	Duration   int       `json:"duration,omitempty"`
}

func (m Message) Between(a, b uuid.UUID) bool {
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}
