package models

import (
	"time"

	"github.com/google/uuid"
)

// Certificate is immutable once issued.
type Certificate struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	PathID         uuid.UUID `json:"path_id"`
	PathTitle      string    `json:"path_title"`
	CompletionDate time.Time `json:"completion_date"`
	Grade          int       `json:"grade"`
}
