package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	GenerationPending = "pending"
	GenerationReady   = "ready"
)

// PathGeneration tracks one "AI" path request from submission until the
// scheduled build task fires and registers the path in the catalog.
type PathGeneration struct {
	ID          uuid.UUID  `json:"id"`
	Query       string     `json:"query"`
	RequestedBy uuid.UUID  `json:"requested_by"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	PathID      *uuid.UUID `json:"path_id,omitempty"`
}
