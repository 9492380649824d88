package models

import (
	"time"

	"github.com/google/uuid"
)

// ModuleProgress records one learner's state for one module. Completed
// only ever transitions false to true; for quiz modules Score holds the
// submitted result in percent.
type ModuleProgress struct {
	UserID    uuid.UUID `json:"user_id"`
	PathID    uuid.UUID `json:"path_id"`
	ModuleID  uuid.UUID `json:"module_id"`
	Completed bool      `json:"completed"`
	Submitted bool      `json:"submitted"`
	Score     float64   `json:"score"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PathProgress struct {
	PathID         uuid.UUID `json:"path_id"`
	CompletedCount int       `json:"completed_count"`
	TotalCount     int       `json:"total_count"`
	Percentage     float64   `json:"percentage"`
}
