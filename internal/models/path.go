package models

import (
	"github.com/google/uuid"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"

	ModuleTypeVideo   = "video"
	ModuleTypeReading = "reading"
	ModuleTypeQuiz    = "quiz"
)

// LearningPath is an immutable catalog entry. Per-user completion is
// tracked separately in the progress store, never on the path itself.
type LearningPath struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Duration      string    `json:"duration"`
	Level         string    `json:"level"`
	Modules       []Module  `json:"modules"`
	EnrolledCount int       `json:"enrolled_count"`
	Rating        float64   `json:"rating"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
}

type Module struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Duration    string    `json:"duration"`
	Type        string    `json:"type"`
	Content     string    `json:"content,omitempty"`
	Quiz        *Quiz     `json:"quiz,omitempty"`
}

type Quiz struct {
	ID        uuid.UUID  `json:"id"`
	Questions []Question `json:"questions"`
}

type Question struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty"`
}

func (p LearningPath) ModuleByID(moduleID uuid.UUID) (Module, bool) {
	for _, m := range p.Modules {
		if m.ID == moduleID {
			return m, true
		}
	}
	return Module{}, false
}
