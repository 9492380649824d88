package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LearnerRole = "learner"
	AdminRole   = "admin"
)

type User struct {
	ID       uuid.UUID
	Name     string
	Email    string
	Password string
	Avatar   string
	Provider string
	IsOnline bool
	JoinDate time.Time
	Roles    []string
}

// Profile is the public projection of a user shown in the friends
// and chat panels. It never carries credentials.
type Profile struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Avatar   string    `json:"avatar,omitempty"`
	IsOnline bool      `json:"is_online"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:       u.ID,
		Name:     u.Name,
		Avatar:   u.Avatar,
		IsOnline: u.IsOnline,
	}
}
