package domain

import (
	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
}

// Actor is the authenticated caller resolved from the session token.
// It travels on the request context; there is no ambient session state.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}

func (a Actor) IsStudent() bool { return a.Role == RoleStudent }
func (a Actor) IsAdmin() bool   { return a.Role == RoleAdmin }
