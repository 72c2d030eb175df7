package domain

import (
	"time"

	"github.com/google/uuid"
)

// LiveReport is a security report inside its live window, shaped for
// the heat map. DecayWeight and Intensity are recomputed on every read
// and never stored.
type LiveReport struct {
	ID          uuid.UUID  `json:"id"`
	Type        ReportType `json:"type"`
	Description string     `json:"description"`
	Lat         float64    `json:"latitude"`
	Lng         float64    `json:"longitude"`
	DecayWeight float64    `json:"decay_weight"`
	Intensity   float64    `json:"intensity"`
	AgeHours    float64    `json:"age_hours"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ArchivedReport carries no decay weight: once past the live window a
// report is plain historical record, not graded heat.
type ArchivedReport struct {
	ID          uuid.UUID  `json:"id"`
	Type        ReportType `json:"type"`
	Description string     `json:"description"`
	Lat         float64    `json:"latitude"`
	Lng         float64    `json:"longitude"`
	AgeHours    float64    `json:"age_hours"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
}

type LiveEscort struct {
	ID         uuid.UUID `json:"id"`
	Message    string    `json:"message"`
	Lat        float64   `json:"latitude"`
	Lng        float64   `json:"longitude"`
	AgeMinutes float64   `json:"age_minutes"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserActivity is a student's own submissions, visible regardless of
// the live windows.
type UserActivity struct {
	Reports []SecurityReport `json:"security_reports"`
	Escorts []EscortRequest  `json:"escort_requests"`
}
