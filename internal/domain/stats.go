package domain

import (
	"time"

	"github.com/google/uuid"
)

// OverviewCounts are plain aggregate numbers for the admin dashboard.
type OverviewCounts struct {
	TotalReports  int64 `json:"total_reports"`
	ActiveReports int64 `json:"active_reports"`
	TotalEscorts  int64 `json:"total_requests"`
	ActiveEscorts int64 `json:"active_requests"`
	ReportsWeek   int64 `json:"reports_week"`
}

// AdminReport and AdminEscort are the admin-facing rows of the full
// streetwise overview: every stored record, live or not, with the
// computed activity flags.
type AdminReport struct {
	ID          uuid.UUID  `json:"id"`
	Type        ReportType `json:"type"`
	Description string     `json:"description"`
	Lat         float64    `json:"latitude"`
	Lng         float64    `json:"longitude"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	AgeHours    float64    `json:"age_hours"`
	IsActive    bool       `json:"is_active"`
	Status      string     `json:"status"`
}

type AdminEscort struct {
	ID         uuid.UUID    `json:"id"`
	Message    string       `json:"message"`
	Lat        float64      `json:"latitude"`
	Lng        float64      `json:"longitude"`
	UserID     uuid.UUID    `json:"user_id"`
	Status     EscortStatus `json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	AgeMinutes float64      `json:"age_minutes"`
	IsActive   bool         `json:"is_active"`
}

type StreetwiseSummary struct {
	TotalReports  int `json:"total_reports"`
	ActiveReports int `json:"active_reports"`
	TotalEscorts  int `json:"total_requests"`
	ActiveEscorts int `json:"active_requests"`
}

type StreetwiseOverview struct {
	Reports []AdminReport     `json:"security_reports"`
	Escorts []AdminEscort     `json:"escort_requests"`
	Summary StreetwiseSummary `json:"summary"`
}
