package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportType string

// Known report types. Stored values are not restricted to this list:
// the create path accepts any non-empty type string and unknown types
// fall back to the default intensity.
const (
	ReportTheft      ReportType = "theft"
	ReportHarassment ReportType = "harassment"
	ReportLights     ReportType = "lights"
	ReportOther      ReportType = "other"
)

// SecurityReport is an append-only geo event. It is never mutated after
// creation; it leaves the live map purely by aging past the report
// window, and stays queryable through the archive listing.
type SecurityReport struct {
	ID          uuid.UUID  `json:"id"`
	Type        ReportType `json:"type"`
	Description string     `json:"description"`
	Lat         float64    `json:"latitude"`
	Lng         float64    `json:"longitude"`
	UserID      *uuid.UUID `json:"user_id,omitempty"` // nil for anonymous reports
	CreatedAt   time.Time  `json:"created_at"`
}
