package domain

import (
	"time"

	"github.com/google/uuid"
)

// AlertPayload is pushed onto the alert queue when a security report is
// created and delivered to the campus security webhook asynchronously.
type AlertPayload struct {
	ReportID    uuid.UUID  `json:"report_id"`
	Type        ReportType `json:"type"`
	Description string     `json:"description"`
	Lat         float64    `json:"latitude"`
	Lng         float64    `json:"longitude"`
	CreatedAt   time.Time  `json:"created_at"`
}
