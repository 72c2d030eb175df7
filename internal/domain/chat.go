package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage belongs to one security report. Messages survive the
// parent report's live window in storage but are unreachable once the
// report has decayed.
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	ReportID  uuid.UUID `json:"report_id"`
	Message   string    `json:"message"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
