package domain

import (
	"time"

	"github.com/google/uuid"
)

type EscortStatus string

// fulfilled and expired exist in the schema but no operation sets them:
// expiry is a read-time visibility effect, never a write.
const (
	EscortActive    EscortStatus = "active"
	EscortFulfilled EscortStatus = "fulfilled"
	EscortExpired   EscortStatus = "expired"
)

type EscortRequest struct {
	ID        uuid.UUID    `json:"id"`
	Message   string       `json:"message"`
	Lat       float64      `json:"latitude"`
	Lng       float64      `json:"longitude"`
	Status    EscortStatus `json:"status"`
	UserID    uuid.UUID    `json:"user_id"`
	CreatedAt time.Time    `json:"created_at"`
}
