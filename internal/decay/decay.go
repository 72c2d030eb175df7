// Package decay computes the read-time lifecycle of geo events: elapsed
// age, the linear heat weight of security reports and the live/archived
// split for both event kinds. Everything here is a pure function of
// (created_at, now); no derived state is ever stored or swept by a
// timer, so visibility is always consistent with the wall clock at the
// moment it is asked for.
package decay

import (
	"time"

	"streetwise/internal/domain"
)

const (
	// ReportWindow is how long a security report stays on the live map
	// and keeps its chat open.
	ReportWindow = 6 * time.Hour

	// EscortWindow is how long an escort request stays listed.
	EscortWindow = 30 * time.Minute
)

// Age returns now - createdAt, clamped at zero. A record stamped ahead
// of the caller's clock reads as brand new, not as an error.
func Age(createdAt, now time.Time) time.Duration {
	if now.Before(createdAt) {
		return 0
	}
	return now.Sub(createdAt)
}

// Weight is the linear heat of a security report: 1.0 at creation,
// exactly 0 at the report window, clamped below that.
func Weight(age time.Duration) float64 {
	w := 1.0 - age.Hours()/ReportWindow.Hours()
	if w < 0 {
		return 0
	}
	return w
}

// Intensity is a static severity hint per report type, independent of
// decay. Unknown types get the default.
func Intensity(t domain.ReportType) float64 {
	switch t {
	case domain.ReportTheft, domain.ReportHarassment:
		return 0.8
	default:
		return 0.5
	}
}

// ReportLive says whether a report belongs on the live map. The weight
// check makes the boundary strict: at exactly the window edge the
// weight is 0 and the report has already moved to the archive.
func ReportLive(createdAt, now time.Time) bool {
	age := Age(createdAt, now)
	return age <= ReportWindow && Weight(age) > 0
}

// ReportChatOpen gates chat access to the parent report. It admits the
// exact window boundary; past it, chat reads and writes both 404.
func ReportChatOpen(createdAt, now time.Time) bool {
	return Age(createdAt, now) <= ReportWindow
}

// ReportArchived is the complement of ReportLive: every stored report
// is in exactly one of the two listings at any instant.
func ReportArchived(createdAt, now time.Time) bool {
	return !ReportLive(createdAt, now)
}

// EscortLive requires both the stored status and the time window; a
// fulfilled request never lists regardless of age.
func EscortLive(status domain.EscortStatus, createdAt, now time.Time) bool {
	return status == domain.EscortActive && Age(createdAt, now) <= EscortWindow
}
