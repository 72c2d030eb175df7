package admin

import (
	"context"
	"log/slog"
	"net/http"

	"streetwise/internal/domain"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Stats interface {
	Overview(ctx context.Context) (*domain.OverviewCounts, error)
	Streetwise(ctx context.Context) (*domain.StreetwiseOverview, error)
}

type Handler struct {
	logger *slog.Logger
	Stats  Stats
}

func NewHandler(logger *slog.Logger, stats Stats) *Handler {
	return &Handler{logger: logger, Stats: stats}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AdminStats serves the cached aggregate counters.
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Stats.Overview(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, counts)
}

// AdminStreetwise serves the full map overview: every stored report and
// escort request with read-time activity flags.
func (h *Handler) AdminStreetwise(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	overview, err := h.Stats.Streetwise(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("streetwise overview served",
		slog.Int("reports", overview.Summary.TotalReports),
		slog.Int("escorts", overview.Summary.TotalEscorts),
	)
	h.writeJSON(w, http.StatusOK, overview)
}
