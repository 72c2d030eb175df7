package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"streetwise/internal/config"
	"streetwise/internal/domain"
	"streetwise/pkg/e"
)

// AlertSender drains the alert queue and delivers new-report payloads
// to the campus security webhook. Delivery is at-most-once with a few
// bounded retries; a dropped alert never blocks the API.
type AlertSender struct {
	logger *slog.Logger
	cfg    config.AlertConfig
	queue  AlertDequeue
	http   *http.Client
}

func NewAlertSender(logger *slog.Logger, cfg config.AlertConfig, q AlertDequeue) *AlertSender {
	return &AlertSender{
		logger: logger,
		cfg:    cfg,
		queue:  q,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *AlertSender) Run(ctx context.Context) {
	s.logger.Info("alertSender STARTED", slog.String("url", s.cfg.WebhookURL))

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("alertSender STOPPED", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrAlertQueueEmpty) {
				continue
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending alert", slog.String("report_id", payload.ReportID.String()))
		s.sendWithRetry(ctx, payload)
	}
}

func (s *AlertSender) sendWithRetry(ctx context.Context, p domain.AlertPayload) {
	const maxRetries = 3

	body, err := json.Marshal(p)
	if err != nil {
		s.logger.Error("marshal alert payload failed", slog.String("error", err.Error()))
		return
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create alert request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("alert delivery failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.WebhookURL),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}
