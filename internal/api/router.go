package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"streetwise/internal/api/handlers/http/admin"
	"streetwise/internal/api/handlers/http/auth"
	"streetwise/internal/api/handlers/http/student"
	"streetwise/internal/api/handlers/http/system"
	"streetwise/internal/config"
	"streetwise/internal/middleware"
	"streetwise/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(cfg *config.Config, logger *slog.Logger, svc *service.Service, sessions middleware.SessionLookup) *Server {
	studentHandler := student.NewHandler(logger, svc.ReportService, svc.EscortService, svc.ChatService, svc.ActivityService)
	adminHandler := admin.NewHandler(logger, svc.StatsService)
	authHandler := auth.NewHandler(logger, svc.AuthService)
	systemHandler := system.NewHandler(logger)

	r := InitRouter(studentHandler, adminHandler, authHandler, systemHandler, sessions, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	studentHandler *student.Handler,
	adminHandler *admin.Handler,
	authHandler *auth.Handler,
	systemHandler *system.Handler,
	sessions middleware.SessionLookup,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.Authenticate(sessions, logger))

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/auth", func(ar chi.Router) {
			ar.With(middleware.Limit(5, 10, 10*time.Minute, logger)).Post("/signup", authHandler.SignUp)
			ar.With(middleware.Limit(5, 10, 10*time.Minute, logger)).Post("/login", authHandler.LogIn)
			ar.Post("/logout", authHandler.LogOut)
			ar.Get("/me", authHandler.Me)
		})

		api.Route("/security-reports", func(sr chi.Router) {
			// The archive is the only public listing; everything live
			// (heat map, chat) needs a student session.
			sr.Get("/archive", studentHandler.ReportArchiveList)

			sr.Group(func(g chi.Router) {
				g.Use(middleware.RequireStudent)

				g.With(middleware.Limit(10, 20, 5*time.Minute, logger)).Post("/", studentHandler.ReportCreate)
				g.Get("/", studentHandler.ReportLiveList)

				g.Route("/{id}/messages", func(cr chi.Router) {
					cr.Get("/", studentHandler.ChatList)
					cr.Post("/", studentHandler.ChatPost)
				})
			})
		})

		api.Route("/escort-requests", func(er chi.Router) {
			er.Use(middleware.RequireStudent)

			er.Post("/", studentHandler.EscortCreate)
			er.Get("/", studentHandler.EscortLiveList)
		})

		api.With(middleware.RequireStudent).Get("/me/activity", studentHandler.MyActivity)

		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.RequireAdmin)
			ar.Use(middleware.Limit(2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.AdminStats)
			ar.Get("/streetwise", adminHandler.AdminStreetwise)
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
