package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"streetwise/internal/domain"
	"streetwise/internal/service"
	mock_service "streetwise/internal/service/mocks"
	"streetwise/pkg/e"
)

func TestEscortService_Create_StartsActive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}

	repo := mock_service.NewMockEscortRepository(ctrl)

	var stored *domain.EscortRequest
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.EscortRequest) error {
			stored = r
			return nil
		}).
		Times(1)

	svc := service.NewEscortService(repo, testLogger(), fixedClock(now))

	id, err := svc.Create(context.Background(), domain.CreateEscortRequest{
		Message: "walk me from the gym",
		Lat:     55.75,
		Lng:     37.61,
	}, actor)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if stored == nil || stored.ID != id {
		t.Fatalf("escort request was not persisted with the returned id")
	}
	if stored.Status != domain.EscortActive {
		t.Fatalf("new request must start active, got %q", stored.Status)
	}
	if stored.UserID != actor.UserID {
		t.Fatalf("request not attributed to the actor")
	}
	if !stored.CreatedAt.Equal(now) {
		t.Fatalf("expected server timestamp %v, got %v", now, stored.CreatedAt)
	}
}

func TestEscortService_Create_AnonymousRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockEscortRepository(ctrl)

	svc := service.NewEscortService(repo, testLogger(), nil)

	_, err := svc.Create(context.Background(), domain.CreateEscortRequest{
		Message: "walk me",
		Lat:     55.75,
		Lng:     37.61,
	}, domain.Actor{})
	if !errors.Is(err, e.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestEscortService_Create_EmptyMessageRejected(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock_service.NewMockEscortRepository(ctrl)

	svc := service.NewEscortService(repo, testLogger(), nil)

	actor := domain.Actor{UserID: uuid.New(), Role: domain.RoleStudent}
	_, err := svc.Create(context.Background(), domain.CreateEscortRequest{Lat: 55.75, Lng: 37.61}, actor)
	if !errors.Is(err, e.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEscortService_Live_WindowAndStatus(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	userID := uuid.New()

	fresh := &domain.EscortRequest{
		ID: uuid.New(), Status: domain.EscortActive, UserID: userID,
		CreatedAt: now.Add(-5 * time.Minute),
	}
	stale := &domain.EscortRequest{
		ID: uuid.New(), Status: domain.EscortActive, UserID: userID,
		CreatedAt: now.Add(-(30*time.Minute + time.Second)),
	}
	fulfilled := &domain.EscortRequest{
		ID: uuid.New(), Status: domain.EscortFulfilled, UserID: userID,
		CreatedAt: now.Add(-time.Minute),
	}

	repo := mock_service.NewMockEscortRepository(ctrl)
	repo.EXPECT().
		ListActiveSince(gomock.Any(), now.Add(-30*time.Minute)).
		Return([]*domain.EscortRequest{fresh, stale, fulfilled}, nil).
		Times(1)

	svc := service.NewEscortService(repo, testLogger(), fixedClock(now))

	live, err := svc.Live(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(live) != 1 {
		t.Fatalf("expected only the fresh active request, got %d", len(live))
	}
	if live[0].ID != fresh.ID {
		t.Fatalf("wrong request listed: %v", live[0].ID)
	}
	if live[0].AgeMinutes != 5.0 {
		t.Fatalf("age minutes: got %v want 5.0", live[0].AgeMinutes)
	}
	if !live[0].IsActive {
		t.Fatalf("live request must be flagged active")
	}
}

func TestEscortService_Live_RepoErrorPropagated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("boom")

	repo := mock_service.NewMockEscortRepository(ctrl)
	repo.EXPECT().ListActiveSince(gomock.Any(), gomock.Any()).Return(nil, wantErr).Times(1)

	svc := service.NewEscortService(repo, testLogger(), nil)

	_, err := svc.Live(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected err=%v got=%v", wantErr, err)
	}
}
