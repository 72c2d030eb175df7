package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"streetwise/internal/domain"
	"streetwise/pkg/e"
	"streetwise/pkg/validator"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	users    UserRepository
	sessions SessionStore
	logger   *slog.Logger
}

func NewAuthService(users UserRepository, sessions SessionStore, logger *slog.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *authService) SignUp(ctx context.Context, req domain.SignUpRequest) (*domain.User, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, e.Wrap("auth.SignUp.hash", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleStudent,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, e.ErrUniqueViolation) {
			return nil, fmt.Errorf("%w: email already registered", e.ErrConflict)
		}
		return nil, err
	}

	s.logger.Info("user signed up", slog.String("id", user.ID.String()))
	return user, nil
}

func (s *authService) LogIn(ctx context.Context, req domain.LogInRequest) (string, domain.Actor, error) {
	if err := validator.ValidateStruct(req); err != nil {
		return "", domain.Actor{}, fmt.Errorf("%w: %s", e.ErrInvalidInput, err)
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return "", domain.Actor{}, e.ErrUnauthorized
		}
		return "", domain.Actor{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", domain.Actor{}, e.ErrUnauthorized
	}

	token, err := newSessionToken()
	if err != nil {
		return "", domain.Actor{}, e.Wrap("auth.LogIn.token", err)
	}

	actor := domain.Actor{UserID: user.ID, Role: user.Role}
	if err := s.sessions.Save(ctx, token, actor); err != nil {
		return "", domain.Actor{}, err
	}

	s.logger.Info("user logged in", slog.String("id", user.ID.String()), slog.String("role", string(user.Role)))
	return token, actor, nil
}

func (s *authService) LogOut(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

func (s *authService) CurrentUser(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	if actor.UserID == uuid.Nil {
		return nil, e.ErrUnauthorized
	}
	return s.users.GetByID(ctx, actor.UserID)
}

func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
