package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/passaqui/passaqui-api/internal/core/domain"
	"github.com/passaqui/passaqui-api/internal/core/ports"
)

// AuthService implements signup and login against the user collection.
//
// The repo may be nil when the process started without a reachable store; in
// that degraded mode every operation fails with domain.ErrStoreUnavailable
// rather than panicking.
type AuthService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, logger: logger}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, error) {
	if s.repo == nil {
		return "", domain.ErrStoreUnavailable
	}
	if !input.Status.Valid() {
		return "", domain.ErrInvalidStatus
	}

	// Application-level duplicate check. A concurrent signup can still slip
	// past it; the unique index on email catches the loser of that race and
	// the repository maps the duplicate-key error back to ErrEmailTaken.
	_, err := s.repo.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		return "", domain.ErrEmailTaken
	case !errors.Is(err, domain.ErrUserNotFound):
		return "", err
	}

	user := &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		Location:  input.Location,
		Status:    input.Status,
		Reason:    input.Reason,
		Password:  input.Password,
		IsActive:  true,
	}

	id, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", err
	}

	s.logger.Info().Str("user_id", id).Str("location", user.Location).Msg("account created")
	return id, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByCredentials(ctx, email, password)
	if err != nil {
		// Unknown email and wrong password collapse into the same error so
		// the response never leaks whether an account exists.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	return user, nil
}
