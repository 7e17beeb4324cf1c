package ports

import (
	"context"

	"github.com/passaqui/passaqui-api/internal/core/domain"
)

// UserRepository is the gateway to the user collection of the document store.
// Every call is a single network round-trip; there is no buffering and no
// retry. Implementations surface connection loss as domain.ErrStoreUnavailable.
type UserRepository interface {
	// Create persists a validated user and returns the generated identifier.
	Create(ctx context.Context, user *domain.User) (string, error)
	// FindByEmail returns the first user whose email matches exactly, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByCredentials matches email and password simultaneously with a
	// single exact-equality filter, or returns domain.ErrUserNotFound.
	FindByCredentials(ctx context.Context, email, password string) (*domain.User, error)
}
