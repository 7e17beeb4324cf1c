package ports

import (
	"context"

	"github.com/passaqui/passaqui-api/internal/core/domain"
)

// SignupInput carries a schema-validated signup payload into the service.
type SignupInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
	Location  string
	Status    domain.Status
	Reason    string
	Password  string
}

type AuthService interface {
	// Signup creates an account and returns its generated identifier.
	Signup(ctx context.Context, input SignupInput) (string, error)
	// Login returns the stored user on an exact email+password match.
	Login(ctx context.Context, email, password string) (*domain.User, error)
}
