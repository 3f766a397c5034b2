package ports

import (
	"context"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	UserType string
}

// AuthResult is returned on successful registration or login. Token is a
// signed JWT carrying the user's id and role; clients that still pass ids
// explicitly may ignore it.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements registration and credential checks.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
