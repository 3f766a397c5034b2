package ports

import (
	"context"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	// Insert persists a new user. A uniqueness violation on the normalized
	// email surfaces as domain.ErrEmailTaken.
	Insert(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users for the given ids, keyed by id. Missing ids
	// are simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	// UpdateProfile applies the non-nil fields of update. Identity fields
	// (id, email, user_type, password hash) are not reachable through it.
	UpdateProfile(ctx context.Context, id string, update domain.ProfileUpdate) error
}
