package ports

import (
	"context"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// ProfileUpdateInput carries a partial profile update. The immutable fields
// are present so the service can reject attempts to change them explicitly
// instead of dropping them silently.
type ProfileUpdateInput struct {
	Fields domain.ProfileUpdate

	// Rejected when non-nil.
	ID       *string
	Email    *string
	UserType *string
}

// ProfileService reads and mutates user profiles.
type ProfileService interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, input ProfileUpdateInput) error
}
