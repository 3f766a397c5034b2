package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// ProfileService reads and mutates user profiles.
type ProfileService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewProfileService(users ports.UserRepository, log zerolog.Logger) *ProfileService {
	return &ProfileService{users: users, log: log}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// Update applies a partial profile update. Attempts to change identity
// fields are rejected outright rather than silently dropped, so a client
// bug surfaces instead of half-applying.
func (s *ProfileService) Update(ctx context.Context, userID string, input ports.ProfileUpdateInput) error {
	switch {
	case input.ID != nil:
		return domain.Validationf("id cannot be changed")
	case input.Email != nil:
		return domain.Validationf("email cannot be changed")
	case input.UserType != nil:
		return domain.Validationf("user_type cannot be changed")
	}
	if input.Fields.Empty() {
		return domain.Validationf("no profile fields to update")
	}

	// Existence check first so a missing user maps to 404, not a no-op write.
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.users.UpdateProfile(ctx, userID, input.Fields); err != nil {
		return err
	}
	s.log.Info().Str("user_id", userID).Msg("profile updated")
	return nil
}
