package handler

import (
	"time"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=6"`
	Name     string `json:"name"      validate:"required"`
	UserType string `json:"user_type" validate:"required,oneof=job_seeker employer"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userResponse is the public view of an account. It never carries the
// password hash; the mapper below is the only way a User reaches the wire.
type userResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	UserType     string    `json:"user_type"`
	Title        string    `json:"title,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	Company      string    `json:"company,omitempty"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience,omitempty"`
	Education    string    `json:"education,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return userResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		UserType:     string(u.UserType),
		Title:        u.Title,
		Bio:          u.Bio,
		Location:     u.Location,
		Company:      u.Company,
		Skills:       skills,
		Experience:   u.Experience,
		Education:    u.Education,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt.UTC(),
	}
}
