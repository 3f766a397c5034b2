package domain

import (
	"regexp"
	"strings"
	"time"
)

// UserType is the closed set of account roles.
type UserType string

const (
	UserTypeJobSeeker UserType = "job_seeker"
	UserTypeEmployer  UserType = "employer"
)

// Valid reports whether t is a known role.
func (t UserType) Valid() bool {
	return t == UserTypeJobSeeker || t == UserTypeEmployer
}

// MinPasswordLen is the registration password policy.
const MinPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User models an account. UserType is immutable after creation and the
// password hash is never serialized.
type User struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	Name         string   `json:"name"`
	UserType     UserType `json:"user_type"`

	// Profile fields, mutable via profile update only.
	Title        string    `json:"title,omitempty"`
	Bio          string    `json:"bio,omitempty"`
	Location     string    `json:"location,omitempty"`
	Company      string    `json:"company,omitempty"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience,omitempty"`
	Education    string    `json:"education,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Resume       string    `json:"resume,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	Title        *string
	Bio          *string
	Location     *string
	Company      *string
	Skills       *[]string
	Experience   *string
	Education    *string
	ProfileImage *string
	Resume       *string
}

// Empty reports whether the update would change nothing.
func (p ProfileUpdate) Empty() bool {
	return p.Title == nil && p.Bio == nil && p.Location == nil && p.Company == nil &&
		p.Skills == nil && p.Experience == nil && p.Education == nil &&
		p.ProfileImage == nil && p.Resume == nil
}

// NormalizeEmail lowercases and trims an email address. Uniqueness is enforced
// on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateNewUser checks registration input against the account policy:
// syntactic email, minimum password length, known role.
func ValidateNewUser(email, password string, userType UserType) error {
	if !emailPattern.MatchString(NormalizeEmail(email)) {
		return Validationf("email is not valid")
	}
	if len(password) < MinPasswordLen {
		return Validationf("password must be at least %d characters", MinPasswordLen)
	}
	if !userType.Valid() {
		return Validationf("user_type must be %q or %q", UserTypeJobSeeker, UserTypeEmployer)
	}
	return nil
}
