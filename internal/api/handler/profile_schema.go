package handler

// updateProfileRequest is a partial update: absent fields stay untouched.
// The identity fields are declared so an attempt to change them is rejected
// with a validation error rather than silently dropped.
type updateProfileRequest struct {
	Title        *string   `json:"title"`
	Bio          *string   `json:"bio"`
	Location     *string   `json:"location"`
	Company      *string   `json:"company"`
	Skills       *[]string `json:"skills"`
	Experience   *string   `json:"experience"`
	Education    *string   `json:"education"`
	ProfileImage *string   `json:"profile_image"`
	Resume       *string   `json:"resume"`

	// Immutable; rejected when present.
	ID       *string `json:"id"`
	Email    *string `json:"email"`
	UserType *string `json:"user_type"`
}
