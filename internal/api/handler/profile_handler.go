package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// ProfileHandler serves public profiles and profile updates.
type ProfileHandler struct {
	profiles ports.ProfileService
}

func NewProfileHandler(profiles ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /api/users/:id.
//
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.profiles.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update handles PUT /api/users/:id/profile.
//
// @Summary      Update profile fields
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "User id"
// @Param        body  body      updateProfileRequest  true  "Partial profile fields"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id}/profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	err := h.profiles.Update(c.Request().Context(), c.Param("id"), ports.ProfileUpdateInput{
		Fields: domain.ProfileUpdate{
			Title:        req.Title,
			Bio:          req.Bio,
			Location:     req.Location,
			Company:      req.Company,
			Skills:       req.Skills,
			Experience:   req.Experience,
			Education:    req.Education,
			ProfileImage: req.ProfileImage,
			Resume:       req.Resume,
		},
		ID:       req.ID,
		Email:    req.Email,
		UserType: req.UserType,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "profile updated successfully"})
}
