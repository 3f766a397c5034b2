package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hirehub/hirehub-api/internal/api/middleware"
	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// DashboardHandler serves per-role dashboard summaries.
type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats handles GET /api/dashboard/stats. The response shape depends on the
// role: {total_applications, pending, shortlisted} for seekers,
// {total_jobs, active_jobs, total_applications} for employers.
//
// @Summary      Dashboard stats for a user
// @Tags         dashboard
// @Produce      json
// @Param        user_id    query     string  false  "User id (when no Bearer token)"
// @Param        user_type  query     string  false  "Role"  Enums(job_seeker, employer)
// @Success      200        {object}  ports.SeekerStats
// @Failure      400        {object}  errorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	userID, err := actorID(c, "user_id")
	if err != nil {
		return err
	}

	userType := domain.UserType(c.QueryParam("user_type"))
	if id, ok := middleware.FromContext(c); ok && id.UserType.Valid() {
		userType = id.UserType
	}

	stats, err := h.dashboard.Stats(c.Request().Context(), userID, userType)
	if err != nil {
		return err
	}

	if stats.Seeker != nil {
		return c.JSON(http.StatusOK, stats.Seeker)
	}
	return c.JSON(http.StatusOK, stats.Employer)
}
