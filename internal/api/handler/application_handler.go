package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hirehub/hirehub-api/internal/api/metrics"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// ApplicationHandler handles application submission and review.
type ApplicationHandler struct {
	apps ports.ApplicationService
}

func NewApplicationHandler(apps ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// Apply handles POST /api/applications — job seekers only.
//
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        applicant_id  query     string        false  "Acting applicant (when no Bearer token)"
// @Param        body          body      applyRequest  true   "Application"
// @Success      201           {object}  applicationResponse
// @Failure      403           {object}  errorResponse
// @Failure      404           {object}  errorResponse
// @Failure      409           {object}  errorResponse
// @Router       /api/applications [post]
func (h *ApplicationHandler) Apply(c echo.Context) error {
	applicantID, err := actorID(c, "applicant_id")
	if err != nil {
		return err
	}

	var req applyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.apps.Apply(c.Request().Context(), ports.ApplyInput{
		JobID:       req.JobID,
		ApplicantID: applicantID,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()

	return c.JSON(http.StatusCreated, toApplicationResponse(*result))
}

// ListForUser handles GET /api/applications/user/:userId.
//
// @Summary      List a user's applications with job summaries
// @Tags         applications
// @Produce      json
// @Param        userId  path      string  true  "Applicant id"
// @Success      200     {array}   applicationResponse
// @Router       /api/applications/user/{userId} [get]
func (h *ApplicationHandler) ListForUser(c echo.Context) error {
	items, err := h.apps.ListForApplicant(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponses(items))
}

// ListForJob handles GET /api/applications/job/:jobId.
//
// @Summary      List a job's applications with applicant summaries
// @Tags         applications
// @Produce      json
// @Param        jobId  path      string  true  "Job id"
// @Success      200    {array}   applicationResponse
// @Router       /api/applications/job/{jobId} [get]
func (h *ApplicationHandler) ListForJob(c echo.Context) error {
	items, err := h.apps.ListForJob(c.Request().Context(), c.Param("jobId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toApplicationResponses(items))
}

// UpdateStatus handles PUT /api/applications/:id/status — owning employer only.
//
// @Summary      Update an application's review status
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id           path      string                          true   "Application id"
// @Param        employer_id  query     string                          false  "Acting employer (when no Bearer token)"
// @Param        body         body      updateApplicationStatusRequest  true   "New status"
// @Success      200          {object}  messageResponse
// @Failure      403          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /api/applications/{id}/status [put]
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	employerID, err := actorID(c, "employer_id")
	if err != nil {
		return err
	}

	var req updateApplicationStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.apps.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status, employerID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "application status updated"})
}
