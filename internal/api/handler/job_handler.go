package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hirehub/hirehub-api/internal/api/metrics"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// JobHandler handles posting, search and visibility of jobs.
type JobHandler struct {
	jobs ports.JobService
}

func NewJobHandler(jobs ports.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List handles GET /api/jobs — public search over active postings.
//
// @Summary      List and search active jobs
// @Tags         jobs
// @Produce      json
// @Param        search    query     string  false  "Substring match on title, company, description"
// @Param        location  query     string  false  "Substring match on location"
// @Param        job_type  query     string  false  "Exact job type"  Enums(full-time, part-time, contract, remote)
// @Param        skip      query     int     false  "Offset"
// @Param        limit     query     int     false  "Page size (0 = all)"
// @Success      200       {array}   jobResponse
// @Router       /api/jobs [get]
func (h *JobHandler) List(c echo.Context) error {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)

	jobs, err := h.jobs.ListJobs(c.Request().Context(), ports.ListJobsInput{
		Search:   c.QueryParam("search"),
		Location: c.QueryParam("location"),
		JobType:  c.QueryParam("job_type"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(jobs))
}

// Get handles GET /api/jobs/:id.
//
// @Summary      Get a job by id
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job id"
// @Success      200  {object}  jobResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/jobs/{id} [get]
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.jobs.GetJob(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponse(job))
}

// Create handles POST /api/jobs — employers only.
//
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        employer_id  query     string            false  "Acting employer (when no Bearer token)"
// @Param        body         body      createJobRequest  true   "Job fields"
// @Success      201          {object}  jobResponse
// @Failure      400          {object}  errorResponse
// @Failure      403          {object}  errorResponse
// @Router       /api/jobs [post]
func (h *JobHandler) Create(c echo.Context) error {
	employerID, err := actorID(c, "employer_id")
	if err != nil {
		return err
	}

	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobs.PostJob(c.Request().Context(), employerID, ports.JobInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		JobType:      req.JobType,
		SalaryRange:  req.SalaryRange,
		Description:  req.Description,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
	})
	if err != nil {
		return err
	}

	metrics.JobsPostedTotal.WithLabelValues(string(job.JobType)).Inc()

	return c.JSON(http.StatusCreated, toJobResponse(job))
}

// ListByEmployer handles GET /api/jobs/employer/:employerId.
//
// @Summary      List an employer's jobs
// @Tags         jobs
// @Produce      json
// @Param        employerId  path      string  true  "Employer id"
// @Success      200         {array}   jobResponse
// @Router       /api/jobs/employer/{employerId} [get]
func (h *JobHandler) ListByEmployer(c echo.Context) error {
	jobs, err := h.jobs.ListByEmployer(c.Request().Context(), c.Param("employerId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toJobResponses(jobs))
}

// SetActive handles PUT /api/jobs/:id/active — owner-only visibility toggle.
//
// @Summary      Activate or deactivate a job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id           path      string               true   "Job id"
// @Param        employer_id  query     string               false  "Acting employer (when no Bearer token)"
// @Param        body         body      setJobActiveRequest  true   "Desired state"
// @Success      200          {object}  messageResponse
// @Failure      403          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /api/jobs/{id}/active [put]
func (h *JobHandler) SetActive(c echo.Context) error {
	employerID, err := actorID(c, "employer_id")
	if err != nil {
		return err
	}

	var req setJobActiveRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.jobs.SetActive(c.Request().Context(), c.Param("id"), *req.Active, employerID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "job updated"})
}
