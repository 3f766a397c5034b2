package handler

import (
	"time"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

type createJobRequest struct {
	Title        string   `json:"title"        validate:"required"`
	Company      string   `json:"company"      validate:"required"`
	Location     string   `json:"location"     validate:"required"`
	JobType      string   `json:"job_type"     validate:"required,oneof=full-time part-time contract remote"`
	SalaryRange  string   `json:"salary_range"`
	Description  string   `json:"description"  validate:"required"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}

type setJobActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type jobResponse struct {
	ID           string    `json:"id"`
	EmployerID   string    `json:"employer_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Location     string    `json:"location"`
	JobType      string    `json:"job_type"`
	SalaryRange  string    `json:"salary_range,omitempty"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Benefits     []string  `json:"benefits"`
	PostedAt     time.Time `json:"posted_at"`
	IsActive     bool      `json:"is_active"`
}

func toJobResponse(j *domain.Job) jobResponse {
	return jobResponse{
		ID:           j.ID,
		EmployerID:   j.EmployerID,
		Title:        j.Title,
		Company:      j.Company,
		Location:     j.Location,
		JobType:      string(j.JobType),
		SalaryRange:  j.SalaryRange,
		Description:  j.Description,
		Requirements: j.Requirements,
		Benefits:     j.Benefits,
		PostedAt:     j.PostedAt.UTC(),
		IsActive:     j.IsActive,
	}
}

func toJobResponses(jobs []*domain.Job) []jobResponse {
	out := make([]jobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = toJobResponse(j)
	}
	return out
}
