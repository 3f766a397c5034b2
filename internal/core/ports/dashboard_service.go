package ports

import (
	"context"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// SeekerStats summarizes a job seeker's applications by status.
type SeekerStats struct {
	TotalApplications int64 `json:"total_applications"`
	Pending           int64 `json:"pending"`
	Shortlisted       int64 `json:"shortlisted"`
}

// EmployerStats summarizes an employer's postings and inbound applications.
type EmployerStats struct {
	TotalJobs         int64 `json:"total_jobs"`
	ActiveJobs        int64 `json:"active_jobs"`
	TotalApplications int64 `json:"total_applications"`
}

// Stats is the role-shaped dashboard summary; exactly one side is set.
type Stats struct {
	Seeker   *SeekerStats   `json:"seeker,omitempty"`
	Employer *EmployerStats `json:"employer,omitempty"`
}

// DashboardService computes per-user dashboard summaries.
type DashboardService interface {
	Stats(ctx context.Context, userID string, userType domain.UserType) (*Stats, error)
}
