package ports

import (
	"context"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// JobInput carries the fields of a new posting.
type JobInput struct {
	Title        string
	Company      string
	Location     string
	JobType      string
	SalaryRange  string
	Description  string
	Requirements []string
	Benefits     []string
}

// ListJobsInput carries the public search parameters.
type ListJobsInput struct {
	Search   string
	Location string
	JobType  string
	Skip     int64
	Limit    int64 // 0 = return the full result set
}

// JobService defines use-case operations for postings.
type JobService interface {
	// PostJob creates a posting on behalf of employerID, which must resolve
	// to an employer account.
	PostJob(ctx context.Context, employerID string, input JobInput) (*domain.Job, error)
	// ListJobs returns active jobs matching the filters, newest first.
	ListJobs(ctx context.Context, input ListJobsInput) ([]*domain.Job, error)
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error)
	// SetActive toggles a posting's visibility. Only the owning employer may
	// call it; anyone else gets domain.ErrForbidden.
	SetActive(ctx context.Context, jobID string, active bool, actingEmployerID string) error
}
