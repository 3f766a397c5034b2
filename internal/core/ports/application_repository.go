package ports

import (
	"context"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	// Insert persists a new application. A concurrent or repeated apply for
	// the same (job_id, applicant_id) pair surfaces as domain.ErrAlreadyApplied,
	// backed by a unique compound index rather than a read-then-write check.
	Insert(ctx context.Context, app *domain.Application) error
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	// ListByApplicant returns a seeker's applications, newest first.
	ListByApplicant(ctx context.Context, applicantID string) ([]*domain.Application, error)
	// ListByJob returns a job's applications, newest first.
	ListByJob(ctx context.Context, jobID string) ([]*domain.Application, error)
	// CountByApplicant counts a seeker's applications; empty status counts all.
	CountByApplicant(ctx context.Context, applicantID string, status domain.ApplicationStatus) (int64, error)
	// CountByJobs counts applications across the given jobs.
	CountByJobs(ctx context.Context, jobIDs []string) (int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
}
