package ports

import (
	"context"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// JobFilter carries the query parameters for listing jobs. All predicate
// fields are optional and combine with logical AND.
type JobFilter struct {
	Search   string         // case-insensitive substring over title, company, description
	Location string         // case-insensitive substring match
	JobType  domain.JobType // exact match
	Skip     int64
	Limit    int64 // 0 = no limit
}

// JobRepository defines persistence operations for postings.
type JobRepository interface {
	Insert(ctx context.Context, job *domain.Job) error
	FindByID(ctx context.Context, id string) (*domain.Job, error)
	// FindByIDs returns the jobs for the given ids, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Job, error)
	// ListActive returns active jobs matching filter, newest first.
	ListActive(ctx context.Context, filter JobFilter) ([]*domain.Job, error)
	// ListByEmployer returns all of an employer's jobs (any state), newest first.
	ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error)
	// CountByEmployer counts an employer's jobs, optionally active only.
	CountByEmployer(ctx context.Context, employerID string, activeOnly bool) (int64, error)
	SetActive(ctx context.Context, id string, active bool) error
}
