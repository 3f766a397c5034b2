package ports

import (
	"context"

	"github.com/hirehub/hirehub-api/internal/core/domain"
)

// ApplyInput carries an application submission.
type ApplyInput struct {
	JobID       string
	ApplicantID string
	CoverLetter string
}

// EnrichedApplication is an application joined with job or applicant summary
// fields so callers never need a second round trip to render it. Job fields
// are filled for applicant-facing listings, applicant fields for
// employer-facing ones.
type EnrichedApplication struct {
	Application domain.Application

	JobTitle string
	Company  string

	ApplicantName     string
	ApplicantEmail    string
	ApplicantTitle    string
	ApplicantLocation string
	ApplicantSkills   []string
}

// ApplicationService defines use-case operations for applications.
type ApplicationService interface {
	// Apply submits an application. The job must exist, the applicant must be
	// a job seeker, and a repeat apply for the same pair fails with
	// domain.ErrAlreadyApplied.
	Apply(ctx context.Context, input ApplyInput) (*EnrichedApplication, error)
	// ListForApplicant returns a seeker's applications joined with job title
	// and company.
	ListForApplicant(ctx context.Context, applicantID string) ([]EnrichedApplication, error)
	// ListForJob returns a job's applications joined with applicant summaries.
	ListForJob(ctx context.Context, jobID string) ([]EnrichedApplication, error)
	// UpdateStatus moves an application to newStatus. Only the employer owning
	// the referenced job may call it.
	UpdateStatus(ctx context.Context, applicationID string, newStatus string, actingEmployerID string) error
}
