package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// ApplicationService implements apply, enriched listings and status review.
type ApplicationService struct {
	apps  ports.ApplicationRepository
	jobs  ports.JobRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	users ports.UserRepository,
	log zerolog.Logger,
) *ApplicationService {
	return &ApplicationService{apps: apps, jobs: jobs, users: users, log: log}
}

// Apply submits an application. Uniqueness per (job, applicant) is left to
// the repository's index so two simultaneous applies yield exactly one
// success.
func (s *ApplicationService) Apply(ctx context.Context, input ports.ApplyInput) (*ports.EnrichedApplication, error) {
	if err := domain.ValidateApplication(input.JobID, input.ApplicantID); err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	applicant, err := s.users.FindByID(ctx, input.ApplicantID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, err
	}
	if applicant.UserType != domain.UserTypeJobSeeker {
		return nil, domain.ErrForbidden
	}

	app := &domain.Application{
		ID:          domain.NewID(),
		JobID:       input.JobID,
		ApplicantID: input.ApplicantID,
		CoverLetter: input.CoverLetter,
		Status:      domain.StatusPending,
		AppliedAt:   time.Now().UTC(),
	}

	if err := s.apps.Insert(ctx, app); err != nil {
		return nil, err
	}

	s.log.Info().Str("application_id", app.ID).Str("job_id", job.ID).Str("applicant_id", applicant.ID).Msg("application submitted")

	return &ports.EnrichedApplication{
		Application:   *app,
		JobTitle:      job.Title,
		Company:       job.Company,
		ApplicantName: applicant.Name,
	}, nil
}

// ListForApplicant returns the seeker's applications joined with the job
// title and company, resolved in one batched lookup.
func (s *ApplicationService) ListForApplicant(ctx context.Context, applicantID string) ([]ports.EnrichedApplication, error) {
	apps, err := s.apps.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, err
	}

	jobIDs := make([]string, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.JobID)
	}
	jobs, err := s.jobs.FindByIDs(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ports.EnrichedApplication, 0, len(apps))
	for _, a := range apps {
		e := ports.EnrichedApplication{Application: *a}
		if job, ok := jobs[a.JobID]; ok {
			e.JobTitle = job.Title
			e.Company = job.Company
		}
		out = append(out, e)
	}
	return out, nil
}

// ListForJob returns the job's applications joined with a summary of each
// applicant's profile.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID string) ([]ports.EnrichedApplication, error) {
	apps, err := s.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	applicantIDs := make([]string, 0, len(apps))
	for _, a := range apps {
		applicantIDs = append(applicantIDs, a.ApplicantID)
	}
	applicants, err := s.users.FindByIDs(ctx, applicantIDs)
	if err != nil {
		return nil, err
	}

	out := make([]ports.EnrichedApplication, 0, len(apps))
	for _, a := range apps {
		e := ports.EnrichedApplication{Application: *a}
		if u, ok := applicants[a.ApplicantID]; ok {
			e.ApplicantName = u.Name
			e.ApplicantEmail = u.Email
			e.ApplicantTitle = u.Title
			e.ApplicantLocation = u.Location
			e.ApplicantSkills = u.Skills
		}
		out = append(out, e)
	}
	return out, nil
}

// UpdateStatus moves an application through the review pipeline. The acting
// employer must own the job the application points at.
func (s *ApplicationService) UpdateStatus(ctx context.Context, applicationID, newStatus, actingEmployerID string) error {
	status := domain.ApplicationStatus(newStatus)
	if !status.Valid() {
		return domain.Validationf("unknown status %q", newStatus)
	}

	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return err
	}
	job, err := s.jobs.FindByID(ctx, app.JobID)
	if err != nil {
		return err
	}
	if job.EmployerID != actingEmployerID {
		return domain.ErrForbidden
	}

	if err := s.apps.UpdateStatus(ctx, applicationID, status); err != nil {
		return err
	}
	s.log.Info().Str("application_id", applicationID).Str("status", newStatus).Msg("application status updated")
	return nil
}
