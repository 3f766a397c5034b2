package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// JobService implements posting and search.
type JobService struct {
	jobs  ports.JobRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, users ports.UserRepository, log zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, users: users, log: log}
}

// PostJob creates a posting. The acting user must resolve to an employer
// account; a seeker or unknown id gets domain.ErrForbidden and nothing is
// persisted.
func (s *JobService) PostJob(ctx context.Context, employerID string, input ports.JobInput) (*domain.Job, error) {
	if err := s.requireEmployer(ctx, employerID); err != nil {
		return nil, err
	}

	jobType := domain.JobType(input.JobType)
	if err := domain.ValidateJob(input.Title, input.Company, input.Location, input.Description, jobType); err != nil {
		return nil, err
	}

	job := &domain.Job{
		ID:           domain.NewID(),
		EmployerID:   employerID,
		Title:        input.Title,
		Company:      input.Company,
		Location:     input.Location,
		JobType:      jobType,
		SalaryRange:  input.SalaryRange,
		Description:  input.Description,
		Requirements: emptyIfNil(input.Requirements),
		Benefits:     emptyIfNil(input.Benefits),
		PostedAt:     time.Now().UTC(),
		IsActive:     true,
	}

	if err := s.jobs.Insert(ctx, job); err != nil {
		s.log.Error().Err(err).Str("employer_id", employerID).Msg("failed to create job")
		return nil, err
	}

	s.log.Info().Str("job_id", job.ID).Str("employer_id", employerID).Str("job_type", string(jobType)).Msg("job posted")
	return job, nil
}

// ListJobs returns active postings matching the filters, most recent first.
// That ordering is part of the contract, not a presentation choice.
func (s *JobService) ListJobs(ctx context.Context, input ports.ListJobsInput) ([]*domain.Job, error) {
	if input.JobType != "" && !domain.JobType(input.JobType).Valid() {
		return nil, domain.Validationf("unknown job_type %q", input.JobType)
	}
	return s.jobs.ListActive(ctx, ports.JobFilter{
		Search:   input.Search,
		Location: input.Location,
		JobType:  domain.JobType(input.JobType),
		Skip:     input.Skip,
		Limit:    input.Limit,
	})
}

func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	if err := domain.ValidateID(id); err != nil {
		return nil, domain.ErrJobNotFound
	}
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) ListByEmployer(ctx context.Context, employerID string) ([]*domain.Job, error) {
	return s.jobs.ListByEmployer(ctx, employerID)
}

// SetActive toggles a posting's visibility. A non-owning caller gets an
// explicit domain.ErrForbidden rather than a silent no-op.
func (s *JobService) SetActive(ctx context.Context, jobID string, active bool, actingEmployerID string) error {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return err
	}
	if job.EmployerID != actingEmployerID {
		return domain.ErrForbidden
	}
	if err := s.jobs.SetActive(ctx, jobID, active); err != nil {
		return err
	}
	s.log.Info().Str("job_id", jobID).Bool("active", active).Msg("job visibility changed")
	return nil
}

func (s *JobService) requireEmployer(ctx context.Context, employerID string) error {
	user, err := s.users.FindByID(ctx, employerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrForbidden
		}
		return err
	}
	if user.UserType != domain.UserTypeEmployer {
		return domain.ErrForbidden
	}
	return nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
