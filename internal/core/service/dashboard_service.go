package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// StatsCache abstracts the short-lived dashboard cache (Redis). A miss is
// (nil, false, nil); errors are advisory and never fail the request.
type StatsCache interface {
	Get(ctx context.Context, userID string, userType domain.UserType) (*ports.Stats, bool, error)
	Set(ctx context.Context, userID string, userType domain.UserType, stats *ports.Stats) error
}

// DashboardService computes role-specific dashboard summaries.
type DashboardService struct {
	jobs  ports.JobRepository
	apps  ports.ApplicationRepository
	cache StatsCache // optional
	log   zerolog.Logger
}

func NewDashboardService(jobs ports.JobRepository, apps ports.ApplicationRepository, cache StatsCache, log zerolog.Logger) *DashboardService {
	return &DashboardService{jobs: jobs, apps: apps, cache: cache, log: log}
}

// Stats aggregates counts fresh from the store, with a best-effort TTL cache
// in front. Cache failures degrade to a fresh computation.
func (s *DashboardService) Stats(ctx context.Context, userID string, userType domain.UserType) (*ports.Stats, error) {
	if !userType.Valid() {
		return nil, domain.Validationf("user_type must be %q or %q", domain.UserTypeJobSeeker, domain.UserTypeEmployer)
	}

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, userID, userType)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("stats cache read failed")
		} else if ok {
			return cached, nil
		}
	}

	stats, err := s.compute(ctx, userID, userType)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, userType, stats); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("stats cache write failed")
		}
	}
	return stats, nil
}

func (s *DashboardService) compute(ctx context.Context, userID string, userType domain.UserType) (*ports.Stats, error) {
	if userType == domain.UserTypeJobSeeker {
		total, err := s.apps.CountByApplicant(ctx, userID, "")
		if err != nil {
			return nil, err
		}
		pending, err := s.apps.CountByApplicant(ctx, userID, domain.StatusPending)
		if err != nil {
			return nil, err
		}
		shortlisted, err := s.apps.CountByApplicant(ctx, userID, domain.StatusShortlisted)
		if err != nil {
			return nil, err
		}
		return &ports.Stats{Seeker: &ports.SeekerStats{
			TotalApplications: total,
			Pending:           pending,
			Shortlisted:       shortlisted,
		}}, nil
	}

	totalJobs, err := s.jobs.CountByEmployer(ctx, userID, false)
	if err != nil {
		return nil, err
	}
	activeJobs, err := s.jobs.CountByEmployer(ctx, userID, true)
	if err != nil {
		return nil, err
	}

	employerJobs, err := s.jobs.ListByEmployer(ctx, userID)
	if err != nil {
		return nil, err
	}
	jobIDs := make([]string, 0, len(employerJobs))
	for _, j := range employerJobs {
		jobIDs = append(jobIDs, j.ID)
	}
	var totalApps int64
	if len(jobIDs) > 0 {
		totalApps, err = s.apps.CountByJobs(ctx, jobIDs)
		if err != nil {
			return nil, err
		}
	}

	return &ports.Stats{Employer: &ports.EmployerStats{
		TotalJobs:         totalJobs,
		ActiveJobs:        activeJobs,
		TotalApplications: totalApps,
	}}, nil
}
