package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hirehub/hirehub-api/internal/core/domain"
	"github.com/hirehub/hirehub-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub job repository
// ---------------------------------------------------------------------------

type stubJobRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Job
}

func newStubJobRepo() *stubJobRepo {
	return &stubJobRepo{byID: make(map[string]*domain.Job)}
}

func cloneJob(j *domain.Job) *domain.Job {
	if j == nil {
		return nil
	}
	clone := *j
	return &clone
}

func (r *stubJobRepo) Insert(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[job.ID] = cloneJob(job)
	return nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id string) (*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}
	return cloneJob(j), nil
}

func (r *stubJobRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*domain.Job, len(ids))
	for _, id := range ids {
		if j, ok := r.byID[id]; ok {
			out[id] = cloneJob(j)
		}
	}
	return out, nil
}

// ListActive mirrors the document-store query: active only, case-insensitive
// substring filters, exact job_type, newest first.
func (r *stubJobRepo) ListActive(_ context.Context, filter ports.JobFilter) ([]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	var out []*domain.Job
	for _, j := range r.byID {
		if !j.IsActive {
			continue
		}
		if filter.Search != "" &&
			!contains(j.Title, filter.Search) &&
			!contains(j.Company, filter.Search) &&
			!contains(j.Description, filter.Search) {
			continue
		}
		if filter.Location != "" && !contains(j.Location, filter.Location) {
			continue
		}
		if filter.JobType != "" && j.JobType != filter.JobType {
			continue
		}
		out = append(out, cloneJob(j))
	}
	sort.Slice(out, func(i, k int) bool { return out[i].PostedAt.After(out[k].PostedAt) })

	if filter.Skip > 0 {
		if filter.Skip >= int64(len(out)) {
			return nil, nil
		}
		out = out[filter.Skip:]
	}
	if filter.Limit > 0 && filter.Limit < int64(len(out)) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *stubJobRepo) ListByEmployer(_ context.Context, employerID string) ([]*domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Job
	for _, j := range r.byID {
		if j.EmployerID == employerID {
			out = append(out, cloneJob(j))
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].PostedAt.After(out[k].PostedAt) })
	return out, nil
}

func (r *stubJobRepo) CountByEmployer(_ context.Context, employerID string, activeOnly bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, j := range r.byID {
		if j.EmployerID != employerID {
			continue
		}
		if activeOnly && !j.IsActive {
			continue
		}
		n++
	}
	return n, nil
}

func (r *stubJobRepo) SetActive(_ context.Context, id string, active bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.byID[id]
	if !ok {
		return domain.ErrJobNotFound
	}
	j.IsActive = active
	return nil
}

// seedJob stores a job directly, bypassing PostJob.
func (r *stubJobRepo) seedJob(employerID, title, company, location, description string, jobType domain.JobType, active bool, postedAt time.Time) *domain.Job {
	j := &domain.Job{
		ID:           domain.NewID(),
		EmployerID:   employerID,
		Title:        title,
		Company:      company,
		Location:     location,
		JobType:      jobType,
		Description:  description,
		Requirements: []string{},
		Benefits:     []string{},
		PostedAt:     postedAt,
		IsActive:     active,
	}
	r.mu.Lock()
	r.byID[j.ID] = j
	r.mu.Unlock()
	return cloneJob(j)
}

func validJobInput() ports.JobInput {
	return ports.JobInput{
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Location:    "Berlin",
		JobType:     "full-time",
		SalaryRange: "60k-80k",
		Description: "Build APIs in Go.",
	}
}

// ---------------------------------------------------------------------------
// PostJob
// ---------------------------------------------------------------------------

func TestJobService_PostJob_Success(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	employer := users.seedUser(domain.UserTypeEmployer, "hr@acme.example")
	svc := NewJobService(jobs, users, discardLogger)

	job, err := svc.PostJob(context.Background(), employer.ID, validJobInput())
	if err != nil {
		t.Fatalf("PostJob returned error: %v", err)
	}
	if !job.IsActive {
		t.Error("new posting must be active")
	}
	if job.EmployerID != employer.ID {
		t.Errorf("expected employer %s, got %s", employer.ID, job.EmployerID)
	}
	if job.Requirements == nil || job.Benefits == nil {
		t.Error("requirements and benefits must default to empty slices")
	}
	if job.PostedAt.IsZero() {
		t.Error("posted_at must be set")
	}
	if _, err := jobs.FindByID(context.Background(), job.ID); err != nil {
		t.Errorf("job not persisted: %v", err)
	}
}

func TestJobService_PostJob_SeekerForbidden(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	seeker := users.seedUser(domain.UserTypeJobSeeker, "dev@mail.example")
	svc := NewJobService(jobs, users, discardLogger)

	_, err := svc.PostJob(context.Background(), seeker.ID, validJobInput())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(jobs.byID) != 0 {
		t.Error("nothing should be persisted when the caller is not an employer")
	}
}

func TestJobService_PostJob_UnknownUserForbidden(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	svc := NewJobService(jobs, users, discardLogger)

	_, err := svc.PostJob(context.Background(), domain.NewID(), validJobInput())
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestJobService_PostJob_Validation(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	employer := users.seedUser(domain.UserTypeEmployer, "hr@acme.example")
	svc := NewJobService(jobs, users, discardLogger)

	cases := []struct {
		name   string
		mutate func(*ports.JobInput)
	}{
		{"missing title", func(in *ports.JobInput) { in.Title = "" }},
		{"missing company", func(in *ports.JobInput) { in.Company = "" }},
		{"missing location", func(in *ports.JobInput) { in.Location = "" }},
		{"missing description", func(in *ports.JobInput) { in.Description = "" }},
		{"bad job_type", func(in *ports.JobInput) { in.JobType = "freelance" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validJobInput()
			tc.mutate(&in)
			_, err := svc.PostJob(context.Background(), employer.ID, in)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
	if len(jobs.byID) != 0 {
		t.Errorf("no job should be persisted, got %d", len(jobs.byID))
	}
}

// ---------------------------------------------------------------------------
// ListJobs
// ---------------------------------------------------------------------------

func seedSearchFixtures(users *stubUserRepo, jobs *stubJobRepo) {
	employer := users.seedUser(domain.UserTypeEmployer, "hr@acme.example")
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	jobs.seedJob(employer.ID, "Senior Go Engineer", "Acme Corp", "Berlin, Germany", "Distributed systems in Go.", domain.JobTypeFullTime, true, base.Add(3*time.Hour))
	jobs.seedJob(employer.ID, "Frontend Developer", "PixelWorks", "Remote", "React dashboards.", domain.JobTypeRemote, true, base.Add(2*time.Hour))
	jobs.seedJob(employer.ID, "Data Analyst", "Acme Corp", "Munich, Germany", "SQL and golang tooling.", domain.JobTypeContract, true, base.Add(time.Hour))
	jobs.seedJob(employer.ID, "Go Intern", "Acme Corp", "Berlin, Germany", "Closed position.", domain.JobTypeFullTime, false, base)
}

func TestJobService_ListJobs_NoFilter(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	seedSearchFixtures(users, jobs)
	svc := NewJobService(jobs, users, discardLogger)

	got, err := svc.ListJobs(context.Background(), ports.ListJobsInput{})
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 active jobs, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].PostedAt.After(got[i-1].PostedAt) {
			t.Fatal("jobs must be ordered newest first")
		}
	}
	for _, j := range got {
		if !j.IsActive {
			t.Errorf("inactive job %q leaked into the listing", j.Title)
		}
	}
}

func TestJobService_ListJobs_SearchIsCaseInsensitive(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	seedSearchFixtures(users, jobs)
	svc := NewJobService(jobs, users, discardLogger)

	// "GO" matches the title of one job and the description of another;
	// the inactive "Go Intern" must not appear.
	got, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Search: "GO"})
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Title != "Senior Go Engineer" || got[1].Title != "Data Analyst" {
		t.Errorf("unexpected result order: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestJobService_ListJobs_LocationAndType(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	seedSearchFixtures(users, jobs)
	svc := NewJobService(jobs, users, discardLogger)

	got, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Location: "germany"})
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 jobs in Germany, got %d", len(got))
	}

	got, err = svc.ListJobs(context.Background(), ports.ListJobsInput{JobType: "remote"})
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Frontend Developer" {
		t.Fatalf("job_type filter failed: %+v", got)
	}
}

func TestJobService_ListJobs_Paging(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	seedSearchFixtures(users, jobs)
	svc := NewJobService(jobs, users, discardLogger)

	got, err := svc.ListJobs(context.Background(), ports.ListJobsInput{Skip: 1, Limit: 1})
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Frontend Developer" {
		t.Fatalf("expected the second-newest job, got %+v", got)
	}
}

func TestJobService_ListJobs_UnknownJobType(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	svc := NewJobService(jobs, users, discardLogger)

	if _, err := svc.ListJobs(context.Background(), ports.ListJobsInput{JobType: "gig"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetJob / SetActive
// ---------------------------------------------------------------------------

func TestJobService_GetJob_MalformedID(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	svc := NewJobService(jobs, users, discardLogger)

	if _, err := svc.GetJob(context.Background(), "not-a-uuid"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound for malformed id, got %v", err)
	}
}

func TestJobService_SetActive_Ownership(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	owner := users.seedUser(domain.UserTypeEmployer, "owner@acme.example")
	other := users.seedUser(domain.UserTypeEmployer, "other@acme.example")
	job := jobs.seedJob(owner.ID, "Go Engineer", "Acme Corp", "Berlin", "Go services.", domain.JobTypeFullTime, true, time.Now().UTC())
	svc := NewJobService(jobs, users, discardLogger)

	if err := svc.SetActive(context.Background(), job.ID, false, other.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}
	if got, _ := jobs.FindByID(context.Background(), job.ID); !got.IsActive {
		t.Fatal("job must stay active after a forbidden toggle")
	}

	if err := svc.SetActive(context.Background(), job.ID, false, owner.ID); err != nil {
		t.Fatalf("owner toggle failed: %v", err)
	}
	if got, _ := jobs.FindByID(context.Background(), job.ID); got.IsActive {
		t.Fatal("job must be inactive after owner toggle")
	}
}

func TestJobService_SetActive_MissingJob(t *testing.T) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	employer := users.seedUser(domain.UserTypeEmployer, "hr@acme.example")
	svc := NewJobService(jobs, users, discardLogger)

	if err := svc.SetActive(context.Background(), domain.NewID(), true, employer.ID); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
