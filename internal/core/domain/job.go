package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// JobType is the closed set of employment arrangements.
type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeRemote   JobType = "remote"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote:
		return true
	}
	return false
}

// Job is a posting owned by exactly one employer and readable by all.
type Job struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	EmployerID   string    `json:"employer_id" bson:"employer_id"`
	Title        string    `json:"title" bson:"title"`
	Company      string    `json:"company" bson:"company"`
	Location     string    `json:"location" bson:"location"`
	JobType      JobType   `json:"job_type" bson:"job_type"`
	SalaryRange  string    `json:"salary_range,omitempty" bson:"salary_range,omitempty"`
	Description  string    `json:"description" bson:"description"`
	Requirements []string  `json:"requirements" bson:"requirements"`
	Benefits     []string  `json:"benefits" bson:"benefits"`
	PostedAt     time.Time `json:"posted_at" bson:"posted_at"`
	IsActive     bool      `json:"is_active" bson:"is_active"`
}

// ValidateJob checks that the posting carries the required free-text fields
// and a known job type.
func ValidateJob(title, company, location, description string, jobType JobType) error {
	switch {
	case strings.TrimSpace(title) == "":
		return Validationf("title is required")
	case strings.TrimSpace(company) == "":
		return Validationf("company is required")
	case strings.TrimSpace(location) == "":
		return Validationf("location is required")
	case strings.TrimSpace(description) == "":
		return Validationf("description is required")
	}
	if !jobType.Valid() {
		return Validationf("job_type must be one of: %s, %s, %s, %s",
			JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeRemote)
	}
	return nil
}

// ValidateID checks that id is a syntactically well-formed identifier.
// All entity ids are UUID strings.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return Validationf("malformed identifier")
	}
	return nil
}

// NewID returns a fresh unique entity identifier.
func NewID() string {
	return uuid.NewString()
}
