package domain

import "time"

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "pending"
	StatusReviewed    ApplicationStatus = "reviewed"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusHired       ApplicationStatus = "hired"
)

// Valid reports whether s is a known review state.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// Application links one job seeker to one job. At most one may exist per
// (job_id, applicant_id) pair; the persistence layer enforces this with a
// unique compound index so concurrent applies cannot both succeed.
type Application struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	JobID       string            `json:"job_id" bson:"job_id"`
	ApplicantID string            `json:"applicant_id" bson:"applicant_id"`
	CoverLetter string            `json:"cover_letter,omitempty" bson:"cover_letter,omitempty"`
	Status      ApplicationStatus `json:"status" bson:"status"`
	AppliedAt   time.Time         `json:"applied_at" bson:"applied_at"`
}

// ValidateApplication checks that both referenced identifiers are well-formed.
func ValidateApplication(jobID, applicantID string) error {
	if err := ValidateID(jobID); err != nil {
		return Validationf("job_id: malformed identifier")
	}
	if err := ValidateID(applicantID); err != nil {
		return Validationf("applicant_id: malformed identifier")
	}
	return nil
}
