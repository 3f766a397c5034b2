package handler

import (
	"time"

	"github.com/hirehub/hirehub-api/internal/core/ports"
)

type applyRequest struct {
	JobID       string `json:"job_id" validate:"required"`
	CoverLetter string `json:"cover_letter"`
}

type updateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewed shortlisted rejected hired"`
}

// applicationResponse is an application joined with job or applicant summary
// fields, so the caller never needs a second round trip to render it.
type applicationResponse struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	ApplicantID string    `json:"applicant_id"`
	CoverLetter string    `json:"cover_letter,omitempty"`
	Status      string    `json:"status"`
	AppliedAt   time.Time `json:"applied_at"`

	JobTitle string `json:"job_title,omitempty"`
	Company  string `json:"company,omitempty"`

	ApplicantName     string   `json:"applicant_name,omitempty"`
	ApplicantEmail    string   `json:"applicant_email,omitempty"`
	ApplicantTitle    string   `json:"applicant_title,omitempty"`
	ApplicantLocation string   `json:"applicant_location,omitempty"`
	ApplicantSkills   []string `json:"applicant_skills,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func toApplicationResponse(e ports.EnrichedApplication) applicationResponse {
	return applicationResponse{
		ID:                e.Application.ID,
		JobID:             e.Application.JobID,
		ApplicantID:       e.Application.ApplicantID,
		CoverLetter:       e.Application.CoverLetter,
		Status:            string(e.Application.Status),
		AppliedAt:         e.Application.AppliedAt.UTC(),
		JobTitle:          e.JobTitle,
		Company:           e.Company,
		ApplicantName:     e.ApplicantName,
		ApplicantEmail:    e.ApplicantEmail,
		ApplicantTitle:    e.ApplicantTitle,
		ApplicantLocation: e.ApplicantLocation,
		ApplicantSkills:   e.ApplicantSkills,
	}
}

func toApplicationResponses(items []ports.EnrichedApplication) []applicationResponse {
	out := make([]applicationResponse, len(items))
	for i, e := range items {
		out[i] = toApplicationResponse(e)
	}
	return out
}
