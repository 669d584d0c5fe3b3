package application

import (
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/job"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusReviewed Status = "reviewed"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

const MaxCoverLetterLength = 2000

type Application struct {
	ID          common.UUID `json:"id"`
	JobID       common.UUID `json:"jobId"`
	ApplicantID common.UUID `json:"applicantId"`
	CoverLetter string      `json:"coverLetter,omitempty"`
	Resume      string      `json:"resume,omitempty"`
	Status      Status      `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Detail joins an application with its job summary and, for employer views,
// the applicant summary.
type Detail struct {
	Application
	Job       job.Summary   `json:"job"`
	Applicant *user.Summary `json:"applicant,omitempty"`
}

func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}
