package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/application"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/job"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
)

type ApplicationService struct {
	repo   application.Repository
	jobs   job.Repository
	logger *slog.Logger
}

func NewApplicationService(repo application.Repository, jobs job.Repository, logger *slog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, logger: logger}
}

// ListForViewer is role-polymorphic: jobseekers see their own applications,
// employers see applications across every job they posted.
func (s *ApplicationService) ListForViewer(ctx context.Context, viewerID common.UUID, role user.Role) ([]application.Detail, error) {
	switch role {
	case user.RoleJobseeker:
		return s.repo.ListByApplicant(ctx, viewerID)
	case user.RoleEmployer:
		return s.repo.ListByJobOwner(ctx, viewerID)
	default:
		return nil, common.NewError(common.CodeForbidden, "insufficient role", nil)
	}
}

type SubmitInput struct {
	JobID       common.UUID
	CoverLetter string
	Resume      string
}

func (s *ApplicationService) Submit(ctx context.Context, applicantID common.UUID, input SubmitInput) (*application.Application, error) {
	if len(input.CoverLetter) > application.MaxCoverLetterLength {
		return nil, common.NewValidationError("invalid application", map[string]string{"coverLetter": "cover letter must be less than 2000 characters"})
	}
	j, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}
	if !j.IsActive {
		return nil, common.NewError(common.CodeNotFound, "job not found or no longer active", nil)
	}
	if _, err := s.repo.FindByJobAndApplicant(ctx, input.JobID, applicantID); err == nil {
		return nil, common.NewError(common.CodeConflict, "already applied to this job", nil)
	} else if !common.Is(err, common.CodeNotFound) {
		return nil, err
	}
	created, err := s.repo.Create(ctx, application.Application{
		JobID:       input.JobID,
		ApplicantID: applicantID,
		CoverLetter: input.CoverLetter,
		Resume:      input.Resume,
		Status:      application.StatusPending,
	})
	if err != nil {
		return nil, err
	}
	// Display counter only. A failure here under-reports but never fails
	// the submission.
	if err := s.jobs.IncrementApplicants(ctx, input.JobID); err != nil {
		s.logger.Warn("failed to increment applicants count", "job_id", input.JobID, "error", err)
	}
	return created, nil
}

func (s *ApplicationService) UpdateStatus(ctx context.Context, employerID, applicationID common.UUID, status application.Status) (*application.Application, error) {
	normalized := application.Status(strings.ToLower(strings.TrimSpace(string(status))))
	if !application.ValidStatus(normalized) {
		return nil, common.NewValidationError("invalid status", map[string]string{"status": "status must be pending, reviewed, accepted, or rejected"})
	}
	current, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	j, err := s.jobs.GetByID(ctx, current.JobID)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(j, employerID); err != nil {
		return nil, err
	}
	// No transition graph: any status may move to any other by explicit
	// employer action.
	return s.repo.UpdateStatus(ctx, applicationID, normalized)
}
