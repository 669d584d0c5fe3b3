package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/application"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
)

const applicationColumns = `id, job_id, applicant_id, cover_letter, resume, status, created_at, updated_at`

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) (*application.Application, error) {
	a.ID = common.NewUUID()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (`+applicationColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		a.ID, a.JobID, a.ApplicantID, a.CoverLetter, a.Resume, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		// The unique (job_id, applicant_id) index is the authority on
		// duplicates; a concurrent submit loses here, not in the service.
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied to this job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &a, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	return scanApplication(row.Scan)
}

func (r *ApplicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicationColumns+` FROM applications WHERE job_id = $1 AND applicant_id = $2`, jobID, applicantID)
	return scanApplication(row.Scan)
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID common.UUID) ([]application.Detail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume, a.status, a.created_at, a.updated_at,
			j.id, j.title, j.company, j.location, j.job_type, j.category, j.is_active
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.applicant_id = $1
		ORDER BY a.created_at DESC`, applicantID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.Detail
	for rows.Next() {
		var d application.Detail
		if err := rows.Scan(&d.ID, &d.JobID, &d.ApplicantID, &d.CoverLetter, &d.Resume, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.Job.ID, &d.Job.Title, &d.Job.Company, &d.Job.Location, &d.Job.Type, &d.Job.Category, &d.Job.IsActive); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, d)
	}
	return items, nil
}

func (r *ApplicationRepository) ListByJobOwner(ctx context.Context, ownerID common.UUID) ([]application.Detail, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.job_id, a.applicant_id, a.cover_letter, a.resume, a.status, a.created_at, a.updated_at,
			j.id, j.title, j.company, j.location, j.job_type, j.category, j.is_active,
			u.id, u.full_name, u.email
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.applicant_id
		WHERE j.posted_by = $1
		ORDER BY a.created_at DESC`, ownerID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	var items []application.Detail
	for rows.Next() {
		var d application.Detail
		var applicant user.Summary
		if err := rows.Scan(&d.ID, &d.JobID, &d.ApplicantID, &d.CoverLetter, &d.Resume, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.Job.ID, &d.Job.Title, &d.Job.Company, &d.Job.Location, &d.Job.Type, &d.Job.Category, &d.Job.IsActive,
			&applicant.ID, &applicant.FullName, &applicant.Email); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		d.Applicant = &applicant
		items = append(items, d)
	}
	return items, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	updatedAt := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1, updated_at = $2 WHERE id = $3`, status, updatedAt, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	return r.GetByID(ctx, id)
}

func scanApplication(scan func(dest ...any) error) (*application.Application, error) {
	var a application.Application
	if err := scan(&a.ID, &a.JobID, &a.ApplicantID, &a.CoverLetter, &a.Resume, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &a, nil
}
