package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/job"
)

const jobColumns = `id, posted_by, title, company, location, job_type, category, description, requirements, salary_min, salary_max, currency, company_logo, is_active, applicants_count, created_at, updated_at`

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO jobs (`+jobColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		j.ID, j.PostedBy, j.Title, j.Company, j.Location, j.Type, j.Category, j.Description, pq.Array(j.Requirements),
		j.SalaryMin, j.SalaryMax, j.Currency, j.CompanyLogo, j.IsActive, j.ApplicantsCount, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	j.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE jobs SET title = $1, company = $2, location = $3, job_type = $4, category = $5, description = $6, requirements = $7, salary_min = $8, salary_max = $9, currency = $10, company_logo = $11, is_active = $12, updated_at = $13
		WHERE id = $14`,
		j.Title, j.Company, j.Location, j.Type, j.Category, j.Description, pq.Array(j.Requirements),
		j.SalaryMin, j.SalaryMax, j.Currency, j.CompanyLogo, j.IsActive, j.UpdatedAt, j.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id common.UUID) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row.Scan)
	if err != nil {
		return nil, err
	}
	return j, nil
}

func (r *JobRepository) GetDetail(ctx context.Context, id common.UUID) (*job.Detail, error) {
	row := r.db.QueryRowContext(ctx, `SELECT j.id, j.posted_by, j.title, j.company, j.location, j.job_type, j.category, j.description, j.requirements, j.salary_min, j.salary_max, j.currency, j.company_logo, j.is_active, j.applicants_count, j.created_at, j.updated_at,
			u.id, u.full_name, u.email
		FROM jobs j
		JOIN users u ON u.id = j.posted_by
		WHERE j.id = $1`, id)
	var d job.Detail
	err := row.Scan(&d.ID, &d.PostedBy, &d.Title, &d.Company, &d.Location, &d.Type, &d.Category, &d.Description, pq.Array(&d.Requirements),
		&d.SalaryMin, &d.SalaryMax, &d.Currency, &d.CompanyLogo, &d.IsActive, &d.ApplicantsCount, &d.CreatedAt, &d.UpdatedAt,
		&d.Owner.ID, &d.Owner.FullName, &d.Owner.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &d, nil
}

func (r *JobRepository) List(ctx context.Context, filter job.Filter, limit, offset int) ([]job.Job, int, error) {
	conditions := make([]string, 0, 5)
	args := make([]any, 0, 5)

	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.PostedBy != nil {
		conditions = append(conditions, "posted_by = "+arg(*filter.PostedBy))
	} else {
		conditions = append(conditions, "is_active = TRUE")
	}
	if filter.Search != "" {
		pattern := arg("%" + filter.Search + "%")
		conditions = append(conditions, fmt.Sprintf("(title ILIKE %s OR company ILIKE %s OR description ILIKE %s)", pattern, pattern, pattern))
	}
	if filter.Type != "" {
		conditions = append(conditions, "job_type = "+arg(filter.Type))
	}
	if filter.Category != "" {
		conditions = append(conditions, "category ILIKE "+arg("%"+filter.Category+"%"))
	}
	if filter.Location != "" {
		conditions = append(conditions, "location ILIKE "+arg("%"+filter.Location+"%"))
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs `+where, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count jobs", err)
	}

	query := `SELECT ` + jobColumns + ` FROM jobs ` + where + ` ORDER BY created_at DESC LIMIT ` + arg(limit) + ` OFFSET ` + arg(offset)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list jobs", err)
	}
	defer rows.Close()
	var items []job.Job
	for rows.Next() {
		j, err := scanJob(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *j)
	}
	return items, total, nil
}

func (r *JobRepository) Delete(ctx context.Context, id common.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to start transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM applications WHERE job_id = $1`, id); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete applications", err)
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete job", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	if err := tx.Commit(); err != nil {
		return common.NewError(common.CodeInternal, "failed to commit delete", err)
	}
	return nil
}

func (r *JobRepository) IncrementApplicants(ctx context.Context, id common.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE jobs SET applicants_count = applicants_count + 1 WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to increment applicants count", err)
	}
	return nil
}

func scanJob(scan func(dest ...any) error) (*job.Job, error) {
	var j job.Job
	err := scan(&j.ID, &j.PostedBy, &j.Title, &j.Company, &j.Location, &j.Type, &j.Category, &j.Description, pq.Array(&j.Requirements),
		&j.SalaryMin, &j.SalaryMax, &j.Currency, &j.CompanyLogo, &j.IsActive, &j.ApplicantsCount, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
	}
	return &j, nil
}
