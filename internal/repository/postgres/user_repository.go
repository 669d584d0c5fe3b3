package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
)

// uniqueViolation is the postgres error code for unique-constraint failures.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (*user.User, error) {
	u.ID = common.NewUUID()
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO users (id, full_name, email, password_hash, role, profile_image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		u.ID, u.FullName, u.Email, u.PasswordHash, u.Role, u.ProfileImage, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "an account with this email already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id common.UUID) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, full_name, email, password_hash, role, profile_image, created_at, updated_at FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, full_name, email, password_hash, role, profile_image, created_at, updated_at FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id common.UUID, fullName, profileImage *string) (*user.User, error) {
	updatedAt := time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE users SET full_name = COALESCE($1, full_name), profile_image = COALESCE($2, profile_image), updated_at = $3 WHERE id = $4`,
		fullName, profileImage, updatedAt, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update profile", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "user not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func (r *UserRepository) ListEmployers(ctx context.Context) ([]user.EmployerListing, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT u.id, u.full_name, u.email, u.role, u.profile_image, u.created_at, u.updated_at,
			COUNT(j.id), array_remove(array_agg(DISTINCT j.company), NULL)
		FROM users u
		LEFT JOIN jobs j ON j.posted_by = u.id
		WHERE u.role = $1
		GROUP BY u.id
		ORDER BY u.created_at DESC`, user.RoleEmployer)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list employers", err)
	}
	defer rows.Close()
	var items []user.EmployerListing
	for rows.Next() {
		var e user.EmployerListing
		if err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.Role, &e.ProfileImage, &e.CreatedAt, &e.UpdatedAt, &e.JobCount, pq.Array(&e.Companies)); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan employer", err)
		}
		items = append(items, e)
	}
	return items, nil
}

func scanUser(row *sql.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.ProfileImage, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &u, nil
}
