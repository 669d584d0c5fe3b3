package job

import (
	"context"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	Update(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id common.UUID) (*Job, error)
	GetDetail(ctx context.Context, id common.UUID) (*Detail, error)
	// List returns one page of jobs matching the filter plus the total match
	// count, newest first.
	List(ctx context.Context, filter Filter, limit, offset int) ([]Job, int, error)
	// Delete removes the job and every application referencing it in one
	// transaction.
	Delete(ctx context.Context, id common.UUID) error
	IncrementApplicants(ctx context.Context, id common.UUID) error
}
