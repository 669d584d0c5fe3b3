package application

import (
	"context"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, a Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID common.UUID) (*Application, error)
	ListByApplicant(ctx context.Context, applicantID common.UUID) ([]Detail, error)
	// ListByJobOwner returns applications across every job the owner posted.
	ListByJobOwner(ctx context.Context, ownerID common.UUID) ([]Detail, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
}
