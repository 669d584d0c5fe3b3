package user

import (
	"context"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
)

type Repository interface {
	Create(ctx context.Context, u User) (*User, error)
	GetByID(ctx context.Context, id common.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateProfile(ctx context.Context, id common.UUID, fullName, profileImage *string) (*User, error)
	ListEmployers(ctx context.Context) ([]EmployerListing, error)
}
