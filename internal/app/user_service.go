package app

import (
	"context"
	"strings"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
)

type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, userID common.UUID) (*user.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfileInput carries the self-mutable profile fields. Nil leaves a
// field unchanged.
type UpdateProfileInput struct {
	FullName     *string
	ProfileImage *string
}

func (s *UserService) UpdateProfile(ctx context.Context, userID common.UUID, input UpdateProfileInput) (*user.User, error) {
	if input.FullName != nil {
		trimmed := strings.TrimSpace(*input.FullName)
		if trimmed == "" {
			return nil, common.NewValidationError("invalid profile", map[string]string{"fullName": "full name cannot be empty"})
		}
		input.FullName = &trimmed
	}
	return s.users.UpdateProfile(ctx, userID, input.FullName, input.ProfileImage)
}

func (s *UserService) ListEmployers(ctx context.Context) ([]user.EmployerListing, error) {
	items, err := s.users.ListEmployers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Companies == nil {
			items[i].Companies = []string{}
		}
	}
	return items, nil
}
