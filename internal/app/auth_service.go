package app

import (
	"context"
	"strings"
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
	"github.com/imtiazahmadtanvir/quick-hire/internal/security"
)

const minPasswordLength = 6

type AuthService struct {
	users  user.Repository
	tokens *security.TokenProvider
}

func NewAuthService(users user.Repository, tokens *security.TokenProvider) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type SignupInput struct {
	FullName string
	Email    string
	Password string
	Role     string
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      user.User
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	fields := map[string]string{}
	fullName := strings.TrimSpace(input.FullName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if fullName == "" {
		fields["fullName"] = "full name is required"
	}
	if email == "" {
		fields["email"] = "email is required"
	} else if !strings.Contains(email, "@") {
		fields["email"] = "email is invalid"
	}
	if input.Password == "" {
		fields["password"] = "password is required"
	} else if len(input.Password) < minPasswordLength {
		fields["password"] = "password must be at least 6 characters"
	}
	role := user.Role(strings.ToLower(strings.TrimSpace(input.Role)))
	if role == "" {
		role = user.RoleJobseeker
	}
	if role != user.RoleJobseeker && role != user.RoleEmployer {
		fields["role"] = "role must be jobseeker or employer"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid signup request", fields)
	}

	hash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	created, err := s.users.Create(ctx, user.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	})
	if err != nil {
		return nil, err
	}
	return s.issueToken(*created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, common.NewValidationError("invalid login request", map[string]string{"credentials": "email and password are required"})
	}
	found, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Unknown email and wrong password are indistinguishable to the
		// caller.
		if common.Is(err, common.CodeNotFound) {
			return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
		}
		return nil, err
	}
	if err := security.ComparePassword(found.PasswordHash, password); err != nil {
		return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
	}
	return s.issueToken(*found)
}

func (s *AuthService) issueToken(u user.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Generate(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, User: u}, nil
}
