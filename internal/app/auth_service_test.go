package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
	"github.com/imtiazahmadtanvir/quick-hire/internal/security"
)

func newTestTokens() *security.TokenProvider {
	return security.NewTokenProvider("test-secret", time.Hour)
}

func TestSignupAndLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newTestTokens())

	result, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Alice Rahman",
		Email:    "Alice@Example.com",
		Password: "secret1",
		Role:     "employer",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", result.User.Email)
	}
	if result.User.Role != user.RoleEmployer {
		t.Fatalf("expected employer role, got %q", result.User.Role)
	}

	// Login is case-insensitive on email.
	logged, err := svc.Login(context.Background(), "ALICE@example.COM", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.User.ID != result.User.ID {
		t.Fatal("login returned a different user")
	}
}

func TestSignupValidation(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAuthService(users, newTestTokens())

	cases := []struct {
		name  string
		input SignupInput
		field string
	}{
		{"missing name", SignupInput{Email: "a@b.com", Password: "secret1"}, "fullName"},
		{"missing email", SignupInput{FullName: "A", Password: "secret1"}, "email"},
		{"bad email", SignupInput{FullName: "A", Email: "nope", Password: "secret1"}, "email"},
		{"short password", SignupInput{FullName: "A", Email: "a@b.com", Password: "12345"}, "password"},
		{"bad role", SignupInput{FullName: "A", Email: "a@b.com", Password: "secret1", Role: "admin"}, "role"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Signup(context.Background(), tc.input)
			if !common.Is(err, common.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
			var appErr *common.Error
			if !errors.As(err, &appErr) {
				t.Fatalf("expected *common.Error, got %T", err)
			}
			if _, ok := appErr.Fields[tc.field]; !ok {
				t.Fatalf("expected violation on %q, got %v", tc.field, appErr.Fields)
			}
			// Nothing may be persisted on a rejected signup.
			if len(users.byID) != 0 {
				t.Fatalf("expected no users persisted, got %d", len(users.byID))
			}
		})
	}
}

func TestSignupDefaultsRoleToJobseeker(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestTokens())
	result, err := svc.Signup(context.Background(), SignupInput{
		FullName: "Bob",
		Email:    "bob@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if result.User.Role != user.RoleJobseeker {
		t.Fatalf("expected jobseeker default, got %q", result.User.Role)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestTokens())
	input := SignupInput{FullName: "A", Email: "dup@example.com", Password: "secret1"}
	if _, err := svc.Signup(context.Background(), input); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	input.Email = "DUP@example.com"
	_, err := svc.Signup(context.Background(), input)
	if !common.Is(err, common.CodeConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestTokens())
	if _, err := svc.Signup(context.Background(), SignupInput{FullName: "A", Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Wrong password and unknown email produce the same error.
	_, err := svc.Login(context.Background(), "a@b.com", "wrong-pass")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for wrong password, got %v", err)
	}
	_, err = svc.Login(context.Background(), "nobody@b.com", "secret1")
	if !common.Is(err, common.CodeUnauthorized) {
		t.Fatalf("expected unauthorized for unknown email, got %v", err)
	}
}
