package user

import (
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
)

type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

type User struct {
	ID           common.UUID `json:"id"`
	FullName     string      `json:"fullName"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         Role        `json:"role"`
	ProfileImage string      `json:"profileImage,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// Summary is the public slice of a user embedded in job and application
// responses.
type Summary struct {
	ID       common.UUID `json:"id"`
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
}

// EmployerListing is a directory entry: an employer plus aggregates over the
// jobs they posted.
type EmployerListing struct {
	User
	JobCount  int      `json:"jobCount"`
	Companies []string `json:"companies"`
}
