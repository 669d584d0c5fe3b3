package job

import (
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
)

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeRemote     Type = "remote"
	TypeContract   Type = "contract"
	TypeInternship Type = "internship"
)

type Job struct {
	ID              common.UUID `json:"id"`
	PostedBy        common.UUID `json:"postedBy"`
	Title           string      `json:"title"`
	Company         string      `json:"company"`
	Location        string      `json:"location"`
	Type            Type        `json:"type"`
	Category        string      `json:"category"`
	Description     string      `json:"description"`
	Requirements    []string    `json:"requirements"`
	SalaryMin       *int64      `json:"salaryMin,omitempty"`
	SalaryMax       *int64      `json:"salaryMax,omitempty"`
	Currency        string      `json:"currency"`
	CompanyLogo     string      `json:"companyLogo,omitempty"`
	IsActive        bool        `json:"isActive"`
	ApplicantsCount int         `json:"applicantsCount"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// Detail is a job joined with a summary of its owner.
type Detail struct {
	Job
	Owner user.Summary `json:"owner"`
}

// Summary is the slice of a job embedded in application listings.
type Summary struct {
	ID       common.UUID `json:"id"`
	Title    string      `json:"title"`
	Company  string      `json:"company"`
	Location string      `json:"location"`
	Type     Type        `json:"type"`
	Category string      `json:"category"`
	IsActive bool        `json:"isActive"`
}

// Filter narrows a listing query. All criteria are combined with AND; Search
// matches title, company, or description.
type Filter struct {
	Search   string
	Type     string
	Category string
	Location string
	// PostedBy limits the listing to one owner's jobs, active or not.
	// When unset only active jobs are visible.
	PostedBy *common.UUID
}

func ValidType(t Type) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeRemote, TypeContract, TypeInternship:
		return true
	default:
		return false
	}
}
