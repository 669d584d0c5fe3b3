package app

import (
	"context"
	"strings"

	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/job"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type JobService struct {
	repo job.Repository
}

func NewJobService(repo job.Repository) *JobService {
	return &JobService{repo: repo}
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type ListJobsOptions struct {
	Search   string
	Type     string
	Category string
	Location string
	// Mine restricts the listing to the viewer's own jobs, including
	// inactive ones. Requires Viewer.
	Mine   bool
	Viewer *common.UUID
	Page   int
	Limit  int
}

func (s *JobService) List(ctx context.Context, opts ListJobsOptions) ([]job.Job, Pagination, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit < 1 {
		opts.Limit = defaultPageSize
	}
	if opts.Limit > maxPageSize {
		opts.Limit = maxPageSize
	}

	filter := job.Filter{
		Search:   strings.TrimSpace(opts.Search),
		Type:     strings.TrimSpace(opts.Type),
		Category: strings.TrimSpace(opts.Category),
		Location: strings.TrimSpace(opts.Location),
	}
	if opts.Mine {
		if opts.Viewer == nil {
			return nil, Pagination{}, common.NewError(common.CodeUnauthorized, "authentication required to list own jobs", nil)
		}
		filter.PostedBy = opts.Viewer
	}

	offset := (opts.Page - 1) * opts.Limit
	items, total, err := s.repo.List(ctx, filter, opts.Limit, offset)
	if err != nil {
		return nil, Pagination{}, err
	}
	pages := total / opts.Limit
	if total%opts.Limit != 0 {
		pages++
	}
	if items == nil {
		items = []job.Job{}
	}
	return items, Pagination{Total: total, Page: opts.Page, Limit: opts.Limit, Pages: pages}, nil
}

func (s *JobService) Get(ctx context.Context, id common.UUID) (*job.Detail, error) {
	return s.repo.GetDetail(ctx, id)
}

type CreateJobInput struct {
	Title        string
	Company      string
	Location     string
	Type         string
	Category     string
	Description  string
	Requirements []string
	SalaryMin    *int64
	SalaryMax    *int64
	Currency     string
	CompanyLogo  string
}

func (s *JobService) Create(ctx context.Context, ownerID common.UUID, input CreateJobInput) (*job.Job, error) {
	j := job.Job{
		PostedBy:     ownerID,
		Title:        strings.TrimSpace(input.Title),
		Company:      strings.TrimSpace(input.Company),
		Location:     strings.TrimSpace(input.Location),
		Type:         job.Type(strings.TrimSpace(input.Type)),
		Category:     strings.TrimSpace(input.Category),
		Description:  input.Description,
		Requirements: input.Requirements,
		SalaryMin:    input.SalaryMin,
		SalaryMax:    input.SalaryMax,
		Currency:     strings.TrimSpace(input.Currency),
		CompanyLogo:  input.CompanyLogo,
		IsActive:     true,
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	if j.Currency == "" {
		j.Currency = "USD"
	}
	if err := validateJob(j); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, j)
}

// UpdateJobInput carries the mutable job fields. Nil means "leave unchanged";
// postedBy and applicantsCount are never patchable.
type UpdateJobInput struct {
	Title        *string
	Company      *string
	Location     *string
	Type         *string
	Category     *string
	Description  *string
	Requirements []string
	SalaryMin    *int64
	SalaryMax    *int64
	Currency     *string
	IsActive     *bool
	CompanyLogo  *string
}

func (s *JobService) Update(ctx context.Context, ownerID, id common.UUID, patch UpdateJobInput) (*job.Job, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireOwner(current, ownerID); err != nil {
		return nil, err
	}
	if patch.Title != nil {
		current.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Company != nil {
		current.Company = strings.TrimSpace(*patch.Company)
	}
	if patch.Location != nil {
		current.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Type != nil {
		current.Type = job.Type(strings.TrimSpace(*patch.Type))
	}
	if patch.Category != nil {
		current.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.Description != nil {
		current.Description = *patch.Description
	}
	if patch.Requirements != nil {
		current.Requirements = patch.Requirements
	}
	if patch.SalaryMin != nil {
		current.SalaryMin = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		current.SalaryMax = patch.SalaryMax
	}
	if patch.Currency != nil {
		current.Currency = strings.TrimSpace(*patch.Currency)
	}
	if patch.IsActive != nil {
		current.IsActive = *patch.IsActive
	}
	if patch.CompanyLogo != nil {
		current.CompanyLogo = *patch.CompanyLogo
	}
	if err := validateJob(*current); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, *current)
}

func (s *JobService) Delete(ctx context.Context, ownerID, id common.UUID) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := requireOwner(current, ownerID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// requireOwner is the single ownership predicate shared by every mutating job
// path.
func requireOwner(j *job.Job, ownerID common.UUID) error {
	if j.PostedBy != ownerID {
		return common.NewError(common.CodeForbidden, "job belongs to another employer", nil)
	}
	return nil
}

func validateJob(j job.Job) error {
	fields := map[string]string{}
	if j.Title == "" {
		fields["title"] = "title is required"
	}
	if j.Company == "" {
		fields["company"] = "company is required"
	}
	if j.Location == "" {
		fields["location"] = "location is required"
	}
	if j.Type == "" {
		fields["type"] = "type is required"
	} else if !job.ValidType(j.Type) {
		fields["type"] = "type must be full-time, part-time, remote, contract, or internship"
	}
	if j.Category == "" {
		fields["category"] = "category is required"
	}
	if j.Description == "" {
		fields["description"] = "description is required"
	}
	if j.SalaryMin != nil && *j.SalaryMin < 0 {
		fields["salaryMin"] = "salary cannot be negative"
	}
	if j.SalaryMax != nil && *j.SalaryMax < 0 {
		fields["salaryMax"] = "salary cannot be negative"
	}
	if j.SalaryMin != nil && j.SalaryMax != nil && *j.SalaryMin > *j.SalaryMax {
		fields["salaryMax"] = "salaryMax must be greater than or equal to salaryMin"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid job", fields)
	}
	return nil
}
