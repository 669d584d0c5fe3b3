package handlers

import (
	"net/http"
	"strconv"

	"github.com/imtiazahmadtanvir/quick-hire/internal/app"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/middleware"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/response"
)

type JobHandler struct {
	jobs *app.JobService
}

func NewJobHandler(jobs *app.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

type jobRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	SalaryMin    *int64   `json:"salaryMin"`
	SalaryMax    *int64   `json:"salaryMax"`
	Currency     string   `json:"currency"`
	CompanyLogo  string   `json:"companyLogo"`
}

type jobPatchRequest struct {
	Title        *string  `json:"title"`
	Company      *string  `json:"company"`
	Location     *string  `json:"location"`
	Type         *string  `json:"type"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	Requirements []string `json:"requirements"`
	SalaryMin    *int64   `json:"salaryMin"`
	SalaryMax    *int64   `json:"salaryMax"`
	Currency     *string  `json:"currency"`
	IsActive     *bool    `json:"isActive"`
	CompanyLogo  *string  `json:"companyLogo"`
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	opts := app.ListJobsOptions{
		Search:   query.Get("search"),
		Type:     query.Get("type"),
		Category: query.Get("category"),
		Location: query.Get("location"),
		Mine:     query.Get("mine") == "true",
	}
	if value := query.Get("page"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			opts.Page = parsed
		}
	}
	if value := query.Get("limit"); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			opts.Limit = parsed
		}
	}
	if identity, ok := middleware.IdentityFromContext(r.Context()); ok {
		opts.Viewer = &identity.UserID
	}
	items, pagination, err := h.jobs.List(r.Context(), opts)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Page(w, http.StatusOK, items, pagination)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	item, err := h.jobs.Get(r.Context(), jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, item)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req jobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.jobs.Create(r.Context(), identity.UserID, app.CreateJobInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Category:     req.Category,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Currency:     req.Currency,
		CompanyLogo:  req.CompanyLogo,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusCreated, "job posted successfully", created)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req jobPatchRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.jobs.Update(r.Context(), identity.UserID, jobID, app.UpdateJobInput{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Type:         req.Type,
		Category:     req.Category,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Currency:     req.Currency,
		IsActive:     req.IsActive,
		CompanyLogo:  req.CompanyLogo,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "job updated successfully", updated)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.jobs.Delete(r.Context(), identity.UserID, jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "job deleted successfully", nil)
}
