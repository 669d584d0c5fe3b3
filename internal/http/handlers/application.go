package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/app"
	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/application"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/middleware"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
	limiter      middleware.Limiter
}

func NewApplicationHandler(applications *app.ApplicationService, limiter middleware.Limiter) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, limiter: limiter}
}

type submitRequest struct {
	JobID       string `json:"jobId"`
	CoverLetter string `json:"coverLetter"`
	Resume      string `json:"resume"`
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	items, err := h.applications.ListForViewer(r.Context(), identity.UserID, identity.Role)
	if err != nil {
		response.Error(w, err)
		return
	}
	if items == nil {
		items = []application.Detail{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req submitRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.JobID) == "" {
		response.Error(w, common.NewValidationError("invalid application", map[string]string{"jobId": "jobId is required"}))
		return
	}
	jobID, err := common.ParseUUID(req.JobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	if h.limiter != nil {
		key := "apply:" + identity.UserID.String()
		if !h.limiter.Allow(key, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "apply rate limit exceeded", nil))
			return
		}
	}
	created, err := h.applications.Submit(r.Context(), identity.UserID, app.SubmitInput{
		JobID:       jobID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusCreated, "application submitted successfully", created)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	applicationID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), identity.UserID, applicationID, application.Status(req.Status))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "application status updated", updated)
}
