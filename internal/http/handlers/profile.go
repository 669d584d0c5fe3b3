package handlers

import (
	"net/http"

	"github.com/imtiazahmadtanvir/quick-hire/internal/app"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/middleware"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/response"
)

type ProfileHandler struct {
	users *app.UserService
}

func NewProfileHandler(users *app.UserService) *ProfileHandler {
	return &ProfileHandler{users: users}
}

type profileRequest struct {
	FullName     *string `json:"fullName"`
	ProfileImage *string `json:"profileImage"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	found, err := h.users.Profile(r.Context(), identity.UserID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, found)
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.users.UpdateProfile(r.Context(), identity.UserID, app.UpdateProfileInput{
		FullName:     req.FullName,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "profile updated", updated)
}
