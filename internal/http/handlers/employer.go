package handlers

import (
	"net/http"

	"github.com/imtiazahmadtanvir/quick-hire/internal/app"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/response"
)

type EmployerHandler struct {
	users *app.UserService
}

func NewEmployerHandler(users *app.UserService) *EmployerHandler {
	return &EmployerHandler{users: users}
}

// List is the public employer directory: every employer with their job count
// and the distinct companies they post under.
func (h *EmployerHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.users.ListEmployers(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}
