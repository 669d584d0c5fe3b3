package handlers

import (
	"net/http"
	"time"

	"github.com/imtiazahmadtanvir/quick-hire/internal/app"
	"github.com/imtiazahmadtanvir/quick-hire/internal/common"
	"github.com/imtiazahmadtanvir/quick-hire/internal/domain/user"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/middleware"
	"github.com/imtiazahmadtanvir/quick-hire/internal/http/response"
)

type AuthHandler struct {
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type signupRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// authResponse carries token and user at the top level next to the envelope
// fields.
type authResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Token   string    `json:"token"`
	User    user.User `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		key := "signup:ip:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, 5, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "signup rate limit exceeded", nil))
			return
		}
	}
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Signup(r.Context(), app.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Write(w, http.StatusCreated, authResponse{
		Success: true,
		Message: "account created successfully",
		Token:   result.Token,
		User:    result.User,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if h.limiter != nil {
		key := "login:ip:" + middleware.ClientIP(r)
		if !h.limiter.Allow(key, 10, time.Minute) {
			response.Error(w, common.NewError(common.CodeRateLimited, "login rate limit exceeded", nil))
			return
		}
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	result, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Write(w, http.StatusOK, authResponse{
		Success: true,
		Message: "login successful",
		Token:   result.Token,
		User:    result.User,
	})
}
