package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/services/auth"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/handlers/response"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

type ServiceDependencies struct {
	GGAuthService    auth.IGoogleAuthService
	LocalAuthService auth.ILocalAuthService
}

type Handler struct {
	google auth.IGoogleAuthService
	local  auth.ILocalAuthService
	logger primary.Logger
	debug  bool
}

func NewHandler(svcDep *ServiceDependencies, logger primary.Logger, debug bool) *Handler {
	return &Handler{
		google: svcDep.GGAuthService,
		local:  svcDep.LocalAuthService,
		logger: logger,
		debug:  debug,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	router.HandleFunc("/auth/google", h.GoogleLogin).Methods("GET")
	router.HandleFunc("/auth/google/callback", h.GoogleCallback).Methods("GET")
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !response.DecodeJSON(w, r, &creds) {
		return
	}

	err := h.local.Register(r.Context(), creds)
	switch {
	case err == nil:
		response.WriteJSON(w, http.StatusCreated, map[string]bool{"ok": true})
	case errors.Is(err, errs.EmailRequired), errors.Is(err, errs.PasswordRequired):
		response.WriteError(w, http.StatusBadRequest, "Email and password are required")
	default:
		h.logger.Error("Register failed", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds domain.Credentials
	if !response.DecodeJSON(w, r, &creds) {
		return
	}

	token, err := h.local.Login(r.Context(), creds)
	if errors.Is(err, errs.InvalidCredentials) {
		response.WriteError(w, http.StatusBadRequest, "Bad creds")
		return
	}
	if err != nil {
		h.logger.Error("Login failed", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.WriteSuccess(w, domain.LoginResponse{Token: token})
}

// GoogleLogin redirects the user to the Google consent page
func (h *Handler) GoogleLogin(w http.ResponseWriter, r *http.Request) {
	url, err := h.google.AuthURL(r.Context())
	if err != nil {
		h.logger.Error("Google OAuth redirect failed", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Failed to initiate Google OAuth")
		return
	}
	http.Redirect(w, r, url, http.StatusFound)
}

type GoogleCallbackResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	User    domain.PublicUser `json:"user"`
	Token   string            `json:"token"`
}

// GoogleCallback finishes the Google sign-in and returns a session token
func (h *Handler) GoogleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.WriteFailure(w, http.StatusBadRequest, response.Failure{Error: "Authorization code is required"})
		return
	}

	login, err := h.google.HandleCallback(r.Context(), code, r.URL.Query().Get("state"))
	if errors.Is(err, errs.InvalidOAuthState) {
		response.WriteFailure(w, http.StatusBadRequest, response.Failure{Error: "Invalid OAuth state"})
		return
	}
	if err != nil {
		h.logger.Error("Google OAuth callback failed", "error", err)
		failure := response.Failure{Error: "Authentication failed"}
		if h.debug {
			failure.Details = err.Error()
		}
		response.WriteFailure(w, http.StatusInternalServerError, failure)
		return
	}

	response.WriteSuccess(w, GoogleCallbackResponse{
		Success: true,
		Message: fmt.Sprintf("Welcome, %s!", login.User.Name),
		User:    login.User,
		Token:   login.Token,
	})
}
