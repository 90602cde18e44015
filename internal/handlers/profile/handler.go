package profile

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/services/submission"
	"gitlab.com/codeplatform.net/internal/handlers"
	"gitlab.com/codeplatform.net/internal/handlers/response"
)

type Handler struct {
	submissionService submission.ISubmissionService
	logger            primary.Logger
}

func NewHandler(submissionService submission.ISubmissionService, logger primary.Logger) *Handler {
	return &Handler{
		submissionService: submissionService,
		logger:            logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, protect mux.MiddlewareFunc) {
	router.Handle("/api/profile/submissions", protect(http.HandlerFunc(h.Submissions))).Methods("GET")
}

// Submissions lists the caller's submissions, newest first
func (h *Handler) Submissions(w http.ResponseWriter, r *http.Request) {
	userID, _ := handlers.UserID(r.Context())

	items, err := h.submissionService.History(r.Context(), userID)
	if err != nil {
		h.logger.Error("Fetch submissions error", "userId", userID, "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.WriteSuccess(w, items)
}
