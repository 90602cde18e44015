package problems

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/services/problem"
	"gitlab.com/codeplatform.net/internal/handlers/response"
)

type Handler struct {
	problemService problem.IProblemService
	logger         primary.Logger
}

func NewHandler(problemService problem.IProblemService, logger primary.Logger) *Handler {
	return &Handler{
		problemService: problemService,
		logger:         logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/problems", h.List).Methods("GET")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	problems, err := h.problemService.ListProblems(r.Context())
	if err != nil {
		h.logger.Error("Failed to list problems", "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response.WriteSuccess(w, problems)
}
