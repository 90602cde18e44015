package submissions

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/services/submission"
	"gitlab.com/codeplatform.net/internal/handlers"
	"gitlab.com/codeplatform.net/internal/handlers/response"
	"gitlab.com/codeplatform.net/internal/static/errs"
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
	router.Handle("/api/submissions", protect(http.HandlerFunc(h.Submit))).Methods("POST")
}

type SubmitRequest struct {
	ProblemID int64  `json:"problem_id"`
	Code      string `json:"code_txt"`
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, _ := handlers.UserID(r.Context())

	var req SubmitRequest
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.submissionService.Submit(r.Context(), userID, req.ProblemID, req.Code)
	if errors.Is(err, errs.NoTestCases) {
		response.WriteError(w, http.StatusNotFound, "No test cases found for this problem.")
		return
	}
	if err != nil {
		h.logger.Error("Submission error", "userId", userID, "problemId", req.ProblemID, "error", err)
		response.WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response.WriteJSON(w, http.StatusCreated, result)
}
