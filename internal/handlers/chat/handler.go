package chat

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/services/chat"
	"gitlab.com/codeplatform.net/internal/handlers"
	"gitlab.com/codeplatform.net/internal/handlers/response"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

type Handler struct {
	chatService chat.IChatService
	logger      primary.Logger
	debug       bool
}

func NewHandler(chatService chat.IChatService, logger primary.Logger, debug bool) *Handler {
	return &Handler{
		chatService: chatService,
		logger:      logger,
		debug:       debug,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, protect mux.MiddlewareFunc) {
	router.Handle("/api/chat", protect(http.HandlerFunc(h.Chat))).Methods("POST")
}

type Request struct {
	Message   string `json:"message"`
	ProblemID *int64 `json:"problem_id"`
}

type Response struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, _ := handlers.UserID(r.Context())

	var req Request
	if !response.DecodeJSON(w, r, &req) {
		return
	}

	reply, err := h.chatService.ProcessMessage(r.Context(), userID, req.Message, req.ProblemID)
	if errors.Is(err, errs.EmptyChatMessage) {
		response.WriteFailure(w, http.StatusBadRequest, response.Failure{Error: "Message is required and cannot be empty."})
		return
	}
	if err != nil {
		h.logger.Error("Chat error", "userId", userID, "error", err)
		failure := response.Failure{Error: "Failed to process chat message"}
		if h.debug {
			failure.Details = err.Error()
		}
		response.WriteFailure(w, http.StatusInternalServerError, failure)
		return
	}

	response.WriteSuccess(w, Response{Success: true, Reply: reply})
}
