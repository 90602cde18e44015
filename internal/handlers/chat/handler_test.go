package chat

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"gitlab.com/codeplatform.net/internal/adapter/logging"
	"gitlab.com/codeplatform.net/internal/handlers"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

type stubChat struct {
	problemID *int64
	reply     string
	err       error
}

func (s *stubChat) ProcessMessage(_ context.Context, _ int64, message string, problemID *int64) (string, error) {
	s.problemID = problemID
	if strings.TrimSpace(message) == "" {
		return "", errs.EmptyChatMessage
	}
	return s.reply, s.err
}

func post(t *testing.T, svc *stubChat, debug bool, body string) *httptest.ResponseRecorder {
	h := NewHandler(svc, logging.FromZap(zaptest.NewLogger(t)), debug)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req = req.WithContext(handlers.WithUserID(req.Context(), 1))
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChatReply(t *testing.T) {
	svc := &stubChat{reply: "hi there"}
	rec := post(t, svc, false, `{"message":"hello","problem_id":2}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"reply":"hi there"}`, rec.Body.String())
	if assert.NotNil(t, svc.problemID) {
		assert.Equal(t, int64(2), *svc.problemID)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	rec := post(t, &stubChat{}, false, `{"message":"  "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Message is required and cannot be empty."}`, rec.Body.String())
}

func TestChatFailure(t *testing.T) {
	rec := post(t, &stubChat{err: errors.New("quota")}, false, `{"message":"hi"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to process chat message"}`, rec.Body.String())

	rec = post(t, &stubChat{err: errors.New("quota")}, true, `{"message":"hi"}`)
	assert.JSONEq(t, `{"success":false,"error":"Failed to process chat message","details":"quota"}`, rec.Body.String())
}
