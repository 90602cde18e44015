package submissions

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gitlab.com/codeplatform.net/internal/adapter/logging"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/handlers"
	"gitlab.com/codeplatform.net/internal/static/errs"
)

type stubService struct {
	userID, problemID int64
	code              string
	result            *domain.SubmissionResult
	err               error
}

func (s *stubService) Submit(_ context.Context, userID, problemID int64, code string) (*domain.SubmissionResult, error) {
	s.userID, s.problemID, s.code = userID, problemID, code
	return s.result, s.err
}

func (s *stubService) History(context.Context, int64) ([]*domain.SubmissionHistoryItem, error) {
	return nil, nil
}

// asUser stands in for the bearer middleware.
func asUser(id int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(handlers.WithUserID(r.Context(), id)))
		})
	}
}

func serve(t *testing.T, svc *stubService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	NewHandler(svc, logging.FromZap(zaptest.NewLogger(t))).RegisterRoutes(router, asUser(7))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/submissions", strings.NewReader(body)))
	return rec
}

func TestSubmitCreated(t *testing.T) {
	svc := &stubService{result: &domain.SubmissionResult{
		SubmissionID: 11,
		Verdict:      domain.VerdictWrongAnswer,
		RuntimeMs:    30,
		Message:      "Wrong Answer ❌",
		FailedCase:   &domain.FailedCase{Input: "2 3", Expected: "5", Actual: "6", Status: "Wrong Answer"},
	}}

	rec := serve(t, svc, `{"problem_id":4,"code_txt":"class Main{}"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"submission_id": 11,
		"verdict": "WA",
		"runtime_ms": 30,
		"message": "Wrong Answer ❌",
		"failedCase": {"input":"2 3","expected":"5","actual":"6","status":"Wrong Answer","stderr":""}
	}`, rec.Body.String())
	assert.Equal(t, int64(7), svc.userID)
	assert.Equal(t, int64(4), svc.problemID)
	assert.Equal(t, "class Main{}", svc.code)
}

func TestSubmitAcceptedOmitsFailedCase(t *testing.T) {
	svc := &stubService{result: &domain.SubmissionResult{SubmissionID: 1, Verdict: domain.VerdictAccepted, RuntimeMs: 20, Message: "Accepted ✅"}}

	rec := serve(t, svc, `{"problem_id":4,"code_txt":"x"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "failedCase")
}

func TestSubmitErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"no test cases", errs.NoTestCases, http.StatusNotFound, `{"error":"No test cases found for this problem."}`},
		{"judge down", errs.JudgeTransport, http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"malformed", errs.MalformedJudgeResponse, http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"persistence", errs.PersistenceFailed, http.StatusInternalServerError, `{"error":"Internal server error"}`},
		{"other", errors.New("boom"), http.StatusInternalServerError, `{"error":"Internal server error"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &stubService{err: tt.err}, `{"problem_id":4,"code_txt":"x"}`)
			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestSubmitBadBody(t *testing.T) {
	rec := serve(t, &stubService{}, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
