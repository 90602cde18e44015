package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"gitlab.com/codeplatform.net/internal/adapter/crypto"
	"gitlab.com/codeplatform.net/internal/adapter/logging"
	"gitlab.com/codeplatform.net/internal/config"
	"gitlab.com/codeplatform.net/internal/domain"
	"gitlab.com/codeplatform.net/internal/handlers"
)

func newProvider(t *testing.T, debug bool) (*handlers.MiddlewareProvider, *crypto.JWTServiceImpl) {
	jwtSvc := crypto.NewJWTService(&config.JwtConfig{Secret: "s3cret", TTL: time.Minute})
	return handlers.New(jwtSvc, logging.FromZap(zaptest.NewLogger(t)), debug), jwtSvc
}

func echoUser() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := handlers.UserID(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = io.WriteString(w, strings.Repeat("u", int(id)))
	})
}

func TestProtect(t *testing.T) {
	mw, jwtSvc := newProvider(t, false)
	token, err := jwtSvc.IssueToken(context.Background(), domain.AuthPayload{UserID: 3})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, `{"error":"No token"}`},
		{"not bearer", "Basic abc", http.StatusUnauthorized, `{"error":"No token"}`},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, `{"error":"No token"}`},
		{"garbage", "Bearer not.a.jwt", http.StatusUnauthorized, `{"error":"Bad token"}`},
		{"valid", "Bearer " + token, http.StatusOK, "uuu"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			mw.Protect(echoUser()).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, tt.body, rec.Body.String())
			} else {
				assert.JSONEq(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestRecoverer(t *testing.T) {
	boom := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	mw, _ := newProvider(t, false)
	rec := httptest.NewRecorder()
	mw.Recoverer(boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, rec.Body.String())

	devMw, _ := newProvider(t, true)
	rec = httptest.NewRecorder()
	devMw.Recoverer(boom).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.JSONEq(t, `{"success":false,"error":"Internal server error","details":"boom"}`, rec.Body.String())
}

func TestLimitBody(t *testing.T) {
	h := handlers.LimitBody(4)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
		}
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("0123456789")))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("012")))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecureHeadersAndRequestLogger(t *testing.T) {
	mw, _ := newProvider(t, false)
	h := mw.RequestLogger(mw.SecureHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	handlers.NewSystemHandler("test").Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)
	assert.Contains(t, rec.Body.String(), `"environment":"test"`)
}
