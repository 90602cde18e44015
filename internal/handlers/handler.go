package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/codeplatform.net/internal/handlers/response"
)

// SystemHandler serves the service's own endpoints
type SystemHandler struct {
	environment string
	now         func() time.Time
}

func NewSystemHandler(environment string) *SystemHandler {
	return &SystemHandler{
		environment: environment,
		now:         time.Now,
	}
}

func (h *SystemHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.Health).Methods("GET")
	router.HandleFunc("/", h.Root).Methods("GET")
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}

func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, HealthResponse{
		Status:      "OK",
		Timestamp:   h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		Environment: h.environment,
	})
}

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]string{
		"message": "Welcome to Coding Platform API",
		"health":  "/health",
	})
}
