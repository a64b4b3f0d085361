package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ajitpratap0/riskready/internal/auth"
	"github.com/ajitpratap0/riskready/internal/forms"
	"github.com/ajitpratap0/riskready/internal/metrics"
	"github.com/ajitpratap0/riskready/internal/review"
	"github.com/ajitpratap0/riskready/internal/state"
)

const maxBodyBytes = 1 << 20 // 1 MB

// Server is an HTTP API server over the application state.
type Server struct {
	state  *state.State
	review *review.Manager
	gate   auth.Gate
	logger *slog.Logger
}

// NewServer creates a new Server with the given dependencies.
func NewServer(st *state.State, rv *review.Manager, gate auth.Gate, logger *slog.Logger) *Server {
	return &Server{
		state:  st,
		review: rv,
		gate:   gate,
		logger: logger,
	}
}

// Handler returns an http.Handler with all routes registered.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	protect := auth.Middleware(s.gate, func(w http.ResponseWriter, _ *http.Request) {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
	})
	handle := func(pattern string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, protect(h))
	}

	// Health and metrics: no auth required.
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	mux.Handle("GET /metrics", metrics.Handler())

	handle("GET /v1/dashboard", s.handleDashboard)

	handle("GET /v1/scenarios", s.handleListScenarios)
	handle("POST /v1/scenarios", s.handleCreateScenario)
	handle("GET /v1/scenarios/{id}", s.handleGetScenario)
	handle("PUT /v1/scenarios/{id}", s.handleUpdateScenario)
	handle("DELETE /v1/scenarios/{id}", s.handleDeleteScenario)
	handle("GET /v1/scenarios/{id}/analysis", s.handleAnalysis)
	handle("GET /v1/scenarios/{id}/risk", s.handleRisk)
	handle("GET /v1/scenarios/{id}/preparedness", s.handlePreparedness)

	handle("GET /v1/remediations", s.handleListRemediations)
	handle("POST /v1/remediations", s.handleCreateRemediation)
	handle("PUT /v1/remediations/{id}", s.handleUpdateRemediation)
	handle("DELETE /v1/remediations/{id}", s.handleDeleteRemediation)
	handle("PUT /v1/remediations/{id}/status", s.handleRemediationStatus)

	handle("GET /v1/plans", s.handleListPlans)
	handle("POST /v1/plans", s.handleCreatePlan)
	handle("PUT /v1/plans/{id}", s.handleUpdatePlan)
	handle("DELETE /v1/plans/{id}", s.handleDeletePlan)
	handle("GET /v1/plans/{id}/steps", s.handleListSteps)
	handle("POST /v1/plans/{id}/steps", s.handleAddStep)

	handle("PUT /v1/steps/{id}", s.handleUpdateStep)
	handle("DELETE /v1/steps/{id}", s.handleDeleteStep)
	handle("PUT /v1/steps/{id}/status", s.handleStepStatus)
	handle("POST /v1/steps/{id}/move", s.handleMoveStep)

	handle("GET /v1/inventory", s.handleListInventory)
	handle("POST /v1/inventory", s.handleCreateInventory)
	handle("GET /v1/inventory/summary", s.handleInventorySummary)
	handle("PUT /v1/inventory/{id}", s.handleUpdateInventory)
	handle("DELETE /v1/inventory/{id}", s.handleDeleteInventory)

	handle("GET /v1/contacts", s.handleListContacts)
	handle("POST /v1/contacts", s.handleCreateContact)
	handle("PUT /v1/contacts/{id}", s.handleUpdateContact)
	handle("DELETE /v1/contacts/{id}", s.handleDeleteContact)

	handle("GET /v1/categories", s.handleListCategories)
	handle("POST /v1/categories", s.handleCreateCategory)
	handle("PUT /v1/categories/{id}", s.handleUpdateCategory)
	handle("DELETE /v1/categories/{id}", s.handleDeleteCategory)
	handle("POST /v1/categories/{id}/toggle", s.handleToggleCategory)

	handle("GET /v1/preferences", s.handleGetPreferences)
	handle("PUT /v1/preferences", s.handleSetPreferences)

	handle("GET /v1/review", s.handleReview)

	return s.instrument(mux)
}

// --- middleware ---

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument counts requests by matched route pattern and status code.
func (s *Server) instrument(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		mux.ServeHTTP(rec, r)
		_, pattern := mux.Handler(r)
		if pattern == "" {
			pattern = "unmatched"
		}
		metrics.APIRequests.WithLabelValues(pattern, strconv.Itoa(rec.status)).Inc()
	})
}

// --- handlers ---

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReview(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.review.Run(s.state.Now()))
}

// --- helpers ---

// decode reads the request body into a form and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := forms.Decode(raw, dst); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// fail maps an error to a status code and writes it.
func (s *Server) fail(w http.ResponseWriter, op string, err error) {
	var verr *forms.ValidationError
	switch {
	case errors.Is(err, state.ErrNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &verr), errors.Is(err, state.ErrInvalidPreference):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("request failed", "op", op, "error", err)
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to %s", op))
	}
}

func (s *Server) notFound(w http.ResponseWriter, kind, id string) {
	s.writeError(w, http.StatusNotFound, fmt.Sprintf("%s %s not found", kind, id))
}

// writeJSON encodes v as JSON and writes it to w with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(v); encErr != nil {
		s.logger.Error("failed to encode response", "error", encErr)
	}
}

// writeError writes a JSON error response.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// Shutdown gracefully shuts down an http.Server with the given timeout.
// This is a convenience helper used by the serve command.
func Shutdown(srv *http.Server, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return srv.Shutdown(ctx)
}
