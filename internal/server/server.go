// Package server exposes the calculators as a JSON API, the programmatic
// face of the dashboard. Handlers validate strictly (HTTP clients get a
// 400, not a clamped number) and cache responses by input hash since the
// calculators are pure.
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/finplan/finplan/internal/cache"
	"github.com/finplan/finplan/internal/calculation"
	"github.com/finplan/finplan/internal/config"
	"github.com/finplan/finplan/internal/domain"
)

const maxBodyBytes = 1 << 20

// Handler serves the calculator API.
type Handler struct {
	logger  *zap.Logger
	engine  *calculation.Engine
	cache   cache.Repository
	version string

	// Now supplies the reference time for deadline and budget-month
	// calculations; overridable in tests.
	Now func() time.Time
}

// NewHandler constructs the API handler. A nil logger logs nowhere; a nil
// cache disables caching.
func NewHandler(logger *zap.Logger, store cache.Repository, version string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		logger:  logger,
		engine:  calculation.NewEngine(),
		cache:   store,
		version: version,
		Now:     time.Now,
	}
}

// Router wires the API routes.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/mortgage", h.handleMortgage)
	mux.HandleFunc("/api/retirement", h.handleRetirement)
	mux.HandleFunc("/api/salary", h.handleSalary)
	mux.HandleFunc("/api/payoff", h.handlePayoff)
	mux.HandleFunc("/api/budget", h.handleBudget)
	mux.HandleFunc("/api/plan", h.handlePlan)
	mux.HandleFunc("/api/health", h.handleHealth)
	mux.HandleFunc("/api/version", h.handleVersion)
	return mux
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"version": h.version})
}

func (h *Handler) handleMortgage(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	var in domain.MortgageInputs
	if err := json.Unmarshal(body, &in); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := config.ValidateMortgageInputs(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.respondCached(w, r, "mortgage", body, func() any {
		return calculation.BuildAmortizationSchedule(in)
	})
}

func (h *Handler) handleRetirement(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	var in domain.RetirementInputs
	if err := json.Unmarshal(body, &in); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := config.ValidateRetirementInputs(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.respondCached(w, r, "retirement", body, func() any {
		return calculation.ProjectRetirement(in)
	})
}

func (h *Handler) handleSalary(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	var in domain.SalaryInputs
	if err := json.Unmarshal(body, &in); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := config.ValidateSalaryInputs(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	h.respondCached(w, r, "salary", body, func() any {
		return calculation.CalculateNetSalary(in)
	})
}

func (h *Handler) handlePayoff(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	var in domain.GoalOrDebt
	if err := json.Unmarshal(body, &in); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := config.ValidateGoalOrDebt(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	now := h.referenceTime(r)
	// Deadline results depend on the reference date, so it is part of
	// the cache key.
	key := append(body, []byte(now.Format("2006-01-02"))...)
	h.respondCached(w, r, "payoff", key, func() any {
		return calculation.PlanPayoff(in, now)
	})
}

func (h *Handler) handleBudget(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	var in domain.BudgetInputs
	if err := json.Unmarshal(body, &in); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := config.ValidateBudgetInputs(&in); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	now := h.referenceTime(r)
	key := append(body, []byte(now.Format("2006-01"))...)
	h.respondCached(w, r, "budget", key, func() any {
		return calculation.SummarizeMonth(in, now)
	})
}

func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	var plan domain.Plan
	if err := json.Unmarshal(body, &plan); err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	parser := config.NewInputParser()
	if err := parser.ValidatePlan(&plan); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	now := h.referenceTime(r)
	key := append(body, []byte(now.Format("2006-01-02"))...)
	h.respondCached(w, r, "plan", key, func() any {
		return h.engine.RunPlan(&plan, now)
	})
}

// referenceTime returns the as_of query date when given, otherwise the
// handler clock.
func (h *Handler) referenceTime(r *http.Request) time.Time {
	if asOf := r.URL.Query().Get("as_of"); asOf != "" {
		if t, err := time.Parse("2006-01-02", asOf); err == nil {
			return t
		}
		if t, err := time.Parse(time.RFC3339, asOf); err == nil {
			return t
		}
		h.logger.Warn("ignoring unparseable as_of parameter", zap.String("as_of", asOf))
	}
	return h.Now()
}

func (h *Handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Method != http.MethodPost {
		h.writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return nil, false
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Errorf("failed to read request body: %w", err))
		return nil, false
	}
	return body, true
}

// respondCached serves the response from cache when the same inputs have
// been computed before, computing and storing it otherwise.
func (h *Handler) respondCached(w http.ResponseWriter, r *http.Request, op string, keyMaterial []byte, compute func() any) {
	start := time.Now()
	key := cacheKey(op, keyMaterial)

	if h.cache != nil {
		if payload, ok := h.cache.Get(key); ok {
			h.logger.Debug("cache hit", zap.String("op", op))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(payload))
			return
		}
	}

	result := compute()
	data, err := json.Marshal(result)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to encode response: %w", err))
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(key, string(data)); err != nil {
			// Cache failures are not worth failing the request over.
			h.logger.Warn("failed to cache result", zap.String("op", op), zap.Error(err))
		}
	}

	h.logger.Info("calculated",
		zap.String("op", op),
		zap.Duration("duration", time.Since(start)))

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func cacheKey(op string, material []byte) string {
	sum := sha256.Sum256(material)
	return "finplan:" + op + ":" + hex.EncodeToString(sum[:])
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	} else {
		h.logger.Debug("request rejected", zap.Error(err))
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
