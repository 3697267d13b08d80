package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kevincorvallis/AI-ATC/internal/airports"
	"github.com/kevincorvallis/AI-ATC/internal/charts"
	"github.com/kevincorvallis/AI-ATC/internal/config"
	"github.com/kevincorvallis/AI-ATC/internal/remote"
	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/internal/session"
	"github.com/kevincorvallis/AI-ATC/internal/storage/sqlite"
	"github.com/kevincorvallis/AI-ATC/internal/training"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

// Handler implements the HTTP endpoints.
type Handler struct {
	synthesizer *scenario.Synthesizer
	sessions    *session.Manager
	charts      *charts.Service
	store       *sqlite.DocumentStore
	config      *config.Config
	logger      *logger.Logger
	startedAt   time.Time
}

// NewHandler creates a new handler.
func NewHandler(synthesizer *scenario.Synthesizer, sessions *session.Manager, chartService *charts.Service, store *sqlite.DocumentStore, cfg *config.Config, log *logger.Logger) *Handler {
	return &Handler{
		synthesizer: synthesizer,
		sessions:    sessions,
		charts:      chartService,
		store:       store,
		config:      cfg,
		logger:      log.Named("api-handler"),
		startedAt:   time.Now().UTC(),
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", logger.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, errorResponse{Error: msg})
}

// GetHealth reports server liveness.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{
		"status":        "ok",
		"uptime":        time.Since(h.startedAt).String(),
		"live_sessions": h.sessions.Count(),
	})
}

// GetConfig reports which responders the server can reach, so the browser app
// knows whether turns come from the remote backend, the LLM, or demo canned
// replies.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	remoteConfigured := h.config.Remote.Endpoint != "" && h.config.Remote.Endpoint != remote.EndpointPlaceholder
	llmConfigured := h.config.LLM.APIKey != ""
	h.writeJSON(w, http.StatusOK, map[string]any{
		"remote_configured": remoteConfigured,
		"llm_configured":    llmConfigured,
		"demo_mode":         !remoteConfigured && !llmConfigured,
	})
}

type generateScenarioRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateScenario synthesizes a scenario from a free-text description.
func (h *Handler) GenerateScenario(w http.ResponseWriter, r *http.Request) {
	var req generateScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sc, err := h.synthesizer.Generate(r.Context(), req.Prompt)
	if err != nil {
		var verr *scenario.ValidationError
		if errors.As(err, &verr) {
			h.writeError(w, http.StatusBadRequest, verr.Reason)
			return
		}
		h.logger.Error("Scenario generation failed", logger.Error(err))
		h.writeError(w, http.StatusInternalServerError, "scenario generation failed")
		return
	}
	h.writeJSON(w, http.StatusOK, sc)
}

type startSessionRequest struct {
	Prompt   string `json:"prompt,omitempty"`
	Category string `json:"category,omitempty"`
	Exercise string `json:"exercise,omitempty"`
}

// StartSession creates a training session, either from a free-text prompt or
// from a catalog category/exercise pair.
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var sc *scenario.Scenario
	switch {
	case req.Prompt != "":
		var err error
		sc, err = h.synthesizer.Generate(r.Context(), req.Prompt)
		if err != nil {
			var verr *scenario.ValidationError
			if errors.As(err, &verr) {
				h.writeError(w, http.StatusBadRequest, verr.Reason)
				return
			}
			h.logger.Error("Scenario generation failed", logger.Error(err))
			h.writeError(w, http.StatusInternalServerError, "scenario generation failed")
			return
		}
	case req.Category != "":
		cat, ok := training.GetCategory(req.Category)
		if !ok {
			h.writeError(w, http.StatusNotFound, "unknown training category")
			return
		}
		sc = catalogScenario(cat, req.Exercise)
		if sc == nil {
			h.writeError(w, http.StatusNotFound, "unknown exercise")
			return
		}
	default:
		h.writeError(w, http.StatusBadRequest, "prompt or category required")
		return
	}

	s := h.sessions.Start(sc)
	h.writeJSON(w, http.StatusCreated, s)
}

// catalogScenario builds the scenario record for a stock catalog entry.
func catalogScenario(cat training.Category, exerciseID string) *scenario.Scenario {
	description := cat.Description
	if exerciseID != "" {
		ex, ok := training.GetExercise(cat.ID, exerciseID)
		if !ok {
			return nil
		}
		description = ex.Description
	}
	return &scenario.Scenario{
		UserPrompt: description,
		Parsed: scenario.ParsedFields{
			ScenarioType: scenario.Type(cat.ID),
			AircraftType: scenario.DefaultAircraft,
			Weather:      scenario.DefaultWeather,
			Wind:         scenario.DefaultWind,
			RawText:      description,
		},
		Flight: scenario.FlightDetails{
			TowerFreq: cat.Frequency,
		},
		Source: scenario.SourceLocal,
	}
}

// GetSession returns a live session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.sessions.Get(chi.URLParam(r, "sessionId"))
	if err != nil {
		h.writeError(w, http.StatusNotFound, "session not found")
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

// EndSession removes a session.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	h.sessions.End(chi.URLParam(r, "sessionId"))
	w.WriteHeader(http.StatusNoContent)
}

type transmitRequest struct {
	Message string `json:"message"`
}

type transmitResponse struct {
	Response    string            `json:"response"`
	HasFeedback bool              `json:"has_feedback"`
	Responder   string            `json:"responder"`
	History     []session.Message `json:"history"`
}

// Transmit routes one pilot transmission through the responder chain.
func (h *Handler) Transmit(w http.ResponseWriter, r *http.Request) {
	var req transmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		h.writeError(w, http.StatusBadRequest, "message required")
		return
	}

	s, result, err := h.sessions.Transmit(r.Context(), chi.URLParam(r, "sessionId"), req.Message)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			h.writeError(w, http.StatusNotFound, "session not found")
			return
		}
		h.logger.Error("Transmission failed", logger.Error(err))
		h.writeError(w, http.StatusInternalServerError, "transmission failed")
		return
	}

	h.writeJSON(w, http.StatusOK, transmitResponse{
		Response:    result.Response,
		HasFeedback: result.HasFeedback,
		Responder:   result.Responder,
		History:     s.History,
	})
}

// GetTrainingCategories returns the stock catalog.
func (h *Handler) GetTrainingCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, training.Categories())
}

// GetTrainingCategory returns one catalog category.
func (h *Handler) GetTrainingCategory(w http.ResponseWriter, r *http.Request) {
	cat, ok := training.GetCategory(chi.URLParam(r, "id"))
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown training category")
		return
	}
	h.writeJSON(w, http.StatusOK, cat)
}

// GetAirports returns the live audio airport directory.
func (h *Handler) GetAirports(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, airports.All())
}

// GetAirport returns one airport by ICAO code.
func (h *Handler) GetAirport(w http.ResponseWriter, r *http.Request) {
	ap, ok := airports.Lookup(chi.URLParam(r, "icao"))
	if !ok {
		h.writeError(w, http.StatusNotFound, "unknown airport")
		return
	}
	h.writeJSON(w, http.StatusOK, ap)
}

// GetCharts returns chart links for an airport.
func (h *Handler) GetCharts(w http.ResponseWriter, r *http.Request) {
	icao := strings.ToUpper(chi.URLParam(r, "icao"))
	if len(icao) < 3 || len(icao) > 4 {
		h.writeError(w, http.StatusBadRequest, "invalid airport code")
		return
	}
	h.writeJSON(w, http.StatusOK, h.charts.Get(r.Context(), icao))
}

// GetSettings returns stored pilot settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.GetSettings())
}

// PutSettings replaces stored pilot settings.
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	settings := sqlite.DefaultSettings()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.store.PutSettings(settings); err != nil {
		h.logger.Error("Failed to store settings", logger.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to store settings")
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

// ResetSettings restores default settings.
func (h *Handler) ResetSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(sqlite.KeySettings); err != nil {
		h.logger.Error("Failed to reset settings", logger.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to reset settings")
		return
	}
	h.writeJSON(w, http.StatusOK, sqlite.DefaultSettings())
}

// GetProgress returns accumulated training progress.
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.GetProgress())
}

type completeScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}

// CompleteScenario marks a catalog scenario as done.
func (h *Handler) CompleteScenario(w http.ResponseWriter, r *http.Request) {
	var req completeScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ScenarioID == "" {
		h.writeError(w, http.StatusBadRequest, "scenario_id required")
		return
	}
	h.store.CompleteScenario(req.ScenarioID)
	h.writeJSON(w, http.StatusOK, h.store.GetProgress())
}

// ResetProgress clears accumulated progress.
func (h *Handler) ResetProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(sqlite.KeyProgress); err != nil && err != sql.ErrNoRows {
		h.logger.Error("Failed to reset progress", logger.Error(err))
		h.writeError(w, http.StatusInternalServerError, "failed to reset progress")
		return
	}
	h.writeJSON(w, http.StatusOK, sqlite.DefaultProgress())
}
