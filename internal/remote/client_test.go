package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/internal/session"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

func newTestClient(endpoint string) *Client {
	return NewClient(endpoint, 5*time.Second, logger.NewNop())
}

func TestConfigured(t *testing.T) {
	assert.False(t, newTestClient("").Configured())
	assert.False(t, newTestClient(EndpointPlaceholder).Configured())
	assert.True(t, newTestClient("https://example.com/atc").Configured())
}

func TestGenerateScenarioUnconfigured(t *testing.T) {
	generated, err := newTestClient(EndpointPlaceholder).GenerateScenario(context.Background(), "some prompt")
	require.NoError(t, err)
	assert.Nil(t, generated)
}

func TestGenerateScenarioSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "generate_scenario", req["action"])
		assert.Equal(t, "pattern work at KPAO", req["prompt"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"scenario": map[string]any{
				"airport":        "KPAO",
				"callsign":       "N4521B",
				"souls_on_board": "2",
				"system_prompt":  "You are the tower at Palo Alto.",
			},
		})
	}))
	defer srv.Close()

	generated, err := newTestClient(srv.URL).GenerateScenario(context.Background(), "pattern work at KPAO")
	require.NoError(t, err)
	require.NotNil(t, generated)
	assert.Equal(t, "KPAO", generated.Airport)
	assert.Equal(t, "N4521B", generated.Callsign)
	assert.Equal(t, scenario.Count(2), generated.SoulsOnBoard)
	assert.Equal(t, "You are the tower at Palo Alto.", generated.SystemPrompt)
}

func TestGenerateScenarioServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateScenario(context.Background(), "anything at all")
	assert.Error(t, err)
}

func TestGenerateScenarioMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateScenario(context.Background(), "anything at all")
	assert.Error(t, err)
}

func TestGenerateScenarioDeclined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "no prompt"})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GenerateScenario(context.Background(), "anything at all")
	assert.Error(t, err)
}

func TestRespondSendsHistoryAndCustomPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Scenario           string `json:"scenario"`
			Message            string `json:"message"`
			History            []turnMessage
			CustomSystemPrompt string `json:"customSystemPrompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "custom", req.Scenario)
		assert.Equal(t, "ready to taxi", req.Message)
		require.Len(t, req.History, 2)
		assert.Equal(t, "user", req.History[0].Role)
		assert.Equal(t, "assistant", req.History[1].Role)
		assert.Equal(t, "You are ground control.", req.CustomSystemPrompt)

		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"atc_response": "Taxi to runway 27 via Alpha.",
			"has_feedback": false,
		})
	}))
	defer srv.Close()

	sc := &scenario.Scenario{
		Parsed:       scenario.ParsedFields{ScenarioType: scenario.TypeCustom},
		SystemPrompt: "You are ground control.",
		Source:       scenario.SourceLocal,
	}
	result, err := newTestClient(srv.URL).Respond(context.Background(), session.TurnRequest{
		Scenario:     sc,
		Transmission: "ready to taxi",
		History: []session.Message{
			{Role: session.RolePilot, Content: "ground, cessna 12345"},
			{Role: session.RoleATC, Content: "cessna 12345, go ahead"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Taxi to runway 27 via Alpha.", result.Response)
	assert.False(t, result.HasFeedback)
	assert.Equal(t, "remote", result.Responder)
}

func TestRespondUnconfigured(t *testing.T) {
	result, err := newTestClient("").Respond(context.Background(), session.TurnRequest{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestGetCharts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "get_charts", req["action"])
		assert.Equal(t, "KSFO", req["airport"])

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"charts": []map[string]string{
				{"name": "ILS RWY 28L", "url": "https://example.com/ils28l.pdf"},
			},
		})
	}))
	defer srv.Close()

	bundle, err := newTestClient(srv.URL).GetCharts(context.Background(), "KSFO")
	require.NoError(t, err)
	require.NotNil(t, bundle)
	require.Len(t, bundle.Charts, 1)
	assert.Equal(t, "ILS RWY 28L", bundle.Charts[0].Name)
}
