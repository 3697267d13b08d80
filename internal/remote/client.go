// Package remote is the HTTP client for an external ATC backend. The backend
// is a single endpoint that multiplexes scenario generation, chat turns, and
// chart lookups on an action field. Every method degrades: network or decode
// trouble yields (nil, nil) or an error the caller treats as "use the next
// option", never a user-facing failure.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kevincorvallis/AI-ATC/internal/charts"
	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/internal/session"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

// EndpointPlaceholder is the sentinel shipped in sample configs. An endpoint
// equal to it (or empty) means the remote backend is not configured.
const EndpointPlaceholder = "YOUR_API_ENDPOINT_HERE/atc"

const maxResponseBytes = 1 << 20

// Client talks to the remote ATC backend.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a remote client. timeout bounds each request end to end.
func NewClient(endpoint string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.Named("remote"),
	}
}

// Configured reports whether the client has a usable endpoint.
func (c *Client) Configured() bool {
	return c.endpoint != "" && c.endpoint != EndpointPlaceholder
}

// Name identifies this responder in turn results.
func (c *Client) Name() string { return "remote" }

type generateRequest struct {
	Action string `json:"action"`
	Prompt string `json:"prompt"`
}

type generateResponse struct {
	Success  bool                        `json:"success"`
	Scenario *scenario.GeneratedScenario `json:"scenario"`
	Error    string                      `json:"error,omitempty"`
}

// GenerateScenario asks the backend to design a scenario from the pilot's
// prompt. Unconfigured clients return (nil, nil).
func (c *Client) GenerateScenario(ctx context.Context, prompt string) (*scenario.GeneratedScenario, error) {
	if !c.Configured() {
		return nil, nil
	}

	var resp generateResponse
	if err := c.post(ctx, generateRequest{Action: "generate_scenario", Prompt: prompt}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.Scenario == nil {
		return nil, fmt.Errorf("backend declined scenario generation: %s", resp.Error)
	}
	return resp.Scenario, nil
}

type turnMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type turnRequest struct {
	Scenario           string        `json:"scenario"`
	Message            string        `json:"message"`
	History            []turnMessage `json:"history"`
	CustomSystemPrompt string        `json:"customSystemPrompt,omitempty"`
}

// wireRole translates session roles into the OpenAI chat roles the backend
// feeds straight into its completion call.
func wireRole(role string) string {
	if role == session.RolePilot {
		return "user"
	}
	return "assistant"
}

type turnResponse struct {
	Success     bool   `json:"success"`
	ATCResponse string `json:"atc_response"`
	HasFeedback bool   `json:"has_feedback"`
	Error       string `json:"error,omitempty"`
}

// Respond sends one pilot transmission for a controller reply. Unconfigured
// clients return (nil, nil) so the manager falls through.
func (c *Client) Respond(ctx context.Context, req session.TurnRequest) (*session.TurnResult, error) {
	if !c.Configured() {
		return nil, nil
	}

	payload := turnRequest{
		Scenario: string(req.Scenario.Parsed.ScenarioType),
		Message:  req.Transmission,
		History:  make([]turnMessage, 0, len(req.History)),
	}
	if req.Scenario.Source == scenario.SourceRemote || req.Scenario.Parsed.ScenarioType == scenario.TypeCustom {
		payload.CustomSystemPrompt = req.Scenario.SystemPrompt
	}
	for _, m := range req.History {
		payload.History = append(payload.History, turnMessage{Role: wireRole(m.Role), Content: m.Content})
	}

	var resp turnResponse
	if err := c.post(ctx, payload, &resp); err != nil {
		return nil, err
	}
	if !resp.Success || resp.ATCResponse == "" {
		return nil, fmt.Errorf("backend declined transmission: %s", resp.Error)
	}
	return &session.TurnResult{
		Response:    resp.ATCResponse,
		HasFeedback: resp.HasFeedback,
		Responder:   c.Name(),
	}, nil
}

type chartsRequest struct {
	Action  string `json:"action"`
	Airport string `json:"airport"`
}

type chartsResponse struct {
	Success bool           `json:"success"`
	Charts  []charts.Chart `json:"charts"`
	Diagram string         `json:"diagram_url,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// GetCharts fetches the backend's chart listing for an airport. Unconfigured
// clients return (nil, nil).
func (c *Client) GetCharts(ctx context.Context, airport string) (*charts.Bundle, error) {
	if !c.Configured() {
		return nil, nil
	}

	var resp chartsResponse
	if err := c.post(ctx, chartsRequest{Action: "get_charts", Airport: airport}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("backend declined chart lookup: %s", resp.Error)
	}
	return &charts.Bundle{
		Airport:    airport,
		Charts:     resp.Charts,
		DiagramURL: resp.Diagram,
		FetchedAt:  time.Now(),
	}, nil
}

func (c *Client) post(ctx context.Context, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Debug("Remote backend returned non-OK status",
			logger.Int("status", resp.StatusCode))
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
