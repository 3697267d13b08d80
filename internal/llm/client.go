// Package llm drives scenario design and controller replies through the
// OpenAI chat completions API. It is the middle rung of the responder chain:
// used when no remote backend is configured but an API key is present.
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/kevincorvallis/AI-ATC/internal/config"
	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/internal/session"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

const (
	scenarioMaxTokens = 1000
	scenarioTemp      = 0.7

	turnPresencePenalty = 0.3
	turnFreqPenalty     = 0.3
)

// Client wraps the OpenAI API for both scenario generation and chat turns.
type Client struct {
	client    openai.Client
	model     string
	maxTokens int64
	turnTemp  float64
	apiKey    string
	logger    *logger.Logger
}

// NewClient creates an LLM client from configuration. An empty API key is
// allowed; the client just reports itself unconfigured.
func NewClient(cfg *config.LLMConfig, log *logger.Logger) *Client {
	return &Client{
		client:    openai.NewClient(option.WithAPIKey(cfg.APIKey)),
		model:     cfg.Model,
		maxTokens: int64(cfg.MaxResponseTokens),
		turnTemp:  cfg.Temperature,
		apiKey:    cfg.APIKey,
		logger:    log.Named("llm"),
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Name identifies this responder in turn results.
func (c *Client) Name() string { return "llm" }

// GenerateScenario asks the model to design a scenario in JSON mode.
// Unconfigured clients return (nil, nil).
func (c *Client) GenerateScenario(ctx context.Context, prompt string) (*scenario.GeneratedScenario, error) {
	if !c.Configured() {
		return nil, nil
	}

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(designerPrompt),
			openai.UserMessage("Generate a detailed scenario for: " + prompt),
		},
		MaxTokens:   openai.Int(scenarioMaxTokens),
		Temperature: openai.Float(scenarioTemp),
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &shared.ResponseFormatJSONObjectParam{},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scenario generation request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("scenario generation returned no choices")
	}

	var generated scenario.GeneratedScenario
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &generated); err != nil {
		return nil, fmt.Errorf("failed to decode generated scenario: %w", err)
	}
	return &generated, nil
}

// Respond produces a controller reply for one pilot transmission.
// Unconfigured clients return (nil, nil) so the manager falls through.
func (c *Client) Respond(ctx context.Context, req session.TurnRequest) (*session.TurnResult, error) {
	if !c.Configured() {
		return nil, nil
	}

	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(c.systemPrompt(req.Scenario)),
	}
	for _, m := range req.History {
		if m.Role == session.RolePilot {
			messages = append(messages, openai.UserMessage(m.Content))
		} else {
			messages = append(messages, openai.AssistantMessage(m.Content))
		}
	}
	messages = append(messages, openai.UserMessage("Pilot: "+req.Transmission))

	completion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:            shared.ChatModel(c.model),
		Messages:         messages,
		MaxTokens:        openai.Int(c.maxTokens),
		Temperature:      openai.Float(c.turnTemp),
		PresencePenalty:  openai.Float(turnPresencePenalty),
		FrequencyPenalty: openai.Float(turnFreqPenalty),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	reply := completion.Choices[0].Message.Content
	return &session.TurnResult{
		Response:    reply,
		HasFeedback: HasFeedback(reply),
		Responder:   c.Name(),
	}, nil
}

// systemPrompt picks the scenario's own prompt when it has one, otherwise a
// stock category persona.
func (c *Client) systemPrompt(sc *scenario.Scenario) string {
	if sc != nil && sc.SystemPrompt != "" {
		return sc.SystemPrompt
	}
	key := defaultScenarioPrompt
	if sc != nil {
		if _, ok := scenarioPrompts[string(sc.Parsed.ScenarioType)]; ok {
			key = string(sc.Parsed.ScenarioType)
		}
	}
	return scenarioPrompts[key]
}

// HasFeedback reports whether a controller reply contains instructional
// correction wording.
func HasFeedback(reply string) bool {
	lower := strings.ToLower(reply)
	for _, w := range feedbackWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
