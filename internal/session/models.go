// Package session manages live training conversations between a pilot and
// the simulated controller. A session pins one scenario, accumulates the
// radio exchange history, and routes each pilot transmission through the
// configured responder chain.
package session

import (
	"context"
	"time"

	"github.com/kevincorvallis/AI-ATC/internal/scenario"
)

// Role values for conversation messages.
const (
	RolePilot = "pilot"
	RoleATC   = "atc"
)

// Message is one radio transmission in a session's history.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// TurnRequest is everything a responder needs to answer one pilot
// transmission.
type TurnRequest struct {
	Scenario     *scenario.Scenario
	Transmission string
	History      []Message
}

// TurnResult carries the controller's reply. HasFeedback marks replies that
// include instructional correction rather than plain phraseology.
type TurnResult struct {
	Response    string `json:"response"`
	HasFeedback bool   `json:"has_feedback"`
	Responder   string `json:"responder"`
}

// Responder produces a controller reply for one pilot transmission.
// Implementations return (nil, nil) when unconfigured so the manager can
// fall through to the next responder in the chain.
type Responder interface {
	Name() string
	Respond(ctx context.Context, req TurnRequest) (*TurnResult, error)
}

// Session is one live training conversation.
type Session struct {
	ID        string             `json:"id"`
	Scenario  *scenario.Scenario `json:"scenario"`
	History   []Message          `json:"history"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
