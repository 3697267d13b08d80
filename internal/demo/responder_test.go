package demo

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/internal/session"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

func newTestResponder() *Responder {
	return NewResponder(rand.New(rand.NewSource(1)), logger.NewNop())
}

func respond(t *testing.T, transmission string) string {
	t.Helper()
	result, err := newTestResponder().Respond(context.Background(), session.TurnRequest{
		Transmission: transmission,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result.Response
}

func TestKeywordLadder(t *testing.T) {
	tests := []struct {
		transmission string
		want         string
	}{
		{"N12345, ready for departure", "cleared for takeoff"},
		{"N12345, midfield downwind", "report base"},
		{"N12345, turning base, full stop", "cleared to land runway 27"},
		{"N12345, turning final", "cleared touch and go"},
		{"N12345, request the option", "cleared for the option"},
		{"N12345, taxi with information bravo", "information Bravo is current"},
		{"N12345, will hold short runway 27", "hold short runway 27"},
		{"N12345, request flight following to Stockton", "squawk 4521"},
		{"N12345, traffic in sight", "maintain visual separation"},
		{"N12345, looking for traffic", "no longer a factor"},
		{"mayday mayday mayday, N12345", "roger mayday"},
		{"N12345, declaring minimum fuel", "number one for runway 27"},
		{"N12345, three souls on board", "emergency equipment is standing by"},
		{"N12345, ten miles out, inbound", "make straight in runway 27"},
		{"N12345 is clear of the runway", "taxi to parking via Alpha"},
	}
	for _, tt := range tests {
		assert.Contains(t, respond(t, tt.transmission), tt.want, tt.transmission)
	}
}

func TestATISLetterAlwaysPhonetic(t *testing.T) {
	assert.Contains(t, respond(t, "N12345, taxi with information C"), "information Charlie is current")
	assert.Contains(t, respond(t, "N12345, taxi with information delta"), "information Delta is current")
	// No ATIS letter in the call defaults to Alpha.
	assert.Contains(t, respond(t, "N12345, taxi to the runway with information"), "information Alpha is current")
}

func TestCallsignExtraction(t *testing.T) {
	reply := respond(t, "N12345, ready for departure")
	assert.True(t, strings.HasPrefix(reply, "N12345,"), reply)

	reply = respond(t, "Cub 42 ready for departure")
	assert.True(t, strings.HasPrefix(reply, "CUB 42,"), reply)
}

func TestCallsignFromScenario(t *testing.T) {
	// Nothing in the transmission looks like a callsign, so the scenario's
	// assigned one is used.
	result, err := newTestResponder().Respond(context.Background(), session.TurnRequest{
		Scenario: &scenario.Scenario{
			Flight: scenario.FlightDetails{Callsign: "N4521B"},
		},
		Transmission: "go on up",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Response, "N4521B,"), result.Response)
}

func TestDefaultCallsign(t *testing.T) {
	reply := respond(t, "go on up")
	assert.True(t, strings.HasPrefix(reply, defaultCallsign+","), reply)
}

func TestFallbackDeterministicWithSeed(t *testing.T) {
	req := session.TurnRequest{Transmission: "just checking the weather"}

	a, err := NewResponder(rand.New(rand.NewSource(9)), logger.NewNop()).Respond(context.Background(), req)
	require.NoError(t, err)
	b, err := NewResponder(rand.New(rand.NewSource(9)), logger.NewNop()).Respond(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, a.Response, b.Response)
}

func TestFallbackUsesScenarioCategory(t *testing.T) {
	result, err := newTestResponder().Respond(context.Background(), session.TurnRequest{
		Scenario: &scenario.Scenario{
			Parsed: scenario.ParsedFields{ScenarioType: scenario.TypeEnroute},
			Flight: scenario.FlightDetails{Callsign: "N100AB"},
		},
		Transmission: "nothing that matches any rung",
	})
	require.NoError(t, err)
	for _, want := range []string{"traffic 10 o'clock", "altimeter 30.12", "proceed direct"} {
		if strings.Contains(result.Response, want) {
			return
		}
	}
	t.Fatalf("expected a flight-following fallback, got %q", result.Response)
}

func TestAlwaysAnswers(t *testing.T) {
	for _, transmission := range []string{"", "???", "completely unrelated text"} {
		result, err := newTestResponder().Respond(context.Background(), session.TurnRequest{Transmission: transmission})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Response)
	}
}
