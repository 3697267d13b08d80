package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevincorvallis/AI-ATC/internal/config"
	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

type stubResponder struct {
	name   string
	result *TurnResult
	err    error
	calls  int
}

func (s *stubResponder) Name() string { return s.name }

func (s *stubResponder) Respond(ctx context.Context, req TurnRequest) (*TurnResult, error) {
	s.calls++
	return s.result, s.err
}

type stubProgress struct {
	sessions      []string
	transmissions int
	trainingTime  time.Duration
	timeCalls     int
}

func (s *stubProgress) RecordSession(category string) { s.sessions = append(s.sessions, category) }
func (s *stubProgress) RecordTransmission()           { s.transmissions++ }
func (s *stubProgress) AddTrainingTime(d time.Duration) {
	s.trainingTime += d
	s.timeCalls++
}

func testScenario() *scenario.Scenario {
	return &scenario.Scenario{
		UserPrompt:   "pattern work at the home field",
		Parsed:       scenario.ParsedFields{ScenarioType: scenario.TypeDeparture},
		SystemPrompt: "You are a tower controller.",
		Source:       scenario.SourceLocal,
	}
}

func newTestManager(responders []Responder, progress ProgressRecorder) *Manager {
	cfg := &config.SessionsConfig{TTLMinutes: 60, SweepMinutes: 10, MaxHistoryTurns: 50}
	return NewManager(cfg, responders, progress, logger.NewNop())
}

func TestStartAndGet(t *testing.T) {
	progress := &stubProgress{}
	m := newTestManager(nil, progress)

	s := m.Start(testScenario())
	require.NotEmpty(t, s.ID)
	assert.Empty(t, s.History)

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.Equal(t, []string{"departure"}, progress.sessions)
	assert.Equal(t, 1, m.Count())
}

func TestGetUnknownSession(t *testing.T) {
	m := newTestManager(nil, nil)
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEndSession(t *testing.T) {
	m := newTestManager(nil, nil)
	s := m.Start(testScenario())
	m.End(s.ID)

	_, err := m.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Ending twice is harmless.
	m.End(s.ID)
}

func TestEndSessionBanksTrainingTime(t *testing.T) {
	progress := &stubProgress{}
	m := newTestManager(nil, progress)
	s := m.Start(testScenario())
	s.CreatedAt = s.CreatedAt.Add(-90 * time.Second)

	m.End(s.ID)
	require.Equal(t, 1, progress.timeCalls)
	assert.GreaterOrEqual(t, progress.trainingTime, 90*time.Second)

	// An expired or unknown session banks nothing.
	m.End(s.ID)
	assert.Equal(t, 1, progress.timeCalls)
}

func TestTransmitRecordsBothSides(t *testing.T) {
	responder := &stubResponder{name: "stub", result: &TurnResult{Response: "cleared for takeoff", Responder: "stub"}}
	progress := &stubProgress{}
	m := newTestManager([]Responder{responder}, progress)
	s := m.Start(testScenario())

	got, result, err := m.Transmit(context.Background(), s.ID, "ready for departure")
	require.NoError(t, err)
	assert.Equal(t, "cleared for takeoff", result.Response)
	require.Len(t, got.History, 2)
	assert.Equal(t, RolePilot, got.History[0].Role)
	assert.Equal(t, "ready for departure", got.History[0].Content)
	assert.Equal(t, RoleATC, got.History[1].Role)
	assert.Equal(t, 1, progress.transmissions)
}

func TestTransmitFallsThroughChain(t *testing.T) {
	failing := &stubResponder{name: "failing", err: errors.New("backend down")}
	silent := &stubResponder{name: "silent"}
	answering := &stubResponder{name: "answering", result: &TurnResult{Response: "roger", Responder: "answering"}}
	m := newTestManager([]Responder{failing, silent, answering}, nil)
	s := m.Start(testScenario())

	_, result, err := m.Transmit(context.Background(), s.ID, "tower, radio check")
	require.NoError(t, err)
	assert.Equal(t, "answering", result.Responder)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, silent.calls)
	assert.Equal(t, 1, answering.calls)
}

func TestTransmitNoResponderAnswers(t *testing.T) {
	m := newTestManager([]Responder{&stubResponder{name: "silent"}}, nil)
	s := m.Start(testScenario())

	_, _, err := m.Transmit(context.Background(), s.ID, "anyone up")
	assert.Error(t, err)
}

func TestTransmitUnknownSession(t *testing.T) {
	m := newTestManager(nil, nil)
	_, _, err := m.Transmit(context.Background(), "nope", "hello")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransmitTrimsHistory(t *testing.T) {
	responder := &stubResponder{name: "stub", result: &TurnResult{Response: "roger", Responder: "stub"}}
	cfg := &config.SessionsConfig{TTLMinutes: 60, SweepMinutes: 10, MaxHistoryTurns: 2}
	m := NewManager(cfg, []Responder{responder}, nil, logger.NewNop())
	s := m.Start(testScenario())

	for i := 0; i < 5; i++ {
		_, _, err := m.Transmit(context.Background(), s.ID, "position report")
		require.NoError(t, err)
	}

	got, err := m.Get(s.ID)
	require.NoError(t, err)
	assert.Len(t, got.History, 4)
}
