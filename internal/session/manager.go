package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/kevincorvallis/AI-ATC/internal/config"
	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

// ErrNotFound is returned for unknown or expired session IDs.
var ErrNotFound = fmt.Errorf("session not found")

// ProgressRecorder receives training-progress events. Nil recorders are
// allowed; progress tracking is best effort.
type ProgressRecorder interface {
	RecordSession(category string)
	RecordTransmission()
	AddTrainingTime(d time.Duration)
}

// Manager owns the live session store and the responder chain. Sessions
// expire after the configured idle TTL.
type Manager struct {
	sessions   *gocache.Cache
	responders []Responder
	progress   ProgressRecorder
	maxHistory int
	logger     *logger.Logger
}

// NewManager creates a session manager. responders are tried in order on
// each transmission; the last one is expected to always answer.
func NewManager(cfg *config.SessionsConfig, responders []Responder, progress ProgressRecorder, log *logger.Logger) *Manager {
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute
	sweep := time.Duration(cfg.SweepMinutes) * time.Minute
	return &Manager{
		sessions:   gocache.New(ttl, sweep),
		responders: responders,
		progress:   progress,
		maxHistory: cfg.MaxHistoryTurns,
		logger:     log.Named("sessions"),
	}
}

// Start creates a session pinned to a scenario.
func (m *Manager) Start(sc *scenario.Scenario) *Session {
	now := time.Now().UTC()
	s := &Session{
		ID:        uuid.NewString(),
		Scenario:  sc,
		History:   []Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.sessions.Set(s.ID, s, gocache.DefaultExpiration)
	if m.progress != nil {
		m.progress.RecordSession(string(sc.Parsed.ScenarioType))
	}
	m.logger.Info("Session started",
		logger.String("id", s.ID),
		logger.String("scenario_type", string(sc.Parsed.ScenarioType)))
	return s
}

// Get looks up a live session.
func (m *Manager) Get(id string) (*Session, error) {
	v, ok := m.sessions.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	return v.(*Session), nil
}

// End removes a session and banks its elapsed time as training progress.
// Ending an unknown session is not an error.
func (m *Manager) End(id string) {
	if m.progress != nil {
		if s, err := m.Get(id); err == nil {
			m.progress.AddTrainingTime(time.Now().UTC().Sub(s.CreatedAt))
		}
	}
	m.sessions.Delete(id)
}

// Transmit routes one pilot transmission through the responder chain,
// records both sides in the session history, and refreshes the TTL. A
// responder that returns (nil, nil) or an error yields to the next one.
func (m *Manager) Transmit(ctx context.Context, id, transmission string) (*Session, *TurnResult, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, nil, err
	}

	req := TurnRequest{
		Scenario:     s.Scenario,
		Transmission: transmission,
		History:      s.History,
	}

	var result *TurnResult
	for _, r := range m.responders {
		result, err = r.Respond(ctx, req)
		if err != nil {
			m.logger.Warn("Responder failed, trying next",
				logger.String("responder", r.Name()), logger.Error(err))
			continue
		}
		if result != nil {
			break
		}
	}
	if result == nil {
		return nil, nil, fmt.Errorf("no responder produced a reply")
	}

	now := time.Now().UTC()
	s.History = append(s.History,
		Message{Role: RolePilot, Content: transmission, Timestamp: now},
		Message{Role: RoleATC, Content: result.Response, Timestamp: now},
	)
	if m.maxHistory > 0 && len(s.History) > m.maxHistory*2 {
		s.History = s.History[len(s.History)-m.maxHistory*2:]
	}
	s.UpdatedAt = now
	m.sessions.Set(s.ID, s, gocache.DefaultExpiration)

	if m.progress != nil {
		m.progress.RecordTransmission()
	}
	return s, result, nil
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	return m.sessions.ItemCount()
}
