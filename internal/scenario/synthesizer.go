package scenario

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

// Prompt length bounds, inclusive. Prompts outside them are rejected before
// any pipeline work.
const (
	MinPromptLen = 10
	MaxPromptLen = 1000
)

// RemoteGenerator is the external scenario-generation path. Implementations
// return (nil, nil) when unconfigured and must honor ctx cancellation; any
// error is treated as "fall back to the local pipeline", never surfaced.
type RemoteGenerator interface {
	GenerateScenario(ctx context.Context, prompt string) (*GeneratedScenario, error)
}

// Synthesizer is the single entry point for turning a pilot prompt into a
// Scenario. One synthesizer allows at most one in-flight remote request:
// starting a new generation cancels the previous one, and a late response
// from a superseded request is discarded.
type Synthesizer struct {
	remote RemoteGenerator // nil disables the remote path
	logger *logger.Logger

	mu         sync.Mutex
	cancel     context.CancelFunc
	generation uint64

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewSynthesizer creates a synthesizer. remote may be nil; rng may be nil, in
// which case a time-seeded source is used.
func NewSynthesizer(remote RemoteGenerator, rng *rand.Rand, log *logger.Logger) *Synthesizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{
		remote: remote,
		rng:    rng,
		logger: log.Named("synthesizer"),
	}
}

// Generate validates the prompt, tries the remote path, and falls back to the
// local extract/classify/render pipeline. The only error it returns is a
// *ValidationError; every internal failure is absorbed and reflected in the
// scenario's Source tag.
func (s *Synthesizer) Generate(ctx context.Context, prompt string) (*Scenario, error) {
	prompt = strings.TrimSpace(prompt)
	if len(prompt) < MinPromptLen {
		return nil, &ValidationError{Reason: fmt.Sprintf("description must be at least %d characters", MinPromptLen)}
	}
	if len(prompt) > MaxPromptLen {
		return nil, &ValidationError{Reason: fmt.Sprintf("description must be at most %d characters", MaxPromptLen)}
	}

	if generated := s.tryRemote(ctx, prompt); generated != nil {
		return s.fromGenerated(prompt, generated), nil
	}
	return s.assembleLocal(prompt), nil
}

// tryRemote issues the single permitted in-flight request, cancelling any
// previous one first. A response that arrives after this request has been
// superseded is dropped.
func (s *Synthesizer) tryRemote(ctx context.Context, prompt string) *GeneratedScenario {
	if s.remote == nil {
		return nil
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.generation++
	myGeneration := s.generation
	s.mu.Unlock()
	defer cancel()

	generated, err := s.remote.GenerateScenario(reqCtx, prompt)

	s.mu.Lock()
	stale := myGeneration != s.generation
	if !stale {
		s.cancel = nil
	}
	s.mu.Unlock()

	if stale {
		s.logger.Debug("Discarding superseded remote scenario response")
		return nil
	}
	if err != nil {
		s.logger.Debug("Remote scenario generation failed, using local pipeline", logger.Error(err))
		return nil
	}
	return generated
}

// assembleLocal runs the deterministic pipeline: extract, classify, generate
// flight details, render. It is pure and total over validated prompts.
func (s *Synthesizer) assembleLocal(prompt string) *Scenario {
	parsed := Extract(prompt)
	parsed.ScenarioType = Classify(prompt)
	flight := s.generateFlight(parsed)

	return &Scenario{
		UserPrompt:   prompt,
		Parsed:       parsed,
		Flight:       flight,
		SystemPrompt: Render(parsed.ScenarioType, parsed, flight),
		Source:       SourceLocal,
	}
}

// fromGenerated folds a pre-assembled remote scenario into the canonical
// record, filling anything the remote side omitted from the local pipeline.
func (s *Synthesizer) fromGenerated(prompt string, g *GeneratedScenario) *Scenario {
	parsed := Extract(prompt)
	parsed.ScenarioType = Classify(prompt)

	if g.ScenarioType != "" {
		parsed.ScenarioType = Type(g.ScenarioType)
	}
	if g.Airport != "" {
		parsed.AirportCode = g.Airport
	}
	if g.AirportName != "" {
		parsed.AirportName = g.AirportName
	} else if parsed.AirportName == "" && parsed.AirportCode != "" {
		parsed.AirportName = parsed.AirportCode
	}
	if g.AircraftType != "" {
		parsed.AircraftType = g.AircraftType
	}
	if g.Weather != "" {
		parsed.Weather = g.Weather
	}
	if g.Wind != "" {
		parsed.Wind = g.Wind
	}
	if g.Runway != "" {
		parsed.Runway = g.Runway
	}
	if g.Altitude != "" {
		if n, err := strconv.Atoi(strings.ReplaceAll(g.Altitude, ",", "")); err == nil {
			parsed.AltitudeFt = &n
		}
	}

	flight := s.generateFlight(parsed)
	if g.Callsign != "" {
		flight.Callsign = g.Callsign
	}
	if g.Squawk != "" {
		flight.Squawk = g.Squawk
	}
	if g.ATIS != "" {
		flight.ATISLetter = g.ATIS
	}
	if g.Tower != "" {
		flight.TowerFreq = g.Tower
	}
	if g.Ground != "" {
		flight.GroundFreq = g.Ground
	}
	if g.Departure != "" {
		flight.DepartureFreq = g.Departure
	}
	if g.SoulsOnBoard > 0 {
		flight.SoulsOnBoard = int(g.SoulsOnBoard)
	}
	if g.Runway != "" {
		flight.Runway = g.Runway
	}

	systemPrompt := g.SystemPrompt
	if systemPrompt == "" {
		systemPrompt = Render(parsed.ScenarioType, parsed, flight)
	}

	return &Scenario{
		UserPrompt:   prompt,
		Parsed:       parsed,
		Flight:       flight,
		SystemPrompt: systemPrompt,
		Source:       SourceRemote,
		Generated:    g,
	}
}

func (s *Synthesizer) generateFlight(parsed ParsedFields) FlightDetails {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return GenerateFlight(parsed, s.rng)
}
