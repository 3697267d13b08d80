// Package demo is the offline controller. It answers pilot transmissions
// from a keyword ladder with canned phraseology, so training works with no
// backend and no API key. It is the last responder in the chain and always
// produces a reply.
package demo

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/kevincorvallis/AI-ATC/internal/scenario"
	"github.com/kevincorvallis/AI-ATC/internal/session"
	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

const defaultCallsign = "CESSNA 12345"

var (
	callsignRe = regexp.MustCompile(`(?i)([A-Z]-?[A-Z]{4}|N\d{3,5}[A-Z]?|[A-Za-z]+\s*\d{2,5})`)
	atisRe     = regexp.MustCompile(`(?i)information\s+([a-z])`)
)

// Responder generates canned controller replies.
type Responder struct {
	logger *logger.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewResponder creates a demo responder. rng may be nil.
func NewResponder(rng *rand.Rand, log *logger.Logger) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{
		rng:    rng,
		logger: log.Named("demo"),
	}
}

// Name identifies this responder in turn results.
func (r *Responder) Name() string { return "demo" }

// Respond always produces a reply; the error is always nil.
func (r *Responder) Respond(_ context.Context, req session.TurnRequest) (*session.TurnResult, error) {
	callsign := extractCallsign(req.Transmission)
	if callsign == "" && req.Scenario != nil && req.Scenario.Flight.Callsign != "" {
		callsign = req.Scenario.Flight.Callsign
	}
	if callsign == "" {
		callsign = defaultCallsign
	}

	reply := r.reply(strings.ToLower(req.Transmission), req.Transmission, callsign, scenarioCategory(req.Scenario))
	return &session.TurnResult{
		Response:  reply,
		Responder: r.Name(),
	}, nil
}

// reply walks the keyword ladder top to bottom; the first matching rung
// wins. Unmatched transmissions get a category fallback.
func (r *Responder) reply(lower, original, callsign, category string) string {
	switch {
	case strings.Contains(lower, "ready for departure") || strings.Contains(lower, "ready for takeoff"):
		return fmt.Sprintf("%s, Tower, runway 27, cleared for takeoff, wind 270 at 8, make left traffic.", callsign)
	case strings.Contains(lower, "downwind"):
		return fmt.Sprintf("%s, Tower, roger downwind, report base.", callsign)
	case strings.Contains(lower, "base") || strings.Contains(lower, "final"):
		if strings.Contains(lower, "full stop") {
			return fmt.Sprintf("%s, cleared to land runway 27, wind 270 at 8.", callsign)
		}
		return fmt.Sprintf("%s, cleared touch and go runway 27, wind 270 at 8.", callsign)
	case strings.Contains(lower, "touch and go") || strings.Contains(lower, "option"):
		return fmt.Sprintf("%s, cleared for the option runway 27, wind 270 at 8.", callsign)
	case strings.Contains(lower, "taxi") && strings.Contains(lower, "information"):
		return fmt.Sprintf("%s, Ground, information %s is current, taxi to runway 27 via Alpha, hold short runway 27.",
			callsign, extractATISLetter(original))
	case strings.Contains(lower, "hold short"):
		return fmt.Sprintf("%s, hold short runway 27.", callsign)
	case strings.Contains(lower, "request") && strings.Contains(lower, "flight following"):
		return fmt.Sprintf("%s, squawk 4521, radar contact, flight following approved, proceed on course.", callsign)
	case strings.Contains(lower, "traffic in sight") || strings.Contains(lower, "looking"):
		if strings.Contains(lower, "in sight") {
			return fmt.Sprintf("%s, roger, maintain visual separation.", callsign)
		}
		return fmt.Sprintf("%s, traffic no longer a factor.", callsign)
	case strings.Contains(lower, "mayday") || strings.Contains(lower, "emergency"):
		return fmt.Sprintf("%s, roger mayday, souls on board and fuel remaining? All emergency equipment standing by.", callsign)
	case strings.Contains(lower, "minimum fuel") || strings.Contains(lower, "low fuel"):
		return fmt.Sprintf("%s, roger minimum fuel, you're number one for runway 27, cleared to land, emergency equipment standing by.", callsign)
	case strings.Contains(lower, "souls") || strings.Contains(lower, "fuel remaining"):
		return fmt.Sprintf("%s, roger, runway 27 cleared for landing, winds calm, emergency equipment is standing by.", callsign)
	case strings.Contains(lower, "inbound") || strings.Contains(lower, "landing"):
		return fmt.Sprintf("%s, Tower, make straight in runway 27, report 2 mile final.", callsign)
	case strings.Contains(lower, "clear") && strings.Contains(lower, "runway"):
		return fmt.Sprintf("%s, roger, taxi to parking via Alpha.", callsign)
	}

	options := categoryFallbacks(callsign, category)
	r.rngMu.Lock()
	defer r.rngMu.Unlock()
	return options[r.rng.Intn(len(options))]
}

func categoryFallbacks(callsign, category string) []string {
	switch category {
	case "ground_operations":
		return []string{
			fmt.Sprintf("%s, Ground, say your request.", callsign),
			fmt.Sprintf("%s, hold your position, traffic crossing ahead.", callsign),
			fmt.Sprintf("%s, continue taxi to runway 27.", callsign),
		}
	case "flight_following":
		return []string{
			fmt.Sprintf("%s, traffic 10 o'clock, 3 miles, southwest bound, altitude indicates 4,500.", callsign),
			fmt.Sprintf("%s, roger, altimeter 30.12, frequency change approved.", callsign),
			fmt.Sprintf("%s, proceed direct to destination, report any weather deviations.", callsign),
		}
	case "emergency":
		return []string{
			fmt.Sprintf("%s, say nature of emergency.", callsign),
			fmt.Sprintf("%s, do you need assistance? Equipment is standing by.", callsign),
			fmt.Sprintf("%s, you're cleared to land any runway, do you need vectors?", callsign),
		}
	default:
		return []string{
			fmt.Sprintf("%s, Tower, roger, report entering downwind.", callsign),
			fmt.Sprintf("%s, extend downwind, I'll call your base.", callsign),
			fmt.Sprintf("%s, number 2 following traffic on short final.", callsign),
		}
	}
}

// scenarioCategory maps a scenario to the fallback bucket it behaves like.
func scenarioCategory(sc *scenario.Scenario) string {
	if sc == nil {
		return "pattern_work"
	}
	switch sc.Parsed.ScenarioType {
	case scenario.TypeDeparture, scenario.TypeArrival, scenario.TypePracticeArea:
		return "pattern_work"
	case scenario.TypeEnroute:
		return "flight_following"
	default:
		return string(sc.Parsed.ScenarioType)
	}
}

func extractCallsign(text string) string {
	m := callsignRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

var phoneticLetters = [26]string{
	"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel",
	"India", "Juliett", "Kilo", "Lima", "Mike", "November", "Oscar", "Papa",
	"Quebec", "Romeo", "Sierra", "Tango", "Uniform", "Victor", "Whiskey",
	"X-ray", "Yankee", "Zulu",
}

func extractATISLetter(text string) string {
	m := atisRe.FindStringSubmatch(text)
	if m == nil {
		return "Alpha"
	}
	letter := strings.ToUpper(m[1])[0]
	return phoneticLetters[letter-'A']
}
