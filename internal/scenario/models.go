// Package scenario turns a pilot's free-text description of a training
// situation into a structured scenario and a system prompt for the ATC model.
// The pipeline is remote-first: a configured generation endpoint (or LLM) is
// asked for a pre-assembled scenario, and any failure there falls back to a
// deterministic local parse.
package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies which prompt template a scenario uses.
type Type string

const (
	TypeArrival      Type = "arrival"
	TypeDeparture    Type = "departure"
	TypeEnroute      Type = "enroute"
	TypePracticeArea Type = "practice_area"
	TypeCustom       Type = "custom"
)

// Source records which pipeline produced a scenario.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Field defaults applied when extraction finds nothing.
const (
	DefaultAircraft = "Cessna 172"
	DefaultWeather  = "VFR"
	DefaultWind     = "270 at 8 kts"
)

// ParsedFields holds the slots extracted from a pilot's prompt. Every slot is
// optional; zero values mean "not found" and rendering substitutes documented
// defaults.
type ParsedFields struct {
	ScenarioType Type   `json:"scenario_type"`
	AirportCode  string `json:"airport_code,omitempty"`
	AirportName  string `json:"airport_name,omitempty"`
	AircraftType string `json:"aircraft_type"`
	AltitudeFt   *int   `json:"altitude_ft,omitempty"`
	Direction    string `json:"direction,omitempty"`
	Runway       string `json:"runway,omitempty"`
	Weather      string `json:"weather"`
	Wind         string `json:"wind"`
	RawText      string `json:"raw_text"`
}

// FlightDetails are the generated-or-supplied flight parameters a scenario
// briefing shows and the system prompt embeds.
type FlightDetails struct {
	Callsign      string `json:"callsign"`
	Squawk        string `json:"squawk"`
	Runway        string `json:"runway"`
	TowerFreq     string `json:"tower_freq"`
	GroundFreq    string `json:"ground_freq"`
	DepartureFreq string `json:"departure_freq"`
	ATISLetter    string `json:"atis_letter"`
	SoulsOnBoard  int    `json:"souls_on_board"`
	FuelHours     int    `json:"fuel_hours"`
	FuelMinutes   int    `json:"fuel_minutes"`
}

// FuelRemaining formats the fuel state the way pilots report it, e.g. "3+45".
func (f FlightDetails) FuelRemaining() string {
	return fmt.Sprintf("%d+%02d", f.FuelHours, f.FuelMinutes)
}

// Scenario is the assembled output consumed by the conversation layer. The
// system prompt never contains an unresolved placeholder token.
type Scenario struct {
	UserPrompt   string             `json:"user_prompt"`
	Parsed       ParsedFields       `json:"parsed"`
	Flight       FlightDetails      `json:"flight"`
	SystemPrompt string             `json:"system_prompt"`
	Source       Source             `json:"source"`
	Generated    *GeneratedScenario `json:"generated,omitempty"`
}

// GeneratedScenario is the pre-assembled shape produced by the remote
// generation endpoint or the LLM designer. All fields except the system
// prompt are optional; missing ones are filled from the local pipeline.
type GeneratedScenario struct {
	Airport             string         `json:"airport,omitempty"`
	AirportName         string         `json:"airport_name,omitempty"`
	AircraftType        string         `json:"aircraft_type,omitempty"`
	Callsign            string         `json:"callsign,omitempty"`
	ScenarioType        string         `json:"scenario_type,omitempty"`
	Altitude            string         `json:"altitude,omitempty"`
	Weather             string         `json:"weather,omitempty"`
	Wind                string         `json:"wind,omitempty"`
	Runway              string         `json:"runway,omitempty"`
	Squawk              string         `json:"squawk,omitempty"`
	ATIS                string         `json:"atis,omitempty"`
	Tower               string         `json:"tower,omitempty"`
	Ground              string         `json:"ground,omitempty"`
	Departure           string         `json:"departure,omitempty"`
	SoulsOnBoard        Count          `json:"souls_on_board,omitempty"`
	FuelRemaining       string         `json:"fuel_remaining,omitempty"`
	ScenarioDescription string         `json:"scenario_description,omitempty"`
	InitialCallExample  string         `json:"initial_call_example,omitempty"`
	RadioExamples       *RadioExamples `json:"radio_examples,omitempty"`
	SystemPrompt        string         `json:"system_prompt"`
}

// RadioExamples are suggested radio calls attached to a generated scenario.
type RadioExamples struct {
	InitialContact string `json:"initial_contact,omitempty"`
	PositionReport string `json:"position_report,omitempty"`
	LandingRequest string `json:"landing_request,omitempty"`
	Additional     string `json:"additional,omitempty"`
}

// Count is an int that tolerates being sent as a JSON string. LLM-generated
// payloads quote numbers often enough that strictness here would discard
// otherwise usable scenarios.
type Count int

func (c *Count) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*c = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*c = 0
		return nil
	}
	*c = Count(n)
	return nil
}

// ValidationError reports a prompt rejected before any pipeline work. It is
// the only error Generate returns to callers.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid scenario prompt: " + e.Reason
}
