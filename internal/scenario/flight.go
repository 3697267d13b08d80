package scenario

import (
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strconv"
)

// Fixed frequencies handed to every generated flight. The trainer simulates
// one generic towered field, so these never vary.
const (
	towerFreq     = "118.300"
	groundFreq    = "121.900"
	departureFreq = "121.700"
)

// callsignPrefixes are the type-name callsign forms used when a flight does
// not get an N-number.
var callsignPrefixes = []string{"Skyhawk", "Skylane", "Cherokee", "Warrior"}

var windHeadingRe = regexp.MustCompile(`(\d{3})`)

// GenerateFlight derives plausible flight parameters for a parsed scenario.
// All randomness comes from rng so callers can seed deterministic output.
func GenerateFlight(fields ParsedFields, rng *rand.Rand) FlightDetails {
	details := FlightDetails{
		Callsign:      generateCallsign(rng),
		Squawk:        fmt.Sprintf("%04d", 1200+rng.Intn(6700)),
		TowerFreq:     towerFreq,
		GroundFreq:    groundFreq,
		DepartureFreq: departureFreq,
		ATISLetter:    string(rune('A' + rng.Intn(26))),
		SoulsOnBoard:  1 + rng.Intn(3),
		FuelHours:     3 + rng.Intn(2),
		FuelMinutes:   rng.Intn(60),
	}

	if fields.Runway != "" {
		details.Runway = fields.Runway
	} else {
		details.Runway = runwayFromWind(fields.Wind)
	}

	return details
}

// generateCallsign produces an N-number about 70% of the time and a
// type-name callsign otherwise.
func generateCallsign(rng *rand.Rand) string {
	if rng.Float64() < 0.7 {
		number := 10000 + rng.Intn(90000)
		letter := rune('A' + rng.Intn(26))
		return fmt.Sprintf("N%d%c", number, letter)
	}
	prefix := callsignPrefixes[rng.Intn(len(callsignPrefixes))]
	return fmt.Sprintf("%s %d", prefix, 100+rng.Intn(900))
}

// runwayFromWind picks the runway whose heading best matches the first
// 3-digit wind heading in the wind string, falling back to 27.
func runwayFromWind(wind string) string {
	m := windHeadingRe.FindStringSubmatch(wind)
	if m == nil {
		return "27"
	}
	heading, err := strconv.Atoi(m[1])
	if err != nil {
		return "27"
	}
	runway := int(math.Round(float64(heading) / 10))
	return fmt.Sprintf("%02d", runway)
}
