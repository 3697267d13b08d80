package scenario

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kevincorvallis/AI-ATC/internal/airports"
)

var (
	// Bare 4-letter tokens match too; the named-airport table resolved
	// afterwards corrects the common false positives.
	icaoRe = regexp.MustCompile(`(?i)\b(K[A-Z]{3}|[A-Z]{4})\b`)

	altitudeRe   = regexp.MustCompile(`(?i)(\d{1,2},?\d{3})\s*(feet|ft|')?`)
	altitudeAtRe = regexp.MustCompile(`(?i)\bat\s+(\d{1,2},?\d{3})`)

	directionRe = regexp.MustCompile(`(?i)from\s+the\s+(northeast|northwest|southeast|southwest|north|south|east|west)`)
	runwayRe    = regexp.MustCompile(`(?i)runway\s+(\d{1,2}[LRCrcl]?)`)

	aircraftSpaceRe = regexp.MustCompile(`([A-Z])(\d)`)
)

// aircraftTypes are matched as lowercase substrings, first hit wins.
var aircraftTypes = []string{
	"cessna 172", "cessna 152", "piper", "cirrus", "diamond",
	"c172", "c152", "pa28", "sr22", "da40", "baron", "bonanza",
}

// Extract pulls the scenario slots out of free text. It is total: unmatched
// slots come back as zero values or documented defaults, never an error.
// Extractors are independent of each other except airport naming, which is
// resolved after the generic code scan so the named table wins when both hit.
func Extract(text string) ParsedFields {
	lower := strings.ToLower(text)

	p := ParsedFields{
		AircraftType: DefaultAircraft,
		Weather:      DefaultWeather,
		Wind:         DefaultWind,
		RawText:      text,
	}

	if m := icaoRe.FindString(text); m != "" {
		p.AirportCode = strings.ToUpper(m)
	}
	if display, icao, ok := airports.MatchName(lower); ok {
		p.AirportName = display
		if icao != "" {
			p.AirportCode = icao
		}
	}
	if p.AirportCode != "" && p.AirportName == "" {
		p.AirportName = p.AirportCode
	}

	if m := altitudeRe.FindStringSubmatch(text); m != nil {
		p.AltitudeFt = parseAltitude(m[1])
	} else if m := altitudeAtRe.FindStringSubmatch(text); m != nil {
		p.AltitudeFt = parseAltitude(m[1])
	}

	for _, ac := range aircraftTypes {
		if strings.Contains(lower, ac) {
			p.AircraftType = canonicalAircraft(ac)
			break
		}
	}

	if m := directionRe.FindStringSubmatch(text); m != nil {
		p.Direction = strings.ToLower(m[1])
	}

	if m := runwayRe.FindStringSubmatch(text); m != nil {
		p.Runway = strings.ToUpper(m[1])
	}

	return p
}

func parseAltitude(raw string) *int {
	n, err := strconv.Atoi(strings.ReplaceAll(raw, ",", ""))
	if err != nil {
		return nil
	}
	return &n
}

// canonicalAircraft uppercases the matched token and separates a trailing
// digit group from the letters, so "c172" becomes "C 172" and "cessna 172"
// becomes "CESSNA 172".
func canonicalAircraft(token string) string {
	upper := strings.ToUpper(token)
	return aircraftSpaceRe.ReplaceAllString(upper, "$1 $2")
}
