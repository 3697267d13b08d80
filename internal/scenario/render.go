package scenario

import (
	"fmt"
	"strconv"
	"strings"
)

// Render fills the prompt template for the given type with extracted fields
// and flight details, then appends the identity trailer so the model keeps
// callsign, squawk and ATIS consistent across turns. Every placeholder a
// template declares has an entry in the replacement map, so the output never
// contains an unresolved {name} token.
func Render(t Type, fields ParsedFields, flight FlightDetails) string {
	tpl, ok := Templates[t]
	if !ok {
		tpl = Templates[TypeCustom]
	}

	// Substitute in declared order so text a replacement value carries in
	// (a pilot prompt containing a literal {callsign}, say) is never itself
	// rewritten by a later pass.
	values := replacements(fields, flight)
	prompt := tpl.Text
	for _, name := range tpl.Placeholders {
		prompt = strings.ReplaceAll(prompt, "{"+name+"}", values[name])
	}

	return prompt + fmt.Sprintf(
		"\n\nThe pilot is flying %s, squawking %s. Current ATIS is information %s. Use the callsign naturally in your responses.",
		flight.Callsign, flight.Squawk, flight.ATISLetter,
	)
}

// replacements merges parsed fields (defaults substituted for empty slots)
// with flight details into one map covering every declared placeholder.
func replacements(fields ParsedFields, flight FlightDetails) map[string]string {
	airport := fields.AirportName
	if airport == "" {
		airport = fields.AirportCode
	}
	if airport == "" {
		airport = "a towered airport"
	}

	altitude := "3,000"
	if fields.AltitudeFt != nil {
		altitude = strconv.Itoa(*fields.AltitudeFt)
	}

	direction := "the north"
	if fields.Direction != "" {
		direction = "the " + fields.Direction
	}

	weather := fields.Weather
	if weather == "" {
		weather = "VFR, clear skies"
	}

	customScenario := fields.RawText
	if customScenario == "" {
		customScenario = "Handle the pilot's request professionally"
	}

	return map[string]string{
		"airport":         airport,
		"callsign":        flight.Callsign,
		"aircraft_type":   orDefault(fields.AircraftType, DefaultAircraft),
		"direction":       direction,
		"altitude":        altitude,
		"weather":         weather,
		"wind":            orDefault(fields.Wind, DefaultWind),
		"runway":          flight.Runway,
		"intentions":      "remain in the pattern",
		"traffic_level":   "light",
		"origin":          "their departure airport",
		"destination":     "their destination",
		"visibility":      "10+ miles",
		"maneuvers":       "various maneuvers",
		"area_name":       "the designated practice area",
		"custom_scenario": customScenario,
		"squawk":          flight.Squawk,
		"atis":            flight.ATISLetter,
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
