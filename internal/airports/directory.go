// Package airports holds the static airport directory: live-feed metadata for
// the listening view and the colloquial-name table used when parsing scenario
// descriptions.
package airports

import (
	"regexp"
	"sort"
	"strings"
)

// Feed is a single live audio feed for an airport position.
type Feed struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	FrequencyMHz string `json:"frequency"`
}

// Airport is one directory entry.
type Airport struct {
	ICAO   string `json:"icao"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Region string `json:"region"`
	Feeds  []Feed `json:"feeds"`
}

var directory = map[string]Airport{
	"KJFK": {
		ICAO: "KJFK", Name: "New York JFK", City: "New York, USA", Region: "North America",
		Feeds: []Feed{
			{Name: "Tower", URL: "https://s1-bos.liveatc.net/kjfk_twr", FrequencyMHz: "123.900"},
			{Name: "Ground", URL: "https://s1-bos.liveatc.net/kjfk_gnd", FrequencyMHz: "121.650"},
			{Name: "Approach", URL: "https://s1-bos.liveatc.net/kjfk_app", FrequencyMHz: "125.700"},
		},
	},
	"KLAX": {
		ICAO: "KLAX", Name: "Los Angeles Intl", City: "Los Angeles, USA", Region: "North America",
		Feeds: []Feed{
			{Name: "Tower", URL: "https://s1-sac.liveatc.net/klax_twr", FrequencyMHz: "133.900"},
			{Name: "Ground", URL: "https://s1-sac.liveatc.net/klax_gnd", FrequencyMHz: "121.750"},
			{Name: "Approach", URL: "https://s1-sac.liveatc.net/klax_app", FrequencyMHz: "124.500"},
		},
	},
	"KORD": {
		ICAO: "KORD", Name: "Chicago O'Hare", City: "Chicago, USA", Region: "North America",
		Feeds: []Feed{
			{Name: "Tower", URL: "https://s1-chi.liveatc.net/kord_twr", FrequencyMHz: "126.900"},
			{Name: "Ground", URL: "https://s1-chi.liveatc.net/kord_gnd", FrequencyMHz: "121.900"},
			{Name: "Approach", URL: "https://s1-chi.liveatc.net/kord_app", FrequencyMHz: "125.000"},
		},
	},
	"KATL": {
		ICAO: "KATL", Name: "Atlanta Hartsfield", City: "Atlanta, USA", Region: "North America",
		Feeds: []Feed{
			{Name: "Tower", URL: "https://s1-atl.liveatc.net/katl_twr", FrequencyMHz: "119.100"},
			{Name: "Ground", URL: "https://s1-atl.liveatc.net/katl_gnd", FrequencyMHz: "121.750"},
			{Name: "Approach", URL: "https://s1-atl.liveatc.net/katl_app", FrequencyMHz: "124.850"},
		},
	},
	"KSFO": {
		ICAO: "KSFO", Name: "San Francisco Intl", City: "San Francisco, USA", Region: "North America",
		Feeds: []Feed{
			{Name: "Tower", URL: "https://s1-sac.liveatc.net/ksfo_twr", FrequencyMHz: "120.500"},
			{Name: "Ground", URL: "https://s1-sac.liveatc.net/ksfo_gnd", FrequencyMHz: "121.800"},
		},
	},
	"KMIA": {
		ICAO: "KMIA", Name: "Miami Intl", City: "Miami, USA", Region: "North America",
		Feeds: []Feed{
			{Name: "Tower", URL: "https://s1-mia.liveatc.net/kmia_twr", FrequencyMHz: "118.300"},
			{Name: "Ground", URL: "https://s1-mia.liveatc.net/kmia_gnd", FrequencyMHz: "121.800"},
		},
	},
	"CYYZ": {
		ICAO: "CYYZ", Name: "Toronto Pearson", City: "Toronto, Canada", Region: "North America",
		Feeds: []Feed{
			{Name: "Tower", URL: "https://s1-tor.liveatc.net/cyyz_twr", FrequencyMHz: "118.700"},
			{Name: "Ground", URL: "https://s1-tor.liveatc.net/cyyz_gnd", FrequencyMHz: "121.900"},
		},
	},
	"CYVR": {
		ICAO: "CYVR", Name: "Vancouver Intl", City: "Vancouver, Canada", Region: "North America",
		Feeds: []Feed{
			{Name: "Tower", URL: "https://s1-van.liveatc.net/cyvr_twr", FrequencyMHz: "119.700"},
			{Name: "Ground", URL: "https://s1-van.liveatc.net/cyvr_gnd", FrequencyMHz: "121.700"},
		},
	},
}

// namedAirports maps colloquial airport names, lowercase, to their canonical
// "Name (ICAO)" display form. Matching is ordered: the first entry whose name
// appears as a substring of the prompt wins, so more specific names go first.
var namedAirports = []struct {
	match   string
	display string
}{
	{"south bend", "South Bend Regional Airport (KSBN)"},
	{"palo alto", "Palo Alto Airport (KPAO)"},
	{"san jose", "San Jose International Airport (KSJC)"},
	{"santa monica", "Santa Monica Airport (KSMO)"},
	{"san diego", "San Diego International Airport (KSAN)"},
	{"livermore", "Livermore Airport (KLVK)"},
	{"jfk", "John F. Kennedy International Airport (KJFK)"},
	{"lax", "Los Angeles International Airport (KLAX)"},
	{"o'hare", "Chicago O'Hare International Airport (KORD)"},
	{"sfo", "San Francisco International Airport (KSFO)"},
}

var icaoInDisplayRe = regexp.MustCompile(`\(([A-Z]{4})\)`)

// Lookup returns the directory entry for the given ICAO code.
func Lookup(icao string) (Airport, bool) {
	a, ok := directory[strings.ToUpper(icao)]
	return a, ok
}

// All returns every directory entry sorted by ICAO code.
func All() []Airport {
	out := make([]Airport, 0, len(directory))
	for _, a := range directory {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ICAO < out[j].ICAO })
	return out
}

// MatchName scans lowercased free text for a known colloquial airport name.
// On a hit it returns the canonical display name and the ICAO code embedded
// in it.
func MatchName(lowerText string) (display, icao string, ok bool) {
	for _, entry := range namedAirports {
		if strings.Contains(lowerText, entry.match) {
			display = entry.display
			if m := icaoInDisplayRe.FindStringSubmatch(display); m != nil {
				icao = m[1]
			}
			return display, icao, true
		}
	}
	return "", "", false
}
