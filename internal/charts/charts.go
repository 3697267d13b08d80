// Package charts resolves approach plates and airport diagram links for an
// airport. Links come from a remote provider when one is configured, with
// deterministic public-source URLs as the fallback.
package charts

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Chart is a single named chart document.
type Chart struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// Bundle is everything we can link for one airport.
type Bundle struct {
	Airport      string    `json:"airport"`
	Cycle        string    `json:"cycle"`
	DiagramURL   string    `json:"diagram_url"`
	AirNavURL    string    `json:"airnav_url"`
	SkyVectorURL string    `json:"skyvector_url"`
	ChartFoxURL  string    `json:"chartfox_url"`
	Charts       []Chart   `json:"charts,omitempty"`
	FetchedAt    time.Time `json:"fetched_at"`
}

// Fetcher retrieves chart listings from an external provider. (nil, nil)
// means the provider is unconfigured or had nothing for the airport.
type Fetcher interface {
	GetCharts(ctx context.Context, airport string) (*Bundle, error)
}

// airacEpoch is the start of cycle 1801. Cycles are exactly 28 days.
var airacEpoch = time.Date(2018, time.January, 4, 0, 0, 0, 0, time.UTC)

const airacCycleDays = 28

// CurrentCycle returns the AIRAC cycle identifier effective at t, in YYCC
// form, e.g. "2501".
func CurrentCycle(t time.Time) string {
	t = t.UTC()
	if t.Before(airacEpoch) {
		t = airacEpoch
	}
	elapsed := int(t.Sub(airacEpoch).Hours() / 24)
	cycleStart := airacEpoch.AddDate(0, 0, (elapsed/airacCycleDays)*airacCycleDays)

	// Count which cycle of cycleStart's year this is.
	yearFirst := cycleStart
	for {
		prev := yearFirst.AddDate(0, 0, -airacCycleDays)
		if prev.Year() != cycleStart.Year() {
			break
		}
		yearFirst = prev
	}
	n := int(cycleStart.Sub(yearFirst).Hours()/24)/airacCycleDays + 1
	return fmt.Sprintf("%02d%02d", cycleStart.Year()%100, n)
}

// DiagramURL builds the FAA d-TPP airport diagram link for the given cycle.
func DiagramURL(cycle, airport string) string {
	return fmt.Sprintf("https://aeronav.faa.gov/d-tpp/%s/00000AD.PDF#nameddest=%s", cycle, strings.ToUpper(airport))
}

// AirNavURL links the AirNav airport page.
func AirNavURL(airport string) string {
	return "https://www.airnav.com/airport/" + strings.ToUpper(airport)
}

// SkyVectorURL links the SkyVector airport page.
func SkyVectorURL(airport string) string {
	return "https://skyvector.com/airport/" + strings.ToUpper(airport)
}

// ChartFoxURL links the ChartFox airport page.
func ChartFoxURL(airport string) string {
	return "https://chartfox.org/" + strings.ToUpper(airport)
}
