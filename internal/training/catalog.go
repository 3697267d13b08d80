// Package training holds the stock scenario catalog: the curated categories
// and exercises offered alongside free-text custom scenarios.
package training

// Category groups related exercises and carries the radio frequency used for
// that kind of work.
type Category struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Frequency   string     `json:"frequency"`
	Exercises   []Exercise `json:"exercises"`
}

// Exercise is one curated training scenario.
type Exercise struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Conditions  string `json:"conditions"`
	Tips        string `json:"tips"`
}

var catalog = []Category{
	{
		ID:          "pattern_work",
		Name:        "Pattern Work",
		Description: "Practice traffic pattern communications",
		Frequency:   "118.300",
		Exercises: []Exercise{
			{
				ID:          "pattern_first_solo",
				Name:        "First Solo Pattern",
				Description: "Your first solo flight! Calm winds, clear skies, light traffic.",
				Difficulty:  "Beginner",
				Conditions:  "Clear skies, Wind 270 at 5 kts, Light traffic",
				Tips:        "Take your time. Controllers know you're solo and will be patient.",
			},
			{
				ID:          "pattern_touch_go",
				Name:        "Touch and Go Practice",
				Description: "Multiple touch and go landings for proficiency.",
				Difficulty:  "Beginner",
				Conditions:  "VFR, Wind 090 at 8 kts, Moderate traffic",
				Tips:        "Remember to tell tower your intentions: 'Touch and go' or 'Full stop'.",
			},
			{
				ID:          "pattern_crosswind",
				Name:        "Crosswind Landing Practice",
				Description: "Practice crosswind landings with challenging winds.",
				Difficulty:  "Intermediate",
				Conditions:  "VFR, Wind 320 at 12 gusting 18, Moderate traffic",
				Tips:        "ATC will give you wind updates. Use proper crosswind correction technique.",
			},
			{
				ID:          "pattern_busy",
				Name:        "Busy Pattern with Traffic",
				Description: "Navigate a busy pattern with multiple aircraft.",
				Difficulty:  "Intermediate",
				Conditions:  "VFR, Wind 270 at 7 kts, Heavy traffic",
				Tips:        "Listen for traffic calls. You may get 'extend downwind' or 'number 3, follow the Cessna'.",
			},
			{
				ID:          "pattern_night",
				Name:        "Night Pattern Operations",
				Description: "Practice pattern work during night operations.",
				Difficulty:  "Advanced",
				Conditions:  "Night VFR, Wind 180 at 6 kts, Light traffic",
				Tips:        "Tower may ask you to report runway in sight. Use all available lighting.",
			},
		},
	},
	{
		ID:          "ground_operations",
		Name:        "Ground Operations",
		Description: "Master ground control communications",
		Frequency:   "121.900",
		Exercises: []Exercise{
			{
				ID:          "ground_first_taxi",
				Name:        "First Taxi to Runway",
				Description: "Your first time taxiing at a controlled airport.",
				Difficulty:  "Beginner",
				Conditions:  "Clear day, Simple airport layout",
				Tips:        "Write down taxi instructions. Read back all hold-short instructions.",
			},
			{
				ID:          "ground_complex_taxi",
				Name:        "Complex Taxiway Navigation",
				Description: "Navigate complex taxiway system at a large airport.",
				Difficulty:  "Intermediate",
				Conditions:  "Class C airport, Multiple taxiways",
				Tips:        "Have airport diagram ready. Don't hesitate to ask for progressive taxi.",
			},
			{
				ID:          "ground_runway_crossing",
				Name:        "Runway Crossing Procedures",
				Description: "Practice proper runway crossing communications.",
				Difficulty:  "Intermediate",
				Conditions:  "Active runways, Multiple crossings required",
				Tips:        "Never cross a runway without explicit clearance. Read back runway number.",
			},
			{
				ID:          "ground_busy_ramp",
				Name:        "Busy Ramp Operations",
				Description: "Navigate a busy ramp with multiple aircraft movements.",
				Difficulty:  "Advanced",
				Conditions:  "High traffic, Complex ramp layout",
				Tips:        "Maintain situational awareness. Give way to aircraft with right of way.",
			},
			{
				ID:          "ground_progressive",
				Name:        "Progressive Taxi Instructions",
				Description: "Follow step-by-step progressive taxi to runway.",
				Difficulty:  "Beginner",
				Conditions:  "Unfamiliar airport, Need guidance",
				Tips:        "Request 'progressive taxi' if unsure. Follow instructions carefully.",
			},
		},
	},
	{
		ID:          "flight_following",
		Name:        "Flight Following",
		Description: "Practice VFR flight following procedures",
		Frequency:   "124.350",
		Exercises: []Exercise{
			{
				ID:          "ff_initial_request",
				Name:        "Initial Flight Following Request",
				Description: "Request VFR flight following for the first time.",
				Difficulty:  "Beginner",
				Conditions:  "VFR cross-country, Good weather",
				Tips:        "Have: Aircraft type, altitude, destination, route ready to give.",
			},
			{
				ID:          "ff_position_reports",
				Name:        "Position Reports",
				Description: "Make proper position reports during flight following.",
				Difficulty:  "Beginner",
				Conditions:  "En route, Good visibility",
				Tips:        "Report position, altitude, and intentions when requested.",
			},
			{
				ID:          "ff_traffic_advisories",
				Name:        "Traffic Advisories",
				Description: "Respond to traffic advisories from approach.",
				Difficulty:  "Intermediate",
				Conditions:  "Busy airspace, Multiple traffic conflicts",
				Tips:        "Use clock position and distance. Report traffic in sight: 'Traffic in sight'.",
			},
			{
				ID:          "ff_class_b_transition",
				Name:        "Class B Transition",
				Description: "Request and navigate Class B airspace transition.",
				Difficulty:  "Advanced",
				Conditions:  "Class B airspace, High traffic",
				Tips:        "Get clearance BEFORE entering. Follow vectors precisely.",
			},
			{
				ID:          "ff_frequency_change",
				Name:        "Frequency Changes",
				Description: "Handle handoffs and frequency changes smoothly.",
				Difficulty:  "Intermediate",
				Conditions:  "Multiple sector transitions",
				Tips:        "Write down new frequency. Check in with new controller properly.",
			},
		},
	},
	{
		ID:          "emergency",
		Name:        "Emergency Procedures",
		Description: "Practice emergency communications",
		Frequency:   "121.500",
		Exercises: []Exercise{
			{
				ID:          "emerg_engine_failure",
				Name:        "Engine Failure",
				Description: "Declare emergency for engine failure.",
				Difficulty:  "Advanced",
				Conditions:  "In-flight emergency, Need immediate assistance",
				Tips:        "Aviate, Navigate, Communicate. Declare 'Mayday' 3 times if needed.",
			},
			{
				ID:          "emerg_lost_comms",
				Name:        "Lost Communications",
				Description: "Handle lost radio communications procedures.",
				Difficulty:  "Advanced",
				Conditions:  "Radio failure, Need to land",
				Tips:        "Squawk 7600. Follow lost comm procedures. Watch for light gun signals.",
			},
			{
				ID:          "emerg_low_fuel",
				Name:        "Low Fuel Emergency",
				Description: "Declare minimum fuel or emergency fuel situation.",
				Difficulty:  "Intermediate",
				Conditions:  "Running low on fuel, Need priority",
				Tips:        "Declare 'Minimum fuel' early. State fuel remaining in minutes.",
			},
			{
				ID:          "emerg_weather_diversion",
				Name:        "Weather Diversion",
				Description: "Request diversion due to unexpected weather.",
				Difficulty:  "Intermediate",
				Conditions:  "Deteriorating weather, Need alternate",
				Tips:        "Don't wait too long. ATC will help with weather information and vectors.",
			},
			{
				ID:          "emerg_medical",
				Name:        "Medical Emergency",
				Description: "Declare emergency for passenger medical issue.",
				Difficulty:  "Advanced",
				Conditions:  "Passenger medical emergency, Need priority landing",
				Tips:        "ATC will coordinate with emergency services. State nature of emergency.",
			},
		},
	},
}

// Categories returns the catalog in display order.
func Categories() []Category {
	return catalog
}

// GetCategory looks up one category by ID.
func GetCategory(id string) (Category, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// GetExercise looks up one exercise within a category.
func GetExercise(categoryID, exerciseID string) (Exercise, bool) {
	c, ok := GetCategory(categoryID)
	if !ok {
		return Exercise{}, false
	}
	for _, e := range c.Exercises {
		if e.ID == exerciseID {
			return e, true
		}
	}
	return Exercise{}, false
}
