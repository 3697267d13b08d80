package sqlite

// Document keys for the settings and progress records.
const (
	KeySettings = "atc_settings"
	KeyProgress = "atc_progress"
)

// Settings are the pilot-facing preferences.
type Settings struct {
	SpeechRate         float64 `json:"speechRate"`
	SpeechVolume       float64 `json:"speechVolume"`
	SpeechPitch        float64 `json:"speechPitch"`
	AutoPlayATC        bool    `json:"autoPlayATC"`
	ShowKeyboardHints  bool    `json:"showKeyboardHints"`
	EnableSoundEffects bool    `json:"enableSoundEffects"`
	Theme              string  `json:"theme"`
	CallsignPrefix     string  `json:"callsignPrefix"`
	PreferredAircraft  string  `json:"preferredAircraft"`
}

// DefaultSettings returns the out-of-the-box preferences.
func DefaultSettings() Settings {
	return Settings{
		SpeechRate:         0.9,
		SpeechVolume:       1.0,
		SpeechPitch:        1.0,
		AutoPlayATC:        true,
		ShowKeyboardHints:  true,
		EnableSoundEffects: true,
		Theme:              "dark",
		CallsignPrefix:     "N",
		PreferredAircraft:  "Cessna 172",
	}
}

// Progress tracks training accomplishments across sessions.
type Progress struct {
	CompletedScenarios []string   `json:"completedScenarios"`
	Statistics         Statistics `json:"statistics"`
}

// Statistics are the aggregate training counters.
type Statistics struct {
	TotalSessions       int            `json:"totalSessions"`
	TotalTransmissions  int            `json:"totalTransmissions"`
	TotalTimeSeconds    int64          `json:"totalTime"`
	ScenariosByCategory map[string]int `json:"scenariosByCategory"`
}

// DefaultProgress returns an empty progress record.
func DefaultProgress() Progress {
	return Progress{
		CompletedScenarios: []string{},
		Statistics: Statistics{
			ScenariosByCategory: map[string]int{},
		},
	}
}
