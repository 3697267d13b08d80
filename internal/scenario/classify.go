package scenario

import "strings"

// classifierRules are evaluated top to bottom; the first group with any
// keyword present wins. Matching is case-insensitive substring.
var classifierRules = []struct {
	scenarioType Type
	keywords     []string
}{
	{TypeArrival, []string{"landing", "arrival", "coming in", "inbound"}},
	{TypeDeparture, []string{"departure", "takeoff", "taking off", "ready for departure"}},
	{TypeEnroute, []string{"cross-country", "en route", "flight following", "flying from"}},
	{TypePracticeArea, []string{"practice area", "practicing", "maneuvers"}},
}

// Classify maps free text to a scenario type. It is total: anything that
// matches no keyword group is a custom scenario.
func Classify(text string) Type {
	lower := strings.ToLower(text)
	for _, rule := range classifierRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.scenarioType
			}
		}
	}
	return TypeCustom
}
