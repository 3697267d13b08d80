package training

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 4)

	ids := make([]string, len(cats))
	for i, c := range cats {
		ids[i] = c.ID
		assert.Len(t, c.Exercises, 5, c.ID)
		assert.NotEmpty(t, c.Frequency, c.ID)
	}
	assert.Equal(t, []string{"pattern_work", "ground_operations", "flight_following", "emergency"}, ids)
}

func TestCategoryFrequencies(t *testing.T) {
	tests := map[string]string{
		"pattern_work":      "118.300",
		"ground_operations": "121.900",
		"flight_following":  "124.350",
		"emergency":         "121.500",
	}
	for id, freq := range tests {
		c, ok := GetCategory(id)
		require.True(t, ok, id)
		assert.Equal(t, freq, c.Frequency, id)
	}
}

func TestGetCategoryUnknown(t *testing.T) {
	_, ok := GetCategory("aerobatics")
	assert.False(t, ok)
}

func TestGetExercise(t *testing.T) {
	ex, ok := GetExercise("emergency", "emerg_lost_comms")
	require.True(t, ok)
	assert.Equal(t, "Lost Communications", ex.Name)
	assert.Contains(t, ex.Tips, "7600")

	_, ok = GetExercise("emergency", "nope")
	assert.False(t, ok)

	_, ok = GetExercise("nope", "emerg_lost_comms")
	assert.False(t, ok)
}

func TestExerciseIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories() {
		for _, e := range c.Exercises {
			assert.False(t, seen[e.ID], e.ID)
			seen[e.ID] = true
		}
	}
}
