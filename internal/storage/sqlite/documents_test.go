package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

func newTestStore(t *testing.T) *DocumentStore {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	store, err := NewDocumentStore(db, logger.NewNop())
	require.NoError(t, err)
	return store
}

func TestDocumentRoundTrip(t *testing.T) {
	store := newTestStore(t)

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	require.NoError(t, store.Put("test_key", doc{Name: "abc", Count: 3}))

	var got doc
	require.NoError(t, store.Get("test_key", &got))
	assert.Equal(t, doc{Name: "abc", Count: 3}, got)

	require.NoError(t, store.Put("test_key", doc{Name: "xyz", Count: 4}))
	require.NoError(t, store.Get("test_key", &got))
	assert.Equal(t, "xyz", got.Name)
}

func TestGetMissingKey(t *testing.T) {
	store := newTestStore(t)
	var out map[string]any
	assert.ErrorIs(t, store.Get("absent", &out), sql.ErrNoRows)
}

func TestDeleteKey(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Put("k", map[string]string{"a": "b"}))
	require.NoError(t, store.Delete("k"))

	var out map[string]string
	assert.ErrorIs(t, store.Get("k", &out), sql.ErrNoRows)

	// Deleting a missing key is fine.
	require.NoError(t, store.Delete("k"))
}

func TestSettingsDefaultsAndRoundTrip(t *testing.T) {
	store := newTestStore(t)

	settings := store.GetSettings()
	assert.Equal(t, DefaultSettings(), settings)

	settings.Theme = "light"
	settings.SpeechRate = 1.2
	require.NoError(t, store.PutSettings(settings))

	got := store.GetSettings()
	assert.Equal(t, "light", got.Theme)
	assert.Equal(t, 1.2, got.SpeechRate)
	assert.True(t, got.AutoPlayATC)
}

func TestProgressCounters(t *testing.T) {
	store := newTestStore(t)

	store.RecordSession("pattern_work")
	store.RecordSession("pattern_work")
	store.RecordSession("emergency")
	store.RecordTransmission()
	store.RecordTransmission()
	store.RecordTransmission()
	store.AddTrainingTime(90 * time.Second)

	progress := store.GetProgress()
	assert.Equal(t, 3, progress.Statistics.TotalSessions)
	assert.Equal(t, 3, progress.Statistics.TotalTransmissions)
	assert.Equal(t, int64(90), progress.Statistics.TotalTimeSeconds)
	assert.Equal(t, 2, progress.Statistics.ScenariosByCategory["pattern_work"])
	assert.Equal(t, 1, progress.Statistics.ScenariosByCategory["emergency"])
}

func TestCompleteScenarioOnce(t *testing.T) {
	store := newTestStore(t)

	store.CompleteScenario("pattern_first_solo")
	store.CompleteScenario("pattern_first_solo")
	store.CompleteScenario("ff_initial_request")

	progress := store.GetProgress()
	assert.Equal(t, []string{"pattern_first_solo", "ff_initial_request"}, progress.CompletedScenarios)
}
