// Package sqlite persists pilot settings and training progress as JSON
// documents in a local SQLite database.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/kevincorvallis/AI-ATC/pkg/logger"
)

// Open opens (or creates) the database file at path.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database %s: %w", path, err)
	}
	return db, nil
}

// DocumentStore is a keyed JSON document store.
type DocumentStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewDocumentStore creates the store and its schema.
func NewDocumentStore(db *sql.DB, log *logger.Logger) (*DocumentStore, error) {
	s := &DocumentStore{
		db:     db,
		logger: log.Named("sqlite-documents"),
	}
	if err := s.initDB(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *DocumentStore) initDB() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

// Get unmarshals the document at key into out. sql.ErrNoRows means the key
// has never been written.
func (s *DocumentStore) Get(key string, out any) error {
	var value string
	err := s.db.QueryRow(`SELECT value FROM documents WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return fmt.Errorf("failed to query document %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	return nil
}

// Put writes the document at key, replacing any previous value.
func (s *DocumentStore) Put(key string, doc any) error {
	value, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO documents (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(value), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to store document %s: %w", key, err)
	}
	return nil
}

// Delete removes the document at key. Deleting a missing key is not an
// error.
func (s *DocumentStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM documents WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}
	return nil
}

// GetSettings returns stored settings, falling back to defaults when none
// are stored or the record is unreadable.
func (s *DocumentStore) GetSettings() Settings {
	settings := DefaultSettings()
	if err := s.Get(KeySettings, &settings); err != nil && err != sql.ErrNoRows {
		s.logger.Warn("Failed to load settings, using defaults", logger.Error(err))
		return DefaultSettings()
	}
	return settings
}

// PutSettings stores settings.
func (s *DocumentStore) PutSettings(settings Settings) error {
	return s.Put(KeySettings, settings)
}

// GetProgress returns stored progress, falling back to an empty record.
func (s *DocumentStore) GetProgress() Progress {
	progress := DefaultProgress()
	if err := s.Get(KeyProgress, &progress); err != nil && err != sql.ErrNoRows {
		s.logger.Warn("Failed to load progress, using empty record", logger.Error(err))
		return DefaultProgress()
	}
	if progress.Statistics.ScenariosByCategory == nil {
		progress.Statistics.ScenariosByCategory = map[string]int{}
	}
	if progress.CompletedScenarios == nil {
		progress.CompletedScenarios = []string{}
	}
	return progress
}

// PutProgress stores progress.
func (s *DocumentStore) PutProgress(progress Progress) error {
	return s.Put(KeyProgress, progress)
}

// RecordSession bumps the session counters for a scenario category.
func (s *DocumentStore) RecordSession(category string) {
	progress := s.GetProgress()
	progress.Statistics.TotalSessions++
	if category != "" {
		progress.Statistics.ScenariosByCategory[category]++
	}
	if err := s.PutProgress(progress); err != nil {
		s.logger.Warn("Failed to record session", logger.Error(err))
	}
}

// RecordTransmission bumps the transmission counter.
func (s *DocumentStore) RecordTransmission() {
	progress := s.GetProgress()
	progress.Statistics.TotalTransmissions++
	if err := s.PutProgress(progress); err != nil {
		s.logger.Warn("Failed to record transmission", logger.Error(err))
	}
}

// CompleteScenario marks a scenario done, once.
func (s *DocumentStore) CompleteScenario(id string) {
	progress := s.GetProgress()
	for _, done := range progress.CompletedScenarios {
		if done == id {
			return
		}
	}
	progress.CompletedScenarios = append(progress.CompletedScenarios, id)
	if err := s.PutProgress(progress); err != nil {
		s.logger.Warn("Failed to record scenario completion", logger.Error(err))
	}
}

// AddTrainingTime accumulates session time.
func (s *DocumentStore) AddTrainingTime(d time.Duration) {
	progress := s.GetProgress()
	progress.Statistics.TotalTimeSeconds += int64(d.Seconds())
	if err := s.PutProgress(progress); err != nil {
		s.logger.Warn("Failed to record training time", logger.Error(err))
	}
}
