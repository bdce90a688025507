package history

import (
	"encoding/json"
	"fmt"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
)

// MaxItems caps the scan history log. Add evicts the oldest entries past it.
const MaxItems = 100

// Store manages the scan history, a newest-first JSON array capped at
// MaxItems entries.
type Store struct {
	kv  storage.Store
	log *logrus.Logger
}

// NewStore creates a history store.
func NewStore(kv storage.Store, log *logrus.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// GetAll returns the history, newest first.
func (s *Store) GetAll() []models.ScanHistoryItem {
	raw, ok, err := s.kv.Get(storage.KeyHistory)
	if err != nil {
		s.log.WithError(err).Warn("Failed to read scan history")
		return nil
	}
	if !ok {
		return nil
	}
	var items []models.ScanHistoryItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.WithError(err).Warn("Ignoring corrupt scan history partition")
		return nil
	}
	return items
}

// Add prepends an entry and truncates the log to MaxItems.
func (s *Store) Add(item models.ScanHistoryItem) error {
	items := append([]models.ScanHistoryItem{item}, s.GetAll()...)
	if len(items) > MaxItems {
		items = items[:MaxItems]
	}
	return s.saveAll(items)
}

// Remove deletes the entry matching both code and timestamp.
func (s *Store) Remove(code string, timestamp int64) error {
	items := s.GetAll()
	kept := items[:0]
	for _, item := range items {
		if item.Code == code && item.Timestamp == timestamp {
			continue
		}
		kept = append(kept, item)
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.saveAll(kept)
}

// Clear drops the whole history.
func (s *Store) Clear() error {
	return s.kv.Delete(storage.KeyHistory)
}

func (s *Store) saveAll(items []models.ScanHistoryItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding scan history: %w", err)
	}
	return s.kv.Set(storage.KeyHistory, string(raw))
}
