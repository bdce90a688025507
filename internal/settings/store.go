package settings

import (
	"encoding/json"
	"fmt"

	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
)

// Store persists each settings feature under its own partition key. Loads are
// lenient: a missing or corrupt feature falls back to its default.
type Store struct {
	store storage.Store
	log   *logrus.Logger
}

// NewStore creates a settings store.
func NewStore(store storage.Store, log *logrus.Logger) *Store {
	return &Store{store: store, log: log}
}

// Load assembles the full settings context from the per-feature partitions.
func (s *Store) Load() Settings {
	out := Defaults()
	s.loadFeature(storage.KeyCurrencySettings, &out.Currency)
	s.loadFeature(storage.KeyTimeSettings, &out.Time)
	s.loadFeature(storage.KeyMeasurementSettings, &out.Measurement)
	s.loadFeature(storage.KeySoundSettings, &out.Sound)
	s.loadFeature(storage.KeySearchSettings, &out.Search)
	out.Currency.DisplayMode = ParseDisplayMode(string(out.Currency.DisplayMode))
	out.Measurement.System = ParseMeasurementSystem(string(out.Measurement.System))
	out.Search.Provider = ParseSearchProvider(string(out.Search.Provider))
	return out
}

func (s *Store) loadFeature(key string, target interface{}) {
	raw, ok, err := s.store.Get(key)
	if err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Failed to read settings partition")
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		s.log.WithError(err).WithField("key", key).Warn("Ignoring corrupt settings partition")
	}
}

// Save persists the full settings context, one partition per feature.
func (s *Store) Save(settings Settings) error {
	if settings.Search.Template != "" {
		if err := ValidateTemplate(settings.Search.Template); err != nil {
			return err
		}
	}
	features := []struct {
		key   string
		value interface{}
	}{
		{storage.KeyCurrencySettings, settings.Currency},
		{storage.KeyTimeSettings, settings.Time},
		{storage.KeyMeasurementSettings, settings.Measurement},
		{storage.KeySoundSettings, settings.Sound},
		{storage.KeySearchSettings, settings.Search},
	}
	for _, feature := range features {
		raw, err := json.Marshal(feature.value)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", feature.key, err)
		}
		if err := s.store.Set(feature.key, string(raw)); err != nil {
			return err
		}
	}
	return nil
}

// FirstRunComplete reports whether initial setup has finished.
func (s *Store) FirstRunComplete() bool {
	value, ok, err := s.store.Get(storage.KeyFirstRunComplete)
	if err != nil {
		s.log.WithError(err).Warn("Failed to read first-run flag")
		return false
	}
	return ok && value == "true"
}

// SetFirstRunComplete records that initial setup has finished.
func (s *Store) SetFirstRunComplete() error {
	return s.store.Set(storage.KeyFirstRunComplete, "true")
}
