package schema

import (
	"encoding/json"
	"fmt"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
)

// Store manages the item type collection. Reads are lenient: a corrupt
// partition yields an empty list, never an error, so one bad write cannot
// brick the type system. Field-key uniqueness is validated by callers at the
// mutation boundary, not here.
type Store struct {
	kv  storage.Store
	log *logrus.Logger
}

// NewStore creates an item type store.
func NewStore(kv storage.Store, log *logrus.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// EnsureSeeded installs the three built-in types if the collection is empty.
// Idempotent: any existing type, built-in or not, makes this a no-op.
func (s *Store) EnsureSeeded() error {
	if len(s.GetAll()) > 0 {
		return nil
	}
	s.log.Info("Seeding built-in item types")
	return s.SaveAll(BuiltinTypes())
}

// GetAll returns every item type in stored order.
func (s *Store) GetAll() []models.ItemType {
	raw, ok, err := s.kv.Get(storage.KeyItemTypes)
	if err != nil {
		s.log.WithError(err).Warn("Failed to read item types")
		return nil
	}
	if !ok {
		return nil
	}
	var types []models.ItemType
	if err := json.Unmarshal([]byte(raw), &types); err != nil {
		s.log.WithError(err).Warn("Ignoring corrupt item type partition")
		return nil
	}
	return types
}

// FindByID returns the type with the given ID.
func (s *Store) FindByID(id string) (models.ItemType, bool) {
	for _, t := range s.GetAll() {
		if t.ID == id {
			return t, true
		}
	}
	return models.ItemType{}, false
}

// SaveAll replaces the whole type collection.
func (s *Store) SaveAll(types []models.ItemType) error {
	raw, err := json.Marshal(types)
	if err != nil {
		return fmt.Errorf("encoding item types: %w", err)
	}
	return s.kv.Set(storage.KeyItemTypes, string(raw))
}

// AddOrUpdate upserts a type by ID, replacing its entire field list.
func (s *Store) AddOrUpdate(itemType models.ItemType) error {
	types := s.GetAll()
	replaced := false
	for i, t := range types {
		if t.ID == itemType.ID {
			types[i] = itemType
			replaced = true
			break
		}
	}
	if !replaced {
		types = append(types, itemType)
	}
	return s.SaveAll(types)
}

// Delete removes a type. Records of the type are left in place; they stay
// addressable by code but lose their schema.
func (s *Store) Delete(id string) error {
	types := s.GetAll()
	kept := types[:0]
	for _, t := range types {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.SaveAll(kept)
}

// ForceReseed wipes the collection and reinstalls the built-ins. Developer
// and migration escape hatch.
func (s *Store) ForceReseed() error {
	if err := s.kv.Delete(storage.KeyItemTypes); err != nil {
		return err
	}
	return s.EnsureSeeded()
}
