package records

import (
	"encoding/json"
	"fmt"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
)

// Store persists scanned records. The four collections (inventory, packaging,
// shipment, generic) are independent partitions, each a JSON object keyed by
// scan code; one record per code per partition, upserts replace wholesale.
// The code lives only in the object key, never in the stored value.
type Store struct {
	kv  storage.Store
	log *logrus.Logger
}

// NewStore creates a record store.
func NewStore(kv storage.Store, log *logrus.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// loadPartition decodes a record partition. Lenient on the whole-collection
// level: a missing or corrupt partition yields an empty map.
func loadPartition[T any](s *Store, key string, fix func(code string, item *T)) map[string]T {
	out := make(map[string]T)
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.WithError(err).WithField("partition", key).Warn("Failed to read record partition")
		return out
	}
	if !ok {
		return out
	}
	var decoded map[string]T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		s.log.WithError(err).WithField("partition", key).Warn("Ignoring corrupt record partition")
		return out
	}
	for code, item := range decoded {
		fix(code, &item)
		out[code] = item
	}
	return out
}

// savePartition replaces a record partition wholesale.
func savePartition[T any](s *Store, key string, items map[string]T, strip func(item *T)) error {
	stored := make(map[string]T, len(items))
	for code, item := range items {
		strip(&item)
		stored[code] = item
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encoding partition %s: %w", key, err)
	}
	return s.kv.Set(key, string(raw))
}

// AllInventory returns the inventory partition keyed by code.
func (s *Store) AllInventory() map[string]models.InventoryItem {
	return loadPartition(s, storage.KeyInventoryRecords, func(code string, item *models.InventoryItem) {
		item.Code = code
		item.Normalize()
	})
}

// SaveInventory replaces the inventory partition.
func (s *Store) SaveInventory(items map[string]models.InventoryItem) error {
	return savePartition(s, storage.KeyInventoryRecords, items, func(item *models.InventoryItem) {
		item.Code = ""
		item.Normalize()
	})
}

// UpsertInventory replaces the record at item.Code.
func (s *Store) UpsertInventory(item models.InventoryItem) error {
	items := s.AllInventory()
	items[item.Code] = item
	return s.SaveInventory(items)
}

// AllPackaging returns the packaging partition keyed by code.
func (s *Store) AllPackaging() map[string]models.PackagingItem {
	return loadPartition(s, storage.KeyPackagingRecords, func(code string, item *models.PackagingItem) {
		item.Code = code
		item.Normalize()
	})
}

// SavePackaging replaces the packaging partition.
func (s *Store) SavePackaging(items map[string]models.PackagingItem) error {
	return savePartition(s, storage.KeyPackagingRecords, items, func(item *models.PackagingItem) {
		item.Code = ""
		item.Normalize()
	})
}

// UpsertPackaging replaces the record at item.Code.
func (s *Store) UpsertPackaging(item models.PackagingItem) error {
	items := s.AllPackaging()
	items[item.Code] = item
	return s.SavePackaging(items)
}

// AllShipment returns the shipment partition keyed by code.
func (s *Store) AllShipment() map[string]models.ShipmentItem {
	return loadPartition(s, storage.KeyShipmentRecords, func(code string, item *models.ShipmentItem) {
		item.Code = code
		item.Normalize()
	})
}

// SaveShipment replaces the shipment partition.
func (s *Store) SaveShipment(items map[string]models.ShipmentItem) error {
	return savePartition(s, storage.KeyShipmentRecords, items, func(item *models.ShipmentItem) {
		item.Code = ""
		item.Normalize()
	})
}

// UpsertShipment replaces the record at item.Code.
func (s *Store) UpsertShipment(item models.ShipmentItem) error {
	items := s.AllShipment()
	items[item.Code] = item
	return s.SaveShipment(items)
}

// AllGeneric returns the generic partition keyed by code.
func (s *Store) AllGeneric() map[string]models.GenericItem {
	return loadPartition(s, storage.KeyGenericRecords, func(code string, item *models.GenericItem) {
		item.Code = code
		if item.Fields == nil {
			item.Fields = make(map[string]models.FieldValue)
		}
	})
}

// SaveGeneric replaces the generic partition.
func (s *Store) SaveGeneric(items map[string]models.GenericItem) error {
	return savePartition(s, storage.KeyGenericRecords, items, func(item *models.GenericItem) {
		item.Code = ""
	})
}

// UpsertGeneric replaces the record at item.Code.
func (s *Store) UpsertGeneric(item models.GenericItem) error {
	items := s.AllGeneric()
	items[item.Code] = item
	return s.SaveGeneric(items)
}
