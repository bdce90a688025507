package storage

// Store is a string key-value store holding the service's logical partitions.
// Each partition (item types, record collections, presets, webhooks, history,
// settings) is a single JSON document under a fixed key, updated wholesale by
// read-modify-write. There is one writer process; last write wins.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}

// Partition keys.
const (
	KeyItemTypes        = "itemtypes"
	KeyInventoryRecords = "records:inventory"
	KeyPackagingRecords = "records:packaging"
	KeyShipmentRecords  = "records:shipment"
	KeyGenericRecords   = "records:generic"
	KeyPresets          = "presets"
	KeyWebhooks         = "webhooks"
	KeyHistory          = "history"
	KeySchemaVersion    = "app:schema_version"
	KeyFirstRunComplete = "app:first_run_complete"

	KeyCurrencySettings    = "settings:currency"
	KeyTimeSettings        = "settings:time"
	KeyMeasurementSettings = "settings:measurement"
	KeySoundSettings       = "settings:sound"
	KeySearchSettings      = "settings:search"
)
