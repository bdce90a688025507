// Package migration upgrades stored data across schema versions. The version
// number lives in its own partition; Run applies every step between the
// stored version and CurrentVersion, then stamps it.
package migration

import (
	"strconv"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/presets"
	"example.com/scanbridge/internal/schema"
	"example.com/scanbridge/internal/settings"
	"example.com/scanbridge/internal/storage"
	"example.com/scanbridge/internal/webhooks"

	"github.com/sirupsen/logrus"
)

// CurrentVersion is the schema version this build writes.
const CurrentVersion = 2

// Migrator applies data migrations on startup.
type Migrator struct {
	kv       storage.Store
	types    *schema.Store
	presets  *presets.Store
	webhooks *webhooks.Store
	log      *logrus.Logger
}

// NewMigrator creates a migrator over the given stores.
func NewMigrator(kv storage.Store, types *schema.Store, presetStore *presets.Store, hooks *webhooks.Store, log *logrus.Logger) *Migrator {
	return &Migrator{kv: kv, types: types, presets: presetStore, webhooks: hooks, log: log}
}

// Version returns the stored schema version, 0 when unset or unreadable.
func (m *Migrator) Version() int {
	raw, ok, err := m.kv.Get(storage.KeySchemaVersion)
	if err != nil || !ok {
		return 0
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return version
}

func (m *Migrator) setVersion(version int) error {
	return m.kv.Set(storage.KeySchemaVersion, strconv.Itoa(version))
}

// Run applies pending migrations and stamps CurrentVersion. Safe to call on
// every startup.
func (m *Migrator) Run(ctx settings.Settings) error {
	version := m.Version()
	if version >= CurrentVersion {
		return nil
	}

	if version < 2 {
		if err := m.migrateToV2(ctx); err != nil {
			return err
		}
	}

	if err := m.setVersion(CurrentVersion); err != nil {
		return err
	}
	m.log.WithFields(logrus.Fields{
		"from": version,
		"to":   CurrentVersion,
	}).Info("Applied data migrations")
	return nil
}

// migrateToV2 adds the shipment type to installs seeded before it existed
// and rebuilds the default presets against the current schemas. The v2 field
// list keeps dimensions as plain strings; the composite variant only ships
// with fresh seeds.
func (m *Migrator) migrateToV2(ctx settings.Settings) error {
	types := m.types.GetAll()
	hasShipment := false
	for _, t := range types {
		if t.ID == models.TypeIDShipment {
			hasShipment = true
			break
		}
	}

	if !hasShipment {
		shipment := models.ItemType{
			ID:   models.TypeIDShipment,
			Name: "Shipment",
			Fields: []models.ItemField{
				{Key: "trackingNumber", Label: "Tracking Number", Type: models.FieldTypeString, Required: true},
				{Key: "buyerName", Label: "Buyer Name", Type: models.FieldTypeString},
				{Key: "buyerCountry", Label: "Buyer Country", Type: models.FieldTypeString},
				{Key: "shippedDate", Label: "Shipped Date", Type: models.FieldTypeDateTime},
				{Key: "estDeliveryDate", Label: "Est. Delivery Date", Type: models.FieldTypeDateTime},
				{Key: "fulfillmentLocation", Label: "Fulfillment Location", Type: models.FieldTypeString},
				{Key: "lastHandledBy", Label: "Last Handled By", Type: models.FieldTypeString},
				{Key: "scanReason", Label: "Scan Reason", Type: models.FieldTypeString},
				{Key: "weight", Label: "Weight (KG/LBS)", Type: models.FieldTypeString},
				{Key: "height", Label: "Height (CM/Inches)", Type: models.FieldTypeString},
				{Key: "width", Label: "Width (CM/Inches)", Type: models.FieldTypeString},
				{Key: "depth", Label: "Depth (CM/Inches)", Type: models.FieldTypeString},
				{Key: "shippingCost", Label: "Shipping Cost", Type: models.FieldTypeCurrency},
				{Key: "declaredCustomsValue", Label: "Declared Customs Value", Type: models.FieldTypeCurrency},
				{Key: "notes", Label: "Notes", Type: models.FieldTypeString},
			},
		}
		types = append(types, shipment)
		if err := m.types.SaveAll(types); err != nil {
			return err
		}
		m.log.Info("Added shipment item type")
	}

	// Default presets were generated against the old schemas; rebuild them.
	_, err := m.presets.ForceReseed(m.types.GetAll(), m.webhooks.GetAll(), ctx)
	return err
}
