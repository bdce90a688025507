package migration

import (
	"io"
	"testing"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/presets"
	"example.com/scanbridge/internal/schema"
	"example.com/scanbridge/internal/settings"
	"example.com/scanbridge/internal/storage"
	"example.com/scanbridge/internal/webhooks"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	kv       storage.Store
	types    *schema.Store
	presets  *presets.Store
	webhooks *webhooks.Store
	migrator *Migrator
}

func newFixture() fixture {
	log := logrus.New()
	log.SetOutput(io.Discard)
	kv := storage.NewMemStore()
	types := schema.NewStore(kv, log)
	presetStore := presets.NewStore(kv, log)
	hooks := webhooks.NewStore(kv, log)
	return fixture{
		kv:       kv,
		types:    types,
		presets:  presetStore,
		webhooks: hooks,
		migrator: NewMigrator(kv, types, presetStore, hooks, log),
	}
}

// seedV1 reproduces an install from before the shipment type existed.
func seedV1(t *testing.T, f fixture) {
	t.Helper()
	var v1 []models.ItemType
	for _, itemType := range schema.BuiltinTypes() {
		if itemType.ID != models.TypeIDShipment {
			v1 = append(v1, itemType)
		}
	}
	require.NoError(t, f.types.SaveAll(v1))
}

func TestVersionDefaultsToZero(t *testing.T) {
	f := newFixture()
	require.Zero(t, f.migrator.Version())
}

func TestRunAddsShipmentType(t *testing.T) {
	f := newFixture()
	seedV1(t, f)

	require.NoError(t, f.migrator.Run(settings.Defaults()))

	shipment, ok := f.types.FindByID(models.TypeIDShipment)
	require.True(t, ok)
	require.Equal(t, "Shipment", shipment.Name)

	weight, ok := shipment.FieldByKey("weight")
	require.True(t, ok)
	require.Equal(t, models.FieldTypeString, weight.Type)
	require.Equal(t, "Weight (KG/LBS)", weight.Label)

	depth, ok := shipment.FieldByKey("depth")
	require.True(t, ok)
	require.Equal(t, models.FieldTypeString, depth.Type)
	require.Equal(t, "Depth (CM/Inches)", depth.Label)

	require.Equal(t, CurrentVersion, f.migrator.Version())
}

func TestRunPreservesExistingShipmentType(t *testing.T) {
	f := newFixture()
	require.NoError(t, f.types.SaveAll(schema.BuiltinTypes()))

	require.NoError(t, f.migrator.Run(settings.Defaults()))

	shipment, _ := f.types.FindByID(models.TypeIDShipment)
	weight, ok := shipment.FieldByKey("weight")
	require.True(t, ok)
	require.Equal(t, models.FieldTypeMeasurementWeight, weight.Type)
	require.Equal(t, CurrentVersion, f.migrator.Version())
}

func TestRunRebuildsDefaultPresets(t *testing.T) {
	f := newFixture()
	seedV1(t, f)
	require.NoError(t, f.webhooks.Add(models.WebhookConfig{ID: "webhook_1", URL: "https://hooks.example.com/scan"}))

	// Presets seeded against the v1 schemas, shipment missing.
	_, err := f.presets.EnsureDefaultsSeeded(f.types.GetAll(), f.webhooks.GetAll(), settings.Defaults())
	require.NoError(t, err)
	require.Len(t, f.presets.GetAll(), 11)

	require.NoError(t, f.migrator.Run(settings.Defaults()))
	require.Len(t, f.presets.GetAll(), 22)
}

func TestRunIdempotent(t *testing.T) {
	f := newFixture()
	seedV1(t, f)

	require.NoError(t, f.migrator.Run(settings.Defaults()))
	typeCount := len(f.types.GetAll())

	require.NoError(t, f.migrator.Run(settings.Defaults()))
	require.Len(t, f.types.GetAll(), typeCount)
	require.Equal(t, CurrentVersion, f.migrator.Version())
}
