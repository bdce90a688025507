package records

import (
	"encoding/json"
	"io"
	"testing"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(v float64) *float64 { return &v }

func newTestStore() (*Store, storage.Store) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	kv := storage.NewMemStore()
	return NewStore(kv, log), kv
}

func TestInventoryUpsertRoundTrip(t *testing.T) {
	store, _ := newTestStore()

	item := models.InventoryItem{
		Code:          "0123456789",
		ItemName:      strPtr("Widget"),
		QuantityAdded: intPtr(5),
		CurrencyFields: map[string]models.CurrencyValue{
			"costPerUnit": {Local: &models.CurrencyUnit{Value: floatPtr(1200), CurrencyCode: "KRW", Symbol: "₩"}},
		},
	}
	require.NoError(t, store.UpsertInventory(item))

	all := store.AllInventory()
	require.Len(t, all, 1)
	got := all["0123456789"]
	require.Equal(t, "0123456789", got.Code)
	require.Equal(t, "Widget", *got.ItemName)
	require.Equal(t, 5, *got.QuantityAdded)
	require.NotNil(t, got.CurrencyFields["costPerUnit"].Local)
	require.Equal(t, "KRW", got.CurrencyFields["costPerUnit"].Local.CurrencyCode)
}

func TestStoredValueOmitsCode(t *testing.T) {
	store, kv := newTestStore()

	require.NoError(t, store.UpsertInventory(models.InventoryItem{Code: "C1", ItemName: strPtr("Widget")}))

	raw, ok, err := kv.Get(storage.KeyInventoryRecords)
	require.NoError(t, err)
	require.True(t, ok)

	var partition map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &partition))
	require.Contains(t, partition, "C1")
	require.NotContains(t, partition["C1"], "code")
}

func TestUpsertReplacesWholesale(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.UpsertInventory(models.InventoryItem{
		Code:     "C1",
		ItemName: strPtr("Widget"),
		Notes:    strPtr("fragile"),
	}))
	require.NoError(t, store.UpsertInventory(models.InventoryItem{
		Code:     "C1",
		ItemName: strPtr("Widget v2"),
	}))

	got := store.AllInventory()["C1"]
	require.Equal(t, "Widget v2", *got.ItemName)
	require.Nil(t, got.Notes)
}

func TestAbsentCurrencyDroppedOnSave(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.UpsertInventory(models.InventoryItem{
		Code: "C1",
		CurrencyFields: map[string]models.CurrencyValue{
			"costPerUnit": {},
		},
	}))

	got := store.AllInventory()["C1"]
	require.NotContains(t, got.CurrencyFields, "costPerUnit")
}

func TestShipmentDimensionRoundTrip(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.UpsertShipment(models.ShipmentItem{
		Code: "S1",
		Weight: &models.MeasurementValue{
			Metric: &models.MeasurementUnit{Value: floatPtr(2.5), Unit: "kg", Symbol: "kg"},
		},
	}))

	got := store.AllShipment()["S1"]
	require.NotNil(t, got.Weight)
	require.NotNil(t, got.Weight.Metric)
	require.Equal(t, 2.5, *got.Weight.Metric.Value)
	require.Nil(t, got.Height)
}

func TestGenericRoundTripKeepsKinds(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.UpsertGeneric(models.GenericItem{
		Code:   "G1",
		TypeID: "asset",
		Fields: map[string]models.FieldValue{
			"name":    models.StringValue("Projector"),
			"count":   models.NumberValue(4),
			"audited": models.BoolValue(true),
		},
	}))

	got := store.AllGeneric()["G1"]
	require.Equal(t, "asset", got.TypeID)
	require.Equal(t, models.FieldTypeString, got.Fields["name"].Kind)
	require.Equal(t, "Projector", got.Fields["name"].Str)
	require.Equal(t, models.FieldTypeNumber, got.Fields["count"].Kind)
	require.Equal(t, float64(4), got.Fields["count"].Num)
	require.True(t, got.Fields["audited"].Bool)
}

func TestPartitionsAreIndependent(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.UpsertInventory(models.InventoryItem{Code: "X", ItemName: strPtr("Widget")}))
	require.NoError(t, store.UpsertPackaging(models.PackagingItem{Code: "X", Item: strPtr("Box")}))

	require.Len(t, store.AllInventory(), 1)
	require.Len(t, store.AllPackaging(), 1)
	require.Empty(t, store.AllShipment())
	require.Empty(t, store.AllGeneric())
}
