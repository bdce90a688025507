package schema

import (
	"io"
	"testing"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewStore(storage.NewMemStore(), log)
}

func TestEnsureSeededInstallsBuiltins(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.EnsureSeeded())

	types := store.GetAll()
	require.Len(t, types, 3)
	require.Equal(t, models.TypeIDInventory, types[0].ID)
	require.Equal(t, models.TypeIDPackaging, types[1].ID)
	require.Equal(t, models.TypeIDShipment, types[2].ID)
}

func TestEnsureSeededIdempotent(t *testing.T) {
	store := newTestStore()

	require.NoError(t, store.EnsureSeeded())
	custom := models.ItemType{ID: "asset", Name: "Asset"}
	require.NoError(t, store.AddOrUpdate(custom))

	require.NoError(t, store.EnsureSeeded())
	require.Len(t, store.GetAll(), 4)
}

func TestAddOrUpdateReplacesFieldList(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.EnsureSeeded())

	updated := models.ItemType{
		ID:   models.TypeIDInventory,
		Name: "Inventory",
		Fields: []models.ItemField{
			{Key: "itemName", Label: "Item Name", Type: models.FieldTypeString, Required: true},
		},
	}
	require.NoError(t, store.AddOrUpdate(updated))

	got, ok := store.FindByID(models.TypeIDInventory)
	require.True(t, ok)
	require.Len(t, got.Fields, 1)
	require.Len(t, store.GetAll(), 3)
}

func TestDeleteRemovesType(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.EnsureSeeded())

	require.NoError(t, store.Delete(models.TypeIDPackaging))

	_, ok := store.FindByID(models.TypeIDPackaging)
	require.False(t, ok)
	require.Len(t, store.GetAll(), 2)
}

func TestForceReseedRestoresBuiltins(t *testing.T) {
	store := newTestStore()
	require.NoError(t, store.EnsureSeeded())
	require.NoError(t, store.AddOrUpdate(models.ItemType{ID: "asset", Name: "Asset"}))
	require.NoError(t, store.Delete(models.TypeIDShipment))

	require.NoError(t, store.ForceReseed())

	types := store.GetAll()
	require.Len(t, types, 3)
	_, ok := store.FindByID(models.TypeIDShipment)
	require.True(t, ok)
	_, ok = store.FindByID("asset")
	require.False(t, ok)
}
