package settings

import (
	"io"
	"testing"

	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, storage.Store) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	kv := storage.NewMemStore()
	return NewStore(kv, log), kv
}

func TestLoadReturnsDefaultsWhenEmpty(t *testing.T) {
	store, _ := newTestStore()
	require.Equal(t, Defaults(), store.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore()

	modified := Defaults()
	modified.Currency.LocalCode = "EUR"
	modified.Currency.DisplayMode = DisplayModeLabel
	modified.Time.Use24Hour = false
	modified.Measurement.System = SystemImperial
	modified.Sound.BeepEnabled = false
	modified.Search.Provider = ProviderNaver

	require.NoError(t, store.Save(modified))
	require.Equal(t, modified, store.Load())
}

func TestSaveRejectsBadSearchTemplate(t *testing.T) {
	store, _ := newTestStore()

	bad := Defaults()
	bad.Search.Template = "https://example.com/?q="
	require.Error(t, store.Save(bad))
}

func TestLoadIgnoresCorruptPartition(t *testing.T) {
	store, kv := newTestStore()

	modified := Defaults()
	modified.Time.Use24Hour = false
	require.NoError(t, store.Save(modified))
	require.NoError(t, kv.Set(storage.KeyCurrencySettings, "not json"))

	loaded := store.Load()
	require.False(t, loaded.Time.Use24Hour)
	require.Equal(t, Defaults().Currency, loaded.Currency)
}

func TestLoadNormalizesEnumValues(t *testing.T) {
	store, kv := newTestStore()

	require.NoError(t, kv.Set(storage.KeyMeasurementSettings, `{"system":"FURLONGS"}`))
	require.NoError(t, kv.Set(storage.KeySearchSettings, `{"provider":"ALTAVISTA"}`))

	loaded := store.Load()
	require.Equal(t, SystemMetric, loaded.Measurement.System)
	require.Equal(t, ProviderGoogle, loaded.Search.Provider)
}

func TestFirstRunFlag(t *testing.T) {
	store, _ := newTestStore()

	require.False(t, store.FirstRunComplete())
	require.NoError(t, store.SetFirstRunComplete())
	require.True(t, store.FirstRunComplete())
}
