package presets

import (
	"io"
	"strings"
	"testing"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/schema"
	"example.com/scanbridge/internal/settings"
	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewStore(storage.NewMemStore(), log)
}

func testWebhooks() []models.WebhookConfig {
	return []models.WebhookConfig{{ID: "webhook_1", Name: "Main", URL: "https://hooks.example.com/scan"}}
}

func TestSeedSkippedWithoutWebhook(t *testing.T) {
	store := newTestStore()

	created, err := store.EnsureDefaultsSeeded(schema.BuiltinTypes(), nil, settings.Defaults())
	require.NoError(t, err)
	require.Zero(t, created)
	require.Empty(t, store.GetAll())
}

func TestSeedCreatesFullCatalogue(t *testing.T) {
	store := newTestStore()

	created, err := store.EnsureDefaultsSeeded(schema.BuiltinTypes(), testWebhooks(), settings.Defaults())
	require.NoError(t, err)
	require.Equal(t, 22, created)

	items := store.GetAll()
	require.Len(t, items, 22)

	counts := map[string]int{}
	seenIDs := map[string]bool{}
	for _, p := range items {
		require.True(t, strings.HasPrefix(p.ID, "preset_"), "unexpected id %q", p.ID)
		require.False(t, seenIDs[p.ID], "duplicate id %q", p.ID)
		seenIDs[p.ID] = true
		require.Equal(t, "https://hooks.example.com/scan", p.WebhookURL)
		require.NotEmpty(t, p.BodyTemplate)
		switch {
		case strings.HasPrefix(p.Name, "Inventory - "):
			counts["inventory"]++
		case strings.HasPrefix(p.Name, "Packaging - "):
			counts["packaging"]++
		case strings.HasPrefix(p.Name, "Shipment - "):
			counts["shipment"]++
		}
	}
	require.Equal(t, 6, counts["inventory"])
	require.Equal(t, 5, counts["packaging"])
	require.Equal(t, 11, counts["shipment"])
}

func TestSeedTemplatesBakeInScanReason(t *testing.T) {
	store := newTestStore()

	_, err := store.EnsureDefaultsSeeded(schema.BuiltinTypes(), testWebhooks(), settings.Defaults())
	require.NoError(t, err)

	var sale models.Preset
	for _, p := range store.GetAll() {
		if p.Name == "Inventory - Sale" {
			sale = p
			break
		}
	}
	require.Equal(t, "Inventory - Sale", sale.Name)
	require.Contains(t, sale.BodyTemplate, `"scanReason": "Sale"`)
	require.Contains(t, sale.BodyTemplate, `"quantityRemoved": 1`)
	require.Contains(t, sale.BodyTemplate, `"code": "{{code}}"`)
}

func TestSeedIdempotent(t *testing.T) {
	store := newTestStore()

	first, err := store.EnsureDefaultsSeeded(schema.BuiltinTypes(), testWebhooks(), settings.Defaults())
	require.NoError(t, err)
	require.Equal(t, 22, first)

	second, err := store.EnsureDefaultsSeeded(schema.BuiltinTypes(), testWebhooks(), settings.Defaults())
	require.NoError(t, err)
	require.Zero(t, second)
	require.Len(t, store.GetAll(), 22)
}

func TestForceReseedKeepsCustomPresets(t *testing.T) {
	store := newTestStore()

	_, err := store.EnsureDefaultsSeeded(schema.BuiltinTypes(), testWebhooks(), settings.Defaults())
	require.NoError(t, err)

	custom := models.Preset{ID: "preset_custom", Name: "My Audit", WebhookURL: "https://hooks.example.com/audit"}
	require.NoError(t, store.Add(custom))

	created, err := store.ForceReseed(schema.BuiltinTypes(), testWebhooks(), settings.Defaults())
	require.NoError(t, err)
	require.Equal(t, 22, created)

	items := store.GetAll()
	require.Len(t, items, 23)

	found := false
	for _, p := range items {
		if p.ID == "preset_custom" {
			found = true
			require.Equal(t, "My Audit", p.Name)
		}
	}
	require.True(t, found)
}

func TestCRUDRoundTrip(t *testing.T) {
	store := newTestStore()

	preset := models.Preset{ID: "preset_1", Name: "Ship It", WebhookURL: "https://hooks.example.com/ship"}
	require.NoError(t, store.Add(preset))

	got, ok := store.FindByID("preset_1")
	require.True(t, ok)
	require.Equal(t, "Ship It", got.Name)

	preset.Name = "Ship It Faster"
	require.NoError(t, store.Update(preset))
	got, _ = store.FindByID("preset_1")
	require.Equal(t, "Ship It Faster", got.Name)

	require.NoError(t, store.Delete("preset_1"))
	_, ok = store.FindByID("preset_1")
	require.False(t, ok)
}
