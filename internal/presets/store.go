package presets

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/settings"
	"example.com/scanbridge/internal/storage"
	"example.com/scanbridge/internal/templates"

	"github.com/sirupsen/logrus"
)

// Default preset name prefixes, one per built-in type. Their presence is the
// seeding guard: a user who deletes every default and keeps only custom
// presets will get the defaults back on the next seed pass.
var defaultPrefixes = []string{"Inventory - ", "Packaging - ", "Shipment - "}

// Store manages the preset collection, stored as a single JSON array.
type Store struct {
	kv  storage.Store
	log *logrus.Logger
}

// NewStore creates a preset store.
func NewStore(kv storage.Store, log *logrus.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// GetAll returns every preset in stored order.
func (s *Store) GetAll() []models.Preset {
	raw, ok, err := s.kv.Get(storage.KeyPresets)
	if err != nil {
		s.log.WithError(err).Warn("Failed to read presets")
		return nil
	}
	if !ok {
		return nil
	}
	var items []models.Preset
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.WithError(err).Warn("Ignoring corrupt preset partition")
		return nil
	}
	return items
}

// SaveAll replaces the whole preset collection.
func (s *Store) SaveAll(items []models.Preset) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding presets: %w", err)
	}
	return s.kv.Set(storage.KeyPresets, string(raw))
}

// Add appends a preset.
func (s *Store) Add(preset models.Preset) error {
	return s.SaveAll(append(s.GetAll(), preset))
}

// Update replaces the preset with the same ID. Unknown IDs are a no-op.
func (s *Store) Update(preset models.Preset) error {
	items := s.GetAll()
	for i, p := range items {
		if p.ID == preset.ID {
			items[i] = preset
			return s.SaveAll(items)
		}
	}
	return nil
}

// Delete removes a preset by ID.
func (s *Store) Delete(id string) error {
	items := s.GetAll()
	kept := items[:0]
	for _, p := range items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.SaveAll(kept)
}

// FindByID returns the preset with the given ID.
func (s *Store) FindByID(id string) (models.Preset, bool) {
	for _, p := range s.GetAll() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Preset{}, false
}

func hasDefaults(items []models.Preset) bool {
	for _, p := range items {
		for _, prefix := range defaultPrefixes {
			if strings.HasPrefix(p.Name, prefix) {
				return true
			}
		}
	}
	return false
}

// EnsureDefaultsSeeded installs the default preset catalogue for the given
// item types against the first registered webhook. Returns the number of
// presets created: 0 when any default-named preset already exists or when no
// webhook is registered.
func (s *Store) EnsureDefaultsSeeded(types []models.ItemType, webhooks []models.WebhookConfig, ctx settings.Settings) (int, error) {
	existing := s.GetAll()
	if hasDefaults(existing) {
		return 0, nil
	}
	if len(webhooks) == 0 {
		s.log.Info("Skipping default preset seed, no webhook registered")
		return 0, nil
	}
	webhookURL := webhooks[0].URL

	byID := make(map[string]models.ItemType, len(types))
	for _, t := range types {
		byID[t.ID] = t
	}

	gen := newIDGenerator()
	var created []models.Preset

	if t, ok := byID[models.TypeIDInventory]; ok {
		one := 1
		defs := []presetDef{
			{"Inventory - Create", "Create new inventory item", "Create", templates.QuantityOverrides{QuantityAdded: &one}},
			{"Inventory - Update", "Update existing inventory item", "Update", templates.QuantityOverrides{}},
			{"Inventory - Add Inventory", "Add inventory stock", "Add Inventory", templates.QuantityOverrides{QuantityAdded: &one}},
			{"Inventory - Remove Inventory", "Remove inventory stock", "Remove Inventory", templates.QuantityOverrides{QuantityRemoved: &one}},
			{"Inventory - Sale", "Record inventory sale", "Sale", templates.QuantityOverrides{QuantityRemoved: &one}},
			{"Inventory - Return", "Record inventory return", "Return", templates.QuantityOverrides{QuantityAdded: &one}},
		}
		presets, err := buildPresets(gen, t, webhookURL, defs, ctx)
		if err != nil {
			return 0, err
		}
		created = append(created, presets...)
	}

	if t, ok := byID[models.TypeIDPackaging]; ok {
		one := 1
		defs := []presetDef{
			{"Packaging - Create", "Create new packaging item", "Create", templates.QuantityOverrides{UnitQuantityAdded: &one}},
			{"Packaging - Update", "Update existing packaging item", "Update", templates.QuantityOverrides{}},
			{"Packaging - Add Inventory", "Add packaging stock", "Add Inventory", templates.QuantityOverrides{UnitQuantityAdded: &one}},
			{"Packaging - Remove Inventory", "Remove packaging stock", "Remove Inventory", templates.QuantityOverrides{UnitQuantityRemoved: &one}},
			{"Packaging - Usage", "Record packaging usage", "Usage", templates.QuantityOverrides{UnitQuantityRemoved: &one}},
		}
		presets, err := buildPresets(gen, t, webhookURL, defs, ctx)
		if err != nil {
			return 0, err
		}
		created = append(created, presets...)
	}

	if t, ok := byID[models.TypeIDShipment]; ok {
		reasons := []string{
			"Create", "Update", "Preparing", "Ready to Ship",
			"Out for Pickup", "Dropped Off", "In Transit",
			"Received", "Returned", "Rejected", "Return To Sender",
		}
		var defs []presetDef
		for _, reason := range reasons {
			defs = append(defs, presetDef{
				name:        "Shipment - " + reason,
				description: "Shipment status: " + reason,
				scanReason:  reason,
			})
		}
		presets, err := buildPresets(gen, t, webhookURL, defs, ctx)
		if err != nil {
			return 0, err
		}
		created = append(created, presets...)
	}

	if len(created) == 0 {
		return 0, nil
	}
	if err := s.SaveAll(append(existing, created...)); err != nil {
		return 0, err
	}
	s.log.WithField("count", len(created)).Info("Seeded default presets")
	return len(created), nil
}

// ForceReseed drops every default-named preset, keeps custom ones, and runs
// the seeder again.
func (s *Store) ForceReseed(types []models.ItemType, webhooks []models.WebhookConfig, ctx settings.Settings) (int, error) {
	items := s.GetAll()
	kept := items[:0]
	for _, p := range items {
		isDefault := false
		for _, prefix := range defaultPrefixes {
			if strings.HasPrefix(p.Name, prefix) {
				isDefault = true
				break
			}
		}
		if !isDefault {
			kept = append(kept, p)
		}
	}
	if err := s.SaveAll(kept); err != nil {
		return 0, err
	}
	return s.EnsureDefaultsSeeded(types, webhooks, ctx)
}

type presetDef struct {
	name        string
	description string
	scanReason  string
	overrides   templates.QuantityOverrides
}

func buildPresets(gen *idGenerator, itemType models.ItemType, webhookURL string, defs []presetDef, ctx settings.Settings) ([]models.Preset, error) {
	out := make([]models.Preset, 0, len(defs))
	for _, def := range defs {
		body, err := templates.BodyTemplateSkeleton(itemType, def.scanReason, def.overrides, ctx)
		if err != nil {
			return nil, fmt.Errorf("building %s template: %w", def.name, err)
		}
		out = append(out, models.Preset{
			ID:           gen.next(),
			Name:         def.name,
			Description:  def.description,
			WebhookURL:   webhookURL,
			BodyTemplate: body,
		})
	}
	return out, nil
}

// idGenerator issues monotonically increasing preset IDs from a millisecond
// epoch base, so a whole seed batch gets distinct IDs within one tick.
type idGenerator struct {
	counter int64
}

func newIDGenerator() *idGenerator {
	return &idGenerator{counter: time.Now().UnixMilli()}
}

func (g *idGenerator) next() string {
	id := fmt.Sprintf("preset_%d", g.counter)
	g.counter++
	return id
}
