package webhooks

import (
	"encoding/json"
	"fmt"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/storage"

	"github.com/sirupsen/logrus"
)

// Store manages the registered webhook endpoints, stored as a JSON array.
type Store struct {
	kv  storage.Store
	log *logrus.Logger
}

// NewStore creates a webhook store.
func NewStore(kv storage.Store, log *logrus.Logger) *Store {
	return &Store{kv: kv, log: log}
}

// GetAll returns every webhook in stored order.
func (s *Store) GetAll() []models.WebhookConfig {
	raw, ok, err := s.kv.Get(storage.KeyWebhooks)
	if err != nil {
		s.log.WithError(err).Warn("Failed to read webhooks")
		return nil
	}
	if !ok {
		return nil
	}
	var items []models.WebhookConfig
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.WithError(err).Warn("Ignoring corrupt webhook partition")
		return nil
	}
	return items
}

// SaveAll replaces the whole webhook collection.
func (s *Store) SaveAll(items []models.WebhookConfig) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding webhooks: %w", err)
	}
	return s.kv.Set(storage.KeyWebhooks, string(raw))
}

// Add appends a webhook.
func (s *Store) Add(hook models.WebhookConfig) error {
	return s.SaveAll(append(s.GetAll(), hook))
}

// Update replaces the webhook with the same ID. Unknown IDs are a no-op.
func (s *Store) Update(hook models.WebhookConfig) error {
	items := s.GetAll()
	for i, h := range items {
		if h.ID == hook.ID {
			items[i] = hook
			return s.SaveAll(items)
		}
	}
	return nil
}

// Delete removes a webhook by ID.
func (s *Store) Delete(id string) error {
	items := s.GetAll()
	kept := items[:0]
	for _, h := range items {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return s.SaveAll(kept)
}

// FindByID returns the webhook with the given ID.
func (s *Store) FindByID(id string) (models.WebhookConfig, bool) {
	for _, h := range s.GetAll() {
		if h.ID == id {
			return h, true
		}
	}
	return models.WebhookConfig{}, false
}

// Headers parses a webhook's custom header JSON. Lenient: malformed JSON or
// a non-object yields an empty map, and non-string values are skipped.
func Headers(hook models.WebhookConfig) map[string]string {
	out := make(map[string]string)
	if hook.HeadersJSON == "" {
		return out
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal([]byte(hook.HeadersJSON), &decoded); err != nil {
		return out
	}
	for key, value := range decoded {
		if str, ok := value.(string); ok {
			out[key] = str
		}
	}
	return out
}
