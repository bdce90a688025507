package dispatch

import (
	"errors"
	"strconv"
	"sync"
	"time"

	"example.com/scanbridge/internal/history"
	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/search"
	"example.com/scanbridge/internal/templates"
	"example.com/scanbridge/internal/webhooks"

	"github.com/sirupsen/logrus"
)

// Validation errors surfaced to the API as 400s before anything is written.
var (
	ErrBlankWebhookURL   = errors.New("webhook URL is empty")
	ErrInvalidQuantity   = errors.New("quantity must be greater than zero")
	ErrNoPreviousConfig  = errors.New("no previous config available")
	ErrHistoryNoPayload  = errors.New("history entry has no payload")
)

type previousConfig struct {
	url     string
	body    string
	headers map[string]string
}

// Pipeline drives one scan event end to end: deliver the payload over the
// chosen method and record the attempt in history. History is written at
// send time with sent=true; delivery is async and a later failure does not
// rewrite the entry.
type Pipeline struct {
	client  *Client
	history *history.Store
	search  *search.Client
	log     *logrus.Logger

	mu   sync.Mutex
	prev *previousConfig
}

// NewPipeline creates a dispatch pipeline. The search client is optional;
// nil disables history indexing.
func NewPipeline(client *Client, hist *history.Store, idx *search.Client, log *logrus.Logger) *Pipeline {
	return &Pipeline{client: client, history: hist, search: idx, log: log}
}

func (p *Pipeline) record(item models.ScanHistoryItem) error {
	if err := p.history.Add(item); err != nil {
		return err
	}
	if p.search != nil {
		if err := p.search.IndexHistoryItem(item); err != nil {
			p.log.WithError(err).Warn("Failed to index history item")
		}
	}
	return nil
}

// LogOnly records the scan without any network delivery.
func (p *Pipeline) LogOnly(code string, timestamp int64, payload string) error {
	return p.record(models.ScanHistoryItem{
		Code:      code,
		Timestamp: timestamp,
		Sent:      false,
		Payload:   &payload,
	})
}

// SendDirect posts the payload to the chosen webhook with its custom headers
// and remembers the configuration for SendPrevious.
func (p *Pipeline) SendDirect(code string, timestamp int64, payload string, hook models.WebhookConfig) error {
	if hook.URL == "" {
		return ErrBlankWebhookURL
	}
	headers := webhooks.Headers(hook)
	p.client.SendJSON(hook.URL, payload, headers, p.logResult(hook.URL))

	p.mu.Lock()
	p.prev = &previousConfig{url: hook.URL, body: payload, headers: headers}
	p.mu.Unlock()

	return p.record(models.ScanHistoryItem{
		Code:        code,
		Timestamp:   timestamp,
		WebhookURL:  &hook.URL,
		WebhookName: &hook.Name,
		Sent:        true,
		Payload:     &payload,
	})
}

// SendWithPreset substitutes the scan into the preset's body template and
// posts it to the preset's webhook. Quantity must be positive.
func (p *Pipeline) SendWithPreset(code string, timestamp int64, preset models.Preset, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if preset.WebhookURL == "" {
		return ErrBlankWebhookURL
	}
	body := templates.Substitute(preset.BodyTemplate, templates.Bindings{
		Code:         code,
		ScanQuantity: strconv.Itoa(quantity),
		Timestamp:    strconv.FormatInt(time.Now().UnixMilli(), 10),
	})
	p.client.SendJSON(preset.WebhookURL, body, nil, p.logResult(preset.WebhookURL))

	return p.record(models.ScanHistoryItem{
		Code:       code,
		Timestamp:  timestamp,
		PresetID:   &preset.ID,
		PresetName: &preset.Name,
		WebhookURL: &preset.WebhookURL,
		Sent:       true,
		Payload:    &body,
	})
}

// SendPrevious replays the last SendDirect configuration of this session.
func (p *Pipeline) SendPrevious(code string, timestamp int64) error {
	p.mu.Lock()
	prev := p.prev
	p.mu.Unlock()
	if prev == nil || prev.url == "" || prev.body == "" {
		return ErrNoPreviousConfig
	}
	p.client.SendJSON(prev.url, prev.body, prev.headers, p.logResult(prev.url))

	name := "Previous config"
	return p.record(models.ScanHistoryItem{
		Code:       code,
		Timestamp:  timestamp,
		PresetName: &name,
		WebhookURL: &prev.url,
		Sent:       true,
		Payload:    &prev.body,
	})
}

// Resend re-posts a stored history payload verbatim to the chosen webhook.
// No new history entry is recorded.
func (p *Pipeline) Resend(item models.ScanHistoryItem, hook models.WebhookConfig) error {
	if hook.URL == "" {
		return ErrBlankWebhookURL
	}
	if item.Payload == nil || *item.Payload == "" {
		return ErrHistoryNoPayload
	}
	p.client.SendJSON(hook.URL, *item.Payload, webhooks.Headers(hook), p.logResult(hook.URL))
	return nil
}

func (p *Pipeline) logResult(url string) ResultFunc {
	return func(success bool, message string) {
		if success {
			p.log.WithField("url", url).Debug("Webhook delivered")
			return
		}
		p.log.WithFields(logrus.Fields{
			"url":     url,
			"message": message,
		}).Warn("Webhook delivery unsuccessful")
	}
}
