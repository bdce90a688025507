package models

// Preset pairs a webhook URL with a reusable JSON body template containing
// {{placeholder}} tokens.
type Preset struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	WebhookURL       string `json:"webhookUrl"`
	BodyTemplate     string `json:"bodyTemplate"`
	RequiresQuantity bool   `json:"requiresQuantity,omitempty"`
}

// WebhookConfig is a registered webhook endpoint. HeadersJSON, when set, is a
// JSON object of extra request headers; non-string values are skipped.
type WebhookConfig struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	URL             string `json:"url"`
	HeadersJSON     string `json:"headersJson,omitempty"`
	PayloadTemplate string `json:"payloadTemplate,omitempty"`
}

// ScanHistoryItem is one entry of the capped scan history log. Payload keeps
// the exact body that was sent so a resend needs no recomputation.
type ScanHistoryItem struct {
	Code        string  `json:"code"`
	Timestamp   int64   `json:"timestamp"`
	PresetID    *string `json:"presetId"`
	PresetName  *string `json:"presetName"`
	WebhookURL  *string `json:"webhookUrl"`
	WebhookName *string `json:"webhookName"`
	Sent        bool    `json:"sent"`
	Payload     *string `json:"payload,omitempty"`
}
