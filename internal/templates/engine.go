package templates

import "strings"

// Placeholder tokens recognized in preset body templates. Substitution is
// literal: values are spliced in as-is with no escaping, and anything else
// that looks like a {{token}} stays verbatim. A substituted value containing
// unescaped quotes can therefore break the surrounding JSON; that matches
// the documented contract.
const (
	PlaceholderCode         = "{{code}}"
	PlaceholderScanQuantity = "{{scanQuantity}}"
	PlaceholderTimestamp    = "{{timestamp}}"
)

// Bindings are the values substituted for the recognized placeholders.
type Bindings struct {
	Code         string
	ScanQuantity string
	Timestamp    string
}

// Substitute replaces each recognized placeholder with its bound value.
// Pure function of (template, bindings).
func Substitute(template string, b Bindings) string {
	out := strings.ReplaceAll(template, PlaceholderCode, b.Code)
	out = strings.ReplaceAll(out, PlaceholderScanQuantity, b.ScanQuantity)
	out = strings.ReplaceAll(out, PlaceholderTimestamp, b.Timestamp)
	return out
}
