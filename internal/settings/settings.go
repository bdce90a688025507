package settings

import "fmt"

// CurrencyDisplayMode selects how currency halves are labeled.
type CurrencyDisplayMode string

const (
	DisplayModeSymbol CurrencyDisplayMode = "SYMBOL"
	DisplayModeLabel  CurrencyDisplayMode = "LABEL"
)

// ParseDisplayMode decodes a mode name, defaulting to SYMBOL.
func ParseDisplayMode(name string) CurrencyDisplayMode {
	if CurrencyDisplayMode(name) == DisplayModeLabel {
		return DisplayModeLabel
	}
	return DisplayModeSymbol
}

// MeasurementSystem selects the preferred unit system for input defaults.
type MeasurementSystem string

const (
	SystemMetric   MeasurementSystem = "METRIC"
	SystemImperial MeasurementSystem = "IMPERIAL"
)

// ParseMeasurementSystem decodes a system name, defaulting to METRIC.
func ParseMeasurementSystem(name string) MeasurementSystem {
	if MeasurementSystem(name) == SystemImperial {
		return SystemImperial
	}
	return SystemMetric
}

// CurrencySettings holds the two configured denominations and how they are
// displayed.
type CurrencySettings struct {
	LocalCode   string              `json:"localCode"`
	GlobalCode  string              `json:"globalCode"`
	DisplayMode CurrencyDisplayMode `json:"displayMode"`
}

// currencySymbols covers the codes the app ships defaults for; anything else
// falls back to the code itself, mirroring a failed symbol lookup.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"KRW": "₩",
	"CNY": "¥",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "C$",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"BRL": "R$",
	"MXN": "MX$",
	"SGD": "S$",
	"HKD": "HK$",
	"NZD": "NZ$",
	"THB": "฿",
	"VND": "₫",
	"PHP": "₱",
	"IDR": "Rp",
	"MYR": "RM",
	"TRY": "₺",
	"RUB": "₽",
	"ZAR": "R",
}

// symbolFor resolves a currency symbol, falling back to the code.
func symbolFor(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

// LocalSymbol returns the symbol of the local denomination.
func (c CurrencySettings) LocalSymbol() string { return symbolFor(c.LocalCode) }

// GlobalSymbol returns the symbol of the global denomination.
func (c CurrencySettings) GlobalSymbol() string { return symbolFor(c.GlobalCode) }

// LocalLabel returns the display label of the local denomination.
func (c CurrencySettings) LocalLabel() string {
	if c.DisplayMode == DisplayModeLabel {
		return "Local"
	}
	return c.LocalSymbol()
}

// GlobalLabel returns the display label of the global denomination.
func (c CurrencySettings) GlobalLabel() string {
	if c.DisplayMode == DisplayModeLabel {
		return "Global"
	}
	return c.GlobalSymbol()
}

// TimeSettings holds the clock display preference.
type TimeSettings struct {
	Use24Hour bool `json:"use24Hour"`
}

// MeasurementSettings holds the preferred unit system. Unit names are fixed:
// weights are kg/lbs, dimensions cm/in.
type MeasurementSettings struct {
	System MeasurementSystem `json:"system"`
}

// Measurement unit names and symbols.
const (
	WeightMetricUnit        = "kg"
	WeightMetricSymbol      = "kg"
	WeightImperialUnit      = "lbs"
	WeightImperialSymbol    = "lbs"
	DimensionMetricUnit     = "cm"
	DimensionMetricSymbol   = "cm"
	DimensionImperialUnit   = "in"
	DimensionImperialSymbol = "in"
)

// WeightLabel returns the symbol of the preferred weight unit.
func (m MeasurementSettings) WeightLabel() string {
	if m.System == SystemImperial {
		return WeightImperialSymbol
	}
	return WeightMetricSymbol
}

// DimensionLabel returns the symbol of the preferred dimension unit.
func (m MeasurementSettings) DimensionLabel() string {
	if m.System == SystemImperial {
		return DimensionImperialSymbol
	}
	return DimensionMetricSymbol
}

// SoundSettings holds the scan feedback preference.
type SoundSettings struct {
	BeepEnabled bool `json:"beepEnabled"`
}

// SearchProvider is a preset code lookup destination.
type SearchProvider string

const (
	ProviderGoogle     SearchProvider = "GOOGLE"
	ProviderDuckDuckGo SearchProvider = "DUCKDUCKGO"
	ProviderBing       SearchProvider = "BING"
	ProviderNaver      SearchProvider = "NAVER"
	ProviderDaum       SearchProvider = "DAUM"
	ProviderEbay       SearchProvider = "EBAY"
	ProviderTarget     SearchProvider = "TARGET"
	ProviderReddit     SearchProvider = "REDDIT"
	ProviderBrave      SearchProvider = "BRAVE"
	ProviderYandex     SearchProvider = "YANDEX"
	ProviderCustom     SearchProvider = "CUSTOM"
)

var providerBaseURLs = map[SearchProvider]string{
	ProviderGoogle:     "https://www.google.com/search?q=",
	ProviderDuckDuckGo: "https://duckduckgo.com/?q=",
	ProviderBing:       "https://www.bing.com/search?q=",
	ProviderNaver:      "https://search.naver.com/search.naver?query=",
	ProviderDaum:       "https://search.daum.net/search?q=",
	ProviderEbay:       "https://www.ebay.com/sch/i.html?_nkw=",
	ProviderTarget:     "https://www.target.com/s?searchTerm=",
	ProviderReddit:     "https://www.reddit.com/search/?q=",
	ProviderBrave:      "https://search.brave.com/search?q=",
	ProviderYandex:     "https://yandex.com/search/?text=",
	ProviderCustom:     "",
}

// ParseSearchProvider decodes a provider name, defaulting to GOOGLE.
func ParseSearchProvider(name string) SearchProvider {
	if _, ok := providerBaseURLs[SearchProvider(name)]; ok {
		return SearchProvider(name)
	}
	return ProviderGoogle
}

// BaseURL returns the provider's query prefix; empty for CUSTOM.
func (p SearchProvider) BaseURL() string {
	return providerBaseURLs[p]
}

// SearchSettings holds the code lookup provider and URL template. Template,
// when set, overrides the provider's default and must contain a %s token.
type SearchSettings struct {
	Provider SearchProvider `json:"provider"`
	Template string         `json:"template,omitempty"`
}

// URLTemplate resolves the effective lookup template.
func (s SearchSettings) URLTemplate() string {
	if s.Template != "" {
		return s.Template
	}
	base := s.Provider.BaseURL()
	if base == "" {
		return "%s"
	}
	return base + "%s"
}

// ValidateTemplate rejects a template without the %s code token.
func ValidateTemplate(template string) error {
	for i := 0; i+1 < len(template); i++ {
		if template[i] == '%' && template[i+1] == 's' {
			return nil
		}
	}
	return fmt.Errorf("search template must contain a %%s token")
}

// Settings is the explicit settings context injected into the components
// that need it, loaded once at startup instead of held as global state.
type Settings struct {
	Currency    CurrencySettings    `json:"currency"`
	Time        TimeSettings        `json:"time"`
	Measurement MeasurementSettings `json:"measurement"`
	Sound       SoundSettings       `json:"sound"`
	Search      SearchSettings      `json:"search"`
}

// Defaults returns the settings used before the user changes anything.
func Defaults() Settings {
	return Settings{
		Currency: CurrencySettings{
			LocalCode:   "KRW",
			GlobalCode:  "USD",
			DisplayMode: DisplayModeSymbol,
		},
		Time:        TimeSettings{Use24Hour: true},
		Measurement: MeasurementSettings{System: SystemMetric},
		Sound:       SoundSettings{BeepEnabled: true},
		Search:      SearchSettings{Provider: ProviderGoogle},
	}
}
