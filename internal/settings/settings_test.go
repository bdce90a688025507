package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	s := Defaults()
	require.Equal(t, "KRW", s.Currency.LocalCode)
	require.Equal(t, "USD", s.Currency.GlobalCode)
	require.Equal(t, DisplayModeSymbol, s.Currency.DisplayMode)
	require.True(t, s.Time.Use24Hour)
	require.Equal(t, SystemMetric, s.Measurement.System)
	require.True(t, s.Sound.BeepEnabled)
	require.Equal(t, ProviderGoogle, s.Search.Provider)
}

func TestCurrencySymbolLookup(t *testing.T) {
	c := CurrencySettings{LocalCode: "KRW", GlobalCode: "USD"}
	require.Equal(t, "₩", c.LocalSymbol())
	require.Equal(t, "$", c.GlobalSymbol())
}

func TestCurrencySymbolFallsBackToCode(t *testing.T) {
	c := CurrencySettings{LocalCode: "XYZ"}
	require.Equal(t, "XYZ", c.LocalSymbol())
}

func TestCurrencyLabelsFollowDisplayMode(t *testing.T) {
	c := CurrencySettings{LocalCode: "KRW", GlobalCode: "USD", DisplayMode: DisplayModeLabel}
	require.Equal(t, "Local", c.LocalLabel())
	require.Equal(t, "Global", c.GlobalLabel())

	c.DisplayMode = DisplayModeSymbol
	require.Equal(t, "₩", c.LocalLabel())
	require.Equal(t, "$", c.GlobalLabel())
}

func TestParseDisplayModeLenient(t *testing.T) {
	require.Equal(t, DisplayModeLabel, ParseDisplayMode("LABEL"))
	require.Equal(t, DisplayModeSymbol, ParseDisplayMode("SYMBOL"))
	require.Equal(t, DisplayModeSymbol, ParseDisplayMode("garbage"))
}

func TestMeasurementLabels(t *testing.T) {
	m := MeasurementSettings{System: SystemMetric}
	require.Equal(t, "kg", m.WeightLabel())
	require.Equal(t, "cm", m.DimensionLabel())

	m.System = SystemImperial
	require.Equal(t, "lbs", m.WeightLabel())
	require.Equal(t, "in", m.DimensionLabel())
}

func TestParseSearchProvider(t *testing.T) {
	require.Equal(t, ProviderNaver, ParseSearchProvider("NAVER"))
	require.Equal(t, ProviderCustom, ParseSearchProvider("CUSTOM"))
	require.Equal(t, ProviderGoogle, ParseSearchProvider("unknown"))
}

func TestURLTemplate(t *testing.T) {
	s := SearchSettings{Provider: ProviderGoogle}
	require.Equal(t, "https://www.google.com/search?q=%s", s.URLTemplate())

	s.Template = "https://lookup.example.com/%s/detail"
	require.Equal(t, "https://lookup.example.com/%s/detail", s.URLTemplate())

	custom := SearchSettings{Provider: ProviderCustom}
	require.Equal(t, "%s", custom.URLTemplate())
}

func TestValidateTemplate(t *testing.T) {
	require.NoError(t, ValidateTemplate("https://example.com/?q=%s"))
	require.Error(t, ValidateTemplate("https://example.com/?q="))
}
