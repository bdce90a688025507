package models

import (
	"bytes"
	"encoding/json"
)

// CurrencyUnit is one half of a currency value, denominated in a single
// currency.
type CurrencyUnit struct {
	Value        *float64
	CurrencyCode string
	Symbol       string
}

// CurrencyValue is a composite field value holding an optional local and an
// optional global denomination. A value with both halves nil is treated as
// absent everywhere: it is never written to storage or payloads.
type CurrencyValue struct {
	Local  *CurrencyUnit
	Global *CurrencyUnit
}

// Present reports whether at least one half carries data.
func (v CurrencyValue) Present() bool {
	return v.Local != nil || v.Global != nil
}

type localUnitJSON struct {
	Value    *float64 `json:"localValue,omitempty"`
	Currency string   `json:"localCurrency"`
	Symbol   string   `json:"localSymbol"`
}

type globalUnitJSON struct {
	Value    *float64 `json:"globalValue,omitempty"`
	Currency string   `json:"globalCurrency"`
	Symbol   string   `json:"globalSymbol"`
}

type currencyWrapperJSON struct {
	Local  *localUnitJSON  `json:"localUnit,omitempty"`
	Global *globalUnitJSON `json:"globalUnit,omitempty"`
}

// MarshalJSON encodes the value as a single-element array wrapping an object
// with up to two unit sub-objects. An absent value encodes as an empty array;
// owning maps are expected to drop absent entries before marshaling.
func (v CurrencyValue) MarshalJSON() ([]byte, error) {
	if !v.Present() {
		return []byte("[]"), nil
	}
	wrapper := currencyWrapperJSON{}
	if v.Local != nil {
		wrapper.Local = &localUnitJSON{
			Value:    v.Local.Value,
			Currency: v.Local.CurrencyCode,
			Symbol:   v.Local.Symbol,
		}
	}
	if v.Global != nil {
		wrapper.Global = &globalUnitJSON{
			Value:    v.Global.Value,
			Currency: v.Global.CurrencyCode,
			Symbol:   v.Global.Symbol,
		}
	}
	return json.Marshal([1]currencyWrapperJSON{wrapper})
}

// UnmarshalJSON decodes the wrapper shape. Empty arrays, empty objects and
// null all decode to the absent value.
func (v *CurrencyValue) UnmarshalJSON(data []byte) error {
	*v = CurrencyValue{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var wrappers []currencyWrapperJSON
	if err := json.Unmarshal(data, &wrappers); err != nil {
		return err
	}
	if len(wrappers) == 0 {
		return nil
	}
	wrapper := wrappers[0]
	if wrapper.Local != nil {
		v.Local = &CurrencyUnit{
			Value:        wrapper.Local.Value,
			CurrencyCode: wrapper.Local.Currency,
			Symbol:       wrapper.Local.Symbol,
		}
	}
	if wrapper.Global != nil {
		v.Global = &CurrencyUnit{
			Value:        wrapper.Global.Value,
			CurrencyCode: wrapper.Global.Currency,
			Symbol:       wrapper.Global.Symbol,
		}
	}
	return nil
}

// MeasurementUnit is one half of a measurement value, expressed in a single
// unit system.
type MeasurementUnit struct {
	Value  *float64
	Unit   string
	Symbol string
}

// MeasurementValue is a composite field value holding an optional metric and
// an optional imperial reading. Same omission rule as CurrencyValue.
type MeasurementValue struct {
	Metric   *MeasurementUnit
	Imperial *MeasurementUnit
}

// Present reports whether at least one half carries data.
func (v MeasurementValue) Present() bool {
	return v.Metric != nil || v.Imperial != nil
}

type measurementUnitJSON struct {
	Value  *float64 `json:"value,omitempty"`
	Unit   string   `json:"unit"`
	Symbol string   `json:"symbol"`
}

type measurementWrapperJSON struct {
	Metric   *measurementUnitJSON `json:"metric,omitempty"`
	Imperial *measurementUnitJSON `json:"imperial,omitempty"`
}

// MarshalJSON encodes the value as the single-element array wrapper.
func (v MeasurementValue) MarshalJSON() ([]byte, error) {
	if !v.Present() {
		return []byte("[]"), nil
	}
	wrapper := measurementWrapperJSON{}
	if v.Metric != nil {
		wrapper.Metric = &measurementUnitJSON{
			Value:  v.Metric.Value,
			Unit:   v.Metric.Unit,
			Symbol: v.Metric.Symbol,
		}
	}
	if v.Imperial != nil {
		wrapper.Imperial = &measurementUnitJSON{
			Value:  v.Imperial.Value,
			Unit:   v.Imperial.Unit,
			Symbol: v.Imperial.Symbol,
		}
	}
	return json.Marshal([1]measurementWrapperJSON{wrapper})
}

// UnmarshalJSON decodes the wrapper shape, treating empty wrappers as absent.
func (v *MeasurementValue) UnmarshalJSON(data []byte) error {
	*v = MeasurementValue{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var wrappers []measurementWrapperJSON
	if err := json.Unmarshal(data, &wrappers); err != nil {
		return err
	}
	if len(wrappers) == 0 {
		return nil
	}
	wrapper := wrappers[0]
	if wrapper.Metric != nil {
		v.Metric = &MeasurementUnit{
			Value:  wrapper.Metric.Value,
			Unit:   wrapper.Metric.Unit,
			Symbol: wrapper.Metric.Symbol,
		}
	}
	if wrapper.Imperial != nil {
		v.Imperial = &MeasurementUnit{
			Value:  wrapper.Imperial.Value,
			Unit:   wrapper.Imperial.Unit,
			Symbol: wrapper.Imperial.Symbol,
		}
	}
	return nil
}

// presentCurrencyFields returns a copy of m with absent values dropped, so a
// serialized currency map only ever contains present entries.
func presentCurrencyFields(m map[string]CurrencyValue) map[string]CurrencyValue {
	out := make(map[string]CurrencyValue, len(m))
	for key, value := range m {
		if value.Present() {
			out[key] = value
		}
	}
	return out
}
