package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestCurrencyValueAbsentEncodesEmptyArray(t *testing.T) {
	var value CurrencyValue
	require.False(t, value.Present())

	raw, err := json.Marshal(value)
	require.NoError(t, err)
	require.Equal(t, "[]", string(raw))
}

func TestCurrencyValueAbsentDecodings(t *testing.T) {
	for _, input := range []string{"null", "[]", "[{}]"} {
		var value CurrencyValue
		require.NoError(t, json.Unmarshal([]byte(input), &value), input)
		require.False(t, value.Present(), input)
	}
}

func TestCurrencyValueWireShape(t *testing.T) {
	value := CurrencyValue{
		Local: &CurrencyUnit{
			Value:        floatPtr(5000),
			CurrencyCode: "KRW",
			Symbol:       "₩",
		},
		Global: &CurrencyUnit{
			Value:        floatPtr(3.75),
			CurrencyCode: "USD",
			Symbol:       "$",
		},
	}

	raw, err := json.Marshal(value)
	require.NoError(t, err)
	require.JSONEq(t,
		`[{"localUnit":{"localValue":5000,"localCurrency":"KRW","localSymbol":"₩"},`+
			`"globalUnit":{"globalValue":3.75,"globalCurrency":"USD","globalSymbol":"$"}}]`,
		string(raw))
}

func TestCurrencyValueSingleHalf(t *testing.T) {
	value := CurrencyValue{
		Local: &CurrencyUnit{Value: floatPtr(100), CurrencyCode: "KRW", Symbol: "₩"},
	}

	raw, err := json.Marshal(value)
	require.NoError(t, err)
	require.JSONEq(t,
		`[{"localUnit":{"localValue":100,"localCurrency":"KRW","localSymbol":"₩"}}]`,
		string(raw))

	var decoded CurrencyValue
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, value, decoded)
}

func TestCurrencyValueRoundTrip(t *testing.T) {
	value := CurrencyValue{
		Local:  &CurrencyUnit{Value: floatPtr(1234.56), CurrencyCode: "KRW", Symbol: "₩"},
		Global: &CurrencyUnit{Value: nil, CurrencyCode: "USD", Symbol: "$"},
	}

	raw, err := json.Marshal(value)
	require.NoError(t, err)

	var decoded CurrencyValue
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, value, decoded)
}

func TestMeasurementValueRoundTrip(t *testing.T) {
	value := MeasurementValue{
		Metric:   &MeasurementUnit{Value: floatPtr(2.5), Unit: "kg", Symbol: "kg"},
		Imperial: &MeasurementUnit{Value: floatPtr(5.51), Unit: "lbs", Symbol: "lbs"},
	}

	raw, err := json.Marshal(value)
	require.NoError(t, err)
	require.JSONEq(t,
		`[{"metric":{"value":2.5,"unit":"kg","symbol":"kg"},`+
			`"imperial":{"value":5.51,"unit":"lbs","symbol":"lbs"}}]`,
		string(raw))

	var decoded MeasurementValue
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, value, decoded)
}

func TestMeasurementValueAbsent(t *testing.T) {
	var value MeasurementValue
	require.False(t, value.Present())

	raw, err := json.Marshal(value)
	require.NoError(t, err)
	require.Equal(t, "[]", string(raw))

	var decoded MeasurementValue
	require.NoError(t, json.Unmarshal([]byte("[{}]"), &decoded))
	require.False(t, decoded.Present())
}

func TestShipmentNormalizeDropsEmptyComposites(t *testing.T) {
	item := ShipmentItem{
		Code:   "S1",
		Weight: &MeasurementValue{},
		Height: &MeasurementValue{Metric: &MeasurementUnit{Value: floatPtr(10), Unit: "cm", Symbol: "cm"}},
		CurrencyFields: map[string]CurrencyValue{
			"shippingCost":         {},
			"declaredCustomsValue": {Local: &CurrencyUnit{Value: floatPtr(1), CurrencyCode: "KRW", Symbol: "₩"}},
		},
	}
	item.Normalize()

	require.Nil(t, item.Weight)
	require.NotNil(t, item.Height)
	require.NotContains(t, item.CurrencyFields, "shippingCost")
	require.Contains(t, item.CurrencyFields, "declaredCustomsValue")
}
