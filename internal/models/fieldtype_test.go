package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFieldTypeUnknownDegradesToString(t *testing.T) {
	require.Equal(t, FieldTypeString, ParseFieldType("GEOLOCATION"))
	require.Equal(t, FieldTypeString, ParseFieldType(""))
	require.Equal(t, FieldTypeCurrency, ParseFieldType("CURRENCY"))
}

func TestFieldTypeLenientUnmarshal(t *testing.T) {
	var field ItemField
	require.NoError(t, json.Unmarshal([]byte(`{"key":"x","label":"X","type":"NOT_A_TYPE"}`), &field))
	require.Equal(t, FieldTypeString, field.Type)
}

func TestStorageKind(t *testing.T) {
	require.Equal(t, FieldTypeString, FieldTypeMeasurementWeight.StorageKind())
	require.Equal(t, FieldTypeString, FieldTypeMeasurementDimension.StorageKind())
	require.Equal(t, FieldTypeNumber, FieldTypeNumber.StorageKind())
	require.Equal(t, FieldTypeCurrency, FieldTypeCurrency.StorageKind())
}

func TestGenericItemRoundTrip(t *testing.T) {
	item := GenericItem{
		Code:   "G1",
		TypeID: "asset",
		Fields: map[string]FieldValue{
			"name":     StringValue("Projector"),
			"count":    NumberValue(4),
			"audited":  BoolValue(true),
			"acquired": DateTimeValue("2024-03-01T09:00:00"),
			"price": CurrencyFieldValue(CurrencyValue{
				Local: &CurrencyUnit{Value: floatPtr(990000), CurrencyCode: "KRW", Symbol: "₩"},
			}),
		},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded GenericItem
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, item, decoded)
}

func TestGenericItemWireGroupsByKind(t *testing.T) {
	item := GenericItem{
		TypeID: "asset",
		Fields: map[string]FieldValue{
			"name":  StringValue("Desk"),
			"count": NumberValue(2),
		},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var wire map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &wire))
	require.Contains(t, wire, "stringFields")
	require.Contains(t, wire, "numberFields")
	require.Contains(t, wire, "typeId")
	require.NotContains(t, wire, "code")
	require.JSONEq(t, `{"name":"Desk"}`, string(wire["stringFields"]))
	require.JSONEq(t, `{"count":2}`, string(wire["numberFields"]))
}

func TestGenericItemDropsAbsentCurrency(t *testing.T) {
	item := GenericItem{
		TypeID: "asset",
		Fields: map[string]FieldValue{
			"price": CurrencyFieldValue(CurrencyValue{}),
		},
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var decoded GenericItem
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotContains(t, decoded.Fields, "price")
}
