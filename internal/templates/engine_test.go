package templates

import (
	"encoding/json"
	"strings"
	"testing"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/schema"
	"example.com/scanbridge/internal/settings"

	"github.com/stretchr/testify/require"
)

func TestSubstituteReplacesAllPlaceholders(t *testing.T) {
	template := `{"code":"{{code}}","scanQuantity":"{{scanQuantity}}","timestamp":"{{timestamp}}"}`
	out := Substitute(template, Bindings{Code: "ABC123", ScanQuantity: "3", Timestamp: "1700000000000"})
	require.Equal(t, `{"code":"ABC123","scanQuantity":"3","timestamp":"1700000000000"}`, out)
}

func TestSubstituteLeavesUnknownTokens(t *testing.T) {
	template := `{"code":"{{code}}","operator":"{{operator}}"}`
	out := Substitute(template, Bindings{Code: "X", ScanQuantity: "1", Timestamp: "0"})
	require.Equal(t, `{"code":"X","operator":"{{operator}}"}`, out)
}

func TestSubstituteRepeatedPlaceholder(t *testing.T) {
	out := Substitute("{{code}}-{{code}}", Bindings{Code: "A"})
	require.Equal(t, "A-A", out)
}

func builtinType(t *testing.T, id string) models.ItemType {
	t.Helper()
	for _, itemType := range schema.BuiltinTypes() {
		if itemType.ID == id {
			return itemType
		}
	}
	t.Fatalf("no builtin type %s", id)
	return models.ItemType{}
}

func TestBodyTemplateSkeletonInventory(t *testing.T) {
	one := 1
	body, err := BodyTemplateSkeleton(
		builtinType(t, models.TypeIDInventory),
		"Create",
		QuantityOverrides{QuantityAdded: &one},
		settings.Defaults(),
	)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))

	require.Equal(t, "{{code}}", decoded["code"])
	require.Equal(t, "{{scanQuantity}}", decoded["scanQuantity"])
	require.Equal(t, "{{timestamp}}", decoded["timestamp"])
	require.Equal(t, "Inventory", decoded["itemType"])
	require.Equal(t, "Create", decoded["scanReason"])
	require.Equal(t, float64(1), decoded["quantityAdded"])
	require.Equal(t, float64(0), decoded["quantityRemoved"])
	require.Equal(t, "", decoded["itemName"])

	// Currency zeros carry the configured codes.
	cost, ok := decoded["costPerUnit"].([]interface{})
	require.True(t, ok)
	require.Len(t, cost, 1)
	wrapper := cost[0].(map[string]interface{})
	local := wrapper["localUnit"].(map[string]interface{})
	require.Equal(t, "KRW", local["localCurrency"])
	require.Equal(t, float64(0), local["localValue"])

	// Two-space indentation, placeholder keys first.
	require.True(t, strings.HasPrefix(body, "{\n  \"code\": \"{{code}}\""))
	require.Less(t, strings.Index(body, `"scanQuantity"`), strings.Index(body, `"itemName"`))
}

func TestBodyTemplateSkeletonShipmentMeasurements(t *testing.T) {
	body, err := BodyTemplateSkeleton(
		builtinType(t, models.TypeIDShipment),
		"In Transit",
		QuantityOverrides{},
		settings.Defaults(),
	)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))

	weight := decoded["weight"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, "kg", weight["metric"].(map[string]interface{})["unit"])
	require.Equal(t, "lbs", weight["imperial"].(map[string]interface{})["unit"])

	height := decoded["height"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, "cm", height["metric"].(map[string]interface{})["unit"])
	require.Equal(t, "in", height["imperial"].(map[string]interface{})["unit"])
}
