package templates

import (
	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/settings"
	"example.com/scanbridge/internal/utils"
)

// QuantityOverrides pins quantity fields of a generated skeleton to fixed
// values instead of their zero default, so e.g. an "Add Inventory" preset
// ships with quantityAdded already set to 1.
type QuantityOverrides struct {
	QuantityAdded       *int
	QuantityRemoved     *int
	UnitQuantityAdded   *int
	UnitQuantityRemoved *int
}

func (q QuantityOverrides) lookup(key string) (*int, bool) {
	switch key {
	case "quantityAdded":
		return q.QuantityAdded, q.QuantityAdded != nil
	case "quantityRemoved":
		return q.QuantityRemoved, q.QuantityRemoved != nil
	case "unitQuantityAdded":
		return q.UnitQuantityAdded, q.UnitQuantityAdded != nil
	case "unitQuantityRemoved":
		return q.UnitQuantityRemoved, q.UnitQuantityRemoved != nil
	default:
		return nil, false
	}
}

// BodyTemplateSkeleton generates the default preset body for an item type:
// the three placeholder tokens first, then the type name and scan reason,
// then every remaining schema field with its type's zero value. Composite
// zeros carry the configured currency codes and measurement units, which is
// why the settings context is injected here.
func BodyTemplateSkeleton(itemType models.ItemType, scanReason string, overrides QuantityOverrides, ctx settings.Settings) (string, error) {
	obj := utils.NewJSONObject()
	if err := obj.Put("code", PlaceholderCode); err != nil {
		return "", err
	}
	if err := obj.Put("scanQuantity", PlaceholderScanQuantity); err != nil {
		return "", err
	}
	if err := obj.Put("timestamp", PlaceholderTimestamp); err != nil {
		return "", err
	}
	if err := obj.Put("itemType", itemType.Name); err != nil {
		return "", err
	}
	if err := obj.Put("scanReason", scanReason); err != nil {
		return "", err
	}

	for _, override := range []string{"quantityAdded", "quantityRemoved", "unitQuantityAdded", "unitQuantityRemoved"} {
		if value, ok := overrides.lookup(override); ok {
			if err := obj.Put(override, *value); err != nil {
				return "", err
			}
		}
	}

	for _, field := range itemType.Fields {
		if field.Key == "scanReason" {
			continue
		}
		if _, overridden := overrides.lookup(field.Key); overridden {
			continue
		}
		if err := obj.Put(field.Key, zeroValueFor(field.Type, ctx)); err != nil {
			return "", err
		}
	}

	return obj.IndentString()
}

// zeroValueFor returns the placeholder value a skeleton uses for a field.
func zeroValueFor(fieldType models.FieldType, ctx settings.Settings) interface{} {
	zero := 0.0
	switch fieldType {
	case models.FieldTypeNumber:
		return 0
	case models.FieldTypeBoolean:
		return false
	case models.FieldTypeCurrency:
		return models.CurrencyValue{
			Local: &models.CurrencyUnit{
				Value:        &zero,
				CurrencyCode: ctx.Currency.LocalCode,
				Symbol:       ctx.Currency.LocalSymbol(),
			},
			Global: &models.CurrencyUnit{
				Value:        &zero,
				CurrencyCode: ctx.Currency.GlobalCode,
				Symbol:       ctx.Currency.GlobalSymbol(),
			},
		}
	case models.FieldTypeMeasurementWeight:
		return models.MeasurementValue{
			Metric:   &models.MeasurementUnit{Value: &zero, Unit: settings.WeightMetricUnit, Symbol: settings.WeightMetricSymbol},
			Imperial: &models.MeasurementUnit{Value: &zero, Unit: settings.WeightImperialUnit, Symbol: settings.WeightImperialSymbol},
		}
	case models.FieldTypeMeasurementDimension:
		return models.MeasurementValue{
			Metric:   &models.MeasurementUnit{Value: &zero, Unit: settings.DimensionMetricUnit, Symbol: settings.DimensionMetricSymbol},
			Imperial: &models.MeasurementUnit{Value: &zero, Unit: settings.DimensionImperialUnit, Symbol: settings.DimensionImperialSymbol},
		}
	default:
		// STRING and DATE_TIME share the empty-string placeholder.
		return ""
	}
}
