package models

import "encoding/json"

// FieldType enumerates the kinds of values an item field can hold.
type FieldType string

const (
	FieldTypeString               FieldType = "STRING"
	FieldTypeNumber               FieldType = "NUMBER"
	FieldTypeDateTime             FieldType = "DATE_TIME"
	FieldTypeBoolean              FieldType = "BOOLEAN"
	FieldTypeCurrency             FieldType = "CURRENCY"
	FieldTypeMeasurementWeight    FieldType = "MEASUREMENT_WEIGHT"
	FieldTypeMeasurementDimension FieldType = "MEASUREMENT_DIMENSION"
)

// ParseFieldType maps a serialized type name to a FieldType. Unknown names
// degrade to STRING so one bad field never fails a whole collection load.
func ParseFieldType(name string) FieldType {
	switch FieldType(name) {
	case FieldTypeString, FieldTypeNumber, FieldTypeDateTime, FieldTypeBoolean,
		FieldTypeCurrency, FieldTypeMeasurementWeight, FieldTypeMeasurementDimension:
		return FieldType(name)
	default:
		return FieldTypeString
	}
}

// Composite reports whether values of this type serialize as the
// single-element array wrapper instead of a plain scalar.
func (t FieldType) Composite() bool {
	switch t {
	case FieldTypeCurrency, FieldTypeMeasurementWeight, FieldTypeMeasurementDimension:
		return true
	default:
		return false
	}
}

// StorageKind maps a declared field type to the value group a GenericItem
// stores it under. Measurement fields are held as strings for generic types.
func (t FieldType) StorageKind() FieldType {
	switch t {
	case FieldTypeMeasurementWeight, FieldTypeMeasurementDimension:
		return FieldTypeString
	default:
		return t
	}
}

// UnmarshalJSON decodes a field type leniently via ParseFieldType.
func (t *FieldType) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*t = ParseFieldType(name)
	return nil
}
