package models

import "encoding/json"

// InventoryItem is the fixed-shape record for the built-in inventory type.
// All fields except the code are optional; a nil field is absent from both
// storage and payloads.
type InventoryItem struct {
	Code             string                   `json:"code,omitempty"`
	ItemName         *string                  `json:"itemName,omitempty"`
	ImageURL         *string                  `json:"imageUrl,omitempty"`
	Category         *string                  `json:"category,omitempty"`
	Version          *string                  `json:"version,omitempty"`
	Group            *string                  `json:"group,omitempty"`
	ScanReason       *string                  `json:"scanReason,omitempty"`
	StorageLocations *string                  `json:"storageLocations,omitempty"`
	Notes            *string                  `json:"notes,omitempty"`
	QuantityAdded    *int                     `json:"quantityAdded,omitempty"`
	QuantityRemoved  *int                     `json:"quantityRemoved,omitempty"`
	CurrencyFields   map[string]CurrencyValue `json:"currencyFields"`
}

// Normalize drops absent currency entries and guarantees a non-nil map.
func (i *InventoryItem) Normalize() {
	i.CurrencyFields = presentCurrencyFields(i.CurrencyFields)
}

// PackagingItem is the fixed-shape record for the built-in packaging type.
type PackagingItem struct {
	Code                string                   `json:"code,omitempty"`
	Item                *string                  `json:"item,omitempty"`
	Supplier            *string                  `json:"supplier,omitempty"`
	ScanReason          *string                  `json:"scanReason,omitempty"`
	QuantityPerUnit     *int                     `json:"quantityPerUnit,omitempty"`
	UnitQuantityAdded   *int                     `json:"unitQuantityAdded,omitempty"`
	UnitQuantityRemoved *int                     `json:"unitQuantityRemoved,omitempty"`
	LastOrdered         *string                  `json:"lastOrdered,omitempty"`
	SupplierLink        *string                  `json:"supplierLink,omitempty"`
	Notes               *string                  `json:"notes,omitempty"`
	CurrencyFields      map[string]CurrencyValue `json:"currencyFields"`
}

// Normalize drops absent currency entries and guarantees a non-nil map.
func (p *PackagingItem) Normalize() {
	p.CurrencyFields = presentCurrencyFields(p.CurrencyFields)
}

// ShipmentItem is the fixed-shape record for the built-in shipment type. It
// carries four optional measurement dimensions on top of the scalar fields.
type ShipmentItem struct {
	Code                string                   `json:"code,omitempty"`
	TrackingNumber      *string                  `json:"trackingNumber,omitempty"`
	BuyerName           *string                  `json:"buyerName,omitempty"`
	BuyerCountry        *string                  `json:"buyerCountry,omitempty"`
	ShippedDate         *string                  `json:"shippedDate,omitempty"`
	EstDeliveryDate     *string                  `json:"estDeliveryDate,omitempty"`
	FulfillmentLocation *string                  `json:"fulfillmentLocation,omitempty"`
	LastHandledBy       *string                  `json:"lastHandledBy,omitempty"`
	ScanReason          *string                  `json:"scanReason,omitempty"`
	Notes               *string                  `json:"notes,omitempty"`
	Weight              *MeasurementValue        `json:"weight,omitempty"`
	Height              *MeasurementValue        `json:"height,omitempty"`
	Width               *MeasurementValue        `json:"width,omitempty"`
	Depth               *MeasurementValue        `json:"depth,omitempty"`
	CurrencyFields      map[string]CurrencyValue `json:"currencyFields"`
}

// Normalize drops absent composite entries: currency values with no halves
// and measurement pointers whose wrapper decoded empty.
func (s *ShipmentItem) Normalize() {
	s.CurrencyFields = presentCurrencyFields(s.CurrencyFields)
	for _, dim := range []**MeasurementValue{&s.Weight, &s.Height, &s.Width, &s.Depth} {
		if *dim != nil && !(*dim).Present() {
			*dim = nil
		}
	}
}

// Dimension returns the named measurement dimension of the shipment.
func (s *ShipmentItem) Dimension(key string) *MeasurementValue {
	switch key {
	case "weight":
		return s.Weight
	case "height":
		return s.Height
	case "width":
		return s.Width
	case "depth":
		return s.Depth
	default:
		return nil
	}
}

// FieldValue is the tagged union a GenericItem stores per field key. Kind is
// always a storage kind (STRING, NUMBER, DATE_TIME, BOOLEAN or CURRENCY);
// measurement fields of generic types are held as strings.
type FieldValue struct {
	Kind     FieldType
	Str      string
	Num      float64
	Bool     bool
	Currency CurrencyValue
}

// StringValue builds a STRING field value.
func StringValue(s string) FieldValue {
	return FieldValue{Kind: FieldTypeString, Str: s}
}

// NumberValue builds a NUMBER field value.
func NumberValue(n float64) FieldValue {
	return FieldValue{Kind: FieldTypeNumber, Num: n}
}

// DateTimeValue builds a DATE_TIME field value.
func DateTimeValue(s string) FieldValue {
	return FieldValue{Kind: FieldTypeDateTime, Str: s}
}

// BoolValue builds a BOOLEAN field value.
func BoolValue(b bool) FieldValue {
	return FieldValue{Kind: FieldTypeBoolean, Bool: b}
}

// CurrencyFieldValue builds a CURRENCY field value.
func CurrencyFieldValue(v CurrencyValue) FieldValue {
	return FieldValue{Kind: FieldTypeCurrency, Currency: v}
}

// GenericItem is the record shape for user-defined types: a single map of
// field key to tagged value, plus the owning type ID. The persisted JSON form
// partitions the values into five kind groups so stored data keeps the same
// shape as payload encoding.
type GenericItem struct {
	Code   string
	TypeID string
	Fields map[string]FieldValue
}

type genericItemJSON struct {
	Code           string                   `json:"code,omitempty"`
	TypeID         string                   `json:"typeId"`
	StringFields   map[string]string        `json:"stringFields"`
	NumberFields   map[string]float64       `json:"numberFields"`
	DateTimeFields map[string]string        `json:"dateTimeFields"`
	BooleanFields  map[string]bool          `json:"booleanFields"`
	CurrencyFields map[string]CurrencyValue `json:"currencyFields"`
}

// MarshalJSON groups the field map into the five persisted kind partitions.
func (g GenericItem) MarshalJSON() ([]byte, error) {
	out := genericItemJSON{
		Code:           g.Code,
		TypeID:         g.TypeID,
		StringFields:   map[string]string{},
		NumberFields:   map[string]float64{},
		DateTimeFields: map[string]string{},
		BooleanFields:  map[string]bool{},
		CurrencyFields: map[string]CurrencyValue{},
	}
	for key, value := range g.Fields {
		switch value.Kind {
		case FieldTypeNumber:
			out.NumberFields[key] = value.Num
		case FieldTypeDateTime:
			out.DateTimeFields[key] = value.Str
		case FieldTypeBoolean:
			out.BooleanFields[key] = value.Bool
		case FieldTypeCurrency:
			if value.Currency.Present() {
				out.CurrencyFields[key] = value.Currency
			}
		default:
			out.StringFields[key] = value.Str
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON reassembles the single field map from the five kind groups.
func (g *GenericItem) UnmarshalJSON(data []byte) error {
	var in genericItemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	g.Code = in.Code
	g.TypeID = in.TypeID
	g.Fields = make(map[string]FieldValue)
	for key, value := range in.StringFields {
		g.Fields[key] = StringValue(value)
	}
	for key, value := range in.NumberFields {
		g.Fields[key] = NumberValue(value)
	}
	for key, value := range in.DateTimeFields {
		g.Fields[key] = DateTimeValue(value)
	}
	for key, value := range in.BooleanFields {
		g.Fields[key] = BoolValue(value)
	}
	for key, value := range in.CurrencyFields {
		if value.Present() {
			g.Fields[key] = CurrencyFieldValue(value)
		}
	}
	return nil
}
