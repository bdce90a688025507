package models

// ItemField describes one typed field of an item type. Fields are immutable
// once created; edits replace the entry with the matching key in the owning
// type's field list.
type ItemField struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
}

// ItemType is a user-defined or built-in schema: a named, ordered list of
// typed fields. The ID doubles as the storage partition discriminator for
// records of this type.
type ItemType struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Fields []ItemField `json:"fields"`
}

// FieldByKey returns the field with the given key, if declared.
func (t ItemType) FieldByKey(key string) (ItemField, bool) {
	for _, field := range t.Fields {
		if field.Key == key {
			return field, true
		}
	}
	return ItemField{}, false
}

// Built-in type IDs. Records of these types use the fixed-shape stores;
// everything else goes through the generic store.
const (
	TypeIDInventory = "inventory"
	TypeIDPackaging = "packaging"
	TypeIDShipment  = "shipment"
)

// BuiltinTypeID reports whether the ID belongs to one of the seeded types.
func BuiltinTypeID(id string) bool {
	return id == TypeIDInventory || id == TypeIDPackaging || id == TypeIDShipment
}
