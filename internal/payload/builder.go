// Package payload builds the JSON bodies posted to webhooks. Key order is
// part of the contract: code, scanQuantity, timestamp (and itemType for
// custom types) first, then the selected fields in schema declaration order.
package payload

import (
	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/utils"
)

// Scan carries the per-event values common to every payload.
type Scan struct {
	Code         string
	ScanQuantity int
	Timestamp    int64
}

func selectedSet(selected []string) map[string]bool {
	set := make(map[string]bool, len(selected))
	for _, key := range selected {
		set[key] = true
	}
	return set
}

func newBase(scan Scan) (*utils.JSONObject, error) {
	obj := utils.NewJSONObject()
	if err := obj.Put("code", scan.Code); err != nil {
		return nil, err
	}
	if err := obj.Put("scanQuantity", scan.ScanQuantity); err != nil {
		return nil, err
	}
	if err := obj.Put("timestamp", scan.Timestamp); err != nil {
		return nil, err
	}
	return obj, nil
}

func putIfPresent(obj *utils.JSONObject, key string, value interface{}) error {
	switch v := value.(type) {
	case nil:
		return nil
	case *string:
		if v == nil {
			return nil
		}
		return obj.Put(key, *v)
	case *int:
		if v == nil {
			return nil
		}
		return obj.Put(key, *v)
	default:
		return obj.Put(key, value)
	}
}

func putCurrency(obj *utils.JSONObject, key string, value models.CurrencyValue) error {
	if !value.Present() {
		return nil
	}
	return obj.Put(key, value)
}

// BuildInventory encodes an inventory scan. A field appears only when it is
// selected and the record holds a value for it.
func BuildInventory(scan Scan, item models.InventoryItem, itemType models.ItemType, selected []string) (string, error) {
	obj, err := newBase(scan)
	if err != nil {
		return "", err
	}
	sel := selectedSet(selected)
	for _, field := range itemType.Fields {
		if !sel[field.Key] {
			continue
		}
		if field.Type == models.FieldTypeCurrency {
			if value, ok := item.CurrencyFields[field.Key]; ok {
				if err := putCurrency(obj, field.Key, value); err != nil {
					return "", err
				}
			}
			continue
		}
		if err := putIfPresent(obj, field.Key, inventoryScalar(item, field.Key)); err != nil {
			return "", err
		}
	}
	return obj.String(), nil
}

func inventoryScalar(item models.InventoryItem, key string) interface{} {
	switch key {
	case "itemName":
		return item.ItemName
	case "imageUrl":
		return item.ImageURL
	case "category":
		return item.Category
	case "version":
		return item.Version
	case "group":
		return item.Group
	case "scanReason":
		return item.ScanReason
	case "storageLocations":
		return item.StorageLocations
	case "notes":
		return item.Notes
	case "quantityAdded":
		return item.QuantityAdded
	case "quantityRemoved":
		return item.QuantityRemoved
	default:
		return nil
	}
}

// BuildPackaging encodes a packaging scan.
func BuildPackaging(scan Scan, item models.PackagingItem, itemType models.ItemType, selected []string) (string, error) {
	obj, err := newBase(scan)
	if err != nil {
		return "", err
	}
	sel := selectedSet(selected)
	for _, field := range itemType.Fields {
		if !sel[field.Key] {
			continue
		}
		if field.Type == models.FieldTypeCurrency {
			if value, ok := item.CurrencyFields[field.Key]; ok {
				if err := putCurrency(obj, field.Key, value); err != nil {
					return "", err
				}
			}
			continue
		}
		if err := putIfPresent(obj, field.Key, packagingScalar(item, field.Key)); err != nil {
			return "", err
		}
	}
	return obj.String(), nil
}

func packagingScalar(item models.PackagingItem, key string) interface{} {
	switch key {
	case "item":
		return item.Item
	case "supplier":
		return item.Supplier
	case "scanReason":
		return item.ScanReason
	case "quantityPerUnit":
		return item.QuantityPerUnit
	case "unitQuantityAdded":
		return item.UnitQuantityAdded
	case "unitQuantityRemoved":
		return item.UnitQuantityRemoved
	case "lastOrdered":
		return item.LastOrdered
	case "supplierLink":
		return item.SupplierLink
	case "notes":
		return item.Notes
	default:
		return nil
	}
}

// BuildShipment encodes a shipment scan, including its measurement
// dimensions when selected and present.
func BuildShipment(scan Scan, item models.ShipmentItem, itemType models.ItemType, selected []string) (string, error) {
	obj, err := newBase(scan)
	if err != nil {
		return "", err
	}
	sel := selectedSet(selected)
	for _, field := range itemType.Fields {
		if !sel[field.Key] {
			continue
		}
		switch field.Type {
		case models.FieldTypeCurrency:
			if value, ok := item.CurrencyFields[field.Key]; ok {
				if err := putCurrency(obj, field.Key, value); err != nil {
					return "", err
				}
			}
		case models.FieldTypeMeasurementWeight, models.FieldTypeMeasurementDimension:
			if dim := item.Dimension(field.Key); dim != nil && dim.Present() {
				if err := obj.Put(field.Key, dim); err != nil {
					return "", err
				}
			}
		default:
			if err := putIfPresent(obj, field.Key, shipmentScalar(item, field.Key)); err != nil {
				return "", err
			}
		}
	}
	return obj.String(), nil
}

func shipmentScalar(item models.ShipmentItem, key string) interface{} {
	switch key {
	case "trackingNumber":
		return item.TrackingNumber
	case "buyerName":
		return item.BuyerName
	case "buyerCountry":
		return item.BuyerCountry
	case "shippedDate":
		return item.ShippedDate
	case "estDeliveryDate":
		return item.EstDeliveryDate
	case "fulfillmentLocation":
		return item.FulfillmentLocation
	case "lastHandledBy":
		return item.LastHandledBy
	case "scanReason":
		return item.ScanReason
	case "notes":
		return item.Notes
	default:
		return nil
	}
}

// BuildGeneric encodes a scan against a user-defined type. The type display
// name goes in as itemType right after the base keys.
func BuildGeneric(scan Scan, item models.GenericItem, itemType models.ItemType, selected []string) (string, error) {
	obj, err := newBase(scan)
	if err != nil {
		return "", err
	}
	if err := obj.Put("itemType", itemType.Name); err != nil {
		return "", err
	}
	sel := selectedSet(selected)
	for _, field := range itemType.Fields {
		if !sel[field.Key] {
			continue
		}
		value, ok := item.Fields[field.Key]
		if !ok {
			continue
		}
		switch value.Kind {
		case models.FieldTypeNumber:
			err = obj.Put(field.Key, value.Num)
		case models.FieldTypeBoolean:
			err = obj.Put(field.Key, value.Bool)
		case models.FieldTypeCurrency:
			err = putCurrency(obj, field.Key, value.Currency)
		default:
			err = obj.Put(field.Key, value.Str)
		}
		if err != nil {
			return "", err
		}
	}
	return obj.String(), nil
}
