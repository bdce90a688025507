package schema

import "example.com/scanbridge/internal/models"

// BuiltinTypes returns the three seeded item types with their fixed field
// lists. Field order is load-bearing: payload keys follow it.
func BuiltinTypes() []models.ItemType {
	inventory := models.ItemType{
		ID:   models.TypeIDInventory,
		Name: "Inventory",
		Fields: []models.ItemField{
			{Key: "itemName", Label: "Item Name", Type: models.FieldTypeString, Required: true},
			{Key: "imageUrl", Label: "Image", Type: models.FieldTypeString},
			{Key: "category", Label: "Category", Type: models.FieldTypeString},
			{Key: "version", Label: "Version", Type: models.FieldTypeString},
			{Key: "group", Label: "Group", Type: models.FieldTypeString},
			{Key: "scanReason", Label: "Scan Reason", Type: models.FieldTypeString},
			{Key: "costPerUnit", Label: "Cost Per Unit", Type: models.FieldTypeCurrency},
			{Key: "floorPrice", Label: "Floor Price", Type: models.FieldTypeCurrency},
			{Key: "targetPrice", Label: "Target Price", Type: models.FieldTypeCurrency},
			{Key: "storageLocations", Label: "Storage Locations", Type: models.FieldTypeString},
			{Key: "notes", Label: "Notes", Type: models.FieldTypeString},
			{Key: "quantityAdded", Label: "Quantity Added", Type: models.FieldTypeNumber},
			{Key: "quantityRemoved", Label: "Quantity Removed", Type: models.FieldTypeNumber},
		},
	}

	packaging := models.ItemType{
		ID:   models.TypeIDPackaging,
		Name: "Packaging",
		Fields: []models.ItemField{
			{Key: "item", Label: "Item", Type: models.FieldTypeString, Required: true},
			{Key: "supplier", Label: "Supplier", Type: models.FieldTypeString},
			{Key: "scanReason", Label: "Scan Reason", Type: models.FieldTypeString},
			{Key: "quantityPerUnit", Label: "Quantity Per Unit", Type: models.FieldTypeNumber},
			{Key: "costPerUnit", Label: "Cost Per Unit", Type: models.FieldTypeCurrency},
			{Key: "unitQuantityAdded", Label: "Unit Quantity Added", Type: models.FieldTypeNumber},
			{Key: "unitQuantityRemoved", Label: "Unit Quantity Removed", Type: models.FieldTypeNumber},
			{Key: "lastOrdered", Label: "Last Ordered", Type: models.FieldTypeDateTime},
			{Key: "supplierLink", Label: "Supplier Link", Type: models.FieldTypeString},
			{Key: "notes", Label: "Notes", Type: models.FieldTypeString},
		},
	}

	shipment := models.ItemType{
		ID:   models.TypeIDShipment,
		Name: "Shipment",
		Fields: []models.ItemField{
			{Key: "trackingNumber", Label: "Tracking Number", Type: models.FieldTypeString, Required: true},
			{Key: "buyerName", Label: "Buyer Name", Type: models.FieldTypeString},
			{Key: "buyerCountry", Label: "Buyer Country", Type: models.FieldTypeString},
			{Key: "shippedDate", Label: "Shipped Date", Type: models.FieldTypeDateTime},
			{Key: "estDeliveryDate", Label: "Est. Delivery Date", Type: models.FieldTypeDateTime},
			{Key: "fulfillmentLocation", Label: "Fulfillment Location", Type: models.FieldTypeString},
			{Key: "lastHandledBy", Label: "Last Handled By", Type: models.FieldTypeString},
			{Key: "scanReason", Label: "Scan Reason", Type: models.FieldTypeString},
			{Key: "weight", Label: "Weight", Type: models.FieldTypeMeasurementWeight},
			{Key: "height", Label: "Height", Type: models.FieldTypeMeasurementDimension},
			{Key: "width", Label: "Width", Type: models.FieldTypeMeasurementDimension},
			{Key: "depth", Label: "Depth", Type: models.FieldTypeMeasurementDimension},
			{Key: "shippingCost", Label: "Shipping Cost", Type: models.FieldTypeCurrency},
			{Key: "declaredCustomsValue", Label: "Declared Customs Value", Type: models.FieldTypeCurrency},
			{Key: "notes", Label: "Notes", Type: models.FieldTypeString},
		},
	}

	return []models.ItemType{inventory, packaging, shipment}
}
