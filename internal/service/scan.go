// Package service holds the scan processing logic: merging scanned values
// into the stored record for the code and producing the webhook payload.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/payload"
	"example.com/scanbridge/internal/records"
	"example.com/scanbridge/internal/schema"

	"github.com/sirupsen/logrus"
)

// ErrUnknownType is returned when a scan names a type that does not exist.
var ErrUnknownType = errors.New("unknown item type")

// ErrBlankCode is returned when a scan carries no code.
var ErrBlankCode = errors.New("code must not be blank")

// ScanRequest is one scan event. Values holds the raw JSON value per field
// key; only keys listed in SelectedFields are merged into the record, every
// other stored field keeps its current value.
type ScanRequest struct {
	Code           string
	TypeID         string
	SelectedFields []string
	Values         map[string]json.RawMessage
	Timestamp      int64
}

// ScanResult carries the outcome of record merging: the payload to deliver
// and the event timestamp stamped into history.
type ScanResult struct {
	Payload   string
	Timestamp int64
}

// Scanner merges scans into records and builds payloads.
type Scanner struct {
	types   *schema.Store
	records *records.Store
	log     *logrus.Logger
}

// NewScanner creates a scan processor.
func NewScanner(types *schema.Store, recordStore *records.Store, log *logrus.Logger) *Scanner {
	return &Scanner{types: types, records: recordStore, log: log}
}

// Process validates the scan, merges its values into the stored record for
// the code and returns the payload built from the updated record. The record
// write happens before any delivery attempt.
func (s *Scanner) Process(req ScanRequest) (ScanResult, error) {
	if req.Code == "" {
		return ScanResult{}, ErrBlankCode
	}
	itemType, ok := s.types.FindByID(req.TypeID)
	if !ok {
		return ScanResult{}, fmt.Errorf("%w: %s", ErrUnknownType, req.TypeID)
	}
	if req.Timestamp == 0 {
		req.Timestamp = time.Now().UnixMilli()
	}

	scan := payload.Scan{Code: req.Code, ScanQuantity: 1, Timestamp: req.Timestamp}

	var body string
	var err error
	switch itemType.ID {
	case models.TypeIDInventory:
		body, err = s.processInventory(req, itemType, scan)
	case models.TypeIDPackaging:
		body, err = s.processPackaging(req, itemType, scan)
	case models.TypeIDShipment:
		body, err = s.processShipment(req, itemType, scan)
	default:
		body, err = s.processGeneric(req, itemType, scan)
	}
	if err != nil {
		return ScanResult{}, err
	}

	s.log.WithFields(logrus.Fields{
		"code": req.Code,
		"type": itemType.ID,
	}).Info("Processed scan")
	return ScanResult{Payload: body, Timestamp: req.Timestamp}, nil
}

func (s *Scanner) processInventory(req ScanRequest, itemType models.ItemType, scan payload.Scan) (string, error) {
	items := s.records.AllInventory()
	item := items[req.Code]
	item.Code = req.Code
	if item.CurrencyFields == nil {
		item.CurrencyFields = make(map[string]models.CurrencyValue)
	}
	for _, key := range req.SelectedFields {
		raw, ok := req.Values[key]
		if !ok {
			continue
		}
		if err := setInventoryField(&item, key, raw); err != nil {
			return "", fmt.Errorf("field %s: %w", key, err)
		}
	}
	if err := s.records.UpsertInventory(item); err != nil {
		return "", err
	}
	return payload.BuildInventory(scan, item, itemType, req.SelectedFields)
}

func setInventoryField(item *models.InventoryItem, key string, raw json.RawMessage) error {
	switch key {
	case "itemName":
		return decodeString(raw, &item.ItemName)
	case "imageUrl":
		return decodeString(raw, &item.ImageURL)
	case "category":
		return decodeString(raw, &item.Category)
	case "version":
		return decodeString(raw, &item.Version)
	case "group":
		return decodeString(raw, &item.Group)
	case "scanReason":
		return decodeString(raw, &item.ScanReason)
	case "storageLocations":
		return decodeString(raw, &item.StorageLocations)
	case "notes":
		return decodeString(raw, &item.Notes)
	case "quantityAdded":
		return decodeInt(raw, &item.QuantityAdded)
	case "quantityRemoved":
		return decodeInt(raw, &item.QuantityRemoved)
	default:
		return decodeCurrencyInto(item.CurrencyFields, key, raw)
	}
}

func (s *Scanner) processPackaging(req ScanRequest, itemType models.ItemType, scan payload.Scan) (string, error) {
	items := s.records.AllPackaging()
	item := items[req.Code]
	item.Code = req.Code
	if item.CurrencyFields == nil {
		item.CurrencyFields = make(map[string]models.CurrencyValue)
	}
	for _, key := range req.SelectedFields {
		raw, ok := req.Values[key]
		if !ok {
			continue
		}
		if err := setPackagingField(&item, key, raw); err != nil {
			return "", fmt.Errorf("field %s: %w", key, err)
		}
	}
	if err := s.records.UpsertPackaging(item); err != nil {
		return "", err
	}
	return payload.BuildPackaging(scan, item, itemType, req.SelectedFields)
}

func setPackagingField(item *models.PackagingItem, key string, raw json.RawMessage) error {
	switch key {
	case "item":
		return decodeString(raw, &item.Item)
	case "supplier":
		return decodeString(raw, &item.Supplier)
	case "scanReason":
		return decodeString(raw, &item.ScanReason)
	case "quantityPerUnit":
		return decodeInt(raw, &item.QuantityPerUnit)
	case "unitQuantityAdded":
		return decodeInt(raw, &item.UnitQuantityAdded)
	case "unitQuantityRemoved":
		return decodeInt(raw, &item.UnitQuantityRemoved)
	case "lastOrdered":
		return decodeString(raw, &item.LastOrdered)
	case "supplierLink":
		return decodeString(raw, &item.SupplierLink)
	case "notes":
		return decodeString(raw, &item.Notes)
	default:
		return decodeCurrencyInto(item.CurrencyFields, key, raw)
	}
}

func (s *Scanner) processShipment(req ScanRequest, itemType models.ItemType, scan payload.Scan) (string, error) {
	items := s.records.AllShipment()
	item := items[req.Code]
	item.Code = req.Code
	if item.CurrencyFields == nil {
		item.CurrencyFields = make(map[string]models.CurrencyValue)
	}
	for _, key := range req.SelectedFields {
		raw, ok := req.Values[key]
		if !ok {
			continue
		}
		field, fieldKnown := itemType.FieldByKey(key)
		if fieldKnown && (field.Type == models.FieldTypeMeasurementWeight || field.Type == models.FieldTypeMeasurementDimension) {
			if err := setShipmentDimension(&item, key, raw); err != nil {
				return "", fmt.Errorf("field %s: %w", key, err)
			}
			continue
		}
		if err := setShipmentField(&item, key, raw); err != nil {
			return "", fmt.Errorf("field %s: %w", key, err)
		}
	}
	item.Normalize()
	if err := s.records.UpsertShipment(item); err != nil {
		return "", err
	}
	return payload.BuildShipment(scan, item, itemType, req.SelectedFields)
}

func setShipmentField(item *models.ShipmentItem, key string, raw json.RawMessage) error {
	switch key {
	case "trackingNumber":
		return decodeString(raw, &item.TrackingNumber)
	case "buyerName":
		return decodeString(raw, &item.BuyerName)
	case "buyerCountry":
		return decodeString(raw, &item.BuyerCountry)
	case "shippedDate":
		return decodeString(raw, &item.ShippedDate)
	case "estDeliveryDate":
		return decodeString(raw, &item.EstDeliveryDate)
	case "fulfillmentLocation":
		return decodeString(raw, &item.FulfillmentLocation)
	case "lastHandledBy":
		return decodeString(raw, &item.LastHandledBy)
	case "scanReason":
		return decodeString(raw, &item.ScanReason)
	case "notes":
		return decodeString(raw, &item.Notes)
	default:
		return decodeCurrencyInto(item.CurrencyFields, key, raw)
	}
}

func setShipmentDimension(item *models.ShipmentItem, key string, raw json.RawMessage) error {
	var value models.MeasurementValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}
	var target **models.MeasurementValue
	switch key {
	case "weight":
		target = &item.Weight
	case "height":
		target = &item.Height
	case "width":
		target = &item.Width
	case "depth":
		target = &item.Depth
	default:
		return fmt.Errorf("unknown measurement field %s", key)
	}
	if !value.Present() {
		*target = nil
		return nil
	}
	*target = &value
	return nil
}

func (s *Scanner) processGeneric(req ScanRequest, itemType models.ItemType, scan payload.Scan) (string, error) {
	items := s.records.AllGeneric()
	item, ok := items[req.Code]
	if !ok {
		item = models.GenericItem{Code: req.Code, Fields: make(map[string]models.FieldValue)}
	}
	item.TypeID = itemType.ID
	for _, key := range req.SelectedFields {
		raw, hasValue := req.Values[key]
		if !hasValue {
			continue
		}
		field, known := itemType.FieldByKey(key)
		if !known {
			continue
		}
		value, err := decodeFieldValue(field.Type, raw)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", key, err)
		}
		if value == nil {
			delete(item.Fields, key)
			continue
		}
		item.Fields[key] = *value
	}
	if err := s.records.UpsertGeneric(item); err != nil {
		return "", err
	}
	return payload.BuildGeneric(scan, item, itemType, req.SelectedFields)
}

// decodeFieldValue decodes a raw JSON value for a generic field. A returned
// nil means the value resolved to absent (currency with no halves).
func decodeFieldValue(fieldType models.FieldType, raw json.RawMessage) (*models.FieldValue, error) {
	switch fieldType.StorageKind() {
	case models.FieldTypeNumber:
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil, err
		}
		value := models.NumberValue(n)
		return &value, nil
	case models.FieldTypeBoolean:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, err
		}
		value := models.BoolValue(b)
		return &value, nil
	case models.FieldTypeCurrency:
		var c models.CurrencyValue
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}
		if !c.Present() {
			return nil, nil
		}
		value := models.CurrencyFieldValue(c)
		return &value, nil
	case models.FieldTypeDateTime:
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil, err
		}
		value := models.DateTimeValue(str)
		return &value, nil
	default:
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return nil, err
		}
		value := models.StringValue(str)
		return &value, nil
	}
}

func decodeString(raw json.RawMessage, target **string) error {
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return err
	}
	*target = &str
	return nil
}

func decodeInt(raw json.RawMessage, target **int) error {
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return err
	}
	*target = &n
	return nil
}

func decodeCurrencyInto(fields map[string]models.CurrencyValue, key string, raw json.RawMessage) error {
	var value models.CurrencyValue
	if err := json.Unmarshal(raw, &value); err != nil {
		return err
	}
	if !value.Present() {
		delete(fields, key)
		return nil
	}
	fields[key] = value
	return nil
}
