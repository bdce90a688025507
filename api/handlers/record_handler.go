package handlers

import (
	"net/http"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/records"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RecordHandler handles typed record requests
type RecordHandler struct {
	records *records.Store
	log     *logrus.Logger
}

// NewRecordHandler creates a new RecordHandler instance
func NewRecordHandler(recordStore *records.Store, log *logrus.Logger) *RecordHandler {
	return &RecordHandler{records: recordStore, log: log}
}

// ListRecords returns every record of a type, keyed by code.
func (h *RecordHandler) ListRecords(c *gin.Context) {
	typeID := c.Param("typeId")
	switch typeID {
	case models.TypeIDInventory:
		c.JSON(http.StatusOK, h.records.AllInventory())
	case models.TypeIDPackaging:
		c.JSON(http.StatusOK, h.records.AllPackaging())
	case models.TypeIDShipment:
		c.JSON(http.StatusOK, h.records.AllShipment())
	default:
		all := h.records.AllGeneric()
		filtered := make(map[string]models.GenericItem)
		for code, item := range all {
			if item.TypeID == typeID {
				filtered[code] = item
			}
		}
		c.JSON(http.StatusOK, filtered)
	}
}

// GetRecord returns the record stored for a code.
func (h *RecordHandler) GetRecord(c *gin.Context) {
	typeID := c.Param("typeId")
	code := c.Param("code")

	var found interface{}
	switch typeID {
	case models.TypeIDInventory:
		if item, ok := h.records.AllInventory()[code]; ok {
			found = item
		}
	case models.TypeIDPackaging:
		if item, ok := h.records.AllPackaging()[code]; ok {
			found = item
		}
	case models.TypeIDShipment:
		if item, ok := h.records.AllShipment()[code]; ok {
			found = item
		}
	default:
		if item, ok := h.records.AllGeneric()[code]; ok && item.TypeID == typeID {
			found = item
		}
	}
	if found == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Record not found",
		})
		return
	}
	c.JSON(http.StatusOK, found)
}

// UpsertRecord replaces the record stored for the code in the request body.
func (h *RecordHandler) UpsertRecord(c *gin.Context) {
	typeID := c.Param("typeId")

	var err error
	var code string
	switch typeID {
	case models.TypeIDInventory:
		var item models.InventoryItem
		if bindErr := c.ShouldBindJSON(&item); bindErr != nil {
			h.invalidRecord(c, bindErr)
			return
		}
		code = item.Code
		if code != "" {
			item.Normalize()
			err = h.records.UpsertInventory(item)
		}
	case models.TypeIDPackaging:
		var item models.PackagingItem
		if bindErr := c.ShouldBindJSON(&item); bindErr != nil {
			h.invalidRecord(c, bindErr)
			return
		}
		code = item.Code
		if code != "" {
			item.Normalize()
			err = h.records.UpsertPackaging(item)
		}
	case models.TypeIDShipment:
		var item models.ShipmentItem
		if bindErr := c.ShouldBindJSON(&item); bindErr != nil {
			h.invalidRecord(c, bindErr)
			return
		}
		code = item.Code
		if code != "" {
			item.Normalize()
			err = h.records.UpsertShipment(item)
		}
	default:
		var item models.GenericItem
		if bindErr := c.ShouldBindJSON(&item); bindErr != nil {
			h.invalidRecord(c, bindErr)
			return
		}
		code = item.Code
		if code != "" {
			item.TypeID = typeID
			err = h.records.UpsertGeneric(item)
		}
	}

	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Record code must not be blank",
		})
		return
	}
	if err != nil {
		h.log.WithError(err).Error("Failed to save record")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save record",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"code": code})
}

func (h *RecordHandler) invalidRecord(c *gin.Context, err error) {
	h.log.WithError(err).Warn("Invalid record format")
	c.JSON(http.StatusBadRequest, gin.H{
		"error": "Invalid record format",
	})
}
