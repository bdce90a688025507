package handlers

import (
	"net/http"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/schema"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// TypeHandler handles item type schema requests
type TypeHandler struct {
	types *schema.Store
	log   *logrus.Logger
}

// NewTypeHandler creates a new TypeHandler instance
func NewTypeHandler(types *schema.Store, log *logrus.Logger) *TypeHandler {
	return &TypeHandler{types: types, log: log}
}

// ListTypes returns every item type.
func (h *TypeHandler) ListTypes(c *gin.Context) {
	types := h.types.GetAll()
	if types == nil {
		types = []models.ItemType{}
	}
	c.JSON(http.StatusOK, types)
}

// UpsertType creates or replaces an item type. Duplicate field keys are
// rejected here, at the mutation boundary.
func (h *TypeHandler) UpsertType(c *gin.Context) {
	var itemType models.ItemType
	if err := c.ShouldBindJSON(&itemType); err != nil {
		h.log.WithError(err).Warn("Invalid item type format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid item type format",
		})
		return
	}
	if itemType.ID == "" || itemType.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Type id and name are required",
		})
		return
	}
	seen := make(map[string]bool, len(itemType.Fields))
	for _, field := range itemType.Fields {
		if field.Key == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Field keys must not be blank",
			})
			return
		}
		if seen[field.Key] {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Duplicate field key: " + field.Key,
			})
			return
		}
		seen[field.Key] = true
	}

	if err := h.types.AddOrUpdate(itemType); err != nil {
		h.log.WithError(err).Error("Failed to save item type")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save item type",
		})
		return
	}
	c.JSON(http.StatusOK, itemType)
}

// DeleteType removes an item type. Records of the type are kept.
func (h *TypeHandler) DeleteType(c *gin.Context) {
	id := c.Param("id")
	if err := h.types.Delete(id); err != nil {
		h.log.WithError(err).Error("Failed to delete item type")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete item type",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// ReseedTypes restores the built-in type catalogue.
func (h *TypeHandler) ReseedTypes(c *gin.Context) {
	if err := h.types.ForceReseed(); err != nil {
		h.log.WithError(err).Error("Failed to reseed item types")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to reseed item types",
		})
		return
	}
	c.JSON(http.StatusOK, h.types.GetAll())
}
