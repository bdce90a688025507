package handlers

import (
	"net/http"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/presets"
	"example.com/scanbridge/internal/schema"
	"example.com/scanbridge/internal/settings"
	"example.com/scanbridge/internal/webhooks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PresetHandler handles preset requests
type PresetHandler struct {
	presets  *presets.Store
	types    *schema.Store
	webhooks *webhooks.Store
	settings *settings.Store
	log      *logrus.Logger
}

// NewPresetHandler creates a new PresetHandler instance
func NewPresetHandler(presetStore *presets.Store, types *schema.Store, hooks *webhooks.Store, settingsStore *settings.Store, log *logrus.Logger) *PresetHandler {
	return &PresetHandler{
		presets:  presetStore,
		types:    types,
		webhooks: hooks,
		settings: settingsStore,
		log:      log,
	}
}

// ListPresets returns every preset.
func (h *PresetHandler) ListPresets(c *gin.Context) {
	items := h.presets.GetAll()
	if items == nil {
		items = []models.Preset{}
	}
	c.JSON(http.StatusOK, items)
}

// CreatePreset adds a preset. A missing ID gets generated.
func (h *PresetHandler) CreatePreset(c *gin.Context) {
	var preset models.Preset
	if err := c.ShouldBindJSON(&preset); err != nil {
		h.log.WithError(err).Warn("Invalid preset format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid preset format",
		})
		return
	}
	if preset.Name == "" || preset.WebhookURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Preset name and webhook URL are required",
		})
		return
	}
	if preset.ID == "" {
		preset.ID = "preset_" + uuid.NewString()
	}
	if err := h.presets.Add(preset); err != nil {
		h.log.WithError(err).Error("Failed to save preset")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save preset",
		})
		return
	}
	c.JSON(http.StatusOK, preset)
}

// UpdatePreset replaces the preset with the path ID.
func (h *PresetHandler) UpdatePreset(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.presets.FindByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Preset not found",
		})
		return
	}
	var preset models.Preset
	if err := c.ShouldBindJSON(&preset); err != nil {
		h.log.WithError(err).Warn("Invalid preset format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid preset format",
		})
		return
	}
	preset.ID = id
	if err := h.presets.Update(preset); err != nil {
		h.log.WithError(err).Error("Failed to update preset")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update preset",
		})
		return
	}
	c.JSON(http.StatusOK, preset)
}

// DeletePreset removes a preset by ID.
func (h *PresetHandler) DeletePreset(c *gin.Context) {
	id := c.Param("id")
	if err := h.presets.Delete(id); err != nil {
		h.log.WithError(err).Error("Failed to delete preset")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete preset",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// SeedPresets installs the default preset catalogue if not present.
func (h *PresetHandler) SeedPresets(c *gin.Context) {
	created, err := h.presets.EnsureDefaultsSeeded(h.types.GetAll(), h.webhooks.GetAll(), h.settings.Load())
	if err != nil {
		h.log.WithError(err).Error("Failed to seed presets")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to seed presets",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
