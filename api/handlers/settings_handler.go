package handlers

import (
	"net/http"

	"example.com/scanbridge/internal/settings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SettingsHandler handles settings requests
type SettingsHandler struct {
	settings *settings.Store
	log      *logrus.Logger
}

// NewSettingsHandler creates a new SettingsHandler instance
func NewSettingsHandler(settingsStore *settings.Store, log *logrus.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settingsStore, log: log}
}

// GetSettings returns the full settings context.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Load())
}

// UpdateSettings replaces the full settings context. Enums are re-parsed on
// the next load, so unknown values degrade to their defaults rather than
// failing here; the search template is the one hard validation.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var ctx settings.Settings
	if err := c.ShouldBindJSON(&ctx); err != nil {
		h.log.WithError(err).Warn("Invalid settings format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid settings format",
		})
		return
	}
	if err := h.settings.Save(ctx); err != nil {
		h.log.WithError(err).Warn("Failed to save settings")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	if !h.settings.FirstRunComplete() {
		if err := h.settings.SetFirstRunComplete(); err != nil {
			h.log.WithError(err).Warn("Failed to record first-run flag")
		}
	}
	c.JSON(http.StatusOK, h.settings.Load())
}
