package handlers

import (
	"net/http"

	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/webhooks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// WebhookHandler handles webhook registry requests
type WebhookHandler struct {
	webhooks *webhooks.Store
	log      *logrus.Logger
}

// NewWebhookHandler creates a new WebhookHandler instance
func NewWebhookHandler(hooks *webhooks.Store, log *logrus.Logger) *WebhookHandler {
	return &WebhookHandler{webhooks: hooks, log: log}
}

// ListWebhooks returns every registered webhook.
func (h *WebhookHandler) ListWebhooks(c *gin.Context) {
	items := h.webhooks.GetAll()
	if items == nil {
		items = []models.WebhookConfig{}
	}
	c.JSON(http.StatusOK, items)
}

// CreateWebhook registers a webhook. A missing ID gets generated.
func (h *WebhookHandler) CreateWebhook(c *gin.Context) {
	var hook models.WebhookConfig
	if err := c.ShouldBindJSON(&hook); err != nil {
		h.log.WithError(err).Warn("Invalid webhook format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid webhook format",
		})
		return
	}
	if hook.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Webhook URL is required",
		})
		return
	}
	if hook.ID == "" {
		hook.ID = "webhook_" + uuid.NewString()
	}
	if err := h.webhooks.Add(hook); err != nil {
		h.log.WithError(err).Error("Failed to save webhook")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save webhook",
		})
		return
	}
	c.JSON(http.StatusOK, hook)
}

// UpdateWebhook replaces the webhook with the path ID.
func (h *WebhookHandler) UpdateWebhook(c *gin.Context) {
	id := c.Param("id")
	if _, ok := h.webhooks.FindByID(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Webhook not found",
		})
		return
	}
	var hook models.WebhookConfig
	if err := c.ShouldBindJSON(&hook); err != nil {
		h.log.WithError(err).Warn("Invalid webhook format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid webhook format",
		})
		return
	}
	hook.ID = id
	if err := h.webhooks.Update(hook); err != nil {
		h.log.WithError(err).Error("Failed to update webhook")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update webhook",
		})
		return
	}
	c.JSON(http.StatusOK, hook)
}

// DeleteWebhook removes a webhook by ID.
func (h *WebhookHandler) DeleteWebhook(c *gin.Context) {
	id := c.Param("id")
	if err := h.webhooks.Delete(id); err != nil {
		h.log.WithError(err).Error("Failed to delete webhook")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete webhook",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
