package handlers

import (
	"net/http"
	"strconv"

	"example.com/scanbridge/internal/dispatch"
	"example.com/scanbridge/internal/history"
	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/search"
	"example.com/scanbridge/internal/webhooks"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HistoryHandler handles scan history requests
type HistoryHandler struct {
	history  *history.Store
	webhooks *webhooks.Store
	pipeline *dispatch.Pipeline
	search   *search.Client
	log      *logrus.Logger
}

// NewHistoryHandler creates a new HistoryHandler instance. The search client
// may be nil when Elasticsearch is disabled.
func NewHistoryHandler(hist *history.Store, hooks *webhooks.Store, pipeline *dispatch.Pipeline, searchClient *search.Client, log *logrus.Logger) *HistoryHandler {
	return &HistoryHandler{
		history:  hist,
		webhooks: hooks,
		pipeline: pipeline,
		search:   searchClient,
		log:      log,
	}
}

// ListHistory returns the history, newest first.
func (h *HistoryHandler) ListHistory(c *gin.Context) {
	items := h.history.GetAll()
	if items == nil {
		items = []models.ScanHistoryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// ClearHistory drops the whole history.
func (h *HistoryHandler) ClearHistory(c *gin.Context) {
	if err := h.history.Clear(); err != nil {
		h.log.WithError(err).Error("Failed to clear history")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear history",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// RemoveHistoryItem deletes one entry by code and timestamp.
func (h *HistoryHandler) RemoveHistoryItem(c *gin.Context) {
	code := c.Param("code")
	timestamp, err := strconv.ParseInt(c.Param("timestamp"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid timestamp",
		})
		return
	}
	if err := h.history.Remove(code, timestamp); err != nil {
		h.log.WithError(err).Error("Failed to remove history item")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove history item",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

type resendRequest struct {
	Code      string `json:"code"`
	Timestamp int64  `json:"timestamp"`
	WebhookID string `json:"webhookId"`
}

// ResendHistoryItem re-posts a stored payload to a chosen webhook.
func (h *HistoryHandler) ResendHistoryItem(c *gin.Context) {
	var req resendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resend request",
		})
		return
	}

	var item *models.ScanHistoryItem
	for _, candidate := range h.history.GetAll() {
		if candidate.Code == req.Code && candidate.Timestamp == req.Timestamp {
			item = &candidate
			break
		}
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "History entry not found",
		})
		return
	}

	hook, ok := h.webhooks.FindByID(req.WebhookID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Webhook not found",
		})
		return
	}

	if err := h.pipeline.Resend(*item, hook); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resent": true})
}

// SearchHistory runs a full-text query over the indexed history.
func (h *HistoryHandler) SearchHistory(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Search is not configured",
		})
		return
	}
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Query parameter q is required",
		})
		return
	}
	docs, err := h.search.SearchHistory(c.Request.Context(), query)
	if err != nil {
		h.log.WithError(err).Error("History search failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "History search failed",
		})
		return
	}
	if docs == nil {
		docs = []map[string]interface{}{}
	}
	c.JSON(http.StatusOK, docs)
}
