package handlers

import (
	"encoding/json"
	"net/http"

	"example.com/scanbridge/internal/dispatch"
	"example.com/scanbridge/internal/models"
	"example.com/scanbridge/internal/presets"
	"example.com/scanbridge/internal/service"
	"example.com/scanbridge/internal/webhooks"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Scan actions and send methods accepted by the scans endpoint.
const (
	ActionLog    = "log"
	ActionUpdate = "update"

	MethodDirect   = "direct"
	MethodPreset   = "preset"
	MethodPrevious = "previous"
)

type scanSend struct {
	Method    string `json:"method"`
	WebhookID string `json:"webhookId"`
	PresetID  string `json:"presetId"`
	Quantity  int    `json:"quantity"`
}

type scanRequest struct {
	Code           string                     `json:"code"`
	TypeID         string                     `json:"typeId"`
	Values         map[string]json.RawMessage `json:"values"`
	SelectedFields []string                   `json:"selectedFields"`
	Timestamp      int64                      `json:"timestamp"`
	Action         string                     `json:"action"`
	Send           *scanSend                  `json:"send"`
}

// ScanHandler handles scan events, the main entry point of the service
type ScanHandler struct {
	scanner  *service.Scanner
	pipeline *dispatch.Pipeline
	presets  *presets.Store
	webhooks *webhooks.Store
	log      *logrus.Logger
}

// NewScanHandler creates a new ScanHandler instance
func NewScanHandler(scanner *service.Scanner, pipeline *dispatch.Pipeline, presetStore *presets.Store, hooks *webhooks.Store, log *logrus.Logger) *ScanHandler {
	return &ScanHandler{
		scanner:  scanner,
		pipeline: pipeline,
		presets:  presetStore,
		webhooks: hooks,
		log:      log,
	}
}

// ProcessScan validates the event, merges values into the record for the
// code, then logs or delivers the payload. Every validation failure aborts
// before the record write.
func (h *ScanHandler) ProcessScan(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.WithError(err).Warn("Invalid scan format")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid scan format",
		})
		return
	}
	if req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Code must not be blank",
		})
		return
	}
	if req.Action != ActionLog && req.Action != ActionUpdate {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Action must be log or update",
		})
		return
	}

	// Resolve the send target before anything is written.
	var hook models.WebhookConfig
	var preset models.Preset
	if req.Action == ActionUpdate && req.Send != nil {
		switch req.Send.Method {
		case MethodDirect:
			found, ok := h.webhooks.FindByID(req.Send.WebhookID)
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "Webhook not found",
				})
				return
			}
			if found.URL == "" {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": dispatch.ErrBlankWebhookURL.Error(),
				})
				return
			}
			hook = found
		case MethodPreset:
			found, ok := h.presets.FindByID(req.Send.PresetID)
			if !ok {
				c.JSON(http.StatusNotFound, gin.H{
					"error": "Preset not found",
				})
				return
			}
			if req.Send.Quantity <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": dispatch.ErrInvalidQuantity.Error(),
				})
				return
			}
			preset = found
		case MethodPrevious:
			// Availability is checked by the pipeline.
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Send method must be direct, preset or previous",
			})
			return
		}
	}

	result, err := h.scanner.Process(service.ScanRequest{
		Code:           req.Code,
		TypeID:         req.TypeID,
		SelectedFields: req.SelectedFields,
		Values:         req.Values,
		Timestamp:      req.Timestamp,
	})
	if err != nil {
		h.log.WithError(err).Warn("Scan processing failed")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if req.Action == ActionLog || req.Send == nil {
		if err := h.pipeline.LogOnly(req.Code, result.Timestamp, result.Payload); err != nil {
			h.dispatchFailed(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"payload":   result.Payload,
			"timestamp": result.Timestamp,
			"sent":      false,
		})
		return
	}

	switch req.Send.Method {
	case MethodDirect:
		err = h.pipeline.SendDirect(req.Code, result.Timestamp, result.Payload, hook)
	case MethodPreset:
		err = h.pipeline.SendWithPreset(req.Code, result.Timestamp, preset, req.Send.Quantity)
	case MethodPrevious:
		err = h.pipeline.SendPrevious(req.Code, result.Timestamp)
	}
	if err != nil {
		if err == dispatch.ErrNoPreviousConfig {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		h.dispatchFailed(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payload":   result.Payload,
		"timestamp": result.Timestamp,
		"sent":      true,
	})
}

func (h *ScanHandler) dispatchFailed(c *gin.Context, err error) {
	h.log.WithError(err).Error("Failed to record scan")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Failed to record scan",
	})
}
