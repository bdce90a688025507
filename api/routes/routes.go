package routes

import (
	"example.com/scanbridge/api/handlers"
	"example.com/scanbridge/internal/dispatch"
	"example.com/scanbridge/internal/history"
	"example.com/scanbridge/internal/presets"
	"example.com/scanbridge/internal/records"
	"example.com/scanbridge/internal/schema"
	"example.com/scanbridge/internal/search"
	"example.com/scanbridge/internal/service"
	"example.com/scanbridge/internal/settings"
	"example.com/scanbridge/internal/webhooks"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Deps carries the stores and services the handlers are built from. Search
// is nil when Elasticsearch is disabled.
type Deps struct {
	Types    *schema.Store
	Records  *records.Store
	Presets  *presets.Store
	Webhooks *webhooks.Store
	History  *history.Store
	Settings *settings.Store
	Scanner  *service.Scanner
	Pipeline *dispatch.Pipeline
	Search   *search.Client
}

// SetupRoutes sets up all the routes for the server
func SetupRoutes(r *gin.Engine, deps Deps, log *logrus.Logger) {
	// Health check
	r.GET("/health", handlers.HealthCheck)

	// API routes
	api := r.Group("/api/v1")

	// Item type schema routes
	typeHandler := handlers.NewTypeHandler(deps.Types, log)
	types := api.Group("/types")
	{
		types.GET("", typeHandler.ListTypes)
		types.PUT("", typeHandler.UpsertType)
		types.DELETE("/:id", typeHandler.DeleteType)
		types.POST("/reseed", typeHandler.ReseedTypes)
	}

	// Record routes
	recordHandler := handlers.NewRecordHandler(deps.Records, log)
	recordsGroup := api.Group("/records")
	{
		recordsGroup.GET("/:typeId", recordHandler.ListRecords)
		recordsGroup.GET("/:typeId/:code", recordHandler.GetRecord)
		recordsGroup.PUT("/:typeId", recordHandler.UpsertRecord)
	}

	// Preset routes
	presetHandler := handlers.NewPresetHandler(deps.Presets, deps.Types, deps.Webhooks, deps.Settings, log)
	presetsGroup := api.Group("/presets")
	{
		presetsGroup.GET("", presetHandler.ListPresets)
		presetsGroup.POST("", presetHandler.CreatePreset)
		presetsGroup.PUT("/:id", presetHandler.UpdatePreset)
		presetsGroup.DELETE("/:id", presetHandler.DeletePreset)
		presetsGroup.POST("/seed", presetHandler.SeedPresets)
	}

	// Webhook routes
	webhookHandler := handlers.NewWebhookHandler(deps.Webhooks, log)
	webhooksGroup := api.Group("/webhooks")
	{
		webhooksGroup.GET("", webhookHandler.ListWebhooks)
		webhooksGroup.POST("", webhookHandler.CreateWebhook)
		webhooksGroup.PUT("/:id", webhookHandler.UpdateWebhook)
		webhooksGroup.DELETE("/:id", webhookHandler.DeleteWebhook)
	}

	// History routes
	historyHandler := handlers.NewHistoryHandler(deps.History, deps.Webhooks, deps.Pipeline, deps.Search, log)
	historyGroup := api.Group("/history")
	{
		historyGroup.GET("", historyHandler.ListHistory)
		historyGroup.DELETE("", historyHandler.ClearHistory)
		historyGroup.DELETE("/:code/:timestamp", historyHandler.RemoveHistoryItem)
		historyGroup.POST("/resend", historyHandler.ResendHistoryItem)
		historyGroup.GET("/search", historyHandler.SearchHistory)
	}

	// Scan routes
	scanHandler := handlers.NewScanHandler(deps.Scanner, deps.Pipeline, deps.Presets, deps.Webhooks, log)
	api.POST("/scans", scanHandler.ProcessScan)

	// Settings routes
	settingsHandler := handlers.NewSettingsHandler(deps.Settings, log)
	settingsGroup := api.Group("/settings")
	{
		settingsGroup.GET("", settingsHandler.GetSettings)
		settingsGroup.PUT("", settingsHandler.UpdateSettings)
	}
}
