package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/scanbridge/api"
	"example.com/scanbridge/api/routes"
	"example.com/scanbridge/internal/telemetry"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Serve command flags
	disableNewRelic bool
	serverPort      int
	gracefulTimeout int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Starts the scanbridge API server that manages item type schemas,
scan records, presets, webhooks and scan history.

The server respects the configuration in config.yaml or specified via the
--config flag. It will gracefully shut down on receiving SIGINT or SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		startServer()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&disableNewRelic, "disable-newrelic", false, "Disable New Relic monitoring")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "Override the configured server port")
	serveCmd.Flags().IntVar(&gracefulTimeout, "graceful-timeout", 30, "Graceful shutdown timeout in seconds")
}

// startServer initializes and starts the API server
func startServer() {
	a, err := initApp()
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}
	defer a.close()

	if serverPort > 0 {
		a.cfg.Server.Port = serverPort
	}

	log.WithFields(logrus.Fields{
		"port":             a.cfg.Server.Port,
		"storage_path":     a.cfg.Storage.Path,
		"redis_enabled":    a.cfg.Redis.Enabled,
		"search_enabled":   a.search != nil,
		"newrelic_enabled": a.cfg.NewRelic.Enabled && !disableNewRelic,
	}).Info("Initializing service components...")

	// Seed built-in data and run migrations before accepting traffic.
	if err := a.prepareData(); err != nil {
		log.Fatalf("Failed to prepare stored data: %v", err)
	}

	// Initialize New Relic if enabled
	var nrApp *newrelic.Application
	if !disableNewRelic {
		nrApp, err = telemetry.InitNewRelic(a.cfg.NewRelic)
		if err != nil {
			log.Warnf("Failed to initialize New Relic: %v", err)
		}
	}

	server := api.NewServer(a.cfg, log, nrApp, routes.Deps{
		Types:    a.types,
		Records:  a.records,
		Presets:  a.presets,
		Webhooks: a.webhooks,
		History:  a.history,
		Settings: a.settings,
		Scanner:  a.scanner,
		Pipeline: a.pipeline,
		Search:   a.search,
	})

	// Set up graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-stop
	log.Infof("Received signal %s, shutting down gracefully...", sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(gracefulTimeout)*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server successfully shutdown")
}
