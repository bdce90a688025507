package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// workerCmd represents the worker command
var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start the background worker",
	Long: `Start the background worker that periodically re-indexes the scan
history into Elasticsearch, repairing any entries missed by the inline
indexing of the API server.`,
	RunE: runWorker,
}

func init() {
	rootCmd.AddCommand(workerCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	a, err := initApp()
	if err != nil {
		return err
	}
	defer a.close()

	if a.search == nil {
		log.Fatal("Elasticsearch must be enabled for the worker")
	}

	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	interval := time.Duration(a.cfg.Worker.IndexIntervalMinutes) * time.Minute

	g.Go(func() error {
		log.WithField("interval", interval).Info("Starting history re-index job")

		scheduler, err := gocron.NewScheduler()
		if err != nil {
			return err
		}

		_, err = scheduler.NewJob(
			gocron.DurationJob(interval),
			gocron.NewTask(func() {
				if err := reindexHistory(a); err != nil {
					log.WithError(err).Error("Failed to re-index scan history")
				}
			}),
		)
		if err != nil {
			return err
		}

		scheduler.Start()

		<-ctx.Done()

		return scheduler.Shutdown()
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Worker error")
		return err
	}

	log.Info("Worker shutting down gracefully")
	return nil
}

// reindexHistory pushes every stored history entry into the index. Document
// IDs are code-timestamp, so repeated runs overwrite rather than duplicate.
func reindexHistory(a *app) error {
	items := a.history.GetAll()
	for _, item := range items {
		if err := a.search.IndexHistoryItem(item); err != nil {
			return err
		}
	}
	log.WithField("count", len(items)).Info("Re-indexed scan history")
	return nil
}
