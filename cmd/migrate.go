package cmd

import (
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run stored data migrations",
	Long: `Runs pending data migrations to bring stored partitions up to the
current schema version. The serve command does this on startup; this command
exists for CI/CD pipelines and manual upgrades.`,
	Run: func(cmd *cobra.Command, args []string) {
		runMigration()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

// runMigration executes the stored data migrations
func runMigration() {
	a, err := initApp()
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}
	defer a.close()

	log.Info("Running data migrations...")
	if err := a.types.EnsureSeeded(); err != nil {
		log.Fatalf("Failed to seed item types: %v", err)
	}
	if err := a.migrator.Run(a.settings.Load()); err != nil {
		log.Fatalf("Failed to run data migrations: %v", err)
	}

	log.Info("Data migrations completed successfully")
}
