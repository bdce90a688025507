package cmd

import (
	"github.com/spf13/cobra"
)

var (
	reseedTypes   bool
	reseedPresets bool
)

// reseedCmd represents the reseed command
var reseedCmd = &cobra.Command{
	Use:   "reseed",
	Short: "Restore built-in item types and default presets",
	Long: `Force-reseeds the built-in catalogues: the three item types and the
default presets. Custom types and custom-named presets are left untouched.`,
	Run: func(cmd *cobra.Command, args []string) {
		runReseed()
	},
}

func init() {
	rootCmd.AddCommand(reseedCmd)

	reseedCmd.Flags().BoolVar(&reseedTypes, "types", true, "Reseed the built-in item types")
	reseedCmd.Flags().BoolVar(&reseedPresets, "presets", true, "Reseed the default presets")
}

func runReseed() {
	a, err := initApp()
	if err != nil {
		log.Fatalf("Failed to initialize service: %v", err)
	}
	defer a.close()

	if reseedTypes {
		log.Info("Reseeding built-in item types...")
		if err := a.types.ForceReseed(); err != nil {
			log.Fatalf("Failed to reseed item types: %v", err)
		}
	}

	if reseedPresets {
		log.Info("Reseeding default presets...")
		created, err := a.presets.ForceReseed(a.types.GetAll(), a.webhooks.GetAll(), a.settings.Load())
		if err != nil {
			log.Fatalf("Failed to reseed presets: %v", err)
		}
		log.Infof("Created %d default presets", created)
	}
}
