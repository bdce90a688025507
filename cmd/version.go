package cmd

import (
	"fmt"
	"runtime"
	"strconv"
	"time"

	"example.com/scanbridge/internal/migration"

	"github.com/spf13/cobra"
)

// Version is the service version, overridable at build time.
var Version = "0.2.0"

// BuildInfo contains information about the build
var BuildInfo struct {
	GitCommit string
	BuildTime string
	GoVersion string
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  `Display the version, build information, and runtime environment of the service.`,
	Run: func(cmd *cobra.Command, args []string) {
		displayVersion()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	if BuildInfo.BuildTime == "" {
		BuildInfo.BuildTime = time.Now().Format(time.RFC3339)
	}
	if BuildInfo.GoVersion == "" {
		BuildInfo.GoVersion = runtime.Version()
	}
}

// displayVersion shows detailed version information
func displayVersion() {
	fmt.Println("Scanbridge")
	fmt.Println("==========")
	fmt.Printf("Version:        %s\n", Version)
	fmt.Printf("Schema Version: %s\n", strconv.Itoa(migration.CurrentVersion))
	fmt.Printf("Git Commit:     %s\n", BuildInfo.GitCommit)
	fmt.Printf("Built:          %s\n", BuildInfo.BuildTime)
	fmt.Printf("Go Version:     %s\n", BuildInfo.GoVersion)
	fmt.Printf("OS/Arch:        %s/%s\n", runtime.GOOS, runtime.GOARCH)
}
