package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coursecatalog-backend/lib/configutil"
	"coursecatalog-backend/lib/serviceutil"
	"coursecatalog-backend/services/capture"
)

var configPath *string

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "Path to the capture configuration.")
}

var rootCmd = &cobra.Command{
	Use:   "catalog-cli",
	Short: "catalog-cli captures a university registrar's course catalog into term datasets.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readConfig() capture.Config {
	cfg, err := configutil.Read[capture.Config](*configPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}
