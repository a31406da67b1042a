package commands

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"coursecatalog-backend/lib/restyutil"
	"coursecatalog-backend/lib/scrapers/registrar"
	"coursecatalog-backend/lib/serviceutil"
	"coursecatalog-backend/lib/telemetry"
	"coursecatalog-backend/services/capture"
)

var scrapeVerbose *bool

func init() {
	scrapeVerbose = scrapeCmd.Flags().Bool("verbose", false, "Enable debug logging and request transcripts.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Runs one capture pass over the configured terms.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		if *scrapeVerbose {
			telemetry.InitSlog(true)
			registrar.SetRestyInstrumentOutput(
				restyutil.NewFilesystemOutput(".dev/resty/registrar"),
			)
		}

		client, err := registrar.NewClient(registrar.ClientOptions{
			BaseUrl: cfg.BaseUrl,
		})
		if err != nil {
			serviceutil.Fatal("failed to initialize registrar client", err)
		}
		store, err := capture.NewStore(cfg.Output)
		if err != nil {
			serviceutil.Fatal("failed to open output directory", err)
		}

		runner := capture.Runner{
			Source: client,
			Store:  store,
			Extractor: registrar.Extractor{
				InstitutionWide:         cfg.InstitutionWide,
				GroupLoneLetterSections: cfg.GroupLoneLetterSections,
			},
			Terms:   cfg.Terms,
			Schools: cfg.Schools,
		}

		t1 := time.Now()
		err = runner.Run(cmd.Context())
		if err != nil {
			serviceutil.Fatal("capture run failed", err)
		}
		slog.Info("capture finished", "seconds", time.Since(t1).Seconds())
	},
}
