package commands

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"coursecatalog-backend/lib/serviceutil"
	"coursecatalog-backend/services/capture"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Shows which terms the next scrape would fetch, without fetching anything.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()

		store, err := capture.NewStore(cfg.Output)
		if err != nil {
			serviceutil.Fatal("failed to open output directory", err)
		}
		prior, err := store.ReadIndex()
		if err != nil {
			serviceutil.Fatal("failed to read capture index", err)
		}

		planned := map[string]bool{}
		for _, name := range capture.Plan(cfg.Terms, prior) {
			planned[name] = true
		}
		captured := map[string]bool{}
		if prior != nil {
			for _, name := range prior.Terms {
				captured[name] = true
			}
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"term", "active", "captured", "action"})
		for _, term := range cfg.Terms {
			action := "skip"
			if planned[term.Name] {
				action = "fetch"
			}
			t.AppendRow(table.Row{term.Name, term.Active, captured[term.Name], action})
		}
		t.Render()
	},
}
