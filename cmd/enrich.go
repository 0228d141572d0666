package cmd

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"bookfuse/internal/googlebooks"
	"bookfuse/internal/landing"
)

func newEnrichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Enrich the Goodreads scrape with Google Books metadata",
		Long: `Queries the Google Books volumes API for every record in
landing/goodreads_books.json - by best ISBN when one validates, by title
and author otherwise - and writes the matches to
landing/googlebooks_books.csv for the integrate step.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.EnsureDirs(); err != nil {
				return err
			}

			items, err := landing.LoadGoodreads(cfg.GoodreadsPath())
			if err != nil {
				return err
			}

			client := googlebooks.NewClient(
				cfg.Enrich.Endpoint,
				time.Duration(cfg.Enrich.TimeoutSeconds)*time.Second,
				time.Duration(cfg.Enrich.DelayMillis)*time.Millisecond,
			)

			slog.Info("Enrichment started", "records", len(items), "endpoint", client.Endpoint)
			enriched, err := client.EnrichAll(cmd.Context(), items)
			if err != nil {
				return err
			}

			if err := landing.WriteGoogleBooks(cfg.GoogleBooksPath(), enriched); err != nil {
				return err
			}

			slog.Info("Enrichment complete",
				"matched", len(enriched), "total", len(items),
				"output", cfg.GoogleBooksPath())
			return nil
		},
	}
}
