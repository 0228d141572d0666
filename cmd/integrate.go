package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"bookfuse/internal/config"
	"bookfuse/internal/integrate"
	"bookfuse/internal/landing"
	"bookfuse/internal/quality"
	"bookfuse/internal/standard"
)

func newIntegrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "integrate",
		Short: "Merge both landing inputs into the canonical dim_book table",
		Long: `Runs the full integration over the landing zone:

  landing/goodreads_books.json + landing/googlebooks_books.csv
    -> standard/dim_book.parquet
    -> standard/book_source_detail.parquet
    -> docs/schema.md, docs/quality_metrics.json

A missing landing input aborts the run; everything else degrades to null
fields visible in the quality metrics.`,
		Example: `  # Run with the default ./landing layout
  bookfuse integrate

  # Run against another project root
  bookfuse integrate --root /data/books`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return executeIntegrate(cfg)
		},
	}
}

func executeIntegrate(cfg config.Config) error {
	if err := cfg.EnsureDirs(); err != nil {
		return err
	}

	gr, gb, err := landing.LoadInputs(cfg.GoodreadsPath(), cfg.GoogleBooksPath())
	if err != nil {
		return err
	}

	result := integrate.Run(gr, gb, integrate.Options{
		GoodreadsFile:   "landing/" + config.GoodreadsFile,
		GoogleBooksFile: "landing/" + config.GoogleBooksFile,
	})

	// The canonical set is only published once every step has finished.
	if err := standard.WriteDimBook(cfg.DimBookPath(), result.Canonical); err != nil {
		return err
	}
	if err := standard.WriteSourceDetail(cfg.SourceDetailPath(), result.SourceDetail); err != nil {
		return err
	}
	if err := standard.WriteSchemaDoc(cfg.SchemaDocPath()); err != nil {
		return err
	}

	metrics := quality.Compute(result.Canonical, result.SourceDetail)
	if err := quality.SaveJSON(metrics, cfg.QualityMetricsPath()); err != nil {
		return err
	}

	slog.Info("Pipeline complete",
		"canonical_books", metrics.TotalDimBook,
		"dim_book", cfg.DimBookPath(),
		"metrics", cfg.QualityMetricsPath())
	quality.PrintSummary(metrics)

	return nil
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	root, err := cmd.Flags().GetString("root")
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configPath, root)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
