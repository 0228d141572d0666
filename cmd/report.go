package cmd

import (
	"github.com/spf13/cobra"

	"bookfuse/internal/quality"
	"bookfuse/internal/standard"
)

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Recompute and print quality metrics from the standard zone",
		Long: `Reads standard/dim_book.parquet and standard/book_source_detail.parquet
back in, recomputes the quality metrics and prints a summary. Useful for
inspecting a previous run without re-integrating.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			books, err := standard.ReadDimBook(cfg.DimBookPath())
			if err != nil {
				return err
			}
			details, err := standard.ReadSourceDetail(cfg.SourceDetailPath())
			if err != nil {
				return err
			}

			quality.PrintSummary(quality.Compute(books, details))
			return nil
		},
	}
}
