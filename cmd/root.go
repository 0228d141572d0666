package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookfuse",
		Short: "Book record-linkage and canonicalization pipeline",
		Long: `Bookfuse integrates two bibliographic sources - a Goodreads scrape and
Google Books enrichment data - into one deduplicated canonical book table.

Records are matched by validated ISBN-13 with a fuzzy title|author fallback,
field conflicts are settled by fixed survivorship rules, and every book gets
a stable book_id. Outputs land as parquet tables plus quality metrics.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().String("config", "bookfuse.yaml", "Path to YAML configuration file")
	cmd.PersistentFlags().String("root", ".", "Project root for the default landing/standard/docs layout")

	cmd.AddCommand(newEnrichCmd())
	cmd.AddCommand(newIntegrateCmd())
	cmd.AddCommand(newReportCmd())

	return cmd
}
