// Package quality computes aggregate data-quality metrics over the final
// canonical set and the source detail table. It only observes; every
// upstream problem surfaces here as a null percentage or a duplicate count,
// never as a failure signal.
package quality

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"bookfuse/internal/record"
)

// Compute aggregates the quality metrics for one run. A non-zero
// duplicates_found signals an ingestion bug upstream, not an engine fault.
func Compute(canonical []record.CanonicalBook, detail []record.SourceDetail) record.QualityMetrics {
	metrics := record.QualityMetrics{
		RunID:         uuid.NewString(),
		TotalDimBook:  len(canonical),
		RowsPerSource: make(map[string]int64),
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	nullTitulo, nullISBN13, nullPrecio := 0, 0, 0
	for _, c := range canonical {
		if c.Titulo == "" {
			nullTitulo++
		}
		if c.ISBN13 == "" {
			nullISBN13++
		}
		if c.Precio == nil {
			nullPrecio++
		}
	}
	metrics.PctNullTitulo = nullPct(nullTitulo, len(canonical))
	metrics.PctNullISBN13 = nullPct(nullISBN13, len(canonical))
	metrics.PctNullPriceAmount = nullPct(nullPrecio, len(canonical))

	seen := make(map[string]struct{}, len(detail))
	for _, d := range detail {
		metrics.RowsPerSource[d.SourceName]++
		if _, dup := seen[d.SourceID]; dup {
			metrics.DuplicatesFound++
		}
		seen[d.SourceID] = struct{}{}
	}

	return metrics
}

// nullPct returns the null share as a percentage rounded to 2 decimals.
func nullPct(nulls, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return math.Round(100.0*float64(nulls)/float64(total)*100) / 100
}

// SaveJSON writes the metrics report to the given path.
func SaveJSON(metrics record.QualityMetrics, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create metrics file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(metrics); err != nil {
		return fmt.Errorf("failed to encode metrics: %w", err)
	}
	return nil
}

// PrintSummary prints a human-readable metrics summary.
func PrintSummary(metrics record.QualityMetrics) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("DIM_BOOK QUALITY SUMMARY")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("Run: %s (%s)\n", metrics.RunID, metrics.GeneratedAt)
	fmt.Printf("Total canonical books: %d\n", metrics.TotalDimBook)
	fmt.Println()
	fmt.Printf("Null titulo:       %.2f%%\n", metrics.PctNullTitulo)
	fmt.Printf("Null isbn13:       %.2f%%\n", metrics.PctNullISBN13)
	fmt.Printf("Null price amount: %.2f%%\n", metrics.PctNullPriceAmount)
	fmt.Println()
	fmt.Println("Rows per source:")
	for _, source := range []string{record.SourceGoodreads, record.SourceGoogleBooks} {
		if n, ok := metrics.RowsPerSource[source]; ok {
			fmt.Printf("  %s: %d\n", source, n)
		}
	}
	fmt.Printf("Duplicate source ids: %d\n", metrics.DuplicatesFound)
	fmt.Println(strings.Repeat("=", 60))
}
