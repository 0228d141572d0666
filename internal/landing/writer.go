package landing

import (
	"encoding/csv"
	"fmt"
	"os"

	"bookfuse/internal/record"
)

// googleBooksHeader fixes the column order of the enrichment CSV.
var googleBooksHeader = []string{
	"gb_id", "title", "subtitle", "authors", "publisher", "pub_date",
	"language", "categories", "isbn13", "isbn10", "price_amount", "price_currency",
}

// WriteGoogleBooks writes the enrichment records as the landing CSV the
// integrate step consumes. The file is fully replaced on every run.
func WriteGoogleBooks(path string, records []record.GoogleBooksRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create googlebooks landing file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(googleBooksHeader); err != nil {
		return fmt.Errorf("failed to write googlebooks CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.GBID, r.Title, r.Subtitle, r.Authors, r.Publisher, r.PubDate,
			r.Language, r.Categories, r.ISBN13, r.ISBN10, r.PriceAmount, r.PriceCurrency,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write googlebooks CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush googlebooks CSV: %w", err)
	}
	return nil
}
