// Package landing reads and writes the landing-zone artifacts exchanged with
// the ingestion collaborators: the Goodreads scrape JSON and the Google Books
// enrichment CSV. Missing landing inputs are the only fatal condition in the
// whole pipeline, so loaders here return errors instead of degrading.
package landing

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bookfuse/internal/record"
)

// LoadGoodreads reads the scraper's JSON payload and returns its records.
func LoadGoodreads(path string) ([]record.GoodreadsRecord, error) {
	slog.Debug("Opening Goodreads landing file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read goodreads landing file: %w", err)
	}

	var payload record.GoodreadsPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse goodreads landing file: %w", err)
	}

	slog.Debug("Goodreads landing file loaded", "records", len(payload.Records))
	return payload.Records, nil
}

// LoadGoogleBooks reads the enrichment CSV and returns its records. All
// values are kept as raw strings; normalization happens downstream.
func LoadGoogleBooks(path string) ([]record.GoogleBooksRecord, error) {
	slog.Debug("Opening Google Books landing file", "path", path)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open googlebooks landing file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read googlebooks CSV header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var records []record.GoogleBooksRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read googlebooks CSV line %d: %w", line, err)
		}

		records = append(records, record.GoogleBooksRecord{
			GBID:          field(row, "gb_id"),
			Title:         field(row, "title"),
			Subtitle:      field(row, "subtitle"),
			Authors:       field(row, "authors"),
			Publisher:     field(row, "publisher"),
			PubDate:       field(row, "pub_date"),
			Language:      field(row, "language"),
			Categories:    field(row, "categories"),
			ISBN13:        field(row, "isbn13"),
			ISBN10:        field(row, "isbn10"),
			PriceAmount:   field(row, "price_amount"),
			PriceCurrency: field(row, "price_currency"),
		})
	}

	slog.Debug("Google Books landing file loaded", "records", len(records))
	return records, nil
}

// LoadInputs loads both landing inputs, failing fast when either is absent.
// The pipeline must not start on a partial landing zone.
func LoadInputs(goodreadsPath, googleBooksPath string) ([]record.GoodreadsRecord, []record.GoogleBooksRecord, error) {
	for _, path := range []string{goodreadsPath, googleBooksPath} {
		if _, err := os.Stat(path); err != nil {
			return nil, nil, fmt.Errorf("landing input missing, run the upstream ETL first: %w", err)
		}
	}

	gr, err := LoadGoodreads(goodreadsPath)
	if err != nil {
		return nil, nil, err
	}
	gb, err := LoadGoogleBooks(googleBooksPath)
	if err != nil {
		return nil, nil, err
	}
	return gr, gb, nil
}
