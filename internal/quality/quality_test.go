package quality

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"bookfuse/internal/record"
)

func TestComputeNullPercentages(t *testing.T) {
	price := decimal.NewFromFloat(9.99)
	canonical := []record.CanonicalBook{
		{BookID: "a", Titulo: "Full", ISBN13: "9780132350884", Precio: &price},
		{BookID: "b", Titulo: "No ISBN"},
		{BookID: "c", Titulo: "No Price", ISBN13: "9780306406157"},
	}

	metrics := Compute(canonical, nil)

	if metrics.TotalDimBook != 3 {
		t.Errorf("total_dim_book = %d, want 3", metrics.TotalDimBook)
	}
	if metrics.PctNullTitulo != 0 {
		t.Errorf("pct_null_titulo = %v, want 0", metrics.PctNullTitulo)
	}
	if metrics.PctNullISBN13 != 33.33 {
		t.Errorf("pct_null_isbn13 = %v, want 33.33", metrics.PctNullISBN13)
	}
	if metrics.PctNullPriceAmount != 66.67 {
		t.Errorf("pct_null_price_amount = %v, want 66.67", metrics.PctNullPriceAmount)
	}
	if metrics.RunID == "" {
		t.Error("run id missing")
	}
	if metrics.GeneratedAt == "" {
		t.Error("generated_at missing")
	}
}

func TestComputeEmptySet(t *testing.T) {
	metrics := Compute(nil, nil)

	if metrics.TotalDimBook != 0 {
		t.Errorf("total_dim_book = %d, want 0", metrics.TotalDimBook)
	}
	if metrics.PctNullTitulo != 0 || metrics.PctNullISBN13 != 0 || metrics.PctNullPriceAmount != 0 {
		t.Errorf("empty set must report 0%% nulls, got %+v", metrics)
	}
}

func TestComputeRowsPerSource(t *testing.T) {
	detail := []record.SourceDetail{
		{SourceID: "goodreads-1", SourceName: record.SourceGoodreads},
		{SourceID: "goodreads-2", SourceName: record.SourceGoodreads},
		{SourceID: "googlebooks-1", SourceName: record.SourceGoogleBooks},
	}

	metrics := Compute(nil, detail)

	if metrics.RowsPerSource[record.SourceGoodreads] != 2 {
		t.Errorf("goodreads rows = %d, want 2", metrics.RowsPerSource[record.SourceGoodreads])
	}
	if metrics.RowsPerSource[record.SourceGoogleBooks] != 1 {
		t.Errorf("googlebooks rows = %d, want 1", metrics.RowsPerSource[record.SourceGoogleBooks])
	}
	if metrics.DuplicatesFound != 0 {
		t.Errorf("duplicates_found = %d, want 0", metrics.DuplicatesFound)
	}
}

func TestComputeFlagsDuplicateSourceIDs(t *testing.T) {
	detail := []record.SourceDetail{
		{SourceID: "goodreads-1", SourceName: record.SourceGoodreads},
		{SourceID: "goodreads-1", SourceName: record.SourceGoodreads},
		{SourceID: "goodreads-1", SourceName: record.SourceGoodreads},
	}

	metrics := Compute(nil, detail)

	if metrics.DuplicatesFound != 2 {
		t.Errorf("duplicates_found = %d, want 2", metrics.DuplicatesFound)
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	metrics := Compute([]record.CanonicalBook{{BookID: "a", Titulo: "T"}}, nil)
	path := filepath.Join(t.TempDir(), "quality_metrics.json")

	if err := SaveJSON(metrics, path); err != nil {
		t.Fatalf("SaveJSON failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read metrics file: %v", err)
	}

	var loaded record.QualityMetrics
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("failed to decode metrics: %v", err)
	}
	if loaded.RunID != metrics.RunID || loaded.TotalDimBook != 1 {
		t.Errorf("round trip mismatch: %+v vs %+v", loaded, metrics)
	}
}
