package integrate

import (
	"testing"
	"time"

	"bookfuse/internal/record"
)

func TestRunEndToEndIdentifierMerge(t *testing.T) {
	gr := []record.GoodreadsRecord{
		{Title: "Clean Code", Author: "Robert Martin", ISBN13: "9780132350884"},
	}
	gb := []record.GoogleBooksRecord{
		{
			Title: "Clean Code: A Handbook", Authors: "Robert C. Martin",
			ISBN13: "9780132350884", PriceAmount: "29.99", PriceCurrency: "usd",
		},
	}

	result := Run(gr, gb, Options{
		Now:             time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		GoodreadsFile:   "landing/goodreads_books.json",
		GoogleBooksFile: "landing/googlebooks_books.csv",
	})

	if len(result.Canonical) != 1 {
		t.Fatalf("expected 1 canonical book, got %d", len(result.Canonical))
	}
	can := result.Canonical[0]

	if can.BookID != "9780132350884" {
		t.Errorf("book_id = %q, want the shared isbn13", can.BookID)
	}
	if can.Titulo != "Clean Code: A Handbook" {
		t.Errorf("titulo = %q", can.Titulo)
	}
	if can.AutorEs != "Robert Martin;Robert C. Martin" {
		t.Errorf("autor/es = %q", can.AutorEs)
	}
	if can.Precio == nil || can.Precio.String() != "29.99" {
		t.Errorf("precio = %v, want 29.99", can.Precio)
	}
	if can.Moneda != "USD" {
		t.Errorf("moneda = %q, want USD", can.Moneda)
	}
	if can.FuenteGanadora != record.SourceGoogleBooks {
		t.Errorf("fuente_ganadora = %q", can.FuenteGanadora)
	}
	if can.TSUltimaAct != "2024-05-01T12:00:00Z" {
		t.Errorf("ts_ultima_actualizacion = %q", can.TSUltimaAct)
	}

	if len(result.SourceDetail) != 2 {
		t.Fatalf("expected 2 source detail rows, got %d", len(result.SourceDetail))
	}
	if result.SourceDetail[0].SourceID != "goodreads-1" ||
		result.SourceDetail[1].SourceID != "googlebooks-1" {
		t.Errorf("unexpected source ids: %s / %s",
			result.SourceDetail[0].SourceID, result.SourceDetail[1].SourceID)
	}
}

func TestRunEndToEndFuzzyFallback(t *testing.T) {
	gr := []record.GoodreadsRecord{
		{Title: "The Nameless City", Author: "H.P. Lovecraft"},
	}
	gb := []record.GoogleBooksRecord{
		{Title: "The Nameless City", Authors: "H.P. Lovecraft", Publisher: "Weird Tales"},
	}

	result := Run(gr, gb, Options{Now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)})

	if len(result.Canonical) != 1 {
		t.Fatalf("expected identifier-less records to merge into 1 row, got %d", len(result.Canonical))
	}
	can := result.Canonical[0]

	if can.ISBN13 != "" {
		t.Errorf("fuzzy merge must not invent an isbn13, got %q", can.ISBN13)
	}
	if len(can.BookID) != 40 {
		t.Errorf("expected a SHA-1 derived book_id, got %q", can.BookID)
	}
	if can.Editorial != "Weird Tales" {
		t.Errorf("editorial = %q", can.Editorial)
	}
}

// Reprocessing identical inputs reproduces identical identity and content.
func TestRunDeterministic(t *testing.T) {
	gr := []record.GoodreadsRecord{
		{Title: "Book One", Author: "Author One"},
		{Title: "Book Two", Author: "Author Two", ISBN13: "9780132350884"},
	}
	gb := []record.GoogleBooksRecord{
		{Title: "Book One", Authors: "Author One", Publisher: "P1"},
		{Title: "Book Three", Authors: "Author Three", ISBN13: "9780306406157"},
	}
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	first := Run(gr, gb, Options{Now: now})
	second := Run(gr, gb, Options{Now: now})

	if len(first.Canonical) != len(second.Canonical) {
		t.Fatalf("row counts differ: %d vs %d", len(first.Canonical), len(second.Canonical))
	}
	for i := range first.Canonical {
		if first.Canonical[i].BookID != second.Canonical[i].BookID {
			t.Errorf("row %d book_id differs: %q vs %q",
				i, first.Canonical[i].BookID, second.Canonical[i].BookID)
		}
	}
}

func TestRunCollapsesIdentifierCrossProduct(t *testing.T) {
	gr := []record.GoodreadsRecord{
		{Title: "Clean Code", Author: "Robert Martin", ISBN13: "9780132350884"},
		{Title: "Clean Code", Author: "R. Martin", ISBN13: "978-0-13-235088-4"},
	}
	gb := []record.GoogleBooksRecord{
		{Title: "Clean Code: A Handbook", Authors: "Robert C. Martin", ISBN13: "9780132350884"},
	}

	result := Run(gr, gb, Options{Now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)})

	// Two pairs share one identifier; the deduplicator must keep exactly one.
	if len(result.Canonical) != 1 {
		t.Fatalf("expected cross product collapsed to 1 row, got %d", len(result.Canonical))
	}
	if result.Canonical[0].BookID != "9780132350884" {
		t.Errorf("book_id = %q", result.Canonical[0].BookID)
	}
}

func TestBuildSourceDetailUnifiesAuthors(t *testing.T) {
	gr := []record.GoodreadsRecord{{Title: "T", Author: " Jane Doe "}}
	gb := []record.GoogleBooksRecord{{Title: "T", Authors: "Jane Doe; John Smith ;jane doe"}}

	details := BuildSourceDetail(gr, gb, "gr.json", "gb.csv", "2024-05-01T12:00:00Z")

	if details[0].AutorEs != "Jane Doe" {
		t.Errorf("goodreads autor/es = %q", details[0].AutorEs)
	}
	if details[1].AutorEs != "Jane Doe;John Smith" {
		t.Errorf("googlebooks autor/es = %q", details[1].AutorEs)
	}
	if details[0].SourceFile != "gr.json" || details[1].SourceFile != "gb.csv" {
		t.Errorf("source files not recorded: %+v", details)
	}
	if details[0].IngestedAt != details[1].IngestedAt {
		t.Error("all rows must share the single run timestamp")
	}
}
