package landing

import (
	"os"
	"path/filepath"
	"testing"

	"bookfuse/internal/record"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadGoodreads(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "goodreads_books.json", `{
		"query": "data engineering",
		"records": [
			{"title": "Clean Code", "author": "Robert Martin", "rating": 4.12,
			 "ratings_count": 5241, "book_url": "https://www.goodreads.com/book/1",
			 "isbn10": "0132350882", "isbn13": "9780132350884"},
			{"title": "Untitled Draft", "author": null, "rating": null,
			 "ratings_count": null, "book_url": null, "isbn10": null, "isbn13": null}
		]
	}`)

	records, err := LoadGoodreads(path)
	if err != nil {
		t.Fatalf("LoadGoodreads failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "Clean Code" {
		t.Errorf("expected title Clean Code, got %q", records[0].Title)
	}
	if records[0].Rating == nil || *records[0].Rating != 4.12 {
		t.Errorf("unexpected rating: %v", records[0].Rating)
	}
	if records[1].Author != "" {
		t.Errorf("null author should decode to empty string, got %q", records[1].Author)
	}
	if records[1].Rating != nil {
		t.Errorf("null rating should decode to nil, got %v", *records[1].Rating)
	}
}

func TestLoadGoogleBooks(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "googlebooks_books.csv",
		"gb_id,title,subtitle,authors,publisher,pub_date,language,categories,isbn13,isbn10,price_amount,price_currency\n"+
			"abc123,Clean Code,A Handbook,Robert C. Martin,Prentice Hall,2008-08-01,en,Computers;Software,9780132350884,0132350882,29.99,USD\n"+
			"def456,Sparse Row,,,,,,,,,,\n")

	records, err := LoadGoogleBooks(path)
	if err != nil {
		t.Fatalf("LoadGoogleBooks failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	first := records[0]
	if first.GBID != "abc123" || first.Title != "Clean Code" || first.PriceAmount != "29.99" {
		t.Errorf("unexpected first record: %+v", first)
	}
	if records[1].Title != "Sparse Row" || records[1].ISBN13 != "" {
		t.Errorf("unexpected sparse record: %+v", records[1])
	}
}

func TestLoadInputsMissingFile(t *testing.T) {
	dir := t.TempDir()
	grPath := writeFile(t, dir, "goodreads_books.json", `{"records": []}`)

	_, _, err := LoadInputs(grPath, filepath.Join(dir, "missing.csv"))
	if err == nil {
		t.Fatal("expected error for missing googlebooks input")
	}

	_, _, err = LoadInputs(filepath.Join(dir, "missing.json"), grPath)
	if err == nil {
		t.Fatal("expected error for missing goodreads input")
	}
}

func TestGoogleBooksRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "googlebooks_books.csv")

	in := []record.GoogleBooksRecord{
		{
			GBID: "g1", Title: "Quote \"Heavy\" Title", Authors: "A One;B Two",
			Publisher: "ACME, Inc.", PubDate: "2019", Language: "en",
			Categories: "Fiction", ISBN13: "9780132350884", PriceAmount: "10,50",
			PriceCurrency: "eur",
		},
	}

	if err := WriteGoogleBooks(path, in); err != nil {
		t.Fatalf("WriteGoogleBooks failed: %v", err)
	}

	out, err := LoadGoogleBooks(path)
	if err != nil {
		t.Fatalf("LoadGoogleBooks failed: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if out[0] != in[0] {
		t.Errorf("round trip mismatch:\n in: %+v\nout: %+v", in[0], out[0])
	}
}
