// Package record defines the typed schemas flowing through the integration
// pipeline: one input schema per source, the canonical dim_book output, the
// per-source provenance detail row, and the quality metrics report.
package record

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Source names used across annotation, matching and quality accounting.
const (
	SourceGoodreads   = "goodreads"
	SourceGoogleBooks = "googlebooks"
)

// GoodreadsRecord is one book observation scraped from Goodreads.
// Fields may be empty; Rating and RatingsCount are nil when the listing
// carried no rating information.
type GoodreadsRecord struct {
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Rating       *float64 `json:"rating"`
	RatingsCount *int64   `json:"ratings_count"`
	BookURL      string   `json:"book_url"`
	ISBN10       string   `json:"isbn10"`
	ISBN13       string   `json:"isbn13"`
}

// GoodreadsPayload is the landing JSON envelope produced by the scraper.
type GoodreadsPayload struct {
	Query     string            `json:"query,omitempty"`
	Records   []GoodreadsRecord `json:"records"`
	FetchedAt string            `json:"fetched_at,omitempty"`
}

// GoogleBooksRecord is one book row from the Google Books enrichment CSV.
// Authors and Categories are semicolon-delimited lists.
type GoogleBooksRecord struct {
	GBID          string `json:"gb_id"`
	Title         string `json:"title"`
	Subtitle      string `json:"subtitle"`
	Authors       string `json:"authors"`
	Publisher     string `json:"publisher"`
	PubDate       string `json:"pub_date"`
	Language      string `json:"language"`
	Categories    string `json:"categories"`
	ISBN13        string `json:"isbn13"`
	ISBN10        string `json:"isbn10"`
	PriceAmount   string `json:"price_amount"`
	PriceCurrency string `json:"price_currency"`
}

// ResolvedID is the validated identifier pair attached to a record before
// matching. If ISBN13 is set it passed checksum validation; ISBN10 without
// ISBN13 never occurs, since a valid ISBN-10 is always converted.
type ResolvedID struct {
	ISBN13 string
	ISBN10 string
}

// CanonicalBook is one row of the deduplicated dim_book output. Exactly one
// row exists per BookID. Empty strings stand for absent values; Precio is
// nil when no parseable amount survived.
type CanonicalBook struct {
	BookID           string           `json:"book_id"`
	Titulo           string           `json:"titulo"`
	AutorEs          string           `json:"autor/es"`
	Editorial        string           `json:"editorial"`
	FechaPublicacion string           `json:"fecha_publicacion"`
	Idioma           string           `json:"idioma"`
	ISBN10           string           `json:"isbn10"`
	ISBN13           string           `json:"isbn13"`
	Categoria        []string         `json:"categoria"`
	Precio           *decimal.Decimal `json:"precio"`
	Moneda           string           `json:"moneda"`
	FuenteGanadora   string           `json:"fuente_ganadora"`
	TSUltimaAct      string           `json:"ts_ultima_actualizacion"`

	// Intermediate survivorship fields, consumed by identity assignment
	// and dedup scoring, dropped from the persisted output.
	TituloNormalizado string   `json:"-"`
	AutorPrincipal    string   `json:"-"`
	Autores           []string `json:"-"`
}

// JoinAuthors renders the ordered author list as the semicolon-delimited
// autor/es string.
func (c *CanonicalBook) JoinAuthors() string {
	if len(c.Autores) == 0 {
		return ""
	}
	return strings.Join(c.Autores, ";")
}

// SourceDetail is one provenance row per original source record.
type SourceDetail struct {
	SourceID   string `json:"source_id" parquet:"source_id"`
	RowNumber  int64  `json:"row_number" parquet:"row_number"`
	SourceName string `json:"source_name" parquet:"source_name"`
	SourceFile string `json:"source_file" parquet:"source_file"`
	IngestedAt string `json:"ingested_at" parquet:"ingested_at"`

	Title         string   `json:"title" parquet:"title"`
	Subtitle      string   `json:"subtitle" parquet:"subtitle"`
	AutorEs       string   `json:"autor/es" parquet:"autor/es"`
	Publisher     string   `json:"publisher" parquet:"publisher"`
	PubDate       string   `json:"pub_date" parquet:"pub_date"`
	Language      string   `json:"language" parquet:"language"`
	Categories    string   `json:"categories" parquet:"categories"`
	ISBN10        string   `json:"isbn10" parquet:"isbn10"`
	ISBN13        string   `json:"isbn13" parquet:"isbn13"`
	PriceAmount   string   `json:"price_amount" parquet:"price_amount"`
	PriceCurrency string   `json:"price_currency" parquet:"price_currency"`
	Rating        *float64 `json:"rating" parquet:"rating,optional"`
	RatingsCount  *int64   `json:"ratings_count" parquet:"ratings_count,optional"`
	BookURL       string   `json:"book_url" parquet:"book_url"`
	GBID          string   `json:"gb_id" parquet:"gb_id"`
}

// QualityMetrics is the aggregate report over the final canonical set and
// the source detail table.
type QualityMetrics struct {
	RunID              string           `json:"run_id"`
	TotalDimBook       int              `json:"total_dim_book"`
	PctNullTitulo      float64          `json:"pct_null_titulo"`
	PctNullISBN13      float64          `json:"pct_null_isbn13"`
	PctNullPriceAmount float64          `json:"pct_null_price_amount"`
	RowsPerSource      map[string]int64 `json:"rows_per_source"`
	DuplicatesFound    int              `json:"duplicates_found"`
	GeneratedAt        string           `json:"generated_at"`
}
