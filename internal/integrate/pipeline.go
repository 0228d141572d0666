package integrate

import (
	"log/slog"
	"time"

	"bookfuse/internal/record"
)

// Options configures one pipeline run.
type Options struct {
	// Now supplies the run's single wall-clock reading; the zero value
	// means time.Now.
	Now time.Time
	// Landing file labels recorded on the source detail rows.
	GoodreadsFile   string
	GoogleBooksFile string
}

// Result is everything one run produces for persistence and reporting.
type Result struct {
	Canonical    []record.CanonicalBook
	SourceDetail []record.SourceDetail
	IngestedAt   string
}

// Run executes the full integration: resolve identifiers per source, match
// across sources, apply survivorship, assign canonical identity and
// deduplicate. Inputs are read-only; the caller owns persistence.
func Run(gr []record.GoodreadsRecord, gb []record.GoogleBooksRecord, opts Options) Result {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	ts := now.UTC().Format(time.RFC3339)

	slog.Info("Integration started",
		"goodreads_records", len(gr), "googlebooks_records", len(gb))

	detail := BuildSourceDetail(gr, gb, opts.GoodreadsFile, opts.GoogleBooksFile, ts)

	rgr := ResolveGoodreads(gr)
	rgb := ResolveGoogleBooks(gb)

	rows := Match(rgr, rgb)
	slog.Debug("Entity matching complete", "rows", len(rows))

	candidates := make([]record.CanonicalBook, 0, len(rows))
	for _, row := range rows {
		can := Survive(row, ts)
		can.BookID = BookID(
			can.ISBN13, can.TituloNormalizado, can.AutorPrincipal,
			can.Editorial, can.FechaPublicacion,
		)
		candidates = append(candidates, can)
	}

	canonical := Dedupe(candidates)
	slog.Info("Integration complete",
		"candidates", len(candidates), "canonical_books", len(canonical))

	return Result{
		Canonical:    canonical,
		SourceDetail: detail,
		IngestedAt:   ts,
	}
}
