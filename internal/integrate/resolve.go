package integrate

import (
	"strings"

	"bookfuse/internal/isbn"
	"bookfuse/internal/record"
)

// CandidateList is an ordered list of field accessors over a record, tried
// in source-declared priority order. The first non-empty value wins; later
// candidates are never inspected.
type CandidateList[T any] []func(T) string

// First returns the first non-empty trimmed candidate value, or "".
func (l CandidateList[T]) First(r T) string {
	for _, get := range l {
		if v := strings.TrimSpace(get(r)); v != "" {
			return v
		}
	}
	return ""
}

// Candidate identifier fields per source. Each source currently exposes a
// single identifier-bearing field per form, but resolution stays
// list-driven so additional fallback columns slot in without new logic.
var (
	goodreadsISBN13 = CandidateList[record.GoodreadsRecord]{
		func(r record.GoodreadsRecord) string { return r.ISBN13 },
	}
	goodreadsISBN10 = CandidateList[record.GoodreadsRecord]{
		func(r record.GoodreadsRecord) string { return r.ISBN10 },
	}
	googleBooksISBN13 = CandidateList[record.GoogleBooksRecord]{
		func(r record.GoogleBooksRecord) string { return r.ISBN13 },
	}
	googleBooksISBN10 = CandidateList[record.GoogleBooksRecord]{
		func(r record.GoogleBooksRecord) string { return r.ISBN10 },
	}
)

// ResolvedGoodreads is a Goodreads record annotated with its validated
// identifier pair.
type ResolvedGoodreads struct {
	Record record.GoodreadsRecord
	ID     record.ResolvedID
}

// ResolvedGoogleBooks is a Google Books record annotated with its validated
// identifier pair.
type ResolvedGoogleBooks struct {
	Record record.GoogleBooksRecord
	ID     record.ResolvedID
}

func resolve[T any](r T, isbn13Fields, isbn10Fields CandidateList[T]) record.ResolvedID {
	best13, best10 := isbn.PickBest(isbn13Fields.First(r), isbn10Fields.First(r))
	return record.ResolvedID{ISBN13: best13, ISBN10: best10}
}

// ResolveGoodreads attaches a resolved identifier to every Goodreads record.
// Records whose candidates fail validation get an empty pair and are routed
// to the fuzzy matching path.
func ResolveGoodreads(records []record.GoodreadsRecord) []ResolvedGoodreads {
	out := make([]ResolvedGoodreads, 0, len(records))
	for _, r := range records {
		out = append(out, ResolvedGoodreads{
			Record: r,
			ID:     resolve(r, goodreadsISBN13, goodreadsISBN10),
		})
	}
	return out
}

// ResolveGoogleBooks attaches a resolved identifier to every Google Books
// record.
func ResolveGoogleBooks(records []record.GoogleBooksRecord) []ResolvedGoogleBooks {
	out := make([]ResolvedGoogleBooks, 0, len(records))
	for _, r := range records {
		out = append(out, ResolvedGoogleBooks{
			Record: r,
			ID:     resolve(r, googleBooksISBN13, googleBooksISBN10),
		})
	}
	return out
}
