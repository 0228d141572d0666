package integrate

import (
	"sort"

	"bookfuse/internal/record"
)

// completenessScore counts the populated values among the fields that decide
// which duplicate candidate survives.
func completenessScore(c record.CanonicalBook) int {
	score := 0
	for _, s := range []string{
		c.Titulo, c.AutorPrincipal, c.Editorial, c.FechaPublicacion,
		c.Idioma, c.ISBN13, c.Moneda,
	} {
		if s != "" {
			score++
		}
	}
	if c.Precio != nil {
		score++
	}
	return score
}

// Dedupe collapses candidates sharing a book_id down to one row each:
// highest completeness wins, first-seen wins subsequent ties. The result is
// ordered by book_id ascending and is a fixed point: deduplicating its own
// output changes nothing.
func Dedupe(candidates []record.CanonicalBook) []record.CanonicalBook {
	sorted := make([]record.CanonicalBook, len(candidates))
	copy(sorted, candidates)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].BookID != sorted[j].BookID {
			return sorted[i].BookID < sorted[j].BookID
		}
		return completenessScore(sorted[i]) > completenessScore(sorted[j])
	})

	out := make([]record.CanonicalBook, 0, len(sorted))
	lastID := ""
	for _, c := range sorted {
		if len(out) > 0 && c.BookID == lastID {
			continue
		}
		out = append(out, c)
		lastID = c.BookID
	}
	return out
}
