package integrate

import (
	"strings"

	"bookfuse/internal/normalize"
	"bookfuse/internal/record"
)

// Survive resolves one matched row into a canonical candidate using the
// fixed field-by-field survivorship rules. Google Books is authoritative
// for catalog metadata (publisher, date, language, categories, price);
// titles favor the longest non-empty value with Google Books breaking
// ties; authors are the order-preserving union of both sides. The ts
// parameter is the single wall-clock reading of the run.
func Survive(row MatchedRow, ts string) record.CanonicalBook {
	var gr *record.GoodreadsRecord
	var gb *record.GoogleBooksRecord
	if row.Goodreads != nil {
		gr = &row.Goodreads.Record
	}
	if row.GoogleBooks != nil {
		gb = &row.GoogleBooks.Record
	}

	can := record.CanonicalBook{TSUltimaAct: ts}

	// Title: longest non-empty candidate, Google Books first on ties.
	var titleCandidates []string
	if gb != nil {
		titleCandidates = append(titleCandidates, gb.Title)
	}
	if gr != nil {
		titleCandidates = append(titleCandidates, gr.Title)
	}
	can.Titulo = longestClean(titleCandidates)
	if can.Titulo != "" {
		can.TituloNormalizado = strings.ToLower(can.Titulo)
	}

	// Authors: the Goodreads single author unioned with the Google Books
	// list, first-seen order, case-insensitive dedup.
	var authors []string
	if gr != nil {
		if a := normalize.Clean(gr.Author); a != "" {
			authors = append(authors, a)
		}
	}
	if gb != nil {
		authors = append(authors, splitList(gb.Authors)...)
	}
	can.Autores = dedupeFold(authors)
	if len(can.Autores) > 0 {
		can.AutorPrincipal = can.Autores[0]
	}
	can.AutorEs = can.JoinAuthors()

	// Catalog metadata comes from the enrichment source only.
	if gb != nil {
		can.Editorial = normalize.Clean(gb.Publisher)
		can.FechaPublicacion = normalize.DateISO(gb.PubDate)
		can.Idioma = normalize.LangBCP47(gb.Language)
		can.Categoria = dedupeExact(splitList(gb.Categories))
		can.Precio = normalize.Price(gb.PriceAmount)
		can.Moneda = normalize.CurrencyISO4217(gb.PriceCurrency)
	}
	if can.Categoria == nil {
		can.Categoria = []string{}
	}

	// Identifiers: the resolved ISBN-13 of either side (identical within a
	// pair by construction); ISBN-10 prefers the Goodreads resolution, then
	// Google Books, then the raw enrichment value.
	if row.Goodreads != nil && row.Goodreads.ID.ISBN13 != "" {
		can.ISBN13 = row.Goodreads.ID.ISBN13
	} else if row.GoogleBooks != nil {
		can.ISBN13 = row.GoogleBooks.ID.ISBN13
	}
	var isbn10Candidates []string
	if row.Goodreads != nil {
		isbn10Candidates = append(isbn10Candidates, row.Goodreads.ID.ISBN10)
	}
	if row.GoogleBooks != nil {
		isbn10Candidates = append(isbn10Candidates, row.GoogleBooks.ID.ISBN10, gb.ISBN10)
	}
	for _, c := range isbn10Candidates {
		if v := normalize.Clean(c); v != "" {
			can.ISBN10 = v
			break
		}
	}

	// Provenance tag: the side that contributed a title.
	if gb != nil && normalize.Clean(gb.Title) != "" {
		can.FuenteGanadora = record.SourceGoogleBooks
	} else {
		can.FuenteGanadora = record.SourceGoodreads
	}

	return can
}

// longestClean returns the longest non-blank trimmed candidate; earlier
// candidates win length ties.
func longestClean(candidates []string) string {
	best := ""
	for _, c := range candidates {
		s := normalize.Clean(c)
		if len(s) > len(best) {
			best = s
		}
	}
	return best
}

// splitList splits a semicolon-delimited field into cleaned entries.
func splitList(s string) []string {
	if normalize.IsBlank(s) {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dedupeFold removes case-insensitive duplicates, keeping first-seen order
// and casing.
func dedupeFold(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		k := strings.ToLower(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, v)
	}
	return out
}

// dedupeExact removes exact duplicates, keeping first-seen order.
func dedupeExact(values []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
