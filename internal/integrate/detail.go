package integrate

import (
	"fmt"
	"strings"

	"bookfuse/internal/normalize"
	"bookfuse/internal/record"
)

// BuildSourceDetail builds the provenance table: one row per original
// source record, annotated with a per-source sequence id, row number,
// source file and the shared ingestion timestamp. The author fields of both
// sources are unified into a single semicolon-delimited autor/es string.
// The table feeds quality accounting only, never canonicalization.
func BuildSourceDetail(
	gr []record.GoodreadsRecord, gb []record.GoogleBooksRecord,
	grFile, gbFile, ingestedAt string,
) []record.SourceDetail {
	details := make([]record.SourceDetail, 0, len(gr)+len(gb))

	for i, r := range gr {
		details = append(details, record.SourceDetail{
			SourceID:     fmt.Sprintf("%s-%d", record.SourceGoodreads, i+1),
			RowNumber:    int64(i + 1),
			SourceName:   record.SourceGoodreads,
			SourceFile:   grFile,
			IngestedAt:   ingestedAt,
			Title:        r.Title,
			AutorEs:      unifyAuthors(r.Author, ""),
			ISBN10:       r.ISBN10,
			ISBN13:       r.ISBN13,
			Rating:       r.Rating,
			RatingsCount: r.RatingsCount,
			BookURL:      r.BookURL,
		})
	}

	for i, r := range gb {
		details = append(details, record.SourceDetail{
			SourceID:      fmt.Sprintf("%s-%d", record.SourceGoogleBooks, i+1),
			RowNumber:     int64(i + 1),
			SourceName:    record.SourceGoogleBooks,
			SourceFile:    gbFile,
			IngestedAt:    ingestedAt,
			Title:         r.Title,
			Subtitle:      r.Subtitle,
			AutorEs:       unifyAuthors("", r.Authors),
			Publisher:     r.Publisher,
			PubDate:       r.PubDate,
			Language:      r.Language,
			Categories:    r.Categories,
			ISBN10:        r.ISBN10,
			ISBN13:        r.ISBN13,
			PriceAmount:   r.PriceAmount,
			PriceCurrency: r.PriceCurrency,
			GBID:          r.GBID,
		})
	}

	return details
}

// unifyAuthors merges a single-author field and a semicolon-delimited
// author list into one deduplicated autor/es string.
func unifyAuthors(single, list string) string {
	var all []string
	if a := normalize.Clean(single); a != "" {
		all = append(all, splitList(a)...)
	}
	all = append(all, splitList(list)...)
	return strings.Join(dedupeFold(all), ";")
}
