package integrate

import (
	"strings"
)

// MatchedRow is one output row of the entity matcher: a cross-source pair,
// or a single-source record with the absent side nil.
type MatchedRow struct {
	Goodreads   *ResolvedGoodreads
	GoogleBooks *ResolvedGoogleBooks
}

// Match joins the two resolved record sets.
//
// Step 1 joins on resolved ISBN-13: an identifier present on both sides
// pairs every combination of its records (the deduplicator collapses the
// cross product later); an identifier present on one side yields a
// singleton. Identifier-less records fall through to step 2, a fuzzy join
// on the normalized title|author key. Fuzzy pairs are only accepted when
// both sides independently lack a resolved ISBN-13, so asymmetric ISBN
// coverage can never re-merge what the identifier join already decided.
// Keyless or counterpart-less records survive as singletons.
func Match(gr []ResolvedGoodreads, gb []ResolvedGoogleBooks) []MatchedRow {
	var rows []MatchedRow

	// Index the Google Books side by identifier and by fuzzy key.
	gbByISBN := make(map[string][]int)
	gbByKey := make(map[string][]int)
	for i := range gb {
		if id := gb[i].ID.ISBN13; id != "" {
			gbByISBN[id] = append(gbByISBN[id], i)
		}
		if key := googleBooksFuzzyKey(gb[i].Record.Title, gb[i].Record.Authors); key != "" {
			gbByKey[key] = append(gbByKey[key], i)
		}
	}

	gbPaired := make([]bool, len(gb))

	// Step 1: identifier join.
	for i := range gr {
		id := gr[i].ID.ISBN13
		if id == "" {
			continue
		}
		partners := gbByISBN[id]
		if len(partners) == 0 {
			rows = append(rows, MatchedRow{Goodreads: &gr[i]})
			continue
		}
		for _, j := range partners {
			rows = append(rows, MatchedRow{Goodreads: &gr[i], GoogleBooks: &gb[j]})
			gbPaired[j] = true
		}
	}
	for j := range gb {
		if gb[j].ID.ISBN13 != "" && !gbPaired[j] {
			rows = append(rows, MatchedRow{GoogleBooks: &gb[j]})
		}
	}

	// Step 2: fuzzy fallback join for identifier-less records.
	for i := range gr {
		if gr[i].ID.ISBN13 != "" {
			continue
		}
		key := goodreadsFuzzyKey(gr[i].Record.Title, gr[i].Record.Author)
		matched := false
		if key != "" {
			for _, j := range gbByKey[key] {
				// Guard: both sides must lack a resolved identifier.
				if gb[j].ID.ISBN13 != "" {
					continue
				}
				rows = append(rows, MatchedRow{Goodreads: &gr[i], GoogleBooks: &gb[j]})
				gbPaired[j] = true
				matched = true
			}
		}
		if !matched {
			rows = append(rows, MatchedRow{Goodreads: &gr[i]})
		}
	}
	for j := range gb {
		if gb[j].ID.ISBN13 == "" && !gbPaired[j] {
			rows = append(rows, MatchedRow{GoogleBooks: &gb[j]})
		}
	}

	return rows
}

// normTitleKey lower-cases a title, replaces colons and hyphens with spaces
// and collapses whitespace runs.
func normTitleKey(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return ""
	}
	t = strings.ReplaceAll(t, ":", " ")
	t = strings.ReplaceAll(t, "-", " ")
	return strings.Join(strings.Fields(t), " ")
}

func fuzzyKey(title, primaryAuthor string) string {
	t := normTitleKey(title)
	a := strings.ToLower(strings.TrimSpace(primaryAuthor))
	if t == "" && a == "" {
		return ""
	}
	return t + "|" + a
}

func goodreadsFuzzyKey(title, author string) string {
	return fuzzyKey(title, author)
}

// googleBooksFuzzyKey uses the first entry of the semicolon-delimited
// author list as the primary author.
func googleBooksFuzzyKey(title, authors string) string {
	primary := authors
	if idx := strings.Index(authors, ";"); idx >= 0 {
		primary = authors[:idx]
	}
	return fuzzyKey(title, primary)
}
