// Package integrate is the record-linkage and canonicalization engine.
//
// It joins the Goodreads and Google Books record sets into one deduplicated
// canonical book table: identifiers are resolved and validated per record,
// records are matched by ISBN-13 with a fuzzy title|author fallback for
// identifier-less rows, field conflicts are settled by fixed survivorship
// rules, and a stable book_id (ISBN-13 or SHA-1 content hash) keys the
// final deduplication. The whole run is a synchronous batch transform; the
// wall-clock timestamp captured once per run is its only non-determinism.
package integrate
