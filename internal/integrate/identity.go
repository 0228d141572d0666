package integrate

import (
	"crypto/sha1"
	"encoding/hex"
	"strings"
)

// StableID derives a deterministic 40-character hex identifier from the
// given parts: empty parts are omitted, the rest are lower-cased, trimmed
// and joined with "||" before hashing with SHA-1. Reprocessing identical
// inputs reproduces the identical id.
func StableID(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kept = append(kept, strings.ToLower(p))
	}
	sum := sha1.Sum([]byte(strings.Join(kept, "||")))
	return hex.EncodeToString(sum[:])
}

// BookID computes the durable canonical identity: the resolved ISBN-13 when
// present, otherwise a content hash over the normalized title, primary
// author, publisher and publication date.
func BookID(isbn13, tituloNormalizado, autorPrincipal, editorial, fechaPublicacion string) string {
	if isbn13 != "" {
		return isbn13
	}
	return StableID(tituloNormalizado, autorPrincipal, editorial, fechaPublicacion)
}
