package rdf

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateIRI checks an IRI string for well-formedness: parseable syntax, a
// scheme starting with a letter for absolute IRIs, no raw control characters,
// and no raw angle brackets. This is a pragmatic subset of RFC 3987, enough
// to catch base-IRI typos before they poison every generated identifier.
func ValidateIRI(iri string) error {
	if iri == "" {
		return fmt.Errorf("empty IRI")
	}
	parsed, err := url.Parse(iri)
	if err != nil {
		return fmt.Errorf("invalid IRI syntax: %w", err)
	}
	if parsed.Scheme == "" {
		if strings.HasPrefix(iri, "//") {
			return fmt.Errorf("relative IRI without scheme: %s", iri)
		}
	} else {
		first := parsed.Scheme[0]
		if !((first >= 'a' && first <= 'z') || (first >= 'A' && first <= 'Z')) {
			return fmt.Errorf("scheme must start with a letter: %s", iri)
		}
	}
	for i, r := range iri {
		if r < 0x20 {
			return fmt.Errorf("invalid control character at position %d in IRI", i)
		}
		if r == '<' || r == '>' {
			return fmt.Errorf("invalid character %q at position %d in IRI (should be percent-encoded)", r, i)
		}
	}
	return nil
}
