package nif

import (
	"fmt"

	"github.com/francescomambrini/Spacy2NIF/anno"
	"github.com/francescomambrini/Spacy2NIF/rdf"
)

// URIFor maps a document element (the whole document, a token, or a span) to
// its offset-addressed IRI, <base>char=<start>,<end>. The mapping is a pure
// function of the element's character range: distinct elements with
// coincident offsets share an IRI, which is what lets a one-token entity
// coincide with its token without an explicit link.
func URIFor(base string, el anno.Bounded) rdf.IRI {
	start, end := el.Bounds()
	return rdf.IRI{Value: fmt.Sprintf("%schar=%d,%d", base, start, end)}
}

// ContextIRI returns the IRI of the document's context resource,
// <base>context.
func ContextIRI(base string) rdf.IRI {
	return rdf.IRI{Value: base + "context"}
}
