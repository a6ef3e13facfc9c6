package rdf

import (
	"fmt"
	"strconv"
)

// Well-known namespaces.
const (
	// NamespaceRDF is the RDF syntax namespace.
	NamespaceRDF = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// NamespaceXSD is the XML Schema datatype namespace.
	NamespaceXSD = "http://www.w3.org/2001/XMLSchema#"
)

// Well-known terms.
var (
	// RDFType is the rdf:type predicate.
	RDFType = IRI{Value: NamespaceRDF + "type"}
	// XSDInteger is the xsd:integer datatype IRI.
	XSDInteger = IRI{Value: NamespaceXSD + "integer"}
	// XSDString is the xsd:string datatype IRI.
	XSDString = IRI{Value: NamespaceXSD + "string"}
)

// TermKind identifies RDF term types.
type TermKind uint8

const (
	// TermIRI represents an IRI term.
	TermIRI TermKind = iota
	// TermBlankNode represents a blank node term.
	TermBlankNode
	// TermLiteral represents a literal term.
	TermLiteral
)

// Term is a value that can appear in RDF statements.
type Term interface {
	Kind() TermKind
	String() string
}

// IRI represents an RDF IRI.
type IRI struct {
	// Value is the IRI string value.
	Value string
}

// Kind returns TermIRI.
func (i IRI) Kind() TermKind { return TermIRI }

// String returns the IRI value.
func (i IRI) String() string { return i.Value }

// BlankNode represents an RDF blank node.
type BlankNode struct {
	// ID is the blank node identifier.
	ID string
}

// Kind returns TermBlankNode.
func (b BlankNode) Kind() TermKind { return TermBlankNode }

// String returns the blank node identifier prefixed with "_:".
func (b BlankNode) String() string { return "_:" + b.ID }

// Literal represents an RDF literal.
type Literal struct {
	// Lexical is the lexical form of the literal.
	Lexical string
	// Datatype is the datatype IRI, if any.
	Datatype IRI
	// Lang is the language tag, if any.
	Lang string
}

// Kind returns TermLiteral.
func (l Literal) Kind() TermKind { return TermLiteral }

// String returns a string representation of the literal.
func (l Literal) String() string {
	if l.Lang != "" {
		return fmt.Sprintf("%q@%s", l.Lexical, l.Lang)
	}
	if l.Datatype.Value != "" {
		return fmt.Sprintf("%q^^<%s>", l.Lexical, l.Datatype.Value)
	}
	return fmt.Sprintf("%q", l.Lexical)
}

// NewLiteral returns a plain string literal.
func NewLiteral(lexical string) Literal {
	return Literal{Lexical: lexical}
}

// NewIntegerLiteral returns an xsd:integer typed literal.
func NewIntegerLiteral(value int) Literal {
	return Literal{Lexical: strconv.Itoa(value), Datatype: XSDInteger}
}

// NewLangLiteral returns a language-tagged string literal.
func NewLangLiteral(lexical, lang string) Literal {
	return Literal{Lexical: lexical, Lang: lang}
}

// Triple is an RDF triple.
type Triple struct {
	// S is the subject.
	S Term
	// P is the predicate.
	P IRI
	// O is the object.
	O Term
}

// NewTriple builds a triple from its three terms.
func NewTriple(s Term, p IRI, o Term) Triple {
	return Triple{S: s, P: p, O: o}
}
