package rdf

import (
	"fmt"
	"io"
)

// Graph is an append-only set of RDF triples with a prefix table for
// serialization. Duplicate inserts are no-ops; first-insertion order is
// preserved so serializations are deterministic.
//
// A Graph is not safe for concurrent mutation. The expected lifecycle is
// single-writer: one producer fills the graph, then it is serialized.
type Graph struct {
	triples  []Triple
	seen     map[string]struct{}
	prefixes map[string]string
}

// NewGraph returns an empty graph with the rdf and xsd prefixes pre-bound.
func NewGraph() *Graph {
	g := &Graph{
		seen:     make(map[string]struct{}),
		prefixes: make(map[string]string),
	}
	g.Bind("rdf", NamespaceRDF)
	g.Bind("xsd", NamespaceXSD)
	return g
}

// Add inserts a triple. Inserting a triple already present leaves the graph
// unchanged. Triples with a missing subject, predicate, or object are
// rejected.
func (g *Graph) Add(t Triple) error {
	if t.S == nil || t.P.Value == "" || t.O == nil {
		return fmt.Errorf("graph: missing statement fields")
	}
	key := tripleKey(t)
	if _, ok := g.seen[key]; ok {
		return nil
	}
	g.seen[key] = struct{}{}
	g.triples = append(g.triples, t)
	return nil
}

// Bind registers a namespace prefix for serialization. Re-binding a prefix
// replaces its namespace.
func (g *Graph) Bind(prefix, namespace string) {
	g.prefixes[prefix] = namespace
}

// Prefixes returns a copy of the prefix table.
func (g *Graph) Prefixes() map[string]string {
	out := make(map[string]string, len(g.prefixes))
	for prefix, ns := range g.prefixes {
		out[prefix] = ns
	}
	return out
}

// Len returns the number of distinct triples in the graph.
func (g *Graph) Len() int { return len(g.triples) }

// Triples returns the graph's triples in insertion order.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Has reports whether the graph contains the triple.
func (g *Graph) Has(t Triple) bool {
	if t.S == nil || t.O == nil {
		return false
	}
	_, ok := g.seen[tripleKey(t)]
	return ok
}

// Objects returns the objects of all triples with the given subject and
// predicate, in insertion order.
func (g *Graph) Objects(s Term, p IRI) []Term {
	var out []Term
	for _, t := range g.triples {
		if p.Value == t.P.Value && sameTerm(s, t.S) {
			out = append(out, t.O)
		}
	}
	return out
}

// Subjects returns the subjects of all triples with the given predicate and
// object, in insertion order.
func (g *Graph) Subjects(p IRI, o Term) []Term {
	var out []Term
	for _, t := range g.triples {
		if p.Value == t.P.Value && sameTerm(o, t.O) {
			out = append(out, t.S)
		}
	}
	return out
}

// Serialize writes the graph to w in the given format.
func (g *Graph) Serialize(w io.Writer, format Format) error {
	switch format {
	case FormatNTriples:
		return writeNTriples(w, g)
	case FormatTurtle:
		return writeTurtle(w, g)
	case FormatRDFXML:
		return writeRDFXML(w, g)
	case FormatJSONLD:
		return writeJSONLD(w, g)
	default:
		return ErrUnsupportedFormat
	}
}

func tripleKey(t Triple) string {
	return renderTerm(t.S) + " " + t.P.Value + " " + renderTerm(t.O)
}

func sameTerm(a, b Term) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Kind() == b.Kind() && renderTerm(a) == renderTerm(b)
}
