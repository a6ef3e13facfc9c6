// Package rdf provides a compact RDF triple model with an append-only graph
// and serializers.
//
// The model is intentionally small: IRIs, blank nodes, and literals as value
// types behind the Term interface, and Graph as a deduplicating triple set
// with a namespace-prefix table. Graph.Serialize supports Turtle, N-Triples,
// RDF/XML, and JSON-LD (via github.com/piprate/json-gold); ParseNTriples
// reads N-Triples documents back into a graph for round-tripping.
//
// Example:
//
//	g := rdf.NewGraph()
//	g.Bind("ex", "http://example.org/")
//	_ = g.Add(rdf.NewTriple(
//	    rdf.IRI{Value: "http://example.org/s"},
//	    rdf.IRI{Value: "http://example.org/p"},
//	    rdf.NewLiteral("v"),
//	))
//	_ = g.Serialize(os.Stdout, rdf.FormatTurtle)
//
// Graphs preserve first-insertion order, so serializing the same triple
// sequence twice yields identical output.
package rdf
