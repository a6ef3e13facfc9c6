package rdf

import (
	"bytes"
	"io"
	"testing"
)

type failingWriter struct{}

func (f failingWriter) Write(p []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestGraphAddDeduplicates(t *testing.T) {
	g := NewGraph()
	triple := NewTriple(
		IRI{Value: "http://example.org/s"},
		IRI{Value: "http://example.org/p"},
		Literal{Lexical: "v"},
	)
	for i := 0; i < 3; i++ {
		if err := g.Add(triple); err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
	}
	if g.Len() != 1 {
		t.Fatalf("expected 1 triple, got %d", g.Len())
	}
}

func TestGraphAddRejectsMissingFields(t *testing.T) {
	g := NewGraph()
	cases := []Triple{
		{P: IRI{Value: "http://example.org/p"}, O: Literal{Lexical: "v"}},
		{S: IRI{Value: "http://example.org/s"}, O: Literal{Lexical: "v"}},
		{S: IRI{Value: "http://example.org/s"}, P: IRI{Value: "http://example.org/p"}},
	}
	for i, tr := range cases {
		if err := g.Add(tr); err == nil {
			t.Errorf("case %d: expected error for incomplete triple", i)
		}
	}
	if g.Len() != 0 {
		t.Fatalf("rejected triples must not be stored, got %d", g.Len())
	}
}

func TestGraphInsertionOrderPreserved(t *testing.T) {
	g := NewGraph()
	subjects := []string{"http://example.org/z", "http://example.org/a", "http://example.org/m"}
	for _, s := range subjects {
		if err := g.Add(NewTriple(IRI{Value: s}, IRI{Value: "http://example.org/p"}, Literal{Lexical: "v"})); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	triples := g.Triples()
	if len(triples) != len(subjects) {
		t.Fatalf("expected %d triples, got %d", len(subjects), len(triples))
	}
	for i, tr := range triples {
		if tr.S.String() != subjects[i] {
			t.Errorf("position %d: expected %s, got %s", i, subjects[i], tr.S)
		}
	}
}

func TestGraphHas(t *testing.T) {
	g := NewGraph()
	triple := NewTriple(
		IRI{Value: "http://example.org/s"},
		IRI{Value: "http://example.org/p"},
		NewIntegerLiteral(42),
	)
	if err := g.Add(triple); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !g.Has(triple) {
		t.Fatal("inserted triple not found")
	}
	// Same lexical form, different term type.
	other := NewTriple(triple.S, triple.P, Literal{Lexical: "42"})
	if g.Has(other) {
		t.Fatal("plain literal must not match typed literal")
	}
	if g.Has(Triple{}) {
		t.Fatal("zero triple must not match")
	}
}

func TestGraphObjectsAndSubjects(t *testing.T) {
	g := NewGraph()
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/p"}
	objects := []Term{Literal{Lexical: "one"}, Literal{Lexical: "two"}}
	for _, o := range objects {
		if err := g.Add(NewTriple(s, p, o)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	got := g.Objects(s, p)
	if len(got) != 2 || got[0].String() != objects[0].String() || got[1].String() != objects[1].String() {
		t.Fatalf("unexpected objects: %v", got)
	}
	subjects := g.Subjects(p, Literal{Lexical: "one"})
	if len(subjects) != 1 || subjects[0].String() != s.Value {
		t.Fatalf("unexpected subjects: %v", subjects)
	}
	if got := g.Objects(IRI{Value: "http://example.org/none"}, p); len(got) != 0 {
		t.Fatalf("expected no objects, got %v", got)
	}
}

func TestNewGraphPreboundPrefixes(t *testing.T) {
	g := NewGraph()
	prefixes := g.Prefixes()
	if prefixes["rdf"] != NamespaceRDF {
		t.Errorf("rdf prefix: %q", prefixes["rdf"])
	}
	if prefixes["xsd"] != NamespaceXSD {
		t.Errorf("xsd prefix: %q", prefixes["xsd"])
	}
	// Prefixes() returns a copy.
	prefixes["rdf"] = "http://example.org/hijack#"
	if g.Prefixes()["rdf"] != NamespaceRDF {
		t.Fatal("mutating the returned map must not affect the graph")
	}
}

func TestGraphBindReplaces(t *testing.T) {
	g := NewGraph()
	g.Bind("ex", "http://example.org/a#")
	g.Bind("ex", "http://example.org/b#")
	if got := g.Prefixes()["ex"]; got != "http://example.org/b#" {
		t.Fatalf("expected rebound namespace, got %q", got)
	}
}

func TestSerializeUnsupportedFormat(t *testing.T) {
	g := NewGraph()
	if err := g.Serialize(&bytes.Buffer{}, Format("bogus")); err != ErrUnsupportedFormat {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSerializeAllFormats(t *testing.T) {
	g := NewGraph()
	g.Bind("ex", "http://example.org/vocab#")
	if err := g.Add(NewTriple(
		IRI{Value: "http://example.org/s"},
		IRI{Value: "http://example.org/vocab#name"},
		Literal{Lexical: "v"},
	)); err != nil {
		t.Fatalf("add: %v", err)
	}
	formats := []Format{FormatNTriples, FormatTurtle, FormatRDFXML, FormatJSONLD}
	for _, format := range formats {
		var buf bytes.Buffer
		if err := g.Serialize(&buf, format); err != nil {
			t.Fatalf("format %s: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("format %s: empty output", format)
		}
	}
}

func TestSerializeWriterError(t *testing.T) {
	g := NewGraph()
	if err := g.Add(NewTriple(
		IRI{Value: "http://example.org/s"},
		IRI{Value: "http://example.org/p"},
		Literal{Lexical: "v"},
	)); err != nil {
		t.Fatalf("add: %v", err)
	}
	for _, format := range []Format{FormatNTriples, FormatTurtle, FormatRDFXML} {
		if err := g.Serialize(failingWriter{}, format); err == nil {
			t.Errorf("format %s: expected write error", format)
		}
	}
}
