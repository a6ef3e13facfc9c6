package rdf

import "testing"

func TestTermKinds(t *testing.T) {
	cases := []struct {
		term Term
		want TermKind
	}{
		{IRI{Value: "http://example.org/s"}, TermIRI},
		{BlankNode{ID: "b0"}, TermBlankNode},
		{Literal{Lexical: "v"}, TermLiteral},
	}
	for _, tc := range cases {
		if got := tc.term.Kind(); got != tc.want {
			t.Errorf("%s: kind %v, want %v", tc.term, got, tc.want)
		}
	}
}

func TestTermStrings(t *testing.T) {
	cases := []struct {
		term Term
		want string
	}{
		{IRI{Value: "http://example.org/s"}, "http://example.org/s"},
		{BlankNode{ID: "b0"}, "_:b0"},
		{NewLiteral("plain"), `"plain"`},
		{NewIntegerLiteral(15), `"15"^^<http://www.w3.org/2001/XMLSchema#integer>`},
		{NewLangLiteral("chat", "fr"), `"chat"@fr`},
	}
	for _, tc := range cases {
		if got := tc.term.String(); got != tc.want {
			t.Errorf("got %s, want %s", got, tc.want)
		}
	}
}

func TestNewTriple(t *testing.T) {
	s := IRI{Value: "http://example.org/s"}
	p := IRI{Value: "http://example.org/p"}
	o := NewLiteral("v")
	tr := NewTriple(s, p, o)
	if tr.S != s || tr.P != p || tr.O != o {
		t.Fatalf("unexpected triple: %+v", tr)
	}
}
