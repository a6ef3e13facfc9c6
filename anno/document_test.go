package anno

import "testing"

func TestNewDocumentAssignsIndexes(t *testing.T) {
	doc := NewDocument("a b c", []Token{
		{Start: 0, Text: "a"},
		{Start: 2, Text: "b"},
		{Start: 4, Text: "c"},
	})
	for i, tok := range doc.Tokens() {
		if tok.Index != i {
			t.Errorf("token %d: index %d", i, tok.Index)
		}
	}
}

func TestDocumentBounds(t *testing.T) {
	doc := NewDocument("Ünïcode täst.", nil)
	start, end := doc.Bounds()
	if start != 0 || end != 13 {
		t.Fatalf("expected bounds (0, 13), got (%d, %d)", start, end)
	}
}

func TestTokenAt(t *testing.T) {
	doc := NewDocument("a b", []Token{
		{Start: 0, Text: "a"},
		{Start: 2, Text: "b"},
	})
	tok, ok := doc.TokenAt(1)
	if !ok || tok.Text != "b" {
		t.Fatalf("expected token b, got %q ok=%v", tok.Text, ok)
	}
	if _, ok := doc.TokenAt(-1); ok {
		t.Fatal("negative index must not resolve")
	}
	if _, ok := doc.TokenAt(2); ok {
		t.Fatal("out-of-range index must not resolve")
	}
}

func TestSentencesFromFlags(t *testing.T) {
	doc := NewDocument("Go is fun. It works.", []Token{
		{Start: 0, Text: "Go", SentStart: true},
		{Start: 3, Text: "is"},
		{Start: 6, Text: "fun."},
		{Start: 11, Text: "It", SentStart: true},
		{Start: 14, Text: "works."},
	})
	sents := doc.Sentences()
	if len(sents) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sents))
	}
	first, second := sents[0], sents[1]
	if first.Start != 0 || first.End != 10 || first.Text != "Go is fun." {
		t.Errorf("unexpected first sentence: %+v", first)
	}
	if second.Start != 11 || second.End != 20 || second.Text != "It works." {
		t.Errorf("unexpected second sentence: %+v", second)
	}
	if len(first.Tokens) != 3 || len(second.Tokens) != 2 {
		t.Errorf("unexpected token grouping: %d and %d", len(first.Tokens), len(second.Tokens))
	}
	if second.Tokens[0].Index != 3 {
		t.Errorf("second sentence should start at token 3, got %d", second.Tokens[0].Index)
	}
}

func TestSentencesFromEndFlags(t *testing.T) {
	// SentEnd alone also closes a group.
	doc := NewDocument("One. Two.", []Token{
		{Start: 0, Text: "One.", SentStart: true, SentEnd: true},
		{Start: 5, Text: "Two.", SentStart: true, SentEnd: true},
	})
	sents := doc.Sentences()
	if len(sents) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sents))
	}
	if sents[0].Text != "One." || sents[1].Text != "Two." {
		t.Fatalf("unexpected sentence texts: %q, %q", sents[0].Text, sents[1].Text)
	}
}

func TestSentencesAbsentWithoutFlags(t *testing.T) {
	doc := NewDocument("no flags here", []Token{
		{Start: 0, Text: "no"},
		{Start: 3, Text: "flags"},
		{Start: 9, Text: "here"},
	})
	if sents := doc.Sentences(); sents != nil {
		t.Fatalf("expected no sentences, got %v", sents)
	}
}

func TestWithSentencesOverridesDerivation(t *testing.T) {
	toks := []Token{
		{Index: 0, Start: 0, Text: "One.", SentStart: true},
	}
	custom := []Span{{Start: 0, End: 4, Text: "One.", Tokens: []Token{toks[0]}}}
	doc := NewDocument("One.", toks, WithSentences(custom))
	if len(doc.Sentences()) != 1 || doc.Sentences()[0].Text != "One." {
		t.Fatalf("explicit sentences not honored: %v", doc.Sentences())
	}
}

func TestHasAnnotation(t *testing.T) {
	cases := []struct {
		name string
		doc  *Document
		a    Annotation
		want bool
	}{
		{"tag present", NewDocument("x", []Token{{Text: "x", Tag: "NOUN"}}), AnnotationTag, true},
		{"tag absent", NewDocument("x", []Token{{Text: "x"}}), AnnotationTag, false},
		{"lemma present", NewDocument("x", []Token{{Text: "x", Lemma: "x"}}), AnnotationLemma, true},
		{"lemma absent", NewDocument("x", []Token{{Text: "x"}}), AnnotationLemma, false},
		{"morph present", NewDocument("x", []Token{{Text: "x", Morph: Features{"Case": "Nom"}}}), AnnotationMorph, true},
		{"morph absent", NewDocument("x", []Token{{Text: "x", Morph: Features{}}}), AnnotationMorph, false},
		{"dep present", NewDocument("x", []Token{{Text: "x", DepRel: "root"}}), AnnotationDep, true},
		{"dep absent", NewDocument("x", []Token{{Text: "x"}}), AnnotationDep, false},
		{"sentence present", NewDocument("x", []Token{{Text: "x", SentStart: true}}), AnnotationSentence, true},
		{"sentence absent", NewDocument("x", []Token{{Text: "x"}}), AnnotationSentence, false},
		{"entity present", NewDocument("x", []Token{{Text: "x"}}, WithEntities([]Span{{Start: 0, End: 1, Text: "x", Label: "X"}})), AnnotationEntity, true},
		{"entity absent", NewDocument("x", []Token{{Text: "x"}}), AnnotationEntity, false},
		{"unknown", NewDocument("x", []Token{{Text: "x"}}), Annotation("bogus"), false},
	}
	for _, tc := range cases {
		if got := tc.doc.HasAnnotation(tc.a); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestHasAnnotationPartial(t *testing.T) {
	// One annotated token is enough for the whole document.
	doc := NewDocument("a b", []Token{
		{Start: 0, Text: "a"},
		{Start: 2, Text: "b", Lemma: "b"},
	})
	if !doc.HasAnnotation(AnnotationLemma) {
		t.Fatal("a single lemmatized token should mark the layer present")
	}
}

func TestSubstring(t *testing.T) {
	cases := []struct {
		text       string
		start, end int
		want       string
	}{
		{"This is a test.", 0, 4, "This"},
		{"This is a test.", 10, 15, "test."},
		{"Ünïcode täst.", 8, 13, "täst."},
		{"short", -2, 3, "sho"},
		{"short", 2, 99, "ort"},
		{"short", 4, 2, ""},
		{"", 0, 5, ""},
	}
	for _, tc := range cases {
		if got := Substring(tc.text, tc.start, tc.end); got != tc.want {
			t.Errorf("Substring(%q, %d, %d) = %q, want %q", tc.text, tc.start, tc.end, got, tc.want)
		}
	}
}
