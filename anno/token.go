package anno

import (
	"strings"
	"unicode/utf8"
)

// Token is a single token of a document.
type Token struct {
	// Index is the token's position in the document token sequence.
	Index int
	// Start is the character offset of the token within the document text.
	Start int
	// Text is the surface form.
	Text string
	// Tag is the part-of-speech tag, if tagged.
	Tag string
	// Lemma is the base form, if lemmatized.
	Lemma string
	// Morph is the morphological feature set, if analyzed.
	Morph Features
	// DepRel is the dependency relation label, if parsed.
	DepRel string
	// Head is the document-level index of the syntactic head token.
	// A root token is its own head.
	Head int
	// SentStart marks the token as the first of a sentence.
	SentStart bool
	// SentEnd marks the token as the last of a sentence.
	SentEnd bool
}

// End returns the character offset one past the token's last character.
func (t Token) End() int {
	return t.Start + utf8.RuneCountInString(t.Text)
}

// Bounds returns the token's [start, end) character range.
func (t Token) Bounds() (int, int) {
	return t.Start, t.End()
}

// IsSpace reports whether the surface form consists entirely of whitespace.
// An empty surface form counts as whitespace.
func (t Token) IsSpace() bool {
	return strings.TrimSpace(t.Text) == ""
}
