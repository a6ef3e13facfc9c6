package anno

import "unicode/utf8"

// Annotation identifies one category of linguistic annotation a document may
// carry.
type Annotation string

const (
	// AnnotationTag marks part-of-speech tags.
	AnnotationTag Annotation = "tag"
	// AnnotationLemma marks lemmas.
	AnnotationLemma Annotation = "lemma"
	// AnnotationMorph marks morphological feature sets.
	AnnotationMorph Annotation = "morph"
	// AnnotationDep marks dependency relations.
	AnnotationDep Annotation = "dep"
	// AnnotationSentence marks sentence boundaries.
	AnnotationSentence Annotation = "sentence"
	// AnnotationEntity marks named-entity spans.
	AnnotationEntity Annotation = "entity"
)

// Bounded is anything that addresses a character range of a document:
// the document itself, a token, or a span.
type Bounded interface {
	Bounds() (start, end int)
}

// Document is an annotated document. It is constructed once by an annotation
// pipeline and read-only afterwards.
type Document struct {
	text      string
	tokens    []Token
	sentences []Span
	entities  []Span
}

// Option configures document construction.
type Option func(*Document)

// WithSentences supplies derived sentence spans. When absent, sentences are
// derived from token SentStart flags if any token carries one.
func WithSentences(spans []Span) Option {
	return func(d *Document) {
		d.sentences = spans
	}
}

// WithEntities supplies derived entity spans.
func WithEntities(spans []Span) Option {
	return func(d *Document) {
		d.entities = spans
	}
}

// NewDocument builds a document from its full text and ordered token
// sequence. Token indexes are assigned from the sequence position.
func NewDocument(text string, tokens []Token, opts ...Option) *Document {
	d := &Document{text: text, tokens: tokens}
	for i := range d.tokens {
		d.tokens[i].Index = i
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.sentences == nil {
		d.sentences = sentencesFromFlags(text, d.tokens)
	}
	return d
}

// Text returns the full document text.
func (d *Document) Text() string { return d.text }

// Bounds returns the document's [0, len) character range.
func (d *Document) Bounds() (int, int) {
	return 0, utf8.RuneCountInString(d.text)
}

// Tokens returns the ordered token sequence.
func (d *Document) Tokens() []Token { return d.tokens }

// TokenAt returns the token at the given document-level index.
func (d *Document) TokenAt(i int) (Token, bool) {
	if i < 0 || i >= len(d.tokens) {
		return Token{}, false
	}
	return d.tokens[i], true
}

// Sentences returns the derived sentence spans in document order.
func (d *Document) Sentences() []Span { return d.sentences }

// Entities returns the derived entity spans in document order.
func (d *Document) Entities() []Span { return d.entities }

// HasAnnotation reports whether the document carries the given annotation
// layer. The answer is recomputed on every call from document content; the
// document is never mutated.
func (d *Document) HasAnnotation(a Annotation) bool {
	switch a {
	case AnnotationTag:
		return d.anyToken(func(t Token) bool { return t.Tag != "" })
	case AnnotationLemma:
		return d.anyToken(func(t Token) bool { return t.Lemma != "" })
	case AnnotationMorph:
		return d.anyToken(func(t Token) bool { return len(t.Morph) > 0 })
	case AnnotationDep:
		return d.anyToken(func(t Token) bool { return t.DepRel != "" })
	case AnnotationSentence:
		return len(d.sentences) > 0
	case AnnotationEntity:
		return len(d.entities) > 0
	default:
		return false
	}
}

func (d *Document) anyToken(pred func(Token) bool) bool {
	for _, t := range d.tokens {
		if pred(t) {
			return true
		}
	}
	return false
}

// sentencesFromFlags groups tokens into sentence spans using SentStart
// boundaries. Returns nil when no token carries a boundary flag.
func sentencesFromFlags(text string, tokens []Token) []Span {
	flagged := false
	for _, t := range tokens {
		if t.SentStart {
			flagged = true
			break
		}
	}
	if !flagged {
		return nil
	}
	var spans []Span
	var group []Token
	flush := func() {
		if len(group) == 0 {
			return
		}
		first, last := group[0], group[len(group)-1]
		spans = append(spans, Span{
			Start:  first.Start,
			End:    last.End(),
			Text:   Substring(text, first.Start, last.End()),
			Tokens: group,
		})
		group = nil
	}
	for _, t := range tokens {
		if t.SentStart {
			flush()
		}
		group = append(group, t)
		if t.SentEnd {
			flush()
		}
	}
	flush()
	return spans
}

// Substring slices text by character (rune) offsets. Out-of-range offsets are
// clamped to the text bounds.
func Substring(text string, start, end int) string {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	runes := []rune(text)
	if start > len(runes) {
		start = len(runes)
	}
	if end > len(runes) {
		end = len(runes)
	}
	return string(runes[start:end])
}
