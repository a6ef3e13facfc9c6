package anno

// Span is a contiguous character range of a document with its constituent
// tokens. Sentences and entities are both spans; entities additionally carry
// a Label.
type Span struct {
	// Start and End delimit the span's [start, end) character range.
	Start int
	End   int
	// Text is the surface text covered by the span.
	Text string
	// Tokens are the constituent tokens in document order.
	Tokens []Token
	// Label is the entity category for entity spans, "" for sentences.
	Label string
}

// Bounds returns the span's [start, end) character range.
func (s Span) Bounds() (int, int) {
	return s.Start, s.End
}
