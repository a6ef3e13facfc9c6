// Package anno models an annotated natural-language document: its full text,
// an ordered token sequence, and derived sentence and entity spans.
//
// The model is pipeline-agnostic. Any tokenizer, tagger, lemmatizer, parser,
// or entity recognizer can populate it; consumers discover which annotation
// layers a document actually carries through Document.HasAnnotation and
// degrade gracefully when a layer is absent.
//
// All offsets are character (rune) offsets into the document text, not byte
// offsets. A Token or Span addresses the half-open range [Start, End).
//
// Documents are read-only once constructed. Accessors return the underlying
// slices for efficiency; callers must not modify them.
package anno
