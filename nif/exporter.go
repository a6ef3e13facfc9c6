package nif

import (
	"fmt"
	"sort"

	"github.com/francescomambrini/Spacy2NIF/anno"
	"github.com/francescomambrini/Spacy2NIF/rdf"
)

// DefaultBaseIRI is the base IRI used when none is configured.
const DefaultBaseIRI = "http://example.org/doc#"

// Sink receives the triples of an export. rdf.Graph implements it; callers
// with their own storage can supply anything that accepts incremental
// insertion and prefix registration.
type Sink interface {
	Add(rdf.Triple) error
	Bind(prefix, namespace string)
}

// Exporter converts annotated documents to NIF graphs. An Exporter holds
// only its configuration and may be reused across documents; when no
// explicit layer configuration was locked in at construction, layers are
// re-resolved from scratch for every document.
type Exporter struct {
	baseIRI  string
	layers   LayerConfig
	fullText bool
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithBaseIRI sets the base IRI for all generated identifiers.
func WithBaseIRI(iri string) Option {
	return func(e *Exporter) {
		e.baseIRI = iri
	}
}

// WithLayers locks in an explicit layer configuration, bypassing inference.
// Layers missing from the configuration stay disabled. The configuration is
// copied; later changes to the argument do not affect the exporter.
func WithLayers(cfg LayerConfig) Option {
	return func(e *Exporter) {
		e.layers = cfg.Clone()
	}
}

// WithFullText controls whether the context resource carries the full
// document text as nif:isString. Enabled by default; worth disabling for
// very long documents where the text would dominate the output.
func WithFullText(enabled bool) Option {
	return func(e *Exporter) {
		e.fullText = enabled
	}
}

// NewExporter builds an exporter. The base IRI is validated so that a typo
// does not silently poison every generated identifier.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{baseIRI: DefaultBaseIRI, fullText: true}
	for _, opt := range opts {
		opt(e)
	}
	if err := rdf.ValidateIRI(e.baseIRI); err != nil {
		return nil, fmt.Errorf("nif: base IRI: %w", err)
	}
	return e, nil
}

// BaseIRI returns the configured base IRI.
func (e *Exporter) BaseIRI() string { return e.baseIRI }

// Export converts the document into a freshly created graph. The graph is
// handed to the caller on completion; the exporter retains nothing.
func (e *Exporter) Export(doc *anno.Document) (*rdf.Graph, error) {
	g := rdf.NewGraph()
	if err := e.ExportTo(doc, g); err != nil {
		return nil, err
	}
	return g, nil
}

// ExportTo converts the document into the given sink. The context is always
// emitted; sentence, token, and entity layers follow in that order when
// enabled. An error aborts the export and leaves the sink partially filled;
// callers should discard it.
func (e *Exporter) ExportTo(doc *anno.Document, sink Sink) error {
	if doc == nil {
		return fmt.Errorf("nif: nil document")
	}
	layers := e.layers
	if layers == nil {
		layers = InferLayers(doc)
	}
	x := &export{
		doc:      doc,
		sink:     sink,
		layers:   layers,
		base:     e.baseIRI,
		context:  ContextIRI(e.baseIRI),
		fullText: e.fullText,
	}

	x.exportContext()
	if layers.Enabled(LayerSentences) {
		x.exportSentences()
	}
	if layers.Enabled(LayerTokens) {
		x.exportTokens()
	}
	if layers.Enabled(LayerEntities) {
		x.exportEntities()
	}
	if x.err != nil {
		return x.err
	}

	sink.Bind("nif", NamespaceNIF)
	sink.Bind("conll", NamespaceCoNLL)
	return nil
}

// export carries the state of one export call. Nothing outlives the call.
type export struct {
	doc      *anno.Document
	sink     Sink
	layers   LayerConfig
	base     string
	context  rdf.IRI
	fullText bool
	err      error
}

func (x *export) add(s rdf.Term, p rdf.IRI, o rdf.Term) {
	if x.err != nil {
		return
	}
	x.err = x.sink.Add(rdf.Triple{S: s, P: p, O: o})
}

func (x *export) failf(format string, args ...interface{}) {
	if x.err == nil {
		x.err = fmt.Errorf("nif: "+format, args...)
	}
}

// exportContext emits the document-level context resource: offsets spanning
// the whole text and, when enabled, the text itself.
func (x *export) exportContext() {
	_, end := x.doc.Bounds()
	x.add(x.context, nifBeginIndex, rdf.NewIntegerLiteral(0))
	x.add(x.context, nifEndIndex, rdf.NewIntegerLiteral(end))
	if x.fullText {
		x.add(x.context, nifIsString, rdf.NewLiteral(x.doc.Text()))
	}
}

// exportSentences emits one nif:Sentence per sentence span, chained with
// nif:nextSentence. Spans whose tokens are all whitespace produce nothing
// and do not interrupt the chain.
func (x *export) exportSentences() {
	var prev rdf.Term
	for _, sent := range x.doc.Sentences() {
		toks := withoutWhitespace(sent.Tokens)
		if len(toks) == 0 {
			continue
		}
		uri := URIFor(x.base, sent)
		if prev != nil {
			x.add(prev, nifNextSentence, uri)
		}
		x.add(uri, nifBeginIndex, rdf.NewIntegerLiteral(sent.Start))
		x.add(uri, nifEndIndex, rdf.NewIntegerLiteral(sent.End))
		x.add(uri, nifAnchorOf, rdf.NewLiteral(sent.Text))
		x.add(uri, nifReferenceContext, x.context)
		x.add(uri, rdf.RDFType, nifSentence)

		// Input order is expected ascending; re-sort anyway.
		sort.SliceStable(toks, func(i, j int) bool { return toks[i].Index < toks[j].Index })
		x.add(uri, nifFirstWord, URIFor(x.base, toks[0]))
		x.add(uri, nifLastWord, URIFor(x.base, toks[len(toks)-1]))

		// Boundary flags land on whitespace tokens often enough that the
		// flags alone cannot be trusted; the list-based edges above stay,
		// and flagged tokens get their edges as well.
		for _, tok := range toks {
			turi := URIFor(x.base, tok)
			x.add(turi, nifSentenceOf, uri)
			if tok.SentStart {
				x.add(uri, nifFirstWord, turi)
			}
			if tok.SentEnd {
				x.add(uri, nifLastWord, turi)
			}
		}
		prev = uri
	}
}

// exportTokens emits one nif:Word per non-whitespace token, chained with
// nif:nextWord, plus the enabled per-token annotation layers. Whitespace
// tokens get no resource and do not interrupt the chain.
func (x *export) exportTokens() {
	var prev rdf.Term
	for _, tok := range x.doc.Tokens() {
		if tok.IsSpace() {
			continue
		}
		uri := URIFor(x.base, tok)
		if prev != nil {
			x.add(prev, nifNextWord, uri)
		}
		x.add(uri, nifAnchorOf, rdf.NewLiteral(tok.Text))
		x.add(uri, nifBeginIndex, rdf.NewIntegerLiteral(tok.Start))
		x.add(uri, nifEndIndex, rdf.NewIntegerLiteral(tok.End()))
		x.add(uri, nifReferenceContext, x.context)
		x.add(uri, rdf.RDFType, nifWord)
		prev = uri

		if x.layers.Enabled(LayerLemma) {
			x.add(uri, nifLemma, rdf.NewLiteral(tok.Lemma))
		}
		if x.layers.Enabled(LayerPOS) {
			x.add(uri, nifPosTag, rdf.NewLiteral(tok.Tag))
		}
		if x.layers.Enabled(LayerMorph) && len(tok.Morph) > 0 {
			x.add(uri, conllFeats, rdf.NewLiteral(tok.Morph.String()))
		}
		if x.layers.Enabled(LayerDeps) {
			head, ok := x.doc.TokenAt(tok.Head)
			if !ok {
				x.failf("token %d: dependency head %d outside document", tok.Index, tok.Head)
				return
			}
			x.add(uri, conllHead, URIFor(x.base, head))
			x.add(uri, nifDependencyRelation, rdf.NewLiteral(tok.DepRel))
		}
	}
}

// exportEntities emits one entity occurrence per entity span. Multi-token
// entities link every constituent token through nif:subString; a one-token
// entity needs no link because its IRI already coincides with the token's.
func (x *export) exportEntities() {
	for _, ent := range x.doc.Entities() {
		uri := URIFor(x.base, ent)
		x.add(uri, rdf.RDFType, nifSpan)
		x.add(uri, rdf.RDFType, nifEntityOccurrence)
		x.add(uri, nifLiteralAnnotation, rdf.NewLiteral(ent.Label))
		x.add(uri, nifBeginIndex, rdf.NewIntegerLiteral(ent.Start))
		x.add(uri, nifEndIndex, rdf.NewIntegerLiteral(ent.End))
		x.add(uri, nifAnchorOf, rdf.NewLiteral(ent.Text))

		if len(ent.Tokens) > 1 {
			for _, tok := range ent.Tokens {
				x.add(URIFor(x.base, tok), nifSubString, uri)
			}
		}
	}
}

func withoutWhitespace(tokens []anno.Token) []anno.Token {
	out := make([]anno.Token, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.IsSpace() {
			out = append(out, tok)
		}
	}
	return out
}
