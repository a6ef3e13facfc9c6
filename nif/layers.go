package nif

import (
	"fmt"
	"strings"

	"github.com/francescomambrini/Spacy2NIF/anno"
)

// Layer names one exportable annotation layer.
type Layer string

const (
	// LayerTokens exports nif:Word units.
	LayerTokens Layer = "tokens"
	// LayerPOS exports part-of-speech tags on words.
	LayerPOS Layer = "pos"
	// LayerLemma exports lemmas on words.
	LayerLemma Layer = "lemma"
	// LayerMorph exports morphological feature sets on words.
	LayerMorph Layer = "morph"
	// LayerDeps exports dependency heads and relation labels on words.
	LayerDeps Layer = "deps"
	// LayerSentences exports nif:Sentence units.
	LayerSentences Layer = "sents"
	// LayerEntities exports named-entity occurrences.
	LayerEntities Layer = "ner"
)

// knownLayers lists every layer in a stable order.
var knownLayers = []Layer{
	LayerTokens, LayerPOS, LayerLemma, LayerMorph, LayerDeps, LayerSentences, LayerEntities,
}

// LayerConfig maps layers to enabled flags. A missing key reads as disabled;
// every layer decision, including the per-token annotation sub-layers, tests
// the boolean value.
type LayerConfig map[Layer]bool

// Enabled reports whether the layer is switched on.
func (c LayerConfig) Enabled(layer Layer) bool { return c[layer] }

// Clone returns an independent copy of the configuration.
func (c LayerConfig) Clone() LayerConfig {
	if c == nil {
		return nil
	}
	out := make(LayerConfig, len(c))
	for layer, enabled := range c {
		out[layer] = enabled
	}
	return out
}

// InferLayers probes the document for available annotations and returns the
// matching configuration. Tokens are always exported; sentences are exported
// when sentence boundaries or a dependency parse are present, since a parse
// implies recoverable sentence boundaries. The document is never mutated and
// repeated calls return equal configurations.
func InferLayers(doc *anno.Document) LayerConfig {
	hasDeps := doc.HasAnnotation(anno.AnnotationDep)
	return LayerConfig{
		LayerTokens:    true,
		LayerPOS:       doc.HasAnnotation(anno.AnnotationTag),
		LayerLemma:     doc.HasAnnotation(anno.AnnotationLemma),
		LayerMorph:     doc.HasAnnotation(anno.AnnotationMorph),
		LayerDeps:      hasDeps,
		LayerSentences: doc.HasAnnotation(anno.AnnotationSentence) || hasDeps,
		LayerEntities:  doc.HasAnnotation(anno.AnnotationEntity),
	}
}

// ParseLayers builds an explicit configuration from layer names. Named layers
// are enabled, the rest stay disabled. Unknown names are rejected.
func ParseLayers(names []string) (LayerConfig, error) {
	cfg := make(LayerConfig, len(names))
	for _, name := range names {
		layer := Layer(strings.ToLower(strings.TrimSpace(name)))
		if !isKnownLayer(layer) {
			return nil, fmt.Errorf("unknown layer %q (known: %s)", name, layerNames())
		}
		cfg[layer] = true
	}
	return cfg, nil
}

func isKnownLayer(layer Layer) bool {
	for _, known := range knownLayers {
		if layer == known {
			return true
		}
	}
	return false
}

func layerNames() string {
	names := make([]string, len(knownLayers))
	for i, layer := range knownLayers {
		names[i] = string(layer)
	}
	return strings.Join(names, ", ")
}
