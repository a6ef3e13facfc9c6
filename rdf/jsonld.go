package rdf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	ld "github.com/piprate/json-gold/ld"
)

// writeJSONLD serializes the graph as compacted JSON-LD. The graph is first
// rendered to N-Quads and converted through the JSON-LD algorithms; the bound
// prefixes become the @context so the output stays readable.
func writeJSONLD(w io.Writer, g *Graph) error {
	var nquads bytes.Buffer
	if err := writeNTriples(&nquads, g); err != nil {
		return err
	}
	proc := ld.NewJsonLdProcessor()
	fromOpts := ld.NewJsonLdOptions("")
	fromOpts.Format = "application/n-quads"
	expanded, err := proc.FromRDF(nquads.String(), fromOpts)
	if err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}
	context := make(map[string]interface{}, len(g.prefixes))
	for prefix, ns := range g.prefixes {
		context[prefix] = ns
	}
	compacted, err := proc.Compact(expanded, map[string]interface{}{"@context": context}, ld.NewJsonLdOptions(""))
	if err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(compacted); err != nil {
		return fmt.Errorf("jsonld: %w", err)
	}
	return nil
}
