package rdf

import (
	"bufio"
	"io"
	"sort"
)

// writeTurtle serializes the graph as Turtle: a sorted @prefix header
// followed by one statement per line, with IRIs abbreviated to qualified
// names wherever a bound prefix covers them.
func writeTurtle(w io.Writer, g *Graph) error {
	buf := bufio.NewWriter(w)
	prefixes := g.prefixes
	for _, prefix := range sortedPrefixKeys(prefixes) {
		line := "@prefix " + prefix + ": <" + prefixes[prefix] + "> .\n"
		if _, err := buf.WriteString(line); err != nil {
			return err
		}
	}
	if len(prefixes) > 0 && len(g.triples) > 0 {
		if _, err := buf.WriteString("\n"); err != nil {
			return err
		}
	}
	for _, t := range g.triples {
		line := renderTermWithPrefixes(t.S, prefixes) + " " +
			renderIRIWithPrefixes(t.P, prefixes) + " " +
			renderTermWithPrefixes(t.O, prefixes) + " .\n"
		if _, err := buf.WriteString(line); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func sortedPrefixKeys(prefixes map[string]string) []string {
	keys := make([]string, 0, len(prefixes))
	for key := range prefixes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func renderIRIWithPrefixes(iri IRI, prefixes map[string]string) string {
	if qname, ok := abbreviateQName(iri.Value, prefixes); ok {
		return qname
	}
	return renderIRI(iri)
}

func renderTermWithPrefixes(term Term, prefixes map[string]string) string {
	switch value := term.(type) {
	case IRI:
		return renderIRIWithPrefixes(value, prefixes)
	case BlankNode:
		return value.String()
	case Literal:
		lexical := `"` + escapeLiteral(value.Lexical) + `"`
		if value.Lang != "" {
			return lexical + "@" + value.Lang
		}
		if value.Datatype.Value != "" {
			return lexical + "^^" + renderIRIWithPrefixes(value.Datatype, prefixes)
		}
		return lexical
	default:
		return ""
	}
}
