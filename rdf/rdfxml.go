package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// writeRDFXML serializes the graph as RDF/XML, one rdf:Description element
// per triple. Predicates are abbreviated against the bound prefixes; an
// unbound predicate namespace gets a generated nsN prefix declared inline.
func writeRDFXML(w io.Writer, g *Graph) error {
	x := &rdfxmlWriter{
		buf:      bufio.NewWriter(w),
		nsToPref: make(map[string]string, len(g.prefixes)),
		declared: make(map[string]struct{}, len(g.prefixes)),
	}
	for prefix, ns := range g.prefixes {
		x.nsToPref[ns] = prefix
	}
	if err := x.writeHeader(g); err != nil {
		return err
	}
	for _, t := range g.triples {
		if err := x.writeTriple(t); err != nil {
			return err
		}
	}
	if _, err := x.buf.WriteString("</rdf:RDF>\n"); err != nil {
		return err
	}
	return x.buf.Flush()
}

type rdfxmlWriter struct {
	buf      *bufio.Writer
	nsToPref map[string]string
	declared map[string]struct{}
	autoSeq  int
}

func (x *rdfxmlWriter) writeHeader(g *Graph) error {
	if _, err := x.buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n"); err != nil {
		return err
	}
	root := `<rdf:RDF xmlns:rdf="` + NamespaceRDF + `"`
	x.declared["rdf"] = struct{}{}
	for _, prefix := range sortedPrefixKeys(g.prefixes) {
		if prefix == "rdf" {
			continue
		}
		root += ` xmlns:` + prefix + `="` + escapeXMLAttr(g.prefixes[prefix]) + `"`
		x.declared[prefix] = struct{}{}
	}
	root += ">\n"
	_, err := x.buf.WriteString(root)
	return err
}

func (x *rdfxmlWriter) writeTriple(t Triple) error {
	subject, err := subjectAttr(t.S)
	if err != nil {
		return err
	}
	predicate, inlineNS, err := x.predicateQName(t.P.Value)
	if err != nil {
		return err
	}
	var element string
	switch value := t.O.(type) {
	case IRI:
		element = fmt.Sprintf(`  <rdf:Description %s><%s%s rdf:resource="%s"/></rdf:Description>`+"\n",
			subject, predicate, inlineNS, escapeXMLAttr(value.Value))
	case BlankNode:
		element = fmt.Sprintf(`  <rdf:Description %s><%s%s rdf:nodeID="%s"/></rdf:Description>`+"\n",
			subject, predicate, inlineNS, escapeXMLAttr(value.ID))
	case Literal:
		attrs := ""
		if value.Lang != "" {
			attrs = ` xml:lang="` + escapeXMLAttr(value.Lang) + `"`
		} else if value.Datatype.Value != "" {
			attrs = ` rdf:datatype="` + escapeXMLAttr(value.Datatype.Value) + `"`
		}
		element = fmt.Sprintf(`  <rdf:Description %s><%s%s%s>%s</%s></rdf:Description>`+"\n",
			subject, predicate, inlineNS, attrs, escapeXML(value.Lexical), predicate)
	default:
		return fmt.Errorf("rdfxml: unsupported object type")
	}
	_, err = x.buf.WriteString(element)
	return err
}

func (x *rdfxmlWriter) predicateQName(iri string) (string, string, error) {
	ns, local, ok := splitIRIForQName(iri)
	if !ok {
		return "", "", fmt.Errorf("rdfxml: unable to abbreviate predicate IRI %q", iri)
	}
	if prefix, ok := x.nsToPref[ns]; ok {
		if _, bound := x.declared[prefix]; bound {
			return prefix + ":" + local, "", nil
		}
		return prefix + ":" + local, ` xmlns:` + prefix + `="` + escapeXMLAttr(ns) + `"`, nil
	}
	prefix := fmt.Sprintf("ns%d", x.autoSeq)
	x.autoSeq++
	x.nsToPref[ns] = prefix
	return prefix + ":" + local, ` xmlns:` + prefix + `="` + escapeXMLAttr(ns) + `"`, nil
}

func subjectAttr(term Term) (string, error) {
	switch value := term.(type) {
	case IRI:
		return `rdf:about="` + escapeXMLAttr(value.Value) + `"`, nil
	case BlankNode:
		return `rdf:nodeID="` + escapeXMLAttr(value.ID) + `"`, nil
	default:
		return "", fmt.Errorf("rdfxml: unsupported subject type")
	}
}

var xmlEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&apos;",
)

func escapeXML(value string) string {
	return xmlEscaper.Replace(value)
}

func escapeXMLAttr(value string) string {
	return escapeXML(value)
}
