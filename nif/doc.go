// Package nif converts annotated documents to RDF following the NLP
// Interchange Format (NIF) 2.1 convention.
//
// The exporter is adaptive: by default it probes the document for the
// annotation layers it actually carries (tokens, part-of-speech tags, lemmas,
// morphology, dependencies, sentences, named entities) and exports only
// those. Callers can instead lock in an explicit LayerConfig, which bypasses
// inference entirely; layers missing from an explicit configuration stay
// disabled.
//
// Every exported unit is addressed by its character offsets,
// <base>char=<start>,<end>, so identifiers are stable across runs and units
// with coincident offsets deliberately collapse into one resource. The
// document-level context resource lives at <base>context and anchors every
// unit through nif:referenceContext.
//
// Example:
//
//	exporter, err := nif.NewExporter(nif.WithBaseIRI("http://example.org/doc#"))
//	if err != nil {
//	    // handle error
//	}
//	g, err := exporter.Export(doc)
//	if err != nil {
//	    // handle error
//	}
//	_ = g.Serialize(os.Stdout, rdf.FormatTurtle)
//
// Exports into caller-owned storage go through ExportTo with any Sink
// implementation.
package nif
