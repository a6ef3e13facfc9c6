// Command nifexport converts CoNLL-U annotated documents into NIF 2.1 RDF.
//
// It reads one document per invocation, rebuilds the plain text from the
// token forms, and emits the annotation layers as linked data in Turtle,
// N-Triples, RDF/XML or JSON-LD.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/francescomambrini/Spacy2NIF/anno"
	"github.com/francescomambrini/Spacy2NIF/conllu"
	"github.com/francescomambrini/Spacy2NIF/nif"
	"github.com/francescomambrini/Spacy2NIF/rdf"
)

const version = "0.1.0"

// CLI defines the command-line interface for nifexport.
type CLI struct {
	Input    string           `arg:"" optional:"" help:"CoNLL-U input file (reads stdin when omitted)" type:"existingfile"`
	Output   string           `short:"o" help:"Output file (writes stdout when omitted)" type:"path"`
	Format   string           `short:"f" default:"turtle" help:"Output format: turtle, ntriples, rdfxml or jsonld"`
	BaseIRI  string           `name:"base-iri" default:"http://example.org/doc#" help:"Base IRI for the context and span URIs"`
	Layers   []string         `help:"Annotation layers to export, comma separated (default: inferred from the input)"`
	NoText   bool             `help:"Omit the full document text from the context node"`
	LogLevel string           `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	Version  kong.VersionFlag `help:"Print version information and quit"`
}

func (c *CLI) Run() error {
	logger := newLogger(c.LogLevel)

	format, ok := rdf.ParseFormat(c.Format)
	if !ok {
		return fmt.Errorf("unknown output format %q", c.Format)
	}

	opts := []nif.Option{nif.WithBaseIRI(c.BaseIRI)}
	if len(c.Layers) > 0 {
		layers, err := nif.ParseLayers(c.Layers)
		if err != nil {
			return err
		}
		opts = append(opts, nif.WithLayers(layers))
	}
	if c.NoText {
		opts = append(opts, nif.WithFullText(false))
	}
	exporter, err := nif.NewExporter(opts...)
	if err != nil {
		return err
	}

	doc, source, err := c.readDocument()
	if err != nil {
		return err
	}
	_, chars := doc.Bounds()
	logger.Debug().
		Str("input", source).
		Int("characters", chars).
		Msg("parsed annotations")

	graph, err := exporter.Export(doc)
	if err != nil {
		return err
	}
	logger.Info().
		Str("input", source).
		Int("tokens", len(doc.Tokens())).
		Int("sentences", len(doc.Sentences())).
		Int("entities", len(doc.Entities())).
		Int("triples", graph.Len()).
		Msg("document exported")

	dest := c.Output
	if dest == "" {
		dest = "stdout"
	}
	logger.Debug().
		Str("format", string(format)).
		Str("output", dest).
		Msg("serializing graph")

	if c.Output == "" {
		return graph.Serialize(os.Stdout, format)
	}
	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := graph.Serialize(f, format); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", c.Output, err)
	}
	return f.Close()
}

// readDocument parses the positional input file, or stdin when none is given.
func (c *CLI) readDocument() (*anno.Document, string, error) {
	if c.Input == "" {
		doc, err := conllu.Parse(os.Stdin)
		return doc, "stdin", err
	}
	doc, err := conllu.ParseFile(c.Input)
	return doc, c.Input, err
}

func newLogger(level string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch level {
	case "debug":
		lvl = zerolog.DebugLevel
	case "warn":
		lvl = zerolog.WarnLevel
	case "error":
		lvl = zerolog.ErrorLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("nifexport"),
		kong.Description("Convert CoNLL-U annotated text into NIF 2.1 RDF."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
