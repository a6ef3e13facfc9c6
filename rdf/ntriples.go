package rdf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// writeNTriples serializes the graph as N-Triples, one statement per line.
func writeNTriples(w io.Writer, g *Graph) error {
	buf := bufio.NewWriter(w)
	for _, t := range g.triples {
		line := renderTerm(t.S) + " " + renderIRI(t.P) + " " + renderTerm(t.O) + " .\n"
		if _, err := buf.WriteString(line); err != nil {
			return err
		}
	}
	return buf.Flush()
}

func renderIRI(iri IRI) string {
	return "<" + iri.Value + ">"
}

func renderTerm(term Term) string {
	switch value := term.(type) {
	case IRI:
		return renderIRI(value)
	case BlankNode:
		return value.String()
	case Literal:
		lexical := `"` + escapeLiteral(value.Lexical) + `"`
		if value.Lang != "" {
			return lexical + "@" + value.Lang
		}
		if value.Datatype.Value != "" {
			return lexical + "^^" + renderIRI(value.Datatype)
		}
		return lexical
	default:
		return ""
	}
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func escapeLiteral(value string) string {
	return literalEscaper.Replace(value)
}

// ParseNTriples reads an N-Triples document into a new graph. Blank lines and
// comment lines are skipped. Errors carry the offending line number.
func ParseNTriples(r io.Reader) (*Graph, error) {
	g := NewGraph()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		triple, err := parseNTLine(line)
		if err != nil {
			return nil, wrapParseError("ntriples", lineno, err)
		}
		if err := g.Add(triple); err != nil {
			return nil, wrapParseError("ntriples", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, wrapParseError("ntriples", lineno, err)
	}
	return g, nil
}

func parseNTLine(line string) (Triple, error) {
	cursor := &ntCursor{input: line}
	subject, err := cursor.parseSubject()
	if err != nil {
		return Triple{}, err
	}
	predicate, err := cursor.parseIRI()
	if err != nil {
		return Triple{}, err
	}
	object, err := cursor.parseObject()
	if err != nil {
		return Triple{}, err
	}
	if !cursor.consume('.') {
		return Triple{}, cursor.errorf("expected '.' at end of statement")
	}
	cursor.skipWS()
	if rest := cursor.rest(); rest != "" && !strings.HasPrefix(rest, "#") {
		return Triple{}, cursor.errorf("unexpected trailing content %q", rest)
	}
	return Triple{S: subject, P: predicate, O: object}, nil
}

type ntCursor struct {
	input string
	pos   int
}

func (c *ntCursor) skipWS() {
	for c.pos < len(c.input) {
		switch c.input[c.pos] {
		case ' ', '\t':
			c.pos++
		default:
			return
		}
	}
}

func (c *ntCursor) rest() string {
	return c.input[c.pos:]
}

func (c *ntCursor) consume(ch byte) bool {
	c.skipWS()
	if c.pos < len(c.input) && c.input[c.pos] == ch {
		c.pos++
		return true
	}
	return false
}

func (c *ntCursor) parseSubject() (Term, error) {
	c.skipWS()
	switch {
	case c.pos >= len(c.input):
		return nil, c.errorf("unexpected end of line")
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	default:
		return nil, c.errorf("expected IRI or blank node subject")
	}
}

func (c *ntCursor) parseObject() (Term, error) {
	c.skipWS()
	switch {
	case c.pos >= len(c.input):
		return nil, c.errorf("unexpected end of line")
	case c.input[c.pos] == '<':
		return c.parseIRI()
	case strings.HasPrefix(c.input[c.pos:], "_:"):
		return c.parseBlankNode()
	case c.input[c.pos] == '"':
		return c.parseLiteral()
	default:
		return nil, c.errorf("expected IRI, blank node, or literal object")
	}
}

func (c *ntCursor) parseIRI() (IRI, error) {
	if !c.consume('<') {
		return IRI{}, c.errorf("expected IRI")
	}
	start := c.pos
	for c.pos < len(c.input) && c.input[c.pos] != '>' {
		c.pos++
	}
	if c.pos >= len(c.input) {
		return IRI{}, c.errorf("unterminated IRI")
	}
	value := c.input[start:c.pos]
	c.pos++
	return IRI{Value: value}, nil
}

func (c *ntCursor) parseBlankNode() (BlankNode, error) {
	c.skipWS()
	if !strings.HasPrefix(c.input[c.pos:], "_:") {
		return BlankNode{}, c.errorf("expected blank node")
	}
	c.pos += 2
	start := c.pos
	for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
		c.pos++
	}
	if start == c.pos {
		return BlankNode{}, c.errorf("blank node id missing")
	}
	return BlankNode{ID: c.input[start:c.pos]}, nil
}

func (c *ntCursor) parseLiteral() (Literal, error) {
	if !c.consume('"') {
		return Literal{}, c.errorf("expected literal")
	}
	var builder strings.Builder
	closed := false
	for c.pos < len(c.input) {
		ch := c.input[c.pos]
		if ch == '"' {
			c.pos++
			closed = true
			break
		}
		if ch == '\\' {
			if err := c.parseEscape(&builder); err != nil {
				return Literal{}, err
			}
			continue
		}
		builder.WriteByte(ch)
		c.pos++
	}
	if !closed {
		return Literal{}, c.errorf("unterminated literal")
	}
	lexical := builder.String()
	if strings.HasPrefix(c.input[c.pos:], "@") {
		c.pos++
		start := c.pos
		for c.pos < len(c.input) && !isTermDelimiter(c.input[c.pos]) {
			c.pos++
		}
		if start == c.pos {
			return Literal{}, c.errorf("empty language tag")
		}
		return Literal{Lexical: lexical, Lang: c.input[start:c.pos]}, nil
	}
	if strings.HasPrefix(c.input[c.pos:], "^^") {
		c.pos += 2
		dt, err := c.parseIRI()
		if err != nil {
			return Literal{}, err
		}
		return Literal{Lexical: lexical, Datatype: dt}, nil
	}
	return Literal{Lexical: lexical}, nil
}

func (c *ntCursor) parseEscape(builder *strings.Builder) error {
	if c.pos+1 >= len(c.input) {
		return c.errorf("unterminated escape")
	}
	next := c.input[c.pos+1]
	switch next {
	case 'n':
		builder.WriteByte('\n')
	case 't':
		builder.WriteByte('\t')
	case 'r':
		builder.WriteByte('\r')
	case 'b':
		builder.WriteByte('\b')
	case 'f':
		builder.WriteByte('\f')
	case '"':
		builder.WriteByte('"')
	case '\'':
		builder.WriteByte('\'')
	case '\\':
		builder.WriteByte('\\')
	case 'u', 'U':
		width := 4
		if next == 'U' {
			width = 8
		}
		hexStart := c.pos + 2
		if hexStart+width > len(c.input) {
			return c.errorf("truncated \\%c escape", next)
		}
		code, err := strconv.ParseUint(c.input[hexStart:hexStart+width], 16, 32)
		if err != nil {
			return c.errorf("invalid \\%c escape", next)
		}
		builder.WriteRune(rune(code))
		c.pos += 2 + width
		return nil
	default:
		return c.errorf("unknown escape '\\%c'", next)
	}
	c.pos += 2
	return nil
}

func (c *ntCursor) errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

func isTermDelimiter(ch byte) bool {
	switch ch {
	case ' ', '\t', '.':
		return true
	default:
		return false
	}
}
