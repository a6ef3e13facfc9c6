// Package conllu reads CoNLL-U annotation files into documents.
// For a description of the format see
// https://universaldependencies.org/format.html
package conllu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/francescomambrini/Spacy2NIF/anno"
)

const numFields = 10

// Column indexes of a CoNLL-U word line.
const (
	colID = iota
	colForm
	colLemma
	colUPos
	colXPos
	colFeats
	colHead
	colDepRel
	colDeps
	colMisc
)

// Parse reads one CoNLL-U stream into a document. Sentences are separated by
// blank lines; comment lines are skipped. The document text is reconstructed
// from the word forms, honoring SpaceAfter=No, so that every token's surface
// form equals the text slice at its offsets.
//
// Multiword token ranges ("1-2") and empty nodes ("1.1") carry no offsets of
// their own and are skipped; the syntactic words they cover are laid out like
// ordinary words. Named entities are read from NER=B-X/I-X/O attributes in
// the MISC column.
func Parse(r io.Reader) (*anno.Document, error) {
	p := &parser{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		p.lineno++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			if err := p.endSentence(); err != nil {
				return nil, err
			}
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if err := p.word(line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("conllu: line %d: %w", p.lineno, err)
	}
	if err := p.endSentence(); err != nil {
		return nil, err
	}
	return p.document(), nil
}

// ParseFile reads a CoNLL-U file into a document.
func ParseFile(path string) (*anno.Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Parse(file)
}

// entityRange is a named entity under construction: a token index range plus
// its label. Offsets and text are cut from the finished document.
type entityRange struct {
	first, last int
	label       string
}

type parser struct {
	lineno int

	text   strings.Builder
	offset int
	tokens []anno.Token

	// Current sentence state.
	sentStart  int
	wordLines  []int
	noSpace    bool
	openEntity *entityRange

	entities []entityRange
}

// word parses one word line and appends its token. Range and empty-node
// lines consume no text.
func (p *parser) word(line string) error {
	fields := strings.Split(line, "\t")
	if len(fields) != numFields {
		return fmt.Errorf("conllu: line %d: expected %d tab-separated fields, got %d", p.lineno, numFields, len(fields))
	}

	id := fields[colID]
	if strings.Contains(id, "-") {
		return p.checkRangeID(id)
	}
	if strings.Contains(id, ".") {
		// Empty nodes belong to the enhanced graph only.
		return nil
	}
	ordinal, err := strconv.Atoi(id)
	if err != nil {
		return fmt.Errorf("conllu: line %d: invalid word ID %q", p.lineno, id)
	}
	if want := len(p.tokens) - p.sentStart + 1; ordinal != want {
		return fmt.Errorf("conllu: line %d: word ID %d out of sequence, expected %d", p.lineno, ordinal, want)
	}

	head := 0
	if fields[colHead] != "_" {
		head, err = strconv.Atoi(fields[colHead])
		if err != nil || head < 0 {
			return fmt.Errorf("conllu: line %d: invalid HEAD %q", p.lineno, fields[colHead])
		}
	}
	feats, err := parseFeatures(fields[colFeats])
	if err != nil {
		return fmt.Errorf("conllu: line %d: %w", p.lineno, err)
	}

	form := fields[colForm]
	if len(p.tokens) > 0 && !p.noSpace {
		p.text.WriteByte(' ')
		p.offset++
	}
	tok := anno.Token{
		Index:  len(p.tokens),
		Start:  p.offset,
		Text:   form,
		Tag:    tagOf(fields[colUPos], fields[colXPos]),
		Lemma:  emptyIfUnset(fields[colLemma]),
		Morph:  feats,
		DepRel: emptyIfUnset(fields[colDepRel]),
		Head:   head,
	}
	if tok.Index == p.sentStart {
		tok.SentStart = true
	}
	p.text.WriteString(form)
	p.offset += utf8.RuneCountInString(form)

	misc := fields[colMisc]
	p.noSpace = miscHas(misc, "SpaceAfter", "No")
	p.trackEntity(tok.Index, miscValue(misc, "NER"))

	p.tokens = append(p.tokens, tok)
	p.wordLines = append(p.wordLines, p.lineno)
	return nil
}

func (p *parser) checkRangeID(id string) error {
	from, to, ok := strings.Cut(id, "-")
	if !ok {
		return fmt.Errorf("conllu: line %d: invalid range ID %q", p.lineno, id)
	}
	a, errA := strconv.Atoi(from)
	b, errB := strconv.Atoi(to)
	if errA != nil || errB != nil || b <= a {
		return fmt.Errorf("conllu: line %d: invalid range ID %q", p.lineno, id)
	}
	return nil
}

// endSentence resolves sentence-relative heads to document-level indexes and
// closes any open entity. Multiple blank lines in a row are harmless.
func (p *parser) endSentence() error {
	words := len(p.tokens) - p.sentStart
	if words == 0 {
		return nil
	}
	for i := p.sentStart; i < len(p.tokens); i++ {
		head := p.tokens[i].Head
		switch {
		case head == 0:
			p.tokens[i].Head = i
		case head > words:
			return fmt.Errorf("conllu: line %d: HEAD %d outside sentence of %d words", p.wordLines[i-p.sentStart], head, words)
		default:
			p.tokens[i].Head = p.sentStart + head - 1
		}
	}
	p.tokens[len(p.tokens)-1].SentEnd = true
	p.closeEntity()
	p.sentStart = len(p.tokens)
	p.wordLines = p.wordLines[:0]
	return nil
}

// trackEntity advances the BIO state machine. A B- tag opens a fresh entity,
// an I- tag extends a matching open one (or opens one when the file skips the
// B- tag), anything else closes.
func (p *parser) trackEntity(index int, ner string) {
	switch {
	case strings.HasPrefix(ner, "B-"):
		p.closeEntity()
		p.openEntity = &entityRange{first: index, last: index, label: ner[2:]}
	case strings.HasPrefix(ner, "I-"):
		label := ner[2:]
		if p.openEntity != nil && p.openEntity.label == label {
			p.openEntity.last = index
			return
		}
		p.closeEntity()
		p.openEntity = &entityRange{first: index, last: index, label: label}
	default:
		p.closeEntity()
	}
}

func (p *parser) closeEntity() {
	if p.openEntity != nil {
		p.entities = append(p.entities, *p.openEntity)
		p.openEntity = nil
	}
}

func (p *parser) document() *anno.Document {
	text := p.text.String()
	spans := make([]anno.Span, 0, len(p.entities))
	for _, ent := range p.entities {
		first, last := p.tokens[ent.first], p.tokens[ent.last]
		toks := make([]anno.Token, ent.last-ent.first+1)
		copy(toks, p.tokens[ent.first:ent.last+1])
		spans = append(spans, anno.Span{
			Start:  first.Start,
			End:    last.End(),
			Text:   anno.Substring(text, first.Start, last.End()),
			Label:  ent.label,
			Tokens: toks,
		})
	}
	return anno.NewDocument(text, p.tokens, anno.WithEntities(spans))
}

func parseFeatures(value string) (anno.Features, error) {
	if value == "_" || value == "" {
		return nil, nil
	}
	pairs := strings.Split(value, "|")
	feats := make(anno.Features, len(pairs))
	for _, pair := range pairs {
		name, val, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid FEATS entry %q", pair)
		}
		feats[name] = val
	}
	return feats, nil
}

// tagOf prefers the universal POS tag and falls back to the
// language-specific one.
func tagOf(upos, xpos string) string {
	if tag := emptyIfUnset(upos); tag != "" {
		return tag
	}
	return emptyIfUnset(xpos)
}

func emptyIfUnset(value string) string {
	if value == "_" {
		return ""
	}
	return value
}

func miscValue(misc, key string) string {
	if misc == "_" || misc == "" {
		return ""
	}
	for _, attr := range strings.Split(misc, "|") {
		name, value, ok := strings.Cut(attr, "=")
		if ok && name == key {
			return value
		}
	}
	return ""
}

func miscHas(misc, key, value string) bool {
	return miscValue(misc, key) == value
}
