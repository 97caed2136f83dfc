// Package conllu reads and writes sentences in the CoNLL-U format used by
// Universal Dependencies treebanks.
//
// Parsing keeps comment metadata and token rows in their original order so a
// sentence serializes back to the same annotation structure.
package conllu

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrMalformedLine indicates a token row without the ten CoNLL-U columns.
var ErrMalformedLine = errors.New("conllu: malformed token line")

// numColumns is the number of tab-separated fields in a token row.
const numColumns = 10

// maxLineSize bounds a single line; some treebanks carry long misc columns.
const maxLineSize = 1024 * 1024

// Metadata is one comment line of a sentence.
// Lines of the form "# key = value" have HasValue set; anything else after
// the "#" is kept in Key verbatim.
type Metadata struct {
	Key      string
	Value    string
	HasValue bool
}

// Token is one word row. Columns are kept as raw strings ("_" for empty).
type Token struct {
	ID     string
	Form   string
	Lemma  string
	UPOS   string
	XPOS   string
	Feats  string
	Head   string
	Deprel string
	Deps   string
	Misc   string
}

// Sentence is a parsed CoNLL-U sentence.
type Sentence struct {
	Metadata []Metadata
	Tokens   []Token
}

// Get returns the value of the first metadata entry with key.
func (s *Sentence) Get(key string) (string, bool) {
	for _, m := range s.Metadata {
		if m.HasValue && m.Key == key {
			return m.Value, true
		}
	}
	return "", false
}

// Text returns the "text" metadata value.
func (s *Sentence) Text() (string, bool) {
	return s.Get("text")
}

// Serialize renders the sentence followed by a blank line.
func (s *Sentence) Serialize() string {
	var buf bytes.Buffer
	_ = s.write(&buf)
	return buf.String()
}

func (s *Sentence) write(w io.Writer) error {
	for _, m := range s.Metadata {
		var err error
		if m.HasValue {
			_, err = fmt.Fprintf(w, "# %s = %s\n", m.Key, m.Value)
		} else {
			_, err = fmt.Fprintf(w, "# %s\n", m.Key)
		}
		if err != nil {
			return err
		}
	}
	for _, t := range s.Tokens {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Form, t.Lemma, t.UPOS, t.XPOS, t.Feats, t.Head, t.Deprel, t.Deps, t.Misc); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Write serializes sentences to w in order.
func Write(w io.Writer, sentences []*Sentence) error {
	bw := bufio.NewWriter(w)
	for _, s := range sentences {
		if err := s.write(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Parse reads all sentences from r.
func Parse(r io.Reader) ([]*Sentence, error) {
	var (
		sentences []*Sentence
		current   *Sentence
		lineNo    int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")

		// Blank line = end of sentence
		if strings.TrimSpace(line) == "" {
			if current != nil {
				sentences = append(sentences, current)
				current = nil
			}
			continue
		}

		if current == nil {
			current = &Sentence{}
		}

		if comment, ok := strings.CutPrefix(line, "#"); ok {
			current.Metadata = append(current.Metadata, parseComment(comment))
			continue
		}

		tok, err := parseToken(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		current.Tokens = append(current.Tokens, tok)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}

	// Don't forget last sentence if no trailing blank
	if current != nil {
		sentences = append(sentences, current)
	}

	return sentences, nil
}

// ParseFile reads all sentences from the file at path.
func ParseFile(path string) ([]*Sentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sentences, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sentences, nil
}

func parseComment(comment string) Metadata {
	comment = strings.TrimSpace(comment)
	if key, value, ok := strings.Cut(comment, "="); ok {
		key = strings.TrimSpace(key)
		if key != "" && !strings.ContainsAny(key, " \t") {
			return Metadata{Key: key, Value: strings.TrimSpace(value), HasValue: true}
		}
	}
	return Metadata{Key: comment}
}

func parseToken(line string) (Token, error) {
	f := strings.Split(line, "\t")
	if len(f) != numColumns {
		return Token{}, fmt.Errorf("%w: got %d columns, want %d", ErrMalformedLine, len(f), numColumns)
	}
	return Token{
		ID:     f[0],
		Form:   f[1],
		Lemma:  f[2],
		UPOS:   f[3],
		XPOS:   f[4],
		Feats:  f[5],
		Head:   f[6],
		Deprel: f[7],
		Deps:   f[8],
		Misc:   f[9],
	}, nil
}
