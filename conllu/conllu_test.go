package conllu

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `# newdoc id = phi0448.phi001
# sent_id = phi0448.phi001.perseus-lat1:1
# text = Gallia est omnis divisa in partes tres.
1	Gallia	Gallia	PROPN	Ne	Case=Nom|Gender=Fem|Number=Sing	4	nsubj	_	_
2	est	sum	AUX	V-	Mood=Ind|Number=Sing|Person=3|Tense=Pres|VerbForm=Fin	4	cop	_	_
3	omnis	omnis	DET	A-	Case=Nom|Gender=Fem|Number=Sing	1	det	_	_
4	divisa	divido	VERB	V-	Aspect=Perf|Case=Nom|Gender=Fem|Number=Sing|VerbForm=Part|Voice=Pass	0	root	_	_
5	in	in	ADP	R-	_	6	case	_	_
6	partes	pars	NOUN	Nb	Case=Acc|Gender=Fem|Number=Plur	4	obl	_	_
7	tres	tres	NUM	Ma	Case=Acc|Gender=Fem|Number=Plur	6	nummod	_	SpaceAfter=No
8	.	.	PUNCT	U-	_	4	punct	_	_

# sent_id = phi0448.phi001.perseus-lat1:2
# text = Quarum unam incolunt Belgae.
1	Quarum	qui	PRON	Pr	Case=Gen|Gender=Fem|Number=Plur	2	nmod	_	_
2	unam	unus	NUM	Ma	Case=Acc|Gender=Fem|Number=Sing	3	obj	_	_
3	incolunt	incolo	VERB	V-	Mood=Ind|Number=Plur|Person=3|Tense=Pres|VerbForm=Fin	0	root	_	_
4	Belgae	Belgae	PROPN	Ne	Case=Nom|Gender=Masc|Number=Plur	3	nsubj	_	SpaceAfter=No
5	.	.	PUNCT	U-	_	3	punct	_	_

`

func TestParse(t *testing.T) {
	sentences, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(sentences))
	}

	first := sentences[0]
	if len(first.Tokens) != 8 {
		t.Errorf("got %d tokens, want 8", len(first.Tokens))
	}
	text, ok := first.Text()
	if !ok || text != "Gallia est omnis divisa in partes tres." {
		t.Errorf("Text() = %q, %v", text, ok)
	}
	id, _ := first.Get("sent_id")
	if id != "phi0448.phi001.perseus-lat1:1" {
		t.Errorf("sent_id = %q", id)
	}
	if first.Tokens[3].Deprel != "root" {
		t.Errorf("token 4 deprel = %q, want root", first.Tokens[3].Deprel)
	}
	if first.Tokens[6].Misc != "SpaceAfter=No" {
		t.Errorf("token 7 misc = %q", first.Tokens[6].Misc)
	}
}

func TestParseComment(t *testing.T) {
	tests := []struct {
		name    string
		comment string
		want    Metadata
	}{
		{"key value", " text = Arma virumque cano", Metadata{Key: "text", Value: "Arma virumque cano", HasValue: true}},
		{"value with equals", " text = a = b", Metadata{Key: "text", Value: "a = b", HasValue: true}},
		{"bare key", " newpar", Metadata{Key: "newpar"}},
		{"free text", " this is a note = really", Metadata{Key: "this is a note = really"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseComment(tt.comment); got != tt.want {
				t.Errorf("parseComment(%q) = %+v, want %+v", tt.comment, got, tt.want)
			}
		})
	}
}

func TestParse_NoTrailingBlank(t *testing.T) {
	input := "# text = Veni.\n1\tVeni\tvenio\tVERB\t_\t_\t0\troot\t_\t_"
	sentences, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(sentences))
	}
}

func TestParse_Malformed(t *testing.T) {
	input := "# text = Veni.\n1\tVeni\tvenio\n"
	_, err := Parse(strings.NewReader(input))
	if !errors.Is(err, ErrMalformedLine) {
		t.Fatalf("expected ErrMalformedLine, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the line: %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	sentences, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Write(&buf, sentences); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if buf.String() != sample {
		t.Errorf("round trip mismatch:\n%s\nwant:\n%s", buf.String(), sample)
	}

	if got := sentences[1].Serialize(); !strings.HasSuffix(got, "punct\t_\t_\n\n") {
		t.Errorf("Serialize() should end with a blank line, got %q", got)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "la_perseus-ud-test.conllu")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	sentences, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(sentences) != 2 {
		t.Errorf("got %d sentences, want 2", len(sentences))
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.conllu")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
