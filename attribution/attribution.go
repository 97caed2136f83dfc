// Package attribution assigns authors and historical periods to treebank
// sentences.
//
// The corpus directory a file lives in selects a Source, and each Source
// derives the author its own way: Perseus from the sent_id document prefix,
// PROIEL from the first word of the source metadata, the rest from a fixed
// name. The author then maps to a Period through a static table.
package attribution

import (
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jamesainslie/go-latincorpus/conllu"
)

// Source is the attribution strategy for a corpus directory.
type Source int

const (
	Unknown Source = iota
	Perseus
	PROIEL
	ITTB
	Dante
	LateLatin
	TestData
)

var sourceNames = [...]string{
	Unknown:   "unknown",
	Perseus:   "Perseus",
	PROIEL:    "PROIEL",
	ITTB:      "ITTB",
	Dante:     "Dante",
	LateLatin: "Late",
	TestData:  "test",
}

func (s Source) String() string {
	if s < 0 || int(s) >= len(sourceNames) {
		return fmt.Sprintf("Source(%d)", int(s))
	}
	return sourceNames[s]
}

// directorySuffixes is checked in order against the containing directory.
var directorySuffixes = []struct {
	suffix string
	source Source
}{
	{"Perseus", Perseus},
	{"PROIEL", PROIEL},
	{"ITTB", ITTB},
	{"Dante", Dante},
	{"Late", LateLatin},
	{"test_data", TestData},
	{"combined_data", TestData},
}

// constantAuthors holds the fixed author of single-author sources.
// ITTB is not strictly Aquinas throughout; some texts are misattributed.
var constantAuthors = map[Source]string{
	ITTB:      "Aquinas",
	Dante:     "Dante",
	LateLatin: "Late",
	TestData:  "test",
}

// SourceForDir selects the Source for a directory path by suffix match.
// Returns Unknown when no recognized corpus name matches.
func SourceForDir(dir string) Source {
	dir = strings.TrimRight(filepath.ToSlash(dir), "/")
	for _, d := range directorySuffixes {
		if strings.HasSuffix(dir, d.suffix) {
			return d.source
		}
	}
	return Unknown
}

// Author derives the author of a sentence under source s.
func (s Source) Author(sent *conllu.Sentence) (string, error) {
	switch s {
	case Perseus:
		id, ok := sent.Get("sent_id")
		if !ok {
			return "", fmt.Errorf("%w: sent_id", ErrMissingMetadata)
		}
		return PerseusAuthor(id)
	case PROIEL:
		src, ok := sent.Get("source")
		if !ok {
			return "", fmt.Errorf("%w: source", ErrMissingMetadata)
		}
		return PROIELAuthor(src)
	case Unknown:
		return "", ErrUnknownSource
	}
	if author, ok := constantAuthors[s]; ok {
		return author, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownSource, s)
}

// PerseusAuthor resolves a Perseus sent_id such as
// "phi0448.phi001.perseus-lat1:12" to its author.
func PerseusAuthor(sentID string) (string, error) {
	doc := perseusDocID(sentID)
	author, ok := perseusAuthors[doc]
	if !ok {
		return "", fmt.Errorf("%w: perseus document %q", ErrUnknownDocument, doc)
	}
	return author, nil
}

func perseusDocID(sentID string) string {
	first := strings.IndexByte(sentID, '.')
	if first < 0 {
		return sentID
	}
	second := strings.IndexByte(sentID[first+1:], '.')
	if second < 0 {
		return sentID
	}
	return sentID[:first+1+second]
}

// PROIELAuthor resolves PROIEL source metadata such as
// "De Re Publica 1.1" to its author.
func PROIELAuthor(source string) (string, error) {
	word, _, _ := strings.Cut(source, " ")
	author, ok := proielAuthors[word]
	if !ok {
		return "", fmt.Errorf("%w: proiel source %q", ErrUnknownDocument, word)
	}
	return author, nil
}

// PeriodOf returns the period of author.
func PeriodOf(author string) (Period, error) {
	p, ok := authorPeriods[author]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAuthor, author)
	}
	return p, nil
}

// Attribution is the resolved author and period of a sentence.
type Attribution struct {
	Source Source
	Author string
	Period Period
}

// Attribute resolves author and period for a sentence found in dir.
func Attribute(dir string, sent *conllu.Sentence) (Attribution, error) {
	src := SourceForDir(dir)
	if src == Unknown {
		return Attribution{}, fmt.Errorf("%w: %s", ErrUnknownSource, dir)
	}

	author, err := src.Author(sent)
	if err != nil {
		return Attribution{}, err
	}

	period, err := PeriodOf(author)
	if err != nil {
		return Attribution{}, err
	}

	return Attribution{Source: src, Author: author, Period: period}, nil
}

// Table is the author to period lookup. It satisfies the period lookup the
// pair sampler expects.
type Table struct{}

// PeriodOf returns the period of author.
func (Table) PeriodOf(author string) (Period, error) {
	return PeriodOf(author)
}

// Authors returns every author with a period mapping, sorted.
func Authors() []string {
	return slices.Sorted(maps.Keys(authorPeriods))
}

// Sources returns the recognized corpus directory names in match order.
func Sources() []string {
	names := make([]string, len(directorySuffixes))
	for i, d := range directorySuffixes {
		names[i] = d.suffix
	}
	return names
}
