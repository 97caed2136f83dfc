package latincorpus

import (
	"github.com/jamesainslie/go-latincorpus/attribution"
	"github.com/jamesainslie/go-latincorpus/conllu"
	"github.com/jamesainslie/go-latincorpus/internal/report"
	"github.com/jamesainslie/go-latincorpus/pairs"
)

// Record is a deduplicated, attributed sentence.
type Record struct {
	Text     string
	Author   string
	Period   attribution.Period
	Source   attribution.Source
	File     string
	Sentence *conllu.Sentence
}

// FileStats counts the sentences of one corpus file.
type FileStats struct {
	Path    string
	Total   int
	Skipped int
}

// Kept returns the number of sentences of the file that were not duplicates.
func (f FileStats) Kept() int {
	return f.Total - f.Skipped
}

// Stats summarizes a load.
type Stats struct {
	Files []FileStats
	// Total is the number of sentences read, duplicates included.
	Total int
	// Unique is the number of sentences kept.
	Unique int
	// Periods counts kept sentences per period in first-seen order.
	Periods *report.Counter[attribution.Period]
}

// Filtered returns the number of duplicate sentences dropped.
func (s Stats) Filtered() int {
	return s.Total - s.Unique
}

// DuplicateRate returns the share of read sentences that were duplicates.
func (s Stats) DuplicateRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Filtered()) / float64(s.Total)
}

// Corpus is the result of a load: attributed records in walk order.
type Corpus struct {
	Records []Record
	Stats   Stats
}

// ByAuthor returns sentence texts grouped by author, each group in load order.
func (c *Corpus) ByAuthor() map[string][]string {
	out := make(map[string][]string)
	for _, r := range c.Records {
		out[r.Author] = append(out[r.Author], r.Text)
	}
	return out
}

// Table returns the flat rows of the corpus: text, author, period and the
// parsed sentence.
func (c *Corpus) Table() []Record {
	return append([]Record(nil), c.Records...)
}

// AuthorTexts returns (text, author) rows for the pair sampler.
func (c *Corpus) AuthorTexts() []pairs.Row {
	rows := make([]pairs.Row, len(c.Records))
	for i, r := range c.Records {
		rows[i] = pairs.Row{Text: r.Text, Author: r.Author}
	}
	return rows
}

// Sentences returns the parsed sentences of records in order.
func Sentences(records []Record) []*conllu.Sentence {
	out := make([]*conllu.Sentence, len(records))
	for i, r := range records {
		out[i] = r.Sentence
	}
	return out
}
