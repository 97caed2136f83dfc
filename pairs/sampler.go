// Package pairs builds weak-supervision sentence pairs for training a
// sentence-similarity model.
//
// A pair is labeled from the authors and periods of its two sentences:
// 1.0 for the same author, 0.8 for different authors of the same period and
// 0.0 otherwise.
package pairs

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/jamesainslie/go-latincorpus/attribution"
	"github.com/jamesainslie/go-latincorpus/internal/report"
)

// Pair labels.
const (
	LabelSameAuthor = 1.0
	LabelSamePeriod = 0.8
	LabelDifferent  = 0.0
)

// Row is a sentence text with its author.
type Row struct {
	Text   string
	Author string
}

// Example is a labeled sentence pair. I and J index the shuffled rows.
type Example struct {
	I, J  int
	TextA string
	TextB string
	Label float64
}

// PeriodPair is the key of the period combination distribution.
type PeriodPair struct {
	A, B attribution.Period
}

func (p PeriodPair) String() string {
	return fmt.Sprintf("(%s, %s)", p.A, p.B)
}

// PeriodLookup resolves the period of an author.
type PeriodLookup interface {
	PeriodOf(author string) (attribution.Period, error)
}

// Result holds the sampled examples and how their periods combine.
type Result struct {
	Examples     []Example
	Distribution *report.Counter[PeriodPair]
	// Rejected counts draws dropped as self pairs or repeats.
	Rejected int
}

// Sampler draws labeled pairs from a list of rows.
type Sampler struct {
	periods PeriodLookup
	seed    uint64
	draws   rand.Source
	output  io.Writer
	logger  *slog.Logger
}

// NewSampler creates a Sampler resolving periods through periods.
func NewSampler(periods PeriodLookup, opts ...Option) *Sampler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sampler{
		periods: periods,
		seed:    cfg.seed,
		draws:   cfg.draws,
		output:  cfg.output,
		logger:  cfg.logger,
	}
}

// Sample makes n draws of two row indices and returns one example per draw
// that is neither a self pair nor an ordered pair drawn before. The result
// therefore holds at most n examples; rejected draws are not retried.
func (s *Sampler) Sample(rows []Row, n int) (*Result, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyCorpus
	}

	shuffled := slices.Clone(rows)
	shuffle := rand.New(rand.NewPCG(s.seed, s.seed))
	shuffle.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	periods := make([]attribution.Period, len(shuffled))
	for i, r := range shuffled {
		p, err := s.periods.PeriodOf(r.Author)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		periods[i] = p
	}

	src := s.draws
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	rng := rand.New(src)

	res := &Result{Distribution: report.NewCounter[PeriodPair]()}
	seen := make(map[[2]int]struct{})

	for range n {
		i := rng.IntN(len(shuffled))
		j := rng.IntN(len(shuffled))

		pair := [2]int{i, j}
		if _, dup := seen[pair]; i == j || dup {
			res.Rejected++
			continue
		}
		seen[pair] = struct{}{}

		a, b := shuffled[i], shuffled[j]
		res.Examples = append(res.Examples, Example{
			I:     i,
			J:     j,
			TextA: a.Text,
			TextB: b.Text,
			Label: label(a.Author, b.Author, periods[i], periods[j]),
		})

		key := PeriodPair{A: periods[i], B: periods[j]}
		if reverse := (PeriodPair{A: key.B, B: key.A}); !res.Distribution.Has(key) && res.Distribution.Has(reverse) {
			key = reverse
		}
		res.Distribution.Add(key, 1)
	}

	s.logger.Info("sampled sentence pairs",
		"requested", n,
		"examples", len(res.Examples),
		"rejected", res.Rejected)

	r := report.New(s.output)
	r.Title("The Latin Age combo sentence distribution is as follows: ")
	report.Proportions(r, res.Distribution)

	return res, nil
}

func label(authorA, authorB string, periodA, periodB attribution.Period) float64 {
	switch {
	case authorA == authorB:
		return LabelSameAuthor
	case periodA == periodB:
		return LabelSamePeriod
	default:
		return LabelDifferent
	}
}
