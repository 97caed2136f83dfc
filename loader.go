package latincorpus

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jamesainslie/go-latincorpus/attribution"
	"github.com/jamesainslie/go-latincorpus/conllu"
	"github.com/jamesainslie/go-latincorpus/internal/report"
)

// Loader reads a tree of treebank files into a deduplicated Corpus.
// A Loader holds no state between loads.
type Loader struct {
	extension string
	output    io.Writer
	logger    *slog.Logger
}

// NewLoader creates a Loader.
func NewLoader(opts ...Option) *Loader {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loader{
		extension: cfg.extension,
		output:    cfg.output,
		logger:    cfg.logger,
	}
}

// Load walks root in lexical order and loads every corpus file under it.
// Any attribution failure aborts the load.
func (l *Loader) Load(ctx context.Context, root string) (*Corpus, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDataDirNotFound, root)
		}
		return nil, fmt.Errorf("checking data directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrDataDirNotFound, root)
	}

	r := report.New(l.output)
	r.FileHeader()

	corpus := &Corpus{
		Stats: Stats{Periods: report.NewCounter[attribution.Period]()},
	}
	seen := make(map[string]struct{})

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), l.extension) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		stats, err := l.loadFile(path, seen, corpus)
		if err != nil {
			return fmt.Errorf("loading %s: %w", path, err)
		}
		corpus.Stats.Files = append(corpus.Stats.Files, stats)
		corpus.Stats.Total += stats.Total
		r.FileRow(d.Name(), stats.Kept(), stats.Skipped)

		l.logger.Debug("loaded corpus file",
			"path", path,
			"sentences", stats.Total,
			"skipped", stats.Skipped)
		return nil
	})
	if err != nil {
		return nil, err
	}

	corpus.Stats.Unique = len(corpus.Records)

	r.Summary(corpus.Stats.Unique, corpus.Stats.Filtered())
	report.Distribution(r, "The Latin Age sentence distribution is as follows: ", corpus.Stats.Periods)

	l.logger.Info("loaded corpus",
		"root", root,
		"files", len(corpus.Stats.Files),
		"unique", corpus.Stats.Unique,
		"duplicate_rate", corpus.Stats.DuplicateRate())

	return corpus, nil
}

// loadFile appends the unseen sentences of one file to corpus.
func (l *Loader) loadFile(path string, seen map[string]struct{}, corpus *Corpus) (FileStats, error) {
	sentences, err := conllu.ParseFile(path)
	if err != nil {
		return FileStats{}, err
	}

	stats := FileStats{Path: path, Total: len(sentences)}
	dir := filepath.Dir(path)

	for i, sent := range sentences {
		text, ok := sent.Text()
		if !ok {
			return FileStats{}, fmt.Errorf("sentence %d: %w", i+1, ErrMissingText)
		}
		if _, dup := seen[text]; dup {
			stats.Skipped++
			continue
		}
		seen[text] = struct{}{}

		attr, err := attribution.Attribute(dir, sent)
		if err != nil {
			return FileStats{}, fmt.Errorf("sentence %d: %w", i+1, err)
		}

		corpus.Records = append(corpus.Records, Record{
			Text:     text,
			Author:   attr.Author,
			Period:   attr.Period,
			Source:   attr.Source,
			File:     path,
			Sentence: sent,
		})
		corpus.Stats.Periods.Add(attr.Period, 1)
	}

	return stats, nil
}

// Load loads root with a Loader configured by opts.
func Load(ctx context.Context, root string, opts ...Option) (*Corpus, error) {
	return NewLoader(opts...).Load(ctx, root)
}
