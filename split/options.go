package split

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
)

// Default fractions: a third held out, then halved into test and dev.
const (
	DefaultTestSize    = 0.33
	DefaultDevFraction = 0.5
)

// Option configures Split.
type Option func(*config)

type config struct {
	testSize    float64
	devFraction float64
	source      rand.Source
	output      io.Writer
	logger      *slog.Logger
}

func defaultConfig() config {
	return config{
		testSize:    DefaultTestSize,
		devFraction: DefaultDevFraction,
		output:      os.Stdout,
		logger:      slog.Default(),
	}
}

// WithTestSize sets the fraction held out from train (default: 0.33).
func WithTestSize(f float64) Option {
	return func(c *config) {
		c.testSize = f
	}
}

// WithDevFraction sets the fraction of the held-out part that goes to dev
// (default: 0.5).
func WithDevFraction(f float64) Option {
	return func(c *config) {
		c.devFraction = f
	}
}

// WithSource sets the random source. By default every Split call uses a
// randomly seeded source, so splits differ between runs.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.source = src
	}
}

// WithOutput sets where partition proportions are printed
// (default: os.Stdout). A nil writer discards them.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w == nil {
			w = io.Discard
		}
		c.output = w
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
