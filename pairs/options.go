package pairs

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
)

// DefaultSeed seeds the shuffle of the sentence list.
const DefaultSeed = 42

// Option configures a Sampler.
type Option func(*config)

type config struct {
	seed   uint64
	draws  rand.Source
	output io.Writer
	logger *slog.Logger
}

func defaultConfig() config {
	return config{
		seed:   DefaultSeed,
		output: os.Stdout,
		logger: slog.Default(),
	}
}

// WithSeed sets the seed of the sentence shuffle (default: 42).
// The shuffle is reproducible for a given seed; the pair draws are not.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithSource sets the random source of the pair draws. By default each
// Sample call draws from a freshly, randomly seeded source.
func WithSource(src rand.Source) Option {
	return func(c *config) {
		c.draws = src
	}
}

// WithOutput sets where the period-pair distribution is printed
// (default: os.Stdout). A nil writer discards it.
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
