package latincorpus

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Option configures a Loader.
type Option func(*config)

type config struct {
	extension string
	output    io.Writer
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		extension: ".conllu",
		output:    os.Stdout,
		logger:    slog.Default(),
	}
}

// WithExtension sets the file name suffix of corpus files (default: ".conllu").
func WithExtension(ext string) Option {
	return func(c *config) {
		if ext != "" {
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			c.extension = ext
		}
	}
}

// WithOutput sets where the progress table and statistics are printed
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
