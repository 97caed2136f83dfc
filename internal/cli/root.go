// Package cli implements the latincorpus command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	latincorpus "github.com/jamesainslie/go-latincorpus"
	"github.com/jamesainslie/go-latincorpus/internal/config"
)

// BuildInfo is injected into the binary at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	build   BuildInfo
	cfgFile string
	verbose bool

	cfg    config.Config
	logger *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd(build BuildInfo) *cobra.Command {
	a := &app{v: viper.New(), build: build}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:   "latincorpus",
		Short: "Build Latin sentence corpora from CoNLL-U treebanks",
		Long: `latincorpus loads dependency-parsed Latin treebanks, attributes every
sentence to an author and a period, and removes duplicate sentences.

From the loaded corpus it derives a stratified train/test/dev split and
weakly labelled sentence pairs for similarity training.

Configuration hierarchy (highest to lowest priority):
  1. CLI flags
  2. Environment variables (LATINCORPUS_*, also read from .env)
  3. Config file (~/.latincorpus/config.yaml)
  4. Defaults`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.prepare(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.latincorpus/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	flags.String("data-dir", "", "root directory of the treebanks")
	flags.String("extension", "", "file name suffix of treebank files")
	_ = a.v.BindPFlag("data_dir", flags.Lookup("data-dir"))
	_ = a.v.BindPFlag("extension", flags.Lookup("extension"))

	root.AddCommand(
		newLoadCmd(a),
		newPairsCmd(a),
		newSplitCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)
	return root
}

// Execute runs the command line with ctx.
func Execute(ctx context.Context, build BuildInfo) error {
	return NewRootCmd(build).ExecuteContext(ctx)
}

// prepare reads .env, the config file and the environment, then
// installs the logger.
func (a *app) prepare(cmd *cobra.Command) error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading .env: %w", err)
	}

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(filepath.Join(home, ".latincorpus"))
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
	}

	a.v.SetEnvPrefix("LATINCORPUS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		a.logger.Debug("using config file", "path", a.v.ConfigFileUsed())
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// load runs the corpus loader over the configured data directory.
func (a *app) load(cmd *cobra.Command) (*latincorpus.Corpus, error) {
	return latincorpus.Load(cmd.Context(), a.cfg.DataDir,
		latincorpus.WithExtension(a.cfg.Extension),
		latincorpus.WithOutput(cmd.OutOrStdout()),
		latincorpus.WithLogger(a.logger),
	)
}
