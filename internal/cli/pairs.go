package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-latincorpus/attribution"
	"github.com/jamesainslie/go-latincorpus/pairs"
)

func newPairsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairs",
		Short: "Sample labelled sentence pairs",
		Long: `Pairs loads the corpus and draws random sentence pairs. A pair is
labelled 1.0 when both sentences share an author, 0.8 when they only share
a period, and 0.0 otherwise. Self pairs and repeated draws are skipped, so
the file may hold fewer pairs than requested.

Example:
  latincorpus pairs --size 50000
  latincorpus pairs --format protodelim --output pairs.pb`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.load(cmd)
			if err != nil {
				return err
			}

			sampler := pairs.NewSampler(attribution.Table{},
				pairs.WithSeed(a.cfg.Pairs.Seed),
				pairs.WithOutput(cmd.OutOrStdout()),
				pairs.WithLogger(a.logger),
			)
			res, err := sampler.Sample(corpus.AuthorTexts(), a.cfg.Pairs.Size)
			if err != nil {
				return err
			}

			path := a.cfg.PairsPath()
			if err := writePairs(path, pairs.Format(a.cfg.Pairs.Format), res.Examples); err != nil {
				return err
			}
			a.logger.Info("wrote pairs", "path", path, "pairs", len(res.Examples), "rejected", res.Rejected)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("size", 0, "number of draws")
	flags.Uint64("seed", 0, "seed of the row shuffle")
	flags.String("format", "", "pair file format (jsonl or protodelim)")
	flags.String("output", "", "pair file path")
	_ = a.v.BindPFlag("pairs.size", flags.Lookup("size"))
	_ = a.v.BindPFlag("pairs.seed", flags.Lookup("seed"))
	_ = a.v.BindPFlag("pairs.format", flags.Lookup("format"))
	_ = a.v.BindPFlag("pairs.output", flags.Lookup("output"))
	return cmd
}

func writePairs(path string, format pairs.Format, examples []pairs.Example) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating pair file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing pair file: %w", closeErr)
		}
	}()

	return pairs.Write(f, format, examples)
}
