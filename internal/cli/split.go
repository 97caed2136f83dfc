package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jamesainslie/go-latincorpus/split"
)

func newSplitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split",
		Short: "Write a stratified train/test/dev split",
		Long: `Split loads the corpus and divides it into train, test and dev
partitions stratified by period. Each partition is written to the output
directory as CoNLL-U together with a manifest of the run.

Example:
  latincorpus split --out-dir combined_data
  latincorpus split --test-size 0.2 --dev-fraction 0.5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.load(cmd)
			if err != nil {
				return err
			}

			p, err := split.Split(corpus.Records,
				split.WithTestSize(a.cfg.Split.TestSize),
				split.WithDevFraction(a.cfg.Split.DevFraction),
				split.WithOutput(cmd.OutOrStdout()),
				split.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			m, err := split.Write(a.cfg.OutputDir, p)
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(m)
			if err != nil {
				return fmt.Errorf("marshaling manifest: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "\n%s", data)
			return err
		},
	}

	flags := cmd.Flags()
	flags.String("out-dir", "", "directory the partitions are written to")
	flags.Float64("test-size", 0, "fraction held out from train")
	flags.Float64("dev-fraction", 0, "fraction of the held-out sentences that go to dev")
	_ = a.v.BindPFlag("output_dir", flags.Lookup("out-dir"))
	_ = a.v.BindPFlag("split.test_size", flags.Lookup("test-size"))
	_ = a.v.BindPFlag("split.dev_fraction", flags.Lookup("dev-fraction"))
	return cmd
}
