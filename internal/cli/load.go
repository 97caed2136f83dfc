package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jamesainslie/go-latincorpus/internal/tabular"
)

func newLoadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load, attribute and deduplicate the treebanks",
		Long: `Load walks the data directory, parses every treebank file, drops
sentences whose text was already seen, and prints per-file counts and the
period distribution.

Example:
  latincorpus load --data-dir data
  latincorpus load --export corpus.parquet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			corpus, err := a.load(cmd)
			if err != nil {
				return err
			}

			if path := a.cfg.Export.Parquet; path != "" {
				if err := tabular.WriteParquetFile(path, corpus.Table()); err != nil {
					return fmt.Errorf("exporting corpus: %w", err)
				}
				a.logger.Info("exported corpus table", "path", path, "rows", len(corpus.Records))
			}
			return nil
		},
	}

	cmd.Flags().String("export", "", "write the corpus table to this Parquet file")
	_ = a.v.BindPFlag("export.parquet", cmd.Flags().Lookup("export"))
	return cmd
}
