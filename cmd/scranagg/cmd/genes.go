// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/libscran/scran-aggregate/aggregate"
	"github.com/libscran/scran-aggregate/internal/dataio"
)

// geneSetScore is one entry of the genes command's YAML output.
type geneSetScore struct {
	Name   string    `yaml:"name"`
	Scores []float64 `yaml:"scores"`
}

func newGenesCommand() *cobra.Command {
	var matrixPath, setsPath string
	var average bool

	c := &cobra.Command{
		Use:   "genes",
		Short: "Per-observation weighted sums or means over gene sets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := readMatrix(matrixPath)
			if err != nil {
				return err
			}

			f, err := openInput(setsPath)
			if err != nil {
				return err
			}
			defer f.Close()
			named, err := dataio.ReadGeneSets(f)
			if err != nil {
				return err
			}

			res, err := aggregate.AcrossGenes(m, dataio.GeneSets(named),
				aggregate.WithNumThreads(cfg.Threads),
				aggregate.WithAverage(average),
				aggregate.WithLogger(logger))
			if err != nil {
				return err
			}

			out := make([]geneSetScore, len(named))
			for s, n := range named {
				out[s] = geneSetScore{Name: n.Name, Scores: res.Sum[s]}
			}
			return dataio.WriteYAML(cmd.OutOrStdout(), out)
		},
	}

	c.Flags().StringVarP(&matrixPath, "matrix", "m", "", "CSV matrix, one feature per line (- for stdin)")
	c.Flags().StringVarP(&setsPath, "sets", "s", "", "YAML list of gene sets (name, indices, optional weights)")
	c.Flags().BoolVar(&average, "average", false, "Divide each set's sums by its total weight")
	_ = c.MarkFlagRequired("matrix")
	_ = c.MarkFlagRequired("sets")

	return c
}
