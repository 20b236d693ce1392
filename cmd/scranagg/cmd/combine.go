// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libscran/scran-aggregate/factor"
	"github.com/libscran/scran-aggregate/internal/dataio"
)

// combineReport is the YAML document printed by the combine command.
type combineReport[T any] struct {
	Combinations [][]T `yaml:"combinations"`
	Counts       []int `yaml:"counts"`
	Combined     []int `yaml:"combined"`
}

func newReport[T any](combos *factor.Combinations[T], combined []int) combineReport[T] {
	r := combineReport[T]{Combinations: [][]T{}, Counts: combos.Counts, Combined: combined}
	for i := 0; i < combos.Len(); i++ {
		r.Combinations = append(r.Combinations, combos.At(i))
	}
	return r
}

func newCombineCommand() *cobra.Command {
	var labelsPath string
	var levels []int

	c := &cobra.Command{
		Use:   "combine",
		Short: "Combine label columns into dense group indices",
		Long: `combine assigns every observation the index of its label combination.

Without --levels, combinations are the distinct label tuples in lexicographic
order. With --levels, every column holds integer codes in [0, level) and the
table lists all possible combinations, observed or not, in mixed-radix order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := openInput(labelsPath)
			if err != nil {
				return err
			}
			defer f.Close()
			labels, err := dataio.ReadLabels(f)
			if err != nil {
				return err
			}
			n := len(labels[0])

			if len(levels) == 0 {
				combos, combined, err := factor.CombineFactors(n, labels)
				if err != nil {
					return err
				}
				return dataio.WriteYAML(cmd.OutOrStdout(), newReport(combos, combined))
			}

			if len(levels) != len(labels) {
				return fmt.Errorf("got %d level counts for %d label columns", len(levels), len(labels))
			}
			coded := make([]factor.Levelled[int], len(labels))
			for k, col := range labels {
				codes, err := dataio.ParseCodes(col)
				if err != nil {
					return fmt.Errorf("column %d: %w", k, err)
				}
				coded[k] = factor.Levelled[int]{Labels: codes, Levels: levels[k]}
			}
			combos, combined, err := factor.CombineFactorsUnused(n, coded)
			if err != nil {
				return err
			}
			return dataio.WriteYAML(cmd.OutOrStdout(), newReport(combos, combined))
		},
	}

	c.Flags().StringVarP(&labelsPath, "labels", "l", "", "CSV label table, one observation per line")
	c.Flags().IntSliceVar(&levels, "levels", nil, "Level count per column; enables mixed-radix combination")
	_ = c.MarkFlagRequired("labels")

	return c
}
