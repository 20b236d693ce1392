// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/libscran/scran-aggregate/aggregate"
	"github.com/libscran/scran-aggregate/factor"
	"github.com/libscran/scran-aggregate/internal/dataio"
)

// cellsReport is the YAML document printed by the cells command.
type cellsReport struct {
	Combinations [][]string  `yaml:"combinations"`
	Counts       []int       `yaml:"counts"`
	Sums         [][]float64 `yaml:"sums,omitempty"`
	Detected     [][]int     `yaml:"detected,omitempty"`
}

func newCellsCommand() *cobra.Command {
	var matrixPath, groupsPath string
	var noSums, noDetected bool

	c := &cobra.Command{
		Use:   "cells",
		Short: "Sum and count detected values within groups of observations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := readMatrix(matrixPath)
			if err != nil {
				return err
			}

			f, err := openInput(groupsPath)
			if err != nil {
				return err
			}
			defer f.Close()
			labels, err := dataio.ReadLabels(f)
			if err != nil {
				return err
			}

			combos, groups, err := factor.CombineFactors(m.Cols(), labels)
			if err != nil {
				return fmt.Errorf("labels: %w", err)
			}
			logger.Info("grouped observations", zap.Int("groups", combos.Len()), zap.Int("factors", len(labels)))

			res, err := aggregate.AcrossCells(m, groups,
				aggregate.WithNumThreads(cfg.Threads),
				aggregate.WithComputeSums(!noSums),
				aggregate.WithComputeDetected(!noDetected),
				aggregate.WithLogger(logger))
			if err != nil {
				return err
			}

			report := cellsReport{Counts: combos.Counts, Sums: res.Sums, Detected: res.Detected}
			for i := 0; i < combos.Len(); i++ {
				report.Combinations = append(report.Combinations, combos.At(i))
			}
			return dataio.WriteYAML(cmd.OutOrStdout(), report)
		},
	}

	c.Flags().StringVarP(&matrixPath, "matrix", "m", "", "CSV matrix, one feature per line (- for stdin)")
	c.Flags().StringVarP(&groupsPath, "groups", "g", "", "CSV label table, one observation per line")
	c.Flags().BoolVar(&noSums, "no-sums", false, "Skip per-group sums")
	c.Flags().BoolVar(&noDetected, "no-detected", false, "Skip per-group detected counts")
	_ = c.MarkFlagRequired("matrix")
	_ = c.MarkFlagRequired("groups")

	return c
}
