// SPDX-License-Identifier: MIT

// Package cmd holds the scranagg cobra commands.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/libscran/scran-aggregate/internal/config"
	"github.com/libscran/scran-aggregate/internal/dataio"
	"github.com/libscran/scran-aggregate/matrix"
)

var (
	// Global flags
	configPath string

	// Resolved in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// NewRootCommand builds the command tree. Each call returns a fresh tree so
// tests can execute commands in isolation.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   BinName(),
		Short: "Group-level summaries of feature-by-observation matrices",
		Long: `scranagg sums and counts detected values of a feature-by-observation
matrix within groups of observations, computes per-observation gene-set
scores, and combines categorical labels into dense group indices.

Matrices are CSV files with one feature per line; label tables are CSV files
with one observation per line and one factor per field.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			l, err := loaded.NewLogger()
			if err != nil {
				return err
			}
			cfg, logger = loaded, l
			logger.Debug("configuration loaded",
				zap.Int("threads", cfg.Threads),
				zap.String("layout", cfg.Layout),
				zap.Bool("sparse", cfg.Sparse))
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if logger != nil {
				_ = logger.Sync()
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	pf.IntP("threads", "t", 1, "Number of worker threads")
	pf.String("layout", config.LayoutRow, "Matrix layout: row or column")
	pf.Bool("sparse", false, "Store the matrix in compressed sparse form")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")

	root.AddCommand(newCellsCommand(), newGenesCommand(), newCombineCommand())

	binName := BinName()
	root.Example = `  # Per-group sums and detected counts, grouping by two label columns
  ` + binName + ` cells -m counts.csv -g labels.csv

  # Gene-set means over a sparse column-major copy, four threads
  ` + binName + ` genes -m counts.csv -s sets.yaml --average --layout column --sparse -t 4

  # Mixed-radix combination of integer codes with 2 and 3 levels
  ` + binName + ` combine -l codes.csv --levels 2,3`

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}

func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

// readMatrix loads a CSV matrix in the configured representation.
func readMatrix(path string) (matrix.Matrix, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := dataio.ReadMatrix(f, dataio.MatrixFormat{RowPreferred: cfg.RowPreferred(), Sparse: cfg.Sparse})
	if err != nil {
		return nil, err
	}
	logger.Info("matrix loaded",
		zap.Int("rows", m.Rows()),
		zap.Int("cols", m.Cols()),
		zap.Bool("prefer_rows", m.PreferRows()),
		zap.Bool("sparse", m.Sparse()))

	return m, nil
}
