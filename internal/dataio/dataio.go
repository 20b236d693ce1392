// SPDX-License-Identifier: MIT

// Package dataio reads the command-line driver's inputs (numeric CSV
// matrices, CSV label tables and YAML gene-set lists) and writes YAML reports.
package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/libscran/scran-aggregate/aggregate"
	"github.com/libscran/scran-aggregate/matrix"
)

// ErrEmptyInput indicates an input with no records where at least one is required.
var ErrEmptyInput = errors.New("dataio: empty input")

// MatrixFormat selects the in-memory representation built by ReadMatrix.
type MatrixFormat struct {
	RowPreferred bool // row-major dense / CSR when true, column-major / CSC otherwise
	Sparse       bool
}

// ReadMatrix parses a CSV grid with one feature per line and one observation
// per field. Every line must have the same number of fields.
func ReadMatrix(r io.Reader, format MatrixFormat) (matrix.Matrix, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var data []float64
	rows, cols := 0, -1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadMatrix: %w", err)
		}
		if cols < 0 {
			cols = len(rec)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("ReadMatrix: row %d column %d: %w", rows, j, err)
			}
			data = append(data, v)
		}
		rows++
	}
	if rows == 0 {
		return nil, fmt.Errorf("ReadMatrix: %w", ErrEmptyInput)
	}

	dense, err := matrix.NewDenseRowMajor(rows, cols, data)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}
	var out matrix.Matrix = dense
	switch {
	case format.Sparse:
		out, err = matrix.ConvertToCompressedSparse(dense, format.RowPreferred)
	case !format.RowPreferred:
		out, err = matrix.ConvertToDense(dense, false)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %w", err)
	}

	return out, nil
}

// ReadLabels parses a CSV table with one observation per line and one factor
// per field, returning the factors column by column.
func ReadLabels(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("ReadLabels: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("ReadLabels: %w", ErrEmptyInput)
	}

	factors := make([][]string, len(records[0]))
	for k := range factors {
		factors[k] = make([]string, len(records))
		for i, rec := range records {
			factors[k][i] = rec[k]
		}
	}

	return factors, nil
}

// ParseCodes converts a label column to integer codes.
func ParseCodes(labels []string) ([]int, error) {
	out := make([]int, len(labels))
	for i, l := range labels {
		v, err := strconv.Atoi(strings.TrimSpace(l))
		if err != nil {
			return nil, fmt.Errorf("ParseCodes: observation %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}

// NamedGeneSet is one entry of a gene-set YAML list.
type NamedGeneSet struct {
	Name    string    `yaml:"name"`
	Indices []int     `yaml:"indices"`
	Weights []float64 `yaml:"weights,omitempty"`
}

// ReadGeneSets parses a YAML sequence of NamedGeneSet.
func ReadGeneSets(r io.Reader) ([]NamedGeneSet, error) {
	var sets []NamedGeneSet
	if err := yaml.NewDecoder(r).Decode(&sets); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("ReadGeneSets: %w", ErrEmptyInput)
		}
		return nil, fmt.Errorf("ReadGeneSets: %w", err)
	}

	return sets, nil
}

// GeneSets strips names, keeping order.
func GeneSets(named []NamedGeneSet) []aggregate.GeneSet {
	out := make([]aggregate.GeneSet, len(named))
	for s, n := range named {
		out[s] = aggregate.GeneSet{Indices: n.Indices, Weights: n.Weights}
	}

	return out
}

// WriteYAML encodes v as a YAML document with two-space indentation.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}
