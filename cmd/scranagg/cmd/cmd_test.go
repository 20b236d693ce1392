// SPDX-License-Identifier: MIT

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), out.String())
	return out.Bytes()
}

// 2 features x 4 observations.
const counts = "1,0,2,5\n0,3,-1,0\n"

func TestCellsCommand(t *testing.T) {
	m := writeFile(t, "m.csv", counts)
	g := writeFile(t, "g.csv", "b\na\nb\na\n")

	for _, layout := range [][]string{{}, {"--layout", "column"}, {"--sparse", "-t", "2"}} {
		args := append([]string{"cells", "-m", m, "-g", g}, layout...)
		var report cellsReport
		require.NoError(t, yaml.Unmarshal(run(t, args...), &report))
		require.Equal(t, [][]string{{"a"}, {"b"}}, report.Combinations)
		require.Equal(t, []int{2, 2}, report.Counts)
		require.Equal(t, [][]float64{{5, 3}, {3, -1}}, report.Sums)
		require.Equal(t, [][]int{{1, 1}, {2, 0}}, report.Detected)
	}
}

func TestCellsCommand_SkipSums(t *testing.T) {
	m := writeFile(t, "m.csv", counts)
	g := writeFile(t, "g.csv", "x\nx\nx\nx\n")

	var report cellsReport
	require.NoError(t, yaml.Unmarshal(run(t, "cells", "-m", m, "-g", g, "--no-sums"), &report))
	require.Empty(t, report.Sums)
	require.Equal(t, [][]int{{3, 1}}, report.Detected)
}

func TestGenesCommand(t *testing.T) {
	m := writeFile(t, "m.csv", counts)
	s := writeFile(t, "sets.yaml", "- name: both\n  indices: [0, 1]\n- name: half\n  indices: [0]\n  weights: [0.5]\n")

	var scores []geneSetScore
	require.NoError(t, yaml.Unmarshal(run(t, "genes", "-m", m, "-s", s, "--layout", "column", "--sparse"), &scores))
	require.Equal(t, []geneSetScore{
		{Name: "both", Scores: []float64{1, 3, 1, 5}},
		{Name: "half", Scores: []float64{0.5, 0, 1, 2.5}},
	}, scores)

	require.NoError(t, yaml.Unmarshal(run(t, "genes", "-m", m, "-s", s, "--average"), &scores))
	require.Equal(t, []float64{0.5, 1.5, 0.5, 2.5}, scores[0].Scores)
	require.Equal(t, []float64{1, 0, 2, 5}, scores[1].Scores)
}

func TestGenesCommand_OutOfRange(t *testing.T) {
	m := writeFile(t, "m.csv", counts)
	s := writeFile(t, "sets.yaml", "- name: bad\n  indices: [7]\n")

	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"genes", "-m", m, "-s", s})
	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "out of range")
}

func TestCombineCommand(t *testing.T) {
	l := writeFile(t, "l.csv", "1,0\n0,2\n1,0\n")

	var observed combineReport[string]
	require.NoError(t, yaml.Unmarshal(run(t, "combine", "-l", l), &observed))
	require.Equal(t, [][]string{{"0", "2"}, {"1", "0"}}, observed.Combinations)
	require.Equal(t, []int{1, 0, 1}, observed.Combined)
	require.Equal(t, []int{1, 2}, observed.Counts)

	var all combineReport[int]
	require.NoError(t, yaml.Unmarshal(run(t, "combine", "-l", l, "--levels", "2,3"), &all))
	require.Len(t, all.Combinations, 6)
	require.Equal(t, []int{3, 2, 3}, all.Combined)
	require.Equal(t, []int{0, 0, 1, 2, 0, 0}, all.Counts)
}
