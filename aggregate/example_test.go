// SPDX-License-Identifier: MIT

package aggregate_test

import (
	"fmt"

	"github.com/libscran/scran-aggregate/aggregate"
	"github.com/libscran/scran-aggregate/factor"
	"github.com/libscran/scran-aggregate/matrix"
)

func ExampleAcrossCells() {
	// 2 genes x 4 cells, row-major.
	m, _ := matrix.NewDenseRowMajor(2, 4, []float64{
		1, 0, 2, 5,
		0, 3, -1, 0,
	})
	_, groups, _ := factor.CombineFactors(4, [][]string{{"b", "a", "b", "a"}})

	res, _ := aggregate.AcrossCells(m, groups)
	fmt.Println("sums:", res.Sums)
	fmt.Println("detected:", res.Detected)
	// Output:
	// sums: [[5 3] [3 -1]]
	// detected: [[1 1] [2 0]]
}

func ExampleAcrossGenes() {
	m, _ := matrix.NewDenseRowMajor(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	sets := []aggregate.GeneSet{
		{Indices: []int{0, 2}},
		{Indices: []int{1}, Weights: []float64{0.5}},
	}

	res, _ := aggregate.AcrossGenes(m, sets, aggregate.WithAverage(true))
	fmt.Println(res.Sum)
	// Output:
	// [[3 4] [3 4]]
}
