// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/stability/matrix"
)

// ExampleNewDenseFromRows builds a small matrix and prints one column.
func ExampleNewDenseFromRows() {
	m, err := matrix.NewDenseFromRows([][]float64{
		{1, 2},
		{3, 7},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	col, _ := m.Col(0)
	fmt.Print(m)
	fmt.Println(col)
	// Output:
	// [1, 2]
	// [3, 7]
	// [1 3]
}
