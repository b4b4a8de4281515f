/*
Copyright © 2022 the SBP authors.
This file is part of SBP.

SBP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SBP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SBP.  If not, see <http://www.gnu.org/licenses/>.
*/

package sbp

import (
	"fmt"
	"sort"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/mat"
)

// MulVec computes the matrix-vector product a·x. It panics if a is not
// two-dimensional or the dimensions do not match.
//
// Element keys are decoded with row-major arithmetic (the inverse of
// SparseArray.Index1d) rather than SparseArray.IndexNd, which mis-decodes
// keys on the first row.
func MulVec(a *sparse.SparseArray, x []float64) []float64 {
	sh := a.GetShape()
	if len(sh) != 2 || sh[1] != len(x) {
		panic(fmt.Sprintf("sbp: cannot multiply array of shape %v by vector of length %d", sh, len(x)))
	}
	y := make([]float64, sh[0])
	for k, v := range a.Elements {
		y[k/sh[1]] += v * x[k%sh[1]]
	}
	return y
}

// Dense converts a two-dimensional sparse array to a gonum dense matrix.
func Dense(a *sparse.SparseArray) *mat.Dense {
	sh := a.GetShape()
	if len(sh) != 2 {
		panic(fmt.Sprintf("sbp: cannot convert array of shape %v to a matrix", sh))
	}
	return mat.NewDense(sh[0], sh[1], a.ToDense())
}

// UniformGrid returns the coordinates x_i = i·h of a uniform grid with m
// points. On a periodic domain the grid covers [0, m·h) with the point at
// m·h identified with the one at 0.
func UniformGrid(m int, h float64) []float64 {
	x := make([]float64, m)
	for i := range x {
		x[i] = float64(i) * h
	}
	return x
}

// diagonal returns the m×m diagonal matrix with constant diagonal v.
func diagonal(m int, v float64) *sparse.SparseArray {
	a := sparse.ZerosSparse(m, m)
	for i := 0; i < m; i++ {
		a.Set(v, i, i)
	}
	return a
}

// setEntry overwrites a single entry, clearing it when the value is zero;
// SparseArray.Set silently ignores explicit zeros.
func setEntry(a *sparse.SparseArray, v float64, i, j int) {
	if v == 0 {
		delete(a.Elements, a.Index1d(i, j))
		return
	}
	a.Set(v, i, j)
}

// negTranspose returns -aᵀ.
func negTranspose(a *sparse.SparseArray) *sparse.SparseArray {
	sh := a.GetShape()
	t := sparse.ZerosSparse(sh[1], sh[0])
	for k, v := range a.Elements {
		t.Set(-v, k%sh[1], k/sh[1])
	}
	return t
}

// scaleRows multiplies row i of a by d[i], in place.
func scaleRows(a *sparse.SparseArray, d []float64) {
	cols := a.GetShape()[1]
	for k, v := range a.Elements {
		a.Elements[k] = v * d[k/cols]
	}
}

// entry is a column index and value within one matrix row.
type entry struct {
	j int
	v float64
}

// rowIndex converts a sparse matrix into per-row entry lists, sorted by
// column, for deterministic row-wise products.
func rowIndex(a *sparse.SparseArray) [][]entry {
	sh := a.GetShape()
	rows := make([][]entry, sh[0])
	for k, v := range a.Elements {
		i := k / sh[1]
		rows[i] = append(rows[i], entry{j: k % sh[1], v: v})
	}
	for _, row := range rows {
		sort.Slice(row, func(p, q int) bool { return row[p].j < row[q].j })
	}
	return rows
}
