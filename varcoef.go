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

	"github.com/ctessum/sparse"
)

// PeriodicVariableSecondDerivative returns a closure computing the
// variable-coefficient second-derivative matrix
//
//	M(c) = -(1/h)·Q·diag(c)·Q
//
// from the dissipation-free explicit periodic operator of the given
// order, where c holds one coefficient per grid node. -H⁻¹·M(c)
// approximates the differential operator d/dx(c·du/dx) in wide-stencil
// form; M(c) itself is symmetric and, for positive c, positive
// semi-definite. M is linear in c.
//
// The closure panics if len(c) differs from m.
func PeriodicVariableSecondDerivative(m int, h float64, order int) (func(c []float64) *sparse.SparseArray, error) {
	op, err := PeriodicExplicit(m, h, order, false)
	if err != nil {
		return nil, err
	}
	rows := rowIndex(op.Q)
	return func(c []float64) *sparse.SparseArray {
		if len(c) != m {
			panic(fmt.Sprintf("sbp: coefficient array length %d does not match grid size %d", len(c), m))
		}
		mm := sparse.ZerosSparse(m, m)
		for i, row := range rows {
			for _, p := range row {
				w := -p.v * c[p.j] / h
				for _, q := range rows[p.j] {
					mm.AddVal(w*q.v, i, q.j)
				}
			}
		}
		return mm
	}, nil
}
