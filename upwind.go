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

// UpwindOperator is a one-sided-biased SBP operator pair on a bounded
// grid. Dp and Dm are the forward- and backward-biased derivative
// operators; their average is a centered SBP operator and their
// difference supplies numerical dissipation for upwind discretizations of
// hyperbolic problems. The pair satisfies Qm = -Qpᵀ and
// H·Dp + (H·Dm)ᵀ = e_r·e_rᵀ - e_l·e_lᵀ.
type UpwindOperator struct {
	H  *sparse.SparseArray // diagonal norm, boundary-modified
	HI *sparse.SparseArray // inverse of H
	Qp *sparse.SparseArray // forward-biased difference part
	Qm *sparse.SparseArray // backward-biased difference part, -Qpᵀ
	Dp *sparse.SparseArray // H⁻¹(Qp - ½e_l e_lᵀ + ½e_r e_rᵀ)
	Dm *sparse.SparseArray // H⁻¹(Qm - ½e_l e_lᵀ + ½e_r e_rᵀ)
	El []float64           // extracts the first grid value
	Er []float64           // extracts the last grid value
}

// Upwind builds the upwind operator pair of the given order of accuracy
// on a grid with m points and spacing h. The supported orders are 3, 5
// and 7. The interior stencil applies away from the boundaries; the
// leading b×b corner of Qp (b = 4, 4, 6 by order) is overridden by a
// tabulated boundary closure, and the trailing corner by the closure
// flipped along both axes and transposed, so that the SBP property holds
// at both ends.
func Upwind(m int, h float64, order int) (*UpwindOperator, error) {
	t, ok := upwindTables[order]
	if !ok {
		return nil, fmt.Errorf("sbp: no upwind operator of order %d: %w", order, ErrUnsupportedOrder)
	}
	b := t.blockSize()
	width := 2 * b
	if t.interior.width() > width {
		width = t.interior.width()
	}
	if err := checkGrid(m, h, width); err != nil {
		return nil, err
	}

	el := make([]float64, m)
	er := make([]float64, m)
	el[0] = 1
	er[m-1] = 1

	// Diagonal norm: h everywhere, boundary weights on the first b
	// entries, mirrored in reverse on the last b.
	hd := make([]float64, m)
	hi := make([]float64, m)
	for i := range hd {
		hd[i] = h
	}
	for i, w := range t.hb {
		hd[i] = h * w
		hd[m-1-i] = h * w
	}
	for i, v := range hd {
		hi[i] = 1 / v
	}

	qp := sparse.ZerosSparse(m, m)
	for i := 0; i < m; i++ {
		for k := -t.interior.l; k <= t.interior.r; k++ {
			if j := i + k; j >= 0 && j < m {
				qp.Set(t.interior.d[k+t.interior.l], i, j)
			}
		}
	}
	for i := 0; i < b; i++ {
		for j := 0; j < b; j++ {
			setEntry(qp, t.qu[i][j], i, j)
			setEntry(qp, t.qu[b-1-j][b-1-i], m-b+i, m-b+j)
		}
	}
	qm := negTranspose(qp)

	hmat := sparse.ZerosSparse(m, m)
	himat := sparse.ZerosSparse(m, m)
	for i := 0; i < m; i++ {
		hmat.Set(hd[i], i, i)
		himat.Set(hi[i], i, i)
	}

	return &UpwindOperator{
		H:  hmat,
		HI: himat,
		Qp: qp,
		Qm: qm,
		Dp: boundaryCorrected(qp, hi),
		Dm: boundaryCorrected(qm, hi),
		El: el,
		Er: er,
	}, nil
}

// boundaryCorrected folds the SBP boundary correction into q and applies
// the inverse norm: H⁻¹(q - ½e_l e_lᵀ + ½e_r e_rᵀ). The correction
// removes the boundary defect so the result approximates the first
// derivative on its own.
func boundaryCorrected(q *sparse.SparseArray, hi []float64) *sparse.SparseArray {
	m := len(hi)
	d := q.Copy()
	d.AddVal(-0.5, 0, 0)
	d.AddVal(0.5, m-1, m-1)
	scaleRows(d, hi)
	return d
}
