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

import "github.com/ctessum/sparse"

// circulant assembles the m×m periodic-wrapped matrix whose row i is the
// stencil s centered at column i, with column indices wrapping modulo m,
// each weight multiplied by scale. The result of an antisymmetric stencil
// is exactly skew-symmetric.
//
// Callers must have validated m > s.width(); otherwise wrapped weights
// would land on interior positions and corrupt the operator.
func circulant(m int, s stencil, scale float64) *sparse.SparseArray {
	a := sparse.ZerosSparse(m, m)
	for i := 0; i < m; i++ {
		for k := -s.l; k <= s.r; k++ {
			w := s.d[k+s.l]
			if w == 0 {
				continue
			}
			j := (i + k + m) % m
			a.Set(w*scale, i, j)
		}
	}
	return a
}
