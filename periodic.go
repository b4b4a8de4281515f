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

// PeriodicOperator is a periodic first-derivative SBP operator in
// decomposed form: D1 = H⁻¹Q, where H is the symmetric positive-definite
// norm matrix defining the discrete inner product and Q is the exactly
// skew-symmetric difference part (before any dissipation is folded in).
type PeriodicOperator struct {
	H *sparse.SparseArray
	Q *sparse.SparseArray
}

// PeriodicExplicit builds the explicit central periodic operator of the
// given order of accuracy on a grid with m points and spacing h. The
// supported orders are 2, 4, 6, 8, 10 and 12. H is h times the identity.
// If dissipation is true, the matching even-derivative artificial
// dissipation term is subtracted from Q; the term damps high-frequency
// modes and leaves row sums and the consistency order unchanged, but Q is
// then no longer skew-symmetric.
func PeriodicExplicit(m int, h float64, order int, dissipation bool) (*PeriodicOperator, error) {
	s, ok := d1Interior[order]
	if !ok {
		return nil, fmt.Errorf("sbp: no explicit periodic operator of order %d: %w",
			order, ErrUnsupportedOrder)
	}
	if err := checkGrid(m, h, s.width()); err != nil {
		return nil, err
	}
	q := circulant(m, s, 1)
	if dissipation {
		ad := adInterior[order]
		q.SubtractSparse(circulant(m, ad.s, ad.a))
	}
	return &PeriodicOperator{H: diagonal(m, h), Q: q}, nil
}

// PeriodicImplicit builds the tenth-order compact periodic operator pair
// on a grid with m points and spacing h. Unlike the explicit family, both
// H and Q are banded (half-width 5); H is scaled by h. There is no order
// parameter: the compact coefficients realize exactly one accuracy order.
// If dissipation is true the order-12 artificial dissipation term is
// subtracted from Q.
func PeriodicImplicit(m int, h float64, dissipation bool) (*PeriodicOperator, error) {
	width := compactQ.width()
	if dissipation && adInterior[12].s.width() > width {
		width = adInterior[12].s.width()
	}
	if err := checkGrid(m, h, width); err != nil {
		return nil, err
	}
	q := circulant(m, compactQ, 1)
	hmat := circulant(m, compactH, h)
	if dissipation {
		ad := adInterior[12]
		q.SubtractSparse(circulant(m, ad.s, ad.a))
	}
	return &PeriodicOperator{H: hmat, Q: q}, nil
}
