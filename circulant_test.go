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

import "testing"

func TestCirculantWrap(t *testing.T) {
	t.Parallel()
	const m = 6
	s := d1Interior[4]
	a := circulant(m, s, 1)
	// Row 0: interior weights at columns 0..2, wrapped tail at m-2..m-1.
	want := []float64{0, 2.0 / 3, -1.0 / 12, 0, 1.0 / 12, -2.0 / 3}
	for j, w := range want {
		if got := a.Get(0, j); got != w {
			t.Errorf("row 0, column %d: got %g, want %g", j, got, w)
		}
	}
	// Every row is the cyclic shift of row 0.
	for i := 1; i < m; i++ {
		for j := 0; j < m; j++ {
			if got, ref := a.Get(i, j), a.Get(0, (j-i+m)%m); got != ref {
				t.Errorf("row %d, column %d: got %g, want shifted %g", i, j, got, ref)
			}
		}
	}
}

func TestCirculantAntisymmetricStencilIsSkew(t *testing.T) {
	t.Parallel()
	const m = 13
	for _, order := range explicitOrders {
		a := circulant(m, d1Interior[order], 1)
		for i := 0; i < m; i++ {
			for j := 0; j < m; j++ {
				if v, vt := a.Get(i, j), a.Get(j, i); v+vt != 0 {
					t.Errorf("order %d: A[%d,%d]+A[%d,%d] = %g, want exactly 0",
						order, i, j, j, i, v+vt)
				}
			}
		}
	}
}

func TestCirculantScale(t *testing.T) {
	t.Parallel()
	const m = 8
	ad := adInterior[2]
	a := circulant(m, ad.s, ad.a)
	if got := a.Get(3, 3); got != -2*ad.a {
		t.Errorf("center weight = %g, want %g", got, -2*ad.a)
	}
	if got := a.Get(3, 4); got != ad.a {
		t.Errorf("off-diagonal weight = %g, want %g", got, ad.a)
	}
}
