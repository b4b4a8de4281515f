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

// Package sbp constructs finite difference differentiation operators on
// uniform 1D grids that satisfy the summation-by-parts (SBP) property,
// for use as building blocks in energy-stable discretizations of
// time-dependent partial differential equations.
//
// Two operator families are provided. For periodic domains there are
// explicit central operators of orders 2, 4, 6, 8, 10 and 12 and a
// tenth-order compact (implicit) operator, each optionally augmented with
// high-order artificial dissipation. For non-periodic domains there are
// upwind operator pairs of orders 3, 5 and 7 with one-sided boundary
// closures. A composer for variable-coefficient second derivatives of the
// form d/dx(c du/dx) is built on top of the periodic explicit family.
//
// Every operator is returned in decomposed form: a norm matrix H defining
// the discrete inner product and a difference matrix Q (or pair Qp, Qm),
// so that the derivative operator is D1 = H⁻¹Q. Matrices are stored in
// sparse form (github.com/ctessum/sparse) and construction is
// O(m·bandwidth) in the number of grid points m.
//
// All constructors are pure functions of their arguments: they share no
// state, perform no I/O and are safe to call concurrently.
package sbp
