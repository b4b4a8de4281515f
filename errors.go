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
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedOrder is returned when the requested order of accuracy
	// is not among the orders tabulated for the operator family.
	ErrUnsupportedOrder = errors.New("unsupported order of accuracy")

	// ErrInvalidGridSize is returned when the grid cannot hold the
	// requested stencil and boundary closures without overlap, or when the
	// grid spacing is not positive. There is no fallback: an operator
	// assembled on such a grid would be silently wrong rather than
	// degraded.
	ErrInvalidGridSize = errors.New("invalid grid")
)

// checkGrid validates the grid parameters shared by every constructor.
// width is the number of points the stencil and closures cover in
// addition to the application point; m must exceed it.
func checkGrid(m int, h float64, width int) error {
	if m <= width {
		return fmt.Errorf("sbp: %d grid points cannot hold a stencil of width %d without overlap: %w",
			m, width, ErrInvalidGridSize)
	}
	if h <= 0 {
		return fmt.Errorf("sbp: grid spacing must be positive but is %g: %w", h, ErrInvalidGridSize)
	}
	return nil
}
