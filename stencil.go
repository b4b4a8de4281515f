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

// stencil holds the weights of a one-dimensional finite difference
// stencil. The weights d cover the offsets -l..r relative to the point of
// application, so len(d) == l+r+1 and d[l] is the center weight.
type stencil struct {
	l, r int
	d    []float64
}

// width is the number of neighbors the stencil touches; a grid must have
// more than width points for the stencil to fit without overlapping
// itself.
func (s stencil) width() int { return s.l + s.r }

// d1Interior are the centered, antisymmetric interior stencils of the
// explicit periodic first-derivative operators, keyed by order of
// accuracy.
var d1Interior = map[int]stencil{
	2: {l: 1, r: 1, d: []float64{-1.0 / 2, 0, 1.0 / 2}},
	4: {l: 2, r: 2, d: []float64{1.0 / 12, -2.0 / 3, 0, 2.0 / 3, -1.0 / 12}},
	6: {l: 3, r: 3, d: []float64{-1.0 / 60, 3.0 / 20, -3.0 / 4, 0, 3.0 / 4, -3.0 / 20, 1.0 / 60}},
	8: {l: 4, r: 4, d: []float64{1.0 / 280, -4.0 / 105, 1.0 / 5, -4.0 / 5, 0,
		4.0 / 5, -1.0 / 5, 4.0 / 105, -1.0 / 280}},
	10: {l: 5, r: 5, d: []float64{-1.0 / 1260, 5.0 / 504, -5.0 / 84, 5.0 / 21, -5.0 / 6, 0,
		5.0 / 6, -5.0 / 21, 5.0 / 84, -5.0 / 504, 1.0 / 1260}},
	12: {l: 6, r: 6, d: []float64{1.0 / 5544, -1.0 / 385, 1.0 / 56, -5.0 / 63, 15.0 / 56, -6.0 / 7, 0,
		6.0 / 7, -15.0 / 56, 5.0 / 63, -1.0 / 56, 1.0 / 385, -1.0 / 5544}},
}

// dissipation pairs a sign-alternating even-derivative stencil (binomial
// coefficient pattern) with its fixed scale coefficient a. Subtracting
// a·S from Q damps unresolved high-frequency modes without changing the
// consistency order of the base operator.
type dissipation struct {
	s stencil
	a float64
}

// adInterior are the artificial dissipation stencils matching each
// explicit operator order. The signs are chosen so that the subtracted
// term is dissipative for either parity of the underlying even
// derivative.
var adInterior = map[int]dissipation{
	2: {a: 1.0 / 2, s: stencil{l: 1, r: 1, d: []float64{1, -2, 1}}},
	4: {a: 1.0 / 12, s: stencil{l: 2, r: 2, d: []float64{-1, 4, -6, 4, -1}}},
	6: {a: 1.0 / 60, s: stencil{l: 3, r: 3, d: []float64{1, -6, 15, -20, 15, -6, 1}}},
	8: {a: 1.0 / 280, s: stencil{l: 4, r: 4, d: []float64{-1, 8, -28, 56, -70, 56, -28, 8, -1}}},
	10: {a: 1.0 / 1260, s: stencil{l: 5, r: 5,
		d: []float64{1, -10, 45, -120, 210, -252, 210, -120, 45, -10, 1}}},
	12: {a: 1.0 / 5544, s: stencil{l: 6, r: 6,
		d: []float64{-1, 12, -66, 220, -495, 792, -924, 792, -495, 220, -66, 12, -1}}},
}

// Tenth-order compact (implicit) scheme band coefficients. Both H and Q
// are banded with half-width 5; the rationals must be transcribed exactly
// for H to stay symmetric positive definite and Q skew-symmetric.
const (
	cmpH0 = 4203267613564094932432577824954.0 / 7049220443079284250976145948443.0
	cmpH1 = 22618790744689935699264926210401.0 / 84590645316951411011713751381316.0
	cmpH2 = -2209778222820418388602425303685.0 / 42295322658475705505856875690658.0
	cmpH3 = -1581945765.0 / 75409415044.0
	cmpH4 = 228992488.0 / 33235651987.0
	cmpH5 = 27214243.0 / 33751459947.0

	cmpQ1 = 9607266784889201296177.0 / 19560081711822931675052.0
	cmpQ2 = 8866705546306148289391.0 / 97800408559114658375260.0
	cmpQ3 = -19659090145677941034997.0 / 293401225677343975125780.0
	cmpQ4 = 127051314.0 / 37983174851.0
	cmpQ5 = 389910724.0 / 128741750713.0
)

var (
	compactH = stencil{l: 5, r: 5,
		d: []float64{cmpH5, cmpH4, cmpH3, cmpH2, cmpH1, cmpH0, cmpH1, cmpH2, cmpH3, cmpH4, cmpH5}}
	compactQ = stencil{l: 5, r: 5,
		d: []float64{-cmpQ5, -cmpQ4, -cmpQ3, -cmpQ2, -cmpQ1, 0, cmpQ1, cmpQ2, cmpQ3, cmpQ4, cmpQ5}}
)

// upwindTable collects the pieces of a one-sided operator pair: the
// asymmetric interior stencil of Qp, the boundary weights of the diagonal
// norm H (mirrored in reverse at the far end of the grid) and the dense
// boundary closure block Qu that overrides the interior stencil on the
// leading len(hb)×len(hb) corner.
type upwindTable struct {
	interior stencil
	hb       []float64
	qu       [][]float64
}

func (t upwindTable) blockSize() int { return len(t.hb) }

var upwindTables = map[int]upwindTable{
	3: {
		interior: stencil{l: 1, r: 2, d: []float64{-1.0 / 3, -1.0 / 2, 1, -1.0 / 6}},
		hb: []float64{
			4347899357.0 / 12695947216.0,
			12032349023.0 / 9521960412.0,
			32831414215.0 / 38087841648.0,
			6550489565.0 / 6347973608.0,
		},
		qu: [][]float64{
			{-847.0 / 37560, 79604458492699.0 / 119214944358240.0,
				-1643521867663.0 / 14901868044780.0, -4160444549287.0 / 119214944358240.0},
			{-22671019561497.0 / 39738314786080.0, -6023.0 / 37560,
				91628011326497.0 / 119214944358240.0, -749671686919.0 / 19869157393040.0},
			{63495586071.0 / 1241822337065.0, -16644840223051.0 / 39738314786080.0,
				-4311.0 / 12520, 104757273135509.0 / 119214944358240.0},
			{4998377065543.0 / 119214944358240.0, -5276507651527.0 / 59607472179120.0,
				-12476888349687.0 / 39738314786080.0, -5919.0 / 12520},
		},
	},
	5: {
		interior: stencil{l: 2, r: 3,
			d: []float64{1.0 / 20, -1.0 / 2, -1.0 / 3, 1, -1.0 / 4, 1.0 / 30}},
		hb: []float64{251.0 / 720, 299.0 / 240, 211.0 / 240, 739.0 / 720},
		qu: [][]float64{
			{-1.0 / 120, 941.0 / 1440, -47.0 / 360, -7.0 / 480},
			{-869.0 / 1440, -11.0 / 120, 25.0 / 32, -43.0 / 360},
			{29.0 / 360, -17.0 / 32, -29.0 / 120, 1309.0 / 1440},
			{1.0 / 32, -11.0 / 360, -661.0 / 1440, -13.0 / 40},
		},
	},
	7: {
		interior: stencil{l: 3, r: 4,
			d: []float64{-1.0 / 105, 1.0 / 10, -3.0 / 5, -1.0 / 4, 1, -3.0 / 10, 1.0 / 15, -1.0 / 140}},
		hb: []float64{
			19087.0 / 60480, 84199.0 / 60480, 18869.0 / 30240,
			37621.0 / 30240, 55031.0 / 60480, 61343.0 / 60480,
		},
		qu: [][]float64{
			{-265.0 / 300272, 1587945773.0 / 2432203200.0, -1926361.0 / 25737600.0,
				-84398989.0 / 810734400.0, 48781961.0 / 4864406400.0, 3429119.0 / 202683600.0},
			{-1570125773.0 / 2432203200.0, -26517.0 / 1501360, 240029831.0 / 486440640.0,
				202934303.0 / 972881280.0, 118207.0 / 13512240.0, -231357719.0 / 4864406400.0},
			{1626361.0 / 25737600.0, -206937767.0 / 486440640.0, -61067.0 / 750680,
				49602727.0 / 81073440.0, -43783933.0 / 194576256.0, 51815011.0 / 810734400.0},
			{91418989.0 / 810734400.0, -53314099.0 / 194576256.0, -33094279.0 / 81073440.0,
				-18269.0 / 107240, 440626231.0 / 486440640.0, -365711063.0 / 1621468800.0},
			{-62551961.0 / 4864406400.0, 799.0 / 35280, 82588241.0 / 972881280.0,
				-279245719.0 / 486440640.0, -346583.0 / 1501360, 2312302333.0 / 2432203200.0},
			{-3375119.0 / 202683600.0, 202087559.0 / 4864406400.0, -11297731.0 / 810734400.0,
				61008503.0 / 1621468800.0, -1360092253.0 / 2432203200.0, -10677.0 / 42896},
		},
	},
}
