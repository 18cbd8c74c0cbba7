/*
Copyright © 2024 the MeanOpac authors.
This file is part of MeanOpac.

MeanOpac is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

MeanOpac is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with MeanOpac.  If not, see <http://www.gnu.org/licenses/>.
*/

package meanopac

import "math"

// minNormal is the smallest positive normal float64.
const minNormal = 2.2250738585072014e-308

// Small is a value that is negligible compared to any physical quantity.
// It offsets logarithms and divisions away from zero.
const Small = 10 * minNormal

// ToLog returns log10(|x| + Small). It is finite for every finite x.
func ToLog(x float64) float64 {
	return math.Log10(math.Abs(x) + Small)
}

// FromLog returns 10^lx.
func FromLog(lx float64) float64 {
	return math.Pow(10, lx)
}

// Sgn returns 1 if x >= 0 and -1 otherwise.
func Sgn(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// Ratio returns a/b with b pushed away from zero by Small, so that the
// result is finite whenever a is.
func Ratio(a, b float64) float64 {
	return a / (b + Sgn(b)*Small)
}
