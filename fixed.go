// seehuhn.de/go/polyfill - scan conversion of integer polygons
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package polyfill

import (
	"fmt"
	"strconv"
)

// Precision is the number of fractional bits of a Fixed value.
const Precision = 16

const (
	fixedOne  Fixed = 1 << Precision
	fixedHalf Fixed = 1 << (Precision - 1)
)

// Fixed is a signed 47.16 fixed-point number. The zero value is 0.
//
// Fixed is used for the y-intersections and slopes of active edges.
// Repeatedly adding a Fixed slope gives the same result on every
// platform, which is not true for floating point accumulation.
type Fixed int64

// FixedFromInt returns n as a Fixed value.  The conversion is exact.
func FixedFromInt(n int) Fixed {
	return Fixed(n) << Precision
}

// Add returns a+b.
func (a Fixed) Add(b Fixed) Fixed {
	return a + b
}

// Mul returns a·b, truncated to Precision fractional bits.
func (a Fixed) Mul(b Fixed) Fixed {
	return (a * b) >> Precision
}

// MulInt returns a·k.
func (a Fixed) MulInt(k int) Fixed {
	return a * Fixed(k)
}

// Div returns a/b.  The numerator is promoted by 2^Precision before the
// integer division, so that the quotient keeps Precision fractional bits.
// Div panics if b is zero.
func (a Fixed) Div(b Fixed) Fixed {
	return (a << Precision) / b
}

// Less reports whether a < b.
func (a Fixed) Less(b Fixed) bool {
	return a < b
}

// Round returns a rounded to the nearest integer, with halves rounded up.
//
// The receiver must be non-negative.  Round panics otherwise.
func (a Fixed) Round() int {
	if a < 0 {
		panic(fmt.Sprintf("polyfill: Round of negative value %s", a))
	}
	return int((a + fixedHalf) >> Precision)
}

// Float64 returns the value of a as a float64.
func (a Fixed) Float64() float64 {
	return float64(a) / float64(fixedOne)
}

func (a Fixed) String() string {
	return strconv.FormatFloat(a.Float64(), 'f', -1, 64)
}
