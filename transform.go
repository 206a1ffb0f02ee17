// pdf-gen - a library for generating PDF documents
// Copyright (C) 2026  The pdf-gen authors
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

package pdfgen

import "math"

// Transform is a PDF transformation matrix.  The elements are stored in
// the same order as for the "cm" operator.
//
// If M = [a b c d e f] is a [Transform], then M corresponds to the
// following 3x3 matrix:
//
//	/ a b 0 \
//	| c d 0 |
//	\ e f 1 /
//
// A vector (x, y, 1) is transformed by M into
//
//	(x y 1) * M = (a*x+c*y+e, b*x+d*y+f, 1)
//
// Row vectors multiply from the left, so in a product A.Mul(B) the
// transformation A is applied first, then B.  This convention is used
// throughout the library.
type Transform [6]float64

// Identity is the identity transformation.
var Identity = Transform{1, 0, 0, 1, 0, 0}

// Translate moves the origin of the coordinate system.
func Translate(dx, dy float64) Transform {
	return Transform{1, 0, 0, 1, dx, dy}
}

// Scale scales the coordinate system.
//
// Drawing the unit square [0, 1] x [0, 1] after applying this
// transformation is equivalent to drawing the rectangle
// [0, xScale] x [0, yScale] in the original coordinate system.
func Scale(xScale, yScale float64) Transform {
	return Transform{xScale, 0, 0, yScale, 0, 0}
}

// Rotate rotates the coordinate system by the given angle (in radians),
// counter-clockwise.
func Rotate(phi float64) Transform {
	c := math.Cos(phi)
	s := math.Sin(phi)
	return Transform{c, s, -s, c, 0, 0}
}

// Apply applies the transformation matrix to the given vector.
func (M Transform) Apply(x, y float64) (float64, float64) {
	return x*M[0] + y*M[2] + M[4], x*M[1] + y*M[3] + M[5]
}

// Mul multiplies two transformation matrices and returns the result.
// The result is equivalent to first applying M and then B.
func (M Transform) Mul(B Transform) Transform {
	return Transform{
		M[0]*B[0] + M[1]*B[2],
		M[0]*B[1] + M[1]*B[3],
		M[2]*B[0] + M[3]*B[2],
		M[2]*B[1] + M[3]*B[3],
		M[4]*B[0] + M[5]*B[2] + B[4],
		M[4]*B[1] + M[5]*B[3] + B[5],
	}
}

// Translated returns the transformation M followed by a translation.
func (M Transform) Translated(dx, dy float64) Transform {
	return M.Mul(Translate(dx, dy))
}

// Scaled returns the transformation M followed by a scale.
func (M Transform) Scaled(xScale, yScale float64) Transform {
	return M.Mul(Scale(xScale, yScale))
}

// Rotated returns the transformation M followed by a rotation (in
// radians, counter-clockwise).
func (M Transform) Rotated(phi float64) Transform {
	return M.Mul(Rotate(phi))
}
