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

import "seehuhn.de/go/pdf"

// All coordinates and lengths in this library are in PDF default user
// space units ("points", 1/72 inch), with the origin at the bottom-left
// corner of the page.

// Inches converts a length in inches to points.
func Inches(v float64) float64 {
	return v * 72
}

// Millimeters converts a length in millimeters to points.
func Millimeters(v float64) float64 {
	return v * 72 / 25.4
}

// Rect is a rectangle in page coordinates, given by two opposite corners.
// (LLx, LLy) is the lower-left corner, (URx, URy) the upper-right one.
type Rect struct {
	LLx, LLy, URx, URy float64
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() float64 {
	return r.URx - r.LLx
}

// Dy returns the height of the rectangle.
func (r Rect) Dy() float64 {
	return r.URy - r.LLy
}

func (r Rect) toPDF() *pdf.Rectangle {
	return &pdf.Rectangle{LLx: r.LLx, LLy: r.LLy, URx: r.URx, URy: r.URy}
}

// Margins describes the space between the edges of a page and its
// content box.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// EqualMargins returns margins with the same width on all four sides.
func EqualMargins(v float64) Margins {
	return Margins{Top: v, Right: v, Bottom: v, Left: v}
}

// SymmetricMargins returns margins with the given vertical width at the
// top and bottom, and the given horizontal width at the left and right.
func SymmetricMargins(vertical, horizontal float64) Margins {
	return Margins{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// PageSize is the size of a page, in points.
type PageSize struct {
	Width, Height float64
}

// Portrait returns the size in portrait orientation (width <= height).
func (s PageSize) Portrait() PageSize {
	if s.Width <= s.Height {
		return s
	}
	return PageSize{Width: s.Height, Height: s.Width}
}

// Landscape returns the size in landscape orientation (width >= height).
func (s PageSize) Landscape() PageSize {
	if s.Width >= s.Height {
		return s
	}
	return PageSize{Width: s.Height, Height: s.Width}
}

// Common paper sizes.  The ISO A series is converted from millimeters,
// everything else is defined in inches.
var (
	Letter      = PageSize{Width: 8.5 * 72, Height: 11 * 72}
	HalfLetter  = PageSize{Width: 5.5 * 72, Height: 8.5 * 72}
	JuniorLegal = PageSize{Width: 5 * 72, Height: 8 * 72}
	Legal       = PageSize{Width: 8.5 * 72, Height: 13 * 72}
	Tabloid     = PageSize{Width: 11 * 72, Height: 17 * 72}
	Ledger      = PageSize{Width: 17 * 72, Height: 11 * 72}

	ANSIA = PageSize{Width: 8.5 * 72, Height: 11 * 72}
	ANSIB = PageSize{Width: 11 * 72, Height: 17 * 72}
	ANSIC = PageSize{Width: 17 * 72, Height: 22 * 72}
	ANSID = PageSize{Width: 22 * 72, Height: 34 * 72}
	ANSIE = PageSize{Width: 34 * 72, Height: 44 * 72}

	Folio  = PageSize{Width: 12 * 72, Height: 19 * 72}
	Quarto = PageSize{Width: 9.5 * 72, Height: 12 * 72}
	Octavo = PageSize{Width: 6 * 72, Height: 9 * 72}

	A0 = PageSize{Width: 841 * 72 / 25.4, Height: 1189 * 72 / 25.4}
	A1 = PageSize{Width: 594 * 72 / 25.4, Height: 841 * 72 / 25.4}
	A2 = PageSize{Width: 420 * 72 / 25.4, Height: 594 * 72 / 25.4}
	A3 = PageSize{Width: 297 * 72 / 25.4, Height: 420 * 72 / 25.4}
	A4 = PageSize{Width: 210 * 72 / 25.4, Height: 297 * 72 / 25.4}
	A5 = PageSize{Width: 148 * 72 / 25.4, Height: 210 * 72 / 25.4}
	A6 = PageSize{Width: 105 * 72 / 25.4, Height: 148 * 72 / 25.4}
)
