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

// Color is a fill color in one of the DeviceGray, DeviceRGB or
// DeviceCMYK color spaces.  All components are in the range 0 to 1.
// The zero value is black in DeviceGray.
type Color struct {
	space colorSpace
	c     [4]float64
}

type colorSpace uint8

const (
	spaceGray colorSpace = iota
	spaceRGB
	spaceCMYK
)

// Gray returns a DeviceGray color.  0 is black, 1 is white.
func Gray(g float64) Color {
	return Color{space: spaceGray, c: [4]float64{g}}
}

// RGB returns a DeviceRGB color.
func RGB(r, g, b float64) Color {
	return Color{space: spaceRGB, c: [4]float64{r, g, b}}
}

// RGBBytes returns a DeviceRGB color with components in the range 0 to 255.
func RGBBytes(r, g, b uint8) Color {
	return RGB(float64(r)/255, float64(g)/255, float64(b)/255)
}

// CMYK returns a DeviceCMYK color.
func CMYK(c, m, y, k float64) Color {
	return Color{space: spaceCMYK, c: [4]float64{c, m, y, k}}
}

// Common colors.
var (
	Black   = Gray(0)
	White   = Gray(1)
	Red     = RGB(1, 0, 0)
	Green   = RGB(0, 1, 0)
	Blue    = RGB(0, 0, 1)
	Cyan    = CMYK(1, 0, 0, 0)
	Magenta = CMYK(0, 1, 0, 0)
	Yellow  = CMYK(0, 0, 1, 0)
)
