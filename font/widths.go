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

package font

import "seehuhn.de/go/pdf"

// encodeWidths builds the W array of a CIDFont dictionary from the
// widths of the CIDs 0, 1, 2, ....  Runs of equal widths are encoded
// in the "first last width" form, and widths equal to the default
// width dw are omitted.  The function returns nil if all widths equal
// dw.
func encodeWidths(ww []float64, dw float64) pdf.Array {
	// runLength returns the number of consecutive entries starting at
	// i which share the width ww[i].
	runLength := func(i int) int {
		j := i
		for j < len(ww) && ww[j] == ww[i] {
			j++
		}
		return j - i
	}

	var W pdf.Array
	i := 0
	for i < len(ww) {
		if ww[i] == dw {
			i++
			continue
		}
		if n := runLength(i); n >= 3 {
			W = append(W, pdf.Integer(i), pdf.Integer(i+n-1), pdf.Real(ww[i]))
			i += n
			continue
		}

		// A block of irregular widths, listed one by one.
		var block pdf.Array
		start := i
		for i < len(ww) && ww[i] != dw {
			n := runLength(i)
			if n >= 3 {
				break
			}
			for k := 0; k < n; k++ {
				block = append(block, pdf.Real(ww[i]))
			}
			i += n
		}
		W = append(W, pdf.Integer(start), block)
	}
	return W
}
