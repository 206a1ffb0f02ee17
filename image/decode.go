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

package image

import (
	"image"
	"image/color"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// jpegPassthrough decides whether JPEG data can be copied into the PDF
// file without re-encoding.  This works for YCbCr (decoded to RGB) and
// grayscale images; CMYK JPEG uses inverted component values in Adobe
// files and is re-encoded instead.
func jpegPassthrough(data []byte, cfg image.Config) (*Image, bool) {
	switch cfg.ColorModel {
	case color.YCbCrModel:
		return &Image{
			width:    cfg.Width,
			height:   cfg.Height,
			jpegData: data,
		}, true
	case color.GrayModel:
		return &Image{
			width:    cfg.Width,
			height:   cfg.Height,
			jpegData: data,
			jpegGray: true,
		}, true
	}
	return nil, false
}
