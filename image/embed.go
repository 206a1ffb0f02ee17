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
	"seehuhn.de/go/pdf"
)

// Embed writes the image to the PDF file as an image XObject at ref.
//
// JPEG input is embedded unchanged, using the DCTDecode filter.  Other
// images are written as Flate-compressed RGB samples; if the image has
// an alpha channel, it is attached as a DeviceGray soft mask.
func (im *Image) Embed(w *pdf.Writer, ref pdf.Reference) error {
	if im.jpegData != nil {
		return im.embedJPEG(w, ref)
	}
	return im.embedPixels(w, ref)
}

func (im *Image) embedJPEG(w *pdf.Writer, ref pdf.Reference) error {
	colorSpace := pdf.Name("DeviceRGB")
	if im.jpegGray {
		colorSpace = pdf.Name("DeviceGray")
	}
	stm, err := w.OpenStream(ref, pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(im.width),
		"Height":           pdf.Integer(im.height),
		"ColorSpace":       colorSpace,
		"BitsPerComponent": pdf.Integer(8),
		"Filter":           pdf.Name("DCTDecode"),
	})
	if err != nil {
		return err
	}
	if _, err := stm.Write(im.jpegData); err != nil {
		stm.Close()
		return err
	}
	return stm.Close()
}

func (im *Image) embedPixels(w *pdf.Writer, ref pdf.Reference) error {
	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(im.width),
		"Height":           pdf.Integer(im.height),
		"ColorSpace":       pdf.Name("DeviceRGB"),
		"BitsPerComponent": pdf.Integer(8),
	}

	var maskRef pdf.Reference
	if im.hasAlpha {
		maskRef = w.Alloc()
		dict["SMask"] = maskRef
	}

	stm, err := w.OpenStream(ref, dict, pdf.FilterCompress{})
	if err != nil {
		return err
	}
	pix := im.pixels.Pix
	row := make([]byte, 0, 3*im.width)
	var alpha []byte
	if im.hasAlpha {
		alpha = make([]byte, 0, im.width*im.height)
	}
	for y := 0; y < im.height; y++ {
		row = row[:0]
		base := y * im.pixels.Stride
		for x := 0; x < im.width; x++ {
			p := base + 4*x
			row = append(row, pix[p], pix[p+1], pix[p+2])
			if im.hasAlpha {
				alpha = append(alpha, pix[p+3])
			}
		}
		if _, err := stm.Write(row); err != nil {
			stm.Close()
			return err
		}
	}
	if err := stm.Close(); err != nil {
		return err
	}

	if !im.hasAlpha {
		return nil
	}

	stm, err = w.OpenStream(maskRef, pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(im.width),
		"Height":           pdf.Integer(im.height),
		"ColorSpace":       pdf.Name("DeviceGray"),
		"BitsPerComponent": pdf.Integer(8),
	}, pdf.FilterCompress{})
	if err != nil {
		return err
	}
	if _, err := stm.Write(alpha); err != nil {
		stm.Close()
		return err
	}
	return stm.Close()
}
