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

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/sfnt/glyph"

	"github.com/hamaluik/pdf-gen/internal/streams"
)

// Font descriptor flags, PDF 32000-1:2008, table 123.
const (
	flagFixedPitch = 1 << 0
	flagSerif      = 1 << 1
	flagSymbolic   = 1 << 2
	flagScript     = 1 << 3
	flagItalic     = 1 << 6
)

// StemV is required in the font descriptor, but its value is not
// recorded in TrueType fonts.  Viewers only use it to darken glyphs at
// small sizes, so a plausible constant is good enough.
const defaultStemV = 80

// Embed writes the font to the PDF file as a composite font with
// Identity-H encoding, embedding the subset chosen by Finalize.  The
// Type0 font dictionary is written at ref.
func (f *Font) Embed(w *pdf.Writer, ref pdf.Reference) error {
	if f.sub == nil {
		return errors.New("font subset not finalized")
	}
	sub := f.sub

	ttf := f.info.Clone()
	ttf.CMapTable = nil
	ttf.Gdef = nil
	ttf.Gsub = nil
	ttf.Gpos = nil
	subsetFont := ttf.Subset(sub.glyphs)

	baseFont := pdf.Name(sub.tag + "+" + f.info.PostScriptName())

	cidFontRef := w.Alloc()
	descriptorRef := w.Alloc()
	fontFileRef := w.Alloc()
	toUnicodeRef := w.Alloc()

	fontDict := pdf.Dict{
		"Type":            pdf.Name("Font"),
		"Subtype":         pdf.Name("Type0"),
		"BaseFont":        baseFont,
		"Encoding":        pdf.Name("Identity-H"),
		"DescendantFonts": pdf.Array{cidFontRef},
		"ToUnicode":       toUnicodeRef,
	}
	if err := w.Put(ref, fontDict); err != nil {
		return err
	}

	// In the subset font, glyph IDs and CIDs coincide.
	dw := math.Round(subsetFont.GlyphWidthPDF(0))
	ww := make([]float64, len(sub.glyphs))
	for i := range sub.glyphs {
		ww[i] = math.Round(subsetFont.GlyphWidthPDF(glyph.ID(i)))
	}

	cidFontDict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("CIDFontType2"),
		"BaseFont": baseFont,
		"CIDSystemInfo": pdf.Dict{
			"Registry":   pdf.String("Adobe"),
			"Ordering":   pdf.String("Identity"),
			"Supplement": pdf.Integer(0),
		},
		"FontDescriptor": descriptorRef,
		"CIDToGIDMap":    pdf.Name("Identity"),
	}
	if dw != 1000 {
		cidFontDict["DW"] = pdf.Real(dw)
	}
	if W := encodeWidths(ww, dw); W != nil {
		cidFontDict["W"] = W
	}
	if err := w.Put(cidFontRef, cidFontDict); err != nil {
		return err
	}

	q := 1000 / float64(subsetFont.UnitsPerEm)
	flags := flagSymbolic
	if subsetFont.IsFixedPitch() {
		flags |= flagFixedPitch
	}
	if subsetFont.IsSerif {
		flags |= flagSerif
	}
	if subsetFont.IsScript {
		flags |= flagScript
	}
	if subsetFont.IsItalic {
		flags |= flagItalic
	}
	bbox := subsetFont.FontBBoxPDF()
	descriptor := pdf.Dict{
		"Type":        pdf.Name("FontDescriptor"),
		"FontName":    baseFont,
		"Flags":       pdf.Integer(flags),
		"FontBBox":    &pdf.Rectangle{LLx: bbox.LLx, LLy: bbox.LLy, URx: bbox.URx, URy: bbox.URy},
		"ItalicAngle": pdf.Real(subsetFont.ItalicAngle),
		"Ascent":      pdf.Real(math.Round(float64(subsetFont.Ascent) * q)),
		"Descent":     pdf.Real(math.Round(float64(subsetFont.Descent) * q)),
		"CapHeight":   pdf.Real(math.Round(float64(subsetFont.CapHeight) * q)),
		"StemV":       pdf.Integer(defaultStemV),
		"FontFile2":   fontFileRef,
	}
	if err := w.Put(descriptorRef, descriptor); err != nil {
		return err
	}

	var program bytes.Buffer
	if _, err := subsetFont.WriteTrueTypePDF(&program); err != nil {
		return fmt.Errorf("font %q: %w", baseFont, err)
	}
	fontFileDict := pdf.Dict{
		"Subtype": pdf.Name("TrueType"),
		"Length1": pdf.Integer(program.Len()),
	}
	if err := streams.Put(w, fontFileRef, fontFileDict, program.Bytes()); err != nil {
		return err
	}

	return streams.Put(w, toUnicodeRef, nil, sub.toUnicode())
}
