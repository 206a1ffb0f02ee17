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

// Package font loads TrueType fonts and embeds subsets of them into
// PDF files as composite fonts.
package font

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
)

// A Font is a TrueType font loaded into memory, together with the
// subset of its glyphs used by a document.
//
// The same *Font value must not be shared between documents: the glyph
// subset is determined by the document which embeds the font.
type Font struct {
	data []byte
	info *sfnt.Font
	cmap cmap.Subtable

	sub *subsetInfo
}

// Load parses a TrueType font from the given data.  The font must have
// glyf outlines and a usable character map.
func Load(data []byte) (*Font, error) {
	data = bytes.Clone(data)
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing font program: %w", err)
	}
	if !info.IsGlyf() {
		return nil, errors.New("font has no TrueType outlines")
	}
	if info.CMapTable == nil {
		return nil, errors.New("font has no character map")
	}
	sub, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("reading character map: %w", err)
	}
	return &Font{data: data, info: info, cmap: sub}, nil
}

// LoadFile loads a TrueType font from the named file.
func LoadFile(name string) (*Font, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	f, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// PostScriptName returns the PostScript name of the font.
func (f *Font) PostScriptName() string {
	return f.info.PostScriptName()
}

// Fingerprint returns a digest of the raw font program.  Two fonts
// loaded from equal data have equal fingerprints.
func (f *Font) Fingerprint() [sha256.Size]byte {
	return sha256.Sum256(f.data)
}

// scale converts a value in font design units to text space units for
// the given font size.
func (f *Font) scale(size float64) float64 {
	return size / float64(f.info.UnitsPerEm)
}

// Ascent returns the distance from the baseline to the top of the
// font, for the given font size.
func (f *Font) Ascent(size float64) float64 {
	return float64(f.info.Ascent) * f.scale(size)
}

// Descent returns the distance from the baseline to the bottom of the
// font, for the given font size.  The value is negative.
func (f *Font) Descent(size float64) float64 {
	return float64(f.info.Descent) * f.scale(size)
}

// LineGap returns the recommended extra space between lines of text,
// for the given font size.
func (f *Font) LineGap(size float64) float64 {
	return float64(f.info.LineGap) * f.scale(size)
}

// LineHeight returns the default baseline-to-baseline distance for the
// given font size.
func (f *Font) LineHeight(size float64) float64 {
	return f.Ascent(size) - f.Descent(size) + f.LineGap(size)
}

// CapHeight returns the height of capital letters above the baseline,
// for the given font size.
func (f *Font) CapHeight(size float64) float64 {
	return float64(f.info.CapHeight) * f.scale(size)
}

// HasGlyph reports whether the font has a glyph for the given code
// point.
func (f *Font) HasGlyph(r rune) bool {
	return f.cmap.Lookup(r) != 0
}

// GlyphAdvance returns the horizontal advance of the glyph for the
// given code point, for the given font size.  If the font has no glyph
// for the code point, the advance of the notdef glyph is returned and
// the second return value is false.
func (f *Font) GlyphAdvance(r rune, size float64) (float64, bool) {
	gid := f.cmap.Lookup(r)
	w := f.info.GlyphWidthPDF(gid) / 1000 * size
	return w, gid != 0
}

// TextWidth returns the width of s when typeset in this font at the
// given size, without kerning or shaping.
func (f *Font) TextWidth(s string, size float64) float64 {
	var total float64
	for _, r := range s {
		w, _ := f.GlyphAdvance(r, size)
		total += w
	}
	return total
}
