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
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/sfnt/glyph"
)

// subsetInfo describes the frozen glyph subset of an embedded font.
//
// The subset contains the glyphs for all code points used in the
// document, preceded by the notdef glyph.  Glyphs are arranged in order
// of increasing original glyph ID, and each glyph's position in this
// order is both its glyph ID in the subset font and its CID in the PDF
// file.
type subsetInfo struct {
	tag    string
	glyphs []glyph.ID       // subset GID -> original GID
	cid    map[rune]uint16  // code point -> subset GID
	text   map[uint16]rune  // subset GID -> code point, for text extraction
}

// Finalize determines the glyph subset from the set of code points
// used in the document.  It returns the code points for which the font
// has no glyph, in increasing order; these are rendered as notdef.
//
// After Finalize has been called the subset is frozen; further calls
// have no effect and return nil.
func (f *Font) Finalize(used map[rune]struct{}) []rune {
	if f.sub != nil {
		return nil
	}

	gidSet := make(map[glyph.ID]struct{})
	gidSet[0] = struct{}{} // notdef
	runeGID := make(map[rune]glyph.ID)
	var missing []rune
	for r := range used {
		gid := f.cmap.Lookup(r)
		if gid == 0 {
			missing = append(missing, r)
			continue
		}
		gidSet[gid] = struct{}{}
		runeGID[r] = gid
	}
	slices.Sort(missing)

	// To minimise file size, glyphs keep their relative order from the
	// original font.
	glyphs := maps.Keys(gidSet)
	slices.Sort(glyphs)

	subsetGID := make(map[glyph.ID]uint16, len(glyphs))
	for i, gid := range glyphs {
		subsetGID[gid] = uint16(i)
	}

	sub := &subsetInfo{
		tag:    subsetTag(glyphs, f.info.NumGlyphs()),
		glyphs: glyphs,
		cid:    make(map[rune]uint16, len(runeGID)),
		text:   make(map[uint16]rune, len(runeGID)),
	}
	for r, gid := range runeGID {
		sg := subsetGID[gid]
		sub.cid[r] = sg
		// If several code points share a glyph, text extraction uses
		// the smallest one.
		if prev, ok := sub.text[sg]; !ok || r < prev {
			sub.text[sg] = r
		}
	}
	f.sub = sub
	return missing
}

// Finalized reports whether the glyph subset has been frozen.
func (f *Font) Finalized() bool {
	return f.sub != nil
}

// CID returns the character identifier of the given code point in the
// embedded subset.  It returns 0 (notdef) for code points without a
// glyph, and for all code points before Finalize has been called.
func (f *Font) CID(r rune) uint16 {
	if f.sub == nil {
		return 0
	}
	return f.sub.cid[r]
}

// subsetTag derives the six-letter subset tag from the chosen glyphs,
// so that different subsets of the same font get different names.
func subsetTag(glyphs []glyph.ID, numGlyphs int) string {
	X := uint32(numGlyphs)
	for _, gid := range glyphs {
		X = X*11 + uint32(gid)
	}
	var tag [6]byte
	for i := range tag {
		tag[5-i] = 'A' + byte(X%26)
		X /= 26
	}
	return string(tag[:])
}
