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

// Package layout breaks text into lines and positions it inside
// rectangular regions.
package layout

import (
	"strings"

	pdfgen "github.com/hamaluik/pdf-gen"
	"github.com/hamaluik/pdf-gen/font"
)

// tabWidth is the number of spaces a tab expands to.
const tabWidth = 4

// Text bundles the style applied to a piece of flowed text.  Font and
// ID must refer to the same font: Font is used for measuring, ID ends
// up in the produced spans.
type Text struct {
	Font  *font.Font
	ID    pdfgen.FontID
	Size  float64
	Color pdfgen.Color
}

// Flow typesets content into the given area, top to bottom, breaking
// lines at word boundaries.  Lines break after spaces and hyphens;
// words wider than the area are broken mid-word.  Newlines in content
// force line breaks, tabs expand to four spaces, and both "\r\n" and
// "\r" are treated as "\n".
//
// The returned spans are positioned in page coordinates, ready for
// [pdfgen.Page.AddSpans].  If the area cannot hold all of the content,
// the part that did not fit is returned; flowing it into another area
// continues the text.
func Flow(t Text, content string, area pdfgen.Rect) ([]pdfgen.Span, string) {
	return flow(t, content, area, true)
}

// FlowChars typesets content into the given area like [Flow], but
// breaks lines at any character instead of at word boundaries.
func FlowChars(t Text, content string, area pdfgen.Rect) ([]pdfgen.Span, string) {
	return flow(t, content, area, false)
}

func flow(t Text, content string, area pdfgen.Rect, wordWrap bool) ([]pdfgen.Span, string) {
	s := normalize(content)

	ascent := t.Font.Ascent(t.Size)
	descent := t.Font.Descent(t.Size)
	lineHeight := t.Font.LineHeight(t.Size)

	var spans []pdfgen.Span
	y := area.URy - ascent
	pos := 0
	for pos < len(s) {
		if y+descent < area.LLy {
			break
		}
		line, next := nextLine(t.Font, t.Size, s[pos:], area.Dx(), wordWrap)
		if line != "" {
			spans = append(spans, pdfgen.Span{
				Text:  line,
				Font:  pdfgen.SpanFont{Font: t.ID, Size: t.Size},
				Color: t.Color,
				X:     area.LLx,
				Y:     y,
			})
		}
		pos += next
		y -= lineHeight
	}
	return spans, s[pos:]
}

// nextLine determines the longest prefix of s that fits into the given
// width as one line.  It returns the text of the line and the number
// of bytes consumed, including any line break.
func nextLine(f *font.Font, size float64, s string, width float64, wordWrap bool) (string, int) {
	var lineWidth float64
	breakAt := -1 // byte offset of the last break opportunity

	for i, r := range s {
		if r == '\n' {
			return s[:i], i + 1
		}

		w, _ := f.GlyphAdvance(r, size)

		// Spaces never overflow a line: trailing spaces are invisible,
		// and the position after them is a break opportunity.
		if wordWrap && r == ' ' {
			lineWidth += w
			breakAt = i + 1
			continue
		}

		if lineWidth+w > width && i > 0 {
			if wordWrap && breakAt >= 0 {
				// breaking spaces are consumed, not rendered
				return strings.TrimRight(s[:breakAt], " "), breakAt
			}
			return s[:i], i
		}
		lineWidth += w

		if wordWrap && r == '-' {
			breakAt = i + 1
		}
	}
	return s, len(s)
}

// normalize canonicalizes line endings and expands tabs.
func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	return s
}

// Height returns the vertical space needed to flow n lines of text in
// the given style.
func Height(t Text, n int) float64 {
	if n <= 0 {
		return 0
	}
	return t.Font.Ascent(t.Size) - t.Font.Descent(t.Size) +
		float64(n-1)*t.Font.LineHeight(t.Size)
}
