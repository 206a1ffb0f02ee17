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

import (
	"bytes"
	"fmt"
	"strconv"
)

// SpanFont selects a registered font at a given size, in points.
type SpanFont struct {
	Font FontID
	Size float64
}

// Span is a positioned run of text.  X and Y give the start of the
// baseline, measured from the bottom-left corner of the page or form.
type Span struct {
	Text  string
	Font  SpanFont
	Color Color
	X, Y  float64
}

// ImagePlacement places a registered image into the given rectangle.
// The image is scaled to fill the rectangle exactly.
type ImagePlacement struct {
	Image ImageID
	Rect  Rect
}

// FormPlacement places a registered form XObject under a transformation.
// A point (x, y) in form coordinates appears at Transform.Apply(x, y) in
// the coordinate system of the surrounding page or form.
type FormPlacement struct {
	Form      FormID
	Transform Transform
}

type contentItem interface {
	isContentItem()
}

type textItem []Span

type imageItem ImagePlacement

type formItem FormPlacement

type rawItem []byte

func (textItem) isContentItem()  {}
func (imageItem) isContentItem() {}
func (formItem) isContentItem()  {}
func (rawItem) isContentItem()   {}

// contents is the ordered list of drawing operations shared between
// pages and form XObjects.
type contents struct {
	items []contentItem
}

// AddSpan appends a span of text, above all previously added content.
func (c *contents) AddSpan(span Span) {
	c.items = append(c.items, textItem{span})
}

// AddSpans appends a group of text spans which share one text state
// block in the content stream.
func (c *contents) AddSpans(spans []Span) {
	if len(spans) == 0 {
		return
	}
	c.items = append(c.items, textItem(spans))
}

// AddImage appends an image placement.
func (c *contents) AddImage(placement ImagePlacement) {
	c.items = append(c.items, imageItem(placement))
}

// AddForm appends a form XObject placement.
func (c *contents) AddForm(placement FormPlacement) {
	c.items = append(c.items, formItem(placement))
}

// AddRawContent appends raw content stream operators.  The bytes are
// copied into the output between "q" and "Q" operators, uncompressed;
// compression is applied to the stream as a whole when the document is
// written.
//
// Fonts must be referred to as /Fn, images as /In and forms as /Xn,
// where n is the numeric value of the corresponding handle.
func (c *contents) AddRawContent(raw []byte) {
	c.items = append(c.items, rawItem(bytes.Clone(raw)))
}

// glyphEncoder maps a code point to the character code of a font's
// embedded subset.  It is only valid after fonts have been finalized.
type glyphEncoder func(f FontID, r rune) uint16

// render converts the accumulated content items into content stream
// operators.
func (c *contents) render(enc glyphEncoder) []byte {
	var buf bytes.Buffer
	for _, item := range c.items {
		switch item := item.(type) {
		case textItem:
			renderText(&buf, item, enc)
		case imageItem:
			fmt.Fprintf(&buf, "q\n%s 0 0 %s %s %s cm\n/I%d Do\nQ\n",
				ftoa(item.Rect.Dx()), ftoa(item.Rect.Dy()),
				ftoa(item.Rect.LLx), ftoa(item.Rect.LLy),
				item.Image)
		case formItem:
			m := item.Transform
			fmt.Fprintf(&buf, "q\n%s %s %s %s %s %s cm\n/X%d Do\nQ\n",
				ftoa(m[0]), ftoa(m[1]), ftoa(m[2]),
				ftoa(m[3]), ftoa(m[4]), ftoa(m[5]),
				item.Form)
		case rawItem:
			buf.WriteString("q\n")
			buf.Write(item)
			buf.WriteString("\nQ\n")
		}
	}
	return buf.Bytes()
}

func renderText(buf *bytes.Buffer, spans textItem, enc glyphEncoder) {
	if len(spans) == 0 {
		return
	}

	buf.WriteString("q\n")

	cur := spans[0]
	writeFontOp(buf, cur.Font)
	writeColorOp(buf, cur.Color)

	for _, span := range spans {
		if span.Font != cur.Font {
			writeFontOp(buf, span.Font)
		}
		if span.Color != cur.Color {
			writeColorOp(buf, span.Color)
		}
		cur = span

		fmt.Fprintf(buf, "BT\n%s %s Td\n<", ftoa(span.X), ftoa(span.Y))
		for _, r := range span.Text {
			fmt.Fprintf(buf, "%04x", enc(span.Font.Font, r))
		}
		buf.WriteString("> Tj\nET\n")
	}

	buf.WriteString("Q\n")
}

func writeFontOp(buf *bytes.Buffer, f SpanFont) {
	fmt.Fprintf(buf, "/F%d %s Tf\n", f.Font, ftoa(f.Size))
}

func writeColorOp(buf *bytes.Buffer, col Color) {
	c := col.c
	switch col.space {
	case spaceRGB:
		fmt.Fprintf(buf, "%s %s %s rg\n", ftoa(c[0]), ftoa(c[1]), ftoa(c[2]))
	case spaceCMYK:
		fmt.Fprintf(buf, "%s %s %s %s k\n", ftoa(c[0]), ftoa(c[1]), ftoa(c[2]), ftoa(c[3]))
	default:
		fmt.Fprintf(buf, "%s g\n", ftoa(c[0]))
	}
}

// ftoa formats a number for use in a content stream.  PDF numbers must
// not use exponent notation.
func ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
