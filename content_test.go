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
	"testing"
)

// identityEncoder maps every code point to its own value, standing in
// for a finalized font.
func identityEncoder(_ FontID, r rune) uint16 {
	return uint16(r)
}

func TestRenderImagePlacement(t *testing.T) {
	var c contents
	c.AddImage(ImagePlacement{
		Image: 0,
		Rect:  Rect{LLx: 10, LLy: 20, URx: 110, URy: 70},
	})
	got := string(c.render(identityEncoder))
	want := "q\n100 0 0 50 10 20 cm\n/I0 Do\nQ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderHalfScaleImage(t *testing.T) {
	// an 80x60 pixel image drawn at half size
	var c contents
	c.AddImage(ImagePlacement{
		Image: 2,
		Rect:  Rect{LLx: 0, LLy: 0, URx: 40, URy: 30},
	})
	got := string(c.render(identityEncoder))
	want := "q\n40 0 0 30 0 0 cm\n/I2 Do\nQ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderFormPlacement(t *testing.T) {
	var c contents
	c.AddForm(FormPlacement{
		Form:      1,
		Transform: Scale(2, 2).Translated(5, 7),
	})
	got := string(c.render(identityEncoder))
	want := "q\n2 0 0 2 5 7 cm\n/X1 Do\nQ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderText(t *testing.T) {
	var c contents
	c.AddSpan(Span{
		Text: "Hi",
		Font: SpanFont{Font: 0, Size: 12},
		X:    72, Y: 700,
	})
	got := string(c.render(identityEncoder))
	want := "q\n/F0 12 Tf\n0 g\nBT\n72 700 Td\n<00480069> Tj\nET\nQ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderSpanGroup(t *testing.T) {
	// Spans sharing font and color set the text state only once.
	var c contents
	c.AddSpans([]Span{
		{Text: "a", Font: SpanFont{Font: 1, Size: 10}, Color: Red, X: 0, Y: 50},
		{Text: "b", Font: SpanFont{Font: 1, Size: 10}, Color: Red, X: 0, Y: 40},
		{Text: "c", Font: SpanFont{Font: 1, Size: 14}, Color: Red, X: 0, Y: 30},
	})
	got := string(c.render(identityEncoder))
	want := "q\n" +
		"/F1 10 Tf\n1 0 0 rg\n" +
		"BT\n0 50 Td\n<0061> Tj\nET\n" +
		"BT\n0 40 Td\n<0062> Tj\nET\n" +
		"/F1 14 Tf\n" +
		"BT\n0 30 Td\n<0063> Tj\nET\n" +
		"Q\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderRawContent(t *testing.T) {
	var c contents
	c.AddRawContent([]byte("0 0 100 100 re f"))
	got := string(c.render(identityEncoder))
	want := "q\n0 0 100 100 re f\nQ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderNoExponents(t *testing.T) {
	// PDF numbers must not use exponent notation.
	var c contents
	c.AddForm(FormPlacement{Form: 0, Transform: Scale(1e-7, 1e21)})
	got := string(c.render(identityEncoder))
	for _, b := range []byte(got) {
		if b == 'e' || b == 'E' {
			t.Fatalf("exponent notation in content stream: %q", got)
		}
	}
}
