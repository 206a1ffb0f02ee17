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
	"errors"
	"fmt"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/hamaluik/pdf-gen/font"
	"github.com/hamaluik/pdf-gen/image"
)

func loadTestFont(t *testing.T) *font.Font {
	t.Helper()
	f, err := font.Load(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestWriteText(t *testing.T) {
	f := loadTestFont(t)

	doc := NewDocument()
	fontID := doc.AddFont(f)

	page := NewPage(A4, EqualMargins(Inches(1)))
	page.AddSpan(Span{
		Text: "Hi",
		Font: SpanFont{Font: fontID, Size: 12},
		X:    72, Y: 700,
	})
	doc.AddPage(page)

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-1.7") {
		t.Errorf("output does not start with a PDF 1.7 header: %q", out[:16])
	}

	// The page content stream is short enough to stay uncompressed,
	// so the encoded text must appear literally in the file.
	want := fmt.Sprintf("<%04x%04x> Tj", f.CID('H'), f.CID('i'))
	if !strings.Contains(out, want) {
		t.Errorf("output does not contain %q", want)
	}
	if f.CID('H') == 0 || f.CID('i') == 0 {
		t.Error("glyphs for used code points missing from the subset")
	}
	if len(doc.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", doc.Warnings())
	}
}

func TestWriteValidationFailure(t *testing.T) {
	doc := NewDocument()
	page := NewPage(Letter, Margins{})
	page.AddSpan(Span{Text: "x", Font: SpanFont{Font: FontID(3), Size: 10}})
	page.AddImage(ImagePlacement{Image: ImageID(5), Rect: Rect{URx: 10, URy: 10}})
	doc.AddPage(page)

	var buf bytes.Buffer
	err := doc.Write(&buf)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var refErr *InvalidReferenceError
	if !errors.As(err, &refErr) {
		t.Errorf("got error %v, want *InvalidReferenceError", err)
	}
	msg := err.Error()
	if !strings.Contains(msg, "font 3") || !strings.Contains(msg, "image 5") {
		t.Errorf("error does not report all problems: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("validation failure wrote %d bytes, want 0", buf.Len())
	}
}

func TestWriteFormCycle(t *testing.T) {
	doc := NewDocument()
	a := NewForm(Rect{URx: 10, URy: 10})
	b := NewForm(Rect{URx: 10, URy: 10})
	idA := doc.AddForm(a)
	idB := doc.AddForm(b)
	a.AddForm(FormPlacement{Form: idB, Transform: Identity})
	b.AddForm(FormPlacement{Form: idA, Transform: Identity})

	page := NewPage(A4, Margins{})
	page.AddForm(FormPlacement{Form: idA, Transform: Identity})
	doc.AddPage(page)

	var buf bytes.Buffer
	err := doc.Write(&buf)
	var cycleErr *CyclicFormError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("got error %v, want *CyclicFormError", err)
	}
	if buf.Len() != 0 {
		t.Errorf("failed write produced %d bytes, want 0", buf.Len())
	}
}

func TestWriteNestedForms(t *testing.T) {
	// Forms may be nested as long as no form places itself.
	doc := NewDocument()
	inner := NewForm(Rect{URx: 10, URy: 10})
	inner.AddRawContent([]byte("0 0 10 10 re f"))
	outer := NewForm(Rect{URx: 100, URy: 100})
	innerID := doc.AddForm(inner)
	outer.AddForm(FormPlacement{Form: innerID, Transform: Scale(2, 2)})
	outerID := doc.AddForm(outer)

	page := NewPage(A4, Margins{})
	page.AddForm(FormPlacement{Form: outerID, Transform: Translate(100, 100)})
	doc.AddPage(page)

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatal(err)
	}
}

func TestWriteConsumesDocument(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(A4, Margins{}))

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatal(err)
	}
	err := doc.Write(&buf)
	if !errors.Is(err, ErrDocumentWritten) {
		t.Errorf("second write: got %v, want ErrDocumentWritten", err)
	}
}

func TestWriteMissingGlyphs(t *testing.T) {
	f := loadTestFont(t)

	doc := NewDocument()
	fontID := doc.AddFont(f)
	page := NewPage(A4, Margins{})
	page.AddSpan(Span{Text: "a中", Font: SpanFont{Font: fontID, Size: 12}, X: 10, Y: 10})
	doc.AddPage(page)

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatal(err)
	}

	warnings := doc.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if warnings[0].Font != fontID || warnings[0].Rune != '中' {
		t.Errorf("unexpected warning %v", warnings[0])
	}
	if f.CID('中') != 0 {
		t.Error("missing code point not mapped to notdef")
	}
}

// brokenSink fails every write, like a full disk.
type brokenSink struct{}

func (brokenSink) Write(p []byte) (int, error) {
	return 0, errors.New("no space left on device")
}

func TestWriteSinkFailure(t *testing.T) {
	f := loadTestFont(t)

	doc := NewDocument()
	fontID := doc.AddFont(f)
	page := NewPage(A4, Margins{})
	page.AddSpan(Span{Text: "a中", Font: SpanFont{Font: fontID, Size: 12}, X: 10, Y: 10})
	doc.AddPage(page)

	err := doc.Write(brokenSink{})
	var sinkErr *SinkWriteError
	if !errors.As(err, &sinkErr) {
		t.Fatalf("got error %v, want *SinkWriteError", err)
	}
	if len(doc.Warnings()) != 1 {
		t.Fatalf("got %d warnings after failed write, want 1", len(doc.Warnings()))
	}

	// the write can be retried with a working sink
	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
	if len(doc.Warnings()) != 1 {
		t.Errorf("got %d warnings after retry, want 1", len(doc.Warnings()))
	}
}

func TestWriteFullDocument(t *testing.T) {
	f := loadTestFont(t)

	doc := NewDocument()
	doc.SetInfo(Info{
		Title:  "Test Document",
		Author: "Jane Doe",
	})
	fontID := doc.AddFont(f)
	imgID := doc.AddImage(image.FromGoImage(testPattern(16, 16)))

	page1 := NewPage(A4, EqualMargins(Inches(1)))
	page1.AddSpan(Span{Text: "first page", Font: SpanFont{Font: fontID, Size: 12}, X: 72, Y: 700})
	page1.AddImage(ImagePlacement{Image: imgID, Rect: Rect{LLx: 72, LLy: 400, URx: 172, URy: 500}})
	id1 := doc.AddPage(page1)

	page2 := NewPage(A4, EqualMargins(Inches(1)))
	page2.AddSpan(Span{Text: "second page", Font: SpanFont{Font: fontID, Size: 12}, X: 72, Y: 700})
	page2.AddLink(Link{Rect: Rect{LLx: 72, LLy: 690, URx: 200, URy: 710}, Target: id1})
	id2 := doc.AddPage(page2)

	top := doc.AddBookmark("First", id1)
	top.AddChild("Second", id2)

	var buf bytes.Buffer
	if err := doc.Write(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty output")
	}
}

func TestBookmarkValidation(t *testing.T) {
	doc := NewDocument()
	doc.AddPage(NewPage(A4, Margins{}))
	doc.AddBookmark("nowhere", PageID(9))

	var buf bytes.Buffer
	err := doc.Write(&buf)
	var refErr *InvalidReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("got error %v, want *InvalidReferenceError", err)
	}
	if refErr.Kind != "page" {
		t.Errorf("got kind %q, want %q", refErr.Kind, "page")
	}
}
