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
	"slices"

	"github.com/hamaluik/pdf-gen/font"
	"github.com/hamaluik/pdf-gen/image"
)

// FontID identifies a font registered with a document.
type FontID int

// ImageID identifies an image registered with a document.
type ImageID int

// FormID identifies a form XObject registered with a document.
type FormID int

// PageID identifies a page added to a document.  Page handles stay
// valid when other pages are inserted or reordered.
type PageID int

// A Document accumulates pages, fonts, images, forms, bookmarks and
// metadata, and is turned into a PDF file by a single call to
// [Document.Write].
//
// A Document is not safe for concurrent use.
type Document struct {
	// Info is the document metadata.  It may be set directly or via
	// [Document.SetInfo].
	Info Info

	pages     []*Page  // indexed by PageID
	pageOrder []PageID // display order

	fonts    []*font.Font
	fontIDs  map[[32]byte]FontID
	images   []*image.Image
	imageIDs map[[32]byte]ImageID
	forms    []*Form
	formIDs  map[*Form]FormID

	outline []*Bookmark

	warnings  []MissingGlyphWarning
	finalized bool
	written   bool
}

// NewDocument creates a new, empty document.
func NewDocument() *Document {
	return &Document{
		fontIDs:  make(map[[32]byte]FontID),
		imageIDs: make(map[[32]byte]ImageID),
		formIDs:  make(map[*Form]FormID),
	}
}

// SetInfo sets the document metadata.
func (d *Document) SetInfo(info Info) {
	d.Info = info
}

// AddPage appends a page after all existing pages and returns its
// handle.
func (d *Document) AddPage(p *Page) PageID {
	id := d.registerPage(p)
	d.pageOrder = append(d.pageOrder, id)
	return id
}

// InsertPageBefore inserts a page immediately before the page
// identified by next.  It returns the handle of the new page, or an
// error if next is not a page of this document.
func (d *Document) InsertPageBefore(p *Page, next PageID) (PageID, error) {
	at, ok := d.PageIndex(next)
	if !ok {
		return 0, &InvalidReferenceError{Kind: "page", ID: int(next), Where: "InsertPageBefore"}
	}
	id := d.registerPage(p)
	d.pageOrder = slices.Insert(d.pageOrder, at, id)
	return id, nil
}

// InsertPageAfter inserts a page immediately after the page identified
// by prev.  It returns the handle of the new page, or an error if prev
// is not a page of this document.
func (d *Document) InsertPageAfter(p *Page, prev PageID) (PageID, error) {
	at, ok := d.PageIndex(prev)
	if !ok {
		return 0, &InvalidReferenceError{Kind: "page", ID: int(prev), Where: "InsertPageAfter"}
	}
	id := d.registerPage(p)
	d.pageOrder = slices.Insert(d.pageOrder, at+1, id)
	return id, nil
}

func (d *Document) registerPage(p *Page) PageID {
	id := PageID(len(d.pages))
	d.pages = append(d.pages, p)
	return id
}

// PageIndex returns the current position of a page in the display
// order, counting from zero.  The second return value is false if the
// handle does not belong to this document.
func (d *Document) PageIndex(id PageID) (int, bool) {
	idx := slices.Index(d.pageOrder, id)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.pageOrder)
}

// Page returns the page with the given handle, or nil if the handle
// does not belong to this document.
func (d *Document) Page(id PageID) *Page {
	if id < 0 || int(id) >= len(d.pages) {
		return nil
	}
	return d.pages[id]
}

// AddFont registers a font with the document and returns its handle.
// Fonts are de-duplicated by the contents of their underlying font
// program: registering the same font data twice returns the same
// handle, and the font is embedded only once.
func (d *Document) AddFont(f *font.Font) FontID {
	key := f.Fingerprint()
	if id, ok := d.fontIDs[key]; ok {
		return id
	}
	id := FontID(len(d.fonts))
	d.fonts = append(d.fonts, f)
	d.fontIDs[key] = id
	return id
}

// Font returns the font with the given handle, or nil if the handle
// does not belong to this document.
func (d *Document) Font(id FontID) *font.Font {
	if id < 0 || int(id) >= len(d.fonts) {
		return nil
	}
	return d.fonts[id]
}

// AddImage registers an image with the document and returns its
// handle.  Images are de-duplicated by pixel contents: registering
// equal image data twice returns the same handle, and the image is
// embedded only once.
func (d *Document) AddImage(img *image.Image) ImageID {
	key := img.Fingerprint()
	if id, ok := d.imageIDs[key]; ok {
		return id
	}
	id := ImageID(len(d.images))
	d.images = append(d.images, img)
	d.imageIDs[key] = id
	return id
}

// Image returns the image with the given handle, or nil if the handle
// does not belong to this document.
func (d *Document) Image(id ImageID) *image.Image {
	if id < 0 || int(id) >= len(d.images) {
		return nil
	}
	return d.images[id]
}

// AddForm registers a form XObject with the document and returns its
// handle.  Registering the same *Form value twice returns the same
// handle.
func (d *Document) AddForm(f *Form) FormID {
	if id, ok := d.formIDs[f]; ok {
		return id
	}
	id := FormID(len(d.forms))
	d.forms = append(d.forms, f)
	d.formIDs[f] = id
	return id
}

// Form returns the form with the given handle, or nil if the handle
// does not belong to this document.
func (d *Document) Form(id FormID) *Form {
	if id < 0 || int(id) >= len(d.forms) {
		return nil
	}
	return d.forms[id]
}

// Warnings returns the glyph substitution warnings collected during
// [Document.Write].  It returns nil before the document has been
// written.
func (d *Document) Warnings() []MissingGlyphWarning {
	return d.warnings
}
