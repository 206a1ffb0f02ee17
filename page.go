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

// A Link is a clickable region of a page which jumps to another page of
// the same document.
type Link struct {
	// Rect is the active region, in page coordinates.
	Rect Rect

	// Target is the page the link jumps to.
	Target PageID
}

// A Page is a single page of a document.  Content is accumulated in
// authoring order via the Add methods; items added later are drawn on
// top of earlier ones.
//
// Pages are created with [NewPage] and registered with a document using
// [Document.AddPage] or one of the insertion methods.  A page must not
// be modified after the document has been written.
type Page struct {
	contents

	// Size is the media box of the page, with the lower-left corner
	// at the origin.
	Size PageSize

	// Margins is the space between the page edges and the content
	// box.  It only affects text layout helpers and the reported
	// art box; content may be placed anywhere on the page.
	Margins Margins

	links []Link
}

// NewPage creates a new page with the given size and margins.
func NewPage(size PageSize, margins Margins) *Page {
	return &Page{Size: size, Margins: margins}
}

// ContentBox returns the part of the page inside the margins.  This is
// also recorded as the art box of the page.
func (p *Page) ContentBox() Rect {
	return Rect{
		LLx: p.Margins.Left,
		LLy: p.Margins.Bottom,
		URx: p.Size.Width - p.Margins.Right,
		URy: p.Size.Height - p.Margins.Top,
	}
}

// MediaBox returns the full extent of the page.
func (p *Page) MediaBox() Rect {
	return Rect{URx: p.Size.Width, URy: p.Size.Height}
}

// AddLink adds an intra-document link to the page.  The link is
// realized as a border-less link annotation.
func (p *Page) AddLink(link Link) {
	p.links = append(p.links, link)
}
