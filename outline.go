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

import "seehuhn.de/go/pdf"

// A Bookmark is an entry in the document outline ("bookmarks" panel of
// a PDF viewer).  Bookmarks form a tree; activating one jumps to the
// start of its target page.
type Bookmark struct {
	// Title is shown in the outline panel.
	Title string

	// Target is the page the bookmark jumps to.
	Target PageID

	// Open determines whether the children of this bookmark are
	// shown expanded when the document is first opened.
	Open bool

	children []*Bookmark
}

// AddBookmark adds a top-level bookmark to the document outline and
// returns it, so that nested bookmarks can be added via
// [Bookmark.AddChild].
func (d *Document) AddBookmark(title string, target PageID) *Bookmark {
	b := &Bookmark{Title: title, Target: target}
	d.outline = append(d.outline, b)
	return b
}

// AddChild adds a bookmark nested below b.
func (b *Bookmark) AddChild(title string, target PageID) *Bookmark {
	c := &Bookmark{Title: title, Target: target}
	b.children = append(b.children, c)
	return c
}

// outlineWriter emits the outline tree as a set of linked dictionaries.
type outlineWriter struct {
	w        *pdf.Writer
	pageRefs map[PageID]pdf.Reference
}

// write emits the outline root and all bookmark items and returns a
// reference to the root, for use in the document catalog.
func (o *outlineWriter) write(bookmarks []*Bookmark) (pdf.Reference, error) {
	root := o.w.Alloc()
	first, last, count, err := o.writeSiblings(bookmarks, root)
	if err != nil {
		return 0, err
	}
	dict := pdf.Dict{
		"Type":  pdf.Name("Outlines"),
		"First": first,
		"Last":  last,
		"Count": pdf.Integer(count),
	}
	err = o.w.Put(root, dict)
	if err != nil {
		return 0, err
	}
	return root, nil
}

// writeSiblings emits one level of bookmarks, linked via Prev and Next,
// and recurses into their children.  It returns the references of the
// first and last sibling, and the number of items visible when all of
// them are shown open.
func (o *outlineWriter) writeSiblings(bookmarks []*Bookmark, parent pdf.Reference) (first, last pdf.Reference, count int, err error) {
	refs := make([]pdf.Reference, len(bookmarks))
	for i := range bookmarks {
		refs[i] = o.w.Alloc()
	}

	for i, b := range bookmarks {
		dict := pdf.Dict{
			"Title":  pdf.TextString(b.Title),
			"Parent": parent,
			"Dest": pdf.Array{
				o.pageRefs[b.Target],
				pdf.Name("Fit"),
			},
		}
		if i > 0 {
			dict["Prev"] = refs[i-1]
		}
		if i < len(bookmarks)-1 {
			dict["Next"] = refs[i+1]
		}

		childCount := 0
		if len(b.children) > 0 {
			cFirst, cLast, cCount, err := o.writeSiblings(b.children, refs[i])
			if err != nil {
				return 0, 0, 0, err
			}
			dict["First"] = cFirst
			dict["Last"] = cLast
			if b.Open {
				dict["Count"] = pdf.Integer(cCount)
				childCount = cCount
			} else {
				dict["Count"] = pdf.Integer(-cCount)
			}
		}

		err = o.w.Put(refs[i], dict)
		if err != nil {
			return 0, 0, 0, err
		}
		count += 1 + childCount
	}
	return refs[0], refs[len(refs)-1], count, nil
}
