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
	"io"
	"os"
	"time"

	"seehuhn.de/go/pdf"

	"github.com/hamaluik/pdf-gen/internal/streams"
)

// Write assembles the document and writes it to w as a complete PDF
// file.
//
// The whole object graph is validated first; if validation fails, the
// returned error lists every problem found and nothing is written to
// w.  After a successful Write the document is consumed: further calls
// return [ErrDocumentWritten].
//
// If Write fails after validation, for example with a [SinkWriteError],
// the font subsets are already frozen.  The write may be retried with
// another sink, but text added between the attempts renders as notdef
// if it uses code points not present in the original content.
func (d *Document) Write(w io.Writer) error {
	if d.written {
		return ErrDocumentWritten
	}
	if err := d.validate(); err != nil {
		return err
	}

	d.finalizeFonts()

	// The file is assembled in memory so that a late failure cannot
	// leave a truncated PDF behind.
	buf := &bytes.Buffer{}
	if err := d.emit(buf); err != nil {
		return err
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return &SinkWriteError{Err: err}
	}
	d.written = true
	return nil
}

// WriteFile assembles the document and writes it to the named file.
func (d *Document) WriteFile(name string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := d.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// finalizeFonts determines, for every font, the set of code points used
// anywhere in the document and freezes the font's subset.  Code points
// without a glyph are recorded as warnings.  The second and later calls
// are no-ops, so that a retried Write keeps the collected warnings.
func (d *Document) finalizeFonts() {
	if d.finalized {
		return
	}
	d.finalized = true

	used := make(map[FontID]map[rune]struct{})
	collect := func(c *contents) {
		for _, item := range c.items {
			spans, ok := item.(textItem)
			if !ok {
				continue
			}
			for _, span := range spans {
				set := used[span.Font.Font]
				if set == nil {
					set = make(map[rune]struct{})
					used[span.Font.Font] = set
				}
				for _, r := range span.Text {
					set[r] = struct{}{}
				}
			}
		}
	}
	for _, id := range d.pageOrder {
		collect(&d.pages[id].contents)
	}
	for _, f := range d.forms {
		collect(&f.contents)
	}

	d.warnings = []MissingGlyphWarning{}
	for id, f := range d.fonts {
		for _, r := range f.Finalize(used[FontID(id)]) {
			d.warnings = append(d.warnings, MissingGlyphWarning{Font: FontID(id), Rune: r})
		}
	}
}

// writeRefs holds the object references allocated for the registered
// entities of a document.
type writeRefs struct {
	fonts  []pdf.Reference
	images []pdf.Reference
	forms  []pdf.Reference
	pages  map[PageID]pdf.Reference
}

// emit writes the finalized document to buf as a PDF file.
func (d *Document) emit(buf *bytes.Buffer) error {
	w, err := pdf.NewWriter(buf, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	refs := &writeRefs{
		fonts:  make([]pdf.Reference, len(d.fonts)),
		images: make([]pdf.Reference, len(d.images)),
		forms:  make([]pdf.Reference, len(d.forms)),
		pages:  make(map[PageID]pdf.Reference, len(d.pageOrder)),
	}
	for i := range refs.fonts {
		refs.fonts[i] = w.Alloc()
	}
	for i := range refs.images {
		refs.images[i] = w.Alloc()
	}
	for i := range refs.forms {
		refs.forms[i] = w.Alloc()
	}
	for _, id := range d.pageOrder {
		refs.pages[id] = w.Alloc()
	}
	pageTreeRef := w.Alloc()

	if err := d.writeMeta(w); err != nil {
		return err
	}

	for i, f := range d.fonts {
		if err := f.Embed(w, refs.fonts[i]); err != nil {
			return fmt.Errorf("embedding font %d: %w", i, err)
		}
	}
	for i, img := range d.images {
		if err := img.Embed(w, refs.images[i]); err != nil {
			return fmt.Errorf("embedding image %d: %w", i, err)
		}
	}

	enc := func(f FontID, r rune) uint16 {
		return d.fonts[f].CID(r)
	}

	for i, f := range d.forms {
		dict := pdf.Dict{
			"Type":      pdf.Name("XObject"),
			"Subtype":   pdf.Name("Form"),
			"BBox":      f.BBox.toPDF(),
			"Resources": d.resources(&f.contents, refs),
		}
		body := f.render(enc)
		if err := streams.Put(w, refs.forms[i], dict, body); err != nil {
			return fmt.Errorf("writing form %d: %w", i, err)
		}
	}

	for _, id := range d.pageOrder {
		if err := d.writePage(w, id, refs, pageTreeRef, enc); err != nil {
			return err
		}
	}

	kids := make(pdf.Array, len(d.pageOrder))
	for i, id := range d.pageOrder {
		kids[i] = refs.pages[id]
	}
	err = w.Put(pageTreeRef, pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
	})
	if err != nil {
		return err
	}
	w.GetMeta().Catalog.Pages = pageTreeRef

	if len(d.outline) > 0 {
		ow := &outlineWriter{w: w, pageRefs: refs.pages}
		root, err := ow.write(d.outline)
		if err != nil {
			return err
		}
		w.GetMeta().Catalog.Outlines = root
	}

	return w.Close()
}

func (d *Document) writePage(w *pdf.Writer, id PageID, refs *writeRefs, parent pdf.Reference, enc glyphEncoder) error {
	p := d.pages[id]

	contentRef := w.Alloc()
	body := p.render(enc)
	if err := streams.Put(w, contentRef, nil, body); err != nil {
		return fmt.Errorf("writing page content: %w", err)
	}

	dict := pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    parent,
		"MediaBox":  p.MediaBox().toPDF(),
		"ArtBox":    p.ContentBox().toPDF(),
		"Resources": d.resources(&p.contents, refs),
		"Contents":  contentRef,
	}

	if len(p.links) > 0 {
		annots := make(pdf.Array, len(p.links))
		for i, link := range p.links {
			annots[i] = pdf.Dict{
				"Type":    pdf.Name("Annot"),
				"Subtype": pdf.Name("Link"),
				"Rect":    link.Rect.toPDF(),
				"Border":  pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(0)},
				"A": pdf.Dict{
					"Type": pdf.Name("Action"),
					"S":    pdf.Name("GoTo"),
					"D": pdf.Array{
						refs.pages[link.Target],
						pdf.Name("Fit"),
					},
				},
			}
		}
		dict["Annots"] = annots
	}

	return w.Put(refs.pages[id], dict)
}

// resources builds the resource dictionary for one content list.  Only
// entities actually placed are listed; if the content contains raw
// operators, everything registered with the document is listed, since
// raw content cannot be inspected.
func (d *Document) resources(c *contents, refs *writeRefs) pdf.Dict {
	var fonts, images, forms map[int]bool
	raw := false
	for _, item := range c.items {
		switch item := item.(type) {
		case textItem:
			for _, span := range item {
				if fonts == nil {
					fonts = make(map[int]bool)
				}
				fonts[int(span.Font.Font)] = true
			}
		case imageItem:
			if images == nil {
				images = make(map[int]bool)
			}
			images[int(item.Image)] = true
		case formItem:
			if forms == nil {
				forms = make(map[int]bool)
			}
			forms[int(item.Form)] = true
		case rawItem:
			raw = true
		}
	}

	res := pdf.Dict{}
	fontDict := pdf.Dict{}
	for i, ref := range refs.fonts {
		if raw || fonts[i] {
			fontDict[pdf.Name(fmt.Sprintf("F%d", i))] = ref
		}
	}
	if len(fontDict) > 0 {
		res["Font"] = fontDict
	}
	xDict := pdf.Dict{}
	for i, ref := range refs.images {
		if raw || images[i] {
			xDict[pdf.Name(fmt.Sprintf("I%d", i))] = ref
		}
	}
	for i, ref := range refs.forms {
		if raw || forms[i] {
			xDict[pdf.Name(fmt.Sprintf("X%d", i))] = ref
		}
	}
	if len(xDict) > 0 {
		res["XObject"] = xDict
	}
	return res
}

// writeMeta fills in the info dictionary and writes the XMP metadata
// stream.
func (d *Document) writeMeta(w *pdf.Writer) error {
	info := d.Info
	if info.Producer == "" {
		info.Producer = "pdf-gen"
	}
	if info.CreationDate.IsZero() {
		info.CreationDate = time.Now()
	}

	meta := w.GetMeta()
	meta.Info = &pdf.Info{
		Title:        pdf.TextString(info.Title),
		Author:       pdf.TextString(info.Author),
		Subject:      pdf.TextString(info.Subject),
		Keywords:     pdf.TextString(info.Keywords),
		Producer:     pdf.TextString(info.Producer),
		CreationDate: pdf.Date(info.CreationDate),
	}

	ref, err := writeXMP(w, &info)
	if err != nil {
		return err
	}
	meta.Catalog.Metadata = ref
	return nil
}
