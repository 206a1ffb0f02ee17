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
	"golang.org/x/text/language"

	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"
)

// xmpPDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type xmpPDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

var xDefault = language.MustParse("x-default")

// writeXMP writes the document metadata as an XMP metadata stream and
// returns a reference to it, for use in the document catalog.
func writeXMP(w *pdf.Writer, info *Info) (pdf.Reference, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(xDefault, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(xDefault, info.Subject)
	}

	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(info.CreationDate)

	pdfNS := &xmpPDF{}
	pdfNS.Producer = xmp.NewAgentName(info.Producer)
	if info.Keywords != "" {
		pdfNS.Keywords = xmp.NewText(info.Keywords)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfNS)

	ref := w.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	// Metadata streams are left uncompressed so that XMP-aware tools
	// can scan for them without parsing the file.
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		return 0, err
	}
	if err := packet.Write(stm, &xmp.PacketOptions{}); err != nil {
		stm.Close()
		return 0, err
	}
	if err := stm.Close(); err != nil {
		return 0, err
	}
	return ref, nil
}
