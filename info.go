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

import "time"

// Info describes the document as a whole.  It is written both to the
// PDF info dictionary and to an XMP metadata stream.  Empty fields are
// omitted from the output.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Producer identifies the software which generated the
	// document.  If empty, a default value is used.
	Producer string

	// CreationDate is the time the document was created.  If zero,
	// the time of the [Document.Write] call is used.
	CreationDate time.Time
}
