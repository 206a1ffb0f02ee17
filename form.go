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

// A Form is a reusable group of content, realized as a PDF form
// XObject.  Its content is recorded once and can be placed any number
// of times on pages or inside other forms, each time under a different
// transformation.
//
// Forms are registered with [Document.AddForm]; registering the same
// *Form value twice yields the same handle.  A form must not place
// itself, directly or through other forms.
type Form struct {
	contents

	// BBox is the bounding box of the form in its own coordinate
	// system.  Content outside the bounding box is clipped.
	BBox Rect
}

// NewForm creates a new form XObject with the given bounding box.
func NewForm(bbox Rect) *Form {
	return &Form{BBox: bbox}
}
