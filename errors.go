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
	"errors"
	"strconv"
)

// ErrDocumentWritten is returned by [Document.Write] if the document has
// already been written.  A Document can be consumed only once.
var ErrDocumentWritten = errors.New("document has already been written")

// An InvalidReferenceError indicates that page or form content, a
// bookmark, or a link refers to an entity which was never registered
// with the document.
type InvalidReferenceError struct {
	// Kind names the kind of entity referred to: "page", "font",
	// "image" or "form".
	Kind string

	// ID is the numeric value of the dangling handle.
	ID int

	// Where describes the location of the dangling reference.
	Where string
}

func (err *InvalidReferenceError) Error() string {
	return err.Where + ": reference to unregistered " + err.Kind +
		" " + strconv.Itoa(err.ID)
}

// A CyclicFormError indicates that a form XObject transitively places
// itself.
type CyclicFormError struct {
	// Form identifies a form on the cycle.
	Form FormID
}

func (err *CyclicFormError) Error() string {
	return "form " + strconv.Itoa(int(err.Form)) + " transitively places itself"
}

// A SinkWriteError indicates that the assembled PDF file could not be
// written to the output.  The document itself is valid; the write can
// be retried with another sink.
type SinkWriteError struct {
	Err error
}

func (err *SinkWriteError) Error() string {
	return "writing PDF to output: " + err.Err.Error()
}

func (err *SinkWriteError) Unwrap() error {
	return err.Err
}

// A MissingGlyphWarning records a code point which a font cannot
// represent.  The notdef glyph is substituted and document generation
// continues; the warnings can be inspected via [Document.Warnings]
// after a successful Write.
type MissingGlyphWarning struct {
	// Font is the font which has no glyph for the code point.
	Font FontID

	// Rune is the unmapped code point.
	Rune rune
}

func (w MissingGlyphWarning) String() string {
	return "font " + strconv.Itoa(int(w.Font)) +
		" has no glyph for " + strconv.QuoteRune(w.Rune)
}
