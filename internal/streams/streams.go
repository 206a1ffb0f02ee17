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

// Package streams applies the shared stream compression policy.
package streams

import "seehuhn.de/go/pdf"

// minCompress is the payload size below which Flate compression is
// skipped.  For very short streams the zlib header and dictionary
// overhead outweigh any savings.
const minCompress = 64

// Filters returns the filter chain for a stream with the given payload
// size.  Streams whose payload is already compressed (JPEG data, for
// example) must not use it.
func Filters(payloadSize int) []pdf.Filter {
	if payloadSize < minCompress {
		return nil
	}
	return []pdf.Filter{pdf.FilterCompress{}}
}

// Put writes a complete stream object: dict describes the stream, and
// payload is compressed according to the shared policy.
func Put(w *pdf.Writer, ref pdf.Reference, dict pdf.Dict, payload []byte) error {
	stm, err := w.OpenStream(ref, dict, Filters(len(payload))...)
	if err != nil {
		return err
	}
	_, err = stm.Write(payload)
	if err != nil {
		stm.Close()
		return err
	}
	return stm.Close()
}

// PutRaw writes a stream object without applying any filter.
func PutRaw(w *pdf.Writer, ref pdf.Reference, dict pdf.Dict, payload []byte) error {
	stm, err := w.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	_, err = stm.Write(payload)
	if err != nil {
		stm.Close()
		return err
	}
	return stm.Close()
}
