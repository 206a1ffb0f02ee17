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

// Package pdfgen assembles PDF documents from higher-level primitives.
//
// A [Document] owns pages, fonts, images, reusable form content blocks and
// an outline tree.  Content is accumulated purely in memory; a single call
// to [Document.Write] validates the object graph, subsets all fonts over
// the union of the code points used anywhere in the document, decides
// per-stream compression, and emits the file through the low-level encoder
// from seehuhn.de/go/pdf.
//
// Fonts are embedded as subset CID-keyed composite fonts with ToUnicode
// maps, so text in the output can be extracted again.  Raster images reuse
// their native JPEG encoding where possible; everything else is stored as
// Flate-compressed RGB samples with an optional soft mask for alpha.
//
// The subpackages provide the content-producing building blocks:
//
//   - font: Unicode font loading and subsetting
//   - layout: text measurement and line-breaking flows
//   - image: raster and vector image registration
package pdfgen
