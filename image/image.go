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

// Package image prepares raster and vector images for embedding into
// PDF files.
package image

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
)

// An Image is a picture ready for embedding into a PDF file.
//
// Images are created with [FromReader], [FromFile], [FromGoImage] or
// [FromVector], and registered with a document for placement on pages.
type Image struct {
	width, height int

	// For RGB and grayscale JPEG input the compressed data is kept
	// as is and passed through to the PDF file.
	jpegData []byte
	jpegGray bool

	// All other input is stored as decoded pixels.
	pixels   *image.NRGBA
	hasAlpha bool
}

// An UnsupportedFormatError indicates image data in a format which
// cannot be decoded.
type UnsupportedFormatError struct {
	// Format is the detected format name, or "" if the format was
	// not recognized.
	Format string
}

func (err *UnsupportedFormatError) Error() string {
	if err.Format == "" {
		return "unrecognized image format"
	}
	return "unsupported image format " + err.Format
}

// FromReader decodes an image from r.  The supported formats are JPEG,
// PNG, GIF, TIFF, BMP and WebP.
//
// RGB and grayscale JPEG data is embedded into the PDF file unchanged;
// everything else is re-encoded losslessly.
func FromReader(r io.Reader) (*Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, &UnsupportedFormatError{Format: format}
	}

	if format == "jpeg" {
		if im, ok := jpegPassthrough(data, cfg); ok {
			return im, nil
		}
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s image: %w", format, err)
	}
	return FromGoImage(src), nil
}

// FromFile decodes an image from the named file.
func FromFile(name string) (*Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	im, err := FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return im, nil
}

// FromGoImage converts a decoded image for embedding.  The pixels are
// copied; src may be modified afterwards.
func FromGoImage(src image.Image) *Image {
	b := src.Bounds()
	px := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(px, px.Bounds(), src, b.Min, draw.Src)

	hasAlpha := false
	for i := 3; i < len(px.Pix); i += 4 {
		if px.Pix[i] != 0xff {
			hasAlpha = true
			break
		}
	}

	return &Image{
		width:    b.Dx(),
		height:   b.Dy(),
		pixels:   px,
		hasAlpha: hasAlpha,
	}
}

// A Vector is a resolution-independent picture, an SVG file for
// example.  Implementations rasterize themselves at a requested pixel
// size.
type Vector interface {
	// Render draws the picture onto dst, covering its full bounds.
	Render(dst draw.Image) error
}

// FromVector rasterizes a vector picture at the given pixel size.
func FromVector(v Vector, width, height int) (*Image, error) {
	px := image.NewNRGBA(image.Rect(0, 0, width, height))
	if err := v.Render(px); err != nil {
		return nil, fmt.Errorf("rendering vector image: %w", err)
	}
	return FromGoImage(px), nil
}

// Width returns the width of the image in pixels.
func (im *Image) Width() int {
	return im.width
}

// Height returns the height of the image in pixels.
func (im *Image) Height() int {
	return im.height
}

// AspectRatio returns the width of the image divided by its height.
func (im *Image) AspectRatio() float64 {
	return float64(im.width) / float64(im.height)
}

// Fingerprint returns a digest of the image contents.  Two images with
// equal data have equal fingerprints.
//
// The dimensions are part of the digest: images with the same sample
// bytes but different sizes are distinct.
func (im *Image) Fingerprint() [sha256.Size]byte {
	h := sha256.New()
	fmt.Fprintf(h, "%d %d ", im.width, im.height)
	if im.jpegData != nil {
		if im.jpegGray {
			fmt.Fprint(h, "jpeg gray ")
		} else {
			fmt.Fprint(h, "jpeg ")
		}
		h.Write(im.jpegData)
	} else {
		fmt.Fprint(h, "pixels ")
		h.Write(im.pixels.Pix)
	}
	var sum [sha256.Size]byte
	h.Sum(sum[:0])
	return sum
}
