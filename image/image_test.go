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

package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"testing"
)

func solid(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestFromGoImage(t *testing.T) {
	im := FromGoImage(solid(30, 20, color.NRGBA{R: 200, A: 255}))
	if im.Width() != 30 || im.Height() != 20 {
		t.Errorf("got %dx%d, want 30x20", im.Width(), im.Height())
	}
	if im.AspectRatio() != 1.5 {
		t.Errorf("got aspect ratio %g, want 1.5", im.AspectRatio())
	}
	if im.hasAlpha {
		t.Error("opaque image reported as having alpha")
	}

	translucent := FromGoImage(solid(4, 4, color.NRGBA{R: 200, A: 128}))
	if !translucent.hasAlpha {
		t.Error("translucent image reported as opaque")
	}
}

func TestJPEGPassthrough(t *testing.T) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, solid(16, 16, color.NRGBA{G: 99, A: 255}), nil); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()

	im, err := FromReader(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if im.jpegData == nil {
		t.Fatal("RGB JPEG was re-encoded instead of passed through")
	}
	if !bytes.Equal(im.jpegData, data) {
		t.Error("JPEG data modified")
	}
	if im.Width() != 16 || im.Height() != 16 {
		t.Errorf("got %dx%d, want 16x16", im.Width(), im.Height())
	}
}

func TestPNGDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, solid(8, 8, color.NRGBA{B: 50, A: 200})); err != nil {
		t.Fatal(err)
	}

	im, err := FromReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if im.jpegData != nil {
		t.Error("PNG input stored as JPEG data")
	}
	if !im.hasAlpha {
		t.Error("alpha channel lost while decoding PNG")
	}
}

func TestUnsupportedFormat(t *testing.T) {
	_, err := FromReader(bytes.NewReader([]byte("certainly not an image")))
	var fmtErr *UnsupportedFormatError
	if !errors.As(err, &fmtErr) {
		t.Errorf("got error %v, want *UnsupportedFormatError", err)
	}
}

func TestFingerprint(t *testing.T) {
	a := FromGoImage(solid(4, 4, color.NRGBA{R: 1, A: 255}))
	b := FromGoImage(solid(4, 4, color.NRGBA{R: 1, A: 255}))
	c := FromGoImage(solid(4, 4, color.NRGBA{R: 2, A: 255}))

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal images have different fingerprints")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different images share a fingerprint")
	}

	// same sample bytes, different dimensions
	wide := FromGoImage(solid(8, 4, color.NRGBA{R: 1, A: 255}))
	tall := FromGoImage(solid(4, 8, color.NRGBA{R: 1, A: 255}))
	if wide.Fingerprint() == tall.Fingerprint() {
		t.Error("8x4 and 4x8 images share a fingerprint")
	}
}

type circle struct {
	c color.NRGBA
}

func (ci circle) Render(dst draw.Image) error {
	b := dst.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	r := min(cx, cy)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				dst.Set(x, y, ci.c)
			}
		}
	}
	return nil
}

func TestFromVector(t *testing.T) {
	im, err := FromVector(circle{c: color.NRGBA{R: 255, A: 255}}, 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if im.Width() != 32 || im.Height() != 32 {
		t.Errorf("got %dx%d, want 32x32", im.Width(), im.Height())
	}
	// pixels outside the circle stay transparent
	if !im.hasAlpha {
		t.Error("expected transparent corners")
	}
}
