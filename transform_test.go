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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestTransformApply(t *testing.T) {
	cases := []struct {
		name string
		m    Transform
		x, y float64
		wantX, wantY float64
	}{
		{"identity", Identity, 3, 4, 3, 4},
		{"translate", Translate(10, 20), 3, 4, 13, 24},
		{"scale", Scale(2, 3), 3, 4, 6, 12},
		{"rotate90", Rotate(math.Pi / 2), 1, 0, 0, 1},
	}
	opt := cmpopts.EquateApprox(0, 1e-9)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gotX, gotY := c.m.Apply(c.x, c.y)
			if d := cmp.Diff([]float64{c.wantX, c.wantY}, []float64{gotX, gotY}, opt); d != "" {
				t.Errorf("unexpected result (-want +got):\n%s", d)
			}
		})
	}
}

func TestTransformMulOrder(t *testing.T) {
	// In A.Mul(B), A is applied first.
	m := Scale(2, 2).Mul(Translate(10, 0))
	gotX, gotY := m.Apply(1, 1)
	if gotX != 12 || gotY != 2 {
		t.Errorf("got (%g, %g), want (12, 2)", gotX, gotY)
	}

	m = Translate(10, 0).Mul(Scale(2, 2))
	gotX, gotY = m.Apply(1, 1)
	if gotX != 22 || gotY != 2 {
		t.Errorf("got (%g, %g), want (22, 2)", gotX, gotY)
	}
}

func TestTransformAssociative(t *testing.T) {
	A := Rotate(0.3)
	B := Translate(5, -2)
	C := Scale(1.5, 0.5)

	left := A.Mul(B).Mul(C)
	right := A.Mul(B.Mul(C))

	opt := cmpopts.EquateApprox(1e-12, 1e-12)
	if d := cmp.Diff(left, right, opt); d != "" {
		t.Errorf("matrix product is not associative (-left +right):\n%s", d)
	}
}

func TestTransformChaining(t *testing.T) {
	got := Identity.Translated(10, 20).Scaled(2, 2).Rotated(math.Pi)
	want := Translate(10, 20).Mul(Scale(2, 2)).Mul(Rotate(math.Pi))
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected matrix (-want +got):\n%s", d)
	}
}
