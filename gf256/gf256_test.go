// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var qrField = NewField(0x11d, 2)

func TestFieldTables(t *testing.T) {
	f := qrField
	// The first eight powers of α are single bits, α⁸ reduces by the
	// primitive polynomial.
	for i := 0; i < 8; i++ {
		if got := f.Exp(i); got != 1<<i {
			t.Errorf("Exp(%d) = %#x, want %#x", i, got, 1<<i)
		}
	}
	if got := f.Exp(8); got != 0x1d {
		t.Errorf("Exp(8) = %#x, want 0x1d", got)
	}
	if got := f.Exp(255); got != 1 {
		t.Errorf("Exp(255) = %#x, want 1", got)
	}
	for x := 1; x < 256; x++ {
		if got := f.Exp(f.Log(byte(x))); got != byte(x) {
			t.Errorf("Exp(Log(%#x)) = %#x", x, got)
		}
		if got := f.Mul(byte(x), f.Inv(byte(x))); got != 1 {
			t.Errorf("%#x * Inv(%#x) = %#x, want 1", x, x, got)
		}
	}
}

func TestLogZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Log(0) did not panic")
		}
	}()
	qrField.Log(0)
}

func TestNewPolyStrips(t *testing.T) {
	for _, tt := range []struct {
		c     []byte
		shift int
		want  Poly
	}{
		{nil, 3, nil},
		{[]byte{0, 0}, 2, nil},
		{[]byte{0, 0, 5, 0, 7}, 0, Poly{5, 0, 7}},
		{[]byte{0, 1, 2}, 2, Poly{1, 2, 0, 0}},
	} {
		got := NewPoly(tt.c, tt.shift)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("NewPoly(%v, %d) mismatch (-want +got):\n%s",
				tt.c, tt.shift, diff)
		}
	}
}

func TestGenerator(t *testing.T) {
	for _, tt := range []struct {
		n    int
		want Poly
	}{
		{7, Poly{1, 127, 122, 154, 164, 11, 68, 117}},
		{10, Poly{1, 216, 194, 159, 111, 199, 94, 95, 113, 157, 193}},
	} {
		got := qrField.Generator(tt.n)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Generator(%d) mismatch (-want +got):\n%s",
				tt.n, diff)
		}
	}
}

func TestMod(t *testing.T) {
	f := qrField
	g := f.Generator(4)
	// A multiple of the generator leaves no remainder.
	p := f.Multiply(Poly{3, 0, 9}, g)
	if r := f.Mod(p, g); len(r) != 0 {
		t.Errorf("Mod(k·g, g) = %v, want zero", r)
	}
	// A polynomial of lower degree is returned as is.
	low := Poly{7, 1}
	if r := f.Mod(low, g); cmp.Diff(low, r) != "" {
		t.Errorf("Mod(%v, g) = %v", low, r)
	}
}

// The 1-M worked example from ISO/IEC 18004 Annex I and countless
// tutorials: "HELLO WORLD" in alphanumeric mode.
func TestECCWorkedExample(t *testing.T) {
	data := []byte{32, 91, 11, 120, 209, 114, 220, 77,
		67, 64, 236, 17, 236, 17, 236, 17}
	want := []byte{196, 35, 39, 119, 235, 215, 231, 226, 93, 23}
	rs := qrField.Encoder(len(want))
	check := make([]byte, rs.Check())
	rs.ECC(data, check)
	if diff := cmp.Diff(want, check); diff != "" {
		t.Errorf("ECC mismatch (-want +got):\n%s", diff)
	}
	if rs2 := qrField.Encoder(len(want)); rs2 != rs {
		t.Error("Encoder not cached")
	}
}

func TestECCZeroData(t *testing.T) {
	rs := NewRSEncoder(qrField, 7)
	check := []byte{1, 2, 3, 4, 5, 6, 7}
	rs.ECC(make([]byte, 5), check)
	if diff := cmp.Diff(make([]byte, 7), check); diff != "" {
		t.Errorf("ECC of zero data mismatch (-want +got):\n%s", diff)
	}
}
