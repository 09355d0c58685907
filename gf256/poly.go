// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gf256

import "sync"

// A Poly is a polynomial over a Field, highest degree coefficient
// first.  A Poly returned by this package has no leading zero
// coefficients; the zero polynomial is empty.  Polys are treated as
// immutable values.
type Poly []byte

// NewPoly returns the polynomial with coefficients c followed by
// shift zero coefficients, i.e. c·xˢʰⁱᶠᵗ, with leading zeros stripped.
// c is copied.
func NewPoly(c []byte, shift int) Poly {
	for len(c) != 0 && c[0] == 0 {
		c = c[1:]
	}
	if len(c) == 0 {
		return nil
	}
	p := make(Poly, len(c)+shift)
	copy(p, c)
	return p
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p) - 1 }

// Coeff returns the coefficient of p at index i counted from the
// highest degree term.
func (p Poly) Coeff(i int) byte { return p[i] }

// Multiply returns the product of p and q in f.  Coefficient i+j of
// the product accumulates α^(log p[i] + log q[j]).  Zero coefficients
// contribute nothing and are never passed to Log.
func (f *Field) Multiply(p, q Poly) Poly {
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	r := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		la := f.Log(a)
		for j, b := range q {
			if b != 0 {
				r[i+j] ^= f.Exp(la + f.Log(b))
			}
		}
	}
	return NewPoly(r, 0)
}

// Mod returns the remainder of the polynomial long division of p by
// q in f.  If p has a lower degree than q, p is returned unchanged.
// Mod panics if q is the zero polynomial.
func (f *Field) Mod(p, q Poly) Poly {
	if len(q) == 0 {
		panic("gf256: division by zero polynomial")
	}
	if len(p) < len(q) {
		return p
	}
	r := make([]byte, len(p))
	copy(r, p)
	lq := f.Log(q[0])
	for len(r) >= len(q) {
		// r is stripped, so r[0] != 0.
		ratio := f.Log(r[0]) - lq
		for i, b := range q {
			if b != 0 {
				r[i] ^= f.Exp(f.Log(b) + ratio + 255)
			}
		}
		for len(r) != 0 && r[0] == 0 {
			r = r[1:]
		}
	}
	return Poly(r)
}

// Generator returns the Reed-Solomon generator polynomial of degree
// n: the product of (x - αⁱ) for i in [0, n).
func (f *Field) Generator(n int) Poly {
	g := Poly{1}
	for i := 0; i < n; i++ {
		g = f.Multiply(g, Poly{1, f.Exp(i)})
	}
	return g
}

// An RSEncoder implements Reed-Solomon encoding over a given field
// using a fixed number of check bytes.  An RSEncoder is safe for
// concurrent use.
type RSEncoder struct {
	f   *Field
	c   int
	gen Poly
}

// NewRSEncoder returns a new Reed-Solomon encoder over the given
// field and number of error correction bytes.
func NewRSEncoder(f *Field, c int) *RSEncoder {
	return &RSEncoder{f: f, c: c, gen: f.Generator(c)}
}

// Check returns the number of error correction bytes.
func (rs *RSEncoder) Check() int { return rs.c }

// ECC writes to check the error correction bytes for data:
// the coefficients of data·xᶜ mod gen, padded with zeros on the left
// when the remainder has a lower degree than c-1.
// len(check) must be rs.Check().
func (rs *RSEncoder) ECC(data []byte, check []byte) {
	if len(check) != rs.c {
		panic("gf256: invalid check byte length")
	}
	rem := rs.f.Mod(NewPoly(data, rs.c), rs.gen)
	pad := len(check) - len(rem)
	for i := range check[:pad] {
		check[i] = 0
	}
	copy(check[pad:], rem)
}

// Shared encoders, per field and check byte count.
var encoders struct {
	sync.Mutex
	m map[*Field]map[int]*RSEncoder
}

// Encoder returns a shared RSEncoder for f with c check bytes.
func (f *Field) Encoder(c int) *RSEncoder {
	encoders.Lock()
	defer encoders.Unlock()
	if encoders.m == nil {
		encoders.m = make(map[*Field]map[int]*RSEncoder)
	}
	m := encoders.m[f]
	if m == nil {
		m = make(map[int]*RSEncoder)
		encoders.m[f] = m
	}
	rs := m[c]
	if rs == nil {
		rs = NewRSEncoder(f, c)
		m[c] = rs
	}
	return rs
}
