// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Mask patterns.  A data module is inverted where the mask function
// of its row and column returns true.
var maskFunc = [8]func(row, col int) bool{
	func(i, j int) bool { return (i+j)%2 == 0 },
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return j%3 == 0 },
	func(i, j int) bool { return (i+j)%3 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return i*j%2+i*j%3 == 0 },
	func(i, j int) bool { return (i*j%2+i*j%3)%2 == 0 },
	func(i, j int) bool { return ((i+j)%2+i*j%3)%2 == 0 },
}

// MaskBit reports whether mask inverts the module at row, col.
// mask must be between 0 and 7.
func MaskBit(mask, row, col int) bool {
	return maskFunc[mask](row, col)
}

// Penalty rules.
//
//   - N1: for each run of n>=5 same colour modules in a row or
//     column -> 3 + (n-5)
//   - N2: for each, possibly overlapping, 2x2 box of same colour
//     modules -> 3
//   - N3: for each dark-light-dark-dark-dark-light-dark sequence
//     preceded or followed by 4 light modules in a row or column -> 40
//   - N4: for every full 5% the proportion of dark modules deviates
//     from 50% -> 10
const (
	MinRun = 5  // N1: minimum run length
	RunPP  = 3  // N1: points for a run of MinRun modules
	BoxPP  = 3  // N2: points per box
	FindPP = 40 // N3: points per pattern
	BalPP  = 10 // N4: points for every 5%

	patLength = 11               // N3: window length
	patMask   = 1<<patLength - 1 // N3: window mask
	findB     = 0b0000_1011101   // N3: light modules before
	findA     = 0b1011101_0000   // N3: light modules after
)

// Penalty returns the penalty of a square code of size modules on a
// side; dark reports the colour of each module.
func Penalty(size int, dark func(row, col int) bool) int {
	m := make([]Module, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			m[row*size+col].set(dark(row, col))
		}
	}
	return penalty(m, size)
}

// penalty returns the penalty of the code m of siz modules on a side:
// the sum of rules N1 to N4.
func penalty(m []Module, siz int) int {
	p := 0
	nd := 0 // dark modules
	for i := 0; i < siz; i++ {
		// row i and column i
		for _, step := range [2]struct{ start, inc int }{
			{i * siz, 1},
			{i, siz},
		} {
			off := step.start
			r := 0        // current run length
			pat := 0      // last patLength modules
			var last bool // colour of current run
			for j := 0; j < siz; j, off = j+1, off+step.inc {
				d := m[off].Dark()
				if step.inc == 1 && d {
					nd++
				}
				if j > 0 && d == last {
					r++
				} else {
					if r >= MinRun {
						p += RunPP + r - MinRun
					}
					r = 1
					last = d
				}
				pat = pat << 1 & patMask
				if d {
					pat |= 1
				}
				if j >= patLength-1 && (pat == findB || pat == findA) {
					p += FindPP
				}
			}
			if r >= MinRun {
				p += RunPP + r - MinRun
			}
		}
	}

	// N2
	for row := 0; row < siz-1; row++ {
		for col := 0; col < siz-1; col++ {
			off := row*siz + col
			d := m[off].Dark()
			if m[off+1].Dark() == d && m[off+siz].Dark() == d &&
				m[off+siz+1].Dark() == d {
				p += BoxPP
			}
		}
	}

	// N4: 10 * floor(|dark*100/total - 50| / 5)
	total := siz * siz
	dev := nd*2 - total
	if dev < 0 {
		dev = -dev
	}
	p += dev * 10 / total * BalPP
	return p
}
