// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level QR coding details: the error
// correction block plan, byte mode segments, symbol construction and
// mask selection.
package coding // import "github.com/unixdj/qrmatrix/coding"

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/unixdj/qrmatrix/gf256"
)

var (
	ErrLevel    = errors.New("qr: invalid level")
	ErrVersion  = errors.New("qr: invalid version")
	ErrCapacity = errors.New("qr: data too long")
	ErrRange    = errors.New("qr: module index out of range")
)

// Field is the field for QR error correction.
var Field = gf256.NewField(0x11d, 2)

// A Level represents a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level int

const (
	L Level = iota // recovers ~7% of codewords
	M              // ~15%
	Q              // ~25%
	H              // ~30%
)

func (l Level) String() string {
	if L <= l && l <= H {
		return "LMQH"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// IsValid reports whether l is one of L, M, Q and H.
func (l Level) IsValid() bool { return L <= l && l <= H }

// formatBits returns the 2 bit level indicator of the format
// information: L=01, M=00, Q=11, H=10.
func (l Level) formatBits() int { return int(l) ^ 1 }

// A Version represents a QR version.
// The version specifies the size of the QR code:
// a QR code with version v has 4v+17 modules on a side.
// The larger the version, the more information the code can store.
type Version int

const (
	MinVersion Version = 1  // Minimum QR version
	MaxVersion Version = 40 // Maximum QR version
)

func (v Version) String() string { return strconv.Itoa(int(v)) }

// IsValid reports whether v is between MinVersion and MaxVersion.
func (v Version) IsValid() bool { return MinVersion <= v && v <= MaxVersion }

// Size returns the number of modules on a side of a QR code of
// version v.
func (v Version) Size() int { return int(v)*4 + 17 }

// QR version size classes.
const (
	Class0 = iota // QR versions 1 to 9
	Class1        // QR versions 10 to 26
	Class2        // QR versions 27 to 40
)

// SizeClass returns the size class of v, as documented under Class0.
func (v Version) SizeClass() int {
	if v <= 9 {
		return Class0
	}
	if v <= 26 {
		return Class1
	}
	return Class2
}

// CountLength returns the length in bits of the byte mode character
// count field at version v.
func (v Version) CountLength() int {
	if v.SizeClass() == Class0 {
		return 8
	}
	return 16
}

// Alignment returns the row and column coordinates of alignment
// pattern centres for v.  Patterns are placed at every combination
// except those overlapping position patterns.  The returned slice must
// not be modified.
func (v Version) Alignment() []int {
	return vtab[v].align
}

// A Block describes a group of error correction blocks
// of identical structure.
type Block struct {
	Count int // number of blocks
	Total int // codewords per block
	Data  int // data codewords per block
}

// Check returns the number of error correction codewords per block.
func (b Block) Check() int { return b.Total - b.Data }

// Blocks returns the error correction block plan for v and l.
// The returned slice must not be modified.
func (v Version) Blocks(l Level) []Block {
	return vtab[v].level[l].blocks
}

// DataBytes returns the number of data codewords that can be
// stored in a QR code with the given version and level.
func (v Version) DataBytes(l Level) int {
	n := 0
	for _, b := range v.Blocks(l) {
		n += b.Count * b.Data
	}
	return n
}

// TotalBytes returns the total number of codewords, data and error
// correction, in a QR code of version v at level l.
func (v Version) TotalBytes(l Level) int {
	n := 0
	for _, b := range v.Blocks(l) {
		n += b.Count * b.Total
	}
	return n
}

// DataBits returns the number of data bits that can be
// stored in a QR code with the given version and level.
func (v Version) DataBits(l Level) int { return v.DataBytes(l) * 8 }

// Capacity returns the maximum length in bytes of a single byte mode
// segment at the given version and level, as published in ISO/IEC
// 18004 table 7.
func (v Version) Capacity(l Level) int { return vtab[v].level[l].capacity }

// A version describes metadata associated with a version.
type version struct {
	align []int
	level [4]level
}

type level struct {
	capacity int
	blocks   []Block
}

// CapacityError reports data that does not fit a QR code.
type CapacityError struct {
	Bits int // encoded data length
	Max  int // data capacity of the code
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("qr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Max)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// RangeError reports a module coordinate outside of the code.
type RangeError struct {
	Row, Col int
	Size     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("qr: module %d,%d out of range [0,%d)",
		e.Row, e.Col, e.Size)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// Bits is an append-only bit buffer written most significant bit
// first.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a QR code of the
// given version and level.
func NewBits(v Version, l Level) *Bits {
	return &Bits{b: make([]byte, 0, v.TotalBytes(l))}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Bits returns the length of b in bits.
func (b *Bits) Bits() int {
	return b.nbit
}

// Bytes returns the contents of b.  The last byte is padded with
// zero bits if the length of b is not a multiple of 8.
func (b *Bits) Bytes() []byte {
	return b.b
}

// Write appends the low nbit bits of v to b, most significant first.
// nbit must be between 0 and 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit == 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// WriteBit appends a single bit to b.
func (b *Bits) WriteBit(bit bool) {
	var v uint32
	if bit {
		v = 1
	}
	b.Write(v, 1)
}
