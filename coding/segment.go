// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// ModeByte is the 4 bit mode indicator of byte mode segments.
const ModeByte = 0x4

// bom is the UTF-8 byte order mark.
const bom = "\xef\xbb\xbf"

// A Segment is a byte mode QR code segment.
type Segment struct {
	Text string // source text
	data []byte // encoded payload
}

// NewSegment returns a byte mode segment for text.
//
// Each rune is split into bytes with the bit layout of UTF-8, but the
// sequence length is picked by strict comparison with the range
// limits: runes up to and including 0x80 take one byte, up to 0x800
// two, up to 0x10000 three, and larger runes four.  Runes on the
// boundaries are therefore truncated to the shorter sequence.  If any
// rune takes more than one byte the payload is prefixed with the
// UTF-8 byte order mark.
func NewSegment(text string) Segment {
	data := make([]byte, 0, len(text)+len(bom))
	n := 0
	for _, r := range text {
		c := uint32(r)
		switch {
		case c > 0x10000:
			data = append(data,
				0xf0|byte(c&0x1c0000>>18),
				0x80|byte(c&0x3f000>>12),
				0x80|byte(c&0xfc0>>6),
				0x80|byte(c&0x3f))
		case c > 0x800:
			data = append(data,
				0xe0|byte(c&0xf000>>12),
				0x80|byte(c&0xfc0>>6),
				0x80|byte(c&0x3f))
		case c > 0x80:
			data = append(data,
				0xc0|byte(c&0x7c0>>6),
				0x80|byte(c&0x3f))
		default:
			data = append(data, byte(c))
		}
		n++
	}
	if len(data) != n {
		data = append(data, bom...)
		copy(data[len(bom):], data)
		copy(data, bom)
	}
	return Segment{Text: text, data: data}
}

// Len returns the length of the payload in bytes.
func (seg Segment) Len() int { return len(seg.data) }

// Bytes returns the payload.  The returned slice must not be modified.
func (seg Segment) Bytes() []byte { return seg.data }

// EncodedLength returns the length in bits of seg encoded at version
// v, including the mode indicator and the character count.
func (seg Segment) EncodedLength(v Version) int {
	return 4 + v.CountLength() + len(seg.data)*8
}

// Encode writes seg encoded for version v to b: the mode indicator,
// the character count and the payload.
func (seg Segment) Encode(b *Bits, v Version) {
	b.Write(ModeByte, 4)
	b.Write(uint32(len(seg.data)), v.CountLength())
	for _, c := range seg.data {
		b.Write(uint32(c), 8)
	}
}
