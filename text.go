// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"io"
	"strings"
)

// Half block characters indexed by upper and lower pixel.
var halfBlocks = [4]string{" ", "▄", "▀", "█"}

// String renders the code with its quiet zone as UTF-8 text, two
// pixels per character cell, dark pixels drawn as blocks.  c.Scale is
// ignored.
func (c *Code) String() string {
	bord := max(c.Border, 0)
	pix := c.Size + 2*bord
	var b strings.Builder
	b.Grow((pix*len("█") + 1) * (pix + 1) / 2)
	for y := -bord; y < c.Size+bord; y += 2 {
		for x := -bord; x < c.Size+bord; x++ {
			i := 0
			if c.Black(x, y) != c.Reverse {
				i |= 2
			}
			if y+1 < c.Size+bord && c.Black(x, y+1) != c.Reverse {
				i |= 1
			}
			b.WriteString(halfBlocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeASCII writes the code with its quiet zone to w as text, one
// line per pixel row, dark pixels drawn as "##".  c.Scale is ignored.
func (c *Code) EncodeASCII(w io.Writer) error {
	bord := max(c.Border, 0)
	pix := c.Size + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < c.Size+bord; y++ {
		for x := -bord; x < c.Size+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}
