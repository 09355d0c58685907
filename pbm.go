// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette, as other PNM
// formats are not supported.
func (c *Code) EncodePBM(w io.Writer) error {
	b := bufio.NewWriter(w)
	scale := max(c.Scale, 1)
	bord := max(c.Border, 0)
	length := scale * (c.Size + bord*2)
	ls := strconv.Itoa(length)
	if _, err := b.WriteString("P4\n" + ls + " " + ls + "\n"); err != nil {
		return err
	}
	row := make([]byte, (length+7)/8)
	for y := -bord; y < c.Size+bord; y++ {
		pbmRow(row, c, y, scale, bord)
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// pbmRow encodes code row y, including the quiet zone, into row.  In
// PBM 1 is black.
func pbmRow(row []byte, c *Code, y, scale, bord int) {
	for i := range row {
		row[i] = 0
	}
	j := 0
	for x := -bord; x < c.Size+bord; x++ {
		on := c.Black(x, y) != c.Reverse
		for i := 0; i < scale; i, j = i+1, j+1 {
			if on {
				row[j>>3] |= 0x80 >> (j & 7)
			}
		}
	}
}
