// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
	"strings"

	"github.com/unixdj/qrmatrix/coding"
)

// A Code is an encoded QR code.
//
// The exported fields describe the rendered image: a square pixel grid
// with one pixel per module, placeholder modules left blank.  The
// methods taking row and column query the encoded symbol itself.
type Code struct {
	Bitmap []byte // 1 is dark, 0 is light
	Size   int    // number of pixels on a side
	Stride int    // number of bytes per row

	Scale   int             // number of image pixels per QR pixel
	Border  int             // quiet zone width in QR pixels
	Reverse bool            // swap dark and light
	Palette *[2]color.Color // light and dark colours, nil for grey

	sym  *coding.Symbol
	ph   image.Rectangle // placeholder, X is column, Y is row
	warn error
}

// Default rendering parameters.
const (
	DefaultScale  = 8
	DefaultBorder = 4
)

func newCode(sym *coding.Symbol, ph image.Rectangle, warn error) *Code {
	siz := sym.Size()
	stride := (siz + 7) / 8
	c := &Code{
		Bitmap: make([]byte, stride*siz),
		Size:   siz,
		Stride: stride,
		Scale:  DefaultScale,
		Border: DefaultBorder,
		sym:    sym,
		ph:     ph,
		warn:   warn,
	}
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if d, _ := sym.IsDark(y, x); d && !c.InPlaceholder(y, x) {
				c.Bitmap[y*stride+x/8] |= 0x80 >> (x & 7)
			}
		}
	}
	return c
}

// Black reports whether the pixel at (x,y) is dark.  Pixels outside
// of the code, including the quiet zone, are light.
func (c *Code) Black(x, y int) bool {
	return 0 <= x && x < c.Size && 0 <= y && y < c.Size &&
		c.Bitmap[y*c.Stride+x/8]&(0x80>>(x&7)) != 0
}

// Version returns the version of the code.
func (c *Code) Version() coding.Version { return c.sym.Version() }

// Level returns the error correction level of the code.
func (c *Code) Level() Level { return c.sym.Level() }

// Mask returns the mask pattern chosen for the code.
func (c *Code) Mask() int { return c.sym.Mask() }

// ModuleCount returns the number of modules on a side.
func (c *Code) ModuleCount() int { return c.sym.Size() }

// Warning returns the non-fatal diagnostic reported while encoding, or
// nil.  It is a *VersionError if the requested version was too small.
func (c *Code) Warning() error { return c.warn }

// Codewords returns the interleaved data and error correction
// codewords.
func (c *Code) Codewords() []byte {
	b, _ := c.sym.Codewords()
	return b
}

// IsDark reports whether the module at row, col is dark.  It fails
// with a *coding.RangeError outside of the code.  Modules in the
// placeholder report their encoded colour.
func (c *Code) IsDark(row, col int) (bool, error) {
	return c.sym.IsDark(row, col)
}

// A Structure describes the structural pattern a module belongs to.
type Structure struct {
	Role     coding.Role
	Position coding.Position
	Corner   coding.Corner
}

// Structure returns the structural classification of the module at
// row, col.  Data, format, version and separator modules have role
// coding.RoleNone.
func (c *Code) Structure(row, col int) (Structure, error) {
	m, err := c.sym.Module(row, col)
	if err != nil {
		return Structure{}, err
	}
	return Structure{m.Role, m.Position, m.Corner}, nil
}

// An Eye describes a module of a position or alignment pattern, as
// used by renderers that draw those patterns in a separate style.
type Eye struct {
	Dark bool
	Structure
}

// String returns the type code of e, such as POD_TL_TLC for the top
// left corner of the outer ring of the top left position pattern,
// PID_TR_C for the centre of the top right one, or AID_C for the
// centre of an alignment pattern.
func (e Eye) String() string {
	var b strings.Builder
	if e.Position == coding.Alignment {
		b.WriteByte('A')
	} else {
		b.WriteByte('P')
	}
	switch e.Role {
	case coding.FinderOuter, coding.AlignmentOuter:
		b.WriteByte('O')
	default:
		b.WriteByte('I')
	}
	if e.Dark {
		b.WriteByte('D')
	} else {
		b.WriteByte('L')
	}
	if e.Position != coding.Alignment {
		b.WriteString("_" + e.Position.Abbrev())
	}
	if e.Corner != coding.NoCorner {
		b.WriteString("_" + e.Corner.Abbrev())
	}
	return b.String()
}

// Eye returns the position or alignment pattern module at row, col.
// ok is false for other modules, including timing patterns.
func (c *Code) Eye(row, col int) (e Eye, ok bool, err error) {
	m, err := c.sym.Module(row, col)
	if err != nil {
		return Eye{}, false, err
	}
	switch m.Role {
	case coding.FinderOuter, coding.FinderInner,
		coding.AlignmentOuter, coding.AlignmentInner:
		return Eye{m.Dark(), Structure{m.Role, m.Position, m.Corner}},
			true, nil
	}
	return Eye{}, false, nil
}
