// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"math"

	"github.com/unixdj/qrmatrix/coding"
)

// MaxPlaceholderVersion is the highest version supporting a logo
// placeholder.
const MaxPlaceholderVersion coding.Version = 12

// Logo placeholder parameters per level: the percentage of modules the
// level can recover, and the number of modules trimmed from each side
// of the square covering that share.
var placeholderParams = [4]struct{ percent, trim int }{
	coding.L: {7, 1},
	coding.M: {15, 2},
	coding.Q: {25, 3},
	coding.H: {30, 3},
}

// placeholder returns the blank square reserved for a logo at version
// v and level l, X being the column and Y the row.  The square of
// edge e covers percent of the modules, e = ⌊√(n²·percent)⌋, with
// its upper left module at ⌊(n-e)/2⌋+1; trim modules are dropped on
// every side.
func placeholder(v coding.Version, l Level) (image.Rectangle, error) {
	if !l.IsValid() {
		return image.Rectangle{}, coding.ErrLevel
	}
	if v > MaxPlaceholderVersion {
		return image.Rectangle{}, ErrPlaceholder
	}
	p := placeholderParams[l]
	n := v.Size()
	edge := int(math.Sqrt(float64(n * n * p.percent / 100)))
	tl := (n-edge)/2 + 1
	lo, hi := tl+p.trim, tl+edge-p.trim
	return image.Rect(lo, lo, hi, hi), nil
}

// Placeholder returns the blank square reserved for a logo, X being
// the column and Y the row.  The rectangle is empty if no placeholder
// was requested.
func (c *Code) Placeholder() image.Rectangle { return c.ph }

// InPlaceholder reports whether the module at row, col is in the logo
// placeholder.  Renderings leave such modules blank.
func (c *Code) InPlaceholder(row, col int) bool {
	return image.Pt(col, row).In(c.ph)
}
