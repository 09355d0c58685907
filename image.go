// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"image"
	"image/color"
)

// Image returns an Image displaying the code, scaled by c.Scale and
// surrounded by a quiet zone c.Border modules wide.
func (c *Code) Image() image.Image {
	scale := max(c.Scale, 1)
	bord := max(c.Border, 0)
	light, dark := color.Color(color.Gray{0xff}), color.Color(color.Gray{0x00})
	if c.Palette != nil {
		light, dark = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		light, dark = dark, light
	}
	return &codeImage{c, scale, bord, light, dark}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
	scale, bord int
	light, dark color.Color
}

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + 2*c.bord) * c.scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	if c.Black(x/c.scale-c.bord, y/c.scale-c.bord) {
		return c.dark
	}
	return c.light
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette != nil {
		return color.Palette{c.light, c.dark}
	}
	return color.GrayModel
}
