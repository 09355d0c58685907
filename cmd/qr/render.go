package main

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	qr "github.com/unixdj/qrmatrix"
)

// orient returns the mapping from a pixel of the rotated and reflected
// code of size siz to the pixel of the original.  cx is the index in
// inc of the source X coordinate increment.
func orient(siz, cx int, inc [2]int) func(x, y int) (int, int) {
	axis := func(i, d int) int {
		if d < 0 {
			return siz - 1 - i
		}
		return i
	}
	return func(x, y int) (int, int) {
		var src [2]int
		src[cx] = axis(x, inc[0])
		src[cx^1] = axis(y, inc[1])
		return src[0], src[1]
	}
}

// randr rotates and reflects the bitmap of c.
func randr(c *qr.Code, cx int, inc [2]int) *qr.Code {
	if cx == 0 && inc == [2]int{1, 1} {
		return c
	}
	src := orient(c.Size, cx, inc)
	b := make([]byte, len(c.Bitmap))
	for y := 0; y < c.Size; y++ {
		row := b[y*c.Stride : (y+1)*c.Stride]
		for x := 0; x < c.Size; x++ {
			if c.Black(src(x, y)) {
				row[x>>3] |= 0x80 >> (x & 7)
			}
		}
	}
	c.Bitmap = b
	return c
}

// US letter, in points.
const pageW, pageH = 612, 792

// colours returns the light and dark colours of c as c.Image paints
// them.
func colours(c *qr.Code) (light, dark color.Color) {
	light, dark = color.White, color.Black
	if c.Palette != nil {
		light, dark = c.Palette[0], c.Palette[1]
	}
	if c.Reverse {
		light, dark = dark, light
	}
	return light, dark
}

// setrgb returns the PostScript making col the current colour.  Alpha
// is dropped.
func setrgb(col color.Color) string {
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return fmt.Sprintf("%.3g %.3g %.3g setrgbcolor",
		float64(n.R)/0xff, float64(n.G)/0xff, float64(n.B)/0xff)
}

// eps writes c as Encapsulated PostScript centred on a letter page,
// c.Scale points per module.  The code and its quiet zone are filled
// with the light colour, then every horizontal run of dark pixels is
// filled as one rectangle, so the blank placeholder stays light.
func eps(c *qr.Code, w io.Writer) error {
	siz := c.Size
	scale := max(c.Scale, 1)
	bord := max(c.Border, 0)
	d := (siz + 2*bord) * scale
	bbox := image.Rect(0, 0, d, d).Add(image.Pt((pageW-d)/2, (pageH-d)/2))
	light, dark := colours(c)

	b := bufio.NewWriter(w)
	fmt.Fprintf(b, `%%!PS-Adobe-3.0 EPSF-3.0
%%%%Creator: qr https://github.com/unixdj/qrmatrix
%%%%Title: QR Code %v-%v
%%%%BoundingBox: %d %d %d %d
%%%%EndComments
%%%%BeginProlog
/R { 1 rectfill } bind def
%%%%EndProlog
gsave
%d %d translate
%d dup neg scale
%d dup translate
%s
%d dup %d dup rectfill
%s
`,
		c.Version(), c.Level(),
		bbox.Min.X, bbox.Min.Y, bbox.Max.X, bbox.Max.Y,
		bbox.Min.X, bbox.Max.Y, scale, bord,
		setrgb(light), -bord, siz+2*bord, setrgb(dark))
	for y := 0; y < siz; y++ {
		for x := 0; x < siz; x++ {
			if !c.Black(x, y) {
				continue
			}
			x0 := x
			for x < siz && c.Black(x, y) {
				x++
			}
			fmt.Fprintf(b, "%d %d %d R\n", x0, y, x-x0)
		}
	}
	io.WriteString(b, "grestore\n%%Trailer\n%%EOF\n")
	return b.Flush()
}
