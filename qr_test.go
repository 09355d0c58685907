// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qr

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unixdj/qrmatrix/coding"
)

var levels = [...]Level{L, M, Q, H}

func TestMinVersion(t *testing.T) {
	for _, tt := range []struct {
		n    int
		l    Level
		want coding.Version
	}{
		{0, L, 1},
		{17, L, 1},
		{18, L, 2},
		{14, M, 1},
		{20, M, 2},
		{7, H, 1},
		{8, H, 2},
		{2953, L, 40},
		{1273, H, 40},
		{1220, H, 40},
		{1219, H, 39},
	} {
		got, err := MinVersion(tt.n, tt.l)
		if err != nil || got != tt.want {
			t.Errorf("MinVersion(%d, %v) = %v, %v; want %v",
				tt.n, tt.l, got, err, tt.want)
		}
	}
}

func TestMinVersionMonotonic(t *testing.T) {
	var prev [4]coding.Version
	for n := 0; n <= 2953; n++ {
		var last coding.Version
		for _, l := range levels {
			v, err := MinVersion(n, l)
			if err != nil {
				// once a level overflows so do the higher ones
				last = coding.MaxVersion + 1
				continue
			}
			if v < prev[l] {
				t.Fatalf("MinVersion(%d, %v) = %v < %v for %d bytes",
					n, l, v, prev[l], n-1)
			}
			if v < last {
				t.Fatalf("MinVersion(%d, %v) = %v < %v for lower level",
					n, l, v, last)
			}
			if v.Capacity(l) < n || v > 1 && (v-1).Capacity(l) >= n {
				t.Fatalf("MinVersion(%d, %v) = %v not minimal", n, l, v)
			}
			prev[l], last = v, v
		}
	}
}

func TestCapacityExceeded(t *testing.T) {
	_, err := Encode(strings.Repeat("a", 2954), L, nil)
	if !errors.Is(err, coding.ErrCapacity) {
		t.Errorf("Encode(2954 bytes, L) = %v, want ErrCapacity", err)
	}
	// 1275 bytes with the byte order mark
	_, err = Encode(strings.Repeat("a", 1270)+"é", H, nil)
	if !errors.Is(err, coding.ErrCapacity) {
		t.Errorf("Encode(1270 bytes + é, H) = %v, want ErrCapacity", err)
	}
	if _, err = Encode(strings.Repeat("a", 1273), H, nil); err != nil {
		t.Errorf("Encode(1273 bytes, H) = %v", err)
	}
}

func TestVersionSelection(t *testing.T) {
	const hex = "0123456789abcdef0123"
	c, err := Encode(hex, M, nil)
	if err != nil {
		t.Fatal(err)
	}
	if c.Version() != 2 || c.ModuleCount() != 25 || c.Warning() != nil {
		t.Errorf("version %v, %d modules, warning %v; want 2, 25, nil",
			c.Version(), c.ModuleCount(), c.Warning())
	}

	var logs []string
	opts := &Options{
		Version: 1,
		Logf: func(format string, args ...any) {
			logs = append(logs, fmt.Sprintf(format, args...))
		},
	}
	c, err = Encode(hex, M, opts)
	if err != nil {
		t.Fatal(err)
	}
	if c.Version() != 2 {
		t.Errorf("version hint 1: got version %v, want 2", c.Version())
	}
	var ve *VersionError
	if !errors.As(c.Warning(), &ve) || *ve != (VersionError{1, 2}) ||
		!errors.Is(c.Warning(), ErrVersionTooSmall) {
		t.Errorf("Warning() = %v, want VersionError{1, 2}", c.Warning())
	}
	if len(logs) == 0 || logs[0] != ve.Error() {
		t.Errorf("logged %q, want %q first", logs, ve.Error())
	}

	opts.Version = 5
	if c, err = Encode(hex, M, opts); err != nil || c.Version() != 5 ||
		c.Warning() != nil {
		t.Errorf("version hint 5: version %v, %v, warning %v",
			c.Version(), err, c.Warning())
	}

	opts.Version = 41
	if _, err = Encode(hex, M, opts); err != coding.ErrVersion {
		t.Errorf("version hint 41: %v, want ErrVersion", err)
	}
	if _, err = Encode(hex, 7, nil); err != coding.ErrLevel {
		t.Errorf("level 7: %v, want ErrLevel", err)
	}
}

func TestPlaceholder(t *testing.T) {
	c, err := Encode("logo", H, &Options{Version: 7, Placeholder: true})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := c.Placeholder(), image.Rect(14, 14, 32, 32); got != want {
		t.Fatalf("Placeholder() = %v, want %v", got, want)
	}
	for _, tt := range []struct {
		row, col int
		want     bool
	}{
		{14, 14, true}, {31, 31, true}, {22, 22, true}, {14, 31, true},
		{13, 14, false}, {14, 13, false}, {32, 31, false}, {31, 32, false},
	} {
		if got := c.InPlaceholder(tt.row, tt.col); got != tt.want {
			t.Errorf("InPlaceholder(%d, %d) = %v, want %v",
				tt.row, tt.col, got, tt.want)
		}
	}
	// Blank in the bitmap, encoded in the symbol.
	dark := 0
	for row := 14; row < 32; row++ {
		for col := 14; col < 32; col++ {
			if c.Black(col, row) {
				t.Errorf("placeholder pixel %d,%d is dark", col, row)
			}
			if d, _ := c.IsDark(row, col); d {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Error("no dark modules under the placeholder")
	}
	if d, _ := c.IsDark(0, 0); !d || !c.Black(0, 0) {
		t.Error("module 0,0 is light")
	}
}

func TestPlaceholderTable(t *testing.T) {
	for v := coding.MinVersion; v <= MaxPlaceholderVersion; v++ {
		n := v.Size()
		for _, l := range levels {
			r, err := placeholder(v, l)
			if err != nil {
				t.Fatalf("%v-%v: %v", v, l, err)
			}
			if r.Empty() || r.Dx() != r.Dy() ||
				!r.In(image.Rect(0, 0, n, n)) {
				t.Errorf("%v-%v: placeholder %v", v, l, r)
			}
			// centred, possibly one module off
			if d := r.Min.X + r.Max.X - n; d < -1 || d > 3 {
				t.Errorf("%v-%v: placeholder %v off centre by %d",
					v, l, r, d)
			}
		}
	}
}

func TestPlaceholderVersionTooHigh(t *testing.T) {
	_, err := Encode("logo", L, &Options{Version: 13, Placeholder: true})
	if err != ErrPlaceholder {
		t.Errorf("version 13: %v, want ErrPlaceholder", err)
	}
	// automatic version 13
	text := strings.Repeat("x", coding.Version(12).Capacity(M)+1)
	_, err = Encode(text, M, &Options{Placeholder: true})
	if err != ErrPlaceholder {
		t.Errorf("automatic version 13: %v, want ErrPlaceholder", err)
	}
	if _, err = Encode(text, M, nil); err != nil {
		t.Errorf("no placeholder: %v", err)
	}
}

func TestRange(t *testing.T) {
	c, err := Encode("range", Q, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {21, 0}, {0, 21}} {
		if _, err := c.IsDark(rc[0], rc[1]); !errors.Is(err, coding.ErrRange) {
			t.Errorf("IsDark(%d, %d) = %v", rc[0], rc[1], err)
		}
		if _, err := c.Structure(rc[0], rc[1]); !errors.Is(err, coding.ErrRange) {
			t.Errorf("Structure(%d, %d) = %v", rc[0], rc[1], err)
		}
		if _, _, err := c.Eye(rc[0], rc[1]); !errors.Is(err, coding.ErrRange) {
			t.Errorf("Eye(%d, %d) = %v", rc[0], rc[1], err)
		}
	}
	if c.Black(-1, 0) || c.Black(0, 21) {
		t.Error("pixels outside of the code are dark")
	}
}

func TestEye(t *testing.T) {
	c, err := Encode("eyes", M, &Options{Version: 2})
	if err != nil {
		t.Fatal(err)
	}
	n := c.ModuleCount()
	for _, tt := range []struct {
		row, col int
		want     string
	}{
		{0, 0, "POD_TL_TLC"},
		{0, 6, "POD_TL_TRC"},
		{6, 0, "POD_TL_BLC"},
		{6, 6, "POD_TL_BRC"},
		{0, 3, "POD_TL"},
		{3, 3, "PID_TL_C"},
		{2, 4, "PID_TL"},
		{0, n - 1, "POD_TR_TRC"},
		{3, n - 4, "PID_TR_C"},
		{n - 1, 0, "POD_BL_BLC"},
		{n - 7, 6, "POD_BL_TRC"},
		{18, 18, "AID_C"},
		{16, 16, "AOD_TLC"},
		{20, 20, "AOD_BRC"},
		{20, 18, "AOD"},
	} {
		e, ok, err := c.Eye(tt.row, tt.col)
		if err != nil || !ok || e.String() != tt.want {
			t.Errorf("Eye(%d, %d) = %v, %v, %v; want %s",
				tt.row, tt.col, e, ok, err, tt.want)
		}
	}
	for _, rc := range [][2]int{
		{1, 1},         // light ring
		{7, 7},         // separator
		{6, 10},        // timing
		{17, 18},       // alignment light ring
		{8, 0},         // format
		{n - 1, n - 1}, // data
	} {
		if e, ok, _ := c.Eye(rc[0], rc[1]); ok {
			t.Errorf("Eye(%d, %d) = %v, want none", rc[0], rc[1], e)
		}
	}
	s, _ := c.Structure(6, 10)
	if s.Role != coding.Timing {
		t.Errorf("Structure(6, 10) = %+v, want timing", s)
	}
}

func TestParallel(t *testing.T) {
	for _, l := range levels {
		text := strings.Repeat("parallel ", 10*int(l)+3)
		a, err := Encode(text, l, nil)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Encode(text, l, &Options{Parallel: true})
		if err != nil {
			t.Fatal(err)
		}
		if a.Mask() != b.Mask() {
			t.Errorf("level %v: mask %d, parallel %d", l, a.Mask(), b.Mask())
		}
		if diff := cmp.Diff(a.Bitmap, b.Bitmap); diff != "" {
			t.Errorf("level %v: parallel bitmap differs:\n%s", l, diff)
		}
	}
}

func TestImage(t *testing.T) {
	c, err := Encode("image", L, nil)
	if err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	d := (21 + 2*DefaultBorder) * DefaultScale
	if got := img.Bounds(); got != image.Rect(0, 0, d, d) {
		t.Fatalf("Bounds() = %v, want %d×%d", got, d, d)
	}
	edge := DefaultBorder * DefaultScale
	black, white := color.Gray{0}, color.Gray{0xff}
	for _, tt := range []struct {
		x, y int
		want color.Color
	}{
		{0, 0, white},
		{edge - 1, edge, white},
		{edge, edge, black},
		{edge + DefaultScale - 1, edge + DefaultScale - 1, black},
		{edge + DefaultScale, edge + DefaultScale, white},
		{d - 1, d - 1, white},
	} {
		if got := img.At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	c.Reverse = true
	c.Scale, c.Border = 1, 0
	c.Palette = &[2]color.Color{color.RGBA{0xff, 0, 0, 0xff},
		color.RGBA{0, 0, 0xff, 0xff}}
	img = c.Image()
	if got := img.At(0, 0); got != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("reversed At(0, 0) = %v, want red", got)
	}
	if got := img.At(1, 1); got != (color.RGBA{0, 0, 0xff, 0xff}) {
		t.Errorf("reversed At(1, 1) = %v, want blue", got)
	}
}

func TestEncodePBM(t *testing.T) {
	c, err := Encode("pbm", M, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.Scale, c.Border = 2, 1
	var b bytes.Buffer
	if err := c.EncodePBM(&b); err != nil {
		t.Fatal(err)
	}
	const side = (21 + 2) * 2
	hdr := "P4\n" + strconv.Itoa(side) + " " + strconv.Itoa(side) + "\n"
	out := b.Bytes()
	if !bytes.HasPrefix(out, []byte(hdr)) {
		t.Fatalf("header %q, want %q", out[:len(hdr)], hdr)
	}
	stride := (side + 7) / 8
	if got, want := len(out)-len(hdr), stride*side; got != want {
		t.Fatalf("%d bytes of data, want %d", got, want)
	}
	data := out[len(hdr):]
	// quiet zone, then 14 dark pixels of the finder pattern
	want := [][]byte{
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0x3f, 0xff},
		{0x3f, 0xff},
	}
	for i, w := range want {
		if got := data[i*stride : i*stride+len(w)]; !bytes.Equal(got, w) {
			t.Errorf("row %d: %x, want %x", i, got, w)
		}
	}
}

func TestText(t *testing.T) {
	c, err := Encode("text", L, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.Border = 1
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 12 {
		t.Fatalf("String() has %d lines, want 12", len(lines))
	}
	// rows -1 and 0: quiet zone over the top of the finder patterns
	finder := strings.Repeat("▄", 7)
	if !strings.HasPrefix(lines[0], " "+finder+" ") ||
		!strings.HasSuffix(lines[0], " "+finder+" ") {
		t.Errorf("line 0 = %q", lines[0])
	}
	// the last row is alone
	if lines[11] != strings.Repeat(" ", 23) {
		t.Errorf("line 11 = %q", lines[11])
	}

	var b bytes.Buffer
	if err := c.EncodeASCII(&b); err != nil {
		t.Fatal(err)
	}
	rows := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(rows) != 23 {
		t.Fatalf("EncodeASCII wrote %d lines, want 23", len(rows))
	}
	if rows[0] != strings.Repeat(" ", 46) {
		t.Errorf("row 0 = %q", rows[0])
	}
	if !strings.HasPrefix(rows[1], "  "+strings.Repeat("#", 14)+"  ") {
		t.Errorf("row 1 = %q", rows[1])
	}
	if !strings.HasPrefix(rows[2], "  ##"+strings.Repeat(" ", 10)+"##  ") {
		t.Errorf("row 2 = %q", rows[2])
	}
}
