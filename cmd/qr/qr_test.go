package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"gopkg.in/op/go-logging.v1"

	qr "github.com/unixdj/qrmatrix"
)

func TestLoadConfig(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "qr.toml")
	if err := os.WriteFile(fn, []byte(`
Level = "q"
Version = 7
Margin = 0
Type = "pbmi"
Charset = "Shift-JIS"
Placeholder = true
Foreground = "00f"
Colour = "red"
`), 0666); err != nil {
		t.Fatal(err)
	}
	cfg, undecoded, err := loadConfig(fn)
	if err != nil {
		t.Fatal(err)
	}
	zero := 0
	want := &Config{
		Level:       "q",
		Version:     7,
		Margin:      &zero,
		Type:        "pbmi",
		Charset:     "Shift-JIS",
		Placeholder: true,
		Foreground:  "00f",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Colour"}, undecoded); diff != "" {
		t.Errorf("undecoded keys mismatch (-want +got):\n%s", diff)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	neg := -1
	for _, cfg := range []Config{
		{Level: "x"},
		{Level: "lm"},
		{Version: 41},
		{Scale: -1},
		{Margin: &neg},
		{Type: "gif"},
		{Charset: "ebcdic"},
	} {
		if err := cfg.validate(); err == nil {
			t.Errorf("validate(%+v) succeeded", cfg)
		}
	}
}

func TestCharset(t *testing.T) {
	for _, tt := range []struct {
		name, in, want string
	}{
		{"", "héllo", "héllo"},
		{"latin1", "h\xe9llo", "héllo"},
		{"sjis", "\x82\xa0\x82\xa2", "あい"},
	} {
		e, err := charset(tt.name)
		if err != nil {
			t.Fatal(err)
		}
		got, err := toUTF8(tt.in, e)
		if err != nil || got != tt.want {
			t.Errorf("toUTF8(%q, %s) = %q, %v; want %q",
				tt.in, tt.name, got, err, tt.want)
		}
	}
	if e, _ := charset("ISO8859-1"); e != charmap.ISO8859_1 {
		t.Errorf("charset(ISO8859-1) = %v", e)
	}
	if e, _ := charset("Shift-JIS"); e != japanese.ShiftJIS {
		t.Errorf("charset(Shift-JIS) = %v", e)
	}
}

func TestColour(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want rgba
	}{
		{"black", rgba{0, 0, 0, 0xff}},
		{"Blue", rgba{0, 0, 0xff, 0xff}},
		{"f80", rgba{0xff, 0x88, 0x00, 0xff}},
		{"f808", rgba{0xff, 0x88, 0x00, 0x88}},
		{"123456", rgba{0x12, 0x34, 0x56, 0xff}},
		{"12345678", rgba{0x12, 0x34, 0x56, 0x78}},
	} {
		var c rgba
		if err := c.parse(tt.in); err != nil || c != tt.want {
			t.Errorf("parse(%q) = %v, %v; want %v", tt.in, c, err, tt.want)
		}
	}
	var c rgba
	for _, s := range []string{"", "12", "12345", "nope"} {
		if err := c.parse(s); err == nil {
			t.Errorf("parse(%q) succeeded", s)
		}
	}
}

func TestRandr(t *testing.T) {
	orig, err := qr.Encode("randr", qr.M, nil)
	if err != nil {
		t.Fatal(err)
	}
	siz := orig.Size
	for _, tt := range []struct {
		name string
		cx   int
		inc  [2]int
		src  func(x, y int) (int, int)
	}{
		{"none", 0, [2]int{1, 1},
			func(x, y int) (int, int) { return x, y }},
		{"flip", 0, [2]int{-1, 1},
			func(x, y int) (int, int) { return siz - 1 - x, y }},
		{"rotate", 1, [2]int{1, -1},
			func(x, y int) (int, int) { return siz - 1 - y, x }},
	} {
		c, _ := qr.Encode("randr", qr.M, nil)
		c = randr(c, tt.cx, tt.inc)
		if len(c.Bitmap) != len(orig.Bitmap) {
			t.Fatalf("%s: bitmap length %d, want %d",
				tt.name, len(c.Bitmap), len(orig.Bitmap))
		}
		for y := 0; y < siz; y++ {
			for x := 0; x < siz; x++ {
				sx, sy := tt.src(x, y)
				if c.Black(x, y) != orig.Black(sx, sy) {
					t.Fatalf("%s: pixel %d,%d differs from %d,%d",
						tt.name, x, y, sx, sy)
				}
			}
		}
	}
}

func TestFatal(t *testing.T) {
	var buf bytes.Buffer
	setupLog(&buf, logging.WARNING)
	defer setupLog(os.Stderr, logging.WARNING)
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()
	fatal(errors.New("no such 100% file"))
	if code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if got := buf.String(); !strings.Contains(got, "CRIT no such 100% file") {
		t.Errorf("log output %q lacks the error", got)
	}
}

// epsRuns parses the dark runs drawn by eps, returning them as
// rectangles of modules.
func epsRuns(t *testing.T, out string) []image.Rectangle {
	var runs []image.Rectangle
	for _, line := range strings.Split(out, "\n") {
		if !strings.HasSuffix(line, " R") || strings.HasPrefix(line, "/") {
			continue
		}
		var x, y, n int
		if _, err := fmt.Sscanf(line, "%d %d %d R", &x, &y, &n); err != nil {
			t.Fatalf("bad run %q: %v", line, err)
		}
		runs = append(runs, image.Rect(x, y, x+n, y+1))
	}
	return runs
}

func TestEPS(t *testing.T) {
	c, err := qr.Encode("eps", qr.H, &qr.Options{Version: 7, Placeholder: true})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := eps(c, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	// (45+2*4)*8 = 424 points centred on 612x792
	for _, want := range []string{
		"%!PS-Adobe-3.0 EPSF-3.0\n",
		"%%Title: QR Code 7-H\n",
		"%%BoundingBox: 94 184 518 608\n",
		"94 608 translate\n8 dup neg scale\n4 dup translate\n",
		"1 1 1 setrgbcolor\n-4 dup 53 dup rectfill\n0 0 0 setrgbcolor\n",
		"%%EOF\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q", want)
		}
	}
	ph := c.Placeholder()
	n := 0
	for _, r := range epsRuns(t, out) {
		if r.Overlaps(ph) {
			t.Errorf("run %v overlaps placeholder %v", r, ph)
		}
		if c.Black(r.Min.X-1, r.Min.Y) || c.Black(r.Max.X, r.Min.Y) {
			t.Errorf("run %v is not maximal", r)
		}
		for x := r.Min.X; x < r.Max.X; x++ {
			if !c.Black(x, r.Min.Y) {
				t.Errorf("run %v covers light pixel %d", r, x)
			}
			n++
		}
	}
	dark := 0
	for y := 0; y < c.Size; y++ {
		for x := 0; x < c.Size; x++ {
			if c.Black(x, y) {
				dark++
			}
		}
	}
	if n != dark {
		t.Errorf("runs cover %d pixels, want %d", n, dark)
	}

	c.Palette = &[2]color.Color{color.RGBA{0xff, 0xff, 0, 0xff}, color.RGBA{0, 0, 0xff, 0xff}}
	c.Reverse = true
	buf.Reset()
	if err := eps(c, &buf); err != nil {
		t.Fatal(err)
	}
	if want := "0 0 1 setrgbcolor\n-4 dup 53 dup rectfill\n1 1 0 setrgbcolor\n"; !strings.Contains(buf.String(), want) {
		t.Errorf("reversed palette output lacks %q", want)
	}
}
