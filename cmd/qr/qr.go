package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding"
	"gopkg.in/op/go-logging.v1"

	qr "github.com/unixdj/qrmatrix"
	"github.com/unixdj/qrmatrix/coding"
)

var exit = os.Exit

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	lev     qr.Level        // QR correction level
	ver     coding.Version  // QR version, 0 for automatic
	format  int             // output file format
	cx      int             // randr source X coordinate index in inc
	inc     [2]int          // randr source X,Y coordinate increments
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	latin1  bool            // Latin-1 input
	sjis    bool            // Shift JIS input
	upper   bool            // uppercase
	logo    bool            // logo placeholder
	par     bool            // parallel mask search
	debug   bool            // debug messages
	conf    string          // defaults file
	cs      encoding.Encoding
}{
	inc: [2]int{1, 1},
	bg:  rgba{0xff, 0xff, 0xff, 0xff},
	fg:  rgba{0x00, 0x00, 0x00, 0xff},
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "QR code generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, data is read from standard input and the final
newline is stripped.  Data is encoded in byte mode; non-ASCII text is
prefixed with the UTF-8 byte order mark.  Defaults: UTF-8 input,
automatic version, no logo placeholder.

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	exit(2)
}

func help() {
	printUsage(os.Stdout)
	exit(0)
}

func version() {
	fmt.Println(`qr version 0.9.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	exit(0)
}

func flip() {
	g.inc[0] = -g.inc[0]
}

func rotate() {
	g.cx ^= 1
	m := g.inc[0] * g.inc[1]
	g.inc[0] *= m
	g.inc[1] *= -m
}

type rgba struct {
	R, G, B, A uint8
}

var rgb = map[string]rgba{
	"black": {0x00, 0x00, 0x00, 0xff},
	"white": {0xff, 0xff, 0xff, 0xff},
	"red":   {0xff, 0x00, 0x00, 0xff},
	"green": {0x00, 0xff, 0x00, 0xff},
	"blue":  {0x00, 0x00, 0xff, 0xff},
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	return c.parse(s)
}

func (c *rgba) parse(s string) error {
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

var formats = []string{
	"png", "pngi", "pbm", "pbmi", "eps", "epsi",
	"utf8", "utf8i", "ascii", "asciii",
}

// formatIndex returns the index of the output type name in formats, or
// -1.
func formatIndex(name string) int {
	for i, v := range formats {
		if name == v {
			return i
		}
	}
	return -1
}

var encoders = [...]func(*qr.Code, io.Writer) error{
	func(c *qr.Code, w io.Writer) error { return png.Encode(w, c.Image()) },
	(*qr.Code).EncodePBM,
	eps,
	func(c *qr.Code, w io.Writer) error {
		_, err := io.WriteString(w, c.String())
		return err
	},
	(*qr.Code).EncodeASCII,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a colour name; `+
		`only for types png[i] and eps[i]`, "RGB[A]|name")
	getopt.Flag(opt(flip), 'f', `flip code horizontally; `+
		`to flip vertically, use "-frr"`).SetFlag()
	getopt.Flag(opt(rotate), 'r', `rotate code 90° counterclockwise; `+
		`-r and -f may be given multiple times, `+
		`order matters: "-fr" = "-rfrr" = "-rrrf"`).SetFlag()
	getopt.Flag(&g.latin1, '1', "Latin-1 input")
	getopt.Flag(&g.sjis, 'k', "Shift JIS input")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.logo, 'P', "reserve a blank logo placeholder "+
		"in the middle; versions up to 12 only")
	getopt.Flag(&g.par, 'p', "try masks in parallel")
	getopt.Flag(&g.debug, 'd', "print debugging messages")
	getopt.Flag(&g.conf, 'C', "read defaults from TOML file", "file")
	getopt.Flag(&g.border, 'm', `quiet zone pixels [4]`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	ver := getopt.Unsigned('v', 0, &getopt.UnsignedLimit{Base: 0, Bits: 8, Min: 0, Max: 40},
		"QR code version; 0 or too small: smallest that fits", "ver")
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, "l",
		"error correction level, lowest to highest", "l|m|q|h")
	scale := getopt.Unsigned('s', 4,
		&(getopt.UnsignedLimit{Base: 0, Bits: 28, Min: 1, Max: 1 << 28}),
		`image pixels (type eps[i]: points) per QR module ("pixel"); `+
			`ignored for types utf8[i] and ascii[i]`, "scale")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()
	if g.latin1 && g.sjis {
		fmt.Fprintln(os.Stderr, "-1 and -k are incompatible")
		usage()
	}
	level := logging.WARNING
	if g.debug {
		level = logging.DEBUG
	}
	setupLog(os.Stderr, level)
	if !getopt.IsSet('m') {
		g.border = qr.DefaultBorder
	}
	if g.conf != "" {
		applyConfig(g.conf, ver, scale, lev, ff)
		if g.debug {
			setupLog(os.Stderr, logging.DEBUG)
		}
	}
	g.scale = int(*scale)
	g.ver = coding.Version(*ver)
	g.lev = qr.Level(strings.Index("lmqhLMQH", *lev) & 3)
	if *ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*ff = "utf8"
		} else {
			*ff = "png"
		}
	}
	i := formatIndex(*ff)
	g.format = i >> 1
	g.rev = i&1 != 0
	if g.fn == "-" {
		g.fn = ""
	}
	switch {
	case g.latin1:
		g.cs, _ = charset("latin1")
	case g.sjis:
		g.cs, _ = charset("shift-jis")
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
	log.Debugf("level %v, version %v, type %s, scale %d, margin %d",
		g.lev, g.ver, *ff, g.scale, g.border)
}

// applyConfig sets the values from the defaults file fn for which no
// flag was given.
func applyConfig(fn string, ver, scale *uint64, lev, ff *string) {
	cfg, undecoded, err := loadConfig(fn)
	if err != nil {
		fatal(err)
	}
	for _, k := range undecoded {
		log.Warningf("%s: unknown key %q", fn, k)
	}
	if err := cfg.validate(); err != nil {
		fatal(fmt.Errorf("%s: %v", fn, err))
	}
	log.Debugf("%s: %+v", fn, *cfg)
	if cfg.Level != "" && !getopt.IsSet('l') {
		*lev = cfg.Level
	}
	if cfg.Version != 0 && !getopt.IsSet('v') {
		*ver = uint64(cfg.Version)
	}
	if cfg.Scale != 0 && !getopt.IsSet('s') {
		*scale = uint64(cfg.Scale)
	}
	if cfg.Margin != nil && !getopt.IsSet('m') {
		g.border = *cfg.Margin
	}
	if cfg.Type != "" && !getopt.IsSet('t') {
		*ff = cfg.Type
	}
	if cfg.Charset != "" && !getopt.IsSet('1') && !getopt.IsSet('k') {
		cs, _ := charset(cfg.Charset)
		g.latin1 = cs == charsets["latin1"]
		g.sjis = cs == charsets["sjis"]
	}
	g.logo = g.logo || cfg.Placeholder
	g.par = g.par || cfg.Parallel
	g.debug = g.debug || cfg.Debug
	for _, c := range []struct {
		s    string
		flag rune
		v    *rgba
	}{
		{cfg.Background, 'B', &g.bg},
		{cfg.Foreground, 'F', &g.fg},
	} {
		if c.s == "" || getopt.IsSet(c.flag) {
			continue
		}
		if err := c.v.parse(c.s); err != nil {
			fatal(fmt.Errorf("%s: %v", fn, err))
		}
		g.colSet = true
	}
}

func main() {
	parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			fatal(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	s, err := toUTF8(s, g.cs)
	if err != nil {
		fatal(err)
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	c, err := qr.Encode(s, g.lev, &qr.Options{
		Version:     g.ver,
		Placeholder: g.logo,
		Parallel:    g.par,
		Logf:        log.Warningf,
	})
	if err != nil {
		fatal(err)
	}
	log.Debugf("encoded %d codewords, %d modules on a side, mask %d",
		len(c.Codewords()), c.ModuleCount(), c.Mask())
	if err := write(c); err != nil {
		fatal(err)
	}
}

func write(c *qr.Code) error {
	var w io.Writer = os.Stdout
	var f *os.File
	if g.fn != "" {
		var err error
		if f, err = os.OpenFile(g.fn,
			os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666); err != nil {
			return err
		}
		w = f
	}
	c = randr(c, g.cx, g.inc)
	c.Scale = g.scale
	c.Palette = g.palette
	c.Reverse = g.rev
	c.Border = g.border
	err := encoders[g.format](c, w)
	if f != nil {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
