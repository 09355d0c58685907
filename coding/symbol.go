// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// A Role classifies a module belonging to a structural pattern.
type Role uint8

const (
	RoleNone       Role = iota // data, format, version or separator module
	FinderOuter                // outer ring of a position pattern
	FinderInner                // 3x3 centre of a position pattern
	AlignmentOuter             // outer ring of an alignment pattern
	AlignmentInner             // centre of an alignment pattern
	Timing                     // timing pattern
)

var roleNames = [...]string{"none", "finder-outer", "finder-inner",
	"alignment-outer", "alignment-inner", "timing"}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return "invalid"
}

// A Position identifies the pattern a structural module belongs to.
type Position uint8

const (
	NoPosition Position = iota
	TopLeft             // top left position pattern
	TopRight            // top right position pattern
	BottomLeft          // bottom left position pattern
	Alignment           // any alignment pattern
)

// Abbrev returns the two letter abbreviation of p: TL, TR, BL or A.
func (p Position) Abbrev() string {
	if p > Alignment {
		return "?"
	}
	return [...]string{"", "TL", "TR", "BL", "A"}[p]
}

// A Corner marks an anchor module of a structural pattern: a corner
// of its outer ring or its centre.
type Corner uint8

const (
	NoCorner Corner = iota
	TopLeftCorner
	TopRightCorner
	BottomLeftCorner
	BottomRightCorner
	Center
)

// Abbrev returns the abbreviation of c: TLC, TRC, BLC, BRC or C.
func (c Corner) Abbrev() string {
	if c > Center {
		return "?"
	}
	return [...]string{"", "TLC", "TRC", "BLC", "BRC", "C"}[c]
}

// Module states.
const (
	unset byte = iota
	light
	dark
)

// A Module is one cell of a QR code.
type Module struct {
	state    byte
	Role     Role
	Position Position
	Corner   Corner
}

// Dark reports whether m is dark.
func (m Module) Dark() bool { return m.state == dark }

// IsSet reports whether the colour of m has been decided.
func (m Module) IsSet() bool { return m.state != unset }

// IsStructural reports whether m belongs to a position, alignment or
// timing pattern.
func (m Module) IsStructural() bool { return m.Role != RoleNone }

func (m *Module) set(isDark bool) {
	m.state = light
	if isDark {
		m.state = dark
	}
}

// A Symbol builds a QR code of a given version and level from byte
// mode segments.  The modules are stored row by row in a single
// slice.  A Symbol is not safe for concurrent use.
type Symbol struct {
	version  Version
	level    Level
	size     int
	mask     int
	built    bool
	segments []Segment
	data     []byte // final codewords, cached
	modules  []Module
}

// NewSymbol returns a Symbol for a QR code with the given version and
// level.
func NewSymbol(v Version, l Level) (*Symbol, error) {
	if !v.IsValid() {
		return nil, ErrVersion
	}
	if !l.IsValid() {
		return nil, ErrLevel
	}
	return &Symbol{version: v, level: l, size: v.Size(), mask: -1}, nil
}

// Add appends segments to s.  The symbol must be built again.
func (s *Symbol) Add(seg ...Segment) {
	s.segments = append(s.segments, seg...)
	s.data = nil
	s.built = false
}

func (s *Symbol) Version() Version { return s.version }
func (s *Symbol) Level() Level     { return s.level }

// Size returns the number of modules on a side.
func (s *Symbol) Size() int { return s.size }

// Mask returns the mask pattern chosen by Build, or -1 before Build.
func (s *Symbol) Mask() int { return s.mask }

// Module returns the module at row, col.
func (s *Symbol) Module(row, col int) (Module, error) {
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return Module{}, &RangeError{row, col, s.size}
	}
	if s.modules == nil {
		return Module{}, nil
	}
	return s.modules[row*s.size+col], nil
}

// IsDark reports whether the module at row, col is dark.
func (s *Symbol) IsDark(row, col int) (bool, error) {
	m, err := s.Module(row, col)
	return m.Dark(), err
}

// Codewords returns the data and error correction codewords of s,
// blocks interleaved, in placement order.  The result is cached until
// segments are added.  The returned slice must not be modified.
func (s *Symbol) Codewords() ([]byte, error) {
	if s.data == nil {
		data, err := s.codewords()
		if err != nil {
			return nil, err
		}
		s.data = data
	}
	return s.data, nil
}

// Build chooses the mask with the smallest penalty and lays out the
// final code.  Each of the eight masks is tried on a draft code with
// blank format and version information.
func (s *Symbol) Build() error {
	data, err := s.Codewords()
	if err != nil {
		return err
	}
	n := s.size * s.size
	if cap(s.modules) < n {
		s.modules = make([]Module, n)
	}
	s.modules = s.modules[:n]
	best, low := 0, 0
	for mask := 0; mask < 8; mask++ {
		s.make(s.modules, data, true, mask)
		if p := penalty(s.modules, s.size); mask == 0 || p < low {
			best, low = mask, p
		}
	}
	s.finish(data, best)
	return nil
}

// BuildParallel is like Build, but tries the masks concurrently, each
// on its own draft.  Ties are broken by the lowest mask number, so the
// result is identical to Build.
func (s *Symbol) BuildParallel() error {
	data, err := s.Codewords()
	if err != nil {
		return err
	}
	var (
		g   errgroup.Group
		pen [8]int
	)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for mask := range pen {
		g.Go(func() error {
			m := make([]Module, s.size*s.size)
			s.make(m, data, true, mask)
			pen[mask] = penalty(m, s.size)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	best := 0
	for mask, p := range pen {
		if p < pen[best] {
			best = mask
		}
	}
	if len(s.modules) != s.size*s.size {
		s.modules = make([]Module, s.size*s.size)
	}
	s.finish(data, best)
	return nil
}

// finish lays out the final code with the given mask.
func (s *Symbol) finish(data []byte, mask int) {
	s.make(s.modules, data, false, mask)
	for i := range s.modules {
		if !s.modules[i].IsSet() {
			panic("qr: unset module")
		}
	}
	s.mask = mask
	s.built = true
}

// Penalty returns the mask penalty of the current layout.
func (s *Symbol) Penalty() int {
	if !s.built {
		return 0
	}
	return penalty(s.modules, s.size)
}

// make lays out the code in m.  In test mode format and version
// information is blank.
func (s *Symbol) make(m []Module, data []byte, test bool, mask int) {
	copy(m, layout(s.version))
	s.setupFormat(m, test, mask)
	if s.version >= 7 {
		s.setupVersion(m, test)
	}
	s.mapData(m, data, mask)
}

// Layouts with position, alignment and timing patterns, per version.
var layouts [MaxVersion + 1]struct {
	once sync.Once
	m    []Module
}

// layout returns the pattern layout of v.  It is created the first
// time v is used and must not be modified.
func layout(v Version) []Module {
	l := &layouts[v]
	l.once.Do(func() {
		siz := v.Size()
		m := make([]Module, siz*siz)
		finder(m, siz, 0, 0, TopLeft)
		finder(m, siz, siz-7, 0, BottomLeft)
		finder(m, siz, 0, siz-7, TopRight)
		pos := v.Alignment()
		for _, row := range pos {
			for _, col := range pos {
				if !m[row*siz+col].IsSet() {
					alignBox(m, siz, row, col)
				}
			}
		}
		timing(m, siz)
		l.m = m
	})
	return l.m
}

// finder draws a position pattern with upper left corner at row, col
// and its separator.
func finder(m []Module, siz, row, col int, pos Position) {
	for r := -1; r <= 7; r++ {
		if row+r < 0 || row+r >= siz {
			continue
		}
		for c := -1; c <= 7; c++ {
			if col+c < 0 || col+c >= siz {
				continue
			}
			p := &m[(row+r)*siz+col+c]
			ring := r == 0 || r == 6 || c == 0 || c == 6
			inRing := 0 <= r && r <= 6 && 0 <= c && c <= 6
			centre := 2 <= r && r <= 4 && 2 <= c && c <= 4
			switch {
			case inRing && ring:
				*p = Module{state: dark, Role: FinderOuter,
					Position: pos, Corner: corner(r, c, 0, 6)}
			case centre:
				*p = Module{state: dark, Role: FinderInner,
					Position: pos}
				if r == 3 && c == 3 {
					p.Corner = Center
				}
			default:
				*p = Module{state: light}
			}
		}
	}
}

// alignBox draws an alignment pattern centred at row, col.
func alignBox(m []Module, siz, row, col int) {
	for r := -2; r <= 2; r++ {
		for c := -2; c <= 2; c++ {
			p := &m[(row+r)*siz+col+c]
			switch {
			case r == -2 || r == 2 || c == -2 || c == 2:
				*p = Module{state: dark, Role: AlignmentOuter,
					Position: Alignment, Corner: corner(r, c, -2, 2)}
			case r == 0 && c == 0:
				*p = Module{state: dark, Role: AlignmentInner,
					Position: Alignment, Corner: Center}
			default:
				*p = Module{state: light}
			}
		}
	}
}

// corner returns the corner tag of the module at r, c in a ring
// spanning lo to hi in both directions.
func corner(r, c, lo, hi int) Corner {
	switch {
	case r == lo && c == lo:
		return TopLeftCorner
	case r == lo && c == hi:
		return TopRightCorner
	case r == hi && c == lo:
		return BottomLeftCorner
	case r == hi && c == hi:
		return BottomRightCorner
	}
	return NoCorner
}

// timing draws the timing patterns on row and column 6 between the
// position patterns, skipping modules already set.
func timing(m []Module, siz int) {
	for i := 8; i < siz-8; i++ {
		if p := &m[i*siz+6]; !p.IsSet() {
			*p = Module{Role: Timing}
			p.set(i%2 == 0)
		}
		if p := &m[6*siz+i]; !p.IsSet() {
			*p = Module{Role: Timing}
			p.set(i%2 == 0)
		}
	}
}

// BCH generator polynomials for format and version information, and
// the format information mask.
const (
	formatPoly  = 0x537  // x¹⁰+x⁸+x⁵+x⁴+x²+x+1
	versionPoly = 0x1f25 // x¹²+x¹¹+x¹⁰+x⁹+x⁸+x⁵+x²+1
	formatMask  = 0x5412
)

// bch returns data followed by the remainder of data·x^n divided by
// the generator poly of degree n.
func bch(data, poly, n int) int {
	rem := data << n
	for i := bitLen(rem) - 1; i >= n; i-- {
		if rem>>i&1 != 0 {
			rem ^= poly << (i - n)
		}
	}
	return data<<n | rem
}

func bitLen(x int) int {
	n := 0
	for ; x != 0; x >>= 1 {
		n++
	}
	return n
}

// FormatInfo returns the 15 bit BCH(15,5) protected format
// information for level l and mask.
func FormatInfo(l Level, mask int) int {
	return bch(l.formatBits()<<3|mask, formatPoly, 10) ^ formatMask
}

// VersionInfo returns the 18 bit BCH(18,6) protected version
// information for v.
func VersionInfo(v Version) int {
	return bch(int(v), versionPoly, 12)
}

// setupFormat writes format information around the top left position
// pattern and, split, beside the other two.  In test mode all format
// modules are light.  The module at (size-8, 8) is always dark.
func (s *Symbol) setupFormat(m []Module, test bool, mask int) {
	siz := s.size
	bits := FormatInfo(s.level, mask)
	for i := 0; i < 15; i++ {
		on := !test && bits>>i&1 != 0
		// vertical
		var row int
		switch {
		case i < 6:
			row = i
		case i < 8:
			row = i + 1
		default:
			row = siz - 15 + i
		}
		m[row*siz+8] = Module{}
		m[row*siz+8].set(on)
		// horizontal
		var col int
		switch {
		case i < 8:
			col = siz - i - 1
		case i < 9:
			col = 15 - i
		default:
			col = 15 - i - 1
		}
		m[8*siz+col] = Module{}
		m[8*siz+col].set(on)
	}
	m[(siz-8)*siz+8] = Module{state: dark}
}

// setupVersion writes version information above the bottom left and
// left of the top right position patterns.  In test mode all version
// modules are light.
func (s *Symbol) setupVersion(m []Module, test bool) {
	siz := s.size
	bits := VersionInfo(s.version)
	for i := 0; i < 18; i++ {
		on := !test && bits>>i&1 != 0
		a, b := i/3, i%3+siz-11
		m[a*siz+b] = Module{}
		m[a*siz+b].set(on)
		m[b*siz+a] = Module{}
		m[b*siz+a].set(on)
	}
}

// mapData places data bits in unset modules in zigzag order: two
// columns at a time from the right, alternately upwards and downwards,
// skipping the vertical timing column.  Bits past the end of data are
// zero.  Data bits are masked.
func (s *Symbol) mapData(m []Module, data []byte, mask int) {
	siz := s.size
	inc := -1
	row := siz - 1
	bit := 7
	i := 0
	isMasked := maskFunc[mask]
	for col := siz - 1; col > 0; col -= 2 {
		if col == 6 {
			col--
		}
		for {
			for c := 0; c < 2; c++ {
				p := &m[row*siz+col-c]
				if p.IsSet() {
					continue
				}
				on := false
				if i < len(data) {
					on = data[i]>>bit&1 != 0
				}
				if isMasked(row, col-c) {
					on = !on
				}
				p.set(on)
				if bit--; bit < 0 {
					i++
					bit = 7
				}
			}
			row += inc
			if row < 0 || row >= siz {
				row -= inc
				inc = -inc
				break
			}
		}
	}
}

// codewords encodes the segments, pads the data and computes the
// error correction codewords.
func (s *Symbol) codewords() ([]byte, error) {
	v, l := s.version, s.level
	b := NewBits(v, l)
	for _, seg := range s.segments {
		seg.Encode(b, v)
	}
	nb := v.DataBits(l)
	if b.Bits() > nb {
		return nil, &CapacityError{b.Bits(), nb}
	}
	// terminator
	if b.Bits()+4 <= nb {
		b.Write(0, 4)
	}
	b.Write(0, -b.Bits()&7)
	for pad := uint32(0xec); b.Bits() < nb; pad ^= 0xec ^ 0x11 {
		b.Write(pad, 8)
	}
	return interleave(b.Bytes(), v.Blocks(l)), nil
}

// interleave splits data into blocks, computes error correction
// codewords for each and interleaves the blocks: first data codeword
// i of every block in turn, then error correction codeword i.
func interleave(data []byte, blocks []Block) []byte {
	var nblock, total, maxData, maxCheck int
	for _, b := range blocks {
		nblock += b.Count
		total += b.Count * b.Total
		maxData = max(maxData, b.Data)
		maxCheck = max(maxCheck, b.Check())
	}
	dc := make([][]byte, 0, nblock)
	ec := make([][]byte, 0, nblock)
	check := make([]byte, total-len(data))
	for _, b := range blocks {
		rs := Field.Encoder(b.Check())
		for i := 0; i < b.Count; i++ {
			d, c := data[:b.Data], check[:b.Check()]
			data, check = data[b.Data:], check[b.Check():]
			rs.ECC(d, c)
			dc = append(dc, d)
			ec = append(ec, c)
		}
	}
	out := make([]byte, 0, total)
	for i := 0; i < maxData; i++ {
		for _, d := range dc {
			if i < len(d) {
				out = append(out, d[i])
			}
		}
	}
	for i := 0; i < maxCheck; i++ {
		for _, c := range ec {
			if i < len(c) {
				out = append(out, c[i])
			}
		}
	}
	return out
}
