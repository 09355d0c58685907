// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2024 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package qr encodes text into QR codes.

Text is encoded as a single byte mode segment.  The smallest version
that fits the text at the requested error correction level is used
unless a larger one is asked for.  The resulting Code exposes the
module matrix, the structural role of each module and an optional blank
square in the middle reserved for a logo, and renders to images, PBM
and text.
*/
package qr // import "github.com/unixdj/qrmatrix"

import (
	"errors"
	"fmt"
	"image"

	"github.com/unixdj/qrmatrix/coding"
)

// A Level denotes a QR error correction level.
// From least to most tolerant of errors, they are L, M, Q, H.
type Level = coding.Level

const (
	L = coding.L // recovers ~7% of codewords
	M = coding.M // ~15%
	Q = coding.Q // ~25%
	H = coding.H // ~30%
)

var (
	// ErrVersionTooSmall is reported when the requested version
	// cannot hold the text and a larger one is used instead.
	ErrVersionTooSmall = errors.New("qr: version too small for data")

	// ErrPlaceholder is returned when a logo placeholder is requested
	// for a code of version 13 or above.
	ErrPlaceholder = errors.New("qr: version too high for logo placeholder")
)

// VersionError reports a requested version replaced by a larger one.
type VersionError struct {
	Requested coding.Version // version asked for
	Used      coding.Version // minimum version that fits the data
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("qr: version %v too small for data, using %v",
		e.Requested, e.Used)
}

func (e *VersionError) Unwrap() error { return ErrVersionTooSmall }

// Options control encoding.  The zero value selects the version
// automatically.
type Options struct {
	// Version is the requested QR version, 0 for automatic.  A
	// version too small for the text is replaced by the smallest one
	// that fits.
	Version coding.Version

	// Placeholder reserves a blank square in the middle of the code
	// for a logo.  Only versions up to 12 support it.
	Placeholder bool

	// Parallel tries the masks concurrently.
	Parallel bool

	// Logf, if not nil, receives non-fatal diagnostics.
	Logf func(format string, args ...any)
}

func (o *Options) logf(format string, args ...any) {
	if o != nil && o.Logf != nil {
		o.Logf(format, args...)
	}
}

// MinVersion returns the smallest version that can hold a byte mode
// segment of n bytes at level l.
func MinVersion(n int, l Level) (coding.Version, error) {
	if !l.IsValid() {
		return 0, coding.ErrLevel
	}
	lo, hi := coding.MinVersion, coding.MaxVersion
	if hi.Capacity(l) < n {
		return 0, &coding.CapacityError{
			Bits: n * 8,
			Max:  hi.Capacity(l) * 8,
		}
	}
	for lo < hi {
		if mid := (lo + hi) / 2; mid.Capacity(l) < n {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, nil
}

// chooseVersion returns the version for a segment of n bytes at level
// l given the requested version req.  If req is too small, the
// returned error is a *VersionError and the version is still usable.
func chooseVersion(n int, l Level, req coding.Version) (coding.Version, error) {
	v, err := MinVersion(n, l)
	if err != nil {
		return 0, err
	}
	switch {
	case req == 0:
		return v, nil
	case !req.IsValid():
		return 0, coding.ErrVersion
	case req < v:
		return v, &VersionError{req, v}
	}
	return req, nil
}

// Encode returns an encoding of text at the given level.  opts may be
// nil.
//
// If opts requests a version too small for text, the smallest version
// that fits is used, the diagnostic is passed to opts.Logf and kept in
// the Code's Warning.
func Encode(text string, level Level, opts *Options) (*Code, error) {
	seg := coding.NewSegment(text)
	var req coding.Version
	if opts != nil {
		req = opts.Version
	}
	v, err := chooseVersion(seg.Len(), level, req)
	var warn error
	if err != nil {
		if !errors.Is(err, ErrVersionTooSmall) {
			return nil, err
		}
		warn = err
		opts.logf("%v", err)
	}
	var ph image.Rectangle
	if opts != nil && opts.Placeholder {
		if ph, err = placeholder(v, level); err != nil {
			return nil, err
		}
	}
	sym, err := coding.NewSymbol(v, level)
	if err != nil {
		return nil, err
	}
	sym.Add(seg)
	if opts != nil && opts.Parallel {
		err = sym.BuildParallel()
	} else {
		err = sym.Build()
	}
	if err != nil {
		return nil, err
	}
	return newCode(sym, ph, warn), nil
}
