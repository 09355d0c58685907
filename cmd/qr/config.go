package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Config holds defaults read from a TOML file.  Command line flags
// override them.
//
//	Level       = "H"
//	Version     = 5
//	Scale       = 4
//	Margin      = 2
//	Type        = "utf8"
//	Charset     = "latin1"
//	Placeholder = true
//	Parallel    = true
//	Foreground  = "00f"
//	Background  = "white"
type Config struct {
	Level       string
	Version     int
	Scale       int
	Margin      *int
	Type        string
	Charset     string
	Placeholder bool
	Parallel    bool
	Foreground  string
	Background  string
	Debug       bool
}

// loadConfig decodes the file fn.  Unknown keys are returned in
// undecoded.
func loadConfig(fn string) (cfg *Config, undecoded []string, err error) {
	cfg = new(Config)
	md, err := toml.DecodeFile(fn, cfg)
	if err != nil {
		return nil, nil, err
	}
	for _, k := range md.Undecoded() {
		undecoded = append(undecoded, k.String())
	}
	return cfg, undecoded, nil
}

// validate checks the values of cfg that flags would have checked.
func (cfg *Config) validate() error {
	if cfg.Level != "" && (len(cfg.Level) != 1 ||
		!strings.Contains("lmqhLMQH", cfg.Level)) {
		return fmt.Errorf("%q: bad level", cfg.Level)
	}
	if cfg.Version < 0 || cfg.Version > 40 {
		return fmt.Errorf("%d: bad version", cfg.Version)
	}
	if cfg.Scale < 0 || cfg.Scale > 1<<28 {
		return fmt.Errorf("%d: bad scale", cfg.Scale)
	}
	if cfg.Margin != nil && *cfg.Margin < 0 {
		return fmt.Errorf("%d: bad margin", *cfg.Margin)
	}
	if cfg.Type != "" && formatIndex(cfg.Type) < 0 {
		return fmt.Errorf("%q: bad type", cfg.Type)
	}
	if _, err := charset(cfg.Charset); err != nil {
		return err
	}
	return nil
}

// Input character sets.
var charsets = map[string]encoding.Encoding{
	"":          nil,
	"utf8":      nil,
	"utf-8":     nil,
	"latin1":    charmap.ISO8859_1,
	"iso8859-1": charmap.ISO8859_1,
	"shift-jis": japanese.ShiftJIS,
	"sjis":      japanese.ShiftJIS,
}

// charset returns the encoding named name, or nil for UTF-8.
func charset(name string) (encoding.Encoding, error) {
	e, ok := charsets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%q: unknown charset", name)
	}
	return e, nil
}

// toUTF8 converts s from e to UTF-8.
func toUTF8(s string, e encoding.Encoding) (string, error) {
	if e == nil {
		return s, nil
	}
	s, _, err := transform.String(e.NewDecoder(), s)
	return s, err
}
