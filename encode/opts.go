package encode

import (
	"errors"
	"fmt"
)

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

func (f Format) String() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	default:
		return "text"
	}
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "text", "t":
		return TextFormat, nil
	case "yaml", "y":
		return YAMLFormat, nil
	case "json", "j":
		return JSONFormat, nil
	}
	return TextFormat, fmt.Errorf("%w %q", ErrBadFormat, s)
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.colors = c }
}

// EncodeDiff renders replacements as an inline diff of the old and new
// axioms in text format.
func EncodeDiff(v bool) EncodeOption {
	return func(es *EncState) { es.diff = v }
}
