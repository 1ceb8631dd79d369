package colormodel

import (
	"fmt"
	"strings"
)

// Source is which representation was edited last and is authoritative.
type Source int

const (
	SourceRGB Source = iota
	SourceHex
	SourceHSL
)

func (s Source) String() string {
	switch s {
	case SourceRGB:
		return "rgb"
	case SourceHex:
		return "hex"
	case SourceHSL:
		return "hsl"
	default:
		return fmt.Sprintf("Source(%d)", int(s))
	}
}

// Default is the color a new [Model] starts with.
const Default Hex = "#3b82f6"

// Model holds one authoritative color, the last edited representation, and
// derives the other two on read. HSL edits keep the HSL values as typed
// (after clamping) instead of recomputing them from the rounded RGB.
//
// An invalid hex edit leaves the color unchanged and only records the input.
// The zero value is black (rgb source).
type Model struct {
	source   Source
	rgb      RGB
	hsl      HSL
	hexInput string
	invalid  bool
}

// NewModel returns a model set to [Default].
func NewModel() *Model {
	m := &Model{}
	_ = m.SetHex(string(Default))
	return m
}

// SetHex applies a hex field edit. On malformed input the error wraps
// [ErrInvalidHexFormat], Valid() becomes false and the color is kept.
func (m *Model) SetHex(s string) error {
	m.hexInput = s
	rgb, err := ParseHex(s)
	if err != nil {
		m.invalid = true
		return err
	}
	m.invalid = false
	if !strings.HasPrefix(s, "#") {
		m.hexInput = "#" + s
	}
	m.source = SourceHex
	m.rgb = rgb
	return nil
}

// SetRGB clamps and makes c authoritative.
func (m *Model) SetRGB(c RGB) {
	m.source = SourceRGB
	m.rgb = NewRGB(c.R, c.G, c.B)
	m.invalid = false
}

// SetHSL clamps and makes c authoritative.
func (m *Model) SetHSL(c HSL) {
	m.source = SourceHSL
	m.hsl = NewHSL(c.H, c.S, c.L)
	m.invalid = false
}

// SetRGBChannel applies a single form field edit, ch is one of r, g or b.
// The value is parsed with [ParseChannel] and clamped.
func (m *Model) SetRGBChannel(ch byte, value string) error {
	c := m.RGB()
	v := ParseChannel(value)
	switch ch {
	case 'r', 'R':
		c.R = v
	case 'g', 'G':
		c.G = v
	case 'b', 'B':
		c.B = v
	default:
		return fmt.Errorf("unknown rgb channel %q", ch)
	}
	m.SetRGB(c)
	return nil
}

// SetHSLChannel is the HSL counterpart of SetRGBChannel, ch is h, s or l.
func (m *Model) SetHSLChannel(ch byte, value string) error {
	c := m.HSL()
	v := ParseChannel(value)
	switch ch {
	case 'h', 'H':
		c.H = v
	case 's', 'S':
		c.S = v
	case 'l', 'L':
		c.L = v
	default:
		return fmt.Errorf("unknown hsl channel %q", ch)
	}
	m.SetHSL(c)
	return nil
}

// SetNamed sets a color keyword, it is equivalent to editing the hex field.
func (m *Model) SetNamed(name string) error {
	c, ok := Named(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return m.SetHex(string(c.Hex()))
}

func (m *Model) Source() Source {
	return m.source
}

// Valid is false after a rejected hex edit, until the next successful edit.
func (m *Model) Valid() bool {
	return !m.invalid
}

// HexInput is what the hex field shows: the raw text while invalid.
func (m *Model) HexInput() string {
	if m.invalid || m.source == SourceHex {
		return m.hexInput
	}
	return string(m.Hex())
}

func (m *Model) RGB() RGB {
	if m.source == SourceHSL {
		return m.hsl.RGB()
	}
	return m.rgb
}

func (m *Model) HSL() HSL {
	if m.source == SourceHSL {
		return m.hsl
	}
	return m.rgb.HSL()
}

func (m *Model) Hex() Hex {
	return m.RGB().Hex()
}

// Preview is the color to display, red while the hex input is invalid.
func (m *Model) Preview() RGB {
	if m.invalid {
		return RGB{R: MaxChannel}
	}
	return m.RGB()
}
