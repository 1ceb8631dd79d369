package colormodel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColor is returned for unknown color names and malformed
// functional notations. [Parse] reports plain strings that are neither a
// known name nor valid hex with [ErrInvalidHexFormat] instead.
var ErrUnknownColor = errors.New("unknown color")

// Parse accepts any of the forms printed by this package: "#rrggbb" or "#rgb"
// (with or without '#'), "rgb(r, g, b)", "hsl(h, s%, l%)" or a color name.
// Functional notation components are clamped like form fields.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		v, err := components(s, 4)
		if err != nil {
			return RGB{}, err
		}
		return NewRGB(v[0], v[1], v[2]), nil
	case strings.HasPrefix(lower, "hsl("):
		hsl, err := ParseHSL(s)
		if err != nil {
			return RGB{}, err
		}
		return hsl.RGB(), nil
	}
	if ValidateHex(s) {
		return HexToRGB(s), nil
	}
	if c, ok := Named(s); ok {
		return c, nil
	}
	return ParseHex(s)
}

// ParseHSL parses "hsl(h, s%, l%)" (the % signs are optional) and clamps.
// Callers editing HSL use it to keep the values as typed.
func ParseHSL(s string) (HSL, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "hsl(") || !strings.HasSuffix(lower, ")") {
		return HSL{}, fmt.Errorf("%w: %q, expected hsl(h, s%%, l%%)", ErrUnknownColor, s)
	}
	v, err := components(s, 4)
	if err != nil {
		return HSL{}, err
	}
	return NewHSL(v[0], v[1], v[2]), nil
}

func components(s string, prefixLen int) ([3]int, error) {
	var v [3]int
	parts := strings.Split(s[prefixLen:len(s)-1], ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("%w: %q, expected 3 components, got %d", ErrUnknownColor, s, len(parts))
	}
	for i, p := range parts {
		v[i] = ParseChannel(p) // stops at "%"
	}
	return v, nil
}
