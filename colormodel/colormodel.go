// Package colormodel converts colors between HEX, RGB and HSL representations.
//
// Hex input is validated and rejected when malformed (see [ErrInvalidHexFormat]),
// while RGB and HSL channels are always clamped into their valid ranges and
// never error. All functions are pure and safe for concurrent use.
//
// Every derived value is rounded with [math.Round], that is half away from zero.
package colormodel // import "fortio.org/devtools/colormodel"

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	MaxChannel    = 255
	MaxHue        = 360
	MaxSaturation = 100
	MaxLightness  = 100

	// MaxRoundTripDrift is the largest per channel difference between an RGB
	// color and HSLToRGB(RGBToHSL(color)) over the whole 24 bit space, caused by
	// rounding HSL to integers. Grays and most common colors stay within 1.
	MaxRoundTripDrift = 5
)

// ErrInvalidHexFormat is the only error returned by the hex conversion functions
// (ParseHex, NormalizeHex). Parse may also return [ErrUnknownColor].
var ErrInvalidHexFormat = errors.New("invalid hex color format")

var hexRegexp = regexp.MustCompile(`^#?([0-9A-Fa-f]{3}){1,2}$`)

// Hex is a color as a string. Values produced by this package are always
// canonical: '#' followed by 6 lowercase hex digits.
type Hex string

type RGB struct {
	R, G, B int
}

type HSL struct {
	H, S, L int
}

// Clamp returns v bounded to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// NewRGB clamps each channel into [0,255].
func NewRGB(r, g, b int) RGB {
	return RGB{
		R: Clamp(r, 0, MaxChannel),
		G: Clamp(g, 0, MaxChannel),
		B: Clamp(b, 0, MaxChannel),
	}
}

// NewHSL clamps hue into [0,360] and saturation, lightness into [0,100].
func NewHSL(h, s, l int) HSL {
	return HSL{
		H: Clamp(h, 0, MaxHue),
		S: Clamp(s, 0, MaxSaturation),
		L: Clamp(l, 0, MaxLightness),
	}
}

// ValidateHex reports whether s is 3 or 6 hex digits with an optional leading '#'.
func ValidateHex(s string) bool {
	return hexRegexp.MatchString(s)
}

// HexToRGB converts a hex string to RGB. It does not validate its input,
// call [ValidateHex] first or use [ParseHex].
func HexToRGB(hex string) RGB {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 3 {
		hex = expandShorthand(hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{} // not validated by the caller.
	}
	return RGB{
		R: int((v >> 16) & 0xFF),
		G: int((v >> 8) & 0xFF),
		B: int(v & 0xFF),
	}
}

func expandShorthand(hex string) string {
	var b strings.Builder
	b.Grow(6)
	for i := range len(hex) {
		b.WriteByte(hex[i])
		b.WriteByte(hex[i])
	}
	return b.String()
}

// ParseHex validates then converts s.
func ParseHex(s string) (RGB, error) {
	if !ValidateHex(s) {
		return RGB{}, fmt.Errorf("%w: %q, must be #rgb or #rrggbb", ErrInvalidHexFormat, s)
	}
	return HexToRGB(s), nil
}

// NormalizeHex returns the canonical form of s (prefixed, expanded, lowercase).
func NormalizeHex(s string) (Hex, error) {
	rgb, err := ParseHex(s)
	if err != nil {
		return "", err
	}
	return rgb.Hex(), nil
}

// RGBToHex expects channels already in [0,255].
func RGBToHex(r, g, b int) Hex {
	return Hex(fmt.Sprintf("#%06x", (r&0xFF)<<16|(g&0xFF)<<8|b&0xFF))
}

// RGBToHSL derives hue, saturation and lightness from channels in [0,255].
func RGBToHSL(r, g, b int) HSL {
	rf := float64(r) / MaxChannel
	gf := float64(g) / MaxChannel
	bf := float64(b) / MaxChannel
	hi := max(rf, gf, bf)
	lo := min(rf, gf, bf)
	var h, s float64
	l := (hi + lo) / 2
	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case rf:
			h = (gf - bf) / d
			if gf < bf {
				h += 6
			}
		case gf:
			h = (bf-rf)/d + 2
		default:
			h = (rf-gf)/d + 4
		}
		h /= 6
	}
	return HSL{
		H: int(math.Round(h * MaxHue)),
		S: int(math.Round(s * MaxSaturation)),
		L: int(math.Round(l * MaxLightness)),
	}
}

// HSLToRGB converts h in [0,360], s and l in [0,100] back to RGB. Each channel
// is rounded on its own.
func HSLToRGB(h, s, l int) RGB {
	hf := float64(h) / MaxHue
	sf := float64(s) / MaxSaturation
	lf := float64(l) / MaxLightness
	var r, g, b float64
	if sf == 0 {
		r, g, b = lf, lf, lf // achromatic
	} else {
		var q float64
		if lf < 0.5 {
			q = lf * (1 + sf)
		} else {
			q = lf + sf - lf*sf
		}
		p := 2*lf - q
		r = hueToRGB(p, q, hf+1/3.)
		g = hueToRGB(p, q, hf)
		b = hueToRGB(p, q, hf-1/3.)
	}
	return RGB{
		R: int(math.Round(r * MaxChannel)),
		G: int(math.Round(g * MaxChannel)),
		B: int(math.Round(b * MaxChannel)),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	if t < 1/6. {
		return p + (q-p)*6*t
	}
	if t < 0.5 {
		return q
	}
	if t < 2/3. {
		return p + (q-p)*(2/3.-t)*6
	}
	return p
}

// Hex returns the canonical hex form, clamping first.
func (c RGB) Hex() Hex {
	c = NewRGB(c.R, c.G, c.B)
	return RGBToHex(c.R, c.G, c.B)
}

func (c RGB) HSL() HSL {
	c = NewRGB(c.R, c.G, c.B)
	return RGBToHSL(c.R, c.G, c.B)
}

// String is the CSS functional notation, e.g. "rgb(59, 130, 246)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c HSL) RGB() RGB {
	c = NewHSL(c.H, c.S, c.L)
	return HSLToRGB(c.H, c.S, c.L)
}

// String is the CSS functional notation, e.g. "hsl(217, 91%, 60%)".
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// RGB of a hex value that isn't valid is black.
func (h Hex) RGB() RGB {
	if !ValidateHex(string(h)) {
		return RGB{}
	}
	return HexToRGB(string(h))
}

func (h Hex) String() string {
	return string(h)
}

// ParseChannel parses a numeric form field: leading spaces and an optional
// sign, then as many digits as present. Anything else, including an empty
// field, is 0. Callers clamp the result.
func ParseChannel(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		// Only overflow can get here, saturate.
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	return v
}
