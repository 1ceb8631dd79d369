// Package tcolor renders [colormodel] colors on ANSI terminals.
// Truecolor when available, the 256 colors palette otherwise.
package tcolor // import "fortio.org/devtools/tcolor"

import (
	"fmt"
	"math"
	"os"
	"strings"

	"fortio.org/devtools/colormodel"
	"fortio.org/safecast"
	"github.com/rivo/uniseg"
)

// Misc useful sequences.
const (
	Bold       = "\x1b[1m"
	Dim        = "\x1b[2m"
	Underlined = "\x1b[4m"
	Inverse    = "\033[7m"

	Red   = "\033[31m"
	Green = "\033[32m"

	Reset = "\033[0m"
)

// Terminal foreground color string for c (truecolor).
func Foreground(c colormodel.RGB) string {
	c = colormodel.NewRGB(c.R, c.G, c.B)
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Terminal background color string for c (truecolor).
func Background(c colormodel.RGB) string {
	c = colormodel.NewRGB(c.R, c.G, c.B)
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// RGBTo216 maps c to the closest entry of the 256 colors palette: the gray
// ramp (232-255, plus 16 and 231 for the ends) for near grays, the 6x6x6
// cube otherwise.
func RGBTo216(c colormodel.RGB) uint8 {
	c = colormodel.NewRGB(c.R, c.G, c.B)
	shift := 4
	if (c.R>>shift) == (c.G>>shift) && (c.G>>shift) == (c.B>>shift) {
		lum := (c.R + c.G + c.B) / 3
		if lum < 9 { // 0-8, 9 levels
			return 16 // -> black
		}
		if lum > 247 { // 248-255 (incl) 8 levels
			return 231 // -> white
		}
		return safecast.MustConvert[uint8](min(255, 232+((lum-9)*(256-232))/(247-9)))
	}
	// 6x6x6 color cube
	return safecast.MustConvert[uint8](16 + 36*(c.R/51) + 6*(c.G/51) + c.B/51)
}

// ColorOutput picks between truecolor and 256 colors sequences.
type ColorOutput struct {
	TrueColor bool // true if the output supports true color, false for 256 colors
}

// DetectColorOutput uses the COLORTERM convention (truecolor or 24bit).
func DetectColorOutput() ColorOutput {
	ct := strings.ToLower(os.Getenv("COLORTERM"))
	return ColorOutput{TrueColor: ct == "truecolor" || ct == "24bit"}
}

func (co ColorOutput) Foreground(c colormodel.RGB) string {
	if co.TrueColor {
		return Foreground(c)
	}
	return fmt.Sprintf("\033[38;5;%dm", RGBTo216(c))
}

func (co ColorOutput) Background(c colormodel.RGB) string {
	if co.TrueColor {
		return Background(c)
	}
	return fmt.Sprintf("\033[48;5;%dm", RGBTo216(c))
}

// Swatch is width cells on a c background, label (if any) centered on it in
// a readable text color. Label is cut at the last grapheme cluster that fits
// the width in terminal cells.
func (co ColorOutput) Swatch(c colormodel.RGB, width int, label string) string {
	if width <= 0 {
		return ""
	}
	label, used := fit(label, width)
	left := (width - used) / 2
	right := width - used - left
	var b strings.Builder
	b.WriteString(co.Background(c))
	b.WriteString(co.Foreground(Contrast(c)))
	b.WriteString(strings.Repeat(" ", left))
	b.WriteString(label)
	b.WriteString(strings.Repeat(" ", right))
	b.WriteString(Reset)
	return b.String()
}

// fit returns the longest prefix of s, in whole grapheme clusters, at most
// width cells wide, and its width.
func fit(s string, width int) (string, int) {
	used := 0
	end := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		used += w
		_, end = g.Positions()
	}
	return s[:end], used
}

// Luminance is the relative luminance of c in [0,1] (sRGB, Rec. 709 weights).
func Luminance(c colormodel.RGB) float64 {
	c = colormodel.NewRGB(c.R, c.G, c.B)
	lin := func(v int) float64 {
		f := float64(v) / colormodel.MaxChannel
		if f <= 0.04045 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}
	return 0.2126*lin(c.R) + 0.7152*lin(c.G) + 0.0722*lin(c.B)
}

// Contrast returns black or white, whichever reads better on c.
func Contrast(c colormodel.RGB) colormodel.RGB {
	// Crossover where contrast ratios against black and white are equal.
	if Luminance(c) > 0.179 {
		return colormodel.RGB{}
	}
	return colormodel.RGB{R: 255, G: 255, B: 255}
}
