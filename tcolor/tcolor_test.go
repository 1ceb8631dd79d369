package tcolor_test

import (
	"testing"

	"fortio.org/devtools/colormodel"
	"fortio.org/devtools/tcolor"
)

func TestRGBTo216(t *testing.T) {
	tests := []struct {
		in       colormodel.RGB
		expected uint8
	}{
		{colormodel.RGB{}, 16},
		{colormodel.RGB{R: 255, G: 255, B: 255}, 231},
		{colormodel.RGB{R: 128, G: 128, B: 128}, 244},
		{colormodel.RGB{R: 255}, 196},
		{colormodel.RGB{G: 255}, 46},
		{colormodel.RGB{B: 255}, 21},
		{colormodel.RGB{R: 59, G: 130, B: 246}, 68},
		{colormodel.RGB{R: 999, G: -5}, 196},
	}
	for _, tt := range tests {
		if got := tcolor.RGBTo216(tt.in); got != tt.expected {
			t.Errorf("RGBTo216(%v) = %d, want %d", tt.in, got, tt.expected)
		}
	}
}

func TestColorOutput(t *testing.T) {
	c := colormodel.RGB{R: 59, G: 130, B: 246}
	tc := tcolor.ColorOutput{TrueColor: true}
	if got := tc.Foreground(c); got != "\033[38;2;59;130;246m" {
		t.Errorf("truecolor Foreground = %q", got)
	}
	if got := tc.Background(c); got != "\033[48;2;59;130;246m" {
		t.Errorf("truecolor Background = %q", got)
	}
	c256 := tcolor.ColorOutput{}
	if got := c256.Foreground(c); got != "\033[38;5;68m" {
		t.Errorf("256 Foreground = %q", got)
	}
	if got := c256.Background(c); got != "\033[48;5;68m" {
		t.Errorf("256 Background = %q", got)
	}
}

func TestSwatch(t *testing.T) {
	co := tcolor.ColorOutput{TrueColor: true}
	red := colormodel.RGB{R: 255}
	want := "\033[48;2;255;0;0m\033[38;2;0;0;0m  ab   " + tcolor.Reset
	if got := co.Swatch(red, 7, "ab"); got != want {
		t.Errorf("Swatch = %q, want %q", got, want)
	}
	if got := co.Swatch(red, 0, "ab"); got != "" {
		t.Errorf("empty Swatch = %q", got)
	}
	want = "\033[48;2;255;0;0m\033[38;2;0;0;0mabc" + tcolor.Reset
	if got := co.Swatch(red, 3, "abcdef"); got != want {
		t.Errorf("truncated Swatch = %q, want %q", got, want)
	}
	// Labels are measured and cut in terminal cells, whole graphemes only.
	prefix := "\033[48;2;255;0;0m\033[38;2;0;0;0m"
	tests := []struct {
		label string
		width int
		want  string
	}{
		{"日本語", 5, "日本 "},
		{"日本語", 6, "日本語"},
		{"日本語", 1, " "},
		{"e\u0301te\u0301", 4, "e\u0301te\u0301 "},
		{"e\u0301te\u0301", 1, "e\u0301"},
		{"✗ invalid", 4, "✗ in"},
		{"🇫🇷x", 3, "🇫🇷x"},
		{"🇫🇷x", 1, " "},
	}
	for _, tt := range tests {
		want := prefix + tt.want + tcolor.Reset
		if got := co.Swatch(red, tt.width, tt.label); got != want {
			t.Errorf("Swatch(%q, %d) = %q, want %q", tt.label, tt.width, got, want)
		}
	}
}

func TestContrast(t *testing.T) {
	black := colormodel.RGB{}
	white := colormodel.RGB{R: 255, G: 255, B: 255}
	tests := []struct {
		bg       colormodel.RGB
		expected colormodel.RGB
	}{
		{white, black},
		{black, white},
		{colormodel.RGB{R: 255, G: 255}, black},
		{colormodel.RGB{B: 255}, white},
		{colormodel.RGB{R: 255}, black},
		{colormodel.RGB{R: 128}, white},
		{colormodel.RGB{G: 255}, black},
	}
	for _, tt := range tests {
		if got := tcolor.Contrast(tt.bg); got != tt.expected {
			t.Errorf("Contrast(%v) = %v, want %v", tt.bg, got, tt.expected)
		}
	}
	if l := tcolor.Luminance(white); l < 0.999 || l > 1.001 {
		t.Errorf("Luminance(white) = %f", l)
	}
}
