package cli

import (
	"strings"
	"testing"

	"fortio.org/devtools/colormodel"
	"fortio.org/devtools/tcolor"
)

func newTestSession(t *testing.T) (*Session, *strings.Builder) {
	t.Helper()
	out := &strings.Builder{}
	s, err := NewSession(out, Config{Default: string(colormodel.Default)})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s, out
}

func TestSessionExec(t *testing.T) {
	tests := []struct {
		line   string
		rgb    colormodel.RGB
		hsl    colormodel.HSL
		source colormodel.Source
		valid  bool
	}{
		{"", colormodel.RGB{R: 59, G: 130, B: 246}, colormodel.HSL{H: 217, S: 91, L: 60}, colormodel.SourceHex, true},
		{"r 300", colormodel.RGB{R: 255, G: 130, B: 246}, colormodel.HSL{H: 304, S: 100, L: 75}, colormodel.SourceRGB, true},
		{"#zz", colormodel.RGB{R: 255, G: 130, B: 246}, colormodel.HSL{H: 304, S: 100, L: 75}, colormodel.SourceRGB, false},
		{"hex f00", colormodel.RGB{R: 255}, colormodel.HSL{S: 100, L: 50}, colormodel.SourceHex, true},
		{"H 120", colormodel.RGB{G: 255}, colormodel.HSL{H: 120, S: 100, L: 50}, colormodel.SourceHSL, true},
		{"hsl 210 50 40", colormodel.RGB{R: 51, G: 102, B: 153}, colormodel.HSL{H: 210, S: 50, L: 40}, colormodel.SourceHSL, true},
		{"hsl(217, 91%, 60%)", colormodel.RGB{R: 60, G: 131, B: 246}, colormodel.HSL{H: 217, S: 91, L: 60}, colormodel.SourceHSL, true},
		{"rgb 1, 2, 3", colormodel.RGB{R: 1, G: 2, B: 3}, colormodel.RGB{R: 1, G: 2, B: 3}.HSL(), colormodel.SourceRGB, true},
		{"rgb (0, 0, 128)", colormodel.RGB{B: 128}, colormodel.HSL{H: 240, S: 100, L: 25}, colormodel.SourceRGB, true},
		{"alice blue", colormodel.RGB{R: 240, G: 248, B: 255}, colormodel.HSL{H: 208, S: 100, L: 97}, colormodel.SourceHex, true},
		{"name tomato", colormodel.RGB{R: 255, G: 99, B: 71}, colormodel.HSL{H: 9, S: 100, L: 64}, colormodel.SourceHex, true},
		{"bogus command", colormodel.RGB{R: 255, G: 99, B: 71}, colormodel.HSL{H: 9, S: 100, L: 64}, colormodel.SourceHex, true},
		{"r", colormodel.RGB{R: 255, G: 99, B: 71}, colormodel.HSL{H: 9, S: 100, L: 64}, colormodel.SourceHex, true},
	}
	s, _ := newTestSession(t)
	for _, tt := range tests {
		if s.Exec(tt.line) {
			t.Fatalf("Exec(%q) requested quit", tt.line)
		}
		m := s.Model
		if m.RGB() != tt.rgb || m.HSL() != tt.hsl || m.Source() != tt.source || m.Valid() != tt.valid {
			t.Errorf("after %q: rgb=%v hsl=%v source=%v valid=%v, want %v %v %v %v",
				tt.line, m.RGB(), m.HSL(), m.Source(), m.Valid(), tt.rgb, tt.hsl, tt.source, tt.valid)
		}
	}
}

func TestSessionRenderInvalid(t *testing.T) {
	s, out := newTestSession(t)
	s.width = 4
	s.co = tcolor.ColorOutput{TrueColor: true}
	s.Exec("#12345")
	got := out.String()
	if !strings.Contains(got, "Please enter a valid HEX color") {
		t.Errorf("missing validation message in %q", got)
	}
	if !strings.Contains(got, "\033[48;2;255;0;0m\033[38;2;0;0;0m✗ in"+tcolor.Reset) {
		t.Errorf("swatch should be red with a cut invalid label in %q", got)
	}
	out.Reset()
	s.Exec("#123456")
	if strings.Contains(out.String(), "✗") {
		t.Errorf("valid color should have no swatch label: %q", out.String())
	}
	if !strings.Contains(got, "#12345 ") || !strings.Contains(got, "rgb(59, 130, 246)") {
		t.Errorf("fields should show raw hex and last valid rgb in %q", got)
	}
}

func TestSessionQuitAndHelp(t *testing.T) {
	s, out := newTestSession(t)
	if s.Exec("help") {
		t.Errorf("help should not quit")
	}
	if !strings.Contains(out.String(), "Commands:") {
		t.Errorf("help output missing: %q", out.String())
	}
	for _, q := range []string{"quit", "q", "EXIT"} {
		if !s.Exec(q) {
			t.Errorf("Exec(%q) should quit", q)
		}
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s, err := NewSession(&strings.Builder{}, Config{Default: "hsl(120, 100%, 25%)"})
	if err != nil {
		t.Fatal(err)
	}
	if s.Model.Source() != colormodel.SourceHSL || s.Model.RGB() != (colormodel.RGB{G: 128}) {
		t.Errorf("hsl default: %v %v", s.Model.Source(), s.Model.RGB())
	}
	if _, err = NewSession(&strings.Builder{}, Config{Default: "nope"}); err == nil {
		t.Errorf("invalid default should fail")
	}
}

func TestConvert(t *testing.T) {
	out := &strings.Builder{}
	ret := Convert(out, Config{}, []string{"#3b82f6", "red", "#12", "hsl(120,100,25)"})
	if ret != 1 {
		t.Errorf("Convert with an invalid color returned %d, want 1", ret)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"#3b82f6 rgb(59, 130, 246) hsl(217, 91%, 60%)",
		"#ff0000 rgb(255, 0, 0) hsl(0, 100%, 50%) red",
		"#008000 rgb(0, 128, 0) hsl(120, 100%, 25%) green",
	}
	if len(lines) != len(want) {
		t.Fatalf("Convert output %q, want %d lines", out.String(), len(want))
	}
	for i, l := range lines {
		// Compare ignoring the column padding.
		if got := strings.Join(strings.Fields(l), " "); got != want[i] {
			t.Errorf("line %d = %q, want %q", i, got, want[i])
		}
	}
	out.Reset()
	if ret = Convert(out, Config{}, []string{"white"}); ret != 0 {
		t.Errorf("Convert(white) = %d", ret)
	}
}
