package colormodel

import (
	"slices"
	"strings"

	"golang.org/x/image/colornames"
)

// Named looks up a CSS/SVG color keyword, ignoring case, spaces, '-' and '_'
// (so "Alice Blue" finds "aliceblue").
func Named(name string) (RGB, bool) {
	c, ok := colornames.Map[nameKey(name)]
	if !ok {
		return RGB{}, false
	}
	return RGB{R: int(c.R), G: int(c.G), B: int(c.B)}, true
}

// Names returns the sorted list of known color keywords.
func Names() []string {
	names := slices.Clone(colornames.Names)
	slices.Sort(names)
	return names
}

// NameOf returns the first keyword (alphabetically) that is exactly c, if any.
func NameOf(c RGB) (string, bool) {
	for _, n := range Names() {
		v := colornames.Map[n]
		if int(v.R) == c.R && int(v.G) == c.G && int(v.B) == c.B {
			return n, true
		}
	}
	return "", false
}

func nameKey(name string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '_':
			return -1
		}
		return r
	}, name))
}
