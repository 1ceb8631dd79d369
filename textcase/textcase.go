// Package textcase changes the case of text.
package textcase // import "fortio.org/devtools/textcase"

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Mode int

const (
	Unchanged Mode = iota
	Upper
	Lower
	Title      // lower case then first letter of each space separated word upper cased
	Sentence   // lower case then first letter of each sentence upper cased
	Capitalize // first letter of each space separated word upper cased, rest untouched
)

var modeNames = []string{"unchanged", "upper", "lower", "title", "sentence", "capitalize"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// Modes lists the mode names accepted by ParseMode.
func Modes() []string {
	return modeNames[1:]
}

func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "case")
	for i, n := range modeNames {
		if n == s {
			return Mode(i), nil
		}
	}
	return Unchanged, fmt.Errorf("unknown case mode %q, must be one of %s", s, strings.Join(Modes(), ", "))
}

// Sentence start: beginning of text or a run of . ! ? then optional spaces, then a word character.
var sentenceStart = regexp.MustCompile(`(^\s*\w|[.!?]\s*\w)`)

func Convert(text string, mode Mode) string {
	switch mode {
	case Upper:
		return strings.ToUpper(text)
	case Lower:
		return strings.ToLower(text)
	case Title:
		return capitalizeWords(strings.ToLower(text))
	case Sentence:
		return sentenceStart.ReplaceAllStringFunc(strings.ToLower(text), strings.ToUpper)
	case Capitalize:
		return capitalizeWords(text)
	default:
		return text
	}
}

// Words are split on single spaces only, other whitespace stays within a word.
func capitalizeWords(text string) string {
	words := strings.Split(text, " ")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 || r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
