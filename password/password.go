// Package password generates random passwords from selectable character
// classes and scores their strength.
package password // import "fortio.org/devtools/password"

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
	"unicode"
)

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+~`|}{[]:;?><,./-="

	MinLength     = 8
	MaxLength     = 64
	DefaultLength = 16
)

var ErrNoCharacterClass = errors.New("at least one character class must be selected")

type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

func DefaultOptions() Options {
	return Options{Length: DefaultLength, Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
}

func (o Options) classes() []string {
	var classes []string
	if o.Uppercase {
		classes = append(classes, Uppercase)
	}
	if o.Lowercase {
		classes = append(classes, Lowercase)
	}
	if o.Digits {
		classes = append(classes, Digits)
	}
	if o.Symbols {
		classes = append(classes, Symbols)
	}
	return classes
}

// Generate returns a password of o.Length characters drawn uniformly from the
// selected classes, containing at least one character of each of them.
func Generate(o Options) (string, error) {
	return GenerateFrom(rand.Reader, o)
}

// GenerateFrom is Generate with an explicit randomness source.
func GenerateFrom(rnd io.Reader, o Options) (string, error) {
	classes := o.classes()
	if len(classes) == 0 {
		return "", ErrNoCharacterClass
	}
	if o.Length < MinLength || o.Length > MaxLength {
		return "", fmt.Errorf("password length %d out of range [%d,%d]", o.Length, MinLength, MaxLength)
	}
	chars := strings.Join(classes, "")
	n := big.NewInt(int64(len(chars)))
	buf := make([]byte, o.Length)
	for {
		for i := range buf {
			idx, err := rand.Int(rnd, n)
			if err != nil {
				return "", fmt.Errorf("reading randomness: %w", err)
			}
			buf[i] = chars[idx.Int64()]
		}
		if hasAll(string(buf), classes) {
			return string(buf), nil
		}
	}
}

func hasAll(pw string, classes []string) bool {
	for _, c := range classes {
		if !strings.ContainsAny(pw, c) {
			return false
		}
	}
	return true
}

// Strength scores pw from 0 to 100: up to 40 for length (20 characters and
// more get the full 40) and 15 for each of upper case, lower case, digit and
// other characters present.
func Strength(pw string) int {
	if pw == "" {
		return 0
	}
	score := min(40, len(pw)*40/20)
	var upper, lower, digit, other bool
	for _, r := range pw {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case unicode.IsDigit(r) && r < 0x80:
			digit = true
		default:
			other = true
		}
	}
	for _, present := range []bool{upper, lower, digit, other} {
		if present {
			score += 15
		}
	}
	return min(100, score)
}

// Label is the human readable bucket of a Strength score.
func Label(strength int) string {
	switch {
	case strength >= 80:
		return "Very Strong"
	case strength >= 60:
		return "Strong"
	case strength >= 40:
		return "Medium"
	case strength >= 20:
		return "Weak"
	default:
		return "Very Weak"
	}
}
