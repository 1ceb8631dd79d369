// Package codec has the small text encoders of the tool set: JSON
// pretty printing and minifying, URL component escaping and Base64.
package codec // import "fortio.org/devtools/codec"

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	DefaultIndent = 2
	MaxIndent     = 10 // same cap as JSON.stringify
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON")
	ErrInvalidURL    = errors.New("invalid URL encoding")
	ErrInvalidBase64 = errors.New("invalid Base64")
)

// FormatJSON validates input and re-indents it with indent spaces per level.
// Indent is capped at MaxIndent, 0 or less gives the minified form.
// Keys order and number literals are kept as written.
func FormatJSON(input string, indent int) (string, error) {
	if indent <= 0 {
		return MinifyJSON(input)
	}
	var buf bytes.Buffer
	err := json.Indent(&buf, []byte(strings.TrimSpace(input)), "", strings.Repeat(" ", min(indent, MaxIndent)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

// MinifyJSON validates input and removes all insignificant whitespace.
func MinifyJSON(input string) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(strings.TrimSpace(input))); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return buf.String(), nil
}

// Characters URLEncode leaves alone besides letters, digits and "-_.~",
// which url.QueryEscape already keeps.
var componentUnescaper = strings.NewReplacer("+", "%20", "%21", "!", "%27", "'", "%28", "(", "%29", ")", "%2A", "*")

// URLEncode escapes s as a URI component: everything but letters, digits
// and -_.!~*'() is percent encoded as UTF-8, spaces included ("%20").
func URLEncode(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

// URLDecode reverses URLEncode. '+' is not a space here. Malformed escapes and
// sequences that don't decode to UTF-8 are errors.
func URLDecode(s string) (string, error) {
	res, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if !utf8.ValidString(res) {
		return "", fmt.Errorf("%w: not UTF-8", ErrInvalidURL)
	}
	return res, nil
}

// Base64Encode is the standard, padded, encoding of the UTF-8 bytes of s.
func Base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// Base64Decode ignores whitespace anywhere and accepts missing padding.
// The decoded bytes must be UTF-8 text.
func Base64Decode(s string) (string, error) {
	s = strings.TrimRight(strings.Join(strings.Fields(s), ""), "=")
	b, err := base64.RawStdEncoding.DecodeString(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: decoded data is not UTF-8 text", ErrInvalidBase64)
	}
	return string(b), nil
}
