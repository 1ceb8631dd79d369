// Package markdown renders Markdown (CommonMark plus tables and
// strikethrough) to an HTML fragment.
package markdown // import "fortio.org/devtools/markdown"

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in the source is omitted from the output (goldmark's default).
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// ToHTML converts src. Fenced code blocks get a "language-xxx" class.
func ToHTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := renderer.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}
