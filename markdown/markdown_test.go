package markdown_test

import (
	"strings"
	"testing"

	"fortio.org/devtools/markdown"
)

const sample = "# Markdown Preview\n\nThis is a **bold text** and this is an *italic text*.\n\n" +
	"## Lists\n\n- Item 1\n- Item 2\n\n## Code\n\n```javascript\nconst greeting = 'Hello';\n```\n\n" +
	"[Visit DevTools](https://example.com) ~~old~~\n\n" +
	"| Header 1 | Header 2 |\n| -------- | -------- |\n| Cell 1   | Cell 2   |\n"

func TestToHTML(t *testing.T) {
	html, err := markdown.ToHTML(sample)
	if err != nil {
		t.Fatalf("ToHTML error: %v", err)
	}
	for _, want := range []string{
		"<h1>Markdown Preview</h1>",
		"<h2>Lists</h2>",
		"<strong>bold text</strong>",
		"<em>italic text</em>",
		"<li>Item 1</li>",
		`<pre><code class="language-javascript">const greeting`,
		`<a href="https://example.com">Visit DevTools</a>`,
		"<del>old</del>",
		"<table>",
		"<th>Header 1</th>",
		"<td>Cell 2</td>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("ToHTML output missing %q:\n%s", want, html)
		}
	}
}

func TestToHTMLOmitsRawHTML(t *testing.T) {
	html, err := markdown.ToHTML("<script>alert(1)</script>\n\nok")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("raw HTML should be omitted: %q", html)
	}
	if !strings.Contains(html, "<p>ok</p>") {
		t.Errorf("paragraph missing: %q", html)
	}
}
