package htmlutil

import (
	"strings"
	"testing"
)

func TestStripTags(t *testing.T) {
	markup := `<html><body>
<h1>Heading</h1>
<script>var x = "<ignored>";</script>
<div><span>1.</span> <a href="/t">A Title</a></div>
</body></html>`

	got := StripTags(markup)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	expect := []string{"Heading", "1.", "A Title"}
	if len(lines) != len(expect) {
		t.Fatalf("got %d lines %q, expected %d", len(lines), lines, len(expect))
	}
	for i := range expect {
		if lines[i] != expect[i] {
			t.Fatalf("line %d = %q, expected %q", i, lines[i], expect[i])
		}
	}
}

func TestStripTagsKeepsEntitiesRaw(t *testing.T) {
	got := StripTags(`<p>Ferris Bueller&#39;s Day Off</p>`)
	if !strings.Contains(got, "&#39;") {
		t.Fatalf("entity was decoded prematurely: %q", got)
	}
}

func TestStripTagsDropsStyleAndNoscript(t *testing.T) {
	got := StripTags(`<style>.a { color: red }</style><noscript>enable js</noscript><p>kept</p>`)
	if strings.Contains(got, "color") || strings.Contains(got, "enable js") {
		t.Fatalf("non-content tag leaked: %q", got)
	}
	if !strings.Contains(got, "kept") {
		t.Fatalf("content missing: %q", got)
	}
}
