package imdb

import (
	"errors"
	"testing"
)

func TestExtractCount(t *testing.T) {
	page := fixturePage("columbia", 1234, fixtureItems(1, 3))
	count, err := ExtractCount(page)
	if err != nil {
		t.Fatal(err)
	}
	if count != 1234 {
		t.Fatalf("count = %d, expected 1234", count)
	}
}

func TestExtractCountSmall(t *testing.T) {
	page := fixturePage("warner", 89, fixtureItems(1, 3))
	count, err := ExtractCount(page)
	if err != nil {
		t.Fatal(err)
	}
	if count != 89 {
		t.Fatalf("count = %d, expected 89", count)
	}
}

func TestExtractCountFallbackLine(t *testing.T) {
	// no "of" line anywhere; the count stands alone as the
	// second-to-last line before the results list
	page := `<html><body>
<h1>Most Popular Titles with company "mgm"</h1>
<div class="nav">
<a href="/">Home</a>
<a href="/search">Search</a>
<a href="/help">Help</a>
</div>
<div>567</div>
<div>per page</div>
<div class="lister-list">
</div>
</body></html>`

	count, err := ExtractCount(page)
	if err != nil {
		t.Fatal(err)
	}
	if count != 567 {
		t.Fatalf("count = %d, expected 567", count)
	}
}

func TestExtractCountUnparseable(t *testing.T) {
	cases := []string{
		"<html><body><p>nothing here</p></body></html>",
		`<html><body><h1>Most Popular Titles</h1></body></html>`,
		`<html><body>
<h1>Most Popular Titles with company "fox"</h1>
<div class="nav">
<a href="/">Home</a>
<a href="/search">Search</a>
<a href="/help">Help</a>
</div>
<div>no numbers here</div>
<div>at all</div>
<div class="lister-list"></div>
</body></html>`,
	}
	for i, page := range cases {
		_, err := ExtractCount(page)
		if !errors.Is(err, ErrCountUnparseable) {
			t.Fatalf("case %d: expected ErrCountUnparseable, got %v", i, err)
		}
	}
}
