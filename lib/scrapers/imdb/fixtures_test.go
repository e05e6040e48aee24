package imdb

import (
	"fmt"
	"strings"
)

type fixtureItem struct {
	rank  int
	title string
	year  string
}

// fixturePage builds a search results page shaped like the upstream
// service's markup.
func fixturePage(company string, total int, items []fixtureItem) string {
	var b strings.Builder
	b.WriteString("<html><head><title>search</title></head><body>\n")
	fmt.Fprintf(&b, "<h1>Most Popular Titles with company %q</h1>\n", company)
	b.WriteString("<div class=\"nav\">\n<a href=\"/\">Home</a>\n<a href=\"/search\">Search</a>\n<a href=\"/help\">Help</a>\n</div>\n")
	if total >= 0 {
		first := 1
		last := total
		if len(items) > 0 {
			first = items[0].rank
			last = items[len(items)-1].rank
		}
		fmt.Fprintf(&b, "<div class=\"desc\">%d-%d of %s titles.</div>\n", first, last, withThousands(total))
	}
	b.WriteString("<div class=\"lister-list\">\n")
	for _, item := range items {
		fmt.Fprintf(&b, "<div class=\"lister-item\">\n<span class=\"lister-item-index\">%d.</span>\n<a href=\"/title\">%s</a>\n<span class=\"lister-item-year\">(%s)</span>\n</div>\n", item.rank, item.title, item.year)
	}
	b.WriteString("</div>\n</body></html>\n")
	return b.String()
}

func withThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	return s + "," + strings.Join(parts, ",")
}

func fixtureItems(firstRank, n int) []fixtureItem {
	items := make([]fixtureItem, n)
	for i := range items {
		items[i] = fixtureItem{
			rank:  firstRank + i,
			title: fmt.Sprintf("Title %d", firstRank+i),
			year:  "1994",
		}
	}
	return items
}
