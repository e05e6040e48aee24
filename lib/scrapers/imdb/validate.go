package imdb

import (
	"strings"

	"studiocat/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// LooksLikeSearchPage reports whether the response body carries a
// search results document. The upstream service answers 200 with an
// error document for identifiers it does not know, so identifier
// validity is only decided here, on the observed response.
func LooksLikeSearchPage(page string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return false
	}
	if doc.Find("div.lister-list").Length() > 0 {
		return true
	}
	for _, heading := range doc.Find("h1").Nodes {
		if strings.Contains(htmlutil.GetText(heading), "Most Popular") {
			return true
		}
	}
	return false
}
