package imdb

import (
	"fmt"
	"net/url"
)

// PageSize is fixed by the upstream service and not negotiable.
const PageSize = 100

// BuildQuery forms the request target for one page of a company's
// catalog. Offsets are 1-based: 1 for the first page, then advancing
// by PageSize. The start parameter is only present past page one.
func BuildQuery(base *url.URL, company string, fromYear, toYear, offset int) string {
	query := url.Values{}
	query.Set("companies", company)
	query.Set("release_date", fmt.Sprintf("%d,%d", fromYear, toYear))
	query.Set("count", fmt.Sprintf("%d", PageSize))
	if offset > 1 {
		query.Set("start", fmt.Sprintf("%d", offset))
	}

	target := *base
	target.RawQuery = query.Encode()
	return target.String()
}
