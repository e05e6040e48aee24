package imdb

import (
	"fmt"
	"strconv"
	"strings"

	"studiocat/lib/htmlutil"
	"studiocat/lib/textutil"
)

var ErrCountUnparseable = fmt.Errorf("could not find a title count on the first page")

const (
	popularMarker = "Most Popular"
	resultsMarker = `<div class="lister-list">`

	// lines of navigation cruft between the page heading and the
	// "1-100 of N titles." line
	countHeaderLines = 3
)

// ExtractCount reads the declared total title count from the first
// page of a pass. It looks at the stripped text between the heading
// marker and the results list, preferring a "... of N titles" line and
// falling back to the second-to-last line of that region.
func ExtractCount(page string) (int, error) {
	_, afterHeading, found := strings.Cut(page, popularMarker)
	if !found {
		return 0, ErrCountUnparseable
	}
	region, _, found := strings.Cut(afterHeading, resultsMarker)
	if !found {
		return 0, ErrCountUnparseable
	}

	var lines []string
	for _, line := range strings.Split(htmlutil.StripTags(region), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= countHeaderLines {
		return 0, ErrCountUnparseable
	}
	lines = lines[countHeaderLines:]

	for _, line := range lines {
		fields := strings.Fields(line)
		for i, field := range fields {
			if field != "of" || i+1 >= len(fields) {
				continue
			}
			return parseCount(fields[i+1])
		}
	}

	// no "of" line; the count sometimes stands alone just above the
	// results list
	if len(lines) < 2 {
		return 0, ErrCountUnparseable
	}
	return parseCount(lines[len(lines)-2])
}

func parseCount(field string) (int, error) {
	count, err := strconv.Atoi(textutil.StripThousands(field))
	if err != nil || count < 0 {
		return 0, fmt.Errorf("%w: bad count field %q", ErrCountUnparseable, field)
	}
	return count, nil
}
