package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// StripThousands removes comma separators from a numeric field
// so it can be handed to strconv.
func StripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
