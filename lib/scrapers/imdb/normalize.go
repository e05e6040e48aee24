package imdb

import (
	"regexp"
	"strings"

	"studiocat/lib/htmlutil"
)

// Record is one catalog entry: rank marker, title, then auxiliary
// metadata, in that order.
type Record []string

const maxRecordFields = 3

// The upstream markup only ever uses a handful of numeric character
// entities in title text. This is a fixed decode table on purpose,
// not general entity decoding.
var entityDecoder = strings.NewReplacer(
	"&#39;", "'",
	"&#38;", "&",
	"&#233;", "é",
)

func DecodeEntities(s string) string {
	return entityDecoder.Replace(s)
}

// StripPage reduces a raw page to newline-delimited text with the
// entity table applied. This is exactly the raw-mode output.
func StripPage(page string) string {
	return DecodeEntities(htmlutil.StripTags(page))
}

// a line that is just an integer followed by a period opens a record
var recordMarkerRegex = regexp.MustCompile(`^[0-9]+\.$`)

// NormalizeRecords reshapes stripped page text into records. A rank
// marker line starts a record; following nonblank lines become its
// fields until a blank line or the next marker; fields past
// maxRecordFields are dropped.
func NormalizeRecords(text string) []Record {
	var records []Record
	var current Record
	inRecord := false

	flush := func() {
		if inRecord {
			records = append(records, current)
		}
		current = nil
		inRecord = false
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case recordMarkerRegex.MatchString(line):
			flush()
			current = Record{line}
			inRecord = true
		case line == "":
			flush()
		case inRecord:
			if len(current) < maxRecordFields {
				current = append(current, htmlutil.RemoveNonPrintable(line))
			}
		}
	}
	flush()

	return records
}

// Line renders the record as one tab-delimited output line,
// optionally without the leading rank field.
func (r Record) Line(stripRank bool) string {
	fields := r
	if stripRank && len(fields) > 0 {
		fields = fields[1:]
	}
	return strings.Join(fields, "\t")
}
