package catalog

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

type WriteOptions struct {
	// empty means stdout
	Destination string
	Append      bool
	// drop the leading rank field from every record
	StripRank bool
	// render a human-readable table instead of tab-delimited text
	Table bool
}

// Write hands the finalized ResultSet to its destination.
func Write(result *ResultSet, opts WriteOptions) error {
	out := io.Writer(os.Stdout)
	if opts.Destination != "" {
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if opts.Append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		f, err := os.OpenFile(opts.Destination, flags, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	if opts.Table {
		writeTable(out, result, opts.StripRank)
		return nil
	}

	w := bufio.NewWriter(out)
	if result.RawText != nil {
		for _, text := range result.RawText {
			w.WriteString(text)
			if !strings.HasSuffix(text, "\n") {
				w.WriteByte('\n')
			}
		}
		return w.Flush()
	}
	for _, rec := range result.Records {
		w.WriteString(rec.Line(opts.StripRank))
		w.WriteByte('\n')
	}
	return w.Flush()
}

func writeTable(out io.Writer, result *ResultSet, stripRank bool) {
	t := table.NewWriter()
	t.SetOutputMirror(out)

	header := table.Row{"#", "Title", "Details"}
	if stripRank {
		header = header[1:]
	}
	t.AppendHeader(header)

	for _, rec := range result.Records {
		fields := rec
		if stripRank && len(fields) > 0 {
			fields = fields[1:]
		}
		row := make(table.Row, len(fields))
		for i, f := range fields {
			row[i] = f
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
