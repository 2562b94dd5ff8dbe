package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/roach88/pagekit/internal/query"
	"github.com/roach88/pagekit/internal/record"
)

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format  string
	Writer  io.Writer
	Verbose bool
}

func newFormatter(w io.Writer, opts *RootOptions) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: w, Verbose: opts.Verbose}
}

// Record renders a single record.
func (f *OutputFormatter) Record(r record.Record) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(r)
	}
	_, err := fmt.Fprintf(f.Writer, "%s\t%s\n", r.Key, r.Value)
	return err
}

// Records renders a record listing.
func (f *OutputFormatter) Records(records []record.Record) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(records)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(f.Writer, "%s\t%s\n", r.Key, r.Value); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(f.Writer, "%d record(s)\n", len(records))
	return err
}

// Page renders a query result.
func (f *OutputFormatter) Page(page *query.Page) error {
	if f.Format == "json" {
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(page)
	}

	for _, edge := range page.Edges {
		if _, err := fmt.Fprintf(f.Writer, "%s\t%s\t%s\n", edge.Node.Key, edge.Node.Value, edge.Cursor); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(f.Writer, "%d edge(s)\thasPreviousPage=%t\thasNextPage=%t\n",
		len(page.Edges), page.PageInfo.HasPreviousPage, page.PageInfo.HasNextPage)
	return err
}

// VerboseLog outputs a message only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.Writer, format+"\n", args...)
}
