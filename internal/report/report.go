// Package report prints the operator-facing tables and distributions of a
// pipeline run. Output is for reading, not parsing.
package report

import (
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ruleWidth matches the width of the per-file table.
const ruleWidth = 61

// Printer writes report sections to an io.Writer.
type Printer struct {
	w io.Writer
	p *message.Printer
}

// New returns a Printer writing to w. A nil w discards output.
func New(w io.Writer) *Printer {
	if w == nil {
		w = io.Discard
	}
	return &Printer{w: w, p: message.NewPrinter(language.English)}
}

// Rule prints a separator line.
func (r *Printer) Rule() {
	r.p.Fprintln(r.w, strings.Repeat("=", ruleWidth))
}

// FileHeader prints the header of the per-file table.
func (r *Printer) FileHeader() {
	r.p.Fprintf(r.w, "%-30s | %-11s | %-6s\n", "Filename", "Amount used", "Amount Skipped")
	r.Rule()
}

// FileRow prints one row of the per-file table.
func (r *Printer) FileRow(name string, used, skipped int) {
	r.p.Fprintf(r.w, "%-30s : %11d : %14d\n", name, used, skipped)
}

// Summary prints the unique count and how many duplicates were dropped.
func (r *Printer) Summary(unique, filtered int) {
	r.Rule()
	r.p.Fprintf(r.w, "Total unique data : %d | filtered out %d\n", unique, filtered)
	r.Rule()
	r.p.Fprintln(r.w)
}

// Title prints a section heading.
func (r *Printer) Title(title string) {
	r.p.Fprintln(r.w, title)
}

// Counts prints each key with its count in first-seen order.
func Counts[K comparable](r *Printer, c *Counter[K]) {
	for _, k := range c.Keys() {
		r.p.Fprintf(r.w, "  %v: %d\n", k, c.Count(k))
	}
}

// Proportions prints each key with its share of the total.
func Proportions[K comparable](r *Printer, c *Counter[K]) {
	for _, k := range c.Keys() {
		r.p.Fprintf(r.w, "%v %.4f\n", k, c.Proportion(k))
	}
}

// Distribution prints counts followed by proportions under a title.
func Distribution[K comparable](r *Printer, title string, c *Counter[K]) {
	r.Title(title)
	Counts(r, c)
	r.Title("as a percentage:")
	Proportions(r, c)
}
