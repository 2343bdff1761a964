// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/form-autofill/internal/forms"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintElements outputs a summary of the controls discovered on the page.
func (p *Printer) PrintElements(elements []*forms.Element) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Controls found: %d\n\n", len(elements)))

	count := min(len(elements), maxItemsToShow)
	for i := 0; i < count; i++ {
		el := elements[i]
		name := forms.FieldName(el)
		if name == "" {
			name = "(unnamed)"
		}
		sb.WriteString(fmt.Sprintf("  • %-18s %s\n", forms.Classify(el), name))
	}
	if len(elements) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(elements)-maxItemsToShow))
	}

	p.printBox("Discovered Form Controls", sb.String())
}

// PrintResults outputs per-element fill outcomes and pass totals.
func (p *Printer) PrintResults(results []forms.Result) {
	var sb strings.Builder

	var filled, skipped, errored int
	for _, r := range results {
		switch r.Status {
		case forms.StatusFilled:
			filled++
		case forms.StatusSkipped:
			skipped++
		case forms.StatusErrored:
			errored++
		}
	}

	if len(results) > 0 {
		sb.WriteString(fmt.Sprintf("Pass:    %s\n", results[0].PassID))
	}
	sb.WriteString(fmt.Sprintf("Filled:  %d\n", filled))
	sb.WriteString(fmt.Sprintf("Skipped: %d\n", skipped))
	sb.WriteString(fmt.Sprintf("Errored: %d\n\n", errored))

	for _, r := range results {
		name := r.FieldName
		if name == "" {
			name = "(unnamed)"
		}
		switch r.Status {
		case forms.StatusFilled:
			sb.WriteString(fmt.Sprintf("  ✓ %s (%s) = %s\n", name, r.Provenance, r.Value))
		case forms.StatusSkipped:
			sb.WriteString(fmt.Sprintf("  - %s\n", name))
		case forms.StatusErrored:
			sb.WriteString(fmt.Sprintf("  ✗ %s: %v\n", name, r.Err))
		}
	}

	p.printBox("Fill Results", sb.String())
}
