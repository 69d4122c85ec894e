// Package printer renders check and validation reports as text.
package printer

import (
	"fmt"
	"io"

	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/cmd/output"
)

// ReportPrinter prints each report as its package identity followed by the version or error text,
// and a footer counting successes and failures.
// Items may be printed as they complete; the counts cover every item printed so far.
type ReportPrinter struct {
	headerFunc output.WriteFunc[checker.Report]
	footerFunc output.WriteFunc[checker.Report]
	succeeded  int
	failed     int
}

var _ output.Printer[checker.Report] = (*ReportPrinter)(nil)

// NewReportPrinter returns a ReportPrinter with no header and the default summary footer.
func NewReportPrinter(opt ...Option) (*ReportPrinter, error) {
	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	p := &ReportPrinter{}
	if opts.showSummary {
		p.footerFunc = p.summary
	}

	return p, nil
}

func (p *ReportPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *ReportPrinter) SetHeader(fn output.WriteFunc[checker.Report]) {
	p.headerFunc = fn
}

// Item prints:
//
//	package: <name>, url: <url>:
//	<version or error>
func (p *ReportPrinter) Item(w io.Writer, r checker.Report) error {
	if r.Error != "" {
		p.failed++
	} else {
		p.succeeded++
	}

	if _, err := fmt.Fprintf(w, "package: %s, url: %s:\n", r.Name, r.URL); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(w, r.Summary); err != nil {
		return err
	}

	return nil
}

func (p *ReportPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *ReportPrinter) SetFooter(fn output.WriteFunc[checker.Report]) {
	p.footerFunc = fn
}

// Counts returns the number of successful and failed reports printed so far.
func (p *ReportPrinter) Counts() (succeeded int, failed int) {
	return p.succeeded, p.failed
}

func (p *ReportPrinter) summary(w io.Writer, _ int) {
	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintf(w, "✓ %d succeeded, ✗ %d failed\n", p.succeeded, p.failed)
}
