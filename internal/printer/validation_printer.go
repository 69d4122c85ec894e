package printer

import (
	"fmt"
	"io"

	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/cmd/output"
)

// ValidationPrinter prints whether each package declaration is valid.
type ValidationPrinter struct {
	headerFunc output.WriteFunc[checker.Report]
	footerFunc output.WriteFunc[checker.Report]
	invalid    int
}

var _ output.Printer[checker.Report] = (*ValidationPrinter)(nil)

// NewValidationPrinter returns a ValidationPrinter with the default header and footer.
func NewValidationPrinter(opt ...Option) (*ValidationPrinter, error) {
	opts, err := NewOptions(opt...)
	if err != nil {
		return nil, err
	}

	p := &ValidationPrinter{headerFunc: validationHeader}
	if opts.showSummary {
		p.footerFunc = p.summary
	}

	return p, nil
}

func (p *ValidationPrinter) Header(w io.Writer, count int) {
	if p.headerFunc != nil {
		p.headerFunc(w, count)
	}
}

func (p *ValidationPrinter) SetHeader(fn output.WriteFunc[checker.Report]) {
	p.headerFunc = fn
}

func (p *ValidationPrinter) Item(w io.Writer, r checker.Report) error {
	if r.Error != "" {
		p.invalid++
		_, err := fmt.Fprintf(w, "  ✗ %s (%s): %s\n", r.Name, r.URL, r.Error)
		return err
	}

	_, err := fmt.Fprintf(w, "  ✓ %s (%s)\n", r.Name, r.URL)
	return err
}

func (p *ValidationPrinter) Footer(w io.Writer, count int) {
	if p.footerFunc != nil {
		p.footerFunc(w, count)
	}
}

func (p *ValidationPrinter) SetFooter(fn output.WriteFunc[checker.Report]) {
	p.footerFunc = fn
}

func (p *ValidationPrinter) summary(w io.Writer, count int) {
	_, _ = fmt.Fprintln(w, "")
	if p.invalid == 0 {
		_, _ = fmt.Fprintf(w, "✅ All %d package%s valid\n", count, plural(count))
		return
	}
	_, _ = fmt.Fprintf(w, "❌ %d of %d package%s invalid\n", p.invalid, count, plural(count))
}

func validationHeader(w io.Writer, count int) {
	_, _ = fmt.Fprintf(w, "🔎 Validating %d package%s...\n", count, plural(count))
	_, _ = fmt.Fprintln(w, "")
}

func plural(count int) string {
	return map[bool]string{true: "s"}[count != 1]
}
