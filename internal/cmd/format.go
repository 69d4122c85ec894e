package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/pvchecker/pv-checker/internal/checker"
	"github.com/pvchecker/pv-checker/internal/cmd/output"
)

const FlagNameFormat = "format"

// OutputFormat selects how reports are rendered. It implements pflag.Value.
type OutputFormat string

type OutputFormats []OutputFormat

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
	FormatText OutputFormat = "text"
)

// indentSpaces is the indentation used for structured output.
const indentSpaces = 2

func AllowedOutputFormats() OutputFormats {
	formats := []OutputFormat{
		FormatJSON,
		FormatText,
		FormatYAML,
	}

	slices.Sort(formats)

	return formats
}

// String implements fmt.Stringer for a collection of output formats,
// converting them to a comma separated string.
func (f *OutputFormats) String() string {
	ofs := *f
	out := make([]string, len(ofs))
	for i := range ofs {
		out[i] = ofs[i].String()
	}
	return strings.Join(out, ", ")
}

// String implements fmt.Stringer for an output format.
// This is also required by Cobra as part of implementing flag.Value.
func (f *OutputFormat) String() string {
	return strings.ToLower(string(*f))
}

// Set is used by Cobra to set the output format value from a string.
// This is also required by Cobra as part of implementing flag.Value.
func (f *OutputFormat) Set(v string) error {
	v = strings.ToLower(strings.TrimSpace(v))
	allowed := AllowedOutputFormats()

	for _, a := range allowed {
		if string(a) == v {
			*f = OutputFormat(v)
			return nil
		}
	}

	return fmt.Errorf("invalid format '%s', must be one of %v", v, allowed.String())
}

// Type is used by Cobra to get the 'type' of an output format for display purposes.
// This is also required by Cobra as part of implementing flag.Value.
func (f *OutputFormat) Type() string {
	return "format"
}

// NewReportHandler returns the handler that renders reports in format f.
// textPrinter is only used by the text format.
func NewReportHandler(
	f OutputFormat,
	w io.Writer,
	textPrinter output.Printer[checker.Report],
) (output.Handler[checker.Report], error) {
	switch f {
	case FormatJSON:
		return output.NewJSONHandler[checker.Report](w, indentSpaces), nil
	case FormatYAML:
		return output.NewYAMLHandler[checker.Report](w, indentSpaces), nil
	case FormatText:
		if textPrinter == nil {
			return nil, fmt.Errorf("text output requires a printer")
		}
		return output.NewTextHandler[checker.Report](w, textPrinter), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", f)
	}
}
