package commands

import (
	"io"

	"github.com/fatih/color"

	"github.com/erraggy/oaslint/validator"
)

// Reporter writes a validation result as human-readable text.
type Reporter struct {
	out     io.Writer
	noColor bool
}

// NewReporter creates a Reporter writing to out. noColor disables ANSI
// colors regardless of the terminal.
func NewReporter(out io.Writer, noColor bool) *Reporter {
	return &Reporter{out: out, noColor: noColor}
}

// Report writes errors, then warnings, one finding per line.
func (r *Reporter) Report(result *validator.ValidationResult) {
	if result == nil {
		return
	}
	if len(result.Errors) > 0 {
		Writef(r.out, "Errors (%d):\n", result.ErrorCount)
		for _, e := range result.Errors {
			r.printIssue(e, color.FgRed)
		}
		Writef(r.out, "\n")
	}
	if len(result.Warnings) > 0 {
		Writef(r.out, "Warnings (%d):\n", result.WarningCount)
		for _, w := range result.Warnings {
			r.printIssue(w, color.FgYellow)
		}
		Writef(r.out, "\n")
	}
}

// Summary writes the one-line pass/fail verdict.
func (r *Reporter) Summary(result *validator.ValidationResult) {
	if result.Valid {
		msg := "✓ Validation passed"
		if result.WarningCount > 0 {
			msg += r.sprintf(color.FgYellow, " with %d warning(s)", result.WarningCount)
		}
		Writef(r.out, "%s\n", r.colorize(color.FgGreen, msg))
		return
	}
	msg := r.sprintf(color.FgRed, "✗ Validation failed: %d error(s)", result.ErrorCount)
	if result.WarningCount > 0 {
		msg += ", " + r.sprintf(color.FgYellow, "%d warning(s)", result.WarningCount)
	}
	Writef(r.out, "%s\n", msg)
}

func (r *Reporter) printIssue(i validator.ValidationError, c color.Attribute) {
	// Format:  • pointer: message [rule]
	Writef(r.out, "  • %s: %s %s\n",
		r.colorize(c, i.Pointer),
		i.Message,
		r.colorize(color.FgHiBlack, "["+i.Rule+"]"))
}

func (r *Reporter) colorize(attr color.Attribute, s string) string {
	return r.sprintf(attr, "%s", s)
}

func (r *Reporter) sprintf(attr color.Attribute, format string, args ...any) string {
	c := color.New(attr)
	if r.noColor {
		c.DisableColor()
	}
	return c.Sprintf(format, args...)
}
