package validation

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const reportWidth = 80

// Severity ranks a finding. Only errors make a document invalid.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeveritySuggestion
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeveritySuggestion:
		return "suggestion"
	default:
		return "unknown"
	}
}

// Finding is one rule outcome. The severity is fixed at creation and
// never reclassified afterwards.
type Finding struct {
	Severity Severity
	Message  string
}

func errorf(format string, args ...any) Finding {
	return Finding{Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

func warningf(format string, args ...any) Finding {
	return Finding{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

func suggestionf(format string, args ...any) Finding {
	return Finding{Severity: SeveritySuggestion, Message: fmt.Sprintf(format, args...)}
}

// Result partitions one document's findings by severity, preserving
// emission order within each class.
type Result struct {
	Errors      []string
	Warnings    []string
	Suggestions []string
}

// Aggregate partitions findings into a result.
func Aggregate(findings []Finding) *Result {
	result := &Result{}
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			result.Errors = append(result.Errors, f.Message)
		case SeverityWarning:
			result.Warnings = append(result.Warnings, f.Message)
		case SeveritySuggestion:
			result.Suggestions = append(result.Suggestions, f.Message)
		}
	}
	return result
}

// IsValid reports whether the document passed: no errors. Warnings and
// suggestions never affect it, strict mode included.
func (r *Result) IsValid() bool {
	return len(r.Errors) == 0
}

// RenderReport writes the per-file report: banner, verdict, then the
// numbered findings grouped by severity.
func (r *Result) RenderReport(w io.Writer, name string) error {
	var b strings.Builder
	banner := strings.Repeat("=", reportWidth)

	fmt.Fprintf(&b, "\n%s\n", banner)
	fmt.Fprintf(&b, "VALIDATION REPORT: %s\n", name)
	fmt.Fprintf(&b, "%s\n\n", banner)

	if r.IsValid() {
		fmt.Fprintln(&b, "✅ PASSED - Agent definition is valid")
	} else {
		fmt.Fprintln(&b, "❌ FAILED - Agent definition has errors")
	}
	fmt.Fprintln(&b)

	writeFindingSection(&b, "ERRORS", r.Errors)
	writeFindingSection(&b, "WARNINGS", r.Warnings)
	writeFindingSection(&b, "SUGGESTIONS", r.Suggestions)

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "failed to write validation report")
}

func writeFindingSection(b *strings.Builder, heading string, messages []string) {
	if len(messages) == 0 {
		return
	}
	fmt.Fprintf(b, "%s (%d):\n", heading, len(messages))
	for i, msg := range messages {
		fmt.Fprintf(b, "  %d. %s\n", i+1, msg)
	}
	fmt.Fprintln(b)
}

// Batch tracks run-level success across files. In strict mode a result
// with warnings fails the batch; the result itself is never modified.
type Batch struct {
	strict bool
	ok     bool
}

// NewBatch creates a batch verdict tracker.
func NewBatch(strict bool) *Batch {
	return &Batch{strict: strict, ok: true}
}

// Add folds one file's result into the batch verdict.
func (b *Batch) Add(result *Result) {
	if !result.IsValid() {
		b.ok = false
	}
	if b.strict && len(result.Warnings) > 0 {
		b.ok = false
	}
}

// Fail records an out-of-band failure, e.g. a missing file.
func (b *Batch) Fail() {
	b.ok = false
}

// OK reports whether everything added so far passed.
func (b *Batch) OK() bool {
	return b.ok
}
