package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodeUnconvertible = "unconvertible-step"
	CodeMissingField  = "missing-field"
	CodeUnsupported   = "unsupported-content"
	CodeConversion    = "conversion-failed"
	CodeWrite         = "write-failed"
	CodeUnrecognized  = "unrecognized-type"
	CodeUnsafeEntry   = "unsafe-archive-entry"
	CodeEmptyActivity = "empty-activity"
)

// Diagnostics holds all diagnostic information from a conversion run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// StepType is the resolved or declared type of the step (if any).
	StepType string
	// Location identifies the step within the project, e.g. "activity 2, step 5".
	Location string
	// Detail is the raw XML of the step, kept for errors.
	Detail string
}

//go:generate go tool stringer -type=DiagnosticSeverity -linecomment -output=diagnosticseverity_string.go

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo    DiagnosticSeverity = iota // info
	DiagnosticWarning                           // warning
	DiagnosticError                             // error
)

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, stepType, location, detail string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: DiagnosticError,
		Code:     code,
		Message:  message,
		StepType: stepType,
		Location: location,
		Detail:   detail,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, stepType, location string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: DiagnosticWarning,
		Code:     code,
		Message:  message,
		StepType: stepType,
		Location: location,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, stepType, location string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		StepType: stepType,
		Location: location,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Count returns the number of diagnostics of the given severity.
func (d *Diagnostics) Count(severity DiagnosticSeverity) int {
	switch severity {
	case DiagnosticError:
		return len(d.Errors)
	case DiagnosticWarning:
		return len(d.Warnings)
	case DiagnosticInfo:
		return len(d.Infos)
	default:
		return 0
	}
}

// Error returns a combined error from all error diagnostics, or nil when
// there are none.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.StepType != "" {
		prefix = append(prefix, "["+d.StepType+"]")
	}

	if d.Location != "" {
		prefix = append(prefix, d.Location)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
