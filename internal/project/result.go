package project

import (
	"fmt"

	"wise-migrator/internal/diagnostic"
	"wise-migrator/internal/steptype"
	"wise-migrator/internal/wise4"
)

// StepResult is the outcome of converting one step.
type StepResult struct {
	// Activity and Index are 1-based positions in the project.
	Activity int
	Index    int

	Resolution steptype.Resolution
	// Node is the manifest entry, nil when the step failed.
	Node *wise4.Node
	// Err is the reason the step failed.
	Err error
	// XML is the step as found in the project document.
	XML string
}

// Converted reports whether the step produced a node.
func (s StepResult) Converted() bool {
	return s.Node != nil && s.Err == nil
}

// Location names the step's position for log and diagnostic messages.
func (s StepResult) Location() string {
	return fmt.Sprintf("activity %d, step %d", s.Activity, s.Index)
}

// Result summarizes a run.
type Result struct {
	ProjectID  string
	ProjectDir string
	Title      string
	Steps      []StepResult

	Diagnostics diagnostic.Diagnostics
}

// Converted returns the number of converted steps.
func (r *Result) Converted() int {
	n := 0

	for _, s := range r.Steps {
		if s.Converted() {
			n++
		}
	}

	return n
}

// Failed returns the number of steps that could not be converted.
func (r *Result) Failed() int {
	return len(r.Steps) - r.Converted()
}
