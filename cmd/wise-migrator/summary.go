package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"wise-migrator/internal/common"
	"wise-migrator/internal/diagnostic"
	"wise-migrator/internal/project"
)

var (
	green = lipgloss.Color("76")
	red   = lipgloss.Color("204")
	amber = lipgloss.Color("214")
	dim   = lipgloss.Color("243")

	successStyle = lipgloss.NewStyle().Foreground(green)
	errorStyle   = lipgloss.NewStyle().Foreground(red)
	warnStyle    = lipgloss.NewStyle().Foreground(amber)
	mutedStyle   = lipgloss.NewStyle().Foreground(dim)
	boldStyle    = lipgloss.NewStyle().Bold(true)
)

// configureColor picks the color profile of the terminal, or plain text.
func configureColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	lipgloss.SetColorProfile(termenv.ColorProfile())
}

func successMsg(format string, a ...any) string {
	return successStyle.Render("✓") + " " + fmt.Sprintf(format, a...)
}

func warnMsg(format string, a ...any) string {
	return warnStyle.Render("!") + " " + fmt.Sprintf(format, a...)
}

func errorMsg(format string, a ...any) string {
	return errorStyle.Render("✗") + " " + fmt.Sprintf(format, a...)
}

// renderSummary prints the outcome of one project conversion.
func renderSummary(w io.Writer, res *project.Result) {
	fmt.Fprintln(w, boldStyle.Render(fmt.Sprintf("Project %s", res.ProjectID))+" "+mutedStyle.Render(res.Title))
	fmt.Fprintln(w, "  "+mutedStyle.Render(res.ProjectDir))

	converted := res.Converted()
	fmt.Fprintln(w, "  "+successMsg("%d %s converted", converted, common.Plural(converted, "step", "steps")))

	if failed := res.Failed(); failed > 0 {
		fmt.Fprintln(w, "  "+errorMsg("%d %s failed", failed, common.Plural(failed, "step", "steps")))

		for _, d := range res.Diagnostics.Errors {
			fmt.Fprintf(w, "    %s %s: %s\n", mutedStyle.Render(d.Location), d.StepType, d.Message)
		}
	}

	for _, d := range res.Diagnostics.Warnings {
		fmt.Fprintln(w, "  "+warnMsg("%s", d.Message))
	}

	for _, d := range res.Diagnostics.Infos {
		fmt.Fprintln(w, "  "+mutedStyle.Render(d.Message))
	}
}

// renderTotals prints the combined outcome of a batch of archives.
func renderTotals(w io.Writer, projects int, total *diagnostic.Diagnostics) {
	errs := total.Count(diagnostic.DiagnosticError)
	warns := total.Count(diagnostic.DiagnosticWarning)

	line := fmt.Sprintf("%d %s: %d failed %s, %d %s",
		projects, common.Plural(projects, "project", "projects"),
		errs, common.Plural(errs, "step", "steps"),
		warns, common.Plural(warns, "warning", "warnings"))

	if total.HasErrors() {
		fmt.Fprintln(w, boldStyle.Render(errorMsg("%s", line)))
		return
	}

	fmt.Fprintln(w, boldStyle.Render(successMsg("%s", line)))
}
