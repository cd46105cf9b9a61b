package cmd

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pathwise/internal/ui/theme"
)

const nameWidth = 26

func printHeading(w io.Writer, title, subtitle string) {
	line := theme.Title.Render(title)
	if subtitle != "" {
		line += "  " + theme.Subtitle.Render(subtitle)
	}
	lipgloss.Fprintln(w, line)
}

// printSteps prints topics as a numbered list, highlighting target.
func printSteps(w io.Writer, topics []string, target string) {
	for i, t := range topics {
		style := theme.Step
		if t == target {
			style = theme.Target
		}
		lipgloss.Fprintln(w, theme.StepNumber.Render(fmt.Sprintf("%d.", i+1))+" "+style.Render(t))
	}
}

// printList prints one topic per line, or a hint when there are none.
func printList(w io.Writer, topics []string) {
	if len(topics) == 0 {
		lipgloss.Fprintln(w, theme.Hint.Render("(none)"))
		return
	}
	for _, t := range topics {
		lipgloss.Fprintln(w, theme.Body.Render(t))
	}
}

func printWarning(w io.Writer, format string, args ...any) {
	lipgloss.Fprintln(w, theme.Warning.Render("warning:")+" "+fmt.Sprintf(format, args...))
}

func printField(w io.Writer, label, value string) {
	lipgloss.Fprintln(w, theme.Label.Render(label+":")+" "+value)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// joinOrNone joins names, or returns a dim placeholder for an empty list.
func joinOrNone(names []string) string {
	if len(names) == 0 {
		return theme.Hint.Render("none")
	}
	return strings.Join(names, ", ")
}
