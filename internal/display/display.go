// Package display holds the lipgloss styles and small render helpers
// the CLI commands share.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(14)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// Header renders a section title.
func Header(title string) string {
	return headerStyle.Render(title)
}

// KeyValue renders one aligned "Label: value" line.
func KeyValue(label, value string) string {
	return labelStyle.Render(label+":") + " " + value
}

// Error renders an error line.
func Error(msg string) string {
	return errorStyle.Render("error: " + msg)
}

// Success renders a confirmation line.
func Success(msg string) string {
	return successStyle.Render(msg)
}

// Muted renders de-emphasized text.
func Muted(msg string) string {
	return mutedStyle.Render(msg)
}

// Table renders rows with left-aligned, padded columns.
func Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder
	for i, h := range headers {
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render(pad(h, widths[i])))
		if i < len(headers)-1 {
			sb.WriteString("  ")
		}
	}
	sb.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			sb.WriteString(pad(cell, widths[i]))
			if i < len(row)-1 {
				sb.WriteString("  ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// Countf renders a muted trailer line such as "3 entries".
func Countf(format string, args ...interface{}) string {
	return mutedStyle.Render(fmt.Sprintf(format, args...))
}
