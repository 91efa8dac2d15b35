package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan = lipgloss.Color("36")  // vertex values
	colorGray = lipgloss.Color("245") // secondary text
	colorDim  = lipgloss.Color("240") // separators
)

var (
	// StyleTitle for headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleValue for vertex values.
	StyleValue = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorGray)

	styleArrow = lipgloss.NewStyle().Foreground(colorDim)
)

// arrowBack joins a path that is ordered end→start.
const arrowBack = " ← "

// printTitle writes a bold heading line.
func printTitle(w io.Writer, format string, a ...any) {
	fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf(format, a...)))
}

// printKV writes "key: value" with the key dimmed.
func printKV(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %s\n", StyleDim.Render(key+":"), StyleValue.Render(fmt.Sprint(value)))
}

// renderPath renders an end→start path with arrows.
func renderPath(path []string) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = StyleValue.Render(v)
	}
	return strings.Join(parts, styleArrow.Render(arrowBack))
}

// renderList renders values separated by commas, or a dim "(none)".
func renderList(values []string) string {
	if len(values) == 0 {
		return StyleDim.Render("(none)")
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = StyleValue.Render(v)
	}
	return strings.Join(parts, ", ")
}
