package uiout

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var styleErrBox = lipgloss.NewStyle().
	Width(80).
	MarginTop(1).
	Bold(true).
	Background(lipgloss.AdaptiveColor{Light: "#ffcdd2", Dark: "#512222"}).
	Foreground(lipgloss.AdaptiveColor{Light: "#b71c1c", Dark: "#fa8a8a"}).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderLeftForeground(lipgloss.Color("#f86262")).
	Padding(1, 2)

var styleHelpBox = lipgloss.NewStyle().
	Width(80).
	Background(lipgloss.AdaptiveColor{Light: "#e9e9e9", Dark: "#2f2f2f"}).
	Padding(0, 2).
	Margin(0, 1).
	PaddingTop(1)

// ErrorBox renders err's kind and message in a bordered panel. artifact
// is the offending artifact id/url, if any, appended to the message.
func ErrorBox(kind, message, artifact string) string {
	text := fmt.Sprintf("%s: %s", kind, message)
	if artifact != "" {
		text += " (" + artifact + ")"
	}
	return styleErrBox.Render(text)
}

// Suggestions renders a list of follow-up actions under an error box.
func Suggestions(items []string) string {
	if len(items) == 0 {
		return ""
	}
	heading := "Suggestion:\n"
	if len(items) > 1 {
		heading = "Suggestions:\n"
	}
	for _, s := range items {
		heading += " - " + s + "\n"
	}
	return styleHelpBox.Render(heading)
}
