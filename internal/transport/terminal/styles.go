package terminal

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type styles struct {
	Title   lipgloss.Style
	MarkX   lipgloss.Style
	MarkO   lipgloss.Style
	Empty   lipgloss.Style
	Key     lipgloss.Style
	Prompt  lipgloss.Style
	Warning lipgloss.Style
	Success lipgloss.Style
	Info    lipgloss.Style
}

// newStyles - styles bound to the renderer of out. Without color every style renders plain text.
func newStyles(out io.Writer, color bool) styles {
	renderer := lipgloss.NewRenderer(out)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return styles{
		Title: renderer.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true),
		MarkX: renderer.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		MarkO: renderer.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true),
		Empty: renderer.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Key: renderer.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Prompt: renderer.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Warning: renderer.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Success: renderer.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Info: renderer.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
	}
}
