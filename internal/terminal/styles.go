// Package terminal holds the lipgloss styles used by the streaming
// renderer.
package terminal

import "github.com/charmbracelet/lipgloss"

var (
	dimStyle    = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#6c7086"))
	brightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89dceb"))
)

// Dim renders dim gray helper text.
func Dim(text string) string { return dimStyle.Render(text) }

// Bright renders the assistant's response text.
func Bright(text string) string { return brightStyle.Render(text) }

// Green renders success markers.
func Green(text string) string { return greenStyle.Render(text) }

// Red renders failure markers.
func Red(text string) string { return redStyle.Render(text) }

// Yellow renders warnings.
func Yellow(text string) string { return yellowStyle.Render(text) }

// Cyan renders prompts and labels.
func Cyan(text string) string { return cyanStyle.Render(text) }
