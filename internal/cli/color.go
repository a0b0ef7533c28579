package cli

import (
	"github.com/alexanderramin/systematics/internal/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ApplyColorMode sets the lipgloss color profile for mode. Auto keeps the
// profile detected from stdout.
func ApplyColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorNever:
		lipgloss.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
