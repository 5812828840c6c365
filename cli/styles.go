// Package cli provides the quote subcommands of the server binary.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#1F6FEB")
	successColor = lipgloss.Color("#2DA44E")
	subtleColor  = lipgloss.Color("#666666")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	successStyle = lipgloss.NewStyle().Foreground(successColor)
	subtleStyle  = lipgloss.NewStyle().Foreground(subtleColor)
)
