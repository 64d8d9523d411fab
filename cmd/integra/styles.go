package main

import "github.com/charmbracelet/lipgloss"

// Centralized style definitions for console output.
var (
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")) // magenta
	taglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // gray
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))             // gray

	// Example section styles.
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")) // cyan

	// Outcome styles.
	failureStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("1"))
	doneStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")) // green
)
