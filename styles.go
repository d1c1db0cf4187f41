package main

import "github.com/charmbracelet/lipgloss"

// ============================================================================
// CHROME STYLES
// ============================================================================
// Everything here styles the reader around the article. The article itself
// is styled from the committed ArticleState (see internal/applier).

var (
	// arrowStyle is the toggle button in the top-left corner
	arrowStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("63")). // Purple, matches the title color
			Padding(0, 1)

	// arrowOpenStyle marks the button while the panel is open
	arrowOpenStyle = arrowStyle.
			Background(lipgloss.Color("205")) // Pink

	// headerStyle styles the source line next to the toggle button
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// panelStyle is the side panel frame
	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(0, 1)

	// pendingTitleStyle heads the list of unsubmitted changes
	pendingTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("246")).
				Italic(true)

	// statusStyle is the bottom line
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")). // Dark gray text
			Background(lipgloss.Color("236")). // Dark background
			Padding(0, 1)

	// errorStyle highlights load failures in the article area
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true).
			Margin(1, 2)
)
