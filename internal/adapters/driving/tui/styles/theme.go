// Package styles provides colour themes and styling for the presenter TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the presenter.
type Theme struct {
	// Primary is the main accent colour, used for slide titles.
	Primary lipgloss.Color

	// Secondary is the secondary accent colour, used for section names.
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success marks correct poll answers.
	Success lipgloss.Color

	// Warning marks the timer when a slide runs over its estimate.
	Warning lipgloss.Color

	// Error marks incorrect poll answers and load failures.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#89B4FA"), // Blue
		Secondary:  lipgloss.Color("#CBA6F7"), // Lavender
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles for slide rendering.
type Styles struct {
	theme *Theme

	// SlideTitle is the style for slide headings.
	SlideTitle lipgloss.Style

	// SectionBadge labels the slide's section in the status bar.
	SectionBadge lipgloss.Style

	// Normal is regular body text.
	Normal lipgloss.Style

	// Muted is de-emphasised text such as placeholders.
	Muted lipgloss.Style

	// PointHeader is a bold talking-point header.
	PointHeader lipgloss.Style

	// Bullet is an indented bullet talking point.
	Bullet lipgloss.Style

	// Selected highlights the chosen poll option.
	Selected lipgloss.Style

	// Correct marks the correct poll option after reveal.
	Correct lipgloss.Style

	// Incorrect marks a wrong selection after reveal.
	Incorrect lipgloss.Style

	// Explanation boxes the revealed poll explanation.
	Explanation lipgloss.Style

	// Quote renders quotation text.
	Quote lipgloss.Style

	// QuoteAuthor renders a quotation attribution.
	QuoteAuthor lipgloss.Style

	// TableHeader renders table heading cells.
	TableHeader lipgloss.Style

	// StepNumber renders decision-tree step numbers.
	StepNumber lipgloss.Style

	// Notes boxes facilitator notes when toggled on.
	Notes lipgloss.Style

	// StatusBar is the bottom status line.
	StatusBar lipgloss.Style

	// Help is the keybinding hint line.
	Help lipgloss.Style

	// Error renders load and save failures.
	Error lipgloss.Style

	// Border wraps padded content blocks.
	Border lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		SlideTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		SectionBadge: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		PointHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		Bullet: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Correct: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Success),

		Incorrect: lipgloss.NewStyle().
			Foreground(theme.Error),

		Explanation: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Foreground(theme.Foreground).
			Padding(0, 1),

		Quote: lipgloss.NewStyle().
			Italic(true).
			Foreground(theme.Secondary),

		QuoteAuthor: lipgloss.NewStyle().
			Foreground(theme.Muted),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		StepNumber: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Notes: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Warning).
			Foreground(theme.Foreground).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#181825")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}
