// Package keymap defines keybindings for the presenter TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the presenter.
type KeyMap struct {
	// Next advances to the next slide.
	Next key.Binding

	// Prev goes back one slide.
	Prev key.Binding

	// First jumps to the first slide.
	First key.Binding

	// Last jumps to the last slide.
	Last key.Binding

	// Fullscreen toggles the alternate screen.
	Fullscreen key.Binding

	// Timer starts or pauses the elapsed timer.
	Timer key.Binding

	// Contents opens the table of contents overlay.
	Contents key.Binding

	// Notes toggles facilitator notes on the current slide.
	Notes key.Binding

	// Reveal toggles the poll explanation once an option is chosen.
	Reveal key.Binding

	// Focus moves keyboard input into the reflection text area.
	Focus key.Binding

	// Submit records the reflection text.
	Submit key.Binding

	// Back leaves fullscreen, closes overlays or blurs the text area.
	Back key.Binding

	// Quit exits the presentation.
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "l", " ", "pgdown"),
			key.WithHelp("→/space", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←", "prev"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "fullscreen"),
		),
		Timer: key.NewBinding(
			key.WithKeys("t", "T"),
			key.WithHelp("t", "timer"),
		),
		Contents: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "contents"),
		),
		Notes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notes"),
		),
		Reveal: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "explanation"),
		),
		Focus: key.NewBinding(
			key.WithKeys("i", "tab"),
			key.WithHelp("i", "write"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
