// Package toc provides the table of contents overlay for jumping
// between slides.
package toc

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/messages"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/styles"
	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// entry is one selectable line: a slide under its section.
type entry struct {
	index   int // deck index
	section string
	label   string
	minutes float64
}

// View is the contents overlay.
type View struct {
	styles   *styles.Styles
	entries  []entry
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates an empty contents view. SetDeck populates it.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// Init initialises the contents view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetDeck rebuilds the entries from the deck, preserving deck order.
func (v *View) SetDeck(deck *domain.Deck) {
	v.entries = v.entries[:0]
	for i, s := range deck.Slides() {
		v.entries = append(v.entries, entry{
			index:   i,
			section: s.Base().Section,
			label:   domain.Label(s),
			minutes: s.Base().Duration,
		})
	}
	if v.selected >= len(v.entries) {
		v.selected = 0
	}
}

// Select moves the cursor to the entry for the given deck index.
func (v *View) Select(deckIndex int) {
	for i, e := range v.entries {
		if e.index == deckIndex {
			v.selected = i
			return
		}
	}
}

// SetDimensions updates the terminal size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Update handles messages for the contents view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
		return v, nil

	case "down", "j":
		if v.selected < len(v.entries)-1 {
			v.selected++
		}
		return v, nil

	case "enter":
		if len(v.entries) == 0 {
			return v, nil
		}
		index := v.entries[v.selected].index
		return v, func() tea.Msg {
			return messages.JumpToSlide{Index: index}
		}

	case "esc", "g", "q":
		return v, func() tea.Msg {
			return messages.CloseContents{}
		}
	}

	return v, nil
}

// View renders the contents overlay.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.SlideTitle.Render("Contents"))
	b.WriteString("\n")

	lastSection := ""
	for i, e := range v.entries {
		if e.section != lastSection {
			lastSection = e.section
			b.WriteString("\n")
			b.WriteString(v.styles.SectionBadge.Render(e.section))
			b.WriteString("\n")
		}

		line := fmt.Sprintf("  %s", e.label)
		if e.minutes > 0 {
			line += v.styles.Muted.Render(fmt.Sprintf("  (%s)", formatMinutes(e.minutes)))
		}
		if i == v.selected {
			line = v.styles.Selected.Render("> " + e.label)
			if e.minutes > 0 {
				line += v.styles.Muted.Render(fmt.Sprintf("  (%s)", formatMinutes(e.minutes)))
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("j/k move, enter jump, esc close"))
	return b.String()
}

// formatMinutes shows whole minutes without a decimal point.
func formatMinutes(m float64) string {
	if m == float64(int(m)) {
		return fmt.Sprintf("%d min", int(m))
	}
	return fmt.Sprintf("%.1f min", m)
}
