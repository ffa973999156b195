package mcp

import (
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Deck loads presentation content.
	Deck driving.DeckService

	// Guide projects decks into facilitator guides.
	Guide driving.GuideService

	// Responses reads recorded sessions. Optional.
	Responses driving.ResponseService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Deck == nil {
		return ErrMissingDeckService
	}
	if p.Guide == nil {
		return ErrMissingGuideService
	}
	return nil
}
