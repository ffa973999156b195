// Package tui provides the interactive presenter for deckhand.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the presenter.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Deck loads presentation content.
	Deck driving.DeckService

	// Responses records poll answers and reflections. May be nil when
	// response tracking is disabled.
	Responses driving.ResponseService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(deck driving.DeckService, responses driving.ResponseService) *Ports {
	return &Ports{
		Deck:      deck,
		Responses: responses,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Deck == nil {
		return ErrMissingDeckService
	}
	return nil
}
