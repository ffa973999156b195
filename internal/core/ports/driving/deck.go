package driving

import (
	"context"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// DeckService loads presentation content for the driving adapters.
type DeckService interface {
	// Load fetches and validates the deck from the configured source.
	Load(ctx context.Context) (*domain.Deck, error)

	// Origin describes where the deck comes from.
	Origin() string

	// Watch blocks until the deck content changes at its source or the
	// context is cancelled. Sources that cannot observe changes return
	// an error immediately.
	Watch(ctx context.Context) error
}

// GuideService projects a deck into the facilitator guide.
type GuideService interface {
	// Project builds the facilitator document. It is a pure transform:
	// the same deck always yields the same document, independent of any
	// viewer session state.
	Project(deck *domain.Deck) domain.GuideDocument
}
