package driven

import (
	"context"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// DeckSource loads a validated deck from wherever the content lives.
// Implementations convert their wire format into the domain slide union
// and must return construction errors from domain.NewDeck unmodified,
// so malformed content always fails fast with the offending slide id.
type DeckSource interface {
	// Load fetches and validates the deck.
	Load(ctx context.Context) (*domain.Deck, error)

	// Describe returns a human-readable origin, e.g. a file path or
	// "github.com/org/repo/decks/boundaries.toml", for logs and errors.
	Describe() string
}

// DeckWatcher is implemented by sources that can report content changes
// while a presentation is running.
type DeckWatcher interface {
	// Watch blocks until the underlying content changes or ctx is done.
	// A nil return means "changed, reload"; ctx.Err() is returned on
	// cancellation.
	Watch(ctx context.Context) error
}
