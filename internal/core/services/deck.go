// Package services implements the driving ports over the domain model.
package services

import (
	"context"
	"fmt"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driven"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
	"github.com/brightline-labs/deckhand-cli/internal/logger"
)

// DeckService loads decks through a content source.
type DeckService struct {
	source driven.DeckSource
}

var _ driving.DeckService = (*DeckService)(nil)

// NewDeckService creates a deck service over the given source.
func NewDeckService(source driven.DeckSource) *DeckService {
	return &DeckService{source: source}
}

// Load fetches and validates the deck.
func (s *DeckService) Load(ctx context.Context) (*domain.Deck, error) {
	if s.source == nil {
		return nil, fmt.Errorf("loading deck: %w", domain.ErrNotFound)
	}

	deck, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading deck from %s: %w", s.source.Describe(), err)
	}

	logger.Debug("loaded deck %q: %d slides, %d sections, %.1f min",
		deck.Title(), deck.Len(), len(deck.Sections()), deck.TotalDuration())
	return deck, nil
}

// Watch delegates to the source when it can observe changes.
func (s *DeckService) Watch(ctx context.Context) error {
	watcher, ok := s.source.(driven.DeckWatcher)
	if !ok {
		return fmt.Errorf("%w: deck source %s does not support watching", domain.ErrInvalidInput, s.Origin())
	}
	return watcher.Watch(ctx)
}

// Origin describes where the deck comes from.
func (s *DeckService) Origin() string {
	if s.source == nil {
		return "(no source)"
	}
	return s.source.Describe()
}
