// Package file loads presentation decks from TOML files on disk.
// It implements the DeckSource and DeckWatcher driven ports.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driven"
)

// Ensure Source implements the interfaces.
var (
	_ driven.DeckSource  = (*Source)(nil)
	_ driven.DeckWatcher = (*Source)(nil)
)

// Source loads a deck from a single TOML file.
type Source struct {
	path string
}

// NewSource creates a deck source for the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load reads, decodes and validates the deck file. Decode and
// validation failures identify the offending slide where possible.
func (s *Source) Load(_ context.Context) (*domain.Deck, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file: %w", err)
	}

	return Decode(data)
}

// Decode parses TOML deck bytes into a validated deck. It is shared by
// every source that speaks the deck file format, wherever the bytes
// come from.
func Decode(data []byte) (*domain.Deck, error) {
	var doc deckDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding deck file: %w", err)
	}
	return doc.toDeck()
}

// Describe returns the deck file path.
func (s *Source) Describe() string {
	return s.path
}

// Path returns the absolute path of the deck file, falling back to the
// configured path if it cannot be resolved.
func (s *Source) Path() string {
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return s.path
	}
	return abs
}
