package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDeck indicates a deck failed construction-time validation.
	// Malformed content is a content-authoring defect: the deck is rejected
	// at load time rather than coerced into something displayable.
	ErrInvalidDeck = errors.New("invalid deck")

	// ErrEmptyDeck indicates a deck with no slides.
	ErrEmptyDeck = errors.New("deck has no slides")
)
