// Package messages defines Bubbletea message types for the presenter TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// DeckReloaded carries a freshly loaded deck after the source changed.
type DeckReloaded struct {
	Deck *domain.Deck
	Err  error
}

// WatchFailed reports that the source watcher could not be established.
// The controller stops watching: re-arming a watcher that fails
// immediately would spin.
type WatchFailed struct {
	Err error
}

// JumpToSlide is sent by the contents overlay to move the cursor.
type JumpToSlide struct {
	Index int
}

// CloseContents is sent when the contents overlay is dismissed.
type CloseContents struct{}

// TimerTick advances the elapsed timer by one second. Gen matches the
// timer generation that scheduled it; stale ticks are dropped so
// pausing and resuming never double-counts.
type TimerTick struct {
	Gen int
}

// PollAnswerSaved reports the outcome of recording a poll selection.
type PollAnswerSaved struct {
	SlideID int
	Err     error
}

// ReflectionSaved reports the outcome of recording a reflection.
type ReflectionSaved struct {
	SlideID int
	Err     error
}
