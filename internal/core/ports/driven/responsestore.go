package driven

import (
	"context"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// ResponseStore persists participant responses. It is the collaborator
// that receives the presentation's two outbound events: "selected poll
// option N for slide S" and "submitted reflection text T for slide S".
type ResponseStore interface {
	// SavePollAnswer records one poll selection.
	SavePollAnswer(ctx context.Context, answer domain.PollAnswer) error

	// SaveReflection records one submitted reflection.
	SaveReflection(ctx context.Context, reflection domain.Reflection) error

	// ListPollAnswers returns the poll answers for a session, oldest first.
	ListPollAnswers(ctx context.Context, sessionID string) ([]domain.PollAnswer, error)

	// ListReflections returns the reflections for a session, oldest first.
	ListReflections(ctx context.Context, sessionID string) ([]domain.Reflection, error)

	// Sessions summarises all recorded sessions, newest first.
	Sessions(ctx context.Context) ([]domain.SessionSummary, error)

	// Close releases the underlying storage.
	Close() error
}
