package driving

import (
	"context"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// ResponseService records participant responses for the current viewing
// session and reads back past sessions.
type ResponseService interface {
	// SessionID identifies the current viewing session.
	SessionID() string

	// RecordPollAnswer records a poll selection, deriving correctness
	// from the slide's marked answer when present.
	RecordPollAnswer(ctx context.Context, slide *domain.PollSlide, optionIndex int) (domain.PollAnswer, error)

	// RecordReflection records submitted reflection text. Blank text
	// (after trimming) is rejected with domain.ErrInvalidInput.
	RecordReflection(ctx context.Context, slide *domain.ReflectionSlide, text string) (domain.Reflection, error)

	// PollAnswers returns the poll answers for a session, oldest first.
	PollAnswers(ctx context.Context, sessionID string) ([]domain.PollAnswer, error)

	// Reflections returns the reflections for a session, oldest first.
	Reflections(ctx context.Context, sessionID string) ([]domain.Reflection, error)

	// Sessions summarises recorded sessions, newest first.
	Sessions(ctx context.Context) ([]domain.SessionSummary, error)
}
