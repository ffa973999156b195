package domain

import "time"

// PollAnswer records that a participant selected an option on a poll
// slide during one viewing session.
type PollAnswer struct {
	// ID is the unique identifier for this record.
	ID string

	// SessionID groups answers from one viewing session.
	SessionID string

	// SlideID is the poll slide's id.
	SlideID int

	// OptionIndex is the selected option's index.
	OptionIndex int

	// OptionText is the selected option's text at the time of answering,
	// kept so records stay meaningful if the deck is later edited.
	OptionText string

	// Correct is nil when the slide has no marked answer.
	Correct *bool

	// AnsweredAt is when the selection was made.
	AnsweredAt time.Time
}

// Reflection records submitted free-text from a reflection slide.
type Reflection struct {
	// ID is the unique identifier for this record.
	ID string

	// SessionID groups reflections from one viewing session.
	SessionID string

	// SlideID is the reflection slide's id.
	SlideID int

	// Prompt is the prompt the text answers.
	Prompt string

	// Text is the submitted reflection. Never empty: submission is
	// gated on non-blank input.
	Text string

	// SubmittedAt is when the text was submitted.
	SubmittedAt time.Time
}

// SessionSummary aggregates one viewing session's recorded responses.
type SessionSummary struct {
	SessionID   string
	StartedAt   time.Time
	PollAnswers int
	PollCorrect int
	Reflections int
}
