package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driven"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
	"github.com/brightline-labs/deckhand-cli/internal/logger"
)

// ResponseService records participant responses against a store.
// Each service instance owns one viewing session id.
type ResponseService struct {
	store     driven.ResponseStore
	sessionID string
	now       func() time.Time
}

var _ driving.ResponseService = (*ResponseService)(nil)

// NewResponseService creates a response service with a fresh session id.
func NewResponseService(store driven.ResponseStore) *ResponseService {
	return &ResponseService{
		store:     store,
		sessionID: uuid.NewString(),
		now:       time.Now,
	}
}

// SessionID identifies the current viewing session.
func (s *ResponseService) SessionID() string {
	return s.sessionID
}

// RecordPollAnswer records a poll selection. Correctness is derived from
// the slide's marked answer; slides without one record a nil Correct.
func (s *ResponseService) RecordPollAnswer(
	ctx context.Context,
	slide *domain.PollSlide,
	optionIndex int,
) (domain.PollAnswer, error) {
	if slide == nil {
		return domain.PollAnswer{}, fmt.Errorf("recording poll answer: %w", domain.ErrInvalidInput)
	}
	if optionIndex < 0 || optionIndex >= len(slide.Options) {
		return domain.PollAnswer{}, fmt.Errorf(
			"recording poll answer: slide %d: option %d out of range: %w",
			slide.ID, optionIndex, domain.ErrInvalidInput)
	}

	answer := domain.PollAnswer{
		ID:          uuid.NewString(),
		SessionID:   s.sessionID,
		SlideID:     slide.ID,
		OptionIndex: optionIndex,
		OptionText:  slide.Options[optionIndex],
		AnsweredAt:  s.now().UTC(),
	}
	if slide.CorrectAnswer != nil {
		correct := slide.Correct(optionIndex)
		answer.Correct = &correct
	}

	if err := s.store.SavePollAnswer(ctx, answer); err != nil {
		return domain.PollAnswer{}, fmt.Errorf("saving poll answer: %w", err)
	}

	logger.Debug("recorded poll answer: slide %d option %d", slide.ID, optionIndex)
	return answer, nil
}

// RecordReflection records submitted reflection text. Blank submissions
// are rejected; the renderer gates its submit action the same way.
func (s *ResponseService) RecordReflection(
	ctx context.Context,
	slide *domain.ReflectionSlide,
	text string,
) (domain.Reflection, error) {
	if slide == nil {
		return domain.Reflection{}, fmt.Errorf("recording reflection: %w", domain.ErrInvalidInput)
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Reflection{}, fmt.Errorf(
			"recording reflection: slide %d: empty text: %w", slide.ID, domain.ErrInvalidInput)
	}

	reflection := domain.Reflection{
		ID:          uuid.NewString(),
		SessionID:   s.sessionID,
		SlideID:     slide.ID,
		Prompt:      slide.Prompt,
		Text:        trimmed,
		SubmittedAt: s.now().UTC(),
	}

	if err := s.store.SaveReflection(ctx, reflection); err != nil {
		return domain.Reflection{}, fmt.Errorf("saving reflection: %w", err)
	}

	logger.Debug("recorded reflection: slide %d (%d chars)", slide.ID, len(trimmed))
	return reflection, nil
}

// PollAnswers returns the poll answers for a session, oldest first.
func (s *ResponseService) PollAnswers(ctx context.Context, sessionID string) ([]domain.PollAnswer, error) {
	answers, err := s.store.ListPollAnswers(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing poll answers: %w", err)
	}
	return answers, nil
}

// Reflections returns the reflections for a session, oldest first.
func (s *ResponseService) Reflections(ctx context.Context, sessionID string) ([]domain.Reflection, error) {
	reflections, err := s.store.ListReflections(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("listing reflections: %w", err)
	}
	return reflections, nil
}

// Sessions summarises recorded sessions, newest first.
func (s *ResponseService) Sessions(ctx context.Context) ([]domain.SessionSummary, error) {
	sessions, err := s.store.Sessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	return sessions, nil
}
