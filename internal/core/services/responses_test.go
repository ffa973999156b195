package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driven/storage/memory"
	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

func pollSlide() *domain.PollSlide {
	return &domain.PollSlide{
		SlideBase:     domain.SlideBase{ID: 2, Section: "Intro"},
		Title:         "Scenario",
		Options:       []string{"Accept", "Decline"},
		CorrectAnswer: intPtr(1),
		Explanation:   "Decline and document.",
	}
}

func TestRecordPollAnswer(t *testing.T) {
	svc := NewResponseService(memory.NewResponseStore())
	ctx := context.Background()

	answer, err := svc.RecordPollAnswer(ctx, pollSlide(), 0)

	require.NoError(t, err)
	assert.NotEmpty(t, answer.ID)
	assert.Equal(t, svc.SessionID(), answer.SessionID)
	assert.Equal(t, 2, answer.SlideID)
	assert.Equal(t, 0, answer.OptionIndex)
	assert.Equal(t, "Accept", answer.OptionText)
	require.NotNil(t, answer.Correct)
	assert.False(t, *answer.Correct)

	saved, err := svc.PollAnswers(ctx, svc.SessionID())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, answer.ID, saved[0].ID)
}

func TestRecordPollAnswer_CorrectOption(t *testing.T) {
	svc := NewResponseService(memory.NewResponseStore())

	answer, err := svc.RecordPollAnswer(context.Background(), pollSlide(), 1)

	require.NoError(t, err)
	require.NotNil(t, answer.Correct)
	assert.True(t, *answer.Correct)
}

func TestRecordPollAnswer_NoMarkedAnswer(t *testing.T) {
	svc := NewResponseService(memory.NewResponseStore())
	slide := pollSlide()
	slide.CorrectAnswer = nil

	answer, err := svc.RecordPollAnswer(context.Background(), slide, 0)

	require.NoError(t, err)
	assert.Nil(t, answer.Correct)
}

func TestRecordPollAnswer_OutOfRange(t *testing.T) {
	svc := NewResponseService(memory.NewResponseStore())

	_, err := svc.RecordPollAnswer(context.Background(), pollSlide(), 5)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordReflection(t *testing.T) {
	svc := NewResponseService(memory.NewResponseStore())
	slide := &domain.ReflectionSlide{
		SlideBase: domain.SlideBase{ID: 5, Section: "Intro"},
		Prompt:    "What would you do?",
	}

	reflection, err := svc.RecordReflection(context.Background(), slide, "  speak to my lead  ")

	require.NoError(t, err)
	assert.Equal(t, "speak to my lead", reflection.Text)
	assert.Equal(t, "What would you do?", reflection.Prompt)
	assert.Equal(t, 5, reflection.SlideID)
}

func TestRecordReflection_BlankRejected(t *testing.T) {
	svc := NewResponseService(memory.NewResponseStore())
	slide := &domain.ReflectionSlide{SlideBase: domain.SlideBase{ID: 5, Section: "Intro"}}

	_, err := svc.RecordReflection(context.Background(), slide, "   \n\t ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSessions_Summary(t *testing.T) {
	store := memory.NewResponseStore()
	svc := NewResponseService(store)
	ctx := context.Background()

	_, err := svc.RecordPollAnswer(ctx, pollSlide(), 1)
	require.NoError(t, err)
	_, err = svc.RecordReflection(ctx, &domain.ReflectionSlide{
		SlideBase: domain.SlideBase{ID: 5, Section: "Intro"},
	}, "noted")
	require.NoError(t, err)

	sessions, err := svc.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, svc.SessionID(), sessions[0].SessionID)
	assert.Equal(t, 1, sessions[0].PollAnswers)
	assert.Equal(t, 1, sessions[0].PollCorrect)
	assert.Equal(t, 1, sessions[0].Reflections)
}

func TestDistinctServicesGetDistinctSessions(t *testing.T) {
	store := memory.NewResponseStore()

	a := NewResponseService(store)
	b := NewResponseService(store)

	assert.NotEqual(t, a.SessionID(), b.SessionID())
}
