package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		assert.NoError(t, store.Close())
	})

	return store
}

func boolPtr(b bool) *bool { return &b }

func TestNewStore_CreatesDatabaseFile(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	defer store.Close()

	assert.Equal(t, filepath.Join(dir, "responses.db"), store.Path())
}

func TestNewStore_MigrationsAreIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	assert.NoError(t, second.Close())
}

func TestStore_SaveAndListPollAnswers(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	answer := domain.PollAnswer{
		ID:          "ans-1",
		SessionID:   "sess-1",
		SlideID:     3,
		OptionIndex: 1,
		OptionText:  "Check the spreadsheet's classification label",
		Correct:     boolPtr(true),
		AnsweredAt:  time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC),
	}
	require.NoError(t, store.SavePollAnswer(ctx, answer))

	answers, err := store.ListPollAnswers(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, answers, 1)

	got := answers[0]
	assert.Equal(t, "ans-1", got.ID)
	assert.Equal(t, 3, got.SlideID)
	assert.Equal(t, 1, got.OptionIndex)
	require.NotNil(t, got.Correct)
	assert.True(t, *got.Correct)
	assert.Equal(t, answer.AnsweredAt, got.AnsweredAt.UTC())
}

func TestStore_SavePollAnswer_NilCorrectRoundTrips(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePollAnswer(ctx, domain.PollAnswer{
		ID:         "ans-1",
		SessionID:  "sess-1",
		SlideID:    5,
		OptionText: "Ask the room",
		AnsweredAt: time.Now().UTC(),
	}))

	answers, err := store.ListPollAnswers(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Nil(t, answers[0].Correct)
}

func TestStore_ListPollAnswers_OrderedAndScoped(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	// Insert out of order and across two sessions.
	require.NoError(t, store.SavePollAnswer(ctx, domain.PollAnswer{
		ID: "b", SessionID: "sess-1", SlideID: 3, AnsweredAt: base.Add(2 * time.Minute),
	}))
	require.NoError(t, store.SavePollAnswer(ctx, domain.PollAnswer{
		ID: "a", SessionID: "sess-1", SlideID: 3, AnsweredAt: base,
	}))
	require.NoError(t, store.SavePollAnswer(ctx, domain.PollAnswer{
		ID: "other", SessionID: "sess-2", SlideID: 3, AnsweredAt: base.Add(time.Minute),
	}))

	answers, err := store.ListPollAnswers(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, answers, 2)
	assert.Equal(t, "a", answers[0].ID)
	assert.Equal(t, "b", answers[1].ID)
}

func TestStore_SaveAndListReflections(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	reflection := domain.Reflection{
		ID:          "ref-1",
		SessionID:   "sess-1",
		SlideID:     7,
		Prompt:      "Name one habit from today you will apply before Friday.",
		Text:        "Label drafts before sharing them.",
		SubmittedAt: time.Date(2026, 3, 10, 9, 40, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveReflection(ctx, reflection))

	reflections, err := store.ListReflections(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, reflections, 1)
	assert.Equal(t, reflection.Prompt, reflections[0].Prompt)
	assert.Equal(t, reflection.Text, reflections[0].Text)
}

func TestStore_ListReflections_EmptySession(t *testing.T) {
	store := setupTestStore(t)

	reflections, err := store.ListReflections(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Empty(t, reflections)
}

func TestStore_Sessions_AggregatesAcrossTables(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.SavePollAnswer(ctx, domain.PollAnswer{
		ID: "a1", SessionID: "sess-1", SlideID: 3, Correct: boolPtr(true), AnsweredAt: base,
	}))
	require.NoError(t, store.SavePollAnswer(ctx, domain.PollAnswer{
		ID: "a2", SessionID: "sess-1", SlideID: 5, Correct: boolPtr(false), AnsweredAt: base.Add(time.Minute),
	}))
	require.NoError(t, store.SaveReflection(ctx, domain.Reflection{
		ID: "r1", SessionID: "sess-1", SlideID: 7, Prompt: "p", Text: "t", SubmittedAt: base.Add(2 * time.Minute),
	}))
	require.NoError(t, store.SavePollAnswer(ctx, domain.PollAnswer{
		ID: "a3", SessionID: "sess-2", SlideID: 3, AnsweredAt: base.Add(time.Hour),
	}))

	sessions, err := store.Sessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	// Newest first.
	assert.Equal(t, "sess-2", sessions[0].SessionID)

	older := sessions[1]
	assert.Equal(t, "sess-1", older.SessionID)
	assert.Equal(t, 2, older.PollAnswers)
	assert.Equal(t, 1, older.PollCorrect)
	assert.Equal(t, 1, older.Reflections)
	assert.Equal(t, base, older.StartedAt.UTC())
}

func TestStore_Sessions_EmptyDatabase(t *testing.T) {
	store := setupTestStore(t)

	sessions, err := store.Sessions(context.Background())

	require.NoError(t, err)
	assert.Empty(t, sessions)
}
