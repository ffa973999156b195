// Package memory provides in-memory implementations of driven ports,
// used for tests and for presenting with response tracking disabled.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driven"
)

// Ensure ResponseStore implements the interface.
var _ driven.ResponseStore = (*ResponseStore)(nil)

// ResponseStore is an in-memory implementation of driven.ResponseStore.
type ResponseStore struct {
	mu          sync.RWMutex
	answers     []domain.PollAnswer
	reflections []domain.Reflection
}

// NewResponseStore creates a new in-memory response store.
func NewResponseStore() *ResponseStore {
	return &ResponseStore{}
}

// SavePollAnswer records one poll selection.
func (s *ResponseStore) SavePollAnswer(_ context.Context, answer domain.PollAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = append(s.answers, answer)
	return nil
}

// SaveReflection records one submitted reflection.
func (s *ResponseStore) SaveReflection(_ context.Context, reflection domain.Reflection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reflections = append(s.reflections, reflection)
	return nil
}

// ListPollAnswers returns the poll answers for a session, oldest first.
func (s *ResponseStore) ListPollAnswers(_ context.Context, sessionID string) ([]domain.PollAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.PollAnswer
	for _, a := range s.answers {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

// ListReflections returns the reflections for a session, oldest first.
func (s *ResponseStore) ListReflections(_ context.Context, sessionID string) ([]domain.Reflection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []domain.Reflection
	for _, r := range s.reflections {
		if r.SessionID == sessionID {
			out = append(out, r)
		}
	}
	return out, nil
}

// Sessions summarises all recorded sessions, newest first.
func (s *ResponseStore) Sessions(_ context.Context) ([]domain.SessionSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[string]*domain.SessionSummary)
	touch := func(sessionID string) *domain.SessionSummary {
		if sum, ok := byID[sessionID]; ok {
			return sum
		}
		sum := &domain.SessionSummary{SessionID: sessionID}
		byID[sessionID] = sum
		return sum
	}

	for _, a := range s.answers {
		sum := touch(a.SessionID)
		sum.PollAnswers++
		if a.Correct != nil && *a.Correct {
			sum.PollCorrect++
		}
		if sum.StartedAt.IsZero() || a.AnsweredAt.Before(sum.StartedAt) {
			sum.StartedAt = a.AnsweredAt
		}
	}
	for _, r := range s.reflections {
		sum := touch(r.SessionID)
		sum.Reflections++
		if sum.StartedAt.IsZero() || r.SubmittedAt.Before(sum.StartedAt) {
			sum.StartedAt = r.SubmittedAt
		}
	}

	out := make([]domain.SessionSummary, 0, len(byID))
	for _, sum := range byID {
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out, nil
}

// Close is a no-op for the in-memory store.
func (s *ResponseStore) Close() error {
	return nil
}
