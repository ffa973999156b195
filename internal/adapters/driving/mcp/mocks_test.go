package mcp

import (
	"context"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
)

// mockDeckService is a mock implementation of driving.DeckService.
type mockDeckService struct {
	deck *domain.Deck
	err  error
}

var _ driving.DeckService = (*mockDeckService)(nil)

func (m *mockDeckService) Load(_ context.Context) (*domain.Deck, error) {
	return m.deck, m.err
}

func (m *mockDeckService) Origin() string { return "mock://deck" }

func (m *mockDeckService) Watch(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

// mockGuideService is a mock implementation of driving.GuideService.
type mockGuideService struct {
	doc domain.GuideDocument
}

var _ driving.GuideService = (*mockGuideService)(nil)

func (m *mockGuideService) Project(_ *domain.Deck) domain.GuideDocument {
	return m.doc
}

// mockResponseService serves canned session summaries.
type mockResponseService struct {
	sessions []domain.SessionSummary
	err      error
}

var _ driving.ResponseService = (*mockResponseService)(nil)

func (m *mockResponseService) SessionID() string { return "mock-session" }

func (m *mockResponseService) RecordPollAnswer(
	_ context.Context, _ *domain.PollSlide, _ int,
) (domain.PollAnswer, error) {
	return domain.PollAnswer{}, nil
}

func (m *mockResponseService) RecordReflection(
	_ context.Context, _ *domain.ReflectionSlide, _ string,
) (domain.Reflection, error) {
	return domain.Reflection{}, nil
}

func (m *mockResponseService) PollAnswers(_ context.Context, _ string) ([]domain.PollAnswer, error) {
	return nil, nil
}

func (m *mockResponseService) Reflections(_ context.Context, _ string) ([]domain.Reflection, error) {
	return nil, nil
}

func (m *mockResponseService) Sessions(_ context.Context) ([]domain.SessionSummary, error) {
	return m.sessions, m.err
}

func intPtr(i int) *int { return &i }

// testDeck builds a deck covering several slide variants.
func testDeck() *domain.Deck {
	slides := []domain.Slide{
		&domain.TitleSlide{
			SlideBase: domain.SlideBase{ID: 1, Section: "Opening", SectionIndex: 1, Duration: 1},
			Title:     "Working With Confidential Data",
		},
		&domain.PollSlide{
			SlideBase:     domain.SlideBase{ID: 3, Section: "Practice", SectionIndex: 2, Duration: 2},
			Title:         "The Forwarded Spreadsheet",
			Question:      "What do you do first?",
			Options:       []string{"Forward it", "Check the label"},
			CorrectAnswer: intPtr(1),
		},
		&domain.QuoteSlide{
			SlideBase: domain.SlideBase{ID: 6, Section: "Practice", SectionIndex: 2},
			Quote:     "Nobody remembers the breach that never happened.",
			Author:    "Security Field Guide",
		},
	}

	deck, err := domain.NewDeck("Working With Confidential Data",
		[]string{"Opening", "Practice"}, slides)
	if err != nil {
		panic(err)
	}
	return deck
}

func testPorts() *Ports {
	return &Ports{
		Deck:  &mockDeckService{deck: testDeck()},
		Guide: &mockGuideService{doc: domain.GuideDocument{Title: "Working With Confidential Data"}},
	}
}
