package tui

import (
	"context"
	"time"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
)

// MockDeckService is a deck service returning a fixed deck or error.
type MockDeckService struct {
	deck     *domain.Deck
	err      error
	watchErr error
}

var _ driving.DeckService = (*MockDeckService)(nil)

func (m *MockDeckService) Load(_ context.Context) (*domain.Deck, error) {
	return m.deck, m.err
}

func (m *MockDeckService) Origin() string {
	return "mock://deck"
}

func (m *MockDeckService) Watch(ctx context.Context) error {
	if m.watchErr != nil {
		return m.watchErr
	}
	<-ctx.Done()
	return ctx.Err()
}

// MockResponseService records calls in memory.
type MockResponseService struct {
	pollAnswers []domain.PollAnswer
	reflections []domain.Reflection
	err         error
}

var _ driving.ResponseService = (*MockResponseService)(nil)

func (m *MockResponseService) SessionID() string { return "mock-session" }

func (m *MockResponseService) RecordPollAnswer(
	_ context.Context, slide *domain.PollSlide, optionIndex int,
) (domain.PollAnswer, error) {
	if m.err != nil {
		return domain.PollAnswer{}, m.err
	}
	answer := domain.PollAnswer{
		ID:          "mock-answer",
		SessionID:   m.SessionID(),
		SlideID:     slide.Base().ID,
		OptionIndex: optionIndex,
		OptionText:  slide.Options[optionIndex],
		AnsweredAt:  time.Now().UTC(),
	}
	m.pollAnswers = append(m.pollAnswers, answer)
	return answer, nil
}

func (m *MockResponseService) RecordReflection(
	_ context.Context, slide *domain.ReflectionSlide, text string,
) (domain.Reflection, error) {
	if m.err != nil {
		return domain.Reflection{}, m.err
	}
	reflection := domain.Reflection{
		ID:          "mock-reflection",
		SessionID:   m.SessionID(),
		SlideID:     slide.Base().ID,
		Prompt:      slide.Prompt,
		Text:        text,
		SubmittedAt: time.Now().UTC(),
	}
	m.reflections = append(m.reflections, reflection)
	return reflection, nil
}

func (m *MockResponseService) PollAnswers(_ context.Context, _ string) ([]domain.PollAnswer, error) {
	return m.pollAnswers, nil
}

func (m *MockResponseService) Reflections(_ context.Context, _ string) ([]domain.Reflection, error) {
	return m.reflections, nil
}

func (m *MockResponseService) Sessions(_ context.Context) ([]domain.SessionSummary, error) {
	return nil, nil
}

func intPtr(i int) *int { return &i }

// testDeck builds a small deck exercising several slide variants.
func testDeck() *domain.Deck {
	slides := []domain.Slide{
		&domain.TitleSlide{
			SlideBase: domain.SlideBase{ID: 1, Section: "Opening", SectionIndex: 1, Duration: 1},
			Title:     "Working With Confidential Data",
			Subtitle:  "Annual refresher",
		},
		&domain.ContentSlide{
			SlideBase:        domain.SlideBase{ID: 2, Section: "Core", SectionIndex: 2, Duration: 2},
			Title:            "What Counts as Confidential",
			TalkingPoints:    []string{"**Labels**: four classes", "• Public needs no controls"},
			FacilitatorNotes: []string{"Ask for examples"},
		},
		&domain.PollSlide{
			SlideBase:     domain.SlideBase{ID: 3, Section: "Core", SectionIndex: 2, Duration: 2},
			Title:         "The Forwarded Spreadsheet",
			Question:      "What do you do first?",
			Options:       []string{"Forward it", "Check the label", "Ask for an NDA"},
			CorrectAnswer: intPtr(1),
			Explanation:   "The label decides the handling rule.",
		},
		&domain.ReflectionSlide{
			SlideBase:   domain.SlideBase{ID: 4, Section: "Closing", SectionIndex: 3, Duration: 3},
			Title:       "Your Next Week",
			Prompt:      "Name one habit you will apply.",
			Placeholder: "Type here",
		},
	}

	deck, err := domain.NewDeck("Working With Confidential Data",
		[]string{"Opening", "Core", "Closing"}, slides)
	if err != nil {
		panic(err)
	}
	return deck
}

// shrunkDeck is a two-slide edit of testDeck, for reload tests.
func shrunkDeck() *domain.Deck {
	slides := []domain.Slide{
		&domain.TitleSlide{
			SlideBase: domain.SlideBase{ID: 1, Section: "Opening", SectionIndex: 1},
			Title:     "Working With Confidential Data",
		},
		&domain.QuoteSlide{
			SlideBase: domain.SlideBase{ID: 2, Section: "Opening", SectionIndex: 1},
			Quote:     "Trust is earned in drops.",
		},
	}

	deck, err := domain.NewDeck("Working With Confidential Data", []string{"Opening"}, slides)
	if err != nil {
		panic(err)
	}
	return deck
}
