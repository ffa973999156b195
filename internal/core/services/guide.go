package services

import (
	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
)

// GuideService projects a deck into the facilitator guide document.
type GuideService struct{}

var _ driving.GuideService = (*GuideService)(nil)

// NewGuideService creates the projector.
func NewGuideService() *GuideService {
	return &GuideService{}
}

// Project builds the facilitator document: sections in declared order,
// every slide's presenter material inline, facilitator notes shown
// unconditionally. Talking points go through the same classifier the
// interactive renderer uses, so the two views agree on markup.
func (GuideService) Project(deck *domain.Deck) domain.GuideDocument {
	doc := domain.GuideDocument{
		Title:        deck.Title(),
		TotalMinutes: deck.TotalDuration(),
		SlideCount:   deck.Len(),
	}

	position := make(map[int]int, deck.Len())
	for i, s := range deck.Slides() {
		position[s.Base().ID] = i + 1
	}

	for _, group := range deck.BySection() {
		section := domain.GuideSection{Name: group.Name}
		for _, s := range group.Slides {
			section.Entries = append(section.Entries, projectSlide(s, position[s.Base().ID]))
		}
		doc.Sections = append(doc.Sections, section)
	}

	return doc
}

// projectSlide maps one slide variant onto a guide entry. The switch is
// exhaustive over the sealed union.
func projectSlide(s domain.Slide, position int) domain.GuideEntry {
	base := s.Base()
	entry := domain.GuideEntry{
		Position:        position,
		SlideID:         base.ID,
		TypeLabel:       domain.TypeLabel(s.Type()),
		Title:           domain.Label(s),
		DurationMinutes: base.Duration,
	}

	switch v := s.(type) {
	case *domain.TitleSlide:
		if v.Subtitle != "" {
			entry.TalkingPoints = []domain.TalkingPoint{
				{Kind: domain.PointPlain, Content: v.Subtitle},
			}
		}
		if v.Quote != "" {
			entry.Quote = v.Quote
		}

	case *domain.ContentSlide:
		entry.Objective = v.Objective
		entry.TalkingPoints = domain.ParseTalkingPoints(v.TalkingPoints)
		entry.FacilitatorNotes = v.FacilitatorNotes
		entry.Interactive = v.Interactive
		entry.DiscussionPrompt = v.DiscussionPrompt
		if v.PolicyReference != nil {
			entry.PolicyReferences = append(entry.PolicyReferences, *v.PolicyReference)
		}

	case *domain.PollSlide:
		entry.Scenario = v.Scenario
		entry.Question = v.Question
		entry.Explanation = v.Explanation
		for i, opt := range v.Options {
			entry.Options = append(entry.Options, domain.GuideOption{
				Text:    opt,
				Correct: v.Correct(i),
			})
		}
		if v.PolicyReference != nil {
			entry.PolicyReferences = append(entry.PolicyReferences, *v.PolicyReference)
		}

	case *domain.ReflectionSlide:
		entry.Prompt = v.Prompt
		entry.DiscussionPoints = v.TalkingPoints

	case *domain.TableSlide:
		entry.Headers = v.Headers
		entry.Rows = v.Rows
		if v.FacilitatorNote != "" {
			entry.FacilitatorNotes = []string{v.FacilitatorNote}
		}

	case *domain.QuoteSlide:
		entry.Quote = v.Quote
		entry.QuoteAuthor = v.Author
		if v.Context != "" {
			entry.TalkingPoints = []domain.TalkingPoint{
				{Kind: domain.PointPlain, Content: v.Context},
			}
		}

	case *domain.TreeSlide:
		entry.Steps = v.Steps
		entry.FacilitatorNotes = v.FacilitatorNotes
	}

	return entry
}
