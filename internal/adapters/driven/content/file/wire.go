package file

import (
	"fmt"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// deckDoc is the top level TOML document.
type deckDoc struct {
	Title    string     `toml:"title"`
	Sections []string   `toml:"sections"`
	Slides   []slideDoc `toml:"slides"`
}

// slideDoc is the wire form of a single slide. One flat struct covers
// every slide type; the type field selects which keys are read.
type slideDoc struct {
	Type         string  `toml:"type"`
	ID           int     `toml:"id"`
	Section      string  `toml:"section"`
	SectionIndex int     `toml:"section_index"`
	Duration     float64 `toml:"duration"`

	Title    string `toml:"title"`
	Subtitle string `toml:"subtitle"`
	Quote    string `toml:"quote"`
	Author   string `toml:"author"`
	Context  string `toml:"context"`

	Objective        string          `toml:"objective"`
	TalkingPoints    []string        `toml:"talking_points"`
	FacilitatorNotes []string        `toml:"facilitator_notes"`
	DiscussionPrompt string          `toml:"discussion_prompt"`
	Interactive      *interactiveDoc `toml:"interactive"`
	PolicyReference  *policyRefDoc   `toml:"policy_reference"`

	Scenario      string   `toml:"scenario"`
	Question      string   `toml:"question"`
	Options       []string `toml:"options"`
	CorrectAnswer *int     `toml:"correct_answer"`
	Explanation   string   `toml:"explanation"`
	BoundaryFocus string   `toml:"boundary_focus"`

	Prompt      string `toml:"prompt"`
	Placeholder string `toml:"placeholder"`

	Headers         []string   `toml:"headers"`
	Rows            [][]string `toml:"rows"`
	FacilitatorNote string     `toml:"facilitator_note"`

	Steps []stepDoc `toml:"steps"`
}

type interactiveDoc struct {
	Prompt  string   `toml:"prompt"`
	Options []string `toml:"options"`
}

type policyRefDoc struct {
	Section     string `toml:"section"`
	Title       string `toml:"title"`
	Text        string `toml:"text"`
	ExternalRef string `toml:"external_ref"`
	Note        string `toml:"note"`
}

type stepDoc struct {
	Number      int    `toml:"number"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

func (d deckDoc) toDeck() (*domain.Deck, error) {
	slides := make([]domain.Slide, 0, len(d.Slides))
	for _, sd := range d.Slides {
		slide, err := sd.toSlide()
		if err != nil {
			return nil, err
		}
		slides = append(slides, slide)
	}
	return domain.NewDeck(d.Title, d.Sections, slides)
}

func (sd slideDoc) toSlide() (domain.Slide, error) {
	base := domain.SlideBase{
		ID:           sd.ID,
		Section:      sd.Section,
		SectionIndex: sd.SectionIndex,
		Duration:     sd.Duration,
	}

	switch domain.SlideType(sd.Type) {
	case domain.SlideTypeTitle:
		return &domain.TitleSlide{
			SlideBase: base,
			Title:     sd.Title,
			Subtitle:  sd.Subtitle,
			Quote:     sd.Quote,
		}, nil
	case domain.SlideTypeContent:
		return &domain.ContentSlide{
			SlideBase:        base,
			Title:            sd.Title,
			Objective:        sd.Objective,
			TalkingPoints:    sd.TalkingPoints,
			FacilitatorNotes: sd.FacilitatorNotes,
			Interactive:      sd.Interactive.toDomain(),
			PolicyReference:  sd.PolicyReference.toDomain(),
			DiscussionPrompt: sd.DiscussionPrompt,
		}, nil
	case domain.SlideTypePoll:
		return &domain.PollSlide{
			SlideBase:       base,
			Title:           sd.Title,
			Scenario:        sd.Scenario,
			Question:        sd.Question,
			Options:         sd.Options,
			CorrectAnswer:   sd.CorrectAnswer,
			Explanation:     sd.Explanation,
			PolicyReference: sd.PolicyReference.toDomain(),
			BoundaryFocus:   sd.BoundaryFocus,
		}, nil
	case domain.SlideTypeReflection:
		return &domain.ReflectionSlide{
			SlideBase:     base,
			Title:         sd.Title,
			Prompt:        sd.Prompt,
			Placeholder:   sd.Placeholder,
			TalkingPoints: sd.TalkingPoints,
		}, nil
	case domain.SlideTypeTable:
		return &domain.TableSlide{
			SlideBase:       base,
			Title:           sd.Title,
			Headers:         sd.Headers,
			Rows:            sd.Rows,
			FacilitatorNote: sd.FacilitatorNote,
		}, nil
	case domain.SlideTypeQuote:
		return &domain.QuoteSlide{
			SlideBase: base,
			Quote:     sd.Quote,
			Author:    sd.Author,
			Context:   sd.Context,
		}, nil
	case domain.SlideTypeTree:
		steps := make([]domain.TreeStep, 0, len(sd.Steps))
		for _, st := range sd.Steps {
			steps = append(steps, domain.TreeStep{
				Number:      st.Number,
				Title:       st.Title,
				Description: st.Description,
			})
		}
		return &domain.TreeSlide{
			SlideBase:        base,
			Title:            sd.Title,
			Steps:            steps,
			FacilitatorNotes: sd.FacilitatorNotes,
		}, nil
	default:
		return nil, fmt.Errorf("%w: slide %d has unknown type %q", domain.ErrInvalidDeck, sd.ID, sd.Type)
	}
}

func (d *interactiveDoc) toDomain() *domain.Interactive {
	if d == nil {
		return nil
	}
	return &domain.Interactive{Prompt: d.Prompt, Options: d.Options}
}

func (d *policyRefDoc) toDomain() *domain.PolicyReference {
	if d == nil {
		return nil
	}
	return &domain.PolicyReference{
		Section:     d.Section,
		Title:       d.Title,
		Text:        d.Text,
		ExternalRef: d.ExternalRef,
		Note:        d.Note,
	}
}
