package domain

import "fmt"

// SlideType identifies a slide variant.
type SlideType string

const (
	// SlideTypeTitle is a section or deck title slide.
	SlideTypeTitle SlideType = "title"
	// SlideTypeContent is a talking-point content slide.
	SlideTypeContent SlideType = "content"
	// SlideTypePoll is a scenario poll with options and an explanation.
	SlideTypePoll SlideType = "poll"
	// SlideTypeReflection is a free-text reflection prompt.
	SlideTypeReflection SlideType = "reflection"
	// SlideTypeTable is a tabular comparison slide.
	SlideTypeTable SlideType = "table"
	// SlideTypeQuote is a standalone quotation slide.
	SlideTypeQuote SlideType = "quote"
	// SlideTypeTree is an ordered decision-tree slide.
	SlideTypeTree SlideType = "tree"
)

// Slide is one atomic unit of a presentation. The variant set is closed:
// only the seven types in this package implement it, so render sites can
// switch exhaustively and new variants cannot be silently ignored.
type Slide interface {
	// Base returns the fields common to every variant.
	Base() SlideBase

	// Type returns the variant tag.
	Type() SlideType

	// isSlide seals the interface to this package.
	isSlide()
}

// SlideBase holds the fields shared by all slide variants.
type SlideBase struct {
	// ID is the 1-based, globally unique slide identifier.
	// It defines the default presentation order but is NOT assumed
	// equal to the slide's position; Deck keeps an explicit lookup.
	ID int

	// Section names the containing group. It must appear in the
	// deck's ordered section list.
	Section string

	// SectionIndex is the 1-based ordinal of the section.
	SectionIndex int

	// Duration is the pacing estimate in minutes. Zero means unset.
	// Fractional values (1.5 minutes) are legal.
	Duration float64
}

// PolicyReference is a citation back to the organisation's written policy.
// Content and poll slides share this one shape; a reference that was
// authored as a bare string lands in Note with the structured fields empty.
type PolicyReference struct {
	// Section is the policy section identifier, e.g. "4.2".
	Section string

	// Title is the section heading.
	Title string

	// Text is the cited policy body text.
	Text string

	// ExternalRef points at an external authority, if any.
	ExternalRef string

	// Note is a free-text fallback for unstructured citations.
	Note string
}

// IsZero reports whether no part of the reference is set.
func (p PolicyReference) IsZero() bool {
	return p == PolicyReference{}
}

// Interactive is a display-only activity prompt on a content slide.
// It is not wired to persistence.
type Interactive struct {
	Prompt  string
	Options []string
}

// TreeStep is one step of a decision-tree slide. Number is a 1-based
// display label and is not required to be contiguous.
type TreeStep struct {
	Number      int
	Title       string
	Description string
}

// TitleSlide opens a deck or section. Pure display.
type TitleSlide struct {
	SlideBase

	Title    string
	Subtitle string
	Quote    string
}

// ContentSlide carries ordered talking points with lightweight inline
// markup (see ParseTalkingPoint), plus optional facilitator material.
type ContentSlide struct {
	SlideBase

	Title            string
	Objective        string
	TalkingPoints    []string
	FacilitatorNotes []string
	Interactive      *Interactive
	PolicyReference  *PolicyReference
	DiscussionPrompt string
}

// PollSlide poses a scenario question. Selecting an option reveals the
// explanation; CorrectAnswer, when set, indexes into Options.
type PollSlide struct {
	SlideBase

	Title           string
	Scenario        string
	Question        string
	Options         []string
	CorrectAnswer   *int
	Explanation     string
	PolicyReference *PolicyReference
	BoundaryFocus   string
}

// Correct reports whether option index i is the marked correct answer.
// It is false whenever no correct answer is set.
func (s *PollSlide) Correct(i int) bool {
	return s.CorrectAnswer != nil && *s.CorrectAnswer == i
}

// ReflectionSlide prompts the audience for free-text input. TalkingPoints
// here are facilitator discussion points, not audience content.
type ReflectionSlide struct {
	SlideBase

	Title         string
	Prompt        string
	Placeholder   string
	TalkingPoints []string
}

// TableSlide is a pure-display table. Every row must be exactly as wide
// as Headers; NewDeck rejects decks that violate this.
type TableSlide struct {
	SlideBase

	Title           string
	Headers         []string
	Rows            [][]string
	FacilitatorNote string
}

// QuoteSlide shows a quotation. It has no title field, so navigation
// menus use Label to synthesize one.
type QuoteSlide struct {
	SlideBase

	Quote   string
	Author  string
	Context string
}

// TreeSlide walks through an ordered decision process.
type TreeSlide struct {
	SlideBase

	Title            string
	Steps            []TreeStep
	FacilitatorNotes []string
}

func (s *TitleSlide) Base() SlideBase      { return s.SlideBase }
func (s *ContentSlide) Base() SlideBase    { return s.SlideBase }
func (s *PollSlide) Base() SlideBase       { return s.SlideBase }
func (s *ReflectionSlide) Base() SlideBase { return s.SlideBase }
func (s *TableSlide) Base() SlideBase      { return s.SlideBase }
func (s *QuoteSlide) Base() SlideBase      { return s.SlideBase }
func (s *TreeSlide) Base() SlideBase       { return s.SlideBase }

func (s *TitleSlide) Type() SlideType      { return SlideTypeTitle }
func (s *ContentSlide) Type() SlideType    { return SlideTypeContent }
func (s *PollSlide) Type() SlideType       { return SlideTypePoll }
func (s *ReflectionSlide) Type() SlideType { return SlideTypeReflection }
func (s *TableSlide) Type() SlideType      { return SlideTypeTable }
func (s *QuoteSlide) Type() SlideType      { return SlideTypeQuote }
func (s *TreeSlide) Type() SlideType       { return SlideTypeTree }

func (s *TitleSlide) isSlide()      {}
func (s *ContentSlide) isSlide()    {}
func (s *PollSlide) isSlide()       {}
func (s *ReflectionSlide) isSlide() {}
func (s *TableSlide) isSlide()      {}
func (s *QuoteSlide) isSlide()      {}
func (s *TreeSlide) isSlide()       {}

// Label returns a short navigation label for any slide, synthesizing one
// for title-less variants.
func Label(s Slide) string {
	switch v := s.(type) {
	case *TitleSlide:
		return v.Title
	case *ContentSlide:
		return v.Title
	case *PollSlide:
		return v.Title
	case *ReflectionSlide:
		return v.Title
	case *TableSlide:
		return v.Title
	case *QuoteSlide:
		if v.Author != "" {
			return fmt.Sprintf("Quote (%s)", v.Author)
		}
		return "Quote"
	case *TreeSlide:
		return v.Title
	default:
		return fmt.Sprintf("Slide %d", s.Base().ID)
	}
}

// TypeLabel returns a human-readable label for a slide type.
func TypeLabel(t SlideType) string {
	switch t {
	case SlideTypeTitle:
		return "Title"
	case SlideTypeContent:
		return "Content"
	case SlideTypePoll:
		return "Poll"
	case SlideTypeReflection:
		return "Reflection"
	case SlideTypeTable:
		return "Table"
	case SlideTypeQuote:
		return "Quote"
	case SlideTypeTree:
		return "Decision Tree"
	default:
		return string(t)
	}
}
