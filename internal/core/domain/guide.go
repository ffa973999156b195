package domain

// GuideDocument is the facilitator projection of a deck: a static,
// linear document with every slide's presenter-facing material shown
// inline and unconditionally. It carries no interaction state.
type GuideDocument struct {
	// Title is the deck title.
	Title string

	// TotalMinutes is the summed pacing estimate.
	TotalMinutes float64

	// SlideCount is the number of slides projected.
	SlideCount int

	// Sections are the deck's sections in declared order.
	Sections []GuideSection
}

// GuideSection groups projected slides under one section name.
type GuideSection struct {
	Name    string
	Entries []GuideEntry
}

// GuideOption is one poll option with its correctness marked.
type GuideOption struct {
	Text    string
	Correct bool
}

// GuideEntry is the facilitator view of a single slide. Fields that do
// not apply to the slide's variant are left zero.
type GuideEntry struct {
	// Position is the 1-based position in the full sequence.
	Position int

	// SlideID is the slide's id.
	SlideID int

	// TypeLabel is the human-readable variant name.
	TypeLabel string

	// Title is the slide title, synthesized for title-less variants.
	Title string

	// DurationMinutes is the pacing estimate, 0 when unset.
	DurationMinutes float64

	// Objective is the stated learning objective, if any.
	Objective string

	// Scenario and Question carry poll framing.
	Scenario string
	Question string

	// TalkingPoints are classified with the shared parser, so headers
	// and bullets render the same way they do in the live presentation.
	TalkingPoints []TalkingPoint

	// DiscussionPoints are facilitator discussion points from
	// reflection slides.
	DiscussionPoints []string

	// PolicyReferences are the citations attached to the slide.
	PolicyReferences []PolicyReference

	// Options are poll options with the correct one marked.
	Options []GuideOption

	// Explanation is the poll explanation, shown unconditionally here.
	Explanation string

	// Prompt is a reflection prompt.
	Prompt string

	// Quote material.
	Quote       string
	QuoteAuthor string

	// Table material, in authored order.
	Headers []string
	Rows    [][]string

	// Steps are decision-tree steps.
	Steps []TreeStep

	// Interactive is a display-only activity prompt.
	Interactive *Interactive

	// DiscussionPrompt closes out a content slide.
	DiscussionPrompt string

	// FacilitatorNotes are always inline in the guide: its entire
	// audience is the facilitator.
	FacilitatorNotes []string
}
