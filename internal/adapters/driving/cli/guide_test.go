package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/services"
)

func guideTestDeck(t *testing.T) *domain.Deck {
	t.Helper()

	correct := 1
	deck, err := domain.NewDeck(
		"Handling Customer Data",
		[]string{"Opening", "Scenarios"},
		[]domain.Slide{
			&domain.TitleSlide{
				SlideBase: domain.SlideBase{ID: 1, Section: "Opening", SectionIndex: 1, Duration: 2},
				Title:     "Handling Customer Data",
				Subtitle:  "A working session",
			},
			&domain.ContentSlide{
				SlideBase:     domain.SlideBase{ID: 2, Section: "Opening", SectionIndex: 1, Duration: 5},
				Title:         "Ground Rules",
				Objective:     "Agree on what counts as customer data",
				TalkingPoints: []string{"**Scope**: anything tied to an account", "- includes support tickets"},
				FacilitatorNotes: []string{
					"Ask the room for counterexamples",
				},
			},
			&domain.PollSlide{
				SlideBase:     domain.SlideBase{ID: 3, Section: "Scenarios", SectionIndex: 2, Duration: 4},
				Title:         "The Spreadsheet",
				Scenario:      "A colleague exports account emails to a spreadsheet.",
				Question:      "What do you do first?",
				Options:       []string{"Nothing, exports are routine", "Ask why and flag it"},
				CorrectAnswer: &correct,
				Explanation:   "Bulk exports need a stated purpose.",
			},
		},
	)
	require.NoError(t, err)
	return deck
}

func renderTestGuide(t *testing.T, width int) string {
	t.Helper()
	doc := services.NewGuideService().Project(guideTestDeck(t))
	return renderGuide(doc, width)
}

func TestRenderGuide_Header(t *testing.T) {
	out := renderTestGuide(t, 80)

	assert.Contains(t, out, "Handling Customer Data\n")
	assert.Contains(t, out, "3 slides, 11 min total")
}

func TestRenderGuide_SectionsInDeclaredOrder(t *testing.T) {
	out := renderTestGuide(t, 80)

	opening := strings.Index(out, "\nOpening\n")
	scenarios := strings.Index(out, "\nScenarios\n")
	require.NotEqual(t, -1, opening)
	require.NotEqual(t, -1, scenarios)
	assert.Less(t, opening, scenarios)
}

func TestRenderGuide_MarksCorrectPollOption(t *testing.T) {
	out := renderTestGuide(t, 80)

	assert.Contains(t, out, "      1. Nothing, exports are routine")
	assert.Contains(t, out, "    * 2. Ask why and flag it")
	assert.Contains(t, out, "Answer: Bulk exports need a stated purpose.")
}

func TestRenderGuide_ShowsFacilitatorNotes(t *testing.T) {
	out := renderTestGuide(t, 80)

	assert.Contains(t, out, "Note: Ask the room for counterexamples")
}

func TestRenderGuide_ClassifiesTalkingPoints(t *testing.T) {
	out := renderTestGuide(t, 80)

	assert.Contains(t, out, "* Scope: anything tied to an account")
	assert.Contains(t, out, "- includes support tickets")
}

func TestRenderGuide_EntryHeaderIncludesPositionAndDuration(t *testing.T) {
	out := renderTestGuide(t, 80)

	assert.Contains(t, out, "[3] Poll: The Spreadsheet (4 min)")
}

func TestRenderGuide_ClampsNarrowWidth(t *testing.T) {
	out := renderTestGuide(t, 5)

	assert.Contains(t, out, strings.Repeat("=", 40))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		width    int
		expected []string
	}{
		{
			name:     "Fits on one line",
			text:     "short text",
			width:    40,
			expected: []string{"short text"},
		},
		{
			name:     "Breaks at word boundaries",
			text:     "one two three four",
			width:    9,
			expected: []string{"one two", "three", "four"},
		},
		{
			name:     "Long word gets its own line",
			text:     "a incomprehensibilities b",
			width:    10,
			expected: []string{"a", "incomprehensibilities", "b"},
		},
		{
			name:     "Empty text yields one empty line",
			text:     "",
			width:    40,
			expected: []string{""},
		},
		{
			name:     "Width clamped to minimum",
			text:     "aa bb cc dd",
			width:    1,
			expected: []string{"aa bb cc", "dd"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrap(tt.text, tt.width))
		})
	}
}

func TestFormatPolicyReference(t *testing.T) {
	tests := []struct {
		name     string
		ref      domain.PolicyReference
		expected string
	}{
		{
			name:     "Note only",
			ref:      domain.PolicyReference{Note: "See the data handling standard"},
			expected: "See the data handling standard",
		},
		{
			name:     "Section and title",
			ref:      domain.PolicyReference{Section: "4.2", Title: "Data Exports"},
			expected: "4.2 Data Exports",
		},
		{
			name: "Full reference",
			ref: domain.PolicyReference{
				Section:     "4.2",
				Title:       "Data Exports",
				Text:        "Exports require a stated purpose",
				ExternalRef: "handbook",
			},
			expected: "4.2 Data Exports - Exports require a stated purpose (see handbook)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPolicyReference(tt.ref))
		})
	}
}

func TestFormatGuideMinutes(t *testing.T) {
	assert.Equal(t, "4 min", formatGuideMinutes(4))
	assert.Equal(t, "2.5 min", formatGuideMinutes(2.5))
}
