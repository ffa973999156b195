package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/services"
)

// defaultGuideWidth is used when the output is not a terminal.
const defaultGuideWidth = 80

var guideWidth int

var guideCmd = &cobra.Command{
	Use:   "guide [deck file]",
	Short: "Print the facilitator guide",
	Long: `Projects the deck into a linear facilitator guide and prints it.

The guide shows every slide's presenter-facing material inline: talking
points, poll answers with the correct option marked, explanations and
facilitator notes. It is a pure projection of the deck file and carries
no session state.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGuide,
}

func init() {
	addDeckFlags(guideCmd)
	guideCmd.Flags().IntVar(&guideWidth, "width", 0, "wrap width (0 = detect terminal)")
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, args []string) error {
	deckService, err := newDeckService(args)
	if err != nil {
		return err
	}

	deck, err := deckService.Load(cmd.Context())
	if err != nil {
		return err
	}

	doc := services.NewGuideService().Project(deck)
	cmd.Print(renderGuide(doc, resolveGuideWidth()))
	return nil
}

// resolveGuideWidth honours --width, else the terminal width, else 80.
func resolveGuideWidth() int {
	if guideWidth > 0 {
		return guideWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultGuideWidth
}

// renderGuide formats a guide document as plain text. It is pure so the
// same document always renders the same way.
func renderGuide(doc domain.GuideDocument, width int) string {
	if width < 40 {
		width = 40
	}

	var b strings.Builder
	rule := strings.Repeat("=", width)

	b.WriteString(rule + "\n")
	b.WriteString(doc.Title + "\n")
	b.WriteString(fmt.Sprintf("%d slides, %s total\n", doc.SlideCount, formatGuideMinutes(doc.TotalMinutes)))
	b.WriteString(rule + "\n")

	for _, section := range doc.Sections {
		b.WriteString("\n" + section.Name + "\n")
		b.WriteString(strings.Repeat("-", len(section.Name)) + "\n")

		for _, entry := range section.Entries {
			renderGuideEntry(&b, entry, width)
		}
	}

	return b.String()
}

func renderGuideEntry(b *strings.Builder, e domain.GuideEntry, width int) {
	header := fmt.Sprintf("\n[%d] %s: %s", e.Position, e.TypeLabel, e.Title)
	if e.DurationMinutes > 0 {
		header += fmt.Sprintf(" (%s)", formatGuideMinutes(e.DurationMinutes))
	}
	b.WriteString(header + "\n")

	writeWrapped := func(prefix, text string) {
		for _, line := range wrap(text, width-len(prefix)) {
			b.WriteString(prefix + line + "\n")
		}
	}

	if e.Objective != "" {
		writeWrapped("    Objective: ", e.Objective)
	}
	if e.Scenario != "" {
		writeWrapped("    ", e.Scenario)
	}
	if e.Question != "" {
		writeWrapped("    Q: ", e.Question)
	}

	for _, p := range e.TalkingPoints {
		switch p.Kind {
		case domain.PointHeader:
			text := p.Header
			if p.Content != "" {
				text += ": " + p.Content
			}
			writeWrapped("    * ", text)
		case domain.PointBullet:
			writeWrapped("      - ", p.Content)
		default:
			writeWrapped("    ", p.Content)
		}
	}

	for i, opt := range e.Options {
		mark := " "
		if opt.Correct {
			mark = "*"
		}
		writeWrapped(fmt.Sprintf("    %s %d. ", mark, i+1), opt.Text)
	}
	if e.Explanation != "" {
		writeWrapped("    Answer: ", e.Explanation)
	}

	if e.Prompt != "" {
		writeWrapped("    Prompt: ", e.Prompt)
	}
	for _, p := range e.DiscussionPoints {
		writeWrapped("    - ", p)
	}

	if len(e.Headers) > 0 {
		b.WriteString("    " + strings.Join(e.Headers, " | ") + "\n")
		for _, row := range e.Rows {
			b.WriteString("    " + strings.Join(row, " | ") + "\n")
		}
	}

	for _, step := range e.Steps {
		text := step.Title
		if step.Description != "" {
			text += ": " + step.Description
		}
		writeWrapped(fmt.Sprintf("    %d. ", step.Number), text)
	}

	if e.Quote != "" {
		writeWrapped("    ", fmt.Sprintf("%q", e.Quote))
		if e.QuoteAuthor != "" {
			b.WriteString("        " + e.QuoteAuthor + "\n")
		}
	}

	if e.Interactive != nil {
		writeWrapped("    Activity: ", e.Interactive.Prompt)
		for _, opt := range e.Interactive.Options {
			writeWrapped("      - ", opt)
		}
	}

	if e.DiscussionPrompt != "" {
		writeWrapped("    Discuss: ", e.DiscussionPrompt)
	}

	for _, ref := range e.PolicyReferences {
		writeWrapped("    Policy: ", formatPolicyReference(ref))
	}

	for _, note := range e.FacilitatorNotes {
		writeWrapped("    Note: ", note)
	}
}

func formatPolicyReference(ref domain.PolicyReference) string {
	if ref.Note != "" && ref.Section == "" && ref.Title == "" {
		return ref.Note
	}
	s := strings.TrimSpace(ref.Section + " " + ref.Title)
	if ref.Text != "" {
		s += " - " + ref.Text
	}
	if ref.ExternalRef != "" {
		s += " (see " + ref.ExternalRef + ")"
	}
	return s
}

func formatGuideMinutes(m float64) string {
	if m == float64(int(m)) {
		return fmt.Sprintf("%d min", int(m))
	}
	return fmt.Sprintf("%.1f min", m)
}

// wrap breaks text into lines at word boundaries. Words longer than the
// width get a line of their own.
func wrap(text string, width int) []string {
	if width < 10 {
		width = 10
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
