// Package slide renders a single slide of any variant and owns the
// per-slide interactive state: poll selection and reveal, and the
// reflection text area.
package slide

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/keymap"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/messages"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/styles"
	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
	"github.com/brightline-labs/deckhand-cli/internal/core/ports/driving"
)

// densityThreshold is the talking-point count above which the content
// layout drops blank lines between points to keep everything on screen.
const densityThreshold = 5

// noSelection marks a poll with no chosen option.
const noSelection = -1

// View renders the current slide.
type View struct {
	styles    *styles.Styles
	keys      *keymap.KeyMap
	responses driving.ResponseService
	ctx       context.Context

	slide domain.Slide
	index int
	total int

	showNotes bool

	// Poll state, reset when the slide id changes.
	pollSelected int
	pollRevealed bool
	pollSaved    bool

	// Reflection state, reset when the slide id changes.
	input     textarea.Model
	submitted bool

	saveErr error

	bar progress.Model

	width  int
	height int
	ready  bool
}

// NewView creates a slide view. responses may be nil, in which case
// poll selections and reflections stay on screen only.
func NewView(s *styles.Styles, keys *keymap.KeyMap, responses driving.ResponseService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if keys == nil {
		keys = keymap.DefaultKeyMap()
	}

	input := textarea.New()
	input.ShowLineNumbers = false
	input.CharLimit = 2000
	input.SetHeight(4)

	return &View{
		styles:       s,
		keys:         keys,
		responses:    responses,
		ctx:          context.Background(),
		pollSelected: noSelection,
		input:        input,
		bar:          progress.New(progress.WithDefaultGradient()),
		width:        80,
		height:       24,
	}
}

// WithContext sets the context used for response recording.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the slide view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetSlide shows the given slide. Interactive state survives toggles
// like fullscreen and notes, and resets only when the slide id changes.
func (v *View) SetSlide(slide domain.Slide, index, total int) {
	sameSlide := v.slide != nil && slide != nil && v.slide.Base().ID == slide.Base().ID

	v.slide = slide
	v.index = index
	v.total = total

	if sameSlide {
		return
	}

	v.pollSelected = noSelection
	v.pollRevealed = false
	v.pollSaved = false
	v.submitted = false
	v.saveErr = nil
	v.input.Reset()
	v.input.Blur()
	v.showNotes = false

	if r, ok := slide.(*domain.ReflectionSlide); ok {
		v.input.Placeholder = r.Placeholder
	}
}

// SetDimensions updates the terminal size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.bar.Width = min(width-4, 60)
	v.input.SetWidth(min(width-6, 76))
}

// InputFocused reports whether the reflection text area owns the
// keyboard, in which case navigation keys must not fire.
func (v *View) InputFocused() bool {
	return v.input.Focused()
}

// PollSelected returns the chosen poll option index, or -1.
func (v *View) PollSelected() int {
	return v.pollSelected
}

// PollRevealed reports whether the poll explanation is shown.
func (v *View) PollRevealed() bool {
	return v.pollRevealed
}

// NotesShown reports whether facilitator notes are visible.
func (v *View) NotesShown() bool {
	return v.showNotes
}

// Submitted reports whether the reflection was recorded.
func (v *View) Submitted() bool {
	return v.submitted
}

// Update handles messages for the slide view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.PollAnswerSaved:
		if msg.Err != nil {
			v.saveErr = msg.Err
		}
		return v, nil

	case messages.ReflectionSaved:
		if msg.Err != nil {
			v.saveErr = msg.Err
			v.submitted = false
		}
		return v, nil

	case tea.KeyMsg:
		return v.updateKey(msg)
	}

	return v, nil
}

func (v *View) updateKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.input.Focused() {
		return v.updateFocusedInput(msg)
	}

	switch s := v.slide.(type) {
	case *domain.PollSlide:
		return v.updatePoll(msg, s)
	case *domain.ReflectionSlide:
		if key.Matches(msg, v.keys.Focus) {
			v.input.Focus()
			return v, textarea.Blink
		}
	}

	if key.Matches(msg, v.keys.Notes) && v.hasNotes() {
		v.showNotes = !v.showNotes
		return v, nil
	}

	return v, nil
}

func (v *View) updateFocusedInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.input.Blur()
		return v, nil
	case key.Matches(msg, v.keys.Submit):
		return v, v.submitReflection()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) updatePoll(msg tea.KeyMsg, s *domain.PollSlide) (*View, tea.Cmd) {
	if key.Matches(msg, v.keys.Reveal) {
		// Toggling the explanation keeps the selection.
		if v.pollSelected != noSelection {
			v.pollRevealed = !v.pollRevealed
		}
		return v, nil
	}

	if key.Matches(msg, v.keys.Notes) && v.hasNotes() {
		v.showNotes = !v.showNotes
		return v, nil
	}

	// Digit keys 1..9 select an option.
	idx := optionDigit(msg.String())
	if idx == noSelection || idx >= len(s.Options) {
		return v, nil
	}

	changed := v.pollSelected != idx
	v.pollSelected = idx
	v.pollRevealed = true

	if !changed || v.responses == nil || v.pollSaved {
		return v, nil
	}
	v.pollSaved = true
	return v, v.recordPollAnswer(s, idx)
}

// optionDigit maps "1".."9" to option indexes 0..8.
func optionDigit(s string) int {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return noSelection
	}
	return int(s[0] - '1')
}

func (v *View) recordPollAnswer(s *domain.PollSlide, idx int) tea.Cmd {
	return func() tea.Msg {
		_, err := v.responses.RecordPollAnswer(v.ctx, s, idx)
		return messages.PollAnswerSaved{SlideID: s.Base().ID, Err: err}
	}
}

func (v *View) submitReflection() tea.Cmd {
	s, ok := v.slide.(*domain.ReflectionSlide)
	if !ok {
		return nil
	}

	text := strings.TrimSpace(v.input.Value())
	if text == "" {
		return nil
	}

	v.submitted = true
	v.input.Blur()

	if v.responses == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := v.responses.RecordReflection(v.ctx, s, text)
		return messages.ReflectionSaved{SlideID: s.Base().ID, Err: err}
	}
}

// hasNotes reports whether the current slide carries facilitator notes.
func (v *View) hasNotes() bool {
	switch s := v.slide.(type) {
	case *domain.ContentSlide:
		return len(s.FacilitatorNotes) > 0
	case *domain.TableSlide:
		return s.FacilitatorNote != ""
	case *domain.TreeSlide:
		return len(s.FacilitatorNotes) > 0
	case *domain.ReflectionSlide:
		return len(s.TalkingPoints) > 0
	default:
		return false
	}
}

// View renders the slide.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.slide == nil {
		return v.styles.Muted.Render("No slide to show.")
	}

	var body string
	switch s := v.slide.(type) {
	case *domain.TitleSlide:
		body = v.viewTitle(s)
	case *domain.ContentSlide:
		body = v.viewContent(s)
	case *domain.PollSlide:
		body = v.viewPoll(s)
	case *domain.ReflectionSlide:
		body = v.viewReflection(s)
	case *domain.TableSlide:
		body = v.viewTable(s)
	case *domain.QuoteSlide:
		body = v.viewQuote(s)
	case *domain.TreeSlide:
		body = v.viewTree(s)
	}

	var b strings.Builder
	b.WriteString(body)
	if v.showNotes {
		if notes := v.viewNotes(); notes != "" {
			b.WriteString("\n\n")
			b.WriteString(notes)
		}
	}
	if v.saveErr != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render("could not save response: " + v.saveErr.Error()))
	}
	b.WriteString("\n\n")
	b.WriteString(v.viewProgress())
	return b.String()
}

func (v *View) viewProgress() string {
	if v.total == 0 {
		return ""
	}
	percent := float64(v.index+1) / float64(v.total)
	counter := v.styles.Muted.Render(fmt.Sprintf(" %d/%d", v.index+1, v.total))
	return v.bar.ViewAs(percent) + counter
}

func (v *View) viewTitle(s *domain.TitleSlide) string {
	var b strings.Builder
	b.WriteString(v.styles.SlideTitle.Render(s.Title))
	if s.Subtitle != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Normal.Render(s.Subtitle))
	}
	if s.Quote != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Quote.Render(s.Quote))
	}
	return b.String()
}

func (v *View) viewContent(s *domain.ContentSlide) string {
	var b strings.Builder
	b.WriteString(v.styles.SlideTitle.Render(s.Title))
	if s.Objective != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(s.Objective))
	}
	b.WriteString("\n")

	sep := "\n\n"
	if len(s.TalkingPoints) > densityThreshold {
		sep = "\n"
	}

	for _, raw := range s.TalkingPoints {
		b.WriteString(sep)
		b.WriteString(v.viewPoint(domain.ParseTalkingPoint(raw)))
	}

	if s.Interactive != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.SectionBadge.Render("Activity: "))
		b.WriteString(v.styles.Normal.Render(s.Interactive.Prompt))
		for _, opt := range s.Interactive.Options {
			b.WriteString("\n")
			b.WriteString(v.styles.Bullet.Render("- " + opt))
		}
	}

	if s.DiscussionPrompt != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Explanation.Render(s.DiscussionPrompt))
	}

	if s.PolicyReference != nil && !s.PolicyReference.IsZero() {
		b.WriteString("\n\n")
		b.WriteString(v.viewPolicyReference(s.PolicyReference))
	}

	return b.String()
}

func (v *View) viewPoint(p domain.TalkingPoint) string {
	switch p.Kind {
	case domain.PointHeader:
		line := v.styles.PointHeader.Render(p.Header)
		if p.Content != "" {
			line += v.styles.Normal.Render(": " + p.Content)
		}
		return line
	case domain.PointBullet:
		return v.styles.Bullet.Render(p.Content)
	default:
		return v.styles.Normal.Render(p.Content)
	}
}

func (v *View) viewPolicyReference(ref *domain.PolicyReference) string {
	if ref.Note != "" && ref.Section == "" && ref.Title == "" {
		return v.styles.Muted.Render("Policy: " + ref.Note)
	}
	var b strings.Builder
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("Policy %s %s", ref.Section, ref.Title)))
	if ref.Text != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(ref.Text))
	}
	if ref.ExternalRef != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("See also: " + ref.ExternalRef))
	}
	return b.String()
}

func (v *View) viewPoll(s *domain.PollSlide) string {
	var b strings.Builder
	b.WriteString(v.styles.SlideTitle.Render(s.Title))
	if s.Scenario != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Normal.Render(s.Scenario))
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.PointHeader.Render(s.Question))
	b.WriteString("\n")

	for i, opt := range s.Options {
		b.WriteString("\n")
		b.WriteString(v.viewPollOption(s, i, opt))
	}

	if v.pollRevealed && v.pollSelected != noSelection {
		if s.Explanation != "" {
			b.WriteString("\n\n")
			b.WriteString(v.styles.Explanation.Render(s.Explanation))
		}
		if s.PolicyReference != nil && !s.PolicyReference.IsZero() {
			b.WriteString("\n\n")
			b.WriteString(v.viewPolicyReference(s.PolicyReference))
		}
	} else {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Help.Render("press 1-9 to answer"))
	}

	return b.String()
}

func (v *View) viewPollOption(s *domain.PollSlide, i int, opt string) string {
	label := fmt.Sprintf("%d. %s", i+1, opt)

	if !v.pollRevealed || v.pollSelected == noSelection {
		if i == v.pollSelected {
			return v.styles.Selected.Render(label)
		}
		return v.styles.Normal.Render(label)
	}

	// After reveal: mark the correct answer and a wrong selection.
	switch {
	case s.Correct(i):
		return v.styles.Correct.Render(label + "  [correct]")
	case i == v.pollSelected:
		if s.CorrectAnswer == nil {
			return v.styles.Selected.Render(label)
		}
		return v.styles.Incorrect.Render(label + "  [your answer]")
	default:
		return v.styles.Muted.Render(label)
	}
}

func (v *View) viewReflection(s *domain.ReflectionSlide) string {
	var b strings.Builder
	b.WriteString(v.styles.SlideTitle.Render(s.Title))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Normal.Render(s.Prompt))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")

	switch {
	case v.submitted:
		b.WriteString(v.styles.Correct.Render("Reflection recorded."))
	case v.input.Focused():
		b.WriteString(v.styles.Help.Render("ctrl+s submit, esc done writing"))
	default:
		b.WriteString(v.styles.Help.Render("press i to write"))
	}

	return b.String()
}

func (v *View) viewTable(s *domain.TableSlide) string {
	var b strings.Builder
	b.WriteString(v.styles.SlideTitle.Render(s.Title))
	b.WriteString("\n\n")

	widths := columnWidths(s.Headers, s.Rows)

	var cells []string
	for i, h := range s.Headers {
		cells = append(cells, pad(h, widths[i]))
	}
	b.WriteString(v.styles.TableHeader.Render(strings.Join(cells, "  ")))

	for _, row := range s.Rows {
		cells = cells[:0]
		for i, c := range row {
			cells = append(cells, pad(c, widths[i]))
		}
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(strings.Join(cells, "  ")))
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func (v *View) viewQuote(s *domain.QuoteSlide) string {
	var b strings.Builder
	b.WriteString(v.styles.Quote.Render("“" + s.Quote + "”"))
	if s.Author != "" {
		b.WriteString("\n\n")
		b.WriteString(v.styles.QuoteAuthor.Render("  " + s.Author))
	}
	if s.Context != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render("  " + s.Context))
	}
	return b.String()
}

func (v *View) viewTree(s *domain.TreeSlide) string {
	var b strings.Builder
	b.WriteString(v.styles.SlideTitle.Render(s.Title))
	for _, step := range s.Steps {
		b.WriteString("\n\n")
		b.WriteString(v.styles.StepNumber.Render(fmt.Sprintf("%d. ", step.Number)))
		b.WriteString(v.styles.PointHeader.Render(step.Title))
		if step.Description != "" {
			b.WriteString("\n")
			b.WriteString(v.styles.Bullet.Render(step.Description))
		}
	}
	return b.String()
}

func (v *View) viewNotes() string {
	var lines []string
	switch s := v.slide.(type) {
	case *domain.ContentSlide:
		lines = s.FacilitatorNotes
	case *domain.TableSlide:
		if s.FacilitatorNote != "" {
			lines = []string{s.FacilitatorNote}
		}
	case *domain.TreeSlide:
		lines = s.FacilitatorNotes
	case *domain.ReflectionSlide:
		lines = s.TalkingPoints
	}
	if len(lines) == 0 {
		return ""
	}
	return v.styles.Notes.Render("Facilitator notes\n" + strings.Join(lines, "\n"))
}
