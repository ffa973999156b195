package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/keymap"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/messages"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/styles"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/views/slide"
	"github.com/brightline-labs/deckhand-cli/internal/adapters/driving/tui/views/toc"
	"github.com/brightline-labs/deckhand-cli/internal/core/domain"
)

// App is the presentation controller following the Elm architecture.
// It owns the cursor, the elapsed timer and the fullscreen state, and
// delegates slide rendering to the slide view.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// deck is the currently loaded deck, nil until the first load.
	deck *domain.Deck

	// cursor is the current slide index into deck.Slides().
	cursor int

	// slideView renders the current slide and owns its local state.
	slideView *slide.View

	// tocView is the contents overlay.
	tocView *toc.View

	// showContents reports whether the contents overlay is open.
	showContents bool

	// fullscreen tracks the alternate screen state.
	fullscreen bool

	// Timer state. timerGen invalidates in-flight ticks across
	// pause/resume cycles so a resumed timer never double-counts.
	timerRunning bool
	elapsed      time.Duration
	timerGen     int

	// watch re-arms the source watcher after each reload.
	watch bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new presenter with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	keys := keymap.DefaultKeyMap()

	return &App{
		ports:     ports,
		ctx:       context.Background(),
		styles:    s,
		keys:      keys,
		slideView: slide.NewView(s, keys, ports.Responses),
		tocView:   toc.NewView(s),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.slideView.WithContext(ctx)
	return a
}

// WithWatch enables reloading the deck when its source changes.
func (a *App) WithWatch(watch bool) *App {
	a.watch = watch
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("deckhand"),
		a.loadDeck(),
	}
	if a.watch {
		cmds = append(cmds, a.watchDeck())
	}
	return tea.Batch(cmds...)
}

// loadDeck fetches the deck from the source.
func (a *App) loadDeck() tea.Cmd {
	return func() tea.Msg {
		deck, err := a.ports.Deck.Load(a.ctx)
		return messages.DeckReloaded{Deck: deck, Err: err}
	}
}

// watchDeck blocks on the source watcher, then reloads. A watcher
// failure is reported as WatchFailed, not DeckReloaded, so the
// controller can stop watching instead of re-arming into the same
// error.
func (a *App) watchDeck() tea.Cmd {
	return func() tea.Msg {
		if err := a.ports.Deck.Watch(a.ctx); err != nil {
			return messages.WatchFailed{Err: err}
		}
		deck, err := a.ports.Deck.Load(a.ctx)
		return messages.DeckReloaded{Deck: deck, Err: err}
	}
}

// tick schedules the next timer second for the given generation.
func tick(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return messages.TimerTick{Gen: gen}
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.slideView.SetDimensions(msg.Width, msg.Height)
		a.tocView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.DeckReloaded:
		return a.onDeckReloaded(msg)

	case messages.WatchFailed:
		a.watch = false
		if !errors.Is(msg.Err, context.Canceled) {
			a.err = msg.Err
		}
		return a, nil

	case messages.JumpToSlide:
		a.showContents = false
		a.setCursor(msg.Index)
		return a, nil

	case messages.CloseContents:
		a.showContents = false
		return a, nil

	case messages.TimerTick:
		if msg.Gen != a.timerGen || !a.timerRunning {
			return a, nil
		}
		a.elapsed += time.Second
		return a, tick(a.timerGen)

	case tea.KeyMsg:
		return a.onKey(msg)
	}

	a.slideView, cmd = a.slideView.Update(msg)
	return a, cmd
}

// onDeckReloaded installs a freshly loaded deck. A failed reload keeps
// the current deck on screen and surfaces the error.
func (a *App) onDeckReloaded(msg messages.DeckReloaded) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if a.watch {
		cmd = a.watchDeck()
	}

	if msg.Err != nil {
		a.err = msg.Err
		return a, cmd
	}

	a.err = nil
	a.deck = msg.Deck
	a.tocView.SetDeck(msg.Deck)

	// The deck may have shrunk; keep the cursor in range.
	if a.cursor >= a.deck.Len() {
		a.cursor = a.deck.Len() - 1
	}
	a.setCursor(a.cursor)
	return a, cmd
}

// onKey routes a key press. Priority order: force-quit, the reflection
// text area when focused, the contents overlay when open, then the
// controller's own bindings, then the slide view.
func (a *App) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// A focused text area owns the keyboard so typed characters never
	// trigger navigation.
	if a.slideView.InputFocused() {
		a.slideView, cmd = a.slideView.Update(msg)
		return a, cmd
	}

	if a.showContents {
		a.tocView, cmd = a.tocView.Update(msg)
		return a, cmd
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Next):
		a.setCursor(a.cursor + 1)
		return a, nil

	case key.Matches(msg, a.keys.Prev):
		a.setCursor(a.cursor - 1)
		return a, nil

	case key.Matches(msg, a.keys.First):
		a.setCursor(0)
		return a, nil

	case key.Matches(msg, a.keys.Last):
		if a.deck != nil {
			a.setCursor(a.deck.Len() - 1)
		}
		return a, nil

	case key.Matches(msg, a.keys.Fullscreen):
		a.fullscreen = !a.fullscreen
		if a.fullscreen {
			return a, tea.EnterAltScreen
		}
		return a, tea.ExitAltScreen

	case key.Matches(msg, a.keys.Timer):
		return a, a.toggleTimer()

	case key.Matches(msg, a.keys.Contents):
		if a.deck != nil {
			a.showContents = true
			a.tocView.Select(a.cursor)
		}
		return a, nil

	case key.Matches(msg, a.keys.Back):
		if a.fullscreen {
			a.fullscreen = false
			return a, tea.ExitAltScreen
		}
		return a, nil
	}

	a.slideView, cmd = a.slideView.Update(msg)
	return a, cmd
}

// toggleTimer starts or pauses the elapsed timer.
func (a *App) toggleTimer() tea.Cmd {
	a.timerGen++
	a.timerRunning = !a.timerRunning
	if a.timerRunning {
		return tick(a.timerGen)
	}
	return nil
}

// setCursor clamps and applies a cursor move.
func (a *App) setCursor(index int) {
	if a.deck == nil || a.deck.Len() == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index >= a.deck.Len() {
		index = a.deck.Len() - 1
	}
	a.cursor = index
	a.slideView.SetSlide(a.deck.Slide(index), index, a.deck.Len())
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.deck == nil {
		if a.err != nil {
			return a.styles.Error.Render("could not load deck: "+a.err.Error()) + "\n"
		}
		return a.styles.Muted.Render("Loading deck from " + a.ports.Deck.Origin() + "...")
	}

	if a.showContents {
		return a.tocView.View()
	}

	var b strings.Builder
	b.WriteString(a.statusBar())
	b.WriteString("\n\n")
	b.WriteString(a.slideView.View())
	if a.err != nil {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render("reload failed: " + a.err.Error()))
	}
	b.WriteString("\n")
	b.WriteString(a.helpBar())
	return b.String()
}

// statusBar shows the section, deck title and timer.
func (a *App) statusBar() string {
	s := a.deck.Slide(a.cursor)
	section := a.styles.SectionBadge.Render(s.Base().Section)
	title := a.styles.Muted.Render(" | " + a.deck.Title())
	return section + title + a.timerLabel()
}

// timerLabel formats the elapsed timer against the planned total.
func (a *App) timerLabel() string {
	if a.elapsed == 0 && !a.timerRunning {
		return ""
	}

	elapsed := fmt.Sprintf(" | %02d:%02d", int(a.elapsed.Minutes()), int(a.elapsed.Seconds())%60)
	planned := time.Duration(a.deck.TotalDuration() * float64(time.Minute))

	style := a.styles.Muted
	if planned > 0 && a.elapsed > planned {
		style = a.styles.Error
	}
	if !a.timerRunning {
		elapsed += " (paused)"
	}
	return style.Render(elapsed)
}

// helpBar shows keybinding hints for the current slide type.
func (a *App) helpBar() string {
	hints := []string{"←/→ navigate", "g contents", "f fullscreen", "t timer"}

	switch a.deck.Slide(a.cursor).(type) {
	case *domain.PollSlide:
		hints = append(hints, "1-9 answer", "e explanation")
	case *domain.ReflectionSlide:
		hints = append(hints, "i write")
	}
	if a.slideHasNotes() {
		hints = append(hints, "n notes")
	}
	hints = append(hints, "q quit")

	return a.styles.Help.Render(strings.Join(hints, "  "))
}

func (a *App) slideHasNotes() bool {
	switch s := a.deck.Slide(a.cursor).(type) {
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

// Run starts the presenter.
func (a *App) Run() error {
	p := tea.NewProgram(a)
	_, err := p.Run()
	return err
}

// SetDeck installs a deck directly (for testing).
func (a *App) SetDeck(deck *domain.Deck) {
	a.deck = deck
	a.tocView.SetDeck(deck)
	a.setCursor(0)
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.slideView.SetDimensions(width, height)
	a.tocView.SetDimensions(width, height)
}

// Cursor returns the current slide index.
func (a *App) Cursor() int {
	return a.cursor
}

// Fullscreen reports whether the alternate screen is active.
func (a *App) Fullscreen() bool {
	return a.fullscreen
}

// TimerRunning reports whether the elapsed timer is running.
func (a *App) TimerRunning() bool {
	return a.timerRunning
}

// Elapsed returns the accumulated presentation time.
func (a *App) Elapsed() time.Duration {
	return a.elapsed
}

// ContentsOpen reports whether the contents overlay is showing.
func (a *App) ContentsOpen() bool {
	return a.showContents
}

// SlideView exposes the slide view (for testing).
func (a *App) SlideView() *slide.View {
	return a.slideView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}
