package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
)

// activeIndicatorWidth is the length of the active position dash.
const activeIndicatorWidth = 6

// stateChangedMsg tells the model the controller state changed.
type stateChangedMsg struct{}

// Option configures a Model.
type Option func(*Model)

// WithChanges sets the channel that signals controller state changes.
// Signals are coalesced: the model always reloads the latest snapshot.
func WithChanges(changes <-chan struct{}) Option {
	return func(m *Model) {
		m.changes = changes
	}
}

// WithDone sets a channel whose closing stops the wait for changes. The
// presenter closes it once the program has returned.
func WithDone(done <-chan struct{}) Option {
	return func(m *Model) {
		m.done = done
	}
}

// WithMarkdownStyle selects the glamour style for slide text.
func WithMarkdownStyle(style string) Option {
	return func(m *Model) {
		m.markdown = newMarkdownRenderer(style)
	}
}

// WithStyles replaces the lipgloss styles.
func WithStyles(styles Styles) Option {
	return func(m *Model) {
		m.styles = styles
	}
}

// Model is the Bubble Tea model of the presenter.
type Model struct {
	// controller owns the navigation state.
	controller *carousel.Controller
	// state is the snapshot the view renders.
	state carousel.Snapshot
	// changes signals asynchronous state changes such as settles.
	changes <-chan struct{}
	// done ends the pending wait on changes.
	done <-chan struct{}
	// keys are the key bindings.
	keys keyMap
	// help renders the key bindings.
	help help.Model
	// styles are the lipgloss styles.
	styles Styles
	// markdown renders slide text.
	markdown *markdownRenderer
	// width and height are the terminal size.
	width  int
	height int
}

// NewModel creates a model driving controller.
func NewModel(controller *carousel.Controller, opts ...Option) Model {
	m := Model{
		controller: controller,
		state:      controller.Snapshot(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     DefaultStyles(),
		markdown:   newMarkdownRenderer(DefaultMarkdownStyle),
		width:      DefaultWidth,
		height:     DefaultHeight,
	}

	for _, opt := range opts {
		opt(&m)
	}

	m.help.Width = m.width

	return m
}

// State returns the snapshot the model currently renders.
func (m Model) State() carousel.Snapshot {
	return m.state
}

// Init starts listening for controller changes.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.changes, m.done)
}

// Update handles key presses, resizes and controller changes.
//
//nolint:ireturn // tea.Model is the Bubble Tea contract.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		return m, nil

	case stateChangedMsg:
		m.state = m.controller.Snapshot()

		return m, waitForChange(m.changes, m.done)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey maps a key press to a controller request.
//
//nolint:ireturn // tea.Model is the Bubble Tea contract.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Previous):
		m.state = m.controller.Previous().State

	case key.Matches(msg, m.keys.Next):
		m.state = m.controller.Next().State

	case key.Matches(msg, m.keys.First):
		m.state = m.controller.JumpTo(0).State

	case key.Matches(msg, m.keys.Last):
		m.state = m.controller.JumpTo(m.controller.Deck().Len() - 1).State

	case key.Matches(msg, m.keys.Jump):
		slide := int(msg.String()[0] - '0')
		if slide <= m.controller.Deck().Len() {
			m.state = m.controller.JumpTo(slide - 1).State
		}
	}

	return m, nil
}

// View renders the current snapshot.
func (m Model) View() string {
	return render(frame{
		state:         m.state,
		info:          m.controller.Deck().Info(),
		width:         m.width,
		height:        m.height,
		styles:        m.styles,
		markdown:      m.markdown,
		position:      positionLabel(m.state),
		helpView:      m.help.View(m.keys),
		wideIndicator: activeIndicatorWidth,
	})
}

// waitForChange blocks until the next change signal. A closed or nil
// changes channel, or a closed done channel, ends the subscription.
func waitForChange(changes, done <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}

	return func() tea.Msg {
		select {
		case _, ok := <-changes:
			if !ok {
				return nil
			}

			return stateChangedMsg{}
		case <-done:
			return nil
		}
	}
}

// Notifier returns a controller subscriber that signals changes without
// blocking, dropping signals while one is already pending.
func Notifier(changes chan<- struct{}) func(carousel.Snapshot) {
	return func(carousel.Snapshot) {
		select {
		case changes <- struct{}{}:
		default:
		}
	}
}
