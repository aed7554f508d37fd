package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/stevenraymond8592-create/AI-Commitment/internal/domain/carousel"
	"github.com/stevenraymond8592-create/AI-Commitment/internal/repository/deck"
)

// newTestModel builds a model over the built-in deck. The settle window is
// long enough that no test observes it closing on its own.
func newTestModel(t *testing.T, opts ...carousel.Option) (Model, *carousel.Controller) {
	t.Helper()

	d, err := deck.Default()
	require.NoError(t, err)

	opts = append([]carousel.Option{carousel.WithSettleDuration(time.Hour)}, opts...)
	controller := carousel.NewController(d, opts...)
	t.Cleanup(controller.Close)

	return NewModel(controller, WithMarkdownStyle("notty")), controller
}

// press feeds one key to the model.
func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()

	next, cmd := m.Update(msg)

	model, ok := next.(Model)
	require.True(t, ok)

	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		keys   []tea.KeyMsg
		active int
	}{
		{name: "right moves forward", keys: []tea.KeyMsg{{Type: tea.KeyRight}}, active: 1},
		{name: "l and n move forward", keys: []tea.KeyMsg{runes("l"), runes("n")}, active: 2},
		{name: "space moves forward", keys: []tea.KeyMsg{runes(" ")}, active: 1},
		{name: "left wraps to last", keys: []tea.KeyMsg{{Type: tea.KeyLeft}}, active: 2},
		{name: "h and p move back", keys: []tea.KeyMsg{runes("h"), runes("p")}, active: 1},
		{name: "next wraps to first", keys: []tea.KeyMsg{runes("n"), runes("n"), runes("n")}, active: 0},
		{name: "digit jumps", keys: []tea.KeyMsg{runes("3")}, active: 2},
		{name: "digit past the deck is ignored", keys: []tea.KeyMsg{runes("2"), runes("9")}, active: 1},
		{name: "end goes to last", keys: []tea.KeyMsg{{Type: tea.KeyEnd}}, active: 2},
		{name: "home goes to first", keys: []tea.KeyMsg{{Type: tea.KeyEnd}, {Type: tea.KeyHome}}, active: 0},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, controller := newTestModel(t)
			for _, k := range tt.keys {
				m, _ = press(t, m, k)
			}

			require.Equal(t, tt.active, controller.ActiveIndex())
			require.Equal(t, tt.active, m.State().ActiveIndex)
		})
	}
}

func TestModel_AcceptedKeyRaisesTransition(t *testing.T) {
	t.Parallel()

	m, controller := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})

	require.True(t, m.State().IsTransitioning)
	require.True(t, controller.IsTransitioning())
	require.Equal(t, uint64(1), m.State().Generation)

	// Jumping to the slide already shown changes nothing.
	m, _ = press(t, m, runes("2"))
	require.Equal(t, uint64(1), m.State().Generation)
}

func TestModel_ClampIgnoresEdges(t *testing.T) {
	t.Parallel()

	m, controller := newTestModel(t, carousel.WithPolicy(carousel.Clamp))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, 0, controller.ActiveIndex())
	require.False(t, m.State().IsTransitioning)
}

func TestModel_StateChangedReloadsSnapshot(t *testing.T) {
	t.Parallel()

	m, controller := newTestModel(t)
	changes := make(chan struct{}, 1)
	m.changes = changes

	controller.Next()
	require.Equal(t, 0, m.State().ActiveIndex)

	next, cmd := m.Update(stateChangedMsg{})
	m = next.(Model)

	require.Equal(t, 1, m.State().ActiveIndex)
	require.NotNil(t, cmd)

	changes <- struct{}{}
	require.Equal(t, stateChangedMsg{}, cmd())

	close(changes)
	require.Nil(t, waitForChange(changes, nil)())
}

func TestWaitForChange_StopsOnDone(t *testing.T) {
	t.Parallel()

	changes := make(chan struct{}, 1)
	done := make(chan struct{})

	result := make(chan tea.Msg, 1)

	go func() {
		result <- waitForChange(changes, done)()
	}()

	close(done)

	select {
	case msg := <-result:
		require.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("wait for change outlived the program")
	}

	require.Nil(t, waitForChange(nil, done))
}

func TestModel_InitWithoutChanges(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	require.Nil(t, m.Init())
}

func TestModel_QuitAndHelp(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	_, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())

	require.False(t, m.help.ShowAll)
	m, _ = press(t, m, runes("?"))
	require.True(t, m.help.ShowAll)
	require.Contains(t, m.View(), "jump to slide")
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	view := m.View()
	require.Contains(t, view, "GUIDING COMMITMENTS")
	require.Contains(t, view, "AI in Math Intervention Plan")
	require.Contains(t, view, "Process Over Product")
	require.Contains(t, view, "RATIONALE")
	require.Contains(t, view, "ACTION STEP")
	require.Contains(t, view, "1 / 3")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	view = m.View()
	require.Contains(t, view, "Non-Judgmental Scaffolding")
	require.Contains(t, view, "3 / 3")
	require.NotContains(t, view, "Process Over Product")
}

func TestModel_ViewNarrow(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 30})
	m = next.(Model)

	view := m.View()
	require.Contains(t, view, "Process Over Product")
	require.Contains(t, view, "02. PRACTICE & EVOLUTION")

	// Stacked layout puts the title card above the strategy column.
	require.Less(t, strings.Index(view, "Process Over Product"), strings.Index(view, "01. STRATEGY INTENT"))
}

func TestNotifier_DoesNotBlock(t *testing.T) {
	t.Parallel()

	changes := make(chan struct{}, 1)
	notify := Notifier(changes)

	notify(carousel.Snapshot{})
	notify(carousel.Snapshot{})

	require.Len(t, changes, 1)
}
