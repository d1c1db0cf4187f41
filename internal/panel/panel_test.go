package panel

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zam-dot/articlestyle/internal/options"
	"github.com/zam-dot/articlestyle/internal/watcher"
)

type harness struct {
	doc       *watcher.Document
	ctrl      *Controller
	committed options.ArticleState
	commits   int
}

func newHarness() *harness {
	h := &harness{doc: watcher.NewDocument(), committed: options.DefaultState()}
	h.ctrl = New(func(s options.ArticleState) {
		h.committed = s
		h.commits++
	}, h.doc, h.committed)
	h.ctrl.SetRegion(watcher.Rect{Width: 40, Height: 30})
	return h
}

func lastOption(f options.Field) options.Option {
	cat := options.Catalog(f)
	return cat[len(cat)-1]
}

func TestStartsClosed(t *testing.T) {
	h := newHarness()
	assert.False(t, h.ctrl.IsOpen())
	assert.False(t, h.ctrl.Watching())
	assert.Equal(t, options.DefaultState(), h.ctrl.Draft())
}

func TestToggleTwiceRestoresVisibility(t *testing.T) {
	h := newHarness()
	h.ctrl.ChangeField(options.FieldFontColor, lastOption(options.FieldFontColor))
	draft := h.ctrl.Draft()

	h.ctrl.Toggle()
	assert.True(t, h.ctrl.IsOpen())
	assert.True(t, h.ctrl.Watching())
	h.ctrl.Toggle()
	assert.False(t, h.ctrl.IsOpen())
	assert.False(t, h.ctrl.Watching())

	assert.Equal(t, draft, h.ctrl.Draft())
	assert.Equal(t, options.DefaultState(), h.committed)
	assert.Zero(t, h.commits)
}

func TestChangeFieldTouchesOnlyDraftField(t *testing.T) {
	for _, f := range options.Fields() {
		h := newHarness()
		h.ctrl.Toggle()
		h.ctrl.ChangeField(f, lastOption(f))

		assert.Equal(t, lastOption(f), h.ctrl.Draft().Get(f), "field %s", f)
		for _, other := range options.Fields() {
			if other != f {
				assert.Equal(t, options.DefaultState().Get(other), h.ctrl.Draft().Get(other))
			}
		}
		assert.Equal(t, options.DefaultState(), h.committed, "committed changed by %s", f)
		assert.Zero(t, h.commits)
		assert.True(t, h.ctrl.IsOpen(), "change must not close the panel")
		assert.True(t, h.ctrl.Dirty())
	}
}

func TestOnChangeIsScopedToField(t *testing.T) {
	h := newHarness()
	onSize := h.ctrl.OnChange(options.FieldFontSize)
	onSize(options.FontSizes[2])
	assert.Equal(t, options.FontSizes[2], h.ctrl.Draft().FontSize)
	assert.Equal(t, options.DefaultState().FontFamily, h.ctrl.Draft().FontFamily)
}

func TestSubmitCommitsFinalDraftAndStaysOpen(t *testing.T) {
	h := newHarness()
	h.ctrl.Toggle()
	h.ctrl.ChangeField(options.FieldFontFamily, options.FontFamilies[3])
	h.ctrl.ChangeField(options.FieldBackgroundColor, options.BackgroundColors[4])
	h.ctrl.ChangeField(options.FieldFontFamily, options.FontFamilies[1])

	h.ctrl.Submit()
	assert.Equal(t, h.ctrl.Draft(), h.committed)
	assert.Equal(t, options.FontFamilies[1], h.committed.FontFamily)
	assert.Equal(t, 1, h.commits)
	assert.True(t, h.ctrl.IsOpen())
	assert.True(t, h.ctrl.Watching())
	assert.False(t, h.ctrl.Dirty())
}

func TestSubmitUnchangedStillCommits(t *testing.T) {
	h := newHarness()
	h.ctrl.Submit()
	h.ctrl.Submit()
	assert.Equal(t, 2, h.commits)
	assert.Equal(t, options.DefaultState(), h.committed)
}

func TestResetRestoresDefaults(t *testing.T) {
	h := newHarness()
	h.ctrl.Toggle()
	for _, f := range options.Fields() {
		h.ctrl.ChangeField(f, lastOption(f))
	}
	h.ctrl.Submit()
	h.ctrl.ChangeField(options.FieldFontSize, options.FontSizes[1])

	h.ctrl.Reset()
	assert.Equal(t, options.DefaultState(), h.ctrl.Draft())
	assert.Equal(t, options.DefaultState(), h.committed)
	assert.True(t, h.ctrl.IsOpen())
}

func TestFontSizeScenario(t *testing.T) {
	h := newHarness()
	require.Equal(t, "18px", h.committed.FontSize.Value)

	size, err := options.Lookup(options.FieldFontSize, "24px")
	require.NoError(t, err)
	h.ctrl.ChangeField(options.FieldFontSize, size)
	h.ctrl.Submit()

	assert.Equal(t, "24px", h.committed.FontSize.Value)
	assert.Equal(t, options.DefaultState().With(options.FieldFontSize, size), h.committed)

	h.ctrl.Reset()
	assert.Equal(t, "18px", h.committed.FontSize.Value)
}

func TestOutsidePressCloses(t *testing.T) {
	h := newHarness()
	h.ctrl.Toggle()

	h.doc.Dispatch(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, h.ctrl.IsOpen(), "press inside keeps the panel open")

	h.doc.Dispatch(tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, h.ctrl.IsOpen())
	assert.False(t, h.ctrl.Watching())
	assert.Zero(t, h.doc.Subscribers())
}

func TestEscapeCloses(t *testing.T) {
	h := newHarness()
	h.ctrl.Toggle()
	h.doc.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, h.ctrl.IsOpen())
}

func TestClosedPanelIgnoresOutsideInteraction(t *testing.T) {
	h := newHarness()
	h.doc.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	h.doc.Dispatch(tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, h.ctrl.IsOpen())
}

func TestSetRegionFollowsLayout(t *testing.T) {
	h := newHarness()
	h.ctrl.Toggle()
	h.ctrl.SetRegion(watcher.Rect{Width: 80, Height: 30})

	h.doc.Dispatch(tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, h.ctrl.IsOpen())
	assert.Equal(t, 1, h.doc.Subscribers())
}

func TestUnmountReleases(t *testing.T) {
	h := newHarness()
	h.ctrl.Toggle()
	h.ctrl.Unmount()

	assert.Zero(t, h.doc.Subscribers())
	h.doc.Dispatch(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, h.ctrl.IsOpen(), "no close after teardown")
}
