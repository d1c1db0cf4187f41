// Package panel implements the article style side panel: its visibility, the
// draft selections being edited, and how submit and reset reach the
// committed state owned by the caller.
package panel

import (
	"log/slog"

	"github.com/zam-dot/articlestyle/internal/options"
	"github.com/zam-dot/articlestyle/internal/watcher"
)

// CommitFunc replaces the committed article state. It is owned by the parent
// model; the controller never reads committed state back.
type CommitFunc func(options.ArticleState)

// Controller is the panel state machine. It starts closed.
type Controller struct {
	open      bool
	draft     options.ArticleState
	committed options.ArticleState // last value passed to commit, for Dirty
	commit    CommitFunc

	region  watcher.Region
	watcher *watcher.Watcher
	logger  *slog.Logger
}

// New creates a closed controller whose draft starts at initial.
func New(commit CommitFunc, doc *watcher.Document, initial options.ArticleState) *Controller {
	return &Controller{
		draft:     initial,
		committed: initial,
		commit:    commit,
		watcher:   watcher.New(doc),
		logger:    slog.Default(),
	}
}

// SetLogger replaces the controller's logger.
func (c *Controller) SetLogger(l *slog.Logger) {
	if l != nil {
		c.logger = l
	}
}

func (c *Controller) IsOpen() bool                { return c.open }
func (c *Controller) Draft() options.ArticleState { return c.draft }

// Dirty reports whether the draft differs from what was last committed.
func (c *Controller) Dirty() bool { return c.draft != c.committed }

// Toggle flips visibility. Style state is left alone.
func (c *Controller) Toggle() {
	c.open = !c.open
	c.logger.Debug("panel toggled", "open", c.open)
	c.sync()
}

// Close hides the panel. It is the watcher's close callback.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.logger.Debug("panel closed by outside interaction")
	c.sync()
}

// ChangeField replaces one field of the draft.
func (c *Controller) ChangeField(f options.Field, o options.Option) {
	c.draft = c.draft.With(f, o)
	c.logger.Debug("draft changed", "field", f.String(), "value", o.Value)
}

// OnChange returns the change callback for the control bound to f.
func (c *Controller) OnChange(f options.Field) func(options.Option) {
	return func(o options.Option) { c.ChangeField(f, o) }
}

// Submit commits the whole draft. The panel stays open.
func (c *Controller) Submit() {
	c.committed = c.draft
	c.commit(c.draft)
	c.logger.Info("style submitted",
		"fontFamily", c.draft.FontFamily.Value,
		"fontSize", c.draft.FontSize.Value,
		"fontColor", c.draft.FontColor.Value,
		"backgroundColor", c.draft.BackgroundColor.Value,
		"contentWidth", c.draft.ContentWidth.Value,
	)
}

// Reset restores the default state in both the draft and the committed state.
func (c *Controller) Reset() {
	def := options.DefaultState()
	c.draft = def
	c.committed = def
	c.commit(def)
	c.logger.Info("style reset to defaults")
}

// SetRegion updates the on-screen area that counts as inside the panel.
func (c *Controller) SetRegion(r watcher.Region) {
	c.region = r
	c.sync()
}

// Watching reports whether outside interactions are currently observed.
func (c *Controller) Watching() bool { return c.watcher.Active() }

// Unmount releases the outside-interaction subscription.
func (c *Controller) Unmount() {
	c.watcher.Release()
}

// sync re-attaches the watcher after any change to its inputs.
func (c *Controller) sync() {
	c.watcher.Attach(c.open, c.region, c.Close)
}
