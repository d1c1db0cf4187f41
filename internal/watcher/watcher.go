// Package watcher closes a panel when the user interacts outside of it.
//
// A Watcher is attached with the panel's open flag, the screen region the
// panel occupies, and a close callback:
//
//	w := watcher.New(doc)
//	w.Attach(open, watcher.Rect{Width: 40, Height: h}, closePanel)
//	defer w.Release()
//
// While attached and open, a mouse press outside the region or the escape key
// anywhere invokes the callback.
package watcher

import tea "github.com/charmbracelet/bubbletea"

// Region is the part of the screen considered inside the panel.
type Region interface {
	Contains(x, y int) bool
}

// Rect is a cell-aligned rectangle. Width and Height are exclusive bounds.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Regions is the union of its members.
type Regions []Region

func (rs Regions) Contains(x, y int) bool {
	for _, r := range rs {
		if r != nil && r.Contains(x, y) {
			return true
		}
	}
	return false
}

// Watcher holds at most one Document subscription at a time.
type Watcher struct {
	doc     *Document
	release Release
}

// New returns a detached Watcher for doc.
func New(doc *Document) *Watcher {
	return &Watcher{doc: doc}
}

// Attach drops the current subscription and, when isOpen is true, subscribes
// again with region and onClose. Every call re-subscribes, so the callback
// invoked is always the one passed last.
func (w *Watcher) Attach(isOpen bool, region Region, onClose func()) {
	w.Release()
	if !isOpen || onClose == nil {
		return
	}
	w.release = w.doc.Subscribe(func(msg tea.Msg) {
		switch msg := msg.(type) {
		case tea.MouseMsg:
			if !isPointerDown(msg) {
				return
			}
			if region != nil && region.Contains(msg.X, msg.Y) {
				return
			}
			onClose()
		case tea.KeyMsg:
			if msg.Type == tea.KeyEsc {
				onClose()
			}
		}
	})
}

// Active reports whether the watcher currently holds a subscription.
func (w *Watcher) Active() bool {
	return w.release != nil
}

// Release drops the subscription, if any.
func (w *Watcher) Release() {
	if w.release == nil {
		return
	}
	w.release()
	w.release = nil
}

func isPointerDown(msg tea.MouseMsg) bool {
	ev := tea.MouseEvent(msg)
	return ev.Action == tea.MouseActionPress && !ev.IsWheel()
}
