package watcher

import tea "github.com/charmbracelet/bubbletea"

// Handler receives every message dispatched on a Document.
type Handler func(tea.Msg)

// Release cancels a subscription. Calling it more than once is a no-op.
type Release func()

type subscription struct {
	handler  Handler
	released bool
}

// Document is the program-wide event surface. The top-level model forwards
// raw key and mouse messages to it; components subscribe for as long as they
// need to observe input that happens anywhere on screen.
//
// Document is driven by the Bubble Tea update loop and is not safe for
// concurrent use.
type Document struct {
	subs []*subscription
}

// NewDocument returns an empty Document.
func NewDocument() *Document {
	return &Document{}
}

// Subscribe registers h until the returned Release is called.
func (d *Document) Subscribe(h Handler) Release {
	s := &subscription{handler: h}
	d.subs = append(d.subs, s)
	return func() {
		if s.released {
			return
		}
		s.released = true
		for i, cur := range d.subs {
			if cur == s {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				break
			}
		}
	}
}

// Dispatch delivers msg to every live subscriber. A subscriber released by an
// earlier handler during the same dispatch is skipped.
func (d *Document) Dispatch(msg tea.Msg) {
	snapshot := make([]*subscription, len(d.subs))
	copy(snapshot, d.subs)
	for _, s := range snapshot {
		if s.released {
			continue
		}
		s.handler(msg)
	}
}

// Subscribers reports the number of live subscriptions.
func (d *Document) Subscribers() int {
	return len(d.subs)
}
