// Package source provides the editor surfaces a preview session reads post
// content from. Sources are not safe for concurrent use; they live on the
// goroutine that delivers editor input.
package source

import (
	"errors"

	"github.com/edgecomet/snippet/pkg/types"
)

// ErrEditorNotReady is returned while the editor context has not been initialized.
var ErrEditorNotReady = errors.New("editor not ready")

// ContentSource is an editor surface holding the post being edited.
type ContentSource interface {
	Kind() types.EditorKind

	// Title returns the trimmed post title.
	Title() (string, error)

	// Body returns the raw post content, markup included.
	Body() (string, error)

	// Excerpt returns the trimmed, raw post excerpt.
	Excerpt() (string, error)

	// Subscribe registers fn for content change notifications. Notifications
	// are delivered synchronously, in subscription order.
	Subscribe(fn func(Change)) (unsubscribe func())
}

// Change describes a single content change.
type Change struct {
	// Field is one of the types.Field* names.
	Field string
}

// notifier dispatches changes to subscribers.
type notifier struct {
	nextID      int
	subscribers []subscriber
}

type subscriber struct {
	id int
	fn func(Change)
}

func (n *notifier) Subscribe(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.subscribers = append(n.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, s := range n.subscribers {
			if s.id == id {
				n.subscribers = append(n.subscribers[:i:i], n.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (n *notifier) emit(field string) {
	// Snapshot so handlers may unsubscribe while being notified
	subs := append([]subscriber(nil), n.subscribers...)
	change := Change{Field: field}
	for _, s := range subs {
		s.fn(change)
	}
}
