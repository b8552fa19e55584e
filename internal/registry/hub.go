package registry

import (
	"context"
	"sync"

	"github.com/vk/crossdexgo/internal/ctxlog"
	"github.com/vk/crossdexgo/internal/model"
)

// DeliverFunc is the registration capability supplied by the viewer runtime.
// It is invoked with the implementor table as its sole argument; its effects
// are owned entirely by the consumer, and a delivery reports no errors.
type DeliverFunc func(t *model.Table)

// Hub is the hand-off point between a page's implementor table and the
// viewer runtime, scoped to a single page load.
//
// A hand-off takes exactly one of two branches: with a capability attached
// the table is delivered synchronously and never buffered; without one it is
// stored in the pending slot, where a later hand-off overwrites (never
// merges with) the previous value. Attaching a capability drains a
// non-empty pending slot exactly once, after which the slot stays empty for
// the lifetime of the attachment.
type Hub struct {
	mu      sync.Mutex
	deliver DeliverFunc
	pending *model.Table
}

// NewHub creates a hub with no attached capability and an empty pending slot.
func NewHub() *Hub {
	return &Hub{}
}

// Handoff delivers t to the attached capability, or buffers it in the
// pending slot when no capability is attached yet.
func (h *Hub) Handoff(ctx context.Context, t *model.Table) {
	if t == nil {
		panic("registry: handoff of a nil table")
	}
	logger := ctxlog.FromContext(ctx)

	h.mu.Lock()
	deliver := h.deliver
	if deliver == nil {
		if h.pending != nil {
			logger.Warn("Pending implementor table overwritten before the viewer attached.",
				"previous", h.pending.Trait(), "replacement", t.Trait())
		}
		h.pending = t
		h.mu.Unlock()
		logger.Debug("Implementor table buffered in pending slot.", "trait", t.Trait(), "crates", t.Len())
		return
	}
	h.mu.Unlock()

	logger.Debug("Implementor table delivered to attached viewer.", "trait", t.Trait(), "crates", t.Len())
	deliver(t)
}

// Attach installs the viewer runtime's registration capability and drains
// the pending slot if it holds a table. The last attached capability wins.
func (h *Hub) Attach(ctx context.Context, fn DeliverFunc) {
	if fn == nil {
		panic("registry: attach of a nil capability")
	}

	h.mu.Lock()
	h.deliver = fn
	buffered := h.pending
	h.pending = nil
	h.mu.Unlock()

	if buffered != nil {
		ctxlog.FromContext(ctx).Debug("Pending implementor table drained on attach.",
			"trait", buffered.Trait(), "crates", buffered.Len())
		fn(buffered)
	}
}

// Pending returns the table currently buffered in the pending slot, or nil.
func (h *Hub) Pending() *model.Table {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.pending
}

// Attached reports whether a capability is currently attached.
func (h *Hub) Attached() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deliver != nil
}
