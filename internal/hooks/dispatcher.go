package hooks

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/omnibuskit/price_history_app/internal/apperrors"
)

// Handler processes one lifecycle event payload and reports the batch outcome.
// A non-nil error means the payload itself was unusable; per-item recording
// failures are carried inside the BatchResult instead.
type Handler func(ctx context.Context, payload json.RawMessage) (BatchResult, error)

// Dispatcher is the event-dispatch port the host environment supplies.
// The core registers its named handlers against it and never cares which
// workflow originally produced an event.
type Dispatcher interface {
	Subscribe(event string, h Handler)
}

// MuxDispatcher is an in-process Dispatcher that also routes inbound events,
// backing the platform webhook endpoint.
type MuxDispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewMuxDispatcher creates an empty MuxDispatcher.
func NewMuxDispatcher() *MuxDispatcher {
	return &MuxDispatcher{handlers: make(map[string]Handler)}
}

// Subscribe registers a handler for an event name. A later Subscribe for the
// same name replaces the earlier handler.
func (d *MuxDispatcher) Subscribe(event string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = h
}

// Dispatch routes an event to its handler. Unknown event names are rejected
// with a validation error.
func (d *MuxDispatcher) Dispatch(ctx context.Context, event string, payload json.RawMessage) (BatchResult, error) {
	d.mu.RLock()
	h, ok := d.handlers[event]
	d.mu.RUnlock()
	if !ok {
		return BatchResult{}, apperrors.NewValidationError("unknown event: " + event)
	}
	return h(ctx, payload)
}
