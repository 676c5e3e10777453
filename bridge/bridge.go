// Package bridge multiplexes named messages exchanged with the inspected peer.
//
// The transport itself is owned by the embedding application: outbound messages are handed to a
// Transport, inbound messages are fed to Mux.Dispatch. Listeners are registered per message name
// and removed through the Subscription returned on registration.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-inspector/log"
)

// Message names used by the inspector.
const (
	// SelectElement notifies the peer that an element was selected. Sent once per selection.
	SelectElement = "selectElement"
	// InspectElement requests the current state of an element.
	InspectElement = "inspectElement"
	// HighlightElementInDOM asks the peer to highlight an element. The inspector never sends it.
	HighlightElementInDOM = "highlightElementInDOM"
	// InspectedElement carries the state of an element in response to InspectElement.
	InspectedElement = "inspectedElement"
)

// Handler processes the payload of an inbound message. Returned errors are logged and counted.
type Handler func(context.Context, []byte) error

// Opt is a type to configure a mux.
type Opt func(*Mux)

// WithLogger configures logger for the mux.
func WithLogger(logger *zap.Logger) Opt {
	return func(m *Mux) {
		m.logger = logger
	}
}

type listener struct {
	sub     *Subscription
	handler Handler
}

// Mux sends messages through a Transport and routes inbound messages to listeners.
type Mux struct {
	logger    *zap.Logger
	transport Transport

	mu        sync.Mutex
	listeners map[string][]listener
	trackers  map[string]*tracker
}

// New creates a mux over transport.
func New(transport Transport, opts ...Opt) *Mux {
	m := &Mux{
		logger:    zap.NewNop(),
		transport: transport,
		listeners: make(map[string][]listener),
		trackers:  make(map[string]*tracker),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// tracker must be called with mu held.
func (m *Mux) tracker(name string) *tracker {
	t, ok := m.trackers[name]
	if !ok {
		t = newTracker(name)
		m.trackers[name] = t
	}
	return t
}

// Send encodes payload as JSON and hands it to the transport.
func (m *Mux) Send(ctx context.Context, name string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	m.mu.Lock()
	t := m.tracker(name)
	m.mu.Unlock()
	if err := m.transport.Send(ctx, name, data); err != nil {
		t.sendFailed.Inc()
		return fmt.Errorf("send %s: %w", name, err)
	}
	t.sent.Inc()
	m.logger.Debug("message sent", log.ZContext(ctx), zap.String("message", name), zap.Int("size", len(data)))
	return nil
}

// Subscribe registers handler for inbound messages with the given name.
// Handlers run on the goroutine that calls Dispatch, in registration order.
func (m *Mux) Subscribe(name string, handler Handler) *Subscription {
	sub := &Subscription{mux: m, name: name}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners[name] = append(m.listeners[name], listener{sub: sub, handler: handler})
	m.tracker(name).listeners.Inc()
	return sub
}

func (m *Mux) unsubscribe(sub *Subscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current := m.listeners[sub.name]
	for i, l := range current {
		if l.sub != sub {
			continue
		}
		updated := make([]listener, 0, len(current)-1)
		updated = append(updated, current[:i]...)
		updated = append(updated, current[i+1:]...)
		if len(updated) == 0 {
			delete(m.listeners, sub.name)
		} else {
			m.listeners[sub.name] = updated
		}
		m.tracker(sub.name).listeners.Dec()
		return
	}
}

// Listeners returns the number of listeners registered for name.
func (m *Mux) Listeners(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners[name])
}

// Dispatch delivers an inbound message to the listeners registered for name and returns how many
// handlers were invoked. Listeners removed while dispatch is in progress are skipped.
func (m *Mux) Dispatch(ctx context.Context, name string, data []byte) int {
	m.mu.Lock()
	t := m.tracker(name)
	current := m.listeners[name]
	m.mu.Unlock()

	t.received.Inc()
	if len(current) == 0 {
		t.dropped.Inc()
		m.logger.Debug("no listeners for message", log.ZContext(ctx), zap.String("message", name))
		return 0
	}
	delivered := 0
	for _, l := range current {
		if l.sub.closed.Load() {
			continue
		}
		delivered++
		if err := l.handler(ctx, data); err != nil {
			t.rejected.Inc()
			m.logger.Warn("message rejected by listener",
				log.ZContext(ctx),
				zap.String("message", name),
				zap.Error(err),
			)
		}
	}
	return delivered
}

// Subscription is a registered listener. Unsubscribe removes it.
type Subscription struct {
	mux    *Mux
	name   string
	closed atomic.Bool
}

// Name returns the message name the subscription listens to.
func (s *Subscription) Name() string {
	return s.name
}

// Unsubscribe removes the listener. It is safe to call more than once and from within the
// listener itself.
func (s *Subscription) Unsubscribe() {
	if s == nil || !s.closed.CompareAndSwap(false, true) {
		return
	}
	if s.mux != nil {
		s.mux.unsubscribe(s)
	}
}
