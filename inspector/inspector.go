// Package inspector keeps a local snapshot of the selected remote element in sync with the peer.
//
// Selecting an element sends an inspectElement request over the bridge and registers a listener
// for inspectedElement responses. Every accepted response is hydrated into a new Snapshot and a
// refresh request is scheduled after Config.RefreshInterval, so that changes the peer does not
// announce are eventually picked up. Responses about anything but the most recently selected
// element are discarded; requests cannot be cancelled once sent.
package inspector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-inspector/bridge"
	"github.com/spacemeshos/go-inspector/common/types"
	"github.com/spacemeshos/go-inspector/log"
)

// ErrSnapshotUnavailable is reported by Inspected when the last response for the selected element
// could not be turned into a snapshot.
var ErrSnapshotUnavailable = errors.New("snapshot unavailable")

// Opt is a type to configure an inspector.
type Opt func(*Inspector)

// WithLogger configures logger for the inspector.
func WithLogger(logger *zap.Logger) Opt {
	return func(i *Inspector) {
		i.logger = logger
	}
}

// WithConfig overrides the default configuration. A non-positive RefreshInterval is replaced
// with the default one.
func WithConfig(cfg Config) Opt {
	return func(i *Inspector) {
		i.cfg = cfg
	}
}

// WithClock sets the clock used to schedule refresh requests.
func WithClock(clock clockwork.Clock) Opt {
	return func(i *Inspector) {
		i.clock = clock
	}
}

// WithUpdateHandler registers a function that is called after the displayed snapshot changed.
// It receives the new snapshot, or nil when the snapshot was cleared. Updates are delivered one at
// a time in the order the snapshot changed, so the last delivered value is what Inspected returns.
// The handler runs without any inspector lock held and may call back into the inspector; updates
// caused by such calls are delivered after the handler returns.
func WithUpdateHandler(handler func(*Snapshot)) Opt {
	return func(i *Inspector) {
		i.onUpdate = handler
	}
}

// session is the synchronization state for one selected element. It is created by Select and
// never reused: once done is set, its timer and listener are gone and its callbacks are no-ops.
type session struct {
	ctx       context.Context
	ref       types.ElementRef
	sub       *bridge.Subscription
	timer     clockwork.Timer
	requested time.Time
	done      bool
}

// Inspector synchronizes the snapshot of the selected element.
type Inspector struct {
	logger   *zap.Logger
	cfg      Config
	clock    clockwork.Clock
	bridge   messenger
	store    elementStore
	onUpdate func(*Snapshot)

	mu       sync.Mutex
	latest   latest
	session  *session
	snapshot *Snapshot
	err      error
	// updates not yet delivered to onUpdate, in the order the snapshot changed.
	pending  []*Snapshot
	flushing bool
}

// New creates an inspector with nothing selected.
func New(bridge messenger, store elementStore, opts ...Opt) *Inspector {
	i := &Inspector{
		logger: zap.NewNop(),
		cfg:    DefaultConfig(),
		clock:  clockwork.NewRealClock(),
		bridge: bridge,
		store:  store,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.cfg.RefreshInterval <= 0 {
		i.logger.Warn("refresh interval must be positive, using default",
			zap.Duration("configured", i.cfg.RefreshInterval),
			zap.Duration("default", DefaultConfig().RefreshInterval),
		)
		i.cfg.RefreshInterval = DefaultConfig().RefreshInterval
	}
	return i
}

// Inspected returns the snapshot of the selected element. A nil snapshot means that nothing is
// selected, the element is unmounted, or the response is still pending. The error is non-nil only
// if the last response for the selected element was malformed; it wraps ErrSnapshotUnavailable.
func (i *Inspector) Inspected() (*Snapshot, error) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.snapshot, i.err
}

// Selected returns the selected element, or nil.
func (i *Inspector) Selected() *types.ElementID {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.latest.get()
}

// Select changes the selected element. A nil id deselects.
//
// The displayed snapshot is cleared and the previous element's refresh timer and listener are
// released before anything is requested for the new element. If the element has no renderer
// (it was unmounted) nothing is requested.
func (i *Inspector) Select(ctx context.Context, id *types.ElementID) {
	var (
		rendererID types.RendererID
		mounted    bool
		fields     []zap.Field
	)
	if id != nil {
		rendererID, mounted = i.store.RendererID(*id)
		fields = append(fields, id.Field(), rendererID.Field())
		if element, ok := i.store.ElementByID(*id); ok {
			fields = append(fields, zap.String("display_name", element.DisplayName))
		}
	}

	i.mu.Lock()
	i.teardown()
	i.latest.set(id)
	if i.clear() {
		i.enqueue(nil)
	}

	var s *session
	switch {
	case id == nil:
		selectedNone.Inc()
		i.logger.Debug("element deselected")
	case !mounted:
		selectedUnmounted.Inc()
		i.logger.Debug("selected element is not mounted", fields...)
	default:
		selectedElement.Inc()
		s = &session{
			ctx: log.WithNewSessionID(ctx, fields...),
			ref: types.ElementRef{ID: *id, RendererID: rendererID},
		}
		s.sub = i.bridge.Subscribe(bridge.InspectedElement, func(_ context.Context, data []byte) error {
			return i.onInspectedElement(s, data)
		})
		s.requested = i.clock.Now()
		i.session = s
		i.logger.Debug("element selected", log.ZContext(s.ctx))
	}
	i.mu.Unlock()

	i.flush()
	// a concurrent Select may already have replaced s
	if s == nil || !i.active(s) {
		return
	}
	if err := i.bridge.Send(s.ctx, bridge.SelectElement, s.ref); err != nil {
		i.logger.Warn("failed to notify element selection", log.ZContext(s.ctx), zap.Error(err))
	}
	initialRequests.Inc()
	i.request(s)
}

// Close releases the timer and listener of the selected element and deselects it.
func (i *Inspector) Close() {
	i.Select(context.Background(), nil)
}

// teardown must be called with mu held.
func (i *Inspector) teardown() {
	s := i.session
	if s == nil {
		return
	}
	i.session = nil
	s.done = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.sub.Unsubscribe()
	i.logger.Debug("element session closed", log.ZContext(s.ctx))
}

// clear must be called with mu held. It reports whether there was anything to clear.
func (i *Inspector) clear() bool {
	cleared := i.snapshot != nil || i.err != nil
	i.snapshot, i.err = nil, nil
	return cleared
}

// current must be called with mu held.
func (i *Inspector) current(s *session) bool {
	return !s.done && i.session == s
}

func (i *Inspector) active(s *session) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current(s)
}

// schedule arms the refresh timer of s, replacing any armed one. Must be called with mu held.
func (i *Inspector) schedule(s *session) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = i.clock.AfterFunc(i.cfg.RefreshInterval, func() {
		i.refresh(s)
	})
}

func (i *Inspector) refresh(s *session) {
	i.mu.Lock()
	if !i.current(s) {
		i.mu.Unlock()
		return
	}
	s.timer = nil
	s.requested = i.clock.Now()
	i.mu.Unlock()

	refreshRequests.Inc()
	i.request(s)
}

// request sends inspectElement for s unless s was torn down in the meantime. A request that is
// already handed to the bridge cannot be recalled; its response is discarded.
func (i *Inspector) request(s *session) {
	if !i.active(s) {
		return
	}
	err := i.bridge.Send(s.ctx, bridge.InspectElement, s.ref)
	if err == nil {
		return
	}
	failedRequests.Inc()
	i.logger.Warn("failed to request element state", log.ZContext(s.ctx), zap.Error(err))

	// no response will arrive for this request, poll again later
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.current(s) && s.timer == nil {
		i.schedule(s)
	}
}

func (i *Inspector) onInspectedElement(s *session, data []byte) error {
	if err := types.ValidateInspectedElement(data); err != nil {
		if i.stale(s, data) {
			staleResponses.Inc()
			i.logger.Debug("discarded stale invalid response", log.ZContext(s.ctx), zap.Error(err))
			return nil
		}
		return fmt.Errorf("decode %s: %w", bridge.InspectedElement, err)
	}
	var raw *types.InspectedElement
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode %s: %w", bridge.InspectedElement, err)
	}
	if raw == nil {
		i.onEmpty(s)
		return nil
	}

	i.mu.Lock()
	accept := i.current(s) && i.latest.matches(raw.ID)
	i.mu.Unlock()
	if !accept {
		staleResponses.Inc()
		i.logger.Debug("discarded stale response", log.ZContext(s.ctx), zap.Stringer("response_id", raw.ID))
		return nil
	}

	snapshot, err := newSnapshot(raw)
	if err != nil && i.cfg.Strict {
		panic(fmt.Errorf("malformed %s payload for element %d: %w", bridge.InspectedElement, raw.ID, err))
	}

	i.mu.Lock()
	if !i.current(s) || !i.latest.matches(raw.ID) {
		i.mu.Unlock()
		staleResponses.Inc()
		return nil
	}
	if err != nil {
		malformedResponses.Inc()
		i.snapshot = nil
		i.err = fmt.Errorf("%w: element %d: %w", ErrSnapshotUnavailable, raw.ID, err)
		i.logger.Error("malformed dehydrated payload", log.ZContext(s.ctx), zap.Error(err))
	} else {
		acceptedResponses.Inc()
		responseLatency.Observe(i.clock.Since(s.requested).Seconds())
		i.snapshot, i.err = snapshot, nil
		i.logger.Debug("element snapshot updated", log.ZContext(s.ctx), zap.Object("element", raw))
	}
	i.schedule(s)
	i.enqueue(snapshot)
	i.mu.Unlock()

	i.flush()
	return nil
}

// stale reports whether a payload that failed validation belongs to anything but the current
// subject. Payloads without a readable id are attributed to the current subject.
func (i *Inspector) stale(s *session, data []byte) bool {
	var peek struct {
		ID *types.ElementID `json:"id"`
	}
	decoded := json.Unmarshal(data, &peek) == nil && peek.ID != nil
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.current(s) {
		return true
	}
	return decoded && !i.latest.matches(*peek.ID)
}

// onEmpty handles a null payload, which the peer sends when it cannot find the element.
func (i *Inspector) onEmpty(s *session) {
	i.mu.Lock()
	if !i.current(s) {
		i.mu.Unlock()
		staleResponses.Inc()
		return
	}
	emptyResponses.Inc()
	if i.clear() {
		i.enqueue(nil)
	}
	i.schedule(s)
	i.mu.Unlock()

	i.logger.Debug("peer has no state for element", log.ZContext(s.ctx))
	i.flush()
}

// enqueue records an update for the handler. Must be called with mu held.
func (i *Inspector) enqueue(snapshot *Snapshot) {
	if i.onUpdate != nil {
		i.pending = append(i.pending, snapshot)
	}
}

// flush delivers pending updates in order. Only one goroutine delivers at a time; others leave
// their updates to it.
func (i *Inspector) flush() {
	i.mu.Lock()
	if i.flushing {
		i.mu.Unlock()
		return
	}
	i.flushing = true
	for len(i.pending) > 0 {
		snapshot := i.pending[0]
		i.pending[0] = nil
		i.pending = i.pending[1:]
		i.mu.Unlock()
		i.onUpdate(snapshot)
		i.mu.Lock()
	}
	i.pending = nil
	i.flushing = false
	i.mu.Unlock()
}
