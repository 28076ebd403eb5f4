package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-docs-sync/internal/adapter"
	"github.com/MKhiriev/go-docs-sync/internal/config"
	"github.com/MKhiriev/go-docs-sync/internal/logger"
	"github.com/MKhiriev/go-docs-sync/models"
	"github.com/google/uuid"
)

type viewSyncClient struct {
	dialer            adapter.Dialer
	invalidationDelay time.Duration
	logger            *logger.Logger
	now               func() time.Time

	ctx       context.Context
	cancel    context.CancelFunc
	mailbox   chan func()
	done      chan struct{}
	closeOnce sync.Once

	// fields below are owned by the loop goroutine
	transport     adapter.Transport
	session       uint64
	connected     bool
	org           string
	viewID        string
	counter       uint64
	lastRequestID string
	state         models.SyncState
	debounce      *time.Timer
	debounceGen   uint64
	onSubscribed  func(org string)
	sessionLog    *logger.Logger

	mu       sync.RWMutex
	snapshot models.SyncState
	updates  chan models.SyncState
}

// NewViewSyncClient creates a [ViewSyncClient] that opens transports through
// dialer. The client is idle until Connect is called. A non-positive
// syncCfg.InvalidationDelay defaults to [config.DefaultInvalidationDelay].
func NewViewSyncClient(dialer adapter.Dialer, syncCfg config.ClientSync, logger *logger.Logger) ViewSyncClient {
	delay := syncCfg.InvalidationDelay
	if delay <= 0 {
		delay = config.DefaultInvalidationDelay
	}

	ctx, cancel := context.WithCancel(context.Background())
	log := logger.WithStr("client_id", uuid.NewString())
	c := &viewSyncClient{
		dialer:            dialer,
		invalidationDelay: delay,
		logger:            log,
		now:               time.Now,
		ctx:               ctx,
		cancel:            cancel,
		mailbox:           make(chan func()),
		done:              make(chan struct{}),
		sessionLog:        log,
		updates:           make(chan models.SyncState, 1),
	}

	go c.run()
	return c
}

func (c *viewSyncClient) run() {
	for {
		select {
		case fn := <-c.mailbox:
			fn()
		case <-c.done:
			return
		}
	}
}

// call runs fn on the loop goroutine and waits for it to finish.
func (c *viewSyncClient) call(fn func()) error {
	finished := make(chan struct{})
	select {
	case c.mailbox <- func() { fn(); close(finished) }:
	case <-c.done:
		return ErrClientClosed
	}

	select {
	case <-finished:
		return nil
	case <-c.done:
		return ErrClientClosed
	}
}

// Connect implements [ViewSyncClient].
func (c *viewSyncClient) Connect(ctx context.Context, org, viewID string) error {
	org = strings.TrimSpace(org)
	if org == "" {
		return ErrEmptyOrg
	}

	viewID = strings.TrimSpace(viewID)
	if viewID == "" {
		viewID = models.DefaultViewID
	}

	return c.call(func() { c.connect(ctx, org, viewID) })
}

// Refresh implements [ViewSyncClient].
func (c *viewSyncClient) Refresh() error {
	var err error
	if callErr := c.call(func() { err = c.refresh() }); callErr != nil {
		return callErr
	}
	return err
}

// Teardown implements [ViewSyncClient].
func (c *viewSyncClient) Teardown() {
	_ = c.call(c.teardown)
}

// State implements [ViewSyncClient].
func (c *viewSyncClient) State() models.SyncState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Clone()
}

// Updates implements [ViewSyncClient].
func (c *viewSyncClient) Updates() <-chan models.SyncState {
	return c.updates
}

// OnSubscribed implements [ViewSyncClient].
func (c *viewSyncClient) OnSubscribed(fn func(org string)) {
	_ = c.call(func() { c.onSubscribed = fn })
}

// Close implements [ViewSyncClient].
func (c *viewSyncClient) Close() {
	c.closeOnce.Do(func() {
		_ = c.call(c.teardown)
		c.cancel()
		close(c.done)
	})
}

func (c *viewSyncClient) connect(ctx context.Context, org, viewID string) {
	c.teardown()

	c.org = org
	c.viewID = viewID
	c.lastRequestID = ""
	c.sessionLog = c.logger.WithStr("org", org).WithStr("view_id", viewID)

	if !models.IsKnownView(viewID) {
		c.sessionLog.Warn().Msg("requesting a view outside the known catalog")
	}

	// a new session starts without the previous session's error
	changed := c.state.Error != ""
	c.state.Error = ""
	if c.state.Data == nil && !c.state.Loading {
		c.state.Loading = true
		changed = true
	}
	if changed {
		c.publish()
	}

	session := c.session
	c.transport = c.dialer.Dial(ctx, &sessionHandler{client: c, session: session})
	c.sessionLog.Info().Str("endpoint", c.transport.Endpoint()).Msg("connecting to docs view service")
}

func (c *viewSyncClient) teardown() {
	c.cancelDebounce()

	// events still in flight from the old transport must not touch the state
	c.session++
	c.connected = false

	if c.transport == nil {
		return
	}

	if err := c.transport.Close(); err != nil {
		c.sessionLog.Debug().Err(err).Msg("closing transport")
	}
	c.transport = nil
}

func (c *viewSyncClient) refresh() error {
	if c.transport == nil || !c.connected {
		c.state.Error = adapter.ErrNotConnected.Error()
		c.publish()
		return fmt.Errorf("refresh view: %w", adapter.ErrNotConnected)
	}

	requestID := c.nextRequestID()
	c.lastRequestID = requestID

	msg := models.NewViewRequestMessage(c.org, c.viewID, requestID)
	if err := c.transport.Send(c.ctx, msg); err != nil {
		c.sessionLog.Err(err).Str("request_id", requestID).Msg("sending view request")
		c.connected = false
		c.state.Error = adapter.ErrConnection.Error()
		c.state.Loading = false
		c.publish()
		return fmt.Errorf("send view request: %w", err)
	}

	c.sessionLog.Debug().Str("request_id", requestID).Msg("view requested")
	c.state.Loading = true
	c.publish()
	return nil
}

func (c *viewSyncClient) nextRequestID() string {
	c.counter++
	return fmt.Sprintf("req_%d_%d", c.now().UnixMilli(), c.counter)
}

func (c *viewSyncClient) onOpen(session uint64) {
	if session != c.session {
		return
	}

	c.connected = true
	c.sessionLog.Info().Msg("connected to docs view service")

	if err := c.transport.Send(c.ctx, models.NewSubscribeMessage(c.org)); err != nil {
		c.sessionLog.Err(err).Msg("sending subscribe")
		c.connected = false
		c.state.Error = adapter.ErrConnection.Error()
		c.state.Loading = false
		c.publish()
		return
	}

	_ = c.refresh()
}

func (c *viewSyncClient) onMessage(session uint64, payload []byte) {
	if session != c.session {
		return
	}

	msg, err := decodeInbound(payload)
	if err != nil {
		c.sessionLog.Warn().Err(err).Int("size", len(payload)).Msg("dropping inbound message")
		return
	}

	switch m := msg.(type) {
	case *models.ViewDataMessage:
		c.handleViewData(m)
	case *models.SubscribedMessage:
		c.handleSubscribed(m)
	case *models.CacheInvalidatedMessage:
		c.handleCacheInvalidated(m)
	case *models.ErrorMessage:
		c.handleServerError(m)
	case unknownMessage:
		c.sessionLog.Debug().Str("type", m.Type).Msg("ignoring unknown message type")
	}
}

func (c *viewSyncClient) handleViewData(m *models.ViewDataMessage) {
	if m.RequestID != "" && m.RequestID != c.lastRequestID {
		c.sessionLog.Debug().
			Str("request_id", m.RequestID).
			Str("last_request_id", c.lastRequestID).
			Msg("discarding stale view data")
		return
	}

	data := m.ViewData
	c.state.Data = &data
	c.state.Loading = false
	c.state.Error = ""
	c.publish()

	c.sessionLog.Info().
		Str("request_id", m.RequestID).
		Int("row_count", data.RowCount).
		Msg("received view data")
}

func (c *viewSyncClient) handleSubscribed(m *models.SubscribedMessage) {
	c.sessionLog.Info().Str("subscribed_org", m.Org).Msg("subscribed to docs updates")

	if fn := c.onSubscribed; fn != nil {
		go fn(m.Org)
	}
}

func (c *viewSyncClient) handleCacheInvalidated(m *models.CacheInvalidatedMessage) {
	c.sessionLog.Info().
		Str("invalidated_org", m.Org).
		Str("reason", m.Reason).
		Str("event_type", m.EventType).
		Dur("delay", c.invalidationDelay).
		Msg("cache invalidated, scheduling refresh")

	c.scheduleRefresh()
}

func (c *viewSyncClient) handleServerError(m *models.ErrorMessage) {
	if m.RequestID != "" && m.RequestID != c.lastRequestID {
		c.sessionLog.Debug().Str("request_id", m.RequestID).Msg("discarding stale error")
		return
	}

	c.state.Error = m.Message
	c.state.Loading = false
	c.publish()

	c.sessionLog.Error().Str("request_id", m.RequestID).Str("message", m.Message).Msg("server error")
}

func (c *viewSyncClient) onError(session uint64, err error) {
	if session != c.session {
		return
	}

	c.sessionLog.Err(err).Msg("transport error")
	c.connected = false
	c.state.Error = adapter.ErrConnection.Error()
	c.state.Loading = false
	c.publish()
}

func (c *viewSyncClient) onClose(session uint64) {
	if session != c.session {
		return
	}

	c.connected = false
	c.sessionLog.Info().Msg("disconnected from docs view service")
}

// scheduleRefresh arms the invalidation timer unless one is already pending.
// Invalidations inside the window collapse into the pending refresh, which
// fires InvalidationDelay after the first of them.
func (c *viewSyncClient) scheduleRefresh() {
	if c.debounce != nil {
		return
	}

	gen, session := c.debounceGen, c.session
	c.debounce = time.AfterFunc(c.invalidationDelay, func() {
		_ = c.call(func() {
			if gen != c.debounceGen || session != c.session {
				return
			}
			c.debounce = nil
			if err := c.refresh(); err != nil {
				c.sessionLog.Warn().Err(err).Msg("invalidation refresh failed")
			}
		})
	})
}

func (c *viewSyncClient) cancelDebounce() {
	c.debounceGen++
	if c.debounce != nil {
		c.debounce.Stop()
		c.debounce = nil
	}
}

// publish exposes the loop-owned state to readers.
func (c *viewSyncClient) publish() {
	snapshot := c.state.Clone()

	c.mu.Lock()
	c.snapshot = snapshot
	c.mu.Unlock()

	// only the loop sends, so after draining there is room
	select {
	case <-c.updates:
	default:
	}
	c.updates <- snapshot.Clone()
}

// sessionHandler binds transport events to the session they were dialed for.
type sessionHandler struct {
	client  *viewSyncClient
	session uint64
}

func (h *sessionHandler) OnOpen() {
	_ = h.client.call(func() { h.client.onOpen(h.session) })
}

func (h *sessionHandler) OnMessage(payload []byte) {
	_ = h.client.call(func() { h.client.onMessage(h.session, payload) })
}

func (h *sessionHandler) OnError(err error) {
	_ = h.client.call(func() { h.client.onError(h.session, err) })
}

func (h *sessionHandler) OnClose() {
	_ = h.client.call(func() { h.client.onClose(h.session) })
}
