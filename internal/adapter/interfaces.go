package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// EventHandler receives the lifecycle events of a single [Transport].
//
// Events of one transport are delivered sequentially from one goroutine in
// the order open, message..., then at most one error, then close. A
// transport that fails to connect delivers error and close without open.
type EventHandler interface {
	// OnOpen is called once the connection is established and Send is usable.
	OnOpen()
	// OnMessage is called for every inbound data frame.
	OnMessage(payload []byte)
	// OnError is called on a transport-level failure. The error wraps
	// [ErrConnection].
	OnError(err error)
	// OnClose is called exactly once when the transport stops.
	OnClose()
}

// Transport is one bidirectional message session with the docs view service.
type Transport interface {
	// Send encodes msg as a JSON text frame and writes it. Returns
	// [ErrNotConnected] unless the transport is open.
	Send(ctx context.Context, msg any) error
	// Close closes the session. It is idempotent and safe to call in any
	// state, including while the connection is still being established.
	Close() error
	// State returns the current lifecycle state.
	State() ConnState
	// Endpoint returns the address the transport connects to.
	Endpoint() string
}

// Dialer opens transports to the configured endpoint.
type Dialer interface {
	// Dial starts connecting in the background and returns immediately with
	// a transport in [StateConnecting]. Outcomes are reported to handler.
	Dial(ctx context.Context, handler EventHandler) Transport
}
