package adapter

import "errors"

var (
	// ErrNotConnected is returned by Send when the transport is not open.
	ErrNotConnected = errors.New("websocket not connected")
	// ErrConnection wraps transport-level failures (dial, read or write).
	ErrConnection = errors.New("websocket connection error")
	// ErrInvalidEndpoint is returned for an empty or unusable endpoint address.
	ErrInvalidEndpoint = errors.New("invalid websocket endpoint")
	// ErrMessageTooLarge marks an inbound frame above the configured limit.
	ErrMessageTooLarge = errors.New("websocket message too large")
)
