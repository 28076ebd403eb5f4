package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing websocket address or zero timeouts).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSyncConfigs indicates an invalid synchronization target
	// (for example, missing organization or non-positive debounce window).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
