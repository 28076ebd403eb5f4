// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-docs-sync client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level switches.
	App App `envPrefix:"APP_"`

	// Adapter holds the websocket endpoint and transport timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Sync holds the view the client keeps in sync and the invalidation
	// debounce window.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level switches.
type App struct {
	// Once makes the client fetch a single view, print it and exit instead
	// of starting the interactive view.
	// Env: APP_ONCE
	Once bool `env:"ONCE"`
}

// Adapter holds settings of the websocket transport.
type Adapter struct {
	// WSAddress is the docs view service endpoint
	// (e.g. "ws://localhost:8003"). A missing scheme defaults to ws://.
	// Env: ADAPTER_WS_ADDRESS
	WSAddress string `env:"WS_ADDRESS"`

	// HandshakeTimeout bounds the websocket opening handshake.
	// Env: ADAPTER_HANDSHAKE_TIMEOUT
	HandshakeTimeout time.Duration `env:"HANDSHAKE_TIMEOUT"`

	// WriteTimeout bounds a single outbound frame write.
	// Env: ADAPTER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// MaxMessageSize is the largest inbound frame accepted, in bytes.
	// Env: ADAPTER_MAX_MESSAGE_SIZE
	MaxMessageSize int64 `env:"MAX_MESSAGE_SIZE"`
}

// Sync holds the synchronization target.
type Sync struct {
	// Org is the organization whose views are requested.
	// Env: SYNC_ORG
	Org string `env:"ORG"`

	// ViewID is the view to keep in sync.
	// Env: SYNC_VIEW_ID
	ViewID string `env:"VIEW_ID"`

	// InvalidationDelay is the debounce window between a cache invalidation
	// push and the resulting re-request.
	// Env: SYNC_INVALIDATION_DELAY
	InvalidationDelay time.Duration `env:"INVALIDATION_DELAY"`
}

// Default values applied to fields left empty by every source.
const (
	DefaultWSAddress         = "ws://localhost:8003"
	DefaultHandshakeTimeout  = 10 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultMaxMessageSize    = 10_000_000
	DefaultViewID            = "index"
	DefaultInvalidationDelay = 500 * time.Millisecond
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			WSAddress:        DefaultWSAddress,
			HandshakeTimeout: DefaultHandshakeTimeout,
			WriteTimeout:     DefaultWriteTimeout,
			MaxMessageSize:   DefaultMaxMessageSize,
		},
		Sync: Sync{
			ViewID:            DefaultViewID,
			InvalidationDelay: DefaultInvalidationDelay,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields still empty afterwards get their defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
