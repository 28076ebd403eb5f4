package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// WSAddress is the websocket endpoint of the docs view service.
	WSAddress string
	// HandshakeTimeout bounds the websocket opening handshake.
	HandshakeTimeout time.Duration
	// WriteTimeout bounds a single outbound frame write.
	WriteTimeout time.Duration
	// MaxMessageSize is the largest inbound frame accepted, in bytes.
	MaxMessageSize int64
}

// ClientSync holds the view the client keeps in sync.
type ClientSync struct {
	// Org is the organization whose views are requested.
	Org string
	// ViewID is the view to keep in sync.
	ViewID string
	// InvalidationDelay is the debounce window applied to cache
	// invalidation pushes.
	InvalidationDelay time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the transport endpoint and timeouts.
	Adapter ClientAdapter
	// Sync contains the synchronization target.
	Sync ClientSync
	// Once requests a single fetch instead of the interactive view.
	Once bool
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			WSAddress:        cfg.Adapter.WSAddress,
			HandshakeTimeout: cfg.Adapter.HandshakeTimeout,
			WriteTimeout:     cfg.Adapter.WriteTimeout,
			MaxMessageSize:   cfg.Adapter.MaxMessageSize,
		},
		Sync: ClientSync{
			Org:               cfg.Sync.Org,
			ViewID:            cfg.Sync.ViewID,
			InvalidationDelay: cfg.Sync.InvalidationDelay,
		},
		Once: cfg.App.Once,
	}
}
