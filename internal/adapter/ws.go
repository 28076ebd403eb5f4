package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-docs-sync/internal/config"
	"github.com/MKhiriev/go-docs-sync/internal/logger"
	"github.com/gorilla/websocket"
)

type wsDialer struct {
	endpoint       string
	dialer         *websocket.Dialer
	writeTimeout   time.Duration
	maxMessageSize int64

	logger *logger.Logger
}

// NewWSDialer constructs a gorilla/websocket implementation of [Dialer].
// It normalises and validates the endpoint from adapterCfg.WSAddress and
// applies the handshake timeout, write timeout and inbound size limit.
//
// Returns an error wrapping [ErrInvalidEndpoint] if the address is empty or
// cannot be parsed as a ws/wss URL.
func NewWSDialer(adapterCfg config.ClientAdapter, logger *logger.Logger) (Dialer, error) {
	endpoint, err := normalizeEndpoint(adapterCfg.WSAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter websocket address: %w", err)
	}

	return &wsDialer{
		endpoint: endpoint,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: adapterCfg.HandshakeTimeout,
		},
		writeTimeout:   adapterCfg.WriteTimeout,
		maxMessageSize: adapterCfg.MaxMessageSize,
		logger:         logger.WithStr("endpoint", endpoint),
	}, nil
}

// Dial implements [Dialer].
func (d *wsDialer) Dial(ctx context.Context, handler EventHandler) Transport {
	dialCtx, cancel := context.WithCancel(ctx)
	t := &wsTransport{
		endpoint:     d.endpoint,
		handler:      handler,
		writeTimeout: d.writeTimeout,
		cancel:       cancel,
		state:        StateConnecting,
		logger:       d.logger,
	}

	go t.run(dialCtx, d.dialer, d.maxMessageSize)
	return t
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidEndpoint)
	}

	if !strings.Contains(raw, "://") {
		raw = "ws://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	switch u.Scheme {
	case "ws", "wss":
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	default:
		return "", fmt.Errorf("%w: unsupported scheme %q", ErrInvalidEndpoint, u.Scheme)
	}

	if u.Host == "" {
		return "", fmt.Errorf("%w: address must include host", ErrInvalidEndpoint)
	}

	return u.String(), nil
}
