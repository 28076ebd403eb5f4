package config

import (
	"flag"
	"fmt"
	"time"
)

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-ws-address docs view service websocket endpoint
//	-org organization to sync
//	-view view id to sync
//	-invalidation-delay debounce window for invalidations (e.g., "500ms")
//	-handshake-timeout websocket handshake timeout (e.g., "10s")
//	-write-timeout websocket write timeout (e.g., "10s")
//	-max-message-size largest accepted inbound frame in bytes
//	-once fetch the view once, print it as JSON and exit
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var wsAddress string
	var org string
	var viewID string
	var invalidationDelay time.Duration
	var handshakeTimeout time.Duration
	var writeTimeout time.Duration
	var maxMessageSize int64
	var once bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("go-docs-sync", flag.ContinueOnError)
	fs.StringVar(&wsAddress, "ws-address", "", "Docs view service websocket endpoint")
	fs.StringVar(&org, "org", "", "Organization to sync")
	fs.StringVar(&viewID, "view", "", "View id to sync")
	fs.DurationVar(&invalidationDelay, "invalidation-delay", 0, "Debounce window for cache invalidations (e.g., 500ms)")
	fs.DurationVar(&handshakeTimeout, "handshake-timeout", 0, "Websocket handshake timeout (e.g., 10s)")
	fs.DurationVar(&writeTimeout, "write-timeout", 0, "Websocket write timeout (e.g., 10s)")
	fs.Int64Var(&maxMessageSize, "max-message-size", 0, "Largest accepted inbound frame in bytes")
	fs.BoolVar(&once, "once", false, "Fetch the view once, print it as JSON and exit")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{Once: once},
		Adapter: Adapter{
			WSAddress:        wsAddress,
			HandshakeTimeout: handshakeTimeout,
			WriteTimeout:     writeTimeout,
			MaxMessageSize:   maxMessageSize,
		},
		Sync: Sync{
			Org:               org,
			ViewID:            viewID,
			InvalidationDelay: invalidationDelay,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
