package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return newClientConfig(&StructuredConfig{
		Adapter: Adapter{
			WSAddress:        "ws://localhost:8003",
			HandshakeTimeout: time.Second,
			WriteTimeout:     time.Second,
			MaxMessageSize:   1024,
		},
		Sync: Sync{Org: "acme", ViewID: "index", InvalidationDelay: 500 * time.Millisecond},
		App:  App{Once: true},
	})
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := validClientConfig()

	assert.Equal(t, "ws://localhost:8003", cfg.Adapter.WSAddress)
	assert.Equal(t, int64(1024), cfg.Adapter.MaxMessageSize)
	assert.Equal(t, "acme", cfg.Sync.Org)
	assert.Equal(t, "index", cfg.Sync.ViewID)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.InvalidationDelay)
	assert.True(t, cfg.Once)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClientConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(c *ClientConfig) {}},
		{name: "empty address", mutate: func(c *ClientConfig) { c.Adapter.WSAddress = " " }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero handshake timeout", mutate: func(c *ClientConfig) { c.Adapter.HandshakeTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero write timeout", mutate: func(c *ClientConfig) { c.Adapter.WriteTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero message size", mutate: func(c *ClientConfig) { c.Adapter.MaxMessageSize = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty org", mutate: func(c *ClientConfig) { c.Sync.Org = "" }, wantErr: ErrInvalidSyncConfigs},
		{name: "negative delay", mutate: func(c *ClientConfig) { c.Sync.InvalidationDelay = -time.Second }, wantErr: ErrInvalidSyncConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
