// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate rejects values that no source may set, whatever the run mode:
// negative timeouts, sizes or debounce windows. Defaults are already applied,
// so zero values have been replaced at this point.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.HandshakeTimeout < 0 ||
		cfg.Adapter.WriteTimeout < 0 ||
		cfg.Adapter.MaxMessageSize < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.InvalidationDelay < 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

// validate checks what the client needs to run: a usable endpoint and an
// organization.
func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.WSAddress) == "" ||
		cfg.Adapter.HandshakeTimeout <= 0 ||
		cfg.Adapter.WriteTimeout <= 0 ||
		cfg.Adapter.MaxMessageSize <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Sync.Org) == "" || cfg.Sync.InvalidationDelay <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
