// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Client defines the lifecycle contract of the runnable client application.
type Client interface {
	// Run starts the client and blocks until it exits.
	Run() error
}

var _ Client = (*App)(nil)
