// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-docs-sync/internal/adapter"
)

// ErrUserQuit is returned by Run when the user leaves the UI.
var ErrUserQuit = errors.New("user quit")

// isConnectivityError reports whether msg is a transport failure, as
// opposed to an error message sent by the service.
func isConnectivityError(msg string) bool {
	return msg == adapter.ErrConnection.Error() || msg == adapter.ErrNotConnected.Error()
}

func humanizeConnectionError(msg string) string {
	if isConnectivityError(msg) {
		return msg + " (docs view service unavailable, press r to reconnect)"
	}
	return msg
}
