// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-docs-sync/models"
)

// ViewSyncClient keeps one docs view of one organization in sync with the
// docs view service over a single live transport.
//
// All operations are serialized through one event loop owned by the client,
// together with the transport events, so the observable state never sees two
// mutations at once.
type ViewSyncClient interface {
	// Connect opens a new transport for (org, viewID), closing the previous
	// one first. An empty viewID selects [models.DefaultViewID]. The error of
	// the previous session is cleared and Loading is set if no view has been
	// received yet. ctx bounds the dial only.
	// Returns [ErrEmptyOrg] if org is blank.
	Connect(ctx context.Context, org, viewID string) error

	// Refresh requests the current view again. When the transport is not
	// open it sets the state error, returns an error wrapping
	// adapter.ErrNotConnected and sends nothing. Otherwise it sends a
	// docs.view.request with a fresh request id and sets Loading, keeping
	// the previous data visible.
	Refresh() error

	// Teardown closes the transport and cancels a pending invalidation
	// refresh. It is idempotent and leaves the state untouched.
	Teardown()

	// State returns a snapshot of the observable state.
	State() models.SyncState

	// Updates delivers state snapshots after every change. The channel
	// holds only the latest undelivered snapshot.
	Updates() <-chan models.SyncState

	// OnSubscribed registers fn to be called, on its own goroutine, every
	// time the service acknowledges a subscription.
	OnSubscribed(fn func(org string))

	// Close tears the client down and stops its event loop. Further calls
	// return [ErrClientClosed].
	Close()
}

// ViewFetcher performs a single blocking view fetch.
type ViewFetcher interface {
	// Fetch connects, waits for the first settled state and returns the
	// received view. A server or connectivity error is returned wrapped in
	// [ErrViewUnavailable].
	Fetch(ctx context.Context, org, viewID string) (*models.ViewData, error)
}
