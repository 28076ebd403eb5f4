package tui

import "github.com/MKhiriev/go-docs-sync/models"

// stateMsg carries a snapshot received from the view sync client.
type stateMsg struct {
	state models.SyncState
}

// updatesClosedMsg is sent when the client stopped delivering snapshots.
type updatesClosedMsg struct{}

type connectDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type copiedMsg struct {
	rows int
}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}

type subscribedMsg struct {
	org string
}
