package models

import "encoding/json"

// ViewData is a server-rendered view as received from the docs view service.
// It is replaced wholesale on every accepted response and never patched.
type ViewData struct {
	// Org is the organization the view was computed for.
	Org string `json:"org"`

	// ViewID identifies the view (e.g. "index", "coverage").
	ViewID string `json:"view_id"`

	// Title is the human-readable view title.
	Title string `json:"title"`

	// Data holds the view rows. Row shape depends on the view and is not
	// validated by the client.
	Data []json.RawMessage `json:"data"`

	// GeneratedAt is the server-side generation timestamp as sent on the wire.
	GeneratedAt string `json:"generated_at"`

	// RowCount is the server-reported number of rows. It should equal
	// len(Data) but is only used for display.
	RowCount int `json:"row_count"`

	// RequestID echoes the request the server answered, when present.
	RequestID string `json:"request_id,omitempty"`
}

// Clone returns a copy of v that does not share the row slice.
func (v *ViewData) Clone() *ViewData {
	if v == nil {
		return nil
	}

	c := *v
	if v.Data != nil {
		c.Data = make([]json.RawMessage, len(v.Data))
		copy(c.Data, v.Data)
	}
	return &c
}

// SyncState is the externally observable state of a view sync client.
type SyncState struct {
	// Data is the last accepted view, nil until the first response arrives.
	Data *ViewData

	// Loading is true while a request is outstanding. Data may still hold the
	// previous view while loading.
	Loading bool

	// Error holds the last surfaced error message, empty when there is none.
	Error string
}

// HasData reports whether a view has been received.
func (s SyncState) HasData() bool {
	return s.Data != nil
}

// HasError reports whether an error message is set.
func (s SyncState) HasError() bool {
	return s.Error != ""
}

// Clone returns a deep copy of s.
func (s SyncState) Clone() SyncState {
	return SyncState{Data: s.Data.Clone(), Loading: s.Loading, Error: s.Error}
}
