package service

import (
	"errors"

	"github.com/MKhiriev/go-docs-sync/internal/adapter"
	"github.com/MKhiriev/go-docs-sync/internal/config"
	"github.com/MKhiriev/go-docs-sync/internal/logger"
)

// ClientServices groups the client-side services handed to the application
// and the terminal UI.
type ClientServices struct {
	ViewSync ViewSyncClient
	Fetcher  ViewFetcher
}

// NewClientServices wires a [ViewSyncClient] on top of dialer and a
// [ViewFetcher] sharing that client.
func NewClientServices(dialer adapter.Dialer, syncCfg config.ClientSync, logger *logger.Logger) (*ClientServices, error) {
	if dialer == nil {
		return nil, errors.New("nil dialer")
	}

	viewSync := NewViewSyncClient(dialer, syncCfg, logger)

	return &ClientServices{
		ViewSync: viewSync,
		Fetcher:  NewViewFetcher(viewSync, logger),
	}, nil
}

// Close releases the services' resources.
func (s *ClientServices) Close() {
	s.ViewSync.Close()
}
