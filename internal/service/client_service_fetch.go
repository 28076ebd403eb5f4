package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-docs-sync/internal/logger"
	"github.com/MKhiriev/go-docs-sync/models"
)

type viewFetcher struct {
	client ViewSyncClient
	logger *logger.Logger
}

// NewViewFetcher creates a [ViewFetcher] that drives client through a single
// connect/receive/teardown cycle per Fetch.
func NewViewFetcher(client ViewSyncClient, logger *logger.Logger) ViewFetcher {
	return &viewFetcher{client: client, logger: logger}
}

// Fetch implements [ViewFetcher]. It returns ctx.Err() if ctx is done before
// the view settles.
func (f *viewFetcher) Fetch(ctx context.Context, org, viewID string) (*models.ViewData, error) {
	// skip a snapshot left over from an earlier session
	select {
	case <-f.client.Updates():
	default:
	}

	if err := f.client.Connect(ctx, org, viewID); err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer f.client.Teardown()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case state := <-f.client.Updates():
			if state.Loading {
				continue
			}
			if state.HasError() {
				return nil, fmt.Errorf("%w: %s", ErrViewUnavailable, state.Error)
			}
			if state.HasData() {
				f.logger.Debug().
					Str("org", state.Data.Org).
					Str("view_id", state.Data.ViewID).
					Int("row_count", state.Data.RowCount).
					Msg("view fetched")
				return state.Data, nil
			}
		}
	}
}
