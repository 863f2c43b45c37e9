// Package services orchestrates dataset replacement across the in-memory
// store and the AMQP report pipeline.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"mizaniya/internal/amqp"
	"mizaniya/internal/core"
	"mizaniya/internal/ingest"
	"mizaniya/internal/store"
)

const defaultReportType = "financial_summary"

// DatasetService computes the aggregate for an incoming dataset, swaps it
// into the store and asks the report worker for a narration of the new
// snapshot.
type DatasetService struct {
	store      *store.Store
	amqpClient *amqp.Client
}

func NewDatasetService(st *store.Store, amqpClient *amqp.Client) *DatasetService {
	return &DatasetService{
		store:      st,
		amqpClient: amqpClient,
	}
}

// ReplaceDataset computes the aggregate and installs the new snapshot. The
// previous dataset is discarded wholesale. Publishing the report request is
// best-effort: a dead broker never fails the upload.
func (s *DatasetService) ReplaceDataset(ctx context.Context, ds core.Dataset) (store.Snapshot, error) {
	agg := core.Compute(ds)
	snap := s.store.Replace(ds, agg)

	slog.InfoContext(ctx, "Dataset replaced",
		"version", snap.Version,
		"students", len(ds.Students),
		"salaries", len(ds.Salaries),
		"donors", len(ds.Donors),
		"expenses", len(ds.Expenses))

	if err := s.publishReportRequest(ctx, snap); err != nil {
		slog.ErrorContext(ctx, "Failed to publish report request",
			"version", snap.Version, "error", err)
		// Don't fail the upload - the snapshot is already installed
	}

	return snap, nil
}

// ReplaceFromSource fetches a dataset from an ingest source (Google Sheets,
// the canned sample) and installs it.
func (s *DatasetService) ReplaceFromSource(ctx context.Context, src ingest.Source) (store.Snapshot, error) {
	ds, err := src.Fetch(ctx)
	if err != nil {
		return store.Snapshot{}, fmt.Errorf("fetch dataset: %w", err)
	}
	return s.ReplaceDataset(ctx, ds)
}

// Current returns the latest snapshot.
func (s *DatasetService) Current() store.Snapshot {
	return s.store.Current()
}

func (s *DatasetService) publishReportRequest(ctx context.Context, snap store.Snapshot) error {
	if s.amqpClient == nil {
		slog.WarnContext(ctx, "AMQP client not available, skipping report request")
		return nil
	}

	summary := core.FormatSummary(snap.Aggregate)
	return s.amqpClient.PublishReportRequest(ctx, snap.Version, defaultReportType, summary)
}

// Close closes the AMQP connection if one was configured.
func (s *DatasetService) Close() error {
	if s.amqpClient != nil {
		if err := s.amqpClient.Close(); err != nil {
			return fmt.Errorf("close dataset service: amqp: %w", err)
		}
	}
	return nil
}
