package repository

import (
	"context"

	"github.com/bassista/go_unis/internal/university"
)

// Store is the persistence the repository synchronizes.
// *store.Manager[university.University] implements it.
type Store interface {
	ReplaceAll(ctx context.Context, records []university.University) error
	FetchAll(ctx context.Context) ([]university.University, error)
	DeleteAll(ctx context.Context) error
}

// Recorder receives sync outcomes. *metrics.Metrics implements it.
type Recorder interface {
	RecordFetch(operation, outcome string)
	RecordRequestError(origin string)
	SetCachedRecords(n int)
}

type noopRecorder struct{}

func (noopRecorder) RecordFetch(string, string) {}
func (noopRecorder) RecordRequestError(string)  {}
func (noopRecorder) SetCachedRecords(int)       {}
