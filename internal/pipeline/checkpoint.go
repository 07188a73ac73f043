package pipeline

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLastIrreversible when no block has
// been recorded yet.
var ErrNoCheckpointFound = errors.New("no checkpoint found")

// CheckpointStorage persists the number of the last irreversible block whose
// records were published, so a restarted process resumes right after it.
type CheckpointStorage interface {
	// SaveLastIrreversible overwrites the stored block number.
	SaveLastIrreversible(ctx context.Context, blockNum uint32) error

	// LoadLastIrreversible returns the stored block number, or
	// ErrNoCheckpointFound if nothing was saved yet.
	LoadLastIrreversible(ctx context.Context) (uint32, error)

	// ResetLastIrreversible deletes the stored block number. Resetting an
	// empty storage is not an error.
	ResetLastIrreversible(ctx context.Context) error
}

// nopCheckpoint is used when no storage is configured: nothing is persisted
// and every run starts from the feed's head or the configured start block.
type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveLastIrreversible(context.Context, uint32) error { return nil }

func (nopCheckpoint) LoadLastIrreversible(context.Context) (uint32, error) {
	return 0, ErrNoCheckpointFound
}

func (nopCheckpoint) ResetLastIrreversible(context.Context) error { return nil }
