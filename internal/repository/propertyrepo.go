// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/and161185/propledger/internal/model"
)

// MutateFunc receives the current property and returns the next state plus the
// event to append (nil for amendments), or an error that aborts the write.
type MutateFunc func(cur model.Property) (model.Mutation, error)

// PropertyRepository is the ownership store. Commit is the only way lifecycle
// state changes; readers get snapshots and never block writers.
type PropertyRepository interface {
	// Create inserts a new property.
	Create(ctx context.Context, p model.Property) error

	// Get returns a snapshot with full history.
	Get(ctx context.Context, id uuid.UUID) (*model.Property, error)

	// List returns snapshots matching f.
	List(ctx context.Context, f model.Filter) ([]model.Property, error)

	// History returns ledger entries for id in append order.
	History(ctx context.Context, id uuid.UUID, q model.HistoryQuery) ([]model.Event, error)

	// Commit applies fn atomically if the stored version equals expectedVer.
	// Returns errs.ErrVersionConflict on mismatch and errs.ErrNotFound if absent.
	Commit(ctx context.Context, id uuid.UUID, expectedVer int64, fn MutateFunc) (*model.Property, error)

	// IncrementViews bumps the view counter without version checks.
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)

	// ToggleFavorite flips user's membership and reports the new state.
	ToggleFavorite(ctx context.Context, id, user uuid.UUID) (bool, error)
}
