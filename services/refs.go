package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// reference is one foreign id a write depends on.
type reference struct {
	entity string
	id     int64
	lookup func(ctx context.Context, id int64) error
}

func ref[T any](entity string, id int64, get func(context.Context, int64) (*T, error)) reference {
	return reference{
		entity: entity,
		id:     id,
		lookup: func(ctx context.Context, id int64) error {
			_, err := get(ctx, id)
			return err
		},
	}
}

// requireReferences resolves every reference concurrently and fails with a
// *MissingReferenceError for the first one that is absent. It must run before
// the write it guards.
func requireReferences(ctx context.Context, refs ...reference) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, r := range refs {
		g.Go(func() error {
			err := r.lookup(ctx, r.id)
			if errors.Is(err, ErrNotFound) {
				return &MissingReferenceError{Entity: r.entity, ID: r.id}
			}
			return err
		})
	}
	return g.Wait()
}
