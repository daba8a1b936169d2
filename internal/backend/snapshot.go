package backend

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/maxwell903/maxandjacob-sub000/internal/model"
)

// Snapshot is the fridge and one grocery list fetched together.
type Snapshot struct {
	Fridge    []model.FridgeItem
	List      *model.GroceryList
	FetchedAt time.Time
}

// Snapshot fetches the fridge and the given list concurrently. Either
// failure fails the whole snapshot.
func (c *Client) Snapshot(ctx context.Context, listID int64) (*Snapshot, error) {
	g, ctx := errgroup.WithContext(ctx)

	var snap Snapshot
	g.Go(func() error {
		fridge, err := c.Fridge(ctx)
		snap.Fridge = fridge
		return err
	})
	g.Go(func() error {
		list, err := c.GroceryList(ctx, listID)
		snap.List = list
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap.FetchedAt = time.Now()
	return &snap, nil
}
