package reconcile

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// RequiredModelsProvider lists the physical models a roster requires.
// Each physical model is reported with Amount 1 per count, Unit set to the
// owning unit's display name and Catalogue to the owning book's name.
type RequiredModelsProvider interface {
	RequiredModels(ctx context.Context, roster string) ([]RequiredModel, error)
}

// InventoryProvider lists the collector's owned items, in a stable order.
type InventoryProvider interface {
	OwnedItems(ctx context.Context) ([]OwnedItem, error)
}

// Load fetches both inputs of a reconciliation concurrently.
func Load(ctx context.Context, roster string, models RequiredModelsProvider, inventory InventoryProvider) ([]RequiredModel, []OwnedItem, error) {
	var (
		required []RequiredModel
		owned    []OwnedItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		required, err = models.RequiredModels(gctx, roster)
		if err != nil {
			return fmt.Errorf("failed to load required models: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		owned, err = inventory.OwnedItems(gctx)
		if err != nil {
			return fmt.Errorf("failed to load inventory: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return required, owned, nil
}

// ReconcileFrom loads the roster's required models and the inventory, then reconciles them.
func ReconcileFrom(ctx context.Context, roster string, models RequiredModelsProvider, inventory InventoryProvider) (*Report, error) {
	required, owned, err := Load(ctx, roster, models, inventory)
	if err != nil {
		return nil, err
	}
	return Reconcile(required, owned)
}
