package app

import (
	"context"
	"log"

	"github.com/rewined/labelgrid/internal/catalog"
	"github.com/rewined/labelgrid/internal/state"
	"github.com/rewined/labelgrid/internal/toolkit"
)

// StartLoader launches the one-shot background catalog load and returns
// immediately. There is no retry and no refresh: a session loads its catalog
// exactly once, and any failure or empty result falls back to the seed list.
func StartLoader(ctx context.Context, store *state.Store, fetcher toolkit.ProductFetcher) {
	go func() {
		load(ctx, store, fetcher)
	}()
}

func load(ctx context.Context, store *state.Store, fetcher toolkit.ProductFetcher) {
	products, err := fetcher.FetchProducts(ctx)
	if err != nil {
		log.Printf("catalog load failed, using fallback: %v", err)
		store.Update(catalog.Fallback(), state.SourceFallback)
		return
	}
	if len(products) == 0 {
		store.Update(catalog.Fallback(), state.SourceFallback)
		return
	}
	store.Update(products, state.SourceRemote)
}
