package state

import (
	"testing"
	"time"

	"github.com/rewined/labelgrid/internal/catalog"
)

func TestStore_StartsUnloaded(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	if snap.Loaded() {
		t.Fatalf("Loaded() = true before any update")
	}
	if len(snap.Products) != 0 {
		t.Fatalf("Products = %v before any update, want empty", snap.Products)
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Update([]catalog.Product{{SKU: "A"}, {SKU: "B"}}, SourceRemote)

	snap := s.Snapshot()
	if !snap.Loaded() || snap.Source != SourceRemote {
		t.Fatalf("snapshot source = %v, want SourceRemote", snap.Source)
	}
	if len(snap.Products) != 2 || snap.Products[0].SKU != "A" {
		t.Fatalf("snapshot products = %v, want A and B", snap.Products)
	}
	if snap.LoadedAt.Before(before) {
		t.Fatalf("LoadedAt = %v, want >= %v", snap.LoadedAt, before)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Products[0].SKU = "mutated"
	snap2 := s.Snapshot()
	if snap2.Products[0].SKU != "A" {
		t.Fatalf("Snapshot should clone products; got %q want A", snap2.Products[0].SKU)
	}
}

func TestStore_FallbackSource(t *testing.T) {
	var s Store
	s.Update(catalog.Fallback(), SourceFallback)

	snap := s.Snapshot()
	if snap.Source != SourceFallback {
		t.Fatalf("Source = %v, want SourceFallback", snap.Source)
	}
	if !snap.Loaded() {
		t.Fatalf("Loaded() = false after fallback update")
	}
}
