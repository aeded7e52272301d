package database

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ezequielp19/sistema-ventas/models"
	"github.com/Ezequielp19/sistema-ventas/pricing"
)

// stubStore returns whatever products it currently holds.
type stubStore struct {
	mu       sync.Mutex
	products []models.Product
}

func (s *stubStore) set(products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func (s *stubStore) Products(ctx context.Context, storeID string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products, nil
}

func (s *stubStore) RawProduct(ctx context.Context, storeID, key string) (*models.RawProduct, error) {
	return nil, nil
}
func (s *stubStore) SaveProduct(ctx context.Context, storeID, key string, p models.RawProduct) error {
	return nil
}
func (s *stubStore) DeleteProduct(ctx context.Context, storeID, key string) error { return nil }
func (s *stubStore) ApplyPriceBatch(ctx context.Context, storeID string, updates []pricing.Update) error {
	return nil
}
func (s *stubStore) SetStock(ctx context.Context, storeID, key string, stock int) error { return nil }
func (s *stubStore) Config(ctx context.Context, storeID string) (models.StoreConfig, error) {
	return models.StoreConfig{}, nil
}
func (s *stubStore) SaveConfig(ctx context.Context, storeID string, cfg models.StoreConfig) error {
	return nil
}
func (s *stubStore) Suppliers(ctx context.Context, userID string) ([]models.Supplier, error) {
	return nil, nil
}
func (s *stubStore) SaveSupplier(ctx context.Context, userID, key string, sup models.Supplier) error {
	return nil
}
func (s *stubStore) DeleteSupplier(ctx context.Context, userID, key string) error { return nil }

func receive(t *testing.T, w *Watcher) Snapshot {
	t.Helper()
	select {
	case snap := <-w.Snapshots():
		return snap
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot delivered")
		return Snapshot{}
	}
}

func TestWatcherDeliversSnapshots(t *testing.T) {
	stub := &stubStore{products: []models.Product{{Key: "A", Stock: 1, Active: true}}}
	w := NewWatcher(stub, "store1", time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Refresh(ctx)
	snap := receive(t, w)
	if len(snap.Products) != 1 || snap.Products[0].Key != "A" {
		t.Fatalf("snapshot = %+v, want product A", snap.Products)
	}

	stub.set([]models.Product{{Key: "A", Stock: 1, Active: true}, {Key: "B", Stock: 2, Active: true}})
	w.Refresh(ctx)
	snap = receive(t, w)
	if len(snap.Products) != 2 {
		t.Fatalf("snapshot after change has %d products, want 2", len(snap.Products))
	}
}

func TestWatcherSkipsUnchangedSnapshots(t *testing.T) {
	stub := &stubStore{products: []models.Product{{Key: "A", Stock: 1, Active: true}}}
	w := NewWatcher(stub, "store1", time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w.Refresh(ctx)
	receive(t, w)

	w.Refresh(ctx)
	select {
	case snap := <-w.Snapshots():
		t.Fatalf("identical snapshot delivered again: %+v", snap)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherDropsStaleGenerations(t *testing.T) {
	w := NewWatcher(&stubStore{}, "store1", time.Hour, zerolog.Nop())

	older := w.gen.Add(1)
	newer := w.gen.Add(1)

	// A fetch from the older generation resolves late: it must be
	// dropped so a newer view is never overwritten by a stale one.
	w.publish(older, []models.Product{{Key: "stale"}})
	select {
	case snap := <-w.Snapshots():
		t.Fatalf("stale snapshot delivered: %+v", snap)
	case <-time.After(50 * time.Millisecond):
	}

	w.publish(newer, []models.Product{{Key: "fresh"}})
	snap := receive(t, w)
	if snap.Products[0].Key != "fresh" {
		t.Fatalf("snapshot = %+v, want the fresh fetch", snap.Products)
	}
}

func TestWatcherKeepsOnlyLatestUnread(t *testing.T) {
	w := NewWatcher(&stubStore{}, "store1", time.Hour, zerolog.Nop())

	first := w.gen.Add(1)
	w.publish(first, []models.Product{{Key: "one"}})
	second := w.gen.Add(1)
	w.publish(second, []models.Product{{Key: "two"}})

	snap := receive(t, w)
	if snap.Products[0].Key != "two" {
		t.Fatalf("got %q, want the unread snapshot replaced by the latest", snap.Products[0].Key)
	}
}
