package database

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ezequielp19/sistema-ventas/models"
)

// Snapshot is one immutable view of a store's products. Consumers
// always replace their whole state with the latest snapshot; there are
// no partial diffs.
type Snapshot struct {
	Generation uint64
	Products   []models.Product
}

// Watcher polls a store's products and delivers snapshots over a
// single-producer, single-consumer channel. Every fetch is stamped
// with a generation token; a fetch that resolves after a newer one
// started is discarded, so a stale result is never delivered.
type Watcher struct {
	store    RecordStore
	storeID  string
	interval time.Duration
	log      zerolog.Logger

	gen atomic.Uint64
	out chan Snapshot

	mu   sync.Mutex
	last []models.Product
	sent bool
}

func NewWatcher(store RecordStore, storeID string, interval time.Duration, log zerolog.Logger) *Watcher {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Watcher{
		store:    store,
		storeID:  storeID,
		interval: interval,
		log:      log,
		out:      make(chan Snapshot, 1),
	}
}

// Snapshots is the consumer end. The channel carries only the latest
// snapshot: an unread one is replaced, never queued behind. The
// channel is not closed; consumers select on their context.
func (w *Watcher) Snapshots() <-chan Snapshot {
	return w.out
}

// Run polls until the context is cancelled. The first fetch happens
// immediately; Refresh can force one in between ticks.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.Refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

// Refresh starts a fetch for the current generation. Handlers call it
// after a write so connected clients see the change without waiting
// for the next tick.
func (w *Watcher) Refresh(ctx context.Context) {
	gen := w.gen.Add(1)
	go func() {
		products, err := w.store.Products(ctx, w.storeID)
		if err != nil {
			if ctx.Err() == nil {
				w.log.Warn().Str("store", w.storeID).Err(err).Msg("snapshot fetch failed")
			}
			return
		}
		w.publish(gen, products)
	}()
}

// publish delivers a fetched snapshot unless it is stale or identical
// to the last delivered one. An unread snapshot in the channel is
// replaced by the newer one.
func (w *Watcher) publish(gen uint64, products []models.Product) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.gen.Load() != gen {
		return // a newer fetch started while this one was in flight
	}
	if w.sent && reflect.DeepEqual(products, w.last) {
		return
	}
	w.last = products
	w.sent = true

	snap := Snapshot{Generation: gen, Products: products}
	for {
		select {
		case w.out <- snap:
			return
		default:
		}
		select {
		case <-w.out:
		default:
		}
	}
}
