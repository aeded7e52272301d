package catalogcontroller

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/Ezequielp19/sistema-ventas/catalog"
	"github.com/Ezequielp19/sistema-ventas/database"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// feed fans one store's snapshot stream out to its websocket clients.
// The watcher is started with the first client and stopped with the
// last.
type feed struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	watcher *database.Watcher
	cancel  context.CancelFunc
}

// Hub owns one feed per store.
type Hub struct {
	store    database.RecordStore
	interval time.Duration
	log      zerolog.Logger

	mu    sync.Mutex
	feeds map[string]*feed
}

func NewHub(store database.RecordStore, interval time.Duration, log zerolog.Logger) *Hub {
	return &Hub{
		store:    store,
		interval: interval,
		log:      log,
		feeds:    make(map[string]*feed),
	}
}

// Refresh pushes a fresh snapshot to a store's live clients, if any
// are connected. Handlers call it after a write.
func (h *Hub) Refresh(ctx context.Context, storeID string) {
	h.mu.Lock()
	f := h.feeds[storeID]
	h.mu.Unlock()
	if f != nil {
		f.watcher.Refresh(ctx)
	}
}

// Live upgrades the connection and streams full catalog snapshots:
// every message replaces the client's whole view, there are no diffs.
func (h *Hub) Live() gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID := c.Param("storeId")

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		f := h.join(storeID, conn)
		defer h.leave(storeID, f, conn)

		// Reads only detect disconnects; the client sends nothing.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}

func (h *Hub) join(storeID string, conn *websocket.Conn) *feed {
	h.mu.Lock()
	defer h.mu.Unlock()

	f := h.feeds[storeID]
	if f == nil {
		ctx, cancel := context.WithCancel(context.Background())
		f = &feed{
			clients: make(map[*websocket.Conn]bool),
			watcher: database.NewWatcher(h.store, storeID, h.interval, h.log),
			cancel:  cancel,
		}
		h.feeds[storeID] = f
		go f.watcher.Run(ctx)
		go h.broadcast(ctx, storeID, f)
	}

	f.mu.Lock()
	f.clients[conn] = true
	f.mu.Unlock()
	return f
}

func (h *Hub) leave(storeID string, f *feed, conn *websocket.Conn) {
	conn.Close()

	f.mu.Lock()
	delete(f.clients, conn)
	empty := len(f.clients) == 0
	f.mu.Unlock()

	if empty {
		h.mu.Lock()
		if h.feeds[storeID] == f {
			delete(h.feeds, storeID)
		}
		h.mu.Unlock()
		f.cancel()
	}
}

// broadcast forwards each snapshot to every connected client as the
// public view: visible products with checkout links plus facets.
func (h *Hub) broadcast(ctx context.Context, storeID string, f *feed) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap := <-f.watcher.Snapshots():
			cfg, err := h.store.Config(ctx, storeID)
			if err != nil {
				h.log.Warn().Str("store", storeID).Err(err).Msg("live feed config fetch failed")
				continue
			}

			visible := catalog.FilterPublic(snap.Products, "", catalog.All)
			payload := gin.H{
				"items":      buildItems(visible, cfg.WhatsApp),
				"categories": catalog.Facets(snap.Products),
			}

			f.mu.Lock()
			for conn := range f.clients {
				if err := conn.WriteJSON(payload); err != nil {
					conn.Close()
					delete(f.clients, conn)
				}
			}
			f.mu.Unlock()
		}
	}
}
