package persist

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/awray/coasterlog/internal/store"
)

// writeTimeout bounds a single store write. The store is local (file or
// SQLite), so anything slower than this is effectively a failure.
const writeTimeout = 5 * time.Second

// writer serializes snapshot writes for a single key. At most one write is
// in flight; a snapshot submitted while another is pending replaces it, so
// the store always converges on the newest state (last-write-wins).
type writer struct {
	key string
	st  store.Store
	log *zap.Logger

	mu      sync.Mutex
	cond    *sync.Cond
	pending *string
	writing bool
	closed  bool
}

func newWriter(key string, st store.Store, log *zap.Logger) *writer {
	w := &writer{key: key, st: st, log: log}
	w.cond = sync.NewCond(&w.mu)
	return w
}

// submit queues a snapshot for writing, superseding any pending one.
// It never blocks on the store.
func (w *writer) submit(snapshot string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		w.log.Warn("snapshot submitted after close, dropping", zap.String("key", w.key))
		return
	}
	w.pending = &snapshot
	w.cond.Broadcast()
}

// run writes pending snapshots until stop. Write failures are logged and
// otherwise ignored; the in-memory state is authoritative.
func (w *writer) run() error {
	for {
		w.mu.Lock()
		for w.pending == nil && !w.closed {
			w.cond.Wait()
		}
		if w.pending == nil && w.closed {
			w.mu.Unlock()
			return nil
		}
		snapshot := *w.pending
		w.pending = nil
		w.writing = true
		w.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		if err := w.st.Set(ctx, w.key, snapshot); err != nil {
			w.log.Warn("failed to persist snapshot, keeping in-memory state",
				zap.String("key", w.key), zap.Error(err))
		}
		cancel()

		w.mu.Lock()
		w.writing = false
		w.cond.Broadcast()
		w.mu.Unlock()
	}
}

// flush blocks until no snapshot is pending or in flight.
func (w *writer) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for w.pending != nil || w.writing {
		w.cond.Wait()
	}
}

// stop lets run return once the final pending snapshot (if any) is written.
func (w *writer) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.cond.Broadcast()
}
