package state

import (
	"sort"
	"sync"
	"time"
)

// Registry is the single authoritative order_hash -> SwapRecord mapping.
// It is injected into the coordinator (no ambient global). Reads may run
// concurrently with writes to other keys; writes to the same key are
// serialized by the lock. Records are never evicted; they live until
// process restart.
type Registry struct {
	mu    sync.RWMutex
	swaps map[string]*SwapRecord
}

func NewRegistry() *Registry {
	return &Registry{
		swaps: make(map[string]*SwapRecord),
	}
}

// Register stores a brand-new record. Fails if the order hash is taken,
// since a duplicate order hash would make two swaps indistinguishable.
func (rg *Registry) Register(rec *SwapRecord) error {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	key := rec.OrderHashHex()
	if _, ok := rg.swaps[key]; ok {
		return ErrSwapExists
	}

	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	rg.swaps[key] = rec.Clone()
	return nil
}

// Upsert overwrites the stored record with a copy of rec.
func (rg *Registry) Upsert(rec *SwapRecord) {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	rec.UpdatedAt = time.Now()
	rg.swaps[rec.OrderHashHex()] = rec.Clone()
}

// UpsertIfActive overwrites the stored record unless it has already
// reached a terminal state and rec would move it back to a live one.
// The check and the write happen under one lock, so a coordinator step
// that lost a race against cancellation cannot resurrect the swap.
// Returns false when the write was refused.
func (rg *Registry) UpsertIfActive(rec *SwapRecord) bool {
	rg.mu.Lock()
	defer rg.mu.Unlock()

	key := rec.OrderHashHex()
	if cur, ok := rg.swaps[key]; ok && cur.Status.IsTerminal() && !rec.Status.IsTerminal() {
		return false
	}

	rec.UpdatedAt = time.Now()
	rg.swaps[key] = rec.Clone()
	return true
}

// Get returns a snapshot of the record. Mutating the returned value has
// no effect on the registry.
func (rg *Registry) Get(orderHashHex string) (*SwapRecord, bool) {
	rg.mu.RLock()
	defer rg.mu.RUnlock()

	rec, ok := rg.swaps[orderHashHex]
	if !ok {
		return nil, false
	}
	return rec.Clone(), true
}

// List returns snapshots of all records, oldest first.
func (rg *Registry) List() []*SwapRecord {
	rg.mu.RLock()
	defer rg.mu.RUnlock()

	out := make([]*SwapRecord, 0, len(rg.swaps))
	for _, rec := range rg.swaps {
		out = append(out, rec.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

func (rg *Registry) Len() int {
	rg.mu.RLock()
	defer rg.mu.RUnlock()
	return len(rg.swaps)
}
