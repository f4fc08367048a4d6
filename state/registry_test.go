package state

import (
	"fmt"
	"sync"
	"testing"

	"github.com/crosslock-io/swap-go/common"
	"github.com/stretchr/testify/assert"
)

func newTestRecord() *SwapRecord {
	return &SwapRecord{
		OrderHash:       common.RandBytes32(),
		Status:          StatusInitiated,
		EthMaker:        "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		XrplDestination: "rHuGNhqTG32mfmAvWA8hUyWRLV3tCSwKQt",
		EthAmount:       100000000,
		XrplAmount:      "99.000000",
		SafetyDeposit:   1000000,
		Timelocks: Timelocks{
			SrcWithdrawal:   1700000015,
			SrcCancellation: 1700000030,
			DstWithdrawal:   1700000005,
			DstCancellation: 1700000020,
		},
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	rg := NewRegistry()
	rec := newTestRecord()

	assert.NoError(t, rg.Register(rec))
	assert.ErrorIs(t, rg.Register(rec), ErrSwapExists)

	got, ok := rg.Get(rec.OrderHashHex())
	assert.True(t, ok)
	assert.Equal(t, rec.OrderHash, got.OrderHash)
	assert.Equal(t, StatusInitiated, got.Status)

	_, ok = rg.Get("deadbeef")
	assert.False(t, ok)
}

func TestRegistrySnapshotIsolation(t *testing.T) {
	rg := NewRegistry()
	rec := newTestRecord()
	assert.NoError(t, rg.Register(rec))

	// mutate the snapshot, the registry must not observe it
	snap, _ := rg.Get(rec.OrderHashHex())
	snap.Status = StatusFailed
	snap.EscrowTxHash = "0xmangled"

	again, _ := rg.Get(rec.OrderHashHex())
	assert.Equal(t, StatusInitiated, again.Status)
	assert.Empty(t, again.EscrowTxHash)
}

func TestRegistryIdempotentQuery(t *testing.T) {
	rg := NewRegistry()
	rec := newTestRecord()
	assert.NoError(t, rg.Register(rec))

	a, _ := rg.Get(rec.OrderHashHex())
	b, _ := rg.Get(rec.OrderHashHex())
	assert.Equal(t, a, b)
}

func TestRegistryUpsertAndList(t *testing.T) {
	rg := NewRegistry()
	rec := newTestRecord()
	assert.NoError(t, rg.Register(rec))

	rec.Status = StatusEscrowCreated
	rec.EscrowTxHash = "0xabc"
	rg.Upsert(rec)

	got, _ := rg.Get(rec.OrderHashHex())
	assert.Equal(t, StatusEscrowCreated, got.Status)
	assert.Equal(t, "0xabc", got.EscrowTxHash)

	other := newTestRecord()
	assert.NoError(t, rg.Register(other))
	assert.Equal(t, 2, rg.Len())
	assert.Len(t, rg.List(), 2)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	rg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := newTestRecord()
			rec.EthMaker = fmt.Sprintf("0x%040d", i)
			if err := rg.Register(rec); err != nil {
				t.Error(err)
				return
			}
			rec.Status = StatusCompleted
			rg.Upsert(rec)
			rg.List()
			rg.Get(rec.OrderHashHex())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 32, rg.Len())
	for _, rec := range rg.List() {
		assert.Equal(t, StatusCompleted, rec.Status)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
	assert.False(t, StatusInitiated.IsTerminal())
	assert.False(t, StatusAwaitingTimelock.IsTerminal())
	assert.False(t, StatusWithdrawn.IsTerminal())
}

func TestUpsertIfActive(t *testing.T) {
	rg := NewRegistry()
	rec := newTestRecord()
	assert.NoError(t, rg.Register(rec))

	// live -> live is a plain overwrite
	rec.Status = StatusAwaitingTimelock
	assert.True(t, rg.UpsertIfActive(rec))
	got, _ := rg.Get(rec.OrderHashHex())
	assert.Equal(t, StatusAwaitingTimelock, got.Status)

	// settle the swap
	rec.Status = StatusCancelled
	rec.CancelTxHash = "0xcancel"
	assert.True(t, rg.UpsertIfActive(rec))

	// a stale live update must not resurrect it
	stale := rec.Clone()
	stale.Status = StatusAwaitingTimelock
	stale.CancelTxHash = ""
	assert.False(t, rg.UpsertIfActive(stale))
	got, _ = rg.Get(rec.OrderHashHex())
	assert.Equal(t, StatusCancelled, got.Status)
	assert.Equal(t, "0xcancel", got.CancelTxHash)

	// terminal -> terminal still writes (recovery bookkeeping)
	rec.Status = StatusFailed
	assert.True(t, rg.UpsertIfActive(rec))
	got, _ = rg.Get(rec.OrderHashHex())
	assert.Equal(t, StatusFailed, got.Status)
}
