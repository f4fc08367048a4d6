package resolver

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosslock-io/swap-go/common"
	"github.com/crosslock-io/swap-go/escrowman"
	"github.com/crosslock-io/swap-go/state"
)

const (
	testMaker       = "0x70997970C51812dc3A010C7d01b50e0d17dc79C8"
	testDestination = "rMakerAccount1111111111111111111"
)

// mockLedger is an in-memory chain-A escrow that always confirms.
type mockLedger struct {
	mu        sync.Mutex
	account   ethcommon.Address
	escrows   map[[32]byte]*escrowman.EscrowParams
	completed map[[32]byte]bool

	createErr        error
	cancelErr        error
	failWithdrawOnce atomic.Bool

	withdrawCalls atomic.Int32
	cancelCalls   atomic.Int32
}

func newMockLedger() *mockLedger {
	return &mockLedger{
		account:   ethcommon.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		escrows:   map[[32]byte]*escrowman.EscrowParams{},
		completed: map[[32]byte]bool{},
	}
}

func (m *mockLedger) Account() ethcommon.Address { return m.account }

func (m *mockLedger) CreateEscrow(_ context.Context, p *escrowman.EscrowParams) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.escrows[p.OrderHash] = p
	return "0xescrow" + common.ByteSliceToPureHexStr(p.OrderHash[:4]), nil
}

func (m *mockLedger) Withdraw(_ context.Context, secret [32]byte, orderHash [32]byte, _ string) (string, error) {
	m.withdrawCalls.Add(1)
	if m.failWithdrawOnce.CompareAndSwap(true, false) {
		return "", escrowman.ErrNotYetWithdrawable
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.escrows[orderHash]
	if !ok {
		return "", escrowman.ErrWithdrawal
	}
	if m.completed[orderHash] {
		return "", escrowman.ErrAlreadyCompleted
	}
	if escrowman.ComputeHashlock(secret) != p.Hashlock {
		return "", escrowman.ErrSecretMismatch
	}
	m.completed[orderHash] = true
	return "0xwithdraw" + common.ByteSliceToPureHexStr(orderHash[:4]), nil
}

func (m *mockLedger) Cancel(_ context.Context, orderHash [32]byte) (string, error) {
	m.cancelCalls.Add(1)
	if m.cancelErr != nil {
		return "", m.cancelErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.completed[orderHash] {
		return "", escrowman.ErrAlreadyCompleted
	}
	m.completed[orderHash] = true
	return "0xcancel" + common.ByteSliceToPureHexStr(orderHash[:4]), nil
}

func (m *mockLedger) GetEscrow(_ context.Context, orderHash [32]byte) (*escrowman.EscrowStatus, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.escrows[orderHash]
	if !ok {
		return &escrowman.EscrowStatus{Exists: false}, nil
	}
	return &escrowman.EscrowStatus{
		Exists:    true,
		Completed: m.completed[orderHash],
		Hashlock:  p.Hashlock,
		Timelocks: p.Timelocks,
	}, nil
}

// mockPayer is a chain-B payment rail that always succeeds unless told
// otherwise.
type mockPayer struct {
	sendErr   error
	balance   string
	sendCalls atomic.Int32
}

func (m *mockPayer) Account() string { return "rResolverAccount111111111111111" }

func (m *mockPayer) SendPayment(_ context.Context, destination, amount string) (string, error) {
	m.sendCalls.Add(1)
	if m.sendErr != nil {
		return "", m.sendErr
	}
	return fmt.Sprintf("PAYHASH%s%s", destination[:6], amount), nil
}

func (m *mockPayer) CheckBalance(context.Context, string) string {
	if m.balance == "" {
		return "1000.000000"
	}
	return m.balance
}

func testOrder(nonce byte) *SwapOrder {
	now := time.Now().Unix()
	var orderHash [32]byte
	orderHash[0] = nonce
	orderHash[31] = 0x5a
	return &SwapOrder{
		OrderHash:       orderHash,
		EthMaker:        testMaker,
		XrplDestination: testDestination,
		EthAmount:       100_000_000,
		XrplAmount:      "99.000000",
		SafetyDeposit:   1_000_000,
		Timelocks: state.Timelocks{
			DstWithdrawal:   now + 5,
			SrcWithdrawal:   now + 15,
			DstCancellation: now + 20,
			SrcCancellation: now + 30,
		},
	}
}

// fastOrder keeps the timelocks a few hundred milliseconds out so the
// full protocol runs quickly in tests.
func fastOrder(nonce byte) *SwapOrder {
	order := testOrder(nonce)
	now := time.Now().Unix()
	order.Timelocks = state.Timelocks{
		DstWithdrawal:   now + 1,
		SrcWithdrawal:   now + 2,
		DstCancellation: now + 3,
		SrcCancellation: now + 4,
	}
	return order
}

func getTestResolver(ledger EscrowLedger, payer CounterPayer) *Resolver {
	cfg := &Config{
		MinAmount:        1_000_000,
		MaxAmount:        1_000_000_000,
		ConfirmBuffer:    10 * time.Millisecond,
		AckTimeout:       5 * time.Second,
		DemoAutoApprove:  true,
		DemoApproveDelay: 10 * time.Millisecond,
		XrplCurrency:     "USD",
		XrplIssuer:       "rHuGNhqTG32mfmAvWA8hUyWRLV3tCSwKQt",
	}
	return NewResolver(cfg, ledger, payer, state.NewRegistry(), nil)
}

func TestExecuteSwapCompletes(t *testing.T) {
	ledger := newMockLedger()
	payer := &mockPayer{}
	rs := getTestResolver(ledger, payer)

	order := fastOrder(1)
	err := rs.ExecuteSwap(context.Background(), order)
	require.NoError(t, err)

	rec, err := rs.GetSwapStatus(common.ByteSliceToPureHexStr(order.OrderHash[:]))
	require.NoError(t, err)
	assert.Equal(t, state.StatusCompleted, rec.Status)
	assert.False(t, common.IsZeroBytes32(rec.Secret))
	assert.Equal(t, escrowman.ComputeHashlock(rec.Secret), rec.Hashlock)
	assert.NotEmpty(t, rec.EscrowTxHash)
	assert.NotEmpty(t, rec.PaymentTxHash)
	assert.NotEmpty(t, rec.WithdrawTxHash)
	assert.Empty(t, rec.CancelTxHash)
}

func TestExecuteSwapRejectsInvalidOrder(t *testing.T) {
	ledger := newMockLedger()
	payer := &mockPayer{}
	rs := getTestResolver(ledger, payer)

	// inverted timelock ordering must never reach a chain
	order := testOrder(2)
	order.Timelocks.SrcWithdrawal, order.Timelocks.DstWithdrawal =
		order.Timelocks.DstWithdrawal, order.Timelocks.SrcWithdrawal

	err := rs.ExecuteSwap(context.Background(), order)
	assert.ErrorIs(t, err, ErrInvalidOrder)
	assert.Empty(t, ledger.escrows)
	assert.Equal(t, int32(0), payer.sendCalls.Load())
	assert.Equal(t, 0, len(rs.ListSwaps()))
}

func TestExecuteSwapRejectsDuplicateOrderHash(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})

	order := fastOrder(3)
	require.NoError(t, rs.ExecuteSwap(context.Background(), order))

	err := rs.ExecuteSwap(context.Background(), testOrder(3))
	assert.ErrorIs(t, err, state.ErrSwapExists)
}

func TestExecuteSwapEscrowCreationFailure(t *testing.T) {
	ledger := newMockLedger()
	ledger.createErr = fmt.Errorf("%w: node unreachable", escrowman.ErrEscrowCreation)
	payer := &mockPayer{}
	rs := getTestResolver(ledger, payer)

	order := fastOrder(4)
	err := rs.ExecuteSwap(context.Background(), order)
	assert.ErrorIs(t, err, escrowman.ErrEscrowCreation)

	rec, _ := rs.GetSwapStatus(common.ByteSliceToPureHexStr(order.OrderHash[:]))
	assert.Equal(t, state.StatusFailed, rec.Status)
	assert.Equal(t, ErrKindEscrowCreation, rec.ErrorKind)
	assert.Equal(t, int32(0), payer.sendCalls.Load())
}

func TestExecuteSwapCounterPaymentFailure(t *testing.T) {
	ledger := newMockLedger()
	payer := &mockPayer{sendErr: errors.New("tecPATH_DRY")}
	rs := getTestResolver(ledger, payer)

	order := fastOrder(5)
	err := rs.ExecuteSwap(context.Background(), order)
	require.Error(t, err)

	// failed after escrow creation: no withdrawal may be attempted and
	// the record must point an operator at the recovery path
	orderHex := common.ByteSliceToPureHexStr(order.OrderHash[:])
	rec, _ := rs.GetSwapStatus(orderHex)
	assert.Equal(t, state.StatusFailed, rec.Status)
	assert.Equal(t, ErrKindCounterPayment, rec.ErrorKind)
	assert.NotEmpty(t, rec.EscrowTxHash)
	assert.Empty(t, rec.WithdrawTxHash)
	assert.Equal(t, int32(0), ledger.withdrawCalls.Load())

	// the locked escrow is recovered via cancellation
	require.NoError(t, rs.RecoverEscrow(context.Background(), orderHex))
	rec, _ = rs.GetSwapStatus(orderHex)
	assert.NotEmpty(t, rec.CancelTxHash)
}

func TestNoDoubleWithdrawal(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})

	order := fastOrder(6)
	require.NoError(t, rs.ExecuteSwap(context.Background(), order))

	_, err := ledger.Withdraw(context.Background(), [32]byte{}, order.OrderHash, "")
	assert.ErrorIs(t, err, escrowman.ErrAlreadyCompleted)
}

func TestWithdrawRetriesAfterNotYetWithdrawable(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})

	// first attempt too early, then the ledger accepts
	ledger.failWithdrawOnce.Store(true)

	order := fastOrder(7)
	rs.cfg.ConfirmBuffer = 100 * time.Millisecond
	require.NoError(t, rs.ExecuteSwap(context.Background(), order))
	assert.Equal(t, int32(2), ledger.withdrawCalls.Load())
}

func TestCancelSwapInterruptsTimelockWait(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})

	// long timelock so the executor parks in the timelock wait
	order := testOrder(8)
	order.Timelocks.SrcWithdrawal = time.Now().Unix() + 3600
	order.Timelocks.DstCancellation = order.Timelocks.SrcWithdrawal + 10
	order.Timelocks.SrcCancellation = order.Timelocks.SrcWithdrawal + 20
	orderHex := common.ByteSliceToPureHexStr(order.OrderHash[:])

	done := make(chan error, 1)
	go func() { done <- rs.ExecuteSwap(context.Background(), order) }()

	// wait until the executor reaches the timelock wait
	require.Eventually(t, func() bool {
		rec, err := rs.GetSwapStatus(orderHex)
		return err == nil && rec.Status == state.StatusAwaitingTimelock
	}, 5*time.Second, 5*time.Millisecond)

	require.NoError(t, rs.CancelSwap(context.Background(), orderHex))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrSwapCancelled)
	case <-time.After(time.Second):
		t.Fatal("executor did not return after cancellation")
	}

	rec, _ := rs.GetSwapStatus(orderHex)
	assert.Equal(t, state.StatusCancelled, rec.Status)
	assert.NotEmpty(t, rec.CancelTxHash)
	assert.Equal(t, int32(0), ledger.withdrawCalls.Load())
}

func TestCancelSwapRejectsSettledSwap(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})

	order := fastOrder(9)
	require.NoError(t, rs.ExecuteSwap(context.Background(), order))

	err := rs.CancelSwap(context.Background(), common.ByteSliceToPureHexStr(order.OrderHash[:]))
	assert.ErrorIs(t, err, ErrSwapTerminal)
	assert.Equal(t, int32(0), ledger.cancelCalls.Load())
}

func TestCancelSwapTooEarlyIsRetryable(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})

	order := testOrder(10)
	order.Timelocks.SrcWithdrawal = time.Now().Unix() + 3600
	order.Timelocks.DstCancellation = order.Timelocks.SrcWithdrawal + 10
	order.Timelocks.SrcCancellation = order.Timelocks.SrcWithdrawal + 20
	orderHex := common.ByteSliceToPureHexStr(order.OrderHash[:])

	done := make(chan error, 1)
	go func() { done <- rs.ExecuteSwap(context.Background(), order) }()
	require.Eventually(t, func() bool {
		rec, err := rs.GetSwapStatus(orderHex)
		return err == nil && rec.Status == state.StatusAwaitingTimelock
	}, 5*time.Second, 5*time.Millisecond)

	ledger.cancelErr = escrowman.ErrNotYetCancellable
	err := rs.CancelSwap(context.Background(), orderHex)
	assert.ErrorIs(t, err, escrowman.ErrNotYetCancellable)
	<-done

	// not failed, still cancellable once the timelock elapses
	rec, _ := rs.GetSwapStatus(orderHex)
	assert.False(t, rec.Status.IsTerminal())

	ledger.cancelErr = nil
	require.NoError(t, rs.CancelSwap(context.Background(), orderHex))
	rec, _ = rs.GetSwapStatus(orderHex)
	assert.Equal(t, state.StatusCancelled, rec.Status)
}

func TestAckTimeoutFailsSwap(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})
	rs.cfg.DemoAutoApprove = false
	rs.cfg.AckTimeout = 50 * time.Millisecond

	order := fastOrder(11)
	orderHex := common.ByteSliceToPureHexStr(order.OrderHash[:])
	err := rs.ExecuteSwap(context.Background(), order)
	assert.ErrorIs(t, err, ErrAckTimeout)

	rec, _ := rs.GetSwapStatus(orderHex)
	assert.Equal(t, state.StatusFailed, rec.Status)
	assert.Equal(t, ErrKindAckTimeout, rec.ErrorKind)
	assert.Equal(t, int32(0), ledger.withdrawCalls.Load())

	// the escrow stays recoverable
	require.NoError(t, rs.RecoverEscrow(context.Background(), orderHex))
}

func TestManualApproveReleasesAckWait(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})
	rs.cfg.DemoAutoApprove = false

	order := fastOrder(12)
	orderHex := common.ByteSliceToPureHexStr(order.OrderHash[:])

	done := make(chan error, 1)
	go func() { done <- rs.ExecuteSwap(context.Background(), order) }()
	require.Eventually(t, func() bool {
		rec, err := rs.GetSwapStatus(orderHex)
		return err == nil && rec.Status == state.StatusAwaitingSecretAck
	}, 5*time.Second, 5*time.Millisecond)

	require.NoError(t, rs.ApproveSwap(orderHex))
	require.NoError(t, <-done)

	rec, _ := rs.GetSwapStatus(orderHex)
	assert.Equal(t, state.StatusCompleted, rec.Status)
}

func TestGetSwapStatusIdempotent(t *testing.T) {
	rs := getTestResolver(newMockLedger(), &mockPayer{})

	order := fastOrder(13)
	require.NoError(t, rs.ExecuteSwap(context.Background(), order))

	orderHex := common.ByteSliceToPureHexStr(order.OrderHash[:])
	first, err := rs.GetSwapStatus(orderHex)
	require.NoError(t, err)
	second, err := rs.GetSwapStatus(orderHex)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// mutating a snapshot must not leak into the registry
	first.Status = state.StatusFailed
	third, _ := rs.GetSwapStatus(orderHex)
	assert.Equal(t, state.StatusCompleted, third.Status)
}

func TestCounterBalance(t *testing.T) {
	rs := getTestResolver(newMockLedger(), &mockPayer{balance: "42.500000"})
	assert.Equal(t, "42.500000", rs.CounterBalance(context.Background()))
}

func TestSubmitSwapRunsInBackground(t *testing.T) {
	rs := getTestResolver(newMockLedger(), &mockPayer{})

	order := fastOrder(14)
	orderHex, err := rs.SubmitSwap(order)
	require.NoError(t, err)
	assert.Equal(t, common.ByteSliceToPureHexStr(order.OrderHash[:]), orderHex)

	// admitted synchronously, settled asynchronously
	rec, err := rs.GetSwapStatus(orderHex)
	require.NoError(t, err)
	assert.False(t, rec.Status.IsTerminal())

	require.Eventually(t, func() bool {
		rec, err := rs.GetSwapStatus(orderHex)
		return err == nil && rec.Status == state.StatusCompleted
	}, 10*time.Second, 20*time.Millisecond)
}

func TestSubmitSwapRejectsSynchronously(t *testing.T) {
	ledger := newMockLedger()
	rs := getTestResolver(ledger, &mockPayer{})

	order := fastOrder(15)
	_, err := rs.SubmitSwap(order)
	require.NoError(t, err)

	_, err = rs.SubmitSwap(testOrder(15))
	assert.ErrorIs(t, err, state.ErrSwapExists)

	bad := testOrder(16)
	bad.EthMaker = "not-an-address"
	_, err = rs.SubmitSwap(bad)
	assert.ErrorIs(t, err, ErrInvalidOrder)
	_, err = rs.GetSwapStatus(common.ByteSliceToPureHexStr(bad.OrderHash[:]))
	assert.ErrorIs(t, err, state.ErrSwapNotFound)
}

func TestStoreKeepsSettledStatus(t *testing.T) {
	rs := getTestResolver(newMockLedger(), &mockPayer{})

	rec := &state.SwapRecord{
		OrderHash:    [32]byte{17},
		Status:       state.StatusCancelled,
		CancelTxHash: "0xcancel",
	}
	require.NoError(t, rs.registry.Register(rec))

	// an executor holding a stale view must not resurrect the swap
	stale := rec.Clone()
	stale.Status = state.StatusCounterPaid
	stale.CancelTxHash = ""
	rs.store(stale)

	got, err := rs.GetSwapStatus(rec.OrderHashHex())
	require.NoError(t, err)
	assert.Equal(t, state.StatusCancelled, got.Status)
	assert.Equal(t, "0xcancel", got.CancelTxHash)

	// recovery bookkeeping on a failed swap still lands
	rec.Status = state.StatusFailed
	rec.CancelTxHash = "0xrecovered"
	rs.store(rec)
	got, err = rs.GetSwapStatus(rec.OrderHashHex())
	require.NoError(t, err)
	assert.Equal(t, "0xrecovered", got.CancelTxHash)
}
