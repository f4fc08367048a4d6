package resolver

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	logger "github.com/sirupsen/logrus"

	"github.com/crosslock-io/swap-go/common"
	"github.com/crosslock-io/swap-go/escrowman"
	"github.com/crosslock-io/swap-go/state"
	"github.com/crosslock-io/swap-go/validator"
)

// Resolver executes swaps end to end: validate, create the chain-A
// escrow, pay out on chain B, wait for the secret acknowledgement and
// the withdrawal timelock, then reveal the secret and withdraw. Each
// swap runs on the goroutine that called ExecuteSwap; the registry and
// the per-order handles make status queries, approval and cancellation
// safe from other goroutines.
type Resolver struct {
	cfg      *Config
	escrow   EscrowLedger
	payer    CounterPayer
	registry *state.Registry
	swapDB   *state.SwapDB // nil disables persistence

	handles handleMap
}

func NewResolver(cfg *Config, escrow EscrowLedger, payer CounterPayer,
	registry *state.Registry, swapDB *state.SwapDB) *Resolver {
	return &Resolver{
		cfg:      cfg,
		escrow:   escrow,
		payer:    payer,
		registry: registry,
		swapDB:   swapDB,
	}
}

// LoadPersisted fills the registry from the swap database after a
// restart. In-flight swaps come back with their last persisted status;
// their secrets survive, so escrows created before the crash remain
// withdrawable or recoverable.
func (rs *Resolver) LoadPersisted() (int, error) {
	if rs.swapDB == nil {
		return 0, nil
	}

	records, err := rs.swapDB.LoadAll()
	if err != nil {
		return 0, err
	}
	for _, rec := range records {
		rs.registry.Upsert(rec)
	}

	logger.Infof("restored %d swap record(s) from the database", len(records))
	return len(records), nil
}

// ExecuteSwap runs the full protocol for one order. It blocks until the
// swap reaches a terminal state or the context is cancelled; run it on
// its own goroutine per order. The returned error mirrors the failure
// recorded on the swap record.
func (rs *Resolver) ExecuteSwap(ctx context.Context, order *SwapOrder) error {
	rec, handle, err := rs.admitSwap(order)
	if err != nil {
		return err
	}
	return rs.runSwap(ctx, order, rec, handle)
}

// SubmitSwap admits the order synchronously (validation and duplicate
// rejection happen before it returns) and executes the rest of the
// protocol on its own goroutine. The caller follows progress through
// GetSwapStatus. This is the entry point the HTTP surface uses.
func (rs *Resolver) SubmitSwap(order *SwapOrder) (string, error) {
	rec, handle, err := rs.admitSwap(order)
	if err != nil {
		return "", err
	}

	orderHex := rec.OrderHashHex()
	go func() {
		if err := rs.runSwap(context.Background(), order, rec, handle); err != nil {
			logger.WithField("orderHash", orderHex).Debugf("swap ended: %v", err)
		}
	}()
	return orderHex, nil
}

// admitSwap validates the order, claims its hash in the registry and
// generates the secret. No chain is touched yet.
func (rs *Resolver) admitSwap(order *SwapOrder) (*state.SwapRecord, *swapHandle, error) {
	orderHex := common.ByteSliceToPureHexStr(order.OrderHash[:])

	if err := rs.validateOrder(order); err != nil {
		logger.WithField("orderHash", orderHex).Warnf("order rejected: %v", err)
		return nil, nil, err
	}

	rec := &state.SwapRecord{
		OrderHash:       order.OrderHash,
		Status:          state.StatusInitiated,
		EthMaker:        order.EthMaker,
		XrplDestination: order.XrplDestination,
		EthAmount:       order.EthAmount,
		XrplAmount:      order.XrplAmount,
		SafetyDeposit:   order.SafetyDeposit,
		Timelocks:       order.Timelocks,
	}
	if err := rs.registry.Register(rec); err != nil {
		return nil, nil, err
	}

	handle := newSwapHandle()
	rs.handles.Store(orderHex, handle)

	// the secret never leaves this process before the reveal step
	rec.Secret = common.RandBytes32()
	rec.Hashlock = escrowman.ComputeHashlock(rec.Secret)
	rs.store(rec)

	return rec, handle, nil
}

func (rs *Resolver) runSwap(ctx context.Context, order *SwapOrder, rec *state.SwapRecord, handle *swapHandle) error {
	orderHex := rec.OrderHashHex()
	log := logger.WithField("orderHash", orderHex)

	// step 1: lock the resolver's capital on chain A
	escrowTx, err := rs.escrow.CreateEscrow(ctx, rs.escrowParams(order, rec.Hashlock))
	if err != nil {
		return rs.fail(log, rec, ErrKindEscrowCreation, err)
	}
	rec.Status = state.StatusEscrowCreated
	rec.EscrowTxHash = escrowTx
	rs.store(rec)

	// step 2: pay out on chain B. The record, secret included, is
	// already persisted: a crash from here on can still settle or
	// recover the escrow.
	payTx, err := rs.payer.SendPayment(ctx, order.XrplDestination, order.XrplAmount)
	if err != nil {
		log.Errorf("counter-payment failed with escrow %s locked; recover via cancellation after src_cancellation", rec.EscrowTxHash)
		return rs.fail(log, rec, ErrKindCounterPayment, err)
	}
	rec.Status = state.StatusCounterPaid
	rec.PaymentTxHash = payTx
	rs.store(rec)

	// step 3: the counterparty confirms it received the payment and is
	// ready for the reveal
	rec.Status = state.StatusAwaitingSecretAck
	rs.store(rec)
	if rs.cfg.DemoAutoApprove {
		go rs.autoApprove(orderHex)
	}
	if err := rs.awaitAck(ctx, handle); err != nil {
		if errors.Is(err, ErrSwapCancelled) {
			return err
		}
		return rs.fail(log, rec, ErrKindAckTimeout, err)
	}

	// step 4: wait out the withdrawal timelock plus a finality buffer
	rec.Status = state.StatusAwaitingTimelock
	rs.store(rec)
	wakeAt := time.Unix(order.Timelocks.SrcWithdrawal, 0).Add(rs.cfg.confirmBuffer())
	if err := rs.waitUntil(ctx, handle, wakeAt); err != nil {
		if errors.Is(err, ErrSwapCancelled) {
			return err
		}
		return rs.fail(log, rec, ErrKindWithdrawal, err)
	}

	// step 5: reveal the secret and withdraw
	return rs.settleWithdraw(ctx, log, handle, rec)
}

// settleWithdraw runs the withdrawal under the per-order settle mutex
// so it can never race a concurrent cancellation for the same order.
func (rs *Resolver) settleWithdraw(ctx context.Context, log *logger.Entry,
	handle *swapHandle, rec *state.SwapRecord) error {
	handle.settle.Lock()
	defer handle.settle.Unlock()

	if handle.cancelRequested() {
		return ErrSwapCancelled
	}

	withdrawTx, err := rs.escrow.Withdraw(ctx, rec.Secret, rec.OrderHash, rec.PaymentTxHash)
	if errors.Is(err, escrowman.ErrNotYetWithdrawable) {
		// one retry after re-waiting the buffer, in case the wall
		// clocks of the resolver and the chain disagree
		log.Warn("withdrawal attempted too early, retrying once")
		if werr := rs.waitUntil(ctx, handle, time.Now().Add(rs.cfg.confirmBuffer())); werr != nil {
			return rs.fail(log, rec, ErrKindWithdrawal, werr)
		}
		withdrawTx, err = rs.escrow.Withdraw(ctx, rec.Secret, rec.OrderHash, rec.PaymentTxHash)
	}

	switch {
	case err == nil:
		rec.WithdrawTxHash = withdrawTx
	case errors.Is(err, escrowman.ErrAlreadyCompleted):
		// idempotent-safe: the escrow settled through another path
		log.Warnf("withdrawal skipped: %v", err)
	case errors.Is(err, escrowman.ErrSecretMismatch):
		// the contract disagrees with our own hash; both legs are
		// committed and an operator has to reconcile by hand
		log.Errorf("secret mismatch on withdrawal, manual reconciliation required: %v", err)
		return rs.fail(log, rec, ErrKindWithdrawal, err)
	default:
		return rs.fail(log, rec, ErrKindWithdrawal, err)
	}

	rec.Status = state.StatusWithdrawn
	rs.store(rec)

	rec.Status = state.StatusCompleted
	rs.store(rec)
	log.WithFields(logger.Fields{
		"escrowTx":   rec.EscrowTxHash,
		"paymentTx":  rec.PaymentTxHash,
		"withdrawTx": rec.WithdrawTxHash,
	}).Info("swap completed")
	return nil
}

// ApproveSwap delivers the counterparty's secret acknowledgement,
// releasing the executor from its AwaitingSecretAck wait.
func (rs *Resolver) ApproveSwap(orderHashHex string) error {
	rec, ok := rs.registry.Get(orderHashHex)
	if !ok {
		return state.ErrSwapNotFound
	}
	if rec.Status.IsTerminal() || rec.Status == state.StatusWithdrawn {
		return ErrSwapTerminal
	}

	handle, ok := rs.handles.Load(orderHashHex)
	if !ok {
		return fmt.Errorf("%w: no executor for %s", state.ErrSwapNotFound, orderHashHex)
	}
	handle.approve()
	return nil
}

// CancelSwap aborts a swap and refunds the escrow. Safe to call at any
// time: a settled swap is a no-op rejection, a waiting executor is
// interrupted, and a too-early ledger rejection comes back as
// escrowman.ErrNotYetCancellable for the caller to retry.
func (rs *Resolver) CancelSwap(ctx context.Context, orderHashHex string) error {
	rec, ok := rs.registry.Get(orderHashHex)
	if !ok {
		return state.ErrSwapNotFound
	}
	if rec.Status.IsTerminal() || rec.Status == state.StatusWithdrawn {
		return ErrSwapTerminal
	}

	handle, ok := rs.handles.Load(orderHashHex)
	if !ok {
		// restarted process, no live executor; settle directly
		handle = newSwapHandle()
		rs.handles.Store(orderHashHex, handle)
	}
	handle.requestCancel()

	handle.settle.Lock()
	defer handle.settle.Unlock()

	// the executor may have settled while we waited for the mutex
	rec, _ = rs.registry.Get(orderHashHex)
	if rec.Status.IsTerminal() || rec.Status == state.StatusWithdrawn {
		return ErrSwapTerminal
	}

	log := logger.WithField("orderHash", orderHashHex)
	cancelTx, err := rs.escrow.Cancel(ctx, rec.OrderHash)
	if err != nil {
		if errors.Is(err, escrowman.ErrNotYetCancellable) {
			log.Warnf("cancellation too early, retry after src_cancellation: %v", err)
			return err
		}
		return rs.fail(log, rec, ErrKindCancellation, err)
	}

	rec.CancelTxHash = cancelTx
	rec.Status = state.StatusCancelled
	rs.store(rec)
	log.WithField("cancelTx", cancelTx).Info("swap cancelled")
	return nil
}

// RecoverEscrow retries the refund of a failed swap's escrow. This is
// the recovery procedure for counter-payment and acknowledgement
// failures, where the resolver's collateral stays locked on chain A
// until src_cancellation elapses.
func (rs *Resolver) RecoverEscrow(ctx context.Context, orderHashHex string) error {
	rec, ok := rs.registry.Get(orderHashHex)
	if !ok {
		return state.ErrSwapNotFound
	}
	if rec.Status != state.StatusFailed || rec.EscrowTxHash == "" || rec.CancelTxHash != "" {
		return ErrNotRecoverable
	}

	handle, ok := rs.handles.Load(orderHashHex)
	if !ok {
		handle = newSwapHandle()
		rs.handles.Store(orderHashHex, handle)
	}
	handle.settle.Lock()
	defer handle.settle.Unlock()

	log := logger.WithField("orderHash", orderHashHex)
	cancelTx, err := rs.escrow.Cancel(ctx, rec.OrderHash)
	if err != nil {
		log.Warnf("escrow recovery attempt failed: %v", err)
		return err
	}

	rec.CancelTxHash = cancelTx
	rs.store(rec)
	log.WithField("cancelTx", cancelTx).Info("escrow recovered")
	return nil
}

// GetSwapStatus returns a snapshot of the swap record.
func (rs *Resolver) GetSwapStatus(orderHashHex string) (*state.SwapRecord, error) {
	rec, ok := rs.registry.Get(orderHashHex)
	if !ok {
		return nil, state.ErrSwapNotFound
	}
	return rec, nil
}

// ListSwaps returns snapshots of every known swap, oldest first.
func (rs *Resolver) ListSwaps() []*state.SwapRecord {
	return rs.registry.List()
}

// CounterBalance is the resolver's spendable issued-currency balance on
// chain B. "0" on any lookup failure.
func (rs *Resolver) CounterBalance(ctx context.Context) string {
	return rs.payer.CheckBalance(ctx, rs.payer.Account())
}

func (rs *Resolver) validateOrder(order *SwapOrder) error {
	if !validator.ValidateAddresses(order.EthMaker, order.XrplDestination) {
		return fmt.Errorf("%w: malformed address", ErrInvalidOrder)
	}
	if !validator.ValidateAmounts(order.EthAmount, order.XrplAmount, rs.cfg.MinAmount, rs.cfg.MaxAmount) {
		return fmt.Errorf("%w: amounts out of range or spread too wide", ErrInvalidOrder)
	}
	if !validator.ValidateTimelocks(order.Timelocks, 0) {
		return fmt.Errorf("%w: timelocks not in the future or badly ordered", ErrInvalidOrder)
	}
	return nil
}

func (rs *Resolver) escrowParams(order *SwapOrder, hashlock [32]byte) *escrowman.EscrowParams {
	return &escrowman.EscrowParams{
		OrderHash:       order.OrderHash,
		Hashlock:        hashlock,
		Maker:           ethcommon.HexToAddress(order.EthMaker),
		Taker:           rs.escrow.Account(),
		XrplDestination: order.XrplDestination,
		UsdcToken:       rs.cfg.UsdcToken,
		Amount:          big.NewInt(order.EthAmount),
		SafetyDeposit:   big.NewInt(order.SafetyDeposit),
		XrplCurrency:    rs.cfg.XrplCurrency,
		XrplIssuer:      rs.cfg.XrplIssuer,
		XrplAmount:      order.XrplAmount,
		Timelocks:       order.Timelocks,
	}
}

func (rs *Resolver) awaitAck(ctx context.Context, handle *swapHandle) error {
	timer := time.NewTimer(rs.cfg.ackTimeout())
	defer timer.Stop()

	select {
	case <-handle.ack:
		return nil
	case <-handle.cancel:
		return ErrSwapCancelled
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return ErrAckTimeout
	}
}

// waitUntil sleeps until deadline, a cancellation request or context
// expiry, whichever comes first.
func (rs *Resolver) waitUntil(ctx context.Context, handle *swapHandle, deadline time.Time) error {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return nil
	}

	timer := time.NewTimer(remaining)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-handle.cancel:
		return ErrSwapCancelled
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (rs *Resolver) autoApprove(orderHashHex string) {
	if rs.cfg.DemoApproveDelay > 0 {
		time.Sleep(rs.cfg.DemoApproveDelay)
	}
	if err := rs.ApproveSwap(orderHashHex); err != nil {
		logger.Debugf("auto-approve of %s skipped: %v", orderHashHex, err)
	}
}

// fail moves the record to its failed terminal state, recording which
// step broke, and returns the original error.
func (rs *Resolver) fail(log *logger.Entry, rec *state.SwapRecord, kind string, err error) error {
	rec.Status = state.StatusFailed
	rec.ErrorKind = kind
	rec.ErrorMsg = err.Error()
	rs.store(rec)

	log.WithField("errorKind", kind).Errorf("swap failed: %v", err)
	return err
}

// store updates the registry and, when configured, the database. A
// write that would drag an already-terminal record back to a live
// status is dropped: the executor may hold a stale view after losing a
// settle race against cancellation. A persistence failure is logged,
// not fatal: the in-memory registry stays authoritative for the
// running process.
func (rs *Resolver) store(rec *state.SwapRecord) {
	if !rs.registry.UpsertIfActive(rec) {
		logger.Debugf("dropping stale update for settled swap %s", rec.OrderHashHex())
		return
	}
	if rs.swapDB == nil {
		return
	}
	if err := rs.swapDB.Upsert(rec); err != nil {
		logger.Warnf("could not persist swap %s: %v", rec.OrderHashHex(), err)
	}
}
