package resolver

import (
	"context"
	"errors"
	"sync"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/crosslock-io/swap-go/escrowman"
	"github.com/crosslock-io/swap-go/state"
)

var (
	// order failed validation; nothing was sent to either chain
	ErrInvalidOrder = errors.New("invalid swap order")

	// the swap already reached a terminal or withdrawn state
	ErrSwapTerminal = errors.New("swap already settled")

	// the swap was cancelled while its executor was waiting
	ErrSwapCancelled = errors.New("swap cancelled")

	// the counterparty never acknowledged the secret
	ErrAckTimeout = errors.New("secret acknowledgement timed out")

	// the swap is not in a state RecoverEscrow can act on
	ErrNotRecoverable = errors.New("swap does not need escrow recovery")
)

// Error kinds stored on a failed SwapRecord. They name the step that
// broke, which decides the recovery procedure.
const (
	ErrKindEscrowCreation = "escrow_creation"
	ErrKindCounterPayment = "counter_payment"
	ErrKindAckTimeout     = "ack_timeout"
	ErrKindWithdrawal     = "withdrawal"
	ErrKindCancellation   = "cancellation"
)

// SwapOrder is the caller-supplied intent. The order hash must be
// globally unique per attempt.
type SwapOrder struct {
	OrderHash       [32]byte        `json:"order_hash"`
	EthMaker        string          `json:"eth_maker"`
	XrplDestination string          `json:"xrpl_destination"`
	EthAmount       int64           `json:"eth_amount"`
	XrplAmount      string          `json:"xrpl_amount"`
	SafetyDeposit   int64           `json:"safety_deposit"`
	Timelocks       state.Timelocks `json:"timelocks"`
}

// EscrowLedger is the chain-A collaborator. escrowman.Escrowman is the
// production implementation; tests substitute mocks.
type EscrowLedger interface {
	Account() ethcommon.Address
	CreateEscrow(ctx context.Context, p *escrowman.EscrowParams) (string, error)
	Withdraw(ctx context.Context, secret [32]byte, orderHash [32]byte, paymentRef string) (string, error)
	Cancel(ctx context.Context, orderHash [32]byte) (string, error)
	GetEscrow(ctx context.Context, orderHash [32]byte) (*escrowman.EscrowStatus, error)
}

// CounterPayer is the chain-B collaborator, implemented by
// xrplman.Xrplman.
type CounterPayer interface {
	Account() string
	SendPayment(ctx context.Context, destination, amount string) (string, error)
	CheckBalance(ctx context.Context, account string) string
}

// swapHandle carries the per-order coordination primitives. The settle
// mutex guarantees at most one withdrawal or cancellation attempt is in
// flight for the order at any time.
type swapHandle struct {
	ack        chan struct{}
	cancel     chan struct{}
	ackOnce    sync.Once
	cancelOnce sync.Once
	settle     sync.Mutex
}

func newSwapHandle() *swapHandle {
	return &swapHandle{
		ack:    make(chan struct{}),
		cancel: make(chan struct{}),
	}
}

func (h *swapHandle) approve() {
	h.ackOnce.Do(func() { close(h.ack) })
}

func (h *swapHandle) requestCancel() {
	h.cancelOnce.Do(func() { close(h.cancel) })
}

func (h *swapHandle) cancelRequested() bool {
	select {
	case <-h.cancel:
		return true
	default:
		return false
	}
}

// handleMap is a typed wrapper over sync.Map for per-order handles.
type handleMap struct {
	m sync.Map
}

func (hm *handleMap) Store(orderHashHex string, h *swapHandle) {
	hm.m.Store(orderHashHex, h)
}

func (hm *handleMap) Load(orderHashHex string) (*swapHandle, bool) {
	v, ok := hm.m.Load(orderHashHex)
	if !ok {
		return nil, false
	}
	return v.(*swapHandle), true
}
