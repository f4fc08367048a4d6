package state

import (
	"errors"
	"time"

	"github.com/crosslock-io/swap-go/common"
)

var (
	ErrSwapNotFound   = errors.New("swap not found")
	ErrSwapExists     = errors.New("swap already registered")
	ErrInsertSwap     = errors.New("failed to insert swap in swapdb")
	ErrUpdateSwap     = errors.New("failed to update swap in swapdb")
	ErrGetSwap        = errors.New("failed to get swap from swapdb")
	ErrSwapRowInvalid = errors.New("stored swap row is invalid")
)

// Timelocks is the four-timestamp set that makes the swap atomic.
// Unix seconds. The contract enforces them; the validator checks the
// ordering dstWithdrawal < srcWithdrawal < dstCancellation < srcCancellation
// before any escrow is created.
type Timelocks struct {
	SrcWithdrawal   int64 `json:"src_withdrawal"`
	SrcCancellation int64 `json:"src_cancellation"`
	DstWithdrawal   int64 `json:"dst_withdrawal"`
	DstCancellation int64 `json:"dst_cancellation"`
}

type SwapStatus string

const (
	StatusInitiated         SwapStatus = "initiated"
	StatusEscrowCreated     SwapStatus = "escrow_created"
	StatusCounterPaid       SwapStatus = "counter_paid"
	StatusAwaitingSecretAck SwapStatus = "awaiting_secret_ack"
	StatusAwaitingTimelock  SwapStatus = "awaiting_timelock"
	StatusWithdrawn         SwapStatus = "withdrawn"
	StatusCompleted         SwapStatus = "completed"
	StatusCancelled         SwapStatus = "cancelled"
	StatusFailed            SwapStatus = "failed"
)

func (s SwapStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusFailed:
		return true
	}
	return false
}

// SwapRecord is the full life cycle of one swap, keyed by order hash.
// Owned by the Registry; mutated only by the goroutine executing the
// swap. Everything handed to callers is a deep copy.
type SwapRecord struct {
	OrderHash [32]byte
	Status    SwapStatus

	// order intent
	EthMaker        string // chain-A identity of the user (maker)
	XrplDestination string // chain-B identity of the user
	EthAmount       int64  // base units, 6 decimals
	XrplAmount      string // decimal string, e.g. "99.000000"
	SafetyDeposit   int64  // native units posted by the taker
	Timelocks       Timelocks

	// populated once the swap starts executing
	Secret   [32]byte
	Hashlock [32]byte

	// per-step confirmation references, empty before the step succeeds
	EscrowTxHash   string
	PaymentTxHash  string
	WithdrawTxHash string
	CancelTxHash   string

	// set when Status == failed
	ErrorKind string
	ErrorMsg  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *SwapRecord) OrderHashHex() string {
	return common.ByteSliceToPureHexStr(r.OrderHash[:])
}

// Clone deep-copies the record. SwapRecord holds only value types and
// strings, so a shallow copy is a deep copy.
func (r *SwapRecord) Clone() *SwapRecord {
	cp := *r
	return &cp
}
