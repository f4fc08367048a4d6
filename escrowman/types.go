package escrowman

import (
	"errors"
	"math/big"

	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/crosslock-io/swap-go/contracts/UsdcEscrow"
	"github.com/crosslock-io/swap-go/state"
)

var (
	// escrow creation failed or was not confirmed; no funds at risk
	// beyond gas already spent
	ErrEscrowCreation = errors.New("escrow creation failed")

	// generic withdrawal/cancellation failures
	ErrWithdrawal   = errors.New("escrow withdrawal failed")
	ErrCancellation = errors.New("escrow cancellation failed")

	// the contract re-verifies hash(secret) == hashlock; a mismatch here
	// means the coordinator computed the wrong hash (programming defect)
	ErrSecretMismatch = errors.New("secret does not match hashlock")

	// timing errors, retryable once the respective timelock elapses
	ErrNotYetWithdrawable = errors.New("withdrawal timelock has not elapsed")
	ErrNotYetCancellable  = errors.New("cancellation timelock has not elapsed")

	// idempotent-safe: the escrow already reached its terminal state
	ErrAlreadyCompleted = errors.New("escrow already completed")

	// a mined-receipt wait exceeded ConfirmTimeout
	ErrConfirmTimeout = errors.New("timed out waiting for confirmation")
)

// EscrowParams are the real params to call the escrow contract's
// createEscrow().
type EscrowParams struct {
	OrderHash       [32]byte
	Hashlock        [32]byte
	Maker           ethcommon.Address // user on chain A
	Taker           ethcommon.Address // resolver account
	XrplDestination string            // user on chain B
	UsdcToken       ethcommon.Address
	Amount          *big.Int // base units, 6 decimals
	SafetyDeposit   *big.Int // native units, sent as tx value
	XrplCurrency    string
	XrplIssuer      string
	XrplAmount      string // decimal string, e.g. "99.000000"
	Timelocks       state.Timelocks
}

func (p *EscrowParams) toBinding() UsdcEscrow.UsdcEscrowEscrowParams {
	return UsdcEscrow.UsdcEscrowEscrowParams{
		OrderHash:       p.OrderHash,
		Hashlock:        p.Hashlock,
		Maker:           p.Maker,
		Taker:           p.Taker,
		XrplDestination: p.XrplDestination,
		UsdcToken:       p.UsdcToken,
		Amount:          p.Amount,
		SafetyDeposit:   p.SafetyDeposit,
		XrplCurrency:    p.XrplCurrency,
		XrplIssuer:      p.XrplIssuer,
		XrplAmount:      p.XrplAmount,
		Timelocks: UsdcEscrow.UsdcEscrowTimelocks{
			SrcWithdrawal:   big.NewInt(p.Timelocks.SrcWithdrawal),
			SrcCancellation: big.NewInt(p.Timelocks.SrcCancellation),
			DstWithdrawal:   big.NewInt(p.Timelocks.DstWithdrawal),
			DstCancellation: big.NewInt(p.Timelocks.DstCancellation),
		},
	}
}

// EscrowStatus is a read-only view of an on-chain escrow. A
// non-existent order hash yields Exists == false, never an error.
type EscrowStatus struct {
	Exists          bool
	Completed       bool
	Hashlock        [32]byte
	Maker           ethcommon.Address
	Taker           ethcommon.Address
	Amount          *big.Int
	XrplDestination string
	XrplAmount      string
	Timelocks       state.Timelocks
}

func escrowStatusFromBinding(e UsdcEscrow.UsdcEscrowEscrowParams, completed bool) *EscrowStatus {
	return &EscrowStatus{
		Exists:          e.OrderHash != [32]byte{},
		Completed:       completed,
		Hashlock:        e.Hashlock,
		Maker:           e.Maker,
		Taker:           e.Taker,
		Amount:          e.Amount,
		XrplDestination: e.XrplDestination,
		XrplAmount:      e.XrplAmount,
		Timelocks: state.Timelocks{
			SrcWithdrawal:   bigToInt64(e.Timelocks.SrcWithdrawal),
			SrcCancellation: bigToInt64(e.Timelocks.SrcCancellation),
			DstWithdrawal:   bigToInt64(e.Timelocks.DstWithdrawal),
			DstCancellation: bigToInt64(e.Timelocks.DstCancellation),
		},
	}
}

func bigToInt64(b *big.Int) int64 {
	if b == nil {
		return 0
	}
	return b.Int64()
}
