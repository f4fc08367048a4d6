package escrowman

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	logger "github.com/sirupsen/logrus"

	"github.com/crosslock-io/swap-go/common"
	"github.com/crosslock-io/swap-go/contracts/UsdcEscrow"
)

type ethereumClient interface {
	ethereum.ChainReader
	ethereum.ChainStateReader
	ethereum.ContractCaller
	ethereum.GasEstimator
	ethereum.GasPricer
	ethereum.LogFilterer
	ethereum.TransactionReader
	ethereum.TransactionSender

	bind.DeployBackend
	bind.ContractBackend
}

// Escrowman is the chain-A side of the swap: it owns the resolver's
// account and drives the escrow contract (create/withdraw/cancel/get).
// It confirms every mutation by waiting for the mined receipt, so the
// coordinator never advances on a merely-submitted transaction.
type Escrowman struct {
	ethClient      ethereumClient
	cfg            *Config
	auth           *bind.TransactOpts
	escrowContract *UsdcEscrow.UsdcEscrow
	usdcContract   *bind.BoundContract
}

func NewEscrowman(cfg *Config) (*Escrowman, error) {
	ethClient, err := ethclient.Dial(cfg.URL)
	if err != nil {
		return nil, err
	}

	chainID, err := ethClient.ChainID(context.Background())
	if err != nil {
		return nil, err
	}

	sk, err := crypto.HexToECDSA(common.Trim0xPrefix(cfg.PrivateKey))
	if err != nil {
		return nil, err
	}

	auth, err := bind.NewKeyedTransactorWithChainID(sk, chainID)
	if err != nil {
		return nil, err
	}

	return &Escrowman{
		ethClient: ethClient,
		cfg:       cfg,
		auth:      auth,
	}, nil
}

// NewEscrowmanWithBackend hooks an existing backend and signer, used by
// the simulated chain in tests.
func NewEscrowmanWithBackend(client ethereumClient, auth *bind.TransactOpts, cfg *Config) *Escrowman {
	return &Escrowman{
		ethClient: client,
		cfg:       cfg,
		auth:      auth,
	}
}

// Account is the resolver (taker) address.
func (em *Escrowman) Account() ethcommon.Address {
	return em.auth.From
}

// CreateEscrow submits createEscrow() carrying the safety deposit as tx
// value and waits for the mined receipt. The contract pulls the
// principal via transferFrom, so the allowance is topped up first.
// Returns the tx hash of the confirmed creation.
func (em *Escrowman) CreateEscrow(ctx context.Context, p *EscrowParams) (string, error) {
	// zero token address means no ERC-20 leg is configured
	if em.cfg.UsdcTokenAddress != (ethcommon.Address{}) {
		if err := em.ensureAllowance(ctx, p.Amount); err != nil {
			return "", fmt.Errorf("%w: %v", ErrEscrowCreation, err)
		}
	}

	contract, err := em.getEscrowContract()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEscrowCreation, err)
	}

	opts := em.transactOpts(ctx)
	opts.Value = common.BigIntClone(p.SafetyDeposit)

	tx, err := contract.CreateEscrow(opts, p.toBinding())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEscrowCreation, err)
	}

	receipt, err := em.waitMined(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEscrowCreation, err)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return "", fmt.Errorf("%w: tx %s reverted", ErrEscrowCreation, tx.Hash().Hex())
	}

	logger.WithField("escrowTx", tx.Hash().Hex()).Info("escrow created")
	return tx.Hash().Hex(), nil
}

// Withdraw reveals the secret on chain A. The contract is the final
// authority on hashlock/taker/timelock checks; the pre-flight reads
// only exist to classify a doomed attempt before spending gas.
func (em *Escrowman) Withdraw(ctx context.Context, secret [32]byte, orderHash [32]byte, xrplTxHash string) (string, error) {
	st, err := em.GetEscrow(ctx, orderHash)
	if err == nil && st.Exists {
		if st.Completed {
			return "", ErrAlreadyCompleted
		}
		if ComputeHashlock(secret) != st.Hashlock {
			return "", ErrSecretMismatch
		}
		if time.Now().Unix() < st.Timelocks.SrcWithdrawal {
			return "", ErrNotYetWithdrawable
		}
	}

	contract, err := em.getEscrowContract()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWithdrawal, err)
	}

	tx, err := contract.Withdraw(em.transactOpts(ctx), secret, orderHash, xrplTxHash)
	if err != nil {
		return "", classify(err, ErrWithdrawal, ErrNotYetWithdrawable)
	}

	receipt, err := em.waitMined(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrWithdrawal, err)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return "", fmt.Errorf("%w: tx %s reverted", ErrWithdrawal, tx.Hash().Hex())
	}

	logger.WithField("withdrawTx", tx.Hash().Hex()).Info("escrow withdrawn")
	return tx.Hash().Hex(), nil
}

// Cancel refunds the escrow after src_cancellation. The contract
// enforces the timelock; a too-early attempt comes back as
// ErrNotYetCancellable for the caller to retry later.
func (em *Escrowman) Cancel(ctx context.Context, orderHash [32]byte) (string, error) {
	st, err := em.GetEscrow(ctx, orderHash)
	if err == nil && st.Exists {
		if st.Completed {
			return "", ErrAlreadyCompleted
		}
		if time.Now().Unix() < st.Timelocks.SrcCancellation {
			return "", ErrNotYetCancellable
		}
	}

	contract, err := em.getEscrowContract()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCancellation, err)
	}

	tx, err := contract.Cancel(em.transactOpts(ctx), orderHash)
	if err != nil {
		return "", classify(err, ErrCancellation, ErrNotYetCancellable)
	}

	receipt, err := em.waitMined(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCancellation, err)
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return "", fmt.Errorf("%w: tx %s reverted", ErrCancellation, tx.Hash().Hex())
	}

	logger.WithField("cancelTx", tx.Hash().Hex()).Info("escrow cancelled")
	return tx.Hash().Hex(), nil
}

// GetEscrow reads the stored escrow. A non-existent order hash returns
// Exists == false and a nil error; only transport failures error out.
func (em *Escrowman) GetEscrow(ctx context.Context, orderHash [32]byte) (*EscrowStatus, error) {
	contract, err := em.getEscrowContract()
	if err != nil {
		return nil, err
	}

	callOpts := &bind.CallOpts{Context: ctx}
	stored, err := contract.GetEscrow(callOpts, orderHash)
	if err != nil {
		return nil, err
	}
	if stored.OrderHash == [32]byte{} {
		return &EscrowStatus{Exists: false}, nil
	}

	completed, err := contract.IsCompleted(callOpts, orderHash)
	if err != nil {
		return nil, err
	}

	return escrowStatusFromBinding(stored, completed), nil
}

func (em *Escrowman) transactOpts(ctx context.Context) *bind.TransactOpts {
	opts := *em.auth
	opts.Context = ctx
	return &opts
}

func (em *Escrowman) waitMined(ctx context.Context, tx *ethtypes.Transaction) (*ethtypes.Receipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, em.cfg.confirmTimeout())
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, em.ethClient, tx)
	if waitCtx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("%w: tx %s", ErrConfirmTimeout, tx.Hash().Hex())
	}
	return receipt, err
}

func (em *Escrowman) getEscrowContract() (*UsdcEscrow.UsdcEscrow, error) {
	if em.escrowContract != nil {
		return em.escrowContract, nil
	}

	contract, err := UsdcEscrow.NewUsdcEscrow(em.cfg.EscrowContractAddress, em.ethClient)
	if err != nil {
		return nil, err
	}
	em.escrowContract = contract

	return contract, nil
}

// classify maps a revert reason onto the error taxonomy. The reason
// strings come from the contract's require() messages.
func classify(err error, generic, notYet error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "secret") || strings.Contains(msg, "hashlock"):
		return fmt.Errorf("%w: %v", ErrSecretMismatch, err)
	case strings.Contains(msg, "too early") || strings.Contains(msg, "timelock"):
		return fmt.Errorf("%w: %v", notYet, err)
	case strings.Contains(msg, "completed"):
		return fmt.Errorf("%w: %v", ErrAlreadyCompleted, err)
	default:
		return fmt.Errorf("%w: %v", generic, err)
	}
}
