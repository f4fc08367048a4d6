package escrowman

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	ethcommon "github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	logger "github.com/sirupsen/logrus"
)

// Minimal ERC-20 surface; the escrow contract pulls the principal via
// transferFrom, so the resolver has to approve it first.
const erc20ABI = `[
	{"constant":true,"inputs":[{"name":"_owner","type":"address"}],"name":"balanceOf","outputs":[{"name":"balance","type":"uint256"}],"type":"function"},
	{"constant":false,"inputs":[{"name":"_spender","type":"address"},{"name":"_value","type":"uint256"}],"name":"approve","outputs":[{"name":"","type":"bool"}],"type":"function"},
	{"constant":true,"inputs":[{"name":"_owner","type":"address"},{"name":"_spender","type":"address"}],"name":"allowance","outputs":[{"name":"","type":"uint256"}],"type":"function"}
]`

// UsdcBalanceOf returns the USDC balance of addr. A call failure yields
// zero, not an error: on test networks the token contract may simply
// not be there, and the swap path treats "no balance" the same way.
func (em *Escrowman) UsdcBalanceOf(ctx context.Context, addr ethcommon.Address) *big.Int {
	contract, err := em.getUsdcContract()
	if err != nil {
		logger.Warnf("could not bind usdc contract: %v", err)
		return big.NewInt(0)
	}

	var out []interface{}
	err = contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", addr)
	if err != nil || len(out) == 0 {
		logger.Warnf("could not check usdc balance: %v", err)
		return big.NewInt(0)
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
}

// UsdcApprove lets the escrow contract pull amount base units from the
// resolver account, then verifies the allowance actually took effect.
func (em *Escrowman) UsdcApprove(ctx context.Context, amount *big.Int) (string, error) {
	contract, err := em.getUsdcContract()
	if err != nil {
		return "", err
	}

	tx, err := contract.Transact(em.transactOpts(ctx), "approve", em.cfg.EscrowContractAddress, amount)
	if err != nil {
		return "", err
	}

	receipt, err := em.waitMined(ctx, tx)
	if err != nil {
		return "", err
	}
	if receipt.Status != ethtypes.ReceiptStatusSuccessful {
		return "", fmt.Errorf("approve tx %s reverted", tx.Hash().Hex())
	}

	allowance, err := em.UsdcAllowance(ctx, em.auth.From)
	if err != nil {
		return "", err
	}
	if allowance.Cmp(amount) < 0 {
		return "", fmt.Errorf("allowance verification failed: want %s, got %s", amount, allowance)
	}

	logger.WithField("approveTx", tx.Hash().Hex()).Info("usdc approved for escrow contract")
	return tx.Hash().Hex(), nil
}

// ensureAllowance tops up the escrow contract's allowance so the
// pending createEscrow can pull amount from the resolver account. An
// unreadable allowance falls through to an approve attempt; only a
// failed approval is fatal.
func (em *Escrowman) ensureAllowance(ctx context.Context, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return nil
	}

	allowance, err := em.UsdcAllowance(ctx, em.auth.From)
	if err == nil && allowance.Cmp(amount) >= 0 {
		return nil
	}
	if err != nil {
		logger.Warnf("could not read usdc allowance, approving anyway: %v", err)
	}

	_, err = em.UsdcApprove(ctx, amount)
	return err
}

func (em *Escrowman) UsdcAllowance(ctx context.Context, owner ethcommon.Address) (*big.Int, error) {
	contract, err := em.getUsdcContract()
	if err != nil {
		return nil, err
	}

	var out []interface{}
	err = contract.Call(&bind.CallOpts{Context: ctx}, &out, "allowance", owner, em.cfg.EscrowContractAddress)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (em *Escrowman) getUsdcContract() (*bind.BoundContract, error) {
	if em.usdcContract != nil {
		return em.usdcContract, nil
	}

	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, err
	}

	em.usdcContract = bind.NewBoundContract(
		em.cfg.UsdcTokenAddress, parsed, em.ethClient, em.ethClient, em.ethClient)

	return em.usdcContract, nil
}
