package escrowman

import (
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

type Config struct {
	// URL is the URL of the Ethereum node
	URL string

	// EscrowContractAddress is the deployed escrow contract address
	EscrowContractAddress ethcommon.Address

	// UsdcTokenAddress is the USDC ERC-20 contract address
	UsdcTokenAddress ethcommon.Address

	// PrivateKey of the resolver (taker) account, hex with/without 0x
	PrivateKey string

	// ConfirmTimeout bounds every wait for a mined receipt
	ConfirmTimeout time.Duration
}

const DefaultConfirmTimeout = 5 * time.Minute

func (cfg *Config) confirmTimeout() time.Duration {
	if cfg.ConfirmTimeout <= 0 {
		return DefaultConfirmTimeout
	}
	return cfg.ConfirmTimeout
}
