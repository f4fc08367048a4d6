package resolver

import (
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

type Config struct {
	// MinAmount/MaxAmount bound both swap legs, in 6-decimal base units
	MinAmount int64
	MaxAmount int64

	// ConfirmBuffer is added on top of the withdrawal timelock before
	// the secret is revealed, so the withdrawal never races a block that
	// is not final yet
	ConfirmBuffer time.Duration

	// AckTimeout bounds the wait for the counterparty's secret
	// acknowledgement; past it the swap fails and the escrow is left
	// for recovery
	AckTimeout time.Duration

	// DemoAutoApprove acknowledges the secret automatically after
	// DemoApproveDelay, standing in for the counterparty in demos
	DemoAutoApprove  bool
	DemoApproveDelay time.Duration

	// escrow parameters every swap shares
	UsdcToken    ethcommon.Address
	XrplCurrency string
	XrplIssuer   string
}

const (
	DefaultConfirmBuffer = 35 * time.Second
	DefaultAckTimeout    = 10 * time.Minute
)

func (cfg *Config) confirmBuffer() time.Duration {
	if cfg.ConfirmBuffer <= 0 {
		return DefaultConfirmBuffer
	}
	return cfg.ConfirmBuffer
}

func (cfg *Config) ackTimeout() time.Duration {
	if cfg.AckTimeout <= 0 {
		return DefaultAckTimeout
	}
	return cfg.AckTimeout
}
