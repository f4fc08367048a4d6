// Order validation that runs before any chain interaction, so a doomed
// swap never costs gas. Every check fails closed: malformed input is a
// plain false, not an error.

package validator

import (
	"strings"
	"time"

	ethcommon "github.com/ethereum/go-ethereum/common"
	logger "github.com/sirupsen/logrus"

	"github.com/crosslock-io/swap-go/common"
	"github.com/crosslock-io/swap-go/state"
)

const (
	// The two legs may differ by resolver fee/slippage, but not by more
	// than this fraction of the larger leg.
	AmountTolerance = 0.1

	// XRPL classic addresses are base58, 'r' prefix, 25 to 34 chars.
	xrplAddrMinLen = 25
	xrplAddrMaxLen = 34
)

// ValidateAddresses checks the canonical format of both identities:
// chain-A is a 0x-prefixed 20-byte hex address, chain-B is an r-prefixed
// classic address.
func ValidateAddresses(ethAddr, xrplAddr string) bool {
	ethValid := ethcommon.IsHexAddress(ethAddr) && strings.HasPrefix(ethAddr, "0x")
	if !ethValid {
		logger.Debugf("invalid eth address format: %s", ethAddr)
	}

	xrplValid := strings.HasPrefix(xrplAddr, "r") &&
		len(xrplAddr) >= xrplAddrMinLen && len(xrplAddr) <= xrplAddrMaxLen
	if !xrplValid {
		logger.Debugf("invalid xrpl address format: %s", xrplAddr)
	}

	return ethValid && xrplValid
}

// ValidateAmounts checks that both legs lie within [min, max] (base
// units) and that, normalized to the same unit, they differ by no more
// than AmountTolerance. A non-numeric xrpl amount string is a plain
// validation failure here, not a fault.
func ValidateAmounts(ethAmount int64, xrplAmount string, minAmount, maxAmount int64) bool {
	xrplUnits, err := common.DecimalStringToUnits(xrplAmount)
	if err != nil {
		logger.Debugf("unparsable xrpl amount %q: %v", xrplAmount, err)
		return false
	}

	if ethAmount < minAmount || xrplUnits < minAmount {
		logger.Debugf("amount too small: eth=%d xrpl=%d min=%d", ethAmount, xrplUnits, minAmount)
		return false
	}
	if ethAmount > maxAmount || xrplUnits > maxAmount {
		logger.Debugf("amount too large: eth=%d xrpl=%d max=%d", ethAmount, xrplUnits, maxAmount)
		return false
	}

	// relative spread against the larger leg
	diff := ethAmount - xrplUnits
	if diff < 0 {
		diff = -diff
	}
	larger := ethAmount
	if xrplUnits > larger {
		larger = xrplUnits
	}
	if float64(diff) > AmountTolerance*float64(larger) {
		logger.Debugf("amount spread too large: eth=%d xrpl=%d", ethAmount, xrplUnits)
		return false
	}

	return true
}

// ValidateTimelocks checks that every timestamp is strictly in the
// future and that the set satisfies the strict ordering
//
//	dstWithdrawal < srcWithdrawal < dstCancellation < srcCancellation
//
// The ordering is the safety invariant of the whole protocol: an
// inverted set lets one party cancel before the other can withdraw.
// now <= 0 means "use the wall clock".
func ValidateTimelocks(tl state.Timelocks, now int64) bool {
	if now <= 0 {
		now = time.Now().Unix()
	}

	stamps := []struct {
		name string
		ts   int64
	}{
		{"dst_withdrawal", tl.DstWithdrawal},
		{"src_withdrawal", tl.SrcWithdrawal},
		{"dst_cancellation", tl.DstCancellation},
		{"src_cancellation", tl.SrcCancellation},
	}

	for _, s := range stamps {
		if s.ts <= now {
			logger.Debugf("timelock %s is in the past: %d <= %d", s.name, s.ts, now)
			return false
		}
	}

	// stamps is already in required order; each must be strictly before the next
	for i := 0; i < len(stamps)-1; i++ {
		if stamps[i].ts >= stamps[i+1].ts {
			logger.Debugf("timelock order invalid: %s >= %s", stamps[i].name, stamps[i+1].name)
			return false
		}
	}

	return true
}
