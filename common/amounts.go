package common

import (
	"fmt"
	"strconv"
	"strings"
)

// USDC is a 6-decimal fixed point token on both ledgers involved.
// The escrow side counts in base units (int), the issued-currency side
// counts in decimal strings (e.g. "99.000000").
const UsdcDecimals = 6

const usdcUnit = int64(1000000)

// UnitsToDecimalString converts base units to a decimal string with
// exactly 6 fractional digits. 100000000 -> "100.000000".
func UnitsToDecimalString(units int64) string {
	if units < 0 {
		return "-" + UnitsToDecimalString(-units)
	}
	return fmt.Sprintf("%d.%06d", units/usdcUnit, units%usdcUnit)
}

// DecimalStringToUnits converts a decimal string to base units.
// "99.000000" -> 99000000. At most 6 fractional digits are accepted.
// A string that does not parse as a non-negative decimal is an error
// (the caller decides whether that is a validation failure or a fault).
func DecimalStringToUnits(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount string")
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}
	if len(fracPart) > UsdcDecimals {
		return 0, fmt.Errorf("too many decimal places in %q", s)
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil || whole < 0 {
		return 0, fmt.Errorf("invalid amount string %q", s)
	}

	// right-pad the fraction to 6 digits
	fracPart = fracPart + strings.Repeat("0", UsdcDecimals-len(fracPart))
	frac := int64(0)
	if fracPart != "" {
		frac, err = strconv.ParseInt(fracPart, 10, 64)
		if err != nil || frac < 0 {
			return 0, fmt.Errorf("invalid amount string %q", s)
		}
	}

	return whole*usdcUnit + frac, nil
}
