package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitsToDecimalString(t *testing.T) {
	assert.Equal(t, "100.000000", UnitsToDecimalString(100000000))
	assert.Equal(t, "0.000001", UnitsToDecimalString(1))
	assert.Equal(t, "0.000000", UnitsToDecimalString(0))
	assert.Equal(t, "1.500000", UnitsToDecimalString(1500000))
}

func TestDecimalStringToUnits(t *testing.T) {
	cases := map[string]int64{
		"99.000000": 99000000,
		"99":        99000000,
		"0.5":       500000,
		".25":       250000,
		"100.0001":  100000100,
	}
	for in, want := range cases {
		got, err := DecimalStringToUnits(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestDecimalStringToUnitsBad(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "1.2.3", "1.0000001"} {
		_, err := DecimalStringToUnits(in)
		assert.Error(t, err, in)
	}
}

func TestAmountRoundTrip(t *testing.T) {
	units, err := DecimalStringToUnits(UnitsToDecimalString(123456789))
	assert.NoError(t, err)
	assert.Equal(t, int64(123456789), units)
}
