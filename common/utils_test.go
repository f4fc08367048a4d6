package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexRoundTrip(t *testing.T) {
	b := RandBytes32()
	s := ByteSliceToPureHexStr(b[:])
	assert.Len(t, s, 64)
	assert.Equal(t, b, HexStrToBytes32(s))
	assert.Equal(t, b, HexStrToBytes32("0x"+s))
}

func TestTrimPrepend0x(t *testing.T) {
	assert.Equal(t, "abcd", Trim0xPrefix("0xabcd"))
	assert.Equal(t, "abcd", Trim0xPrefix("0Xabcd"))
	assert.Equal(t, "abcd", Trim0xPrefix("abcd"))
	assert.Equal(t, "0xabcd", Prepend0xPrefix("abcd"))
	assert.Equal(t, "0xabcd", Prepend0xPrefix("0xabcd"))
}

func TestRandBytes32Unique(t *testing.T) {
	a := RandBytes32()
	b := RandBytes32()
	assert.False(t, IsZeroBytes32(a))
	assert.NotEqual(t, a, b)
}
