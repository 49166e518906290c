// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeCompactRoundTrip(t *testing.T) {
	cases := []uint32{
		0x1e0fffff,
		0x1d00ffff,
		0x03123456,
		0x04123456,
		0x05128456,
	}
	for _, bits := range cases {
		target, negative, overflow := DecodeCompact(bits)
		require.False(t, negative, "0x%08x", bits)
		require.False(t, overflow, "0x%08x", bits)
		require.Equal(t, bits, EncodeCompact(target), "0x%08x", bits)
	}
}

func TestDecodeCompactNegative(t *testing.T) {
	_, negative, _ := DecodeCompact(0x01800001)
	require.True(t, negative)
}

func TestDecodeCompactOverflow(t *testing.T) {
	_, _, overflow := DecodeCompact(0xff123456)
	require.True(t, overflow)
}

func TestDecodeCompactExponent33NotOverflow(t *testing.T) {
	// exponent 33, mantissa 1: within SetCompact's true overflow boundary
	// (nSize > 34), so this must decode to a valid 1<<240 target.
	target, negative, overflow := DecodeCompact(0x21000001)
	require.False(t, negative)
	require.False(t, overflow)
	want := new(big.Int).Lsh(big.NewInt(1), 240)
	require.Equal(t, 0, want.Cmp(target))
}

func TestWeightedTargetWidensRatherThanWraps(t *testing.T) {
	target, _, _ := DecodeCompact(0x1e0fffff)

	huge := int64(1) << 62
	weighted := WeightedTarget(target, huge)

	// A wrapping 256-bit multiply would truncate; math/big widens, so the
	// product must equal the exact mathematical product.
	want := new(big.Int).Mul(target, big.NewInt(huge))
	require.Equal(t, 0, want.Cmp(weighted))
}

func TestHashToBigZero(t *testing.T) {
	got := HashToBig(&zeroTestHash)
	require.Equal(t, 0, got.Sign())
}
