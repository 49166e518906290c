// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Uint256 is an arbitrary-precision non-negative integer used for the
// difficulty target and the weighted target. It is math/big under the
// hood; see the wide-integer note below for why.
type Uint256 = big.Int

// bigOne and oneLsh256 mirror the constants btcd's blockchain/difficulty.go
// carries for calcTrust-style work calculations.
var (
	bigOne    = big.NewInt(1)
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
)

// DecodeCompact decodes the Bitcoin-style compact 256-bit floating-point
// difficulty encoding used in a block header's nBits field: the high byte
// is the base-256 exponent, and the low 24 bits are the mantissa (with the
// sign bit at bit 23). The decoding follows CompactToBig from btcd's
// blockchain/difficulty.go, which every btcd fork carries (including the
// teacher, which references but does not redefine it), except that the
// magnitude is returned unsigned with the sign reported separately, and an
// overflow flag is added using arith_uint256::SetCompact's thresholds.
func DecodeCompact(bits uint32) (target *Uint256, negative bool, overflow bool) {
	mantissa := bits & 0x007fffff
	isNegative := bits&0x00800000 != 0
	exponent := uint(bits >> 24)

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	overflow = mantissa != 0 &&
		((exponent > 34) ||
			(mantissa > 0xff && exponent > 33) ||
			(mantissa > 0xffff && exponent > 32))

	return bn, isNegative, overflow
}

// EncodeCompact is the inverse of DecodeCompact: BigToCompact from btcd's
// blockchain/difficulty.go.
func EncodeCompact(n *Uint256) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// HashToBig converts a chainhash.Hash into a big.Int treating the hash's
// bytes as a little-endian encoded number, matching btcd's blockchain
// package convention (chainhash.Hash itself stores bytes internally in the
// little-endian internal order; only its String form is reversed for
// display, so the bytes are reversed here into big-endian for big.Int).
func HashToBig(hash *chainhash.Hash) *big.Int {
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}
	return new(big.Int).SetBytes(buf[:])
}

// WeightedTarget computes target * stakeAmount, the right-hand side of the
// kernel comparison: a kernel proof is accepted iff hash_pos <= target *
// stake_amount. stakeAmount is treated as an unsigned integer in native
// monetary units per spec.md §4.1.
//
// Wide-integer note: the historical C++ implementation performs this
// multiply in a 256-bit register that silently wraps on overflow (spec.md
// §9). This implementation instead widens to arbitrary precision via
// math/big and never wraps, which spec.md §9 identifies as the *safe*
// alternative reading ("or widen to 512 bits and treat wraparound as a
// target-is-effectively-infinite accept condition") — chosen here as the
// Open Question decision recorded in DESIGN.md pending mainnet vectors.
func WeightedTarget(target *Uint256, stakeAmount int64) *Uint256 {
	return new(big.Int).Mul(target, big.NewInt(stakeAmount))
}
