// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import "github.com/btcsuite/btcd/wire"

// CheckKernel is the staker oracle (spec.md §4.7, C7): without constructing
// a transaction, probe whether a given (prevout, nTime) would win a kernel
// check at the current tip. Unlike CheckProofOfStake, it resolves the coin
// from the live UTXO set only — no spent-archive fallback, since a staker
// should never mine from a coin it believes is already spent — and returns
// a plain boolean outcome with no DoS weight, per spec.md §7 ("The staker
// oracle returns a plain boolean; no DoS weights, no logging at warn
// level").
//
// On success the kernel coin's originating block time is returned, so a
// staking loop can construct the winning coinstake's timestamp field
// without a second lookup.
func CheckKernel(chain ChainView, params ChainParams, utxo UtxoSource, pindexPrev BlockRef, bits uint32, nTime int64, prevout wire.OutPoint, opts ...Option) (blockTime int64, ok bool) {
	o := defaultCheckOptions()
	for _, opt := range opts {
		opt(o)
	}

	coin, found := utxo.Coin(prevout)
	if !found || coin.Type != CoinTypeStandard {
		return 0, false
	}

	coinBlock, found := chain.AncestorAt(coin.Height)
	if !found {
		return 0, false
	}

	depth := pindexPrev.Height() - coin.Height
	required := requiredStakeDepth(params.StakeMinConfirmations(), pindexPrev.Height())
	if depth < required {
		return 0, false
	}

	if nTime < coinBlock.Time() {
		return 0, false
	}

	// An invalid compact target is a plain false here; computeKernelProof
	// would also log it at warn level.
	if target, negative, overflow := DecodeCompact(bits); negative || overflow || target.Sign() == 0 {
		return 0, false
	}

	proof, err := computeKernelProof(o.hasher, bits, pindexPrev.StakeModifier(),
		uint32(coinBlock.Time()), prevout, uint32(nTime), coin.Value)
	if err != nil {
		return 0, false
	}

	hashPosInt := HashToBig(&proof.HashPOS)
	if hashPosInt.Cmp(&proof.Target) > 0 {
		return 0, false
	}

	return coinBlock.Time(), true
}
