// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import "github.com/btcsuite/btcd/wire"

// resolveKernelCoin resolves a prevout to its Coin, consulting the live
// UTXO set first and, on a miss, the spent-coin archive, per spec.md §4.4.
//
// pindexPrevHeight is the height of the block being extended
// (pindexPrev.height in spec.md's notation). verifyingDB relaxes the
// reorg-depth bound the same way spec.md §4.4 step 3 does ("If not
// verifying_db and ...").
func resolveKernelCoin(utxo UtxoSource, archive SpentCoinArchive, maxReorgDepth int32, op wire.OutPoint, pindexPrevHeight int32, verifyingDB bool) (Coin, stakeKernelFlags, error) {
	if coin, ok := utxo.Coin(op); ok {
		return coin, stakeKernelFlags{}, nil
	}

	spent, ok := archive.SpentCoin(op)
	if !ok {
		return Coin{}, stakeKernelFlags{}, ruleError(ErrPrevoutNotFound,
			"CheckProofOfStake() : prevout %s not found in UTXO set or spent-coin archive", op)
	}

	if !verifyingDB && pindexPrevHeight > spent.SpentHeight &&
		pindexPrevHeight-spent.SpentHeight > maxReorgDepth {
		return Coin{}, stakeKernelFlags{}, ruleError(ErrInvalidPrevout,
			"CheckProofOfStake() : kernel prevout %s spent at height %d is beyond the %d-block reorg window (pindexPrev height %d)",
			op, spent.SpentHeight, maxReorgDepth, pindexPrevHeight)
	}

	// The kernel is for a coin spent in our view of the active chain.
	// Accept it anyway: the block under validation may belong to a chain
	// where that coin is still unspent (spec.md §9, "Spent kernel
	// acceptance").
	return spent.Coin, stakeKernelFlags{KernelSpent: true}, nil
}
