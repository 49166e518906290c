// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// BlockRef is a handle to a block's header plus the metadata the kernel
// validator needs, mirroring spec.md §3's BlockIndexRef entity. It is
// deliberately narrower than a full block index node: no parent pointer is
// exposed here because every ancestor the validator needs is reached via
// ChainView.AncestorAt, not by walking prev links itself.
type BlockRef interface {
	Height() int32
	Time() int64
	Bits() uint32
	StakeModifier() StakeModifier
}

// ChainView is the active-chain lookup the validator consumes from chain
// storage (spec.md §6: "chain[height] -> BlockIndexRef?  O(1) active-chain
// lookup"). The validator and the staker oracle never walk parent
// pointers; every ancestor access they make goes through height-indexed
// lookup, matching spec.md §4.5 step 4 ("chain[coin.height] must exist").
// Only the network estimator walks parent links, through EstimatorNode.
type ChainView interface {
	AncestorAt(height int32) (BlockRef, bool)
}

// UtxoSource is the live UTXO set (spec.md §6: "utxo.get(outpoint) ->
// Coin?"). A coin that is spent must not be returned — the caller is
// expected to have already applied is_spent() filtering, per spec.md §4.4
// step 1 ("If present and not spent, return it").
type UtxoSource interface {
	Coin(op wire.OutPoint) (Coin, bool)
}

// SpentCoinArchive is the spent-coin archive (spec.md §6:
// "spent_archive.get(outpoint) -> SpentCoin?"), preserving coins spent
// within MAX_REORG_DEPTH so a reorg can still validate a coinstake that
// references them.
type SpentCoinArchive interface {
	SpentCoin(op wire.OutPoint) (SpentCoin, bool)
}

// ChainParams is the narrow slice of chain parameters the kernel validator
// consumes (spec.md §6).
type ChainParams interface {
	// StakeMinConfirmations is the minimum number of confirmations a
	// kernel coin must have accumulated before it is stake-eligible.
	StakeMinConfirmations() int32
	// StakeTimestampMask returns the bitmask block times at the given
	// height must satisfy (spec.md §4.6); typically 0x0F, widening at
	// scheduled heights.
	StakeTimestampMask(height int32) uint32
	// MaxReorgDepth bounds how far back a spent coin remains eligible for
	// kernel rehydration (spec.md §4.4 step 3).
	MaxReorgDepth() int32
}

// ScriptVerifier is the script subsystem the kernel validator consumes
// (spec.md §6): pattern detection for delegated-staking scripts, and
// signature verification of the kernel input.
type ScriptVerifier interface {
	// HasIsCoinStakeOp reports whether script begins with the
	// coinstake-op pattern that constrains output distribution for
	// delegated staking (spec.md §4.5 step 10, invariant 6).
	HasIsCoinStakeOp(script []byte) bool
	// VerifyInput verifies tx's input at inputIndex against the resolved
	// previous output's script and value, using amount-committed
	// signature hashing (spec.md §4.5 step 6).
	VerifyInput(tx *wire.MsgTx, inputIndex int, prevScript []byte, prevValue int64, flags txscript.ScriptFlags) error
}
