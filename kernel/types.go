// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// CoinType classifies a transaction output for kernel-eligibility purposes.
// Only Standard outputs may be staked; Data outputs never carry value that
// can win a kernel proof.
type CoinType int

const (
	// CoinTypeStandard is an ordinary value-carrying output.
	CoinTypeStandard CoinType = iota
	// CoinTypeData is a data-carrying output (e.g. OP_RETURN), never
	// kernel-eligible.
	CoinTypeData
)

func (t CoinType) String() string {
	switch t {
	case CoinTypeStandard:
		return "standard"
	case CoinTypeData:
		return "data"
	default:
		return "unknown"
	}
}

// StakeModifier is the rolling 256-bit scalar mixed into every kernel hash
// to prevent precomputation. Block 0's modifier is the zero value.
type StakeModifier = chainhash.Hash

// ZeroStakeModifier is the genesis stake modifier (invariant 1 of the data
// model: "the genesis modifier is zero").
var ZeroStakeModifier StakeModifier

// Coin is an unspent (or, via SpentCoin, previously-spent) transaction
// output as seen by the kernel validator.
type Coin struct {
	Value    int64
	Script   []byte
	Height   int32
	Coinbase bool
	Type     CoinType
}

// SpentCoin preserves a Coin that has since been spent, so that a coinstake
// referencing it can still be validated within the reorg window (invariant:
// "spent-coin archive preserves them for at least MAX_REORG_DEPTH blocks
// past spent_height").
type SpentCoin struct {
	Coin        Coin
	SpentHeight int32
}

// CoinStakeTx is a transaction flagged as the block's stake-minting
// transaction. vin[0] (Kernel) is the kernel input; extra inputs and
// outputs matter only when the kernel script uses the coinstake-op
// delegated-staking pattern (§4.5 step 10).
type CoinStakeTx struct {
	Tx *wire.MsgTx
}

// IsCoinStake reports whether the wrapped transaction is structurally a
// coinstake, using the marker the teacher's fork of wire.MsgTx carries as a
// dedicated IsCoinStake() method (not part of stock btcsuite/btcd, whose
// wire.MsgTx knows nothing about coinstakes): at least one input, at least
// two outputs, and vout[0] empty — the classic peercoin-family marker
// (zero value, empty pkscript) that distinguishes a coinstake from an
// ordinary transaction without a dedicated wire-level flag.
func (c CoinStakeTx) IsCoinStake() bool {
	if c.Tx == nil || len(c.Tx.TxIn) < 1 || len(c.Tx.TxOut) < 2 {
		return false
	}
	marker := c.Tx.TxOut[0]
	return marker.Value == 0 && len(marker.PkScript) == 0
}

// KernelInput returns vin[0], the kernel input, and whether it exists.
func (c CoinStakeTx) KernelInput() (*wire.TxIn, bool) {
	if c.Tx == nil || len(c.Tx.TxIn) == 0 {
		return nil, false
	}
	return c.Tx.TxIn[0], true
}

// KernelProof is the pair of values a successful (or attempted) kernel
// check produces: the computed proof-of-stake hash and the weighted target
// it was compared against, plus the BLOCK_STAKE_KERNEL_SPENT annotation
// (spec.md §4.4 step 4) the chain's persistence layer needs alongside it.
type KernelProof struct {
	HashPOS     chainhash.Hash
	Target      Uint256
	KernelSpent bool
}

// stakeKernelFlags carries out-of-band validation-state annotations the
// kernel check needs to report back to the caller, mirroring
// BLOCK_STAKE_KERNEL_SPENT from spec.md invariant/§4.4 step 4.
type stakeKernelFlags struct {
	// KernelSpent is set when the resolved kernel coin is spent in the
	// resolver's view of the active chain (resolved via the spent-coin
	// archive). This is not a failure: it permits accepting a block that
	// was mined before the local node's view spent the coin, honoring a
	// potential reorg.
	KernelSpent bool
}
