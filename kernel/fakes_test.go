// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// fixedHasher wraps a pre-chosen hash so kernel-target comparisons in a
// test are decided by construction instead of by an actual SHA-256 output,
// letting a golden-win/losing-ticket scenario be asserted with certainty.
func fixedHasher(h chainhash.Hash) Hasher {
	return func(_ []byte) chainhash.Hash { return h }
}

var zeroTestHash chainhash.Hash

func maxTestHash() chainhash.Hash {
	var h chainhash.Hash
	for i := range h {
		h[i] = 0xff
	}
	return h
}

type fakeBlockRef struct {
	height int32
	time   int64
	bits   uint32
	mod    StakeModifier
}

func (b fakeBlockRef) Height() int32               { return b.height }
func (b fakeBlockRef) Time() int64                 { return b.time }
func (b fakeBlockRef) Bits() uint32                { return b.bits }
func (b fakeBlockRef) StakeModifier() StakeModifier { return b.mod }

type fakeChainView map[int32]BlockRef

func (c fakeChainView) AncestorAt(height int32) (BlockRef, bool) {
	r, ok := c[height]
	return r, ok
}

type fakeUtxoSource map[wire.OutPoint]Coin

func (u fakeUtxoSource) Coin(op wire.OutPoint) (Coin, bool) {
	c, ok := u[op]
	return c, ok
}

type fakeSpentArchive map[wire.OutPoint]SpentCoin

func (a fakeSpentArchive) SpentCoin(op wire.OutPoint) (SpentCoin, bool) {
	c, ok := a[op]
	return c, ok
}

type fakeChainParams struct {
	minConf  int32
	mask     uint32
	maxReorg int32
}

func (p fakeChainParams) StakeMinConfirmations() int32       { return p.minConf }
func (p fakeChainParams) StakeTimestampMask(_ int32) uint32  { return p.mask }
func (p fakeChainParams) MaxReorgDepth() int32               { return p.maxReorg }

type fakeScriptVerifier struct {
	isCoinStakeOp bool
	verifyErr     error
}

func (v fakeScriptVerifier) HasIsCoinStakeOp(_ []byte) bool { return v.isCoinStakeOp }

func (v fakeScriptVerifier) VerifyInput(_ *wire.MsgTx, _ int, _ []byte, _ int64, _ txscript.ScriptFlags) error {
	return v.verifyErr
}

// newCoinStakeTx builds a minimal structurally-valid coinstake: an empty
// marker output at index 0, plus any extra outputs supplied.
func newCoinStakeTx(kernelIn wire.OutPoint, extraIn []wire.OutPoint, extraOut []*wire.TxOut) CoinStakeTx {
	tx := wire.NewMsgTx(wire.TxVersion)
	tx.AddTxIn(wire.NewTxIn(&kernelIn, nil, nil))
	for _, op := range extraIn {
		op := op
		tx.AddTxIn(wire.NewTxIn(&op, nil, nil))
	}
	tx.AddTxOut(wire.NewTxOut(0, nil))
	if len(extraOut) == 0 {
		// IsCoinStake requires at least two outputs; supply a harmless
		// placeholder when the test doesn't care about output shape.
		tx.AddTxOut(wire.NewTxOut(0, []byte{0x51}))
	}
	for _, out := range extraOut {
		tx.AddTxOut(out)
	}
	return CoinStakeTx{Tx: tx}
}

func outpoint(b byte, index uint32) wire.OutPoint {
	var h chainhash.Hash
	h[0] = b
	return wire.OutPoint{Hash: h, Index: index}
}
