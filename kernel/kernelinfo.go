// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// BlockHeaderRef is the header-only view GetKernelInfo needs of a kernel
// coin's containing block. spec.md §9 flags an Open Question over whether
// the upstream "should only fill the header" comment is accurate or
// incidental; this repo takes the spec's instruction to "treat it as
// header-only" literally by only ever asking for a header, never a full
// block (see DESIGN.md).
type BlockHeaderRef interface {
	Time() int64
	Bits() uint32
}

// TxFetcher resolves a coinstake's transaction id to the coinstake itself,
// the header of the block that contains its kernel coin (the output the
// coinstake's vin[0] spends), and that kernel coin's value. GetKernelInfo
// uses the header's time as the kernel coin's block time in the kernel
// hash, and the value as the stake amount of the weighted target (a
// value-less target would always be zero).
type TxFetcher interface {
	Transaction(txid chainhash.Hash) (tx CoinStakeTx, header BlockHeaderRef, kernelValue int64, ok bool)
}

// KernelInfo is the informational result of GetKernelInfo: the kernel
// proof plus the modifier that produced it, for logging/RPC display.
type KernelInfo struct {
	KernelProof
	Modifier StakeModifier
}

// GetKernelInfo recomputes a coinstake's kernel hash and weighted target
// purely for informational purposes (e.g. an RPC call inspecting a
// historical block). kernelTxid is the coinstake's transaction id. It runs
// no script verification, depth check or target comparison; its errors are
// RuleErrors with their codes' default DoS weights, returned when the
// transaction is not found, has no kernel input, or bits is not a valid
// compact target.
func GetKernelInfo(fetcher TxFetcher, pindexPrev BlockRef, kernelTxid chainhash.Hash, blockTime int64, bits uint32, opts ...Option) (KernelInfo, error) {
	o := defaultCheckOptions()
	for _, opt := range opts {
		opt(o)
	}

	tx, header, kernelValue, ok := fetcher.Transaction(kernelTxid)
	if !ok {
		return KernelInfo{}, ruleError(ErrPrevoutNotFound,
			"GetKernelInfo() : transaction %s not found", kernelTxid)
	}
	kernelIn, ok := tx.KernelInput()
	if !ok {
		return KernelInfo{}, ruleError(ErrMalformedCoinstake,
			"GetKernelInfo() : transaction %s has no kernel input", kernelTxid)
	}

	proof, err := computeKernelProof(o.hasher, bits, pindexPrev.StakeModifier(),
		uint32(header.Time()), kernelIn.PreviousOutPoint, uint32(blockTime), kernelValue)
	if err != nil {
		return KernelInfo{}, err
	}

	return KernelInfo{KernelProof: proof, Modifier: pindexPrev.StakeModifier()}, nil
}
