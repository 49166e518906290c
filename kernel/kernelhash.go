// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"encoding/binary"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// kernelPreimageSize is the exact length of the kernel hash preimage
// (spec.md §4.2): 32 (modifier) + 4 (prev block time) + 32 (prevout txid) +
// 4 (prevout.n) + 4 (block time) bytes. Any deviation forks the chain.
const kernelPreimageSize = 32 + 4 + 32 + 4 + 4

// Hasher is the chain hash function the kernel is parameterized by
// (spec.md §4.2: "whatever the chain's canonical hash function is"). The
// default, DefaultHasher, is Bitcoin/Peercoin's double-SHA256.
type Hasher func(data []byte) chainhash.Hash

// DefaultHasher is double-SHA256, matching the teacher's
// chainhash.DoubleHashB usage throughout kernel.go.
func DefaultHasher(data []byte) chainhash.Hash {
	return chainhash.DoubleHashH(data)
}

// kernelPreimage serializes (modifier, prevBlockTime, prevout, blockTime)
// into the exact 76-byte little-endian byte stream spec.md §4.2 mandates.
func kernelPreimage(modifier StakeModifier, prevBlockTime uint32, prevout wire.OutPoint, blockTime uint32) [kernelPreimageSize]byte {
	var buf [kernelPreimageSize]byte
	off := 0

	// 1. modifier, 32 little-endian bytes. chainhash.Hash already stores
	// its bytes in the reversed (little-endian, per Bitcoin's internal
	// convention) order, so a straight copy matches spec.md §4.2 step 1.
	copy(buf[off:off+32], modifier[:])
	off += 32

	// 2. prev_block_time, 4 little-endian bytes.
	binary.LittleEndian.PutUint32(buf[off:off+4], prevBlockTime)
	off += 4

	// 3. prevout.txid, 32 little-endian bytes.
	copy(buf[off:off+32], prevout.Hash[:])
	off += 32

	// 4. prevout.n, 4 little-endian bytes.
	binary.LittleEndian.PutUint32(buf[off:off+4], prevout.Index)
	off += 4

	// 5. block_time, 4 little-endian bytes.
	binary.LittleEndian.PutUint32(buf[off:off+4], blockTime)
	off += 4

	return buf
}

// KernelHash computes the deterministic kernel hash for a candidate stake
// attempt: H(modifier || prevBlockTime || prevout.txid || prevout.n ||
// blockTime), spec.md §4.2. hasher defaults to DefaultHasher when nil.
func KernelHash(hasher Hasher, modifier StakeModifier, prevBlockTime uint32, prevout wire.OutPoint, blockTime uint32) chainhash.Hash {
	if hasher == nil {
		hasher = DefaultHasher
	}
	preimage := kernelPreimage(modifier, prevBlockTime, prevout, blockTime)
	return hasher(preimage[:])
}
