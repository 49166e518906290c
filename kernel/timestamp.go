// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

// CheckCoinStakeTimestamp gates a block timestamp to the coarse time grid
// chain parameters define for the given height (spec.md §4.6, invariant
// 4): (block_time & stake_timestamp_mask(height)) == 0.
//
// This replaces the teacher's checkCoinStakeTimestamp, which branches on
// kernel protocol version (v0.2 vs v0.3) and either requires exact
// block/tx timestamp equality or a future-time tolerance window
// (kernel.go, checkCoinStakeTimestamp). spec.md §4.6 collapses that
// version history into a single height-keyed bitmask, which is what
// ChainParams.StakeTimestampMask already encodes (the mask itself widens
// at scheduled heights, carrying the same "coarsen the grid over time"
// intent the teacher's protocol switches expressed).
func CheckCoinStakeTimestamp(params ChainParams, height int32, blockTime int64) bool {
	mask := uint64(params.StakeTimestampMask(height))
	return uint64(blockTime)&mask == 0
}
