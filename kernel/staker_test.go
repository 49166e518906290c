// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckKernelWinningCandidate(t *testing.T) {
	prevout := outpoint(0x11, 0)
	pindexPrev := fakeBlockRef{height: 1000, mod: StakeModifier{0x01}}
	chain := fakeChainView{500: fakeBlockRef{height: 500, time: 1_600_000_000}}
	utxo := fakeUtxoSource{prevout: {Value: 1_000_000_000, Type: CoinTypeStandard, Height: 500}}
	params := fakeChainParams{minConf: 10, maxReorg: 100}

	blockTime, ok := CheckKernel(chain, params, utxo, pindexPrev, 0x1e0fffff, 1_600_000_256, prevout,
		WithHasher(fixedHasher(zeroTestHash)))

	require.True(t, ok)
	require.Equal(t, int64(1_600_000_000), blockTime)
}

func TestCheckKernelLosingCandidate(t *testing.T) {
	prevout := outpoint(0x11, 0)
	pindexPrev := fakeBlockRef{height: 1000, mod: StakeModifier{0x01}}
	chain := fakeChainView{500: fakeBlockRef{height: 500, time: 1_600_000_000}}
	utxo := fakeUtxoSource{prevout: {Value: 1, Type: CoinTypeStandard, Height: 500}}
	params := fakeChainParams{minConf: 10, maxReorg: 100}

	_, ok := CheckKernel(chain, params, utxo, pindexPrev, 0x1e0fffff, 1_600_000_256, prevout,
		WithHasher(fixedHasher(maxTestHash())))

	require.False(t, ok)
}

func TestCheckKernelIgnoresSpentArchive(t *testing.T) {
	// CheckKernel resolves from the live UTXO set only; a prevout that is
	// only in the spent archive must never be considered a valid staking
	// candidate (spec.md §4.7: "no spent-archive fallback").
	prevout := outpoint(0x11, 0)
	pindexPrev := fakeBlockRef{height: 1000, mod: StakeModifier{0x01}}
	chain := fakeChainView{500: fakeBlockRef{height: 500, time: 1_600_000_000}}
	params := fakeChainParams{minConf: 10, maxReorg: 100}

	_, ok := CheckKernel(chain, params, fakeUtxoSource{}, pindexPrev, 0x1e0fffff, 1_600_000_256, prevout,
		WithHasher(fixedHasher(zeroTestHash)))

	require.False(t, ok)
}
