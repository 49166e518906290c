// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeEstimatorNode struct {
	height int32
	time   int64
	bits   uint32
	pos    bool
	prev   *fakeEstimatorNode
}

func (n *fakeEstimatorNode) Height() int32          { return n.height }
func (n *fakeEstimatorNode) Time() int64            { return n.time }
func (n *fakeEstimatorNode) Bits() uint32           { return n.bits }
func (n *fakeEstimatorNode) IsProofOfStake() bool   { return n.pos }
func (n *fakeEstimatorNode) Prev() (EstimatorNode, bool) {
	if n.prev == nil {
		return nil, false
	}
	return n.prev, true
}

func chainOfPosBlocks(n int, bits uint32, spacingSeconds int64) *fakeEstimatorNode {
	var prev *fakeEstimatorNode
	var tip *fakeEstimatorNode
	for i := 0; i < n; i++ {
		node := &fakeEstimatorNode{
			height: int32(i),
			time:   int64(i) * spacingSeconds,
			bits:   bits,
			pos:    true,
			prev:   prev,
		}
		prev = node
		tip = node
	}
	return tip
}

func TestPosKernelsPerSecondZeroOnSingleBlock(t *testing.T) {
	tip := &fakeEstimatorNode{height: 0, time: 1000, bits: 0x1e0fffff, pos: true}
	params := fakeChainParams{mask: 0x0f}

	got := PosKernelsPerSecond(tip, params)
	require.Equal(t, float64(0), got)
}

func TestPosKernelsPerSecondPositiveOverChain(t *testing.T) {
	tip := chainOfPosBlocks(10, 0x1e0fffff, 16)
	params := fakeChainParams{mask: 0x0f}

	got := PosKernelsPerSecond(tip, params)
	require.Greater(t, got, float64(0))
}

func TestPosKernelsPerSecondSkipsNonPosBlocks(t *testing.T) {
	powBlock := &fakeEstimatorNode{height: 0, time: 0, bits: 0x1e0fffff, pos: false}
	posBlock1 := &fakeEstimatorNode{height: 1, time: 16, bits: 0x1e0fffff, pos: true, prev: powBlock}
	posBlock2 := &fakeEstimatorNode{height: 2, time: 32, bits: 0x1e0fffff, pos: true, prev: posBlock1}
	params := fakeChainParams{mask: 0x0f}

	got := PosKernelsPerSecond(posBlock2, params)
	require.Greater(t, got, float64(0))
}

func TestDifficultyIncreasesAsTargetShrinks(t *testing.T) {
	easy := Difficulty(0x1e0fffff)
	hard := Difficulty(0x1d00ffff)
	require.Greater(t, hard, easy)
}
