// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCoinStakeTimestampMatchesMask(t *testing.T) {
	params := fakeChainParams{mask: 0x0f}

	cases := []struct {
		blockTime int64
		want      bool
	}{
		{0, true},
		{16, true},
		{15, false},
		{1_600_000_256, true},  // 0x5F5E1100 & 0x0f == 0
		{1_600_000_255, false},
	}
	for _, c := range cases {
		got := CheckCoinStakeTimestamp(params, 100, c.blockTime)
		require.Equal(t, c.want, got, "blockTime=%d", c.blockTime)
	}
}

// TestCheckCoinStakeTimestampProperty5 checks property 5 directly against
// its formula: check_coinstake_timestamp(h, t) == ((t & mask(h)) == 0).
func TestCheckCoinStakeTimestampProperty5(t *testing.T) {
	params := fakeChainParams{mask: 0x3f}
	for h := int32(0); h < 5; h++ {
		for tOff := int64(0); tOff < 128; tOff++ {
			want := (uint64(tOff) & uint64(params.StakeTimestampMask(h))) == 0
			got := CheckCoinStakeTimestamp(params, h, tOff)
			require.Equal(t, want, got, "height=%d time=%d", h, tOff)
		}
	}
}
