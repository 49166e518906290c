// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func TestVerifyBlockSignatureRoundTrip(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	hash := chainhash.Hash{0x01, 0x02, 0x03}
	sig := ecdsa.Sign(priv, hash[:])

	ok := VerifyBlockSignature(priv.PubKey().SerializeCompressed(), hash, sig.Serialize())
	require.True(t, ok)
}

func TestVerifyBlockSignatureRejectsWrongHash(t *testing.T) {
	priv, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	hash := chainhash.Hash{0x01, 0x02, 0x03}
	sig := ecdsa.Sign(priv, hash[:])

	otherHash := chainhash.Hash{0x09, 0x09, 0x09}
	ok := VerifyBlockSignature(priv.PubKey().SerializeCompressed(), otherHash, sig.Serialize())
	require.False(t, ok)
}

func TestVerifyBlockSignatureRejectsMalformedInput(t *testing.T) {
	require.False(t, VerifyBlockSignature([]byte("not-a-pubkey"), chainhash.Hash{}, []byte("not-a-sig")))
}
