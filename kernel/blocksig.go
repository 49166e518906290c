// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// VerifyBlockSignature checks the block-level signature peercoin-family
// chains attach to every proof-of-stake block header in addition to the
// coinstake's own input script: the staker signs the block hash itself
// with the same key that authorizes spending the kernel coin, binding the
// header to that key and closing a header-malleability gap the coinstake
// script alone doesn't cover. This is a supplement over spec.md's C5
// contract (which covers only the coinstake transaction), grounded on the
// teacher's ppc.go CheckBlockSignature, reimplemented here against
// btcec/v2's public API rather than the teacher's now-deleted internal
// signature helpers.
//
// Callers run this once CheckProofOfStake has accepted the coinstake, over
// the block header hash and the staking public key recovered from the
// kernel coin's script; it is deliberately not folded into
// CheckProofOfStake itself since neither belongs to spec.md §6's narrow
// external-interface set.
func VerifyBlockSignature(pubKeyBytes []byte, blockHash chainhash.Hash, sig []byte) bool {
	pubKey, err := btcec.ParsePubKey(pubKeyBytes)
	if err != nil {
		return false
	}
	signature, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return signature.Verify(blockHash[:], pubKey)
}
