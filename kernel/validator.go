// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// requiredStakeDepth is invariant 3's min(stake_min_confirmations-1,
// pindexPrev.height/2).
func requiredStakeDepth(stakeMinConfirmations, pindexPrevHeight int32) int32 {
	d := stakeMinConfirmations - 1
	if half := pindexPrevHeight / 2; half < d {
		d = half
	}
	return d
}

// CheckProofOfStake is the top-level kernel validator (spec.md §4.5, C5):
// structural checks on the coinstake, coin resolution, depth, script
// verification of input 0, kernel-hash target comparison, and (when the
// kernel script uses the coinstake-op pattern) the output-value split
// check. Every returned error is a RuleError carrying the DoS weight
// spec.md §7 assigns to that rejection.
//
// This is the Go counterpart of the teacher's checkTxProofOfStake plus
// checkBlockProofOfStake (kernel.go), restructured around the spec's
// narrow ChainView/UtxoSource/SpentCoinArchive/ScriptVerifier interfaces
// instead of the teacher's direct *BlockChain field access, and extended
// with the coinstake-op split check the teacher's peercoin-era kernel
// never needed (delegated staking postdates peercoin's kernel protocol).
func CheckProofOfStake(
	chain ChainView,
	params ChainParams,
	verifier ScriptVerifier,
	utxo UtxoSource,
	archive SpentCoinArchive,
	pindexPrev BlockRef,
	tx CoinStakeTx,
	blockTime int64,
	bits uint32,
	opts ...Option,
) (KernelProof, error) {
	o := defaultCheckOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Step 1: structural.
	if !tx.IsCoinStake() {
		return KernelProof{}, ruleError(ErrMalformedCoinstake,
			"CheckProofOfStake() : called on non-coinstake transaction")
	}
	kernelIn, _ := tx.KernelInput()

	// Step 2: resolve kernel coin.
	coin, flags, err := resolveKernelCoin(utxo, archive, params.MaxReorgDepth(),
		kernelIn.PreviousOutPoint, pindexPrev.Height(), o.verifyingDB)
	if err != nil {
		return KernelProof{}, err
	}

	// Step 3: output type.
	if coin.Type != CoinTypeStandard {
		return KernelProof{}, ruleError(ErrInvalidPrevout,
			"CheckProofOfStake() : kernel prevout %s is not a standard output (type=%s)",
			kernelIn.PreviousOutPoint, coin.Type)
	}

	// Step 4: ancestor visible.
	coinBlock, ok := chain.AncestorAt(coin.Height)
	if !ok {
		return KernelProof{}, ruleError(ErrInvalidPrevout,
			"CheckProofOfStake() : no block at height %d for kernel prevout %s",
			coin.Height, kernelIn.PreviousOutPoint)
	}

	// Step 5: depth/maturity.
	depth := pindexPrev.Height() - coin.Height
	required := requiredStakeDepth(params.StakeMinConfirmations(), pindexPrev.Height())
	if depth < required {
		return KernelProof{}, ruleError(ErrInvalidStakeDepth,
			"CheckProofOfStake() : kernel prevout %s has depth %d, needs %d",
			kernelIn.PreviousOutPoint, depth, required)
	}

	// Step 6: script verify vin[0], amount-committed.
	if err := verifier.VerifyInput(tx.Tx, 0, coin.Script, coin.Value, o.verifyFlags); err != nil {
		return KernelProof{}, ruleError(ErrScriptVerifyFailed,
			"CheckProofOfStake() : VerifySignature failed on coinstake %s : %v",
			tx.Tx.TxHash(), err)
	}

	// Step 7: time monotonicity.
	if blockTime < coinBlock.Time() {
		return KernelProof{}, ruleError(ErrTimeViolation,
			"CheckProofOfStake() : nTime violation, block_time=%d < kernel_block_time=%d",
			blockTime, coinBlock.Time())
	}

	// Step 8: compute weighted target and kernel hash.
	proof, err := computeKernelProof(o.hasher, bits, pindexPrev.StakeModifier(),
		uint32(coinBlock.Time()), kernelIn.PreviousOutPoint, uint32(blockTime), coin.Value)
	if err != nil {
		return KernelProof{}, err
	}

	// Step 9: target comparison.
	hashPosInt := HashToBig(&proof.HashPOS)
	if hashPosInt.Cmp(&proof.Target) > 0 {
		log.Debugf("CheckProofOfStake() : check kernel failed on coinstake %s, hashProof=%s",
			tx.Tx.TxHash(), proof.HashPOS)
		return KernelProof{}, ruleError(ErrCheckKernelFailed,
			"CheckProofOfStake() : check kernel failed on coinstake %s, hashProof=%s",
			tx.Tx.TxHash(), proof.HashPOS)
	}

	proof.KernelSpent = flags.KernelSpent

	log.Debugf("CheckProofOfStake() : kernel accepted for coinstake %s, weight=%s hashProof=%s spent=%v",
		tx.Tx.TxHash(), btcutil.Amount(coin.Value), proof.HashPOS, flags.KernelSpent)

	// Step 10: coinstake-op output split check.
	if verifier.HasIsCoinStakeOp(coin.Script) {
		if err := checkCoinStakeOpSplit(utxo, archive, params.MaxReorgDepth(), pindexPrev.Height(),
			o.verifyingDB, tx.Tx, coin); err != nil {
			return KernelProof{}, err
		}
	}

	return proof, nil
}

// computeKernelProof computes the weighted target and kernel hash for a
// candidate stake attempt (spec.md §4.5 step 8), rejecting a malformed
// compact target as an internal invariant violation (spec.md §7).
func computeKernelProof(hasher Hasher, bits uint32, modifier StakeModifier, coinBlockTime uint32, prevout wire.OutPoint, blockTime uint32, stakeAmount int64) (KernelProof, error) {
	target, negative, overflow := DecodeCompact(bits)
	if negative || overflow || target.Sign() == 0 {
		log.Warnf("CheckProofOfStake() : invalid compact target 0x%08x (negative=%v overflow=%v)",
			bits, negative, overflow)
		return KernelProof{}, ruleError(ErrInvariantViolation,
			"CheckProofOfStake() : invalid compact target 0x%08x", bits)
	}

	weighted := WeightedTarget(target, stakeAmount)
	hash := KernelHash(hasher, modifier, coinBlockTime, prevout, blockTime)

	return KernelProof{HashPOS: hash, Target: *weighted}, nil
}

// checkCoinStakeOpSplit implements spec.md §4.5 step 10 / invariant 6: when
// the kernel script carries the coinstake-op delegated-staking pattern,
// every extra input must resolve to the same script as vin[0], and the sum
// of Standard-output values paid back to that script must be at least the
// sum of input values.
func checkCoinStakeOpSplit(utxo UtxoSource, archive SpentCoinArchive, maxReorgDepth, pindexPrevHeight int32, verifyingDB bool, tx *wire.MsgTx, kernelCoin Coin) error {
	kernelScript := kernelCoin.Script
	amount := kernelCoin.Value

	for k := 1; k < len(tx.TxIn); k++ {
		in := tx.TxIn[k]
		// Extra inputs may already be spent and still count: unlike the
		// kernel input itself, there is no reorg-bound failure for them
		// (spec.md §4.5 step 10: "no reorg-bound failure for extras").
		extraCoin, _, err := resolveKernelCoin(utxo, archive, maxReorgDepth, in.PreviousOutPoint, pindexPrevHeight, true)
		if err != nil {
			if ruleErr, ok := err.(RuleError); ok && ruleErr.ErrorCode == ErrPrevoutNotFound {
				return ruleError(ErrPrevoutNotInChain,
					"CheckProofOfStake() : coinstake-op input %s not found in UTXO set or spent-coin archive",
					in.PreviousOutPoint)
			}
			return ruleError(ErrMixedPrevoutScripts,
				"CheckProofOfStake() : could not resolve coinstake-op input %s : %v",
				in.PreviousOutPoint, err)
		}
		if string(extraCoin.Script) != string(kernelScript) || extraCoin.Type != CoinTypeStandard {
			return ruleError(ErrMixedPrevoutScripts,
				"CheckProofOfStake() : coinstake-op input %s script/type mismatch",
				in.PreviousOutPoint)
		}
		amount += extraCoin.Value
	}

	// Walk every output except vout[0], the empty coinstake marker output
	// every coinstake carries (see CoinStakeTx.IsCoinStake): non-Standard
	// outputs must be Data outputs (spec.md §4.5 step 10), and Standard
	// outputs paid to the kernel script accumulate into nVerify.
	var verify int64
	for _, out := range tx.TxOut[1:] {
		switch {
		case string(out.PkScript) == string(kernelScript):
			verify += out.Value
		case isDataOutput(out.PkScript):
			// fine: a data-carrier output, no value accounting needed.
		default:
			return ruleError(ErrBadOutputType,
				"CheckProofOfStake() : coinstake output not paid to kernel script is not a data output")
		}
	}

	if verify < amount {
		return ruleError(ErrVerifyAmountScriptFailed,
			"CheckProofOfStake() : coinstake-op output split underpaid: paid %s, owed %s",
			btcutil.Amount(verify), btcutil.Amount(amount))
	}
	return nil
}

// isDataOutput reports whether a script is a pure data-carrier (OP_RETURN)
// output, the Standard/Data classification spec.md §4.5 step 10 requires
// for any coinstake-op output not paid back to the kernel script.
func isDataOutput(script []byte) bool {
	return len(script) > 0 && script[0] == 0x6a // OP_RETURN
}
