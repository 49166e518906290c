// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import "fmt"

// ErrorCode identifies a specific kernel-validation rejection reason,
// matching the named rejects of spec.md §4.4, §4.5, and §7.
type ErrorCode int

const (
	// ErrMalformedCoinstake: tx is not a coinstake or has no inputs
	// (spec.md §4.5 step 1).
	ErrMalformedCoinstake ErrorCode = iota
	// ErrPrevoutNotFound: the kernel prevout is neither in the live UTXO
	// set nor the spent-coin archive (spec.md §4.4 step 2).
	ErrPrevoutNotFound
	// ErrInvalidPrevout covers every "structurally wrong prevout" case:
	// non-Standard coin type, missing ancestor, or a spent-archive coin
	// too old to rehydrate (spec.md §4.4 step 3, §4.5 steps 3-4).
	ErrInvalidPrevout
	// ErrInvalidStakeDepth: the kernel coin has not accumulated the
	// required depth/maturity (spec.md §4.5 step 5, invariant 3).
	ErrInvalidStakeDepth
	// ErrScriptVerifyFailed: script verification of vin[0] failed
	// (spec.md §4.5 step 6).
	ErrScriptVerifyFailed
	// ErrTimeViolation: block_time is earlier than the kernel coin's
	// block time (spec.md §4.5 step 7, invariant 5).
	ErrTimeViolation
	// ErrCheckKernelFailed: an ordinary losing ticket — hash_pos exceeds
	// the weighted target (spec.md §4.5 step 9, invariant 4).
	ErrCheckKernelFailed
	// ErrPrevoutNotInChain: a coinstake-op extra input is absent from both
	// the live UTXO set and the spent-coin archive (spec.md §4.5 step 10,
	// §7 "prevout-not-in-chain" — possibly missing data, not adversarial).
	ErrPrevoutNotInChain
	// ErrMixedPrevoutScripts: a coinstake-op extra input's resolved
	// script does not match vin[0]'s script (spec.md §4.5 step 10,
	// invariant 6).
	ErrMixedPrevoutScripts
	// ErrBadOutputType: a coinstake-op output is neither Standard nor
	// Data (spec.md §4.5 step 10).
	ErrBadOutputType
	// ErrVerifyAmountScriptFailed: the coinstake-op output split
	// underpays the kernel script (spec.md §4.5 step 10, invariant 6).
	ErrVerifyAmountScriptFailed
	// ErrInvariantViolation: an internal invariant was violated (e.g. a
	// negative or overflowing compact target) — always logged and
	// rejected at the highest DoS weight (spec.md §7).
	ErrInvariantViolation
)

var errorCodeStrings = map[ErrorCode]string{
	ErrMalformedCoinstake:       "malformed-txn",
	ErrPrevoutNotFound:          "prevout-not-found",
	ErrInvalidPrevout:           "invalid-prevout",
	ErrInvalidStakeDepth:        "invalid-stake-depth",
	ErrScriptVerifyFailed:       "verify-cs-script-failed",
	ErrTimeViolation:            "nTime-violation",
	ErrCheckKernelFailed:        "check-kernel-failed",
	ErrPrevoutNotInChain:        "prevout-not-in-chain",
	ErrMixedPrevoutScripts:      "mixed-prevout-scripts",
	ErrBadOutputType:            "bad-output-type",
	ErrVerifyAmountScriptFailed: "verify-amount-script-failed",
	ErrInvariantViolation:       "invariant-violation",
}

// String implements fmt.Stringer, returning the reject-reason name used in
// spec.md's tables (e.g. "invalid-stake-depth"), the same short-string
// convention btcd's own RuleError codes use for wire-level reject messages.
func (e ErrorCode) String() string {
	if s, ok := errorCodeStrings[e]; ok {
		return s
	}
	return fmt.Sprintf("unknown-error-code-%d", int(e))
}

// DoS weight tiers named per spec.md §7.
const (
	DoSWeightAdversarial     = 100
	DoSWeightProbablyMissing = 20
	DoSWeightOrdinary        = 1
)

// defaultDoSWeights maps each ErrorCode to the DoS weight spec.md §7
// assigns it. ErrPrevoutNotFound and ErrPrevoutNotInChain are the two
// 20-weight codes (missing data the peer may simply not have relayed yet);
// ErrCheckKernelFailed is the sole 1-weight code (an ordinary losing
// ticket); everything else that reaches a caller is adversarial.
var defaultDoSWeights = map[ErrorCode]int{
	ErrMalformedCoinstake:       DoSWeightAdversarial,
	ErrPrevoutNotFound:          DoSWeightProbablyMissing,
	ErrInvalidPrevout:           DoSWeightAdversarial,
	ErrInvalidStakeDepth:        DoSWeightAdversarial,
	ErrScriptVerifyFailed:       DoSWeightAdversarial,
	ErrTimeViolation:            DoSWeightAdversarial,
	ErrCheckKernelFailed:        DoSWeightOrdinary,
	ErrPrevoutNotInChain:        DoSWeightProbablyMissing,
	ErrMixedPrevoutScripts:      DoSWeightAdversarial,
	ErrBadOutputType:            DoSWeightAdversarial,
	ErrVerifyAmountScriptFailed: DoSWeightAdversarial,
	ErrInvariantViolation:       DoSWeightAdversarial,
}

// RuleError is the kernel package's sole error type. It mirrors the
// teacher's RuleError/ruleError pattern (referenced by the teacher's
// ppc.go via ruleError(ErrEmptyTxOut, str), defined in btcd's
// blockchain/error.go and not itself part of the retrieval pack), extended
// with the DoS weight the caller uses to decide whether to ban the peer
// that supplied the block (spec.md §7).
type RuleError struct {
	ErrorCode   ErrorCode
	DoSWeight   int
	Description string
}

// Error implements the error interface.
func (e RuleError) Error() string {
	return e.Description
}

// ruleError constructs a RuleError with the DoS weight spec.md §7 assigns
// to code by default.
func ruleError(code ErrorCode, format string, args ...interface{}) RuleError {
	return RuleError{
		ErrorCode:   code,
		DoSWeight:   defaultDoSWeights[code],
		Description: fmt.Sprintf(format, args...),
	}
}
