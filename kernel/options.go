// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import "github.com/btcsuite/btcd/txscript"

// checkOptions carries the tunables CheckProofOfStake and CheckKernel
// accept via functional options, so the common call site stays
// uncluttered while chain-specific callers can still override the hash
// function or relax the reorg bound for initial-block-download replay.
type checkOptions struct {
	hasher       Hasher
	verifyingDB  bool
	verifyFlags  txscript.ScriptFlags
}

// Option configures a CheckProofOfStake/CheckKernel call.
type Option func(*checkOptions)

func defaultCheckOptions() *checkOptions {
	return &checkOptions{
		hasher:      DefaultHasher,
		verifyingDB: false,
		verifyFlags: txscript.ScriptBip16 | txscript.ScriptVerifyDERSignatures,
	}
}

// WithHasher overrides the chain hash function H the kernel is
// parameterized by (spec.md §4.2). Used by property tests to swap in the
// single-SHA256 reference implementation spec.md §8 specifies.
func WithHasher(h Hasher) Option {
	return func(o *checkOptions) { o.hasher = h }
}

// WithVerifyingDB relaxes the spent-coin reorg-depth bound (spec.md §4.4
// step 3), for callers replaying already-accepted history (e.g. reindexing
// from an on-disk block database) where the reorg-safety concern doesn't
// apply.
func WithVerifyingDB(v bool) Option {
	return func(o *checkOptions) { o.verifyingDB = v }
}

// WithScriptVerifyFlags overrides the txscript.ScriptFlags used to verify
// the kernel input (spec.md §4.5 step 6's "standard verify flags").
func WithScriptVerifyFlags(flags txscript.ScriptFlags) Option {
	return func(o *checkOptions) { o.verifyFlags = flags }
}
