// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package kernel implements the proof-of-stake kernel validator: the
// consensus-critical decision of whether a candidate coinstake transaction
// is eligible to mint the next block.
//
// The package owns no chain storage, UTXO set, or script interpreter of its
// own. Every external dependency (block index lookup, coin lookup, script
// verification, chain parameters) is consumed through the narrow interfaces
// declared in interfaces.go, so an embedding node supplies its own chain
// state and locking discipline around calls into this package.
package kernel
