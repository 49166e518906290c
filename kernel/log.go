// Copyright (c) 2014-2014 PPCD developers.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package kernel

import "github.com/btcsuite/btclog"

// log is the package-level logger used throughout the kernel package. It is
// disabled by default; an embedding application wires in its own backend
// with UseLogger, the same convention every btcsuite/btcd-family package
// uses.
var log = btclog.Disabled

// UseLogger sets the package-wide logger used by the kernel package. By
// default a Disabled logger is used, so callers that don't care about
// kernel-level tracing never pay for it.
func UseLogger(logger btclog.Logger) {
	log = logger
}
