// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/jouleco/jouled/chainhash"

// HeaderCtx describes the information about a block needed to retarget
// difficulty and accumulate chainwork. It is an interface rather than a
// concrete type so that callers can provide their own in-memory or
// database-backed block index without this package needing to know its
// representation.
type HeaderCtx interface {
	// Height returns the header's height.
	Height() int64

	// Bits returns the header's compact difficulty target.
	Bits() uint32

	// Timestamp returns the header's time as a Unix timestamp.
	Timestamp() int64

	// Parent returns the header's parent, or nil at genesis.
	Parent() HeaderCtx

	// RelativeAncestorCtx returns the ancestor that is distance blocks
	// before this one in the chain, or nil if the chain is not that long.
	RelativeAncestorCtx(distance int64) HeaderCtx

	// ChainTx returns the cumulative number of transactions in the chain
	// up to and including this block.
	ChainTx() int64

	// Hash returns the header's own block hash.
	Hash() chainhash.Hash
}
