// Copyright (c) 2014 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/jouleco/jouled/chainhash"

// fakeHeader is a minimal in-memory HeaderCtx implementation used to build
// synthetic chains for testing the difficulty engine and checkpoint set
// without needing a real block index.
type fakeHeader struct {
	height  int64
	bits    uint32
	time    int64
	chainTx int64
	hash    chainhash.Hash
	parent  *fakeHeader
}

func (f *fakeHeader) Height() int64    { return f.height }
func (f *fakeHeader) Bits() uint32     { return f.bits }
func (f *fakeHeader) Timestamp() int64 { return f.time }
func (f *fakeHeader) ChainTx() int64   { return f.chainTx }
func (f *fakeHeader) Hash() chainhash.Hash { return f.hash }

func (f *fakeHeader) Parent() HeaderCtx {
	if f.parent == nil {
		return nil
	}
	return f.parent
}

func (f *fakeHeader) RelativeAncestorCtx(distance int64) HeaderCtx {
	node := HeaderCtx(f)
	for i := int64(0); i < distance; i++ {
		if node == nil {
			return nil
		}
		node = node.Parent()
	}
	return node
}

// buildChain constructs a linear chain of n blocks at heights 0..n-1, each
// spaced spacing seconds apart and carrying bits, starting at startTime. It
// returns the tip.
func buildChain(n int, startTime int64, spacing int64, bits uint32) *fakeHeader {
	var parent *fakeHeader
	var tip *fakeHeader
	for i := 0; i < n; i++ {
		tip = &fakeHeader{
			height:  int64(i),
			bits:    bits,
			time:    startTime + int64(i)*spacing,
			chainTx: int64(i + 1),
			parent:  parent,
		}
		tip.hash[0] = byte(i)
		tip.hash[1] = byte(i >> 8)
		parent = tip
	}
	return tip
}
