// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/jouleco/jouled/chainhash"
)

// MsgBlock implements the block message and holds a block header and the
// list of transactions it carries. It is used to assemble and hash genesis
// blocks.
type MsgBlock struct {
	Header       BlockHeader
	Transactions []*MsgTx
}

// AddTransaction adds a transaction to the message.
func (msg *MsgBlock) AddTransaction(tx *MsgTx) {
	msg.Transactions = append(msg.Transactions, tx)
}

// BlockHash computes the block identifier hash for this block.
func (msg *MsgBlock) BlockHash() chainhash.Hash {
	return msg.Header.BlockHash()
}

// BuildMerkleTreeStore computes the merkle root for the block's
// transactions using the standard algorithm: transaction hashes are paired
// and double-sha256'd level by level, duplicating the final hash of a level
// when it has an odd number of entries, until a single root hash remains.
// A block with a single transaction, as is always the case for a genesis
// block, has a merkle root equal to that transaction's hash.
func (msg *MsgBlock) BuildMerkleTreeStore() chainhash.Hash {
	if len(msg.Transactions) == 0 {
		return chainhash.Hash{}
	}

	level := make([]chainhash.Hash, len(msg.Transactions))
	for i, tx := range msg.Transactions {
		level[i] = tx.TxHash()
	}

	for len(level) > 1 {
		if len(level)%2 != 0 {
			level = append(level, level[len(level)-1])
		}
		next := make([]chainhash.Hash, len(level)/2)
		for i := 0; i < len(next); i++ {
			var pair [2 * chainhash.HashSize]byte
			copy(pair[:chainhash.HashSize], level[2*i][:])
			copy(pair[chainhash.HashSize:], level[2*i+1][:])
			next[i] = chainhash.DoubleHashH(pair[:])
		}
		level = next
	}

	return level[0]
}
