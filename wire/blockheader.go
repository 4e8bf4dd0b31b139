// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"
	"time"

	"github.com/jouleco/jouled/chainhash"
)

// MaxBlockHeaderPayload is the maximum number of bytes a block header can
// be: Version 4 bytes + PrevBlock and MerkleRoot 32 bytes each + Timestamp,
// Bits and Nonce 4 bytes each.
const MaxBlockHeaderPayload = 16 + (chainhash.HashSize * 2)

// BlockHeader defines information about a block and is used in the block
// (MsgBlock) message.
type BlockHeader struct {
	// Version of the block.  This is not the same as the protocol version.
	Version int32

	// Hash of the previous block in the block chain.
	PrevBlock chainhash.Hash

	// Merkle tree reference to hash of all transactions for the block.
	MerkleRoot chainhash.Hash

	// Time the block was created.  This is encoded as a uint32 on the
	// wire and therefore is limited to 2106.
	Timestamp time.Time

	// Difficulty target for the block, in its compact representation.
	Bits uint32

	// Nonce used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	return chainhash.DoubleHashRaw(h.Serialize)
}

// Serialize encodes a block header to w in the bitcoin protocol encoding.
func (h *BlockHeader) Serialize(w io.Writer) error {
	var buf [8]byte
	if err := writeElement(w, buf[:], h.Version); err != nil {
		return err
	}
	if _, err := w.Write(h.PrevBlock[:]); err != nil {
		return err
	}
	if _, err := w.Write(h.MerkleRoot[:]); err != nil {
		return err
	}
	if err := writeElement(w, buf[:], uint32(h.Timestamp.Unix())); err != nil {
		return err
	}
	if err := writeElement(w, buf[:], h.Bits); err != nil {
		return err
	}
	return writeElement(w, buf[:], h.Nonce)
}

// Bytes returns a byte slice containing the serialized contents of the
// block header.
func (h *BlockHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = h.Serialize(buf)
	return buf.Bytes()
}

