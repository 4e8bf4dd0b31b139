// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/hex"
	"testing"
	"time"

	"github.com/jouleco/jouled/chainhash"
)

// TestBuildMerkleTreeStoreSingleTx confirms that a block with a single
// transaction, as every genesis block has, has a merkle root equal to that
// transaction's hash.
func TestBuildMerkleTreeStoreSingleTx(t *testing.T) {
	tx := NewMsgTx(1)
	tx.AddTxIn(NewTxIn(NewOutPoint(&emptyHash, MaxPrevOutIndex), []byte{0x51}))
	tx.AddTxOut(NewTxOut(0, []byte{0x51}))

	block := &MsgBlock{Transactions: []*MsgTx{tx}}
	if got, want := block.BuildMerkleTreeStore(), tx.TxHash(); got != want {
		t.Fatalf("BuildMerkleTreeStore = %s, want %s", got, want)
	}
}

// TestBuildMerkleTreeStoreOddCount confirms the final hash of an odd-length
// level is duplicated before pairing, matching the standard algorithm.
func TestBuildMerkleTreeStoreOddCount(t *testing.T) {
	mkTx := func(seq uint32) *MsgTx {
		tx := NewMsgTx(1)
		tx.AddTxIn(NewTxIn(NewOutPoint(&emptyHash, seq), []byte{0x51}))
		tx.AddTxOut(NewTxOut(int64(seq), []byte{0x51}))
		return tx
	}

	a, b, c := mkTx(1), mkTx(2), mkTx(3)
	block := &MsgBlock{Transactions: []*MsgTx{a, b, c}}

	ha, hb, hc := a.TxHash(), b.TxHash(), c.TxHash()
	var abBuf, ccBuf [2 * chainhash.HashSize]byte
	copy(abBuf[:chainhash.HashSize], ha[:])
	copy(abBuf[chainhash.HashSize:], hb[:])
	copy(ccBuf[:chainhash.HashSize], hc[:])
	copy(ccBuf[chainhash.HashSize:], hc[:])
	abHash := chainhash.DoubleHashH(abBuf[:])
	ccHash := chainhash.DoubleHashH(ccBuf[:])

	var rootBuf [2 * chainhash.HashSize]byte
	copy(rootBuf[:chainhash.HashSize], abHash[:])
	copy(rootBuf[chainhash.HashSize:], ccHash[:])
	want := chainhash.DoubleHashH(rootBuf[:])

	if got := block.BuildMerkleTreeStore(); got != want {
		t.Fatalf("BuildMerkleTreeStore = %s, want %s", got, want)
	}
}

// TestGenesisBlockHash reconstructs the main network's genesis block from
// its original coinbase script and header fields and checks that the
// resulting block hash and merkle root match the values the network has
// agreed on since launch.
func TestGenesisBlockHash(t *testing.T) {
	const pszTimestamp = "Slashdot 22 Sep 2013 - RSA Warns Developers Not To Use RSA Products"

	signatureScript := append([]byte{
		0x04, 0xff, 0xff, 0x00, 0x1d, 0x01, 0x04, byte(len(pszTimestamp)),
	}, []byte(pszTimestamp)...)

	pubKey, err := hex.DecodeString("04678afdb0fe5548271967f1a67130b7105cd6a828e03909a67962e0ea1f61deb649f6bc3f4cef38c4f35504e51ec112de5c384df7ba0b8d578a4c702b6bf11d5f")
	if err != nil {
		t.Fatalf("hex.DecodeString: %v", err)
	}
	pkScript := append(append([]byte{byte(len(pubKey))}, pubKey...), 0xac)

	coinbase := NewMsgTx(1)
	coinbase.AddTxIn(NewTxIn(NewOutPoint(&emptyHash, MaxPrevOutIndex), signatureScript))
	coinbase.AddTxOut(NewTxOut(0, pkScript))

	block := &MsgBlock{Transactions: []*MsgTx{coinbase}}
	merkleRoot := block.BuildMerkleTreeStore()

	wantMerkle, err := chainhash.NewHashFromStr("2d089dcbae340c48fef8b956bfe63806c0ffd592d1d333082bfa8da6c4158e83")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}
	if !merkleRoot.IsEqual(wantMerkle) {
		t.Fatalf("merkle root = %s, want %s", merkleRoot, wantMerkle)
	}

	block.Header = BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: merkleRoot,
		Timestamp:  time.Unix(1379833106, 0),
		Bits:       0x1e0fffff,
		Nonce:      2092237480,
	}

	wantHash, err := chainhash.NewHashFromStr("0000077e5cce889f0920029bf89e8ecb16f7be38e1019c3e21c26d4687ce11f5")
	if err != nil {
		t.Fatalf("NewHashFromStr: %v", err)
	}
	gotHash := block.BlockHash()
	if !gotHash.IsEqual(wantHash) {
		t.Fatalf("block hash = %s, want %s", gotHash, wantHash)
	}
}
