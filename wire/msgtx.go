// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"bytes"
	"io"

	"github.com/jouleco/jouled/chainhash"
)

// TxVersion is the current latest supported transaction version.
const TxVersion = 1

// MaxPrevOutIndex is the value used in a coinbase's previous output index to
// indicate that it is not a spend of a prior output.
const MaxPrevOutIndex uint32 = 0xffffffff

// OutPoint defines a bitcoin data type that is used to track previous
// transaction outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new bitcoin transaction outpoint point with the
// provided hash and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{Hash: *hash, Index: index}
}

// TxIn defines a bitcoin transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// NewTxIn returns a new bitcoin transaction input with the provided previous
// outpoint and signature script, using the default sequence number.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxPrevOutIndex,
	}
}

// TxOut defines a bitcoin transaction output.
type TxOut struct {
	Value    int64
	PkScript []byte
}

// NewTxOut returns a new bitcoin transaction output with the provided
// amount and public key script.
func NewTxOut(value int64, pkScript []byte) *TxOut {
	return &TxOut{Value: value, PkScript: pkScript}
}

// MsgTx implements the transaction portion of the wire protocol needed to
// construct and hash coinbase transactions, most prominently the one
// embedded in a network's genesis block.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// NewMsgTx returns a new bitcoin tx message with the given version and no
// transaction inputs or outputs.  Callers are expected to populate TxIn and
// TxOut as needed.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// Serialize encodes the transaction to w in the bitcoin protocol encoding.
func (msg *MsgTx) Serialize(w io.Writer) error {
	var buf [8]byte
	if err := writeElement(w, buf[:], msg.Version); err != nil {
		return err
	}

	if err := WriteVarInt(w, uint64(len(msg.TxIn))); err != nil {
		return err
	}
	for _, ti := range msg.TxIn {
		if _, err := w.Write(ti.PreviousOutPoint.Hash[:]); err != nil {
			return err
		}
		if err := writeElement(w, buf[:], ti.PreviousOutPoint.Index); err != nil {
			return err
		}
		if err := WriteVarBytes(w, ti.SignatureScript); err != nil {
			return err
		}
		if err := writeElement(w, buf[:], ti.Sequence); err != nil {
			return err
		}
	}

	if err := WriteVarInt(w, uint64(len(msg.TxOut))); err != nil {
		return err
	}
	for _, to := range msg.TxOut {
		if err := writeElement(w, buf[:], to.Value); err != nil {
			return err
		}
		if err := WriteVarBytes(w, to.PkScript); err != nil {
			return err
		}
	}

	return writeElement(w, buf[:], msg.LockTime)
}

// Bytes returns the serialized bitcoin protocol encoding of the transaction.
func (msg *MsgTx) Bytes() []byte {
	var buf bytes.Buffer
	// The only way Serialize can fail here is a write to buf failing,
	// which cannot happen.
	_ = msg.Serialize(&buf)
	return buf.Bytes()
}

// TxHash generates the hash for the transaction, which is the double
// sha256 of its serialized form.
func (msg *MsgTx) TxHash() chainhash.Hash {
	return chainhash.DoubleHashRaw(msg.Serialize)
}
