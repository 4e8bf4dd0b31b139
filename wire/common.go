// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

func writeElement(w io.Writer, buf []byte, element interface{}) error {
	switch e := element.(type) {
	case int32:
		binary.LittleEndian.PutUint32(buf[:4], uint32(e))
		_, err := w.Write(buf[:4])
		return err
	case uint32:
		binary.LittleEndian.PutUint32(buf[:4], e)
		_, err := w.Write(buf[:4])
		return err
	case int64:
		binary.LittleEndian.PutUint64(buf[:8], uint64(e))
		_, err := w.Write(buf[:8])
		return err
	case uint64:
		binary.LittleEndian.PutUint64(buf[:8], e)
		_, err := w.Write(buf[:8])
		return err
	default:
		return fmt.Errorf("writeElement: unhandled type %T", e)
	}
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value, following the same compact-size convention used throughout
// this protocol family for transaction input/output counts and script
// lengths.
func WriteVarInt(w io.Writer, val uint64) error {
	var buf [9]byte
	switch {
	case val < 0xfd:
		buf[0] = byte(val)
		_, err := w.Write(buf[:1])
		return err
	case val <= 0xffff:
		buf[0] = 0xfd
		binary.LittleEndian.PutUint16(buf[1:3], uint16(val))
		_, err := w.Write(buf[:3])
		return err
	case val <= 0xffffffff:
		buf[0] = 0xfe
		binary.LittleEndian.PutUint32(buf[1:5], uint32(val))
		_, err := w.Write(buf[:5])
		return err
	default:
		buf[0] = 0xff
		binary.LittleEndian.PutUint64(buf[1:9], val)
		_, err := w.Write(buf[:9])
		return err
	}
}

// WriteVarBytes serializes a variable length byte slice to w as a varint
// containing the number of bytes, followed by the bytes themselves.
func WriteVarBytes(w io.Writer, b []byte) error {
	if err := WriteVarInt(w, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}
