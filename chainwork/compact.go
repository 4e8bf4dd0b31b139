// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainwork

// CompactTarget is the "nBits" encoding of a 256-bit target used in block
// headers: a one-byte exponent followed by a three-byte mantissa, with the
// high bit of the mantissa byte reserved as a sign flag. It is a lossy,
// floating-point-like encoding, so a target that round-trips through it may
// lose low-order precision.
type CompactTarget uint32

// DecodeCompact unpacks c into its value, reporting whether the sign bit was
// set on a nonzero mantissa (negative is never valid for a proof-of-work
// target, but callers must be able to detect it the way the reference
// implementation does) and whether the mantissa/exponent pair encodes a
// magnitude that cannot be represented in 256 bits.
func DecodeCompact(c CompactTarget) (value *BigUint256, negative bool, overflow bool) {
	nCompact := uint32(c)
	size := nCompact >> 24
	word := nCompact & 0x007fffff

	value = new(BigUint256)
	if size <= 3 {
		value.SetUint64(uint64(word) >> (8 * (3 - size)))
	} else {
		value.SetUint64(uint64(word))
		value.Lsh(value, uint(8*(size-3)))
	}

	negative = word != 0 && nCompact&0x00800000 != 0
	overflow = word != 0 && (size > 34 ||
		(word > 0xff && size > 33) ||
		(word > 0xffff && size > 32))
	return value, negative, overflow
}

// EncodeCompact packs value into its compact representation. negative sets
// the sign bit on the result; proof-of-work targets are always encoded with
// negative false, but the parameter is kept so the function mirrors the
// full semantics of the encoding it implements.
func EncodeCompact(value *BigUint256, negative bool) CompactTarget {
	size := uint32(value.ByteLen())

	var word uint32
	if size <= 3 {
		word = uint32(value.Uint64()) << (8 * (3 - size))
	} else {
		shifted := new(BigUint256).Rsh(value, uint(8*(size-3)))
		word = uint32(shifted.Uint64())
	}

	if word&0x00800000 != 0 {
		word >>= 8
		size++
	}

	compact := size<<24 | word
	if negative && word&0x007fffff != 0 {
		compact |= 0x00800000
	}
	return CompactTarget(compact)
}
