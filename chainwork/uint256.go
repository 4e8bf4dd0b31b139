// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainwork implements the fixed-width 256-bit unsigned integer
// arithmetic used by proof-of-work difficulty retargeting and the compact
// ("nBits") target encoding. It intentionally does not build on math/big:
// every block and every client on the network must agree bit-for-bit on
// these results, and a purpose-built four-limb representation makes the
// exact semantics (wraparound, truncation, flooring) explicit rather than
// inherited from a general-purpose big integer package.
package chainwork

import (
	"encoding/binary"
	"encoding/hex"
	"math/bits"
)

// limbCount is the number of 64-bit limbs used to represent a 256-bit value.
const limbCount = 4

// BigUint256 is an unsigned 256-bit integer stored as four 64-bit limbs in
// little-endian limb order: limbs[0] holds the least significant 64 bits and
// limbs[3] holds the most significant 64 bits. The zero value is zero.
type BigUint256 struct {
	limbs [limbCount]uint64
}

// MaxUint256 returns a new BigUint256 holding 2^256 - 1, the all-ones value.
func MaxUint256() *BigUint256 {
	return &BigUint256{limbs: [limbCount]uint64{
		^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0),
	}}
}

// NewFromUint64 returns a new BigUint256 initialized to v.
func NewFromUint64(v uint64) *BigUint256 {
	return new(BigUint256).SetUint64(v)
}

// SetUint64 sets z to v and returns z.
func (z *BigUint256) SetUint64(v uint64) *BigUint256 {
	z.limbs = [limbCount]uint64{v, 0, 0, 0}
	return z
}

// Set sets z to x and returns z.
func (z *BigUint256) Set(x *BigUint256) *BigUint256 {
	z.limbs = x.limbs
	return z
}

// Uint64 returns the low 64 bits of z, discarding anything above them. It is
// the caller's responsibility to know the value fits.
func (z *BigUint256) Uint64() uint64 {
	return z.limbs[0]
}

// IsZero reports whether z is zero.
func (z *BigUint256) IsZero() bool {
	return z.limbs == [limbCount]uint64{}
}

// Cmp compares z and x and returns -1, 0, or +1 depending on whether z is
// less than, equal to, or greater than x.
func (z *BigUint256) Cmp(x *BigUint256) int {
	for i := limbCount - 1; i >= 0; i-- {
		if z.limbs[i] != x.limbs[i] {
			if z.limbs[i] < x.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// BitLen returns the number of bits required to represent z, with BitLen(0)
// == 0.
func (z *BigUint256) BitLen() int {
	for i := limbCount - 1; i >= 0; i-- {
		if z.limbs[i] != 0 {
			return i*64 + bits.Len64(z.limbs[i])
		}
	}
	return 0
}

// ByteLen returns the minimum number of bytes required to represent z, with
// ByteLen(0) == 0. This is the "size" field of the compact encoding.
func (z *BigUint256) ByteLen() int {
	return (z.BitLen() + 7) / 8
}

// Not sets z to the bitwise complement of x and returns z.
func (z *BigUint256) Not(x *BigUint256) *BigUint256 {
	for i := range z.limbs {
		z.limbs[i] = ^x.limbs[i]
	}
	return z
}

// Add sets z to x+y modulo 2^256 and returns z.
func (z *BigUint256) Add(x, y *BigUint256) *BigUint256 {
	var carry uint64
	for i := range z.limbs {
		z.limbs[i], carry = bits.Add64(x.limbs[i], y.limbs[i], carry)
	}
	return z
}

// Sub sets z to x-y modulo 2^256 and returns z.
func (z *BigUint256) Sub(x, y *BigUint256) *BigUint256 {
	var borrow uint64
	for i := range z.limbs {
		z.limbs[i], borrow = bits.Sub64(x.limbs[i], y.limbs[i], borrow)
	}
	return z
}

// Lsh sets z to x shifted left by n bits and returns z. Bits shifted past
// position 255 are discarded.
func (z *BigUint256) Lsh(x *BigUint256, n uint) *BigUint256 {
	if n >= 256 {
		z.limbs = [limbCount]uint64{}
		return z
	}
	limbShift, bitShift := int(n/64), n%64
	var out [limbCount]uint64
	for i := limbCount - 1; i >= 0; i-- {
		srcIdx := i - limbShift
		if srcIdx < 0 {
			continue
		}
		v := x.limbs[srcIdx] << bitShift
		if bitShift != 0 && srcIdx > 0 {
			v |= x.limbs[srcIdx-1] >> (64 - bitShift)
		}
		out[i] = v
	}
	z.limbs = out
	return z
}

// Rsh sets z to x shifted right by n bits and returns z.
func (z *BigUint256) Rsh(x *BigUint256, n uint) *BigUint256 {
	if n >= 256 {
		z.limbs = [limbCount]uint64{}
		return z
	}
	limbShift, bitShift := int(n/64), n%64
	var out [limbCount]uint64
	for i := 0; i < limbCount; i++ {
		srcIdx := i + limbShift
		if srcIdx >= limbCount {
			continue
		}
		v := x.limbs[srcIdx] >> bitShift
		if bitShift != 0 && srcIdx+1 < limbCount {
			v |= x.limbs[srcIdx+1] << (64 - bitShift)
		}
		out[i] = v
	}
	z.limbs = out
	return z
}

// mulWide multiplies the 256-bit x by the 64-bit m and returns the full
// 320-bit product as five little-endian limbs, without truncation. This is
// the intermediate width difficulty retargeting needs: a 256-bit target
// multiplied by a timespan of up to ~10^7 seconds can exceed 256 bits before
// the subsequent division brings it back down.
func mulWide(x [limbCount]uint64, m uint64) [limbCount + 1]uint64 {
	var out [limbCount + 1]uint64
	var carry uint64
	for i := 0; i < limbCount; i++ {
		hi, lo := bits.Mul64(x[i], m)
		sum, c := bits.Add64(lo, carry, 0)
		out[i] = sum
		carry = hi + c
	}
	out[limbCount] = carry
	return out
}

// divWide divides the 320-bit wide value by the 64-bit d, flooring, and
// returns the low 256 bits of the quotient. overflow is true if the
// quotient did not fit in 256 bits, which should never happen for any
// target/timespan pair that can arise from retargeting.
func divWide(wide [limbCount + 1]uint64, d uint64) (q [limbCount]uint64, overflow bool) {
	rem := uint64(0)
	topQuot, topRem := bits.Div64(0, wide[limbCount], d)
	overflow = topQuot != 0
	rem = topRem
	for i := limbCount - 1; i >= 0; i-- {
		q[i], rem = bits.Div64(rem, wide[i], d)
	}
	return q, overflow
}

// MulDivUint64 sets z to floor(x*mul/div) and returns z. The multiplication
// is carried out in a 320-bit intermediate so that it cannot silently wrap
// before the division brings the magnitude back under 2^256.
func (z *BigUint256) MulDivUint64(x *BigUint256, mul, div uint64) *BigUint256 {
	wide := mulWide(x.limbs, mul)
	q, _ := divWide(wide, div)
	z.limbs = q
	return z
}

// DivMod sets z to floor(x/y) and returns z along with the remainder x mod
// y. It panics if y is zero. This is ordinary binary long division: shift
// the divisor up until it no longer fits, then walk it back down, matching
// the bit-shift division used by the reference uint256 type for the one
// place retargeting needs a divisor wider than 64 bits, computing a block's
// proof contribution as 2^256/(target+1).
func (z *BigUint256) DivMod(x, y *BigUint256) (quotient, remainder *BigUint256) {
	if y.IsZero() {
		panic("chainwork: division by zero")
	}

	remainder = new(BigUint256).Set(x)
	quotient = z
	quotient.limbs = [limbCount]uint64{}

	if remainder.Cmp(y) < 0 {
		return quotient, remainder
	}

	shift := remainder.BitLen() - y.BitLen()
	if shift < 0 {
		shift = 0
	}
	divisor := new(BigUint256).Lsh(y, uint(shift))

	for shift >= 0 {
		if remainder.Cmp(divisor) >= 0 {
			remainder.Sub(remainder, divisor)
			setBit(quotient, uint(shift))
		}
		divisor.Rsh(divisor, 1)
		shift--
	}
	return quotient, remainder
}

// setBit sets bit n of z in place.
func setBit(z *BigUint256, n uint) {
	z.limbs[n/64] |= 1 << (n % 64)
}

// Bytes returns the big-endian, zero-padded 32-byte representation of z.
func (z *BigUint256) Bytes() []byte {
	buf := make([]byte, 32)
	for i := 0; i < limbCount; i++ {
		binary.BigEndian.PutUint64(buf[(limbCount-1-i)*8:], z.limbs[i])
	}
	return buf
}

// SetBytes sets z from a big-endian byte slice and returns z. Slices shorter
// than 32 bytes are zero-extended on the left; slices longer than 32 bytes
// are truncated to their low 32 bytes.
func (z *BigUint256) SetBytes(b []byte) *BigUint256 {
	var buf [32]byte
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	copy(buf[32-len(b):], b)
	for i := 0; i < limbCount; i++ {
		z.limbs[i] = binary.BigEndian.Uint64(buf[(limbCount-1-i)*8:])
	}
	return z
}

// SetLittleEndianBytes sets z from a little-endian byte slice (the wire and
// hash convention used for block hashes) and returns z.
func (z *BigUint256) SetLittleEndianBytes(b []byte) *BigUint256 {
	var buf [32]byte
	if len(b) > 32 {
		b = b[:32]
	}
	copy(buf[:], b)
	for i := 0; i < limbCount; i++ {
		z.limbs[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return z
}

// String returns the big-endian hex encoding of z, zero-padded to 64
// characters, the conventional way to print a difficulty target in debug
// logs.
func (z *BigUint256) String() string {
	return hex.EncodeToString(z.Bytes())
}
