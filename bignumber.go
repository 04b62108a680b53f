package fixnum

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
)

// BigNumber is an unsigned integer of NumberSize limbs in base Base. Limb 0 is
// the least significant. The zero value is the number 0.
type BigNumber struct {
	limbs [NumberSize]uint32
}

func Zero() BigNumber { return BigNumber{} }

func From16(v uint16) (out BigNumber) {
	out.limbs[0] = uint32(v)
	return out
}

// From32 splits v across the two lowest limbs. Every uint32 is representable.
func From32(v uint32) (out BigNumber) {
	out.limbs[0] = v % Base
	out.limbs[1] = v / Base
	return out
}

func From64(v uint64) (out BigNumber) {
	for i := 0; v != 0; i++ {
		out.limbs[i] = uint32(v & limbMask)
		v >>= limbShift
	}
	return out
}

// FromLimb creates a BigNumber holding a single limb. v must already be
// reduced; values >= Base are rejected rather than stored unreduced.
func FromLimb(v uint32) (out BigNumber, err error) {
	if v >= Base {
		return out, fmt.Errorf("fixnum: limb value %d is not less than %d: %w", v, Base, ErrInvalidInput)
	}
	out.limbs[0] = v
	return out, nil
}

// FromNativeBytes reads exactly ByteSize bytes as NumberSize consecutive
// 4-byte limbs in the host's byte order. This is not a portable format.
// Buffers of the wrong length, or containing a limb >= Base, are rejected.
func FromNativeBytes(b []byte) (out BigNumber, err error) {
	if len(b) != ByteSize {
		return out, fmt.Errorf("fixnum: raw buffer must be %d bytes, found %d: %w", ByteSize, len(b), ErrInvalidInput)
	}
	for i := range out.limbs {
		v := binary.NativeEndian.Uint32(b[i*LimbBytes:])
		if v >= Base {
			return BigNumber{}, fmt.Errorf("fixnum: limb %d value %d is not less than %d: %w", i, v, Base, ErrInvalidInput)
		}
		out.limbs[i] = v
	}
	return out, nil
}

// FromBigInt creates a BigNumber from a big.Int. Negative values produce 0,
// values that do not fit produce MaxBigNumber. Both set accurate to 'false'.
func FromBigInt(v *big.Int) (out BigNumber, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > NumberSize*limbShift {
		return MaxBigNumber, false
	}

	const limbsPerWord = intSize / limbShift
	for wi, w := range v.Bits() {
		for k := 0; k < limbsPerWord; k++ {
			idx := wi*limbsPerWord + k
			if idx >= NumberSize {
				break
			}
			out.limbs[idx] = uint32(uint(w)>>(uint(k)*limbShift)) & limbMask
		}
	}
	return out, true
}

// PutNativeBytes is the inverse of FromNativeBytes. dst must be exactly
// ByteSize bytes long.
func (n *BigNumber) PutNativeBytes(dst []byte) error {
	if len(dst) != ByteSize {
		return fmt.Errorf("fixnum: raw buffer must be %d bytes, found %d: %w", ByteSize, len(dst), ErrInvalidInput)
	}
	for i, v := range n.limbs {
		binary.NativeEndian.PutUint32(dst[i*LimbBytes:], v)
	}
	return nil
}

func (n *BigNumber) IsZero() bool { return n.limbs == zeroBigNumber.limbs }

// Limb returns limb i, where 0 is the least significant. It panics if i is
// outside [0, NumberSize).
func (n *BigNumber) Limb(i int) uint32 { return n.limbs[i] }

// Limbs returns a copy of the limb array.
func (n *BigNumber) Limbs() [NumberSize]uint32 { return n.limbs }

// LimbLen returns the number of limbs up to and including the most
// significant nonzero one. It is 0 for the zero value.
func (n *BigNumber) LimbLen() int {
	for i := NumberSize - 1; i >= 0; i-- {
		if n.limbs[i] != 0 {
			return i + 1
		}
	}
	return 0
}

// BitLen returns the length of the absolute value of n in bits.
func (n *BigNumber) BitLen() int {
	ln := n.LimbLen()
	if ln == 0 {
		return 0
	}
	return (ln-1)*limbShift + bits.Len32(n.limbs[ln-1])
}

// LeadingZeros returns the number of leading zero bits in the 32-bit storage
// of the most significant nonzero limb. The result does not account for the
// limb's position; see BitLen for that. A zero value reports
// NumberSize * LimbBits.
func (n *BigNumber) LeadingZeros() uint {
	for i := NumberSize - 1; i >= 0; i-- {
		if n.limbs[i] != 0 {
			return uint(bits.LeadingZeros32(n.limbs[i]))
		}
	}
	return NumberSize * LimbBits
}

// RotateRight cyclically moves every limb shift%NumberSize positions towards
// the most significant end. Limbs pushed past the top reappear at the bottom.
func (n *BigNumber) RotateRight(shift uint) {
	s := int(shift % NumberSize)
	if s == 0 {
		return
	}
	tmp := n.limbs
	copy(n.limbs[s:], tmp[:NumberSize-s])
	copy(n.limbs[:s], tmp[NumberSize-s:])
}

func (n *BigNumber) IntoBigInt(b *big.Int) {
	const limbsPerWord = intSize / limbShift

	ln := n.LimbLen()
	need := (ln + limbsPerWord - 1) / limbsPerWord

	words := b.Bits()
	if cap(words) < need {
		words = make([]big.Word, need)
	} else {
		words = words[:need]
		for i := range words {
			words[i] = 0
		}
	}
	for i := 0; i < ln; i++ {
		words[i/limbsPerWord] |= big.Word(n.limbs[i]) << (uint(i%limbsPerWord) * limbShift)
	}
	b.SetBits(words)
}

func (n *BigNumber) AsBigInt() *big.Int {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}

func (n *BigNumber) Cmp(m *BigNumber) int {
	for i := NumberSize - 1; i >= 0; i-- {
		if a, b := n.limbs[i], m.limbs[i]; a > b {
			return 1
		} else if a < b {
			return -1
		}
	}
	return 0
}

func (n *BigNumber) Equal(m *BigNumber) bool            { return n.limbs == m.limbs }
func (n *BigNumber) GreaterThan(m *BigNumber) bool      { return n.Cmp(m) > 0 }
func (n *BigNumber) GreaterOrEqualTo(m *BigNumber) bool { return n.Cmp(m) >= 0 }
func (n *BigNumber) LessThan(m *BigNumber) bool         { return n.Cmp(m) < 0 }
func (n *BigNumber) LessOrEqualTo(m *BigNumber) bool    { return n.Cmp(m) <= 0 }

// AddAssign sets n to n+m. A carry out of the top limb is discarded, so the
// result wraps modulo Base^NumberSize.
func (n *BigNumber) AddAssign(m *BigNumber) {
	var carry uint64
	for i := range n.limbs {
		sum := uint64(n.limbs[i]) + uint64(m.limbs[i]) + carry
		n.limbs[i] = uint32(sum % Base)
		if sum < Base {
			carry = 0
		} else {
			carry = 1
		}
	}
}

func (n *BigNumber) Add(m *BigNumber) (out BigNumber) {
	out = *n
	out.AddAssign(m)
	return out
}

// SubAssign sets n to n-m, or to 0 if m > n. It never wraps.
func (n *BigNumber) SubAssign(m *BigNumber) {
	if m.GreaterThan(n) {
		*n = BigNumber{}
		return
	}

	var borrow int64
	for i := range n.limbs {
		diff := int64(n.limbs[i]) - int64(m.limbs[i]) + borrow
		n.limbs[i] = uint32(floorMod(diff, Base))
		if diff >= 0 {
			borrow = 0
		} else {
			borrow = -1
		}
	}
}

func (n *BigNumber) Sub(m *BigNumber) (out BigNumber) {
	out = *n
	out.SubAssign(m)
	return out
}

// MulAssign sets n to n*m truncated to the low NumberSize limbs. Partial
// products and carries that land past the top limb are dropped.
func (n *BigNumber) MulAssign(m *BigNumber) {
	var w [NumberSize]uint32

	na, nb := n.LimbLen(), m.LimbLen()
	for i := 0; i < na; i++ {
		a := uint64(n.limbs[i])
		if a == 0 {
			continue
		}

		var carry uint64
		k := i
		for j := 0; j < nb && k < NumberSize; j, k = j+1, k+1 {
			acc := uint64(w[k]) + a*uint64(m.limbs[j]) + carry
			w[k] = uint32(acc % Base)
			carry = acc / Base
		}
		for ; carry != 0 && k < NumberSize; k++ {
			acc := uint64(w[k]) + carry
			w[k] = uint32(acc % Base)
			carry = acc / Base
		}
	}

	n.limbs = w
}

func (n *BigNumber) Mul(m *BigNumber) (out BigNumber) {
	out = *n
	out.MulAssign(m)
	return out
}
