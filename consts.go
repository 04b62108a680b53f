package fixnum

import (
	"errors"
	"math/big"
)

const (
	// NumberSize is the number of limbs held by every BigNumber.
	NumberSize = 10 * 255

	// Base is the radix of a limb. A reduced limb is always less than Base.
	Base = 1 << 16

	// LimbBytes is the storage width of one limb, which is wider than Base
	// needs.
	LimbBytes = 4
	LimbBits  = LimbBytes * 8

	// ByteSize is the exact buffer length accepted by FromNativeBytes.
	ByteSize = NumberSize * LimbBytes

	limbMask  = Base - 1
	limbShift = 16

	intSize = 32 << (^uint(0) >> 63)
)

var (
	ErrInvalidInput   = errors.New("fixnum: invalid input")
	ErrDivisionByZero = errors.New("fixnum: division by zero")
)

var (
	MaxBigNumber = maxBigNumber()

	zeroBigNumber BigNumber

	big0 = new(big.Int).SetInt64(0)

	// wrapBig is Base^NumberSize, used to simulate over/underflow:
	wrapBig = new(big.Int).Lsh(big.NewInt(1), NumberSize*limbShift)

	maxBig = new(big.Int).Sub(wrapBig, big.NewInt(1))
)

func maxBigNumber() (n BigNumber) {
	for i := range n.limbs {
		n.limbs[i] = limbMask
	}
	return n
}
