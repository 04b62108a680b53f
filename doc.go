/*
Package fixnum provides BigNumber, a fixed-capacity unsigned integer stored as
NumberSize limbs in base 65536, for places where a big integer has to live in a
plain value and no allocator can be relied on.

BigNumber is a value type. Copying one copies the whole limb array; no method
allocates or keeps a reference to its arguments. Methods take pointers so the
~10KB array is not copied on every call.

Simple example:

	a := fixnum.From32(100000)
	b := fixnum.From16(7)
	q, err := a.Quo(&b)
	// q == 14285, err == nil

BigNumber values can be created from a variety of sources:

	From16(v uint16) BigNumber
	From32(v uint32) BigNumber
	From64(v uint64) BigNumber
	FromLimb(v uint32) (BigNumber, error)
	FromNativeBytes(b []byte) (BigNumber, error)
	FromBigInt(v *big.Int) (out BigNumber, accurate bool)

Arithmetic is fixed-width:

	- Add and Mul wrap modulo Base^NumberSize without reporting overflow.
	- Sub saturates at zero instead of wrapping.
	- Quo is floor division and fails with ErrDivisionByZero on a zero divisor.

Every constructor and every arithmetic operation keeps each limb in [0, Base).
*/
package fixnum
