package fixnum

import "fmt"

// MustFromLimb is like [FromLimb] but panics if v is not a reduced limb.
func MustFromLimb(v uint32) BigNumber {
	n, err := FromLimb(v)
	if err != nil {
		panic(fmt.Sprintf("MustFromLimb(%v) failed: %v", v, err))
	}
	return n
}

// MustFromNativeBytes is like [FromNativeBytes] but panics if the buffer is
// rejected.
func MustFromNativeBytes(b []byte) BigNumber {
	n, err := FromNativeBytes(b)
	if err != nil {
		panic(fmt.Sprintf("MustFromNativeBytes(%d bytes) failed: %v", len(b), err))
	}
	return n
}

// MustQuo is like [BigNumber.Quo] but panics on division by zero.
func (n *BigNumber) MustQuo(by *BigNumber) BigNumber {
	q, err := n.Quo(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%d limbs) failed: %v", n.LimbLen(), err))
	}
	return q
}
