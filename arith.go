package fixnum

// floorMod returns x mod y in [0, y) for y > 0, unlike Go's %, which keeps the
// sign of x.
func floorMod(x, y int64) int64 {
	r := x % y
	if r < 0 {
		r += y
	}
	return r
}

// limbAt returns limb k of n, or 0 if k is outside the array.
func limbAt(n *BigNumber, k int) uint64 {
	if k < 0 || k >= NumberSize {
		return 0
	}
	return uint64(n.limbs[k])
}

// mulLimbExceeds reports whether v*d > r. v's significant limbs must lie in
// [i, i+vl) and r must have no nonzero limbs above i+vl. The product is
// built in scratch.
func mulLimbExceeds(r, v *BigNumber, d uint32, i, vl int, scratch *[NumberSize + 1]uint32) bool {
	var carry uint64
	for k := 0; k < vl; k++ {
		p := uint64(v.limbs[i+k])*uint64(d) + carry
		scratch[k] = uint32(p & limbMask)
		carry = p >> limbShift
	}
	scratch[vl] = uint32(carry)

	for k := vl; k >= 0; k-- {
		rv := uint32(limbAt(r, i+k))
		if scratch[k] > rv {
			return true
		} else if scratch[k] < rv {
			return false
		}
	}

	// Equal over the window; r's limbs below i can only make it larger.
	return false
}

// subMulLimb sets r to r - v*d, with v's significant limbs in [i, i+vl). The
// caller guarantees v*d <= r.
func subMulLimb(r, v *BigNumber, d uint32, i, vl int) {
	var carry uint64
	var borrow int64
	for k := i; k <= i+vl && k < NumberSize; k++ {
		p := carry
		if k < i+vl {
			p += uint64(v.limbs[k]) * uint64(d)
		}
		carry = p >> limbShift

		diff := int64(r.limbs[k]) - int64(p&limbMask) + borrow
		r.limbs[k] = uint32(floorMod(diff, Base))
		if diff >= 0 {
			borrow = 0
		} else {
			borrow = -1
		}
	}
}
