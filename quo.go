package fixnum

// Quo returns the floor of n/by. It fails with ErrDivisionByZero if by is
// zero.
func (n *BigNumber) Quo(by *BigNumber) (q BigNumber, err error) {
	q, _, err = n.quoRem(by)
	return q, err
}

// QuoAssign sets n to the floor of n/by. If by is zero, n is left unchanged
// and ErrDivisionByZero is returned.
func (n *BigNumber) QuoAssign(by *BigNumber) error {
	q, _, err := n.quoRem(by)
	if err != nil {
		return err
	}
	*n = q
	return nil
}

// quoRem is schoolbook long division, one base-Base digit at a time from the
// most significant position down. At position i the divisor is aligned by
// rotating it right by i limbs; positions where that rotation would wrap are
// above rl-dl and always have a zero digit, so they are skipped.
func (n *BigNumber) quoRem(by *BigNumber) (q, r BigNumber, err error) {
	dl := by.LimbLen()
	if dl == 0 {
		return q, r, ErrDivisionByZero
	}

	r = *n
	rl := r.LimbLen()
	if rl < dl {
		return q, r, nil // it's 100% remainder
	}

	var shifted BigNumber
	var scratch [NumberSize + 1]uint32

	for i := rl - dl; i >= 0; i-- {
		shifted = *by
		shifted.RotateRight(uint(i))

		d := quoDigit(&r, &shifted, i, dl, &scratch)
		if d != 0 {
			subMulLimb(&r, &shifted, d, i, dl)
		}
		q.limbs[i] = d
	}

	return q, r, nil
}

// quoDigit returns the largest d < Base such that v*d <= r, where v occupies
// limbs [i, i+vl) and r < v*Base.
//
// The top limbs of r and v bound the digit before searching. With a one or two
// limb divisor the bound is exact; otherwise it leaves at most a couple of
// candidates for the binary search.
func quoDigit(r, v *BigNumber, i, vl int, scratch *[NumberSize + 1]uint32) uint32 {
	top := i + vl - 1

	var rTop, vTop uint64
	if vl == 1 {
		rTop = limbAt(r, top+1)<<limbShift | limbAt(r, top)
		vTop = limbAt(v, top)
	} else {
		rTop = limbAt(r, top+1)<<(2*limbShift) | limbAt(r, top)<<limbShift | limbAt(r, top-1)
		vTop = limbAt(v, top)<<limbShift | limbAt(v, top-1)
	}

	hi := rTop / vTop
	lo := hi
	if vl > 2 {
		lo = rTop / (vTop + 1)
	}
	if hi > limbMask {
		hi = limbMask
	}
	if lo > hi {
		lo = hi
	}

	for lo < hi {
		mid := (lo + hi + 1) / 2
		if mulLimbExceeds(r, v, uint32(mid), i, vl, scratch) {
			hi = mid - 1
		} else {
			lo = mid
		}
	}
	return uint32(lo)
}
