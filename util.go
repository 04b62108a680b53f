package fixnum

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b *BigNumber) BigNumber {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b *BigNumber) BigNumber {
	if b.GreaterThan(a) {
		return *b
	}
	return *a
}

func Smaller(a, b *BigNumber) BigNumber {
	if b.LessThan(a) {
		return *b
	}
	return *a
}
