package fixnum

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestFloorMod(t *testing.T) {
	for _, tc := range []struct {
		x, y, r int64
	}{
		{0, Base, 0},
		{1, Base, 1},
		{Base, Base, 0},
		{Base + 3, Base, 3},
		{-1, Base, Base - 1},
		{-Base, Base, 0},
		{-Base - 1, Base, Base - 1},
		{-7, 3, 2},
	} {
		t.Run(fmt.Sprintf("%d mod %d", tc.x, tc.y), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.r, floorMod(tc.x, tc.y))
		})
	}
}

func TestLimbAt(t *testing.T) {
	tt := assert.WrapTB(t)
	n := MaxBigNumber
	tt.MustEqual(uint64(0), limbAt(&n, -1))
	tt.MustEqual(uint64(limbMask), limbAt(&n, 0))
	tt.MustEqual(uint64(limbMask), limbAt(&n, NumberSize-1))
	tt.MustEqual(uint64(0), limbAt(&n, NumberSize))
}

func TestMulLimbExceeds(t *testing.T) {
	for idx, tc := range []struct {
		r, v    string
		d       uint32
		i       int
		exceeds bool
	}{
		{"0x 0", "0x 1", 1, 0, true},
		{"0x 1", "0x 1", 1, 0, false},
		{"0x FFFF", "0x FFFF", 1, 0, false},
		{"0x FFFE", "0x FFFF", 1, 0, true},
		{"0x FFFE 0001", "0x FFFF", 0xFFFF, 0, false},
		{"0x FFFE 0000", "0x FFFF", 0xFFFF, 0, true},
		{"0x 2 0000 0000", "0x 1 0000 0000", 2, 0, false},
		{"0x 2 0000 0000", "0x 1 0000 0001", 2, 0, true},

		// Window starting above limb 0; lower limbs of r only add to it.
		{"0x 0007 0000 0000", "0x 1 0000 0000", 7, 2, false},
		{"0x 0007 0000 FFFF", "0x 1 0000 0000", 8, 2, true},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, v := bns(tc.r), bns(tc.v)

			vl := v.LimbLen() - tc.i
			if vl < 1 {
				vl = 1
			}

			var scratch [NumberSize + 1]uint32
			got := mulLimbExceeds(&r, &v, tc.d, tc.i, vl, &scratch)
			tt.MustEqual(tc.exceeds, got)

			prod := new(big.Int).Mul(v.AsBigInt(), big.NewInt(int64(tc.d)))
			tt.MustEqual(prod.Cmp(r.AsBigInt()) > 0, got, "disagrees with big.Int")
		})
	}
}

func TestSubMulLimb(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 2000; i++ {
		vBig := randomBig(globalRNG)
		if vBig.Sign() == 0 || vBig.BitLen() > (NumberSize-1)*limbShift {
			continue
		}
		v := accFromBigInt(vBig)
		d := uint32(globalRNG.Intn(Base))

		// r = v*d + extra, with extra < v, stays within the window that starts
		// at limb 0 and spans one limb past v.
		prod := new(big.Int).Mul(vBig, big.NewInt(int64(d)))
		extra := new(big.Int).Rand(globalRNG, vBig)
		rBig := new(big.Int).Add(prod, extra)
		r := accFromBigInt(rBig)

		subMulLimb(&r, &v, d, 0, v.LimbLen())
		tt.MustEqual(extra.String(), r.AsBigInt().String(), "failed at iteration %d", i)
		tt.MustAssert(reduced(&r))
	}
}

func TestSubMulLimbAtTopLimb(t *testing.T) {
	tt := assert.WrapTB(t)

	// v occupies only the highest limb, so the window has nowhere to carry.
	var v, r BigNumber
	v.limbs[NumberSize-1] = 3
	r.limbs[NumberSize-1] = 0xFFFF
	r.limbs[0] = 9

	subMulLimb(&r, &v, 5, NumberSize-1, 1)
	tt.MustEqual(uint32(0xFFFF-15), r.limbs[NumberSize-1])
	tt.MustEqual(uint32(9), r.limbs[0])
}
