package usecase

import "math/rand/v2"

const (
	// CouponCodeAlphabet omits I, O, 0 and 1.
	CouponCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	CouponCodeLength   = 8
)

// GenerateCouponCode returns a random code of CouponCodeLength symbols
// drawn uniformly with replacement from CouponCodeAlphabet.
func GenerateCouponCode() string {
	buf := make([]byte, CouponCodeLength)
	for i := range buf {
		buf[i] = CouponCodeAlphabet[rand.IntN(len(CouponCodeAlphabet))]
	}
	return string(buf)
}
