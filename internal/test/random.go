package test

import "math/rand/v2"

const mixedCaseSymbols = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomMixedCaseCode returns a mixed-case alphanumeric code with length in
// [minLen, maxLen], suitable for exercising code normalisation.
func RandomMixedCaseCode(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	buf := make([]byte, minLen+rand.IntN(maxLen-minLen+1))
	for i := range buf {
		buf[i] = mixedCaseSymbols[rand.IntN(len(mixedCaseSymbols))]
	}
	return string(buf)
}
