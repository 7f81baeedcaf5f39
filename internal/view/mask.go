package view

import (
	"strings"
	"unicode"
)

const maskRune = '*'

// MaskEmail keeps the first two characters of the local part, e.g.
// "priya.sharma@example.com" → "pr**********@example.com".
func MaskEmail(email string) string {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || local == "" {
		return maskTail([]rune(email), 0)
	}
	runes := []rune(local)
	keep := min(2, len(runes))
	if len(runes) <= 2 {
		keep = 1
	}
	return maskTail(runes, keep) + "@" + domain
}

// MaskPhone hides every digit except the last four; separators are kept.
func MaskPhone(phone string) string {
	return maskDigits(strings.TrimSpace(phone), 4)
}

// MaskAccount hides an account or card number except its last four digits
// and drops separators, e.g. "1234 5678 9012" → "********9012".
func MaskAccount(account string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '-' {
			return -1
		}
		return r
	}, account)
	runes := []rune(digits)
	if len(runes) <= 4 {
		return digits
	}
	return strings.Repeat(string(maskRune), len(runes)-4) + string(runes[len(runes)-4:])
}

func maskTail(runes []rune, keep int) string {
	var b strings.Builder
	for i, r := range runes {
		if i < keep {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(maskRune)
	}
	return b.String()
}

func maskDigits(s string, visible int) string {
	total := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			total++
		}
	}

	var b strings.Builder
	seen := 0
	for _, r := range s {
		if !unicode.IsDigit(r) {
			b.WriteRune(r)
			continue
		}
		seen++
		if seen > total-visible {
			b.WriteRune(r)
		} else {
			b.WriteRune(maskRune)
		}
	}
	return b.String()
}
