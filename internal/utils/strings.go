package utils

import (
	"math/rand"
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// AlphaNumericCode builds an n-char uppercase code seeded from the given
// name (alphanumeric runes of the name first, random padding after).
func AlphaNumericCode(n int, seed string) string {
	if n <= 0 {
		return ""
	}
	out := make([]byte, 0, n)
	for _, r := range strings.ToUpper(seed) {
		if len(out) == n {
			break
		}
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out = append(out, byte(r))
		}
	}
	for len(out) < n {
		out = append(out, codeAlphabet[rand.Intn(len(codeAlphabet))])
	}
	return string(out)
}
