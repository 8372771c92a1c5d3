// Package invitecode generates short join codes for teams.
package invitecode

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Alphabet deliberately excludes lookalike characters (0/O, 1/I/L)
// so codes survive being read aloud or retyped from a screenshot.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Length is the number of characters in a generated code.
const Length = 8

// New returns a random invite code of Length characters from Alphabet.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	var sb strings.Builder
	sb.Grow(Length)
	for _, b := range buf {
		sb.WriteByte(Alphabet[int(b)%len(Alphabet)])
	}
	return sb.String(), nil
}

// Valid reports whether s has the shape of an invite code.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !strings.ContainsRune(Alphabet, rune(s[i])) {
			return false
		}
	}
	return true
}
