package errors

import "strings"

// MaxSymbols is the largest number of distinct symbols a partition may name.
// Arrangements store one symbol per byte.
const MaxSymbols = 256

// ValidatePartition checks that parts is a well-formed partition: at least
// one part, every multiplicity positive, and no more than MaxSymbols parts.
func ValidatePartition(parts []int) error {
	if len(parts) == 0 {
		return New(ErrCodeInvalidPartition, "partition cannot be empty")
	}
	if len(parts) > MaxSymbols {
		return New(ErrCodeInvalidPartition, "partition has %d parts (max %d)", len(parts), MaxSymbols)
	}
	for i, n := range parts {
		if n <= 0 {
			return New(ErrCodeInvalidPartition, "multiplicity at position %d must be positive, got %d", i, n)
		}
	}
	return nil
}

// ValidateWord checks that a bead word is non-empty and free of whitespace.
func ValidateWord(word string) error {
	if word == "" {
		return New(ErrCodeInvalidInput, "word cannot be empty")
	}
	if strings.ContainsAny(word, " \t\r\n") {
		return New(ErrCodeInvalidInput, "word cannot contain whitespace: %q", word)
	}
	return nil
}
