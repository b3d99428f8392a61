package typedtext

import "strings"

// AllowAll accepts every insertion. It is the default validator.
func AllowAll(current, insertion string, index int) bool {
	return true
}

// Charset returns a validator that accepts an insertion only if every one of
// its characters appears in set.
func Charset(set string) ValidateFunc {
	return func(_, insertion string, _ int) bool {
		for _, r := range insertion {
			if !strings.ContainsRune(set, r) {
				return false
			}
		}
		return true
	}
}

// All combines validators; an insertion is accepted only if every validator
// accepts it.
func All(validators ...ValidateFunc) ValidateFunc {
	return func(current, insertion string, index int) bool {
		for _, v := range validators {
			if !v(current, insertion, index) {
				return false
			}
		}
		return true
	}
}

// MaxLen returns a validator that rejects insertions that would grow the
// buffer beyond n characters.
func MaxLen(n int) ValidateFunc {
	return func(current, insertion string, _ int) bool {
		return len([]rune(current))+len([]rune(insertion)) <= n
	}
}
