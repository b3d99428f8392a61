package diff

import "github.com/rivo/uniseg"

// NextBoundary returns the character index of the next grapheme cluster
// boundary strictly after index, clamped to the end of the text.
func NextBoundary(text string, index int) int {
	total := 0
	state := -1
	rest := text

	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := total + len([]rune(cluster))
		if next > index {
			return next
		}
		total = next
	}

	return total
}

// PrevBoundary returns the character index of the closest grapheme cluster
// boundary strictly before index, clamped to zero.
func PrevBoundary(text string, index int) int {
	total := 0
	state := -1
	rest := text

	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		next := total + len([]rune(cluster))
		if next >= index {
			return total
		}
		total = next
	}

	return total
}
