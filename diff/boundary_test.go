package diff

import "testing"

func TestBoundariesASCII(t *testing.T) {
	if got := NextBoundary("abc", 0); got != 1 {
		t.Errorf("NextBoundary(0) = %d, want 1", got)
	}
	if got := NextBoundary("abc", 2); got != 3 {
		t.Errorf("NextBoundary(2) = %d, want 3", got)
	}
	if got := NextBoundary("abc", 3); got != 3 {
		t.Errorf("NextBoundary at end = %d, want 3", got)
	}
	if got := PrevBoundary("abc", 3); got != 2 {
		t.Errorf("PrevBoundary(3) = %d, want 2", got)
	}
	if got := PrevBoundary("abc", 0); got != 0 {
		t.Errorf("PrevBoundary(0) = %d, want 0", got)
	}
}

func TestBoundariesCombiningMark(t *testing.T) {
	// "e" + combining acute accent is one grapheme cluster of two runes.
	text := "x" + "e\u0301" + "y"

	if got := NextBoundary(text, 1); got != 3 {
		t.Errorf("NextBoundary(1) = %d, want 3 (cluster is indivisible)", got)
	}
	if got := PrevBoundary(text, 3); got != 1 {
		t.Errorf("PrevBoundary(3) = %d, want 1", got)
	}
}

func TestBoundariesEmoji(t *testing.T) {
	// Family emoji: three people joined by ZWJs, one cluster of five runes.
	family := "\U0001F468\u200D\U0001F469\u200D\U0001F466"
	text := "a" + family + "b"
	clusterLen := len([]rune(family))

	if got := NextBoundary(text, 1); got != 1+clusterLen {
		t.Errorf("NextBoundary(1) = %d, want %d", got, 1+clusterLen)
	}
	if got := PrevBoundary(text, 1+clusterLen); got != 1 {
		t.Errorf("PrevBoundary(%d) = %d, want 1", 1+clusterLen, got)
	}
}
