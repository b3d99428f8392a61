package typedtext

import "testing"

func TestCharset(t *testing.T) {
	v := Charset("0123456789")

	if !v("", "42", 0) {
		t.Error("digits should be accepted")
	}
	if v("", "4x2", 0) {
		t.Error("non-charset character should be rejected")
	}
	if !v("", "", 0) {
		t.Error("empty insertion should be accepted")
	}
}

func TestAll(t *testing.T) {
	v := All(Charset("abc"), MaxLen(2))

	if !v("a", "b", 1) {
		t.Error("expected acceptance")
	}
	if v("a", "x", 1) {
		t.Error("charset member should gate")
	}
	if v("ab", "c", 2) {
		t.Error("length cap should gate")
	}
}

func TestMaxLen(t *testing.T) {
	v := MaxLen(3)

	if !v("ab", "c", 2) {
		t.Error("expected acceptance at the cap")
	}
	if v("abc", "d", 3) {
		t.Error("expected rejection past the cap")
	}
}
