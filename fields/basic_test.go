package fields

import (
	"strconv"
	"testing"
)

func TestString(t *testing.T) {
	s := String()
	s.SetText("anything at all")

	if v, ok := s.Value(); !ok || v != "anything at all" {
		t.Errorf("expected the text back, got (%q, %v)", v, ok)
	}
	if !s.Insert("!", s.Len()) {
		t.Error("string fields should accept any insertion")
	}
}

func TestCharset(t *testing.T) {
	s := Charset(strconv.Atoi, "0123456789")

	if !s.Insert("42", 0) {
		t.Fatal("digits should be accepted")
	}
	if s.Insert("x", 2) {
		t.Error("non-charset character should be rejected")
	}
	if v, ok := s.Value(); !ok || v != 42 {
		t.Errorf("expected 42, got (%v, %v)", v, ok)
	}
}

func TestOptionalEmpty(t *testing.T) {
	s := Optional(strconv.Atoi)

	v, ok := s.Value()
	if !ok {
		t.Fatalf("empty buffer should parse to unset, got error %v", s.LastError())
	}
	if v.Set {
		t.Error("empty buffer should parse to an unset value")
	}
	if s.LastError() != nil {
		t.Errorf("unexpected error: %v", s.LastError())
	}
}

func TestOptionalPresent(t *testing.T) {
	s := Optional(strconv.Atoi)
	s.SetText("12")

	v, ok := s.Value()
	if !ok || !v.Set || v.Value != 12 {
		t.Errorf("expected set value 12, got (%+v, %v)", v, ok)
	}
}

func TestOptionalError(t *testing.T) {
	s := Optional(strconv.Atoi)
	s.SetText("twelve")

	if _, ok := s.Value(); ok {
		t.Error("unparseable text should not produce a value")
	}
	if s.LastError() == nil {
		t.Error("expected a parse error")
	}
}
