package fields

import (
	"testing"
)

func TestNumberTyping(t *testing.T) {
	s := Number[float64]()

	if !s.Insert("-", 0) {
		t.Fatal("leading sign should be accepted")
	}
	if !s.Insert("1", 1) {
		t.Fatal("digit should be accepted")
	}
	if !s.Insert(".", 2) {
		t.Fatal("first decimal point should be accepted")
	}
	if !s.Insert("5", 3) {
		t.Fatal("fractional digit should be accepted")
	}

	if s.Text() != "-1.5" {
		t.Errorf("expected %q, got %q", "-1.5", s.Text())
	}
	if v, ok := s.Value(); !ok || v != -1.5 {
		t.Errorf("expected -1.5, got (%v, %v)", v, ok)
	}
}

func TestNumberRejections(t *testing.T) {
	s := Number[float64]()
	s.SetText("1.5")

	if s.Insert(".", 3) {
		t.Error("second decimal point should be rejected")
	}
	if s.Insert("x", 3) {
		t.Error("letter should be rejected")
	}
	if s.Insert("-", 3) {
		t.Error("sign away from index 0 should be rejected")
	}
	if s.Text() != "1.5" {
		t.Errorf("text changed on rejection: %q", s.Text())
	}
}

func TestNumberIntermediateStates(t *testing.T) {
	s := Number[float64]()

	if !s.Insert("-", 0) {
		t.Fatal("lone sign should be accepted as input")
	}
	if !s.IsValid() {
		t.Error("accepted edit must leave the state valid")
	}
	if _, ok := s.Value(); ok {
		t.Error("lone sign should not parse")
	}
	if s.LastError() == nil {
		t.Error("expected a parse error for a lone sign")
	}
}

func TestInt(t *testing.T) {
	s := Int[int]()

	if !s.Insert("-42", 0) {
		t.Fatal("expected acceptance")
	}
	if v, ok := s.Value(); !ok || v != -42 {
		t.Errorf("expected -42, got (%v, %v)", v, ok)
	}

	if s.Insert(".", 3) {
		t.Error("decimal point should be rejected for integers")
	}
}

func TestIntBitSize(t *testing.T) {
	s := Int[int8]()

	s.SetText("127")
	if v, ok := s.Value(); !ok || v != 127 {
		t.Errorf("expected 127, got (%v, %v)", v, ok)
	}

	s.SetText("128")
	if _, ok := s.Value(); ok {
		t.Error("128 should overflow int8")
	}
	if s.LastError() == nil {
		t.Error("expected a range error")
	}
}

func TestUint(t *testing.T) {
	s := Uint[uint]()

	if s.Insert("-", 0) {
		t.Error("minus should be rejected for unsigned")
	}
	if !s.Insert("+", 0) {
		t.Fatal("leading plus should be accepted")
	}
	if !s.Insert("42", 1) {
		t.Fatal("digits should be accepted")
	}
	if v, ok := s.Value(); !ok || v != 42 {
		t.Errorf("expected 42, got (%v, %v)", v, ok)
	}
}
