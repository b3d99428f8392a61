package typedtext

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrNoParser is reported by LastError when a State was constructed without a
// parser. The State remains usable; it just never produces a value.
var ErrNoParser = errors.New("no parser configured")

// ValidateFunc reports whether inserting insertion into current at the given
// character index should be accepted. current is the text before the edit.
// It must be side-effect-free and must not panic for any input.
type ValidateFunc func(current, insertion string, index int) bool

// ParseFunc converts the full text buffer into a typed value. It must be
// side-effect-free and must not panic for any input, including the empty
// string.
type ParseFunc[T any] func(text string) (T, error)

// FormatFunc renders a value back into buffer text for SetValue.
type FormatFunc[T any] func(v T) string

// State is the single source of truth for an editable typed text field: what
// the user has typed so far, whether it is acceptable, and what it means.
//
// Text only ever changes through edits the validator accepted, through the
// always-accepted deletion path, or through the unchecked SetText/SetValue
// escape hatches. The validity flag and parsed value are recomputed on every
// change and never go stale relative to the text.
type State[T any] struct {
	text     string
	value    T
	hasValue bool
	valid    bool
	lastErr  error

	parse     ParseFunc[T]
	validate  ValidateFunc
	format    FormatFunc[T]
	keepLast  bool
	normalize bool
}

// New creates a State with the given parser. The validator defaults to
// AllowAll; use WithValidator to gate insertions. A nil parser is tolerated:
// the State then always reports ErrNoParser and never produces a value.
func New[T any](parse ParseFunc[T], opts ...Option[T]) *State[T] {
	s := &State[T]{
		parse:    parse,
		validate: AllowAll,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.parse == nil {
		s.parse = func(string) (T, error) {
			var zero T
			return zero, ErrNoParser
		}
	}

	// Initial text is accepted without validation (bootstrap exception) but
	// normalized, classified, and parsed immediately, so a State constructed
	// with text t is indistinguishable from one constructed empty then
	// SetText(t).
	if s.normalize {
		s.text = normalizeText(s.text)
	}
	s.refresh()

	return s
}

// Read Operations

// Text returns the current buffer content. This is the only value a UI layer
// should display.
func (s *State[T]) Text() string {
	return s.text
}

// Len returns the buffer length in characters (runes).
func (s *State[T]) Len() int {
	return utf8.RuneCountInString(s.text)
}

// IsEmpty returns true if the buffer is empty.
func (s *State[T]) IsEmpty() bool {
	return s.text == ""
}

// Value returns the last successfully parsed value of the current text.
// ok is false when the buffer is currently unparseable.
func (s *State[T]) Value() (T, bool) {
	if !s.hasValue {
		var zero T
		return zero, false
	}
	return s.value, true
}

// IsValid returns the validator's verdict on the current text. A valid text
// is not necessarily parseable: an intermediate string like "-" can be
// acceptable input while the parser still fails.
func (s *State[T]) IsValid() bool {
	return s.valid
}

// LastError returns the parser's error from the most recent parse attempt,
// or nil if it succeeded.
func (s *State[T]) LastError() error {
	return s.lastErr
}

// Write Operations

// SetText replaces the buffer unconditionally, bypassing the validator. It
// is the programmatic escape hatch for resets ("clear", "load default").
// The text is re-parsed and validity is reclassified; the call never fails.
func (s *State[T]) SetText(text string) {
	if s.normalize {
		text = normalizeText(text)
	}
	s.text = text
	s.refresh()
}

// SetValue replaces the buffer with a rendering of v and records v as the
// parsed value directly, bypassing both the validator and the parser. The
// rendering uses the WithFormatter option if set, fmt.Sprint otherwise.
func (s *State[T]) SetValue(v T) {
	if s.format != nil {
		s.text = s.format(v)
	} else {
		s.text = fmt.Sprint(v)
	}
	s.value = v
	s.hasValue = true
	s.valid = true
	s.lastErr = nil
}

// refresh reclassifies validity and re-parses after the buffer changed
// through a path that bypassed the validator. Validity is classified by
// running the validator in no-op edit mode: insertion of "" at index 0.
func (s *State[T]) refresh() {
	s.valid = s.validate(s.text, "", 0)
	s.runParser()
	// A value is never exposed for text classified invalid, even if the
	// parser happened to accept it.
	if !s.valid {
		s.dropValue()
	}
}

// runParser re-parses the current text and updates the value and error.
func (s *State[T]) runParser() {
	v, err := s.parse(s.text)
	if err != nil {
		s.lastErr = err
		if !s.keepLast {
			s.dropValue()
		}
		return
	}
	s.lastErr = nil
	s.value = v
	s.hasValue = true
}

func (s *State[T]) dropValue() {
	var zero T
	s.value = zero
	s.hasValue = false
}
