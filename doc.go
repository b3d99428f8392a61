// Package typedtext provides a validated, typed text-input state machine.
// It owns a mutable text buffer that a UI layer edits character by character,
// gates every edit through a caller-supplied validator, and re-parses the
// buffer into a typed value whenever an edit is accepted.
//
// The package provides:
//
//   - A generic State[T] holding the raw text, the last parsed value, and
//     a validity flag that never goes stale relative to the text
//   - Edit operations that accept or reject proposed changes per keystroke
//   - An unchecked escape hatch for programmatic resets
//   - Functional options for initial text, validation, formatting, and
//     Unicode normalization of inserted text
//
// Basic usage:
//
//	// A field that parses its contents as a float64
//	s := typedtext.New(func(text string) (float64, error) {
//	    return strconv.ParseFloat(text, 64)
//	})
//
//	s.Insert("4", 0)  // accepted, text is "4"
//	s.Insert("2", 1)  // accepted, text is "42"
//
//	if v, ok := s.Value(); ok {
//	    // v == 42.0
//	}
//
// Edit Model:
//
// All positions are character (rune) indices, not byte offsets. The primary
// operations take the already-decomposed form of an edit: Insert(text, index)
// and Delete(start, end). ProposeEdit accepts a whole replacement buffer plus
// the origin index of the change, for toolkits that only report the new full
// string. Adapters that need to recover an edit from two buffers can use the
// diff subpackage.
//
// Validation gates insertions only. Deletions are always accepted so that a
// shorter string is always reachable and the user can never be trapped in an
// unrecoverable invalid state.
//
// Thread Safety:
//
// A State is not safe for concurrent use. It is designed to back a single UI
// element and be driven synchronously from that element's event loop. Callers
// that need cross-thread access must wrap the whole State in their own mutex.
package typedtext
