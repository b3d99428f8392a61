package typedtext

// Insert proposes inserting text at the given character index. If the
// validator accepts, the buffer is updated, validity is set, and the text is
// re-parsed; otherwise nothing changes. Returns whether the edit was
// accepted. An out-of-range index is a rejection, never a fault.
func (s *State[T]) Insert(text string, index int) bool {
	if s.normalize {
		text = normalizeText(text)
	}

	r := []rune(s.text)
	if index < 0 || index > len(r) {
		return false
	}

	if !s.validate(s.text, text, index) {
		return false
	}

	s.text = string(r[:index]) + text + string(r[index:])
	s.valid = true
	s.runParser()
	return true
}

// Delete removes the character range [start, end). Deletions are always
// accepted: validators only gate insertions, so a shorter string is always
// reachable and the user cannot be trapped in an invalid state. The range is
// clamped to the buffer.
func (s *State[T]) Delete(start, end int) {
	r := []rune(s.text)
	start = clamp(start, 0, len(r))
	end = clamp(end, 0, len(r))
	if start >= end {
		return
	}

	s.text = string(r[:start]) + string(r[end:])
	s.valid = true
	s.runParser()
}

// Replace proposes replacing the character range [start, end) with text.
// The replaced range is removed first (deletion is always accepted) and the
// insertion is validated against the remaining text at index start. If the
// insertion is rejected the whole edit is discarded. Returns whether the
// edit was accepted.
func (s *State[T]) Replace(start, end int, text string) bool {
	if s.normalize {
		text = normalizeText(text)
	}

	r := []rune(s.text)
	start = clamp(start, 0, len(r))
	end = clamp(end, 0, len(r))
	if start > end {
		return false
	}

	remainder := string(r[:start]) + string(r[end:])
	if !s.validate(remainder, text, start) {
		return false
	}

	s.text = string(r[:start]) + text + string(r[end:])
	s.valid = true
	s.runParser()
	return true
}

// ProposeEdit proposes replacing the whole buffer with newText, where index
// is the character index at which the change originates. This is the entry
// point for toolkits that report edits as "here is the new full string".
//
// A strictly shorter newText is treated as a deletion and accepted
// unconditionally. Otherwise the inserted substring is recovered from index
// and the length delta and run through the validator. An index that does not
// coherently describe an insertion into the current text is a rejection.
// Adapters that only have the old and new buffers should recover index with
// the diff subpackage.
func (s *State[T]) ProposeEdit(newText string, index int) bool {
	if s.normalize {
		newText = normalizeText(newText)
	}

	cur := []rune(s.text)
	next := []rune(newText)

	if len(next) < len(cur) {
		s.text = newText
		s.valid = true
		s.runParser()
		return true
	}

	delta := len(next) - len(cur)
	if index < 0 || index+delta > len(next) {
		return false
	}

	// The proposal must be the current text with delta characters added at
	// index; anything else cannot be validated as an insertion.
	if string(next[:index]) != string(cur[:index]) ||
		string(next[index+delta:]) != string(cur[index:]) {
		return false
	}

	inserted := string(next[index : index+delta])
	if !s.validate(s.text, inserted, index) {
		return false
	}

	s.text = newText
	s.valid = true
	s.runParser()
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
