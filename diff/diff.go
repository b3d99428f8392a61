package diff

import "fmt"

// Edit is a single text change: at character Index, Deleted was removed and
// Inserted was added in its place.
type Edit struct {
	Index    int    // Character index where the change starts
	Deleted  string // Text removed at Index ("" for pure insertions)
	Inserted string // Text added at Index ("" for pure deletions)
}

// Decompose computes the minimal single edit turning old into new. It trims
// the longest common prefix and suffix in rune space; whatever remains is
// the changed region.
func Decompose(oldText, newText string) Edit {
	o := []rune(oldText)
	n := []rune(newText)

	prefix := 0
	for prefix < len(o) && prefix < len(n) && o[prefix] == n[prefix] {
		prefix++
	}

	suffix := 0
	for suffix < len(o)-prefix && suffix < len(n)-prefix &&
		o[len(o)-1-suffix] == n[len(n)-1-suffix] {
		suffix++
	}

	return Edit{
		Index:    prefix,
		Deleted:  string(o[prefix : len(o)-suffix]),
		Inserted: string(n[prefix : len(n)-suffix]),
	}
}

// Apply replays the edit against a buffer and returns the result. The index
// is interpreted in characters; out-of-range edits return the buffer
// unchanged.
func (e Edit) Apply(text string) string {
	r := []rune(text)
	delEnd := e.Index + len([]rune(e.Deleted))
	if e.Index < 0 || delEnd > len(r) {
		return text
	}
	return string(r[:e.Index]) + e.Inserted + string(r[delEnd:])
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.IsNoOp() {
		return "NoOp"
	}
	if e.IsInsert() {
		return fmt.Sprintf("Insert(%d, %q)", e.Index, e.Inserted)
	}
	if e.IsDelete() {
		return fmt.Sprintf("Delete(%d, %q)", e.Index, e.Deleted)
	}
	return fmt.Sprintf("Replace(%d, %q with %q)", e.Index, e.Deleted, e.Inserted)
}

// IsInsert returns true if this is a pure insertion.
func (e Edit) IsInsert() bool {
	return e.Deleted == "" && e.Inserted != ""
}

// IsDelete returns true if this is a pure deletion.
func (e Edit) IsDelete() bool {
	return e.Deleted != "" && e.Inserted == ""
}

// IsReplace returns true if this replaces existing text with new text.
func (e Edit) IsReplace() bool {
	return e.Deleted != "" && e.Inserted != ""
}

// IsNoOp returns true if this edit does nothing.
func (e Edit) IsNoOp() bool {
	return e.Deleted == "" && e.Inserted == ""
}

// Delta returns the change in character count caused by this edit.
func (e Edit) Delta() int {
	return len([]rune(e.Inserted)) - len([]rune(e.Deleted))
}
