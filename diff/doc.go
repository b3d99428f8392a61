// Package diff recovers structured edits from whole-buffer text changes and
// provides grapheme-aware cursor helpers for adapters.
//
// Some UI toolkits report a text change only as "here is the new full
// string". Decompose compares the old and new buffers and produces the
// minimal single edit between them, in character (rune) coordinates, which
// can then be fed to a typedtext state as an insertion, deletion, or
// replacement.
//
// The boundary helpers (NextBoundary, PrevBoundary) move a character index
// across user-perceived characters (grapheme clusters), so that cursor
// movement and backspace behave correctly around combining marks and emoji
// sequences.
package diff
