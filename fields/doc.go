// Package fields provides ready-made typedtext states for common input
// shapes: free text, restricted character sets, numbers, percentages, hex
// colors, optional values, and JSON documents.
//
// Each constructor pairs a parser with a validator tuned for per-keystroke
// editing, so that intermediate strings a user must type through (an empty
// buffer, a lone "-", a bare "#") are accepted as input even though they do
// not yet parse.
//
// Basic usage:
//
//	pct := fields.Percentage()
//	pct.Insert("42", 0)
//	if v, ok := pct.Value(); ok {
//	    // v == 42.0
//	}
package fields
