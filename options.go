package typedtext

import "golang.org/x/text/unicode/norm"

// Option is a functional option for configuring a State.
type Option[T any] func(*State[T])

// WithText sets the initial buffer content. It is accepted without
// validation and parsed immediately, the same as SetText.
func WithText[T any](text string) Option[T] {
	return func(s *State[T]) {
		s.text = text
	}
}

// WithValidator sets the insertion validator. The default accepts
// everything.
func WithValidator[T any](v ValidateFunc) Option[T] {
	return func(s *State[T]) {
		if v != nil {
			s.validate = v
		}
	}
}

// WithFormatter sets the function SetValue uses to render a value back into
// buffer text. Without it SetValue falls back to fmt.Sprint.
func WithFormatter[T any](f FormatFunc[T]) Option[T] {
	return func(s *State[T]) {
		s.format = f
	}
}

// WithKeepLastValue makes Value retain the last successfully parsed value
// across parse failures instead of reporting absence. LastError still
// reports the failure either way.
func WithKeepLastValue[T any]() Option[T] {
	return func(s *State[T]) {
		s.keepLast = true
	}
}

// WithNormalization applies Unicode NFC normalization to all text entering
// the buffer, before validation. Useful when input may arrive in decomposed
// form (for example from some IMEs or macOS file names).
func WithNormalization[T any]() Option[T] {
	return func(s *State[T]) {
		s.normalize = true
	}
}

// normalizeText converts text to Unicode NFC form.
func normalizeText(text string) string {
	return norm.NFC.String(text)
}
