package fields

import "github.com/dshills/typedtext"

// String returns a field that accepts any input and whose value is the text
// itself.
func String(opts ...typedtext.Option[string]) *typedtext.State[string] {
	return typedtext.New(
		func(text string) (string, error) { return text, nil },
		opts...,
	)
}

// Charset returns a field with the given parser that only accepts input
// characters from set.
func Charset[T any](parse typedtext.ParseFunc[T], set string, opts ...typedtext.Option[T]) *typedtext.State[T] {
	opts = append([]typedtext.Option[T]{
		typedtext.WithValidator[T](typedtext.Charset(set)),
	}, opts...)
	return typedtext.New(parse, opts...)
}

// Opt is an optional value: Set reports whether a value is present.
type Opt[T any] struct {
	Value T
	Set   bool
}

// Optional wraps a parser so that an empty buffer parses to an unset Opt
// instead of an error. Non-empty text goes through parse as usual.
func Optional[T any](parse typedtext.ParseFunc[T], opts ...typedtext.Option[Opt[T]]) *typedtext.State[Opt[T]] {
	return typedtext.New(
		func(text string) (Opt[T], error) {
			if text == "" {
				return Opt[T]{}, nil
			}
			v, err := parse(text)
			if err != nil {
				return Opt[T]{}, err
			}
			return Opt[T]{Value: v, Set: true}, nil
		},
		opts...,
	)
}
