package fields

import (
	"strconv"
	"strings"

	"github.com/dshills/typedtext"
)

// Numeric type constraints.
type (
	// Float is any floating-point type.
	Float interface{ ~float32 | ~float64 }
	// Signed is any signed integer type.
	Signed interface {
		~int | ~int8 | ~int16 | ~int32 | ~int64
	}
	// Unsigned is any unsigned integer type.
	Unsigned interface {
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
	}
)

// Number returns a floating-point field. Input is restricted to digits, one
// decimal point, and a leading + or -.
func Number[T Float](opts ...typedtext.Option[T]) *typedtext.State[T] {
	opts = append([]typedtext.Option[T]{
		typedtext.WithValidator[T](numericValidator("+-", true)),
	}, opts...)
	return typedtext.New(parseFloat[T], opts...)
}

// Int returns a signed integer field. Input is restricted to digits and a
// leading + or -.
func Int[T Signed](opts ...typedtext.Option[T]) *typedtext.State[T] {
	opts = append([]typedtext.Option[T]{
		typedtext.WithValidator[T](numericValidator("+-", false)),
	}, opts...)
	return typedtext.New(parseInt[T], opts...)
}

// Uint returns an unsigned integer field. Input is restricted to digits and
// a leading +.
func Uint[T Unsigned](opts ...typedtext.Option[T]) *typedtext.State[T] {
	opts = append([]typedtext.Option[T]{
		typedtext.WithValidator[T](numericValidator("+", false)),
	}, opts...)
	return typedtext.New(parseUint[T], opts...)
}

func parseFloat[T Float](text string) (T, error) {
	v, err := strconv.ParseFloat(text, floatBits[T]())
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

func parseInt[T Signed](text string) (T, error) {
	v, err := strconv.ParseInt(text, 10, intBits[T]())
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

func parseUint[T Unsigned](text string) (T, error) {
	// strconv.ParseUint does not allow a sign prefix; the validator does
	// allow a leading +, so strip it.
	v, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, uintBits[T]())
	if err != nil {
		return 0, err
	}
	return T(v), nil
}

func floatBits[T Float]() int {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 32
	}
	return 64
}

func intBits[T Signed]() int {
	var zero T
	switch any(zero).(type) {
	case int8:
		return 8
	case int16:
		return 16
	case int32:
		return 32
	default:
		return 64
	}
}

func uintBits[T Unsigned]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// numericValidator accepts digit insertions, optionally one decimal point
// (when the current text has none), and an insertion starting with one of
// signs when it lands at index 0.
func numericValidator(signs string, dot bool) typedtext.ValidateFunc {
	return func(current, insertion string, index int) bool {
		if index == 0 && startsWithAny(insertion, signs) {
			return true
		}
		hasDot := strings.ContainsRune(current, '.')
		for _, r := range insertion {
			if r >= '0' && r <= '9' {
				continue
			}
			if dot && !hasDot && r == '.' {
				continue
			}
			return false
		}
		return true
	}
}

func startsWithAny(s, set string) bool {
	for _, r := range set {
		if strings.HasPrefix(s, string(r)) {
			return true
		}
	}
	return false
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
