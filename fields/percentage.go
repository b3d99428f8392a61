package fields

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dshills/typedtext"
)

// Errors reported by percentage parsers.
var (
	ErrPercentTooLarge = errors.New("percentage is more than 100")
	ErrPercentNegative = errors.New("percentage is less than 0")
)

// Percentage returns a numeric percentage field in the range 0-100. Input is
// restricted to digits, one decimal point, and a leading +; the validator
// also caps the integer part at three digits and only lets the third one
// through when it completes "100".
func Percentage(opts ...typedtext.Option[float64]) *typedtext.State[float64] {
	opts = append([]typedtext.Option[float64]{
		typedtext.WithValidator[float64](percentValidator),
	}, opts...)
	return typedtext.New(parsePercent, opts...)
}

// PercentageUint returns an integer percentage field in the range 0-100.
// Input is restricted to digits and a leading +, at most three characters.
func PercentageUint(opts ...typedtext.Option[uint]) *typedtext.State[uint] {
	opts = append([]typedtext.Option[uint]{
		typedtext.WithValidator[uint](percentUintValidator),
	}, opts...)
	return typedtext.New(parsePercentUint, opts...)
}

func parsePercent(text string) (float64, error) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if v > 100 {
		return 0, ErrPercentTooLarge
	}
	if v < 0 {
		return 0, ErrPercentNegative
	}
	return v, nil
}

func parsePercentUint(text string) (uint, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64)
	if err != nil {
		return 0, err
	}
	if v > 100 {
		return 0, ErrPercentTooLarge
	}
	return uint(v), nil
}

// percentValidator gates the float form. The integer part may not grow past
// three characters, and a third character is only allowed when it completes
// "100" or starts the decimal part.
func percentValidator(current, insertion string, index int) bool {
	// Inserting nothing is always acceptable; this is also the no-op probe
	// used to classify text that entered through SetText.
	if insertion == "" {
		return true
	}

	intLen := len(current)
	if i := strings.IndexByte(current, '.'); i >= 0 {
		intLen = i
	}
	hasDot := strings.Contains(current, ".")

	if !hasDot && intLen+len(insertion) > 3 {
		return false
	}

	numOrDot := true
	for _, r := range insertion {
		if r >= '0' && r <= '9' {
			continue
		}
		if !hasDot && r == '.' {
			continue
		}
		numOrDot = false
		break
	}

	// Anything numeric goes after the decimal point.
	if current != "" && numOrDot && precededByDot(current, index) {
		return true
	}

	if intLen == 2 {
		if strings.HasPrefix(insertion, ".") && numOrDot {
			return true
		}
		if insertion == "0" {
			return strings.HasPrefix(current, "10") && !hasDot
		}
		return false
	}

	if index == 0 && strings.HasPrefix(insertion, "+") {
		return true
	}
	return numOrDot
}

// percentUintValidator gates the integer form: three characters at most,
// with the third only completing "100".
func percentUintValidator(current, insertion string, index int) bool {
	if insertion == "" {
		return true
	}
	if len(current)+len(insertion) > 3 {
		return false
	}

	if len(current) == 2 {
		if insertion == "0" {
			return strings.HasPrefix(current, "10")
		}
		return false
	}

	if index == 0 && strings.HasPrefix(insertion, "+") {
		return true
	}
	return allDigits(insertion)
}

// precededByDot reports whether the character just before the insertion
// point is the decimal point.
func precededByDot(current string, index int) bool {
	r := []rune(current)
	i := index - 1
	if i < 0 {
		i = 0
	}
	if i >= len(r) {
		return false
	}
	return r[i] == '.'
}
