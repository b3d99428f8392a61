package fields

import (
	"errors"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/typedtext"
)

// Errors reported by the hex color parser.
var (
	ErrMissingHash  = errors.New("hex color must start with '#'")
	ErrHexLength    = errors.New("hex color must have 3, 4, 6, or 8 digits")
	ErrNotHexDigits = errors.New("hex color contains non-hex characters")
)

// HexColor returns a field for a '#'-prefixed hex color in the 3, 4, 6, or
// 8 digit forms. The validator requires '#' at index 0 and hex digits
// everywhere else. Alpha digits (4 and 8 digit forms) are accepted but not
// carried into the parsed color.
func HexColor(opts ...typedtext.Option[colorful.Color]) *typedtext.State[colorful.Color] {
	opts = append([]typedtext.Option[colorful.Color]{
		typedtext.WithValidator[colorful.Color](hexColorValidator),
		typedtext.WithFormatter[colorful.Color](colorful.Color.Hex),
	}, opts...)
	return typedtext.New(ParseHexColor, opts...)
}

// ParseHexColor parses a '#'-prefixed hex color string.
func ParseHexColor(text string) (colorful.Color, error) {
	if !strings.HasPrefix(text, "#") {
		return colorful.Color{}, ErrMissingHash
	}

	digits := text[1:]
	for _, r := range digits {
		if !isHexDigit(r) {
			return colorful.Color{}, ErrNotHexDigits
		}
	}

	switch len(digits) {
	case 3, 6:
		return colorful.Hex(text)
	case 4:
		// Drop the alpha digit.
		return colorful.Hex("#" + digits[:3])
	case 8:
		// Drop the alpha byte.
		return colorful.Hex("#" + digits[:6])
	default:
		return colorful.Color{}, ErrHexLength
	}
}

func hexColorValidator(_, insertion string, index int) bool {
	// Inserting nothing is always acceptable; this is also the no-op probe
	// used to classify text that entered through SetText.
	if insertion == "" {
		return true
	}
	if index == 0 {
		return strings.HasPrefix(insertion, "#")
	}
	for _, r := range insertion {
		if !isHexDigit(r) {
			return false
		}
	}
	return true
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
