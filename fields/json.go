package fields

import (
	"errors"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/typedtext"
)

// ErrInvalidJSON is reported while the buffer does not hold a complete JSON
// document.
var ErrInvalidJSON = errors.New("invalid json")

// JSON returns a field whose value is the parsed JSON document. Validation
// is unrestricted: almost any keystroke is a legitimate step toward valid
// JSON, so acceptability is reported through IsValid/LastError rather than
// by suppressing input.
func JSON(opts ...typedtext.Option[gjson.Result]) *typedtext.State[gjson.Result] {
	opts = append([]typedtext.Option[gjson.Result]{
		typedtext.WithFormatter[gjson.Result](gjson.Result.String),
	}, opts...)
	return typedtext.New(ParseJSON, opts...)
}

// ParseJSON parses text as a complete JSON document.
func ParseJSON(text string) (gjson.Result, error) {
	if !gjson.Valid(text) {
		return gjson.Result{}, ErrInvalidJSON
	}
	return gjson.Parse(text), nil
}

// SetPath programmatically sets a value at a gjson-style path in the
// document held by s, rewriting the buffer through the unchecked path. The
// buffer does not change if the write fails.
func SetPath(s *typedtext.State[gjson.Result], path string, value any) error {
	out, err := sjson.Set(s.Text(), path, value)
	if err != nil {
		return err
	}
	s.SetText(out)
	return nil
}

// DeletePath removes the value at a gjson-style path in the document held
// by s.
func DeletePath(s *typedtext.State[gjson.Result], path string) error {
	out, err := sjson.Delete(s.Text(), path)
	if err != nil {
		return err
	}
	s.SetText(out)
	return nil
}
