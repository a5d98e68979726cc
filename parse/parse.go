// Package parse converts delimited text into typed values.
//
// The converters mirror a small, predictable subset of strconv: base-10
// integers, decimal floats, bools, and double-quoted strings with
// backslash-escaped quotes. Failures are structured: empty input, invalid
// input, and overflow are distinguishable kinds.
package parse

import (
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/wippyai/typekit/errors"
)

// Parseable enumerates the types To can produce.
type Parseable interface {
	~bool | ~string | constraints.Integer | constraints.Float
}

// To parses s into a value of type T.
func To[T Parseable](s string) (T, error) {
	var zero T
	rv := reflect.ValueOf(&zero).Elem()

	switch rv.Kind() {
	case reflect.Bool:
		b, err := Bool(s)
		if err != nil {
			return zero, err
		}
		rv.SetBool(b)

	case reflect.String:
		if s == "" {
			return zero, errors.Empty(errors.OpParse)
		}
		rv.SetString(s)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := parseSigned(s, rv.Type().Bits())
		if err != nil {
			return zero, err
		}
		rv.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := parseUnsigned(s, rv.Type().Bits())
		if err != nil {
			return zero, err
		}
		rv.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := parseFloat(s, rv.Type().Bits())
		if err != nil {
			return zero, err
		}
		rv.SetFloat(f)

	default:
		// Parseable rules this out at compile time.
		return zero, errors.InvalidInput(errors.OpParse, "unsupported target type "+rv.Type().String())
	}

	return zero, nil
}

// Int parses a base-10 signed integer.
func Int[T constraints.Signed](s string) (T, error) {
	var zero T
	n, err := parseSigned(s, reflect.TypeOf(zero).Bits())
	if err != nil {
		return zero, err
	}
	return T(n), nil
}

// Uint parses a base-10 unsigned integer. A leading sign is invalid input.
func Uint[T constraints.Unsigned](s string) (T, error) {
	var zero T
	n, err := parseUnsigned(s, reflect.TypeOf(zero).Bits())
	if err != nil {
		return zero, err
	}
	return T(n), nil
}

// Float parses a decimal floating-point number.
func Float[T constraints.Float](s string) (T, error) {
	var zero T
	f, err := parseFloat(s, reflect.TypeOf(zero).Bits())
	if err != nil {
		return zero, err
	}
	return T(f), nil
}

// Bool parses "true"/"false"/"1"/"0" and friends, per strconv.ParseBool.
func Bool(s string) (bool, error) {
	if s == "" {
		return false, errors.Empty(errors.OpParse)
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.New(errors.OpParse, errors.KindInvalidInput).
			Detail("invalid bool literal %q", s).
			Cause(err).
			Build()
	}
	return b, nil
}

func parseSigned(s string, bits int) (int64, error) {
	if s == "" {
		return 0, errors.Empty(errors.OpParse)
	}
	n, err := strconv.ParseInt(s, 10, bits)
	if err != nil {
		return 0, numericError(err, s, "int", bits)
	}
	return n, nil
}

func parseUnsigned(s string, bits int) (uint64, error) {
	if s == "" {
		return 0, errors.Empty(errors.OpParse)
	}
	if s[0] == '-' {
		return 0, errors.InvalidInput(errors.OpParse, "negative value for unsigned type")
	}
	n, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, numericError(err, s, "uint", bits)
	}
	return n, nil
}

func parseFloat(s string, bits int) (float64, error) {
	if s == "" {
		return 0, errors.Empty(errors.OpParse)
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, numericError(err, s, "float", bits)
	}
	return f, nil
}

func numericError(err error, s, family string, bits int) error {
	target := family + strconv.Itoa(bits)
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return errors.Overflow(errors.OpParse, s, target)
	}
	return errors.New(errors.OpParse, errors.KindInvalidInput).
		Detail("invalid %s literal %q", target, s).
		Cause(err).
		Build()
}

// Quoted parses a double-quoted string literal, resolving backslash escapes
// of quotes and backslashes. The closing quote must end the input.
func Quoted(s string) (string, error) {
	if s == "" {
		return "", errors.Empty(errors.OpParse)
	}
	if len(s) < 2 {
		return "", errors.InvalidInput(errors.OpParse, "input too small for a quoted string")
	}
	if s[0] != '"' {
		return "", errors.InvalidInput(errors.OpParse, "missing opening quote")
	}

	inner := s[1:]
	if !strings.ContainsRune(inner, '\\') {
		switch strings.IndexByte(inner, '"') {
		case -1:
			return "", errors.InvalidInput(errors.OpParse, "missing closing quote")
		case len(inner) - 1:
			return inner[:len(inner)-1], nil
		default:
			return "", errors.InvalidInput(errors.OpParse, "content after closing quote")
		}
	}

	b := getBuffer()
	defer putBuffer(b)

	escaped := false
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case escaped:
			b.WriteByte(c)
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			if i != len(inner)-1 {
				return "", errors.InvalidInput(errors.OpParse, "content after closing quote")
			}
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	return "", errors.InvalidInput(errors.OpParse, "missing closing quote")
}

// Unquoted accepts any non-empty input verbatim.
func Unquoted(s string) (string, error) {
	if s == "" {
		return "", errors.Empty(errors.OpParse)
	}
	return s, nil
}

// Fields splits s on sep without trimming or quote awareness. An empty
// input yields no fields; adjacent separators yield empty fields.
func Fields(s string, sep byte) []string {
	if s == "" {
		return nil
	}
	n := strings.Count(s, string(sep)) + 1
	out := make([]string, 0, n)
	for {
		i := strings.IndexByte(s, sep)
		if i < 0 {
			return append(out, s)
		}
		out = append(out, s[:i])
		s = s[i+1:]
	}
}
