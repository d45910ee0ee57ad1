package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UpperFirst upper-cases the first rune of s and keeps the rest untouched.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// LastSegment returns the part of s after the last sep, or s itself.
func LastSegment(s string, sep string) string {
	if idx := strings.LastIndex(s, sep); idx != -1 {
		return s[idx+len(sep):]
	}
	return s
}

func AnyValueToFloat(val any) (float64, error) {
	switch v := val.(type) {
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert '%s' to a number", v)
		}
		return f, nil
	case nil:
		return 0, errors.New("cannot convert nil to a number")
	default:
		return 0, fmt.Errorf("cannot convert value of type %T to a number", val)
	}
}

// AnyValueToInt converts val to an int. Fractional values are rejected.
func AnyValueToInt(val any) (int, error) {
	f, err := AnyValueToFloat(val)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("value %v is not a whole number", val)
	}
	if f >= float64(math.MaxInt) || f <= float64(math.MinInt) {
		return 0, fmt.Errorf("value %v is out of range", val)
	}
	return int(f), nil
}
