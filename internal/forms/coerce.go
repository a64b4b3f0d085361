package forms

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingInt   = regexp.MustCompile(`^\s*[-+]?\d+`)
	leadingFloat = regexp.MustCompile(`^\s*[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`)
)

// ParseCount reads the leading integer of s. Anything that does not start
// with digits yields 0. "12 cans" is 12 and "2.9" is 2.
func ParseCount(s string) int {
	m := leadingInt.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return 0
	}
	return n
}

// ParseAmount reads the leading decimal number of s, or 0.
func ParseAmount(s string) float64 {
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Count is a whole-number form field. It decodes from a JSON number or
// string; values that are not numbers become 0.
type Count int

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(b []byte) error {
	*c = Count(ParseCount(rawScalar(b)))
	return nil
}

// Amount is a decimal form field with the same coercion rules as Count.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount(ParseAmount(rawScalar(b)))
	return nil
}

// rawScalar returns a JSON string's contents or the literal text of any
// other scalar.
func rawScalar(b []byte) string {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		return s
	}
	return string(b)
}
