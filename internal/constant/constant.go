// Package constant models compile-time constant values and the ECMAScript
// coercions between them.
package constant

import (
	"math"
	"strconv"
	"strings"
)

type Kind int

const (
	BOOLEAN Kind = iota
	NUMBER
	STRING
	NULL
	UNDEFINED
)

func (kind Kind) String() string {
	switch kind {
	case BOOLEAN:
		return "boolean"
	case NUMBER:
		return "number"
	case STRING:
		return "string"
	case NULL:
		return "null"
	case UNDEFINED:
		return "undefined"
	}
	return "unknown"
}

type Value interface {
	Kind() Kind
	String() string
}

type (
	Boolean   bool
	Number    float64
	String    string
	Null      struct{}
	Undefined struct{}
)

func (Boolean) Kind() Kind   { return BOOLEAN }
func (Number) Kind() Kind    { return NUMBER }
func (String) Kind() Kind    { return STRING }
func (Null) Kind() Kind      { return NULL }
func (Undefined) Kind() Kind { return UNDEFINED }

func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }
func (n Number) String() string  { return formatNumber(float64(n)) }
func (s String) String() string  { return string(s) }
func (Null) String() string      { return "null" }
func (Undefined) String() string { return "undefined" }

// FromGo converts the values produced by config.ParseDefine.
func FromGo(value any) Value {
	switch v := value.(type) {
	case nil:
		return Null{}
	case bool:
		return Boolean(v)
	case float64:
		return Number(v)
	case int:
		return Number(float64(v))
	case string:
		return String(v)
	case Value:
		return v
	}
	return Undefined{}
}

func IsBoolean(v Value) bool {
	return v != nil && v.Kind() == BOOLEAN
}

func ToBoolean(v Value) bool {
	switch v := v.(type) {
	case Boolean:
		return bool(v)
	case Number:
		f := float64(v)
		return f != 0 && !math.IsNaN(f)
	case String:
		return v != ""
	}
	return false
}

func ToNumber(v Value) float64 {
	switch v := v.(type) {
	case Boolean:
		if v {
			return 1
		}
		return 0
	case Number:
		return float64(v)
	case String:
		return parseNumber(string(v))
	case Null:
		return 0
	}
	return math.NaN()
}

func ToString(v Value) string {
	if v == nil {
		return "undefined"
	}
	return v.String()
}

func StrictEquals(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case NULL, UNDEFINED:
		return true
	case NUMBER:
		return ToNumber(a) == ToNumber(b)
	case STRING:
		return ToString(a) == ToString(b)
	}
	return ToBoolean(a) == ToBoolean(b)
}

func LooseEquals(a, b Value) bool {
	if a.Kind() == b.Kind() {
		return StrictEquals(a, b)
	}
	nullish := func(v Value) bool { return v.Kind() == NULL || v.Kind() == UNDEFINED }
	if nullish(a) || nullish(b) {
		return nullish(a) && nullish(b)
	}
	return ToNumber(a) == ToNumber(b)
}

// Compare implements the relational operators. Two strings compare by code
// units, anything else numerically. ok is false when a NaN is involved.
func Compare(a, b Value) (cmp int, ok bool) {
	if a.Kind() == STRING && b.Kind() == STRING {
		return strings.Compare(ToString(a), ToString(b)), true
	}
	x, y := ToNumber(a), ToNumber(b)
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return 0, false
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	}
	return 0, true
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		n, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return math.NaN()
		}
		return float64(n)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == math.Trunc(f) && math.Abs(f) < 1e21:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
