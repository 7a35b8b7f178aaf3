package divertido

import (
	"fmt"
	"math"
	"strconv"
)

// ValueType is a category type for values. Divertido values are either
// numbers, booleans, strings or nil.
type ValueType int8

// Value types.
const (
	NilType ValueType = iota
	NumberType
	BooleanType
	StringType
)

func (t ValueType) String() string {
	switch t {
	case NilType:
		return "nil"
	case NumberType:
		return "number"
	case BooleanType:
		return "boolean"
	case StringType:
		return "string"
	}
	return fmt.Sprintf("<value type %d>", int8(t))
}

// Value is a tagged union for runtime values. The zero value is Nil.
//
// Values have value semantics: they are copied whenever they are stored
// or read, and never share state.
type Value struct {
	typ ValueType
	num float64
	b   bool
	str string
}

// Nil is the nil value.
var Nil = Value{}

// Number creates a numeric value.
func Number(n float64) Value {
	return Value{typ: NumberType, num: n}
}

// Boolean creates a boolean value.
func Boolean(b bool) Value {
	return Value{typ: BooleanType, b: b}
}

// String creates a string value.
func String(s string) Value {
	return Value{typ: StringType, str: s}
}

// Type returns the category of a value.
func (v Value) Type() ValueType {
	return v.typ
}

// IsNil is a predicate: is v the nil value?
func (v Value) IsNil() bool {
	return v.typ == NilType
}

// AsNumber returns the numeric content of v and true, or 0 and false if
// v is not a number.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.typ == NumberType
}

// AsBoolean returns the boolean content of v and true, or false and false
// if v is not a boolean.
func (v Value) AsBoolean() (bool, bool) {
	return v.b, v.typ == BooleanType
}

// AsString returns the string content of v and true, or "" and false if
// v is not a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.typ == StringType
}

// IsTruthy maps a value to a boolean in conditional contexts: nil and false
// are falsy, everything else (including 0 and "") is truthy.
func (v Value) IsTruthy() bool {
	switch v.typ {
	case NilType:
		return false
	case BooleanType:
		return v.b
	}
	return true
}

// Equal compares two values structurally. Values of different types are
// never equal. Numbers compare as IEEE-754 doubles, thus NaN is not equal
// to itself.
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case NumberType:
		return v.num == other.num
	case BooleanType:
		return v.b == other.b
	case StringType:
		return v.str == other.str
	}
	return true // both nil
}

// String returns the textual form of a value, as written by print.
func (v Value) String() string {
	switch v.typ {
	case NumberType:
		return formatNumber(v.num)
	case BooleanType:
		return strconv.FormatBool(v.b)
	case StringType:
		return v.str
	}
	return "nil"
}

func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "inf"
	case math.IsInf(n, -1):
		return "-inf"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
