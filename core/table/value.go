package table

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind identifies the type stored in a Value.
type Kind int

const (
	// KindNull is the zero Kind; a null Value carries no data.
	KindNull Kind = iota
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindFloat is a 64-bit float.
	KindFloat
	// KindString is a string.
	KindString
)

// Value is a tagged nullable scalar cell. The zero Value is null.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Null returns the null Value.
func Null() Value {
	return Value{}
}

// Int returns an integer Value.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Float returns a float Value.
func Float(v float64) Value {
	return Value{kind: KindFloat, f: v}
}

// Str returns a string Value.
func Str(v string) Value {
	return Value{kind: KindString, s: v}
}

// Kind returns the tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsInt returns the integer payload. Valid only for KindInt.
func (v Value) AsInt() int64 {
	return v.i
}

// AsFloat returns the numeric payload as a float. Valid for KindInt and KindFloat.
func (v Value) AsFloat() float64 {
	if v.kind == KindInt {
		return float64(v.i)
	}
	return v.f
}

// AsString returns the string payload. Valid only for KindString.
func (v Value) AsString() string {
	return v.s
}

// Equal reports exact equality between two values.
// Null never equals anything, including another null. Int and float values
// compare numerically, so Int(1) equals Float(1.0). Strings never equal
// numbers; there is no parsing or coercion across kinds.
func (v Value) Equal(o Value) bool {
	if v.kind == KindNull || o.kind == KindNull {
		return false
	}
	switch {
	case v.kind == KindString && o.kind == KindString:
		return v.s == o.s
	case v.kind == KindString || o.kind == KindString:
		return false
	case v.kind == KindInt && o.kind == KindInt:
		return v.i == o.i
	default:
		// At least one side is a float; compare numerically.
		return v.AsFloat() == o.AsFloat()
	}
}

// String renders the value for logs and CSV cells. Null renders empty.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	default:
		return ""
	}
}

// MarshalJSON encodes null as JSON null, numbers as numbers, strings as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInt:
		return json.Marshal(v.i)
	case KindFloat:
		return json.Marshal(v.f)
	case KindString:
		return json.Marshal(v.s)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes JSON null, numbers, and strings.
// Integral JSON numbers become KindInt so ids survive a JSON round trip.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	parsed, err := FromAny(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// isExactInt64 reports whether f is an integral float inside the int64
// range. math.MaxInt64 is not exactly representable as a float64; the
// nearest value is 1<<63, so the upper bound must be exclusive or the
// int64 conversion overflows.
func isExactInt64(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < 1<<63
}

// FromAny converts a dynamically typed cell (database scan result, decoded
// JSON) into a Value. Unknown types are rendered with fmt as strings.
func FromAny(raw any) (Value, error) {
	switch c := raw.(type) {
	case nil:
		return Null(), nil
	case Value:
		return c, nil
	case bool:
		if c {
			return Int(1), nil
		}
		return Int(0), nil
	case int:
		return Int(int64(c)), nil
	case int8:
		return Int(int64(c)), nil
	case int16:
		return Int(int64(c)), nil
	case int32:
		return Int(int64(c)), nil
	case int64:
		return Int(c), nil
	case uint:
		return Int(int64(c)), nil
	case uint8:
		return Int(int64(c)), nil
	case uint16:
		return Int(int64(c)), nil
	case uint32:
		return Int(int64(c)), nil
	case uint64:
		return Int(int64(c)), nil
	case float32:
		return Float(float64(c)), nil
	case float64:
		if isExactInt64(c) {
			return Int(int64(c)), nil
		}
		return Float(c), nil
	case json.Number:
		if i, err := c.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := c.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("unsupported numeric cell %q: %w", c.String(), err)
		}
		return Float(f), nil
	case string:
		return Str(c), nil
	case []byte:
		return Str(string(c)), nil
	case time.Time:
		return Str(c.Format(time.RFC3339)), nil
	default:
		return Str(fmt.Sprintf("%v", c)), nil
	}
}
