package primitive

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

//go:generate go tool stringer -type=ShapeEnum -output=shape_string.go

// ShapeEnum is the runtime kind of a JSON value.
type ShapeEnum int

const (
	_ ShapeEnum = iota // unknown: not a JSON value

	ShapeNull
	ShapeBool
	ShapeInt
	ShapeFloat
	ShapeString
	ShapeList
	ShapeDict

	// ShapeTotal is a constant that represents the total number of shapes defined
	ShapeTotal = int(iota)
)

// Name returns the shape name used in decode error messages.
// The names are stable; tooling matches on them.
func (s ShapeEnum) Name() string {
	switch s {
	case ShapeNull:
		return "NoneType"
	case ShapeBool:
		return "bool"
	case ShapeInt:
		return "int"
	case ShapeFloat:
		return "float"
	case ShapeString:
		return "str"
	case ShapeList:
		return "list"
	case ShapeDict:
		return "dict"
	default:
		return "unknown"
	}
}

// ShapeOf classifies a JSON value. Booleans are checked before integers so the
// two never overlap; json.Number is split into int and float by its literal.
func ShapeOf(v any) ShapeEnum {
	switch n := v.(type) {
	case nil:
		return ShapeNull
	case bool:
		return ShapeBool
	case string:
		return ShapeString
	case json.Number:
		if _, ok := numberAsInteger(n); ok {
			return ShapeInt
		}
		return ShapeFloat
	case []any:
		return ShapeList
	case map[string]any:
		return ShapeDict
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return ShapeBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return ShapeInt
	case reflect.Float32, reflect.Float64:
		return ShapeFloat
	case reflect.String:
		return ShapeString
	case reflect.Slice, reflect.Array:
		return ShapeList
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return ShapeDict
		}
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ShapeNull
		}
	}

	return 0
}

// NameOf returns the runtime shape name of v, falling back to its Go type.
func NameOf(v any) string {
	if s := ShapeOf(v); s != 0 {
		return s.Name()
	}

	return fmt.Sprintf("%T", v)
}

// AsInteger extracts an integer JSON value. Values above math.MaxInt64 are
// returned as uint64, everything else as int64.
func AsInteger(v any) (any, bool) {
	if n, ok := v.(json.Number); ok {
		return numberAsInteger(n)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if u := rv.Uint(); u > math.MaxInt64 {
			return u, true
		}
		return int64(rv.Uint()), true
	default:
		return nil, false
	}
}

// AsFloat extracts a floating point JSON value.
func AsFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		if _, isInt := numberAsInteger(n); isInt {
			return 0, false
		}

		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func numberAsInteger(n json.Number) (any, bool) {
	s := n.String()
	if strings.ContainsAny(s, ".eE") {
		return nil, false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}

	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return u, true
	}

	return nil, false
}
