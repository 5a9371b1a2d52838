package codec

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/rafaeelricco/commit-gen/internal/reflection"
	"github.com/rafaeelricco/commit-gen/shape"
)

// Encoder is implemented by values that provide their own JSON value.
type Encoder interface {
	EncodeJSON() (any, error)
}

var (
	encoderType = reflect.TypeFor[Encoder]()
	decimalType = reflect.TypeFor[decimal.Decimal]()
	objectType  = reflect.TypeFor[shape.Object]()
)

// Encode converts v into a JSON value built from nil, bool, int64, uint64,
// float64, string, []any and map[string]any. Sets encode as sorted lists,
// decimals as their exact string. Values with no JSON form are reported as
// *UnsupportedValueError.
func Encode(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	return encodeValue(reflect.ValueOf(v))
}

// MustEncode is like Encode but panics on failure.
func MustEncode(v any) any {
	out, err := Encode(v)
	if err != nil {
		panic(err)
	}

	return out
}

func encodeValue(rv reflect.Value) (any, error) {
	rt := rv.Type()
	if rt.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, nil
		}
		return encodeValue(rv.Elem())
	}

	switch {
	case rt.Implements(encoderType):
		if rt.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, nil
		}
		return rv.Interface().(Encoder).EncodeJSON()
	case rv.CanAddr() && reflect.PointerTo(rt).Implements(encoderType):
		return rv.Addr().Interface().(Encoder).EncodeJSON()
	case rt == decimalType:
		return rv.Interface().(decimal.Decimal).String(), nil
	case rt == objectType:
		return encodeObject(rv.Interface().(shape.Object))
	}

	switch rt.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return nil, nil
		}
		return encodeValue(rv.Elem())
	case reflect.Slice, reflect.Array:
		return encodeList(rv)
	case reflect.Map:
		return encodeMap(rv)
	case reflect.Struct:
		return encodeStruct(rv)
	default:
		return nil, &UnsupportedValueError{Type: rt}
	}
}

func encodeList(rv reflect.Value) (any, error) {
	out := make([]any, 0, rv.Len())
	for i := range rv.Len() {
		item, err := encodeValue(rv.Index(i))
		if err != nil {
			return nil, fmt.Errorf("encoding index %d: %w", i, err)
		}
		out = append(out, item)
	}

	return out, nil
}

func encodeMap(rv reflect.Value) (any, error) {
	rt := rv.Type()
	if rt.Key().Kind() != reflect.String {
		return nil, &UnsupportedValueError{Type: rt}
	}

	keys := make([]string, 0, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		keys = append(keys, it.Key().String())
	}
	slices.Sort(keys)

	if rt.Elem() == setMarker {
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, k)
		}
		return out, nil
	}

	out := make(map[string]any, len(keys))
	for it := rv.MapRange(); it.Next(); {
		value, err := encodeValue(it.Value())
		if err != nil {
			return nil, fmt.Errorf("encoding key '%s': %w", it.Key().String(), err)
		}
		out[it.Key().String()] = value
	}

	return out, nil
}

func encodeStruct(rv reflect.Value) (any, error) {
	t, err := reflection.Derive(rv.Type())
	if err != nil {
		return nil, &UnsupportedValueError{Type: rv.Type()}
	}

	out := make(map[string]any, len(t.Decl.Fields))
	for _, f := range t.Decl.Fields {
		value, err := encodeValue(rv.FieldByIndex(f.Index))
		if err != nil {
			return nil, fmt.Errorf("encoding field '%s': %w", f.Name, err)
		}
		out[f.Name] = value
	}

	return out, nil
}

func encodeObject(obj shape.Object) (any, error) {
	out := make(map[string]any, len(obj.Members))
	for _, m := range obj.Members {
		value, err := Encode(m.Value)
		if err != nil {
			return nil, fmt.Errorf("encoding field '%s': %w", m.Name, err)
		}
		out[m.Name] = value
	}

	return out, nil
}
