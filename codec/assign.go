package codec

import (
	"fmt"
	"reflect"

	"github.com/rafaeelricco/commit-gen/primitive"
	"github.com/rafaeelricco/commit-gen/result"
)

var setMarker = reflect.TypeFor[struct{}]()

// assign converts a decoded value into the Go type rt.
func assign(v any, rt reflect.Type) result.Result[string, any] {
	out, msg := convert(v, rt)
	if msg != "" {
		return result.Err[string, any](msg)
	}

	return result.Ok[string](out.Interface())
}

// convert returns v as a value of type rt, or a message explaining why it does not fit.
// Integers are range checked; null becomes the zero value.
func convert(v any, rt reflect.Type) (reflect.Value, string) {
	if v == nil {
		return reflect.Zero(rt), ""
	}

	src := reflect.ValueOf(v)
	if src.Type() == rt {
		return src, ""
	}

	if kind := primitive.FromReflectType(rt); kind != 0 {
		return convertScalar(src, rt, kind)
	}

	switch rt.Kind() {
	case reflect.Pointer:
		inner, msg := convert(v, rt.Elem())
		if msg != "" {
			return reflect.Value{}, msg
		}
		ptr := reflect.New(rt.Elem())
		ptr.Elem().Set(inner)
		return ptr, ""

	case reflect.Interface:
		if src.Type().Implements(rt) {
			out := reflect.New(rt).Elem()
			out.Set(src)
			return out, ""
		}

	case reflect.Slice:
		if src.Kind() == reflect.Slice {
			out := reflect.MakeSlice(rt, src.Len(), src.Len())
			return out, convertItems(src, out)
		}

	case reflect.Array:
		if src.Kind() == reflect.Slice {
			if src.Len() != rt.Len() {
				return reflect.Value{}, fmt.Sprintf("Expected %d elements but found %d", rt.Len(), src.Len())
			}
			out := reflect.New(rt).Elem()
			return out, convertItems(src, out)
		}

	case reflect.Map:
		return convertMap(src, rt)
	}

	if src.Type().ConvertibleTo(rt) {
		return src.Convert(rt), ""
	}

	return reflect.Value{}, fmt.Sprintf("Cannot assign %v to %v", src.Type(), rt)
}

func convertItems(src, dst reflect.Value) string {
	for i := range src.Len() {
		item, msg := convert(src.Index(i).Interface(), dst.Type().Elem())
		if msg != "" {
			return fmt.Sprintf("At index %d: %s", i, msg)
		}
		dst.Index(i).Set(item)
	}

	return ""
}

func convertMap(src reflect.Value, rt reflect.Type) (reflect.Value, string) {
	out := reflect.MakeMapWithSize(rt, src.Len())

	// sets are decoded as lists of members
	if rt.Elem() == setMarker && src.Kind() == reflect.Slice {
		for i := range src.Len() {
			key, msg := convert(src.Index(i).Interface(), rt.Key())
			if msg != "" {
				return reflect.Value{}, fmt.Sprintf("At index %d: %s", i, msg)
			}
			out.SetMapIndex(key, reflect.Zero(setMarker))
		}
		return out, ""
	}

	if src.Kind() != reflect.Map {
		return reflect.Value{}, fmt.Sprintf("Cannot assign %v to %v", src.Type(), rt)
	}

	for it := src.MapRange(); it.Next(); {
		key, msg := convert(it.Key().Interface(), rt.Key())
		if msg != "" {
			return reflect.Value{}, fmt.Sprintf("parsing key name %v: %s", it.Key(), msg)
		}

		value, msg := convert(it.Value().Interface(), rt.Elem())
		if msg != "" {
			return reflect.Value{}, fmt.Sprintf("parsing key %v: %s", it.Key(), msg)
		}

		out.SetMapIndex(key, value)
	}

	return out, ""
}

func convertScalar(src reflect.Value, rt reflect.Type, kind primitive.KindEnum) (reflect.Value, string) {
	out := reflect.New(rt).Elem()

	switch {
	case kind.IsInteger():
		n, ok := primitive.AsInteger(src.Interface())
		if !ok {
			break
		}

		switch n := n.(type) {
		case int64:
			if !kind.FitsInt(n) {
				return reflect.Value{}, fmt.Sprintf("Value %d out of range for %v", n, rt)
			}
			if kind.IsSigned() {
				out.SetInt(n)
			} else {
				out.SetUint(uint64(n))
			}
		case uint64:
			if !kind.FitsUint(n) {
				return reflect.Value{}, fmt.Sprintf("Value %d out of range for %v", n, rt)
			}
			if kind.IsSigned() {
				out.SetInt(int64(n))
			} else {
				out.SetUint(n)
			}
		}
		return out, ""

	case kind.IsFloat():
		if src.Kind() != reflect.Float32 && src.Kind() != reflect.Float64 {
			break
		}
		if f := src.Float(); !kind.FitsFloat(f) {
			return reflect.Value{}, fmt.Sprintf("Value %v out of range for %v", f, rt)
		}
		out.SetFloat(src.Float())
		return out, ""

	case kind == primitive.KindString && src.Kind() == reflect.String:
		out.SetString(src.String())
		return out, ""

	case kind == primitive.KindBool && src.Kind() == reflect.Bool:
		out.SetBool(src.Bool())
		return out, ""
	}

	return reflect.Value{}, fmt.Sprintf("Cannot assign %v to %v", src.Type(), rt)
}
