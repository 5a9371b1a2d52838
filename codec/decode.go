package codec

import (
	"fmt"
	"reflect"

	"github.com/rafaeelricco/commit-gen/internal/reflection"
	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/result"
	"github.com/rafaeelricco/commit-gen/shape"
)

// TypeOf returns the descriptor of the Go type T.
// It panics with *reflection.UnsupportedTypeError if T has no descriptor.
func TypeOf[T any]() *shape.Type {
	return reflection.MustDerive(reflect.TypeFor[T]())
}

// DecodeType decodes a JSON value against the descriptor t.
func DecodeType(t *shape.Type, data any, opts options.ParsingOptions) result.Result[string, any] {
	return ParserFor(t)(data, opts)
}

// Decode decodes a JSON value into T.
func Decode[T any](data any, opts options.ParsingOptions) result.Result[string, T] {
	return result.Then(DecodeType(TypeOf[T](), data, opts), func(v any) result.Result[string, T] {
		if v == nil {
			var zero T
			return result.Ok[string](zero)
		}

		out, ok := v.(T)
		if !ok {
			return result.Err[string, T](fmt.Sprintf("Decoded %T is not a %v", v, reflect.TypeFor[T]()))
		}

		return result.Ok[string](out)
	})
}

// Parse is Decode reporting failures as *DecodeError.
func Parse[T any](data any, opts options.ParsingOptions) (T, error) {
	r := Decode[T](data, opts)
	if msg, failed := r.Failure(); failed {
		var zero T
		return zero, &DecodeError{Type: TypeOf[T](), Message: msg}
	}

	return r.Unwrap(), nil
}

// Unmarshal reads a JSON document and decodes it into T.
func Unmarshal[T any](data []byte, opts options.ParsingOptions) (T, error) {
	v, err := ParseJSON(data)
	if err != nil {
		var zero T
		return zero, err
	}

	return Parse[T](v, opts)
}
