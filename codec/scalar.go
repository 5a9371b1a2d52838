package codec

import (
	"fmt"
	"reflect"

	"github.com/shopspring/decimal"

	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/primitive"
	"github.com/rafaeelricco/commit-gen/result"
	"github.com/rafaeelricco/commit-gen/shape"
)

func expected(what string, v any) result.Result[string, any] {
	return result.Err[string, any]("Expected " + what + " but found " + primitive.NameOf(v))
}

func parseAny(v any, _ options.ParsingOptions) result.Result[string, any] {
	return result.Ok[string](v)
}

func parseString(v any, _ options.ParsingOptions) result.Result[string, any] {
	if primitive.ShapeOf(v) != primitive.ShapeString {
		return expected("str", v)
	}

	return result.Ok[string, any](reflect.ValueOf(v).String())
}

func parseBool(v any, _ options.ParsingOptions) result.Result[string, any] {
	if primitive.ShapeOf(v) != primitive.ShapeBool {
		return expected("bool", v)
	}

	return result.Ok[string, any](reflect.ValueOf(v).Bool())
}

func parseFloat(v any, _ options.ParsingOptions) result.Result[string, any] {
	f, ok := primitive.AsFloat(v)
	if !ok || primitive.ShapeOf(v) != primitive.ShapeFloat {
		return expected("float", v)
	}

	return result.Ok[string, any](f)
}

func parseInt(v any, _ options.ParsingOptions) result.Result[string, any] {
	if primitive.ShapeOf(v) != primitive.ShapeInt {
		return expected("int", v)
	}

	n, ok := primitive.AsInteger(v)
	if !ok {
		return expected("int", v)
	}

	return result.Ok[string](n)
}

func parseNull(v any, _ options.ParsingOptions) result.Result[string, any] {
	if primitive.ShapeOf(v) != primitive.ShapeNull {
		return expected("None", v)
	}

	return result.Ok[string, any](nil)
}

// parseDecimal only accepts strings: a JSON number would already have lost precision.
func parseDecimal(v any, opts options.ParsingOptions) result.Result[string, any] {
	return result.Then(parseString(v, opts), func(s any) result.Result[string, any] {
		d, err := decimal.NewFromString(s.(string))
		if err != nil {
			return result.Err[string, any](fmt.Sprintf("Invalid decimal '%s'", s))
		}

		return result.Ok[string, any](d)
	})
}

// literalParser decodes each allowed value with the scalar parser of its own
// type and compares; exactly one value may match.
func literalParser(t *shape.Type) Parser {
	checks := make([]Parser, 0, len(t.Values))
	for _, want := range t.Values {
		base := literalBase(want)
		if base == nil {
			panic(&UnsupportedTypeError{Type: t})
		}

		parse := ParserFor(base)
		checks = append(checks, func(v any, opts options.ParsingOptions) result.Result[string, any] {
			return result.Then(parse(v, opts), func(got any) result.Result[string, any] {
				if canonical(got) != canonical(want) {
					return result.Err[string, any](fmt.Sprintf("Value mismatch. Expected %v, found %v", want, got))
				}

				return result.Ok[string](want)
			})
		})
	}

	return oneOf(checks)
}

func literalBase(v any) *shape.Type {
	if v == nil {
		return shape.Null
	}

	kind := primitive.FromReflectType(reflect.TypeOf(v))
	switch {
	case kind == primitive.KindString:
		return shape.String
	case kind == primitive.KindBool:
		return shape.Bool
	case kind.IsInteger():
		return shape.Int
	case kind.IsFloat():
		return shape.Float
	default:
		return nil
	}
}

// canonical strips named types so literal values compare by representation.
func canonical(v any) any {
	if v == nil {
		return nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		if n, ok := primitive.AsInteger(v); ok {
			return n
		}
		return v
	}
}
