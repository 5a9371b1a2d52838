package codec

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/primitive"
	"github.com/rafaeelricco/commit-gen/result"
)

func listParser(elem Parser) Parser {
	return func(v any, opts options.ParsingOptions) result.Result[string, any] {
		items, ok := asList(v)
		if !ok {
			return expected("List", v)
		}

		return decodeItems(items, elem, opts)
	}
}

func decodeItems(items []any, elem Parser, opts options.ParsingOptions) result.Result[string, any] {
	decoded := result.TraverseIndexed(items, func(i int, item any) result.Result[string, any] {
		return result.MapErr(elem(item, opts), func(err string) string {
			return fmt.Sprintf("At index %d: %s", i, err)
		})
	})

	return result.Map(decoded, func(values []any) any { return values })
}

// setParser decodes a list and drops repeated elements, keeping the first.
func setParser(elem Parser) Parser {
	return func(v any, opts options.ParsingOptions) result.Result[string, any] {
		items, ok := asList(v)
		if !ok {
			return expected("Set", v)
		}

		return result.Map(decodeItems(items, elem, opts), func(values any) any {
			return dedupe(values.([]any))
		})
	}
}

func dedupe(values []any) []any {
	out := make([]any, 0, len(values))
	seen := make(map[any]struct{}, len(values))

	for _, v := range values {
		if !hashable(v) {
			if !slices.ContainsFunc(out, func(o any) bool { return sameValue(o, v) }) {
				out = append(out, v)
			}
			continue
		}

		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// hashable reports whether v can key a map without risking a runtime panic.
func hashable(v any) bool {
	return v == nil || primitive.FromReflectType(reflect.TypeOf(v)) != 0
}

func sameValue(a, b any) bool {
	da, aok := a.(decimal.Decimal)
	db, bok := b.(decimal.Decimal)
	if aok && bok {
		return da.Equal(db)
	}

	return reflect.DeepEqual(a, b)
}

// mapParser decodes every key and value. Keys are visited in sorted order so
// the reported failure does not depend on map iteration.
func mapParser(key, value Parser) Parser {
	return func(v any, opts options.ParsingOptions) result.Result[string, any] {
		m, ok := asDict(v)
		if !ok {
			return expected("Dict", v)
		}

		out := make(map[string]any, len(m))
		for _, k := range sortedKeys(m) {
			dk := key(k, opts)
			if msg, failed := dk.Failure(); failed {
				return result.Err[string, any](fmt.Sprintf("parsing key name %s: %s", k, msg))
			}

			dv := value(m[k], opts)
			if msg, failed := dv.Failure(); failed {
				return result.Err[string, any](fmt.Sprintf("parsing key %s: %s", k, msg))
			}

			out[keyString(dk.Unwrap())] = dv.Unwrap()
		}

		return result.Ok[string, any](out)
	}
}

func keyString(k any) string {
	if rv := reflect.ValueOf(k); rv.Kind() == reflect.String {
		return rv.String()
	}

	return fmt.Sprint(k)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}

func asList(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	if primitive.ShapeOf(v) != primitive.ShapeList {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

func asDict(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}

	if primitive.ShapeOf(v) != primitive.ShapeDict {
		return nil, false
	}

	rv := reflect.ValueOf(v)
	m := make(map[string]any, rv.Len())
	for it := rv.MapRange(); it.Next(); {
		m[it.Key().String()] = it.Value().Interface()
	}

	return m, true
}
