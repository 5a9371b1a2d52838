package codec

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/result"
	"github.com/rafaeelricco/commit-gen/shape"
)

// Parser decodes one JSON value into the type it was built for.
type Parser func(v any, opts options.ParsingOptions) result.Result[string, any]

// Built parsers are cached per type shape, keyed by cacheKey. Concurrent
// builds of the same shape produce interchangeable parsers; the first stored wins.
var (
	parsers    sync.Map // string -> Parser
	identities sync.Map // reflect.Type or *shape.Record -> uint64
	nextID     atomic.Uint64
)

// ParserFor returns the parser of t, building it on first use.
// It panics with *UnsupportedTypeError if t cannot be decoded.
func ParserFor(t *shape.Type) Parser {
	key := cacheKey(t)
	if p, ok := parsers.Load(key); ok {
		return p.(Parser)
	}

	p, _ := parsers.LoadOrStore(key, build(t))

	return p.(Parser)
}

// cacheKey identifies the shape of t. Go types and record declarations take
// part by identity, so descriptors that only print alike get distinct keys.
// Records contribute their declaration and arguments, never their fields.
func cacheKey(t *shape.Type) string {
	var b strings.Builder
	writeKey(&b, t)

	return b.String()
}

func writeKey(b *strings.Builder, t *shape.Type) {
	if t == nil {
		b.WriteString("nil")
		return
	}

	fmt.Fprintf(b, "%d", int(t.Kind))
	if t.GoType != nil {
		fmt.Fprintf(b, "@%d", identity(t.GoType))
	}

	switch t.Kind {
	case shape.KindList, shape.KindSet:
		writeKeys(b, t.Elem)
	case shape.KindMap:
		writeKeys(b, t.Key, t.Elem)
	case shape.KindUnion:
		writeKeys(b, t.Members...)
	case shape.KindLiteral:
		for _, v := range t.Values {
			fmt.Fprintf(b, "|%T:%#v", v, v)
		}
	case shape.KindAlias:
		fmt.Fprintf(b, "%q", t.Name)
		writeKeys(b, t.Underlying)
	case shape.KindParam:
		fmt.Fprintf(b, "%q", t.Name)
	case shape.KindRecord:
		if t.Decl != nil {
			fmt.Fprintf(b, "#%d", identity(t.Decl))
		}
		writeKeys(b, t.Args...)
	}
}

func writeKeys(b *strings.Builder, types ...*shape.Type) {
	b.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			b.WriteByte(',')
		}
		writeKey(b, t)
	}
	b.WriteByte(')')
}

// identity numbers each reflect.Type or record declaration it is given.
func identity(v any) uint64 {
	if id, ok := identities.Load(v); ok {
		return id.(uint64)
	}

	id, _ := identities.LoadOrStore(v, nextID.Add(1))

	return id.(uint64)
}

func build(t *shape.Type) Parser {
	p := dispatch(t)
	if t.GoType == nil || t.Kind == shape.KindRecord {
		return p
	}

	rt := t.GoType
	return func(v any, opts options.ParsingOptions) result.Result[string, any] {
		return result.Then(p(v, opts), func(decoded any) result.Result[string, any] {
			return assign(decoded, rt)
		})
	}
}

func dispatch(t *shape.Type) Parser {
	switch t.Kind {
	case shape.KindAny:
		return parseAny
	case shape.KindString:
		return parseString
	case shape.KindBool:
		return parseBool
	case shape.KindFloat:
		return parseFloat
	case shape.KindInt:
		return parseInt
	case shape.KindNull:
		return parseNull
	case shape.KindList:
		return listParser(ParserFor(t.Elem))
	case shape.KindSet:
		return setParser(ParserFor(t.Elem))
	case shape.KindMap:
		return mapParser(ParserFor(t.Key), ParserFor(t.Elem))
	case shape.KindDecimal:
		return parseDecimal
	case shape.KindUnion:
		members := make([]Parser, 0, len(t.Members))
		for _, m := range t.Members {
			members = append(members, ParserFor(m))
		}
		return oneOf(members)
	case shape.KindLiteral:
		return literalParser(t)
	case shape.KindAlias:
		return ParserFor(t.Underlying)
	case shape.KindRecord:
		return recordParser(t)
	default:
		// KindParam outside a record, or an invalid descriptor
		panic(&UnsupportedTypeError{Type: t})
	}
}

// mustSupport walks the descriptors reachable from a record declaration and
// panics on the first one no parser exists for. Records are entered once.
func mustSupport(t *shape.Type, seen map[*shape.Record]bool) {
	switch t.Kind {
	case shape.KindAny, shape.KindString, shape.KindBool, shape.KindFloat,
		shape.KindInt, shape.KindNull, shape.KindDecimal, shape.KindParam:
	case shape.KindList, shape.KindSet:
		mustSupport(t.Elem, seen)
	case shape.KindMap:
		mustSupport(t.Key, seen)
		mustSupport(t.Elem, seen)
	case shape.KindUnion:
		for _, m := range t.Members {
			mustSupport(m, seen)
		}
	case shape.KindLiteral:
		for _, v := range t.Values {
			if literalBase(v) == nil {
				panic(&UnsupportedTypeError{Type: t})
			}
		}
	case shape.KindAlias:
		mustSupport(t.Underlying, seen)
	case shape.KindRecord:
		if t.Decl == nil {
			panic(&UnsupportedTypeError{Type: t})
		}
		for _, a := range t.Args {
			mustSupport(a, seen)
		}
		if seen[t.Decl] {
			return
		}
		seen[t.Decl] = true
		if t.Decl.GoType != nil && t.Decl.GoType.Kind() != reflect.Struct {
			panic(&UnsupportedTypeError{Type: t})
		}
		for _, f := range t.Decl.Fields {
			mustSupport(f.Type, seen)
		}
	default:
		panic(&UnsupportedTypeError{Type: t})
	}
}
