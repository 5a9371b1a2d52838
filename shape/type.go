package shape

import (
	"fmt"
	"reflect"
	"strings"
)

// Type describes one target type. Which fields are meaningful depends on Kind:
//
//	KindList, KindSet   Elem
//	KindMap             Key, Elem
//	KindUnion           Members
//	KindLiteral         Values
//	KindAlias           Name, Underlying
//	KindRecord          Decl, Args
//	KindParam           Name
//
// GoType, when set, is the Go type decoded values are materialized as.
// Types are never mutated once built; Bind returns a copy.
type Type struct {
	Kind       Kind
	Name       string
	Elem       *Type
	Key        *Type
	Members    []*Type
	Values     []any
	Underlying *Type
	Decl       *Record
	Args       []*Type
	GoType     reflect.Type
}

var (
	Any     = &Type{Kind: KindAny}
	String  = &Type{Kind: KindString}
	Bool    = &Type{Kind: KindBool}
	Float   = &Type{Kind: KindFloat}
	Int     = &Type{Kind: KindInt}
	Null    = &Type{Kind: KindNull}
	Decimal = &Type{Kind: KindDecimal}
)

// List is an ordered sequence of elem.
func List(elem *Type) *Type {
	return &Type{Kind: KindList, Elem: elem}
}

// Set is a sequence of elem whose duplicates collapse.
func Set(elem *Type) *Type {
	return &Type{Kind: KindSet, Elem: elem}
}

// Map is a mapping with keys of type key and values of type value.
func Map(key, value *Type) *Type {
	return &Type{Kind: KindMap, Key: key, Elem: value}
}

// Union accepts a value matching exactly one of members.
// Nested unions are flattened and repeated members dropped; a union of a
// single member is that member.
func Union(members ...*Type) *Type {
	var flat []*Type
	for _, m := range members {
		if m.Kind == KindUnion {
			flat = appendMembers(flat, m.Members...)
			continue
		}
		flat = appendMembers(flat, m)
	}

	switch len(flat) {
	case 0:
		panic("shape: union needs at least one member")
	case 1:
		return flat[0]
	default:
		return &Type{Kind: KindUnion, Members: flat}
	}
}

func appendMembers(dst []*Type, members ...*Type) []*Type {
	for _, m := range members {
		dup := false
		for _, d := range dst {
			if sameType(d, m) {
				dup = true
				break
			}
		}

		if !dup {
			dst = append(dst, m)
		}
	}

	return dst
}

func sameType(a, b *Type) bool {
	if a == b {
		return true
	}

	switch a.Kind {
	case KindAny, KindString, KindBool, KindFloat, KindInt, KindNull, KindDecimal:
		return a.Kind == b.Kind && a.GoType == b.GoType
	default:
		return false
	}
}

// Optional is t or null.
func Optional(t *Type) *Type {
	return Union(t, Null)
}

// Literal accepts exactly one of values. Each value is decoded with the scalar
// descriptor of its own runtime type and compared for equality.
func Literal(values ...any) *Type {
	if len(values) == 0 {
		panic("shape: literal needs at least one value")
	}

	return &Type{Kind: KindLiteral, Values: values}
}

// Alias is a named type decoded as its underlying representation.
func Alias(name string, underlying *Type) *Type {
	return &Type{Kind: KindAlias, Name: name, Underlying: underlying}
}

// Param is a reference to a declared type parameter of the enclosing record.
func Param(name string) *Type {
	return &Type{Kind: KindParam, Name: name}
}

// Bind returns a copy of t whose decoded values are materialized as rt.
func (t *Type) Bind(rt reflect.Type) *Type {
	c := *t
	c.GoType = rt

	return &c
}

// IsOptional reports whether t accepts null.
func (t *Type) IsOptional() bool {
	switch t.Kind {
	case KindNull:
		return true
	case KindUnion:
		for _, m := range t.Members {
			if m.Kind == KindNull {
				return true
			}
		}
	}

	return false
}

// String renders t the way decode errors name types.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind {
	case KindAny:
		return "Any"
	case KindString:
		return "str"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindNull:
		return "None"
	case KindDecimal:
		return "Decimal"
	case KindList:
		return "list[" + t.Elem.String() + "]"
	case KindSet:
		return "set[" + t.Elem.String() + "]"
	case KindMap:
		return "dict[" + t.Key.String() + ", " + t.Elem.String() + "]"
	case KindUnion:
		return joinTypes(t.Members, " | ")
	case KindLiteral:
		parts := make([]string, 0, len(t.Values))
		for _, v := range t.Values {
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
				parts = append(parts, fmt.Sprintf("%q", rv.String()))
				continue
			}
			parts = append(parts, fmt.Sprint(v))
		}
		return "Literal[" + strings.Join(parts, ", ") + "]"
	case KindAlias, KindParam:
		return t.Name
	case KindRecord:
		if t.Decl == nil {
			return "record"
		}
		if len(t.Args) == 0 {
			return t.Decl.Name
		}
		return t.Decl.Name + "[" + joinTypes(t.Args, ", ") + "]"
	default:
		return t.Kind.String()
	}
}

func joinTypes(types []*Type, sep string) string {
	parts := make([]string, 0, len(types))
	for _, m := range types {
		parts = append(parts, m.String())
	}

	return strings.Join(parts, sep)
}
