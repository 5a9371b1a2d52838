package reflection

import (
	"github.com/rafaeelricco/commit-gen/result"
	"github.com/rafaeelricco/commit-gen/shape"
)

// Bindings maps declared parameter names to the arguments of one instantiation.
type Bindings map[string]*shape.Type

// BindingsOf zips the parameters of t's record declaration with t's arguments.
// Missing arguments are padded with Any; surplus arguments are ignored.
func BindingsOf(t *shape.Type) Bindings {
	if t.Kind != shape.KindRecord || t.Decl == nil {
		return nil
	}

	b := make(Bindings, len(t.Decl.Params))
	for i, p := range t.Decl.Params {
		if i < len(t.Args) {
			b[p] = t.Args[i]
		} else {
			b[p] = shape.Any
		}
	}

	return b
}

// Substitute replaces every parameter reachable from t with its binding.
// Sub-descriptors without parameters are returned as is, so the result shares
// structure with t. Nested records are not entered: their own fields are
// resolved when they are decoded, which keeps self-referencing records finite.
func Substitute(t *shape.Type, b Bindings) *shape.Type {
	switch t.Kind {
	case shape.KindParam:
		if bound, ok := b[t.Name]; ok {
			return bound
		}
		return shape.Any

	case shape.KindList, shape.KindSet:
		elem := Substitute(t.Elem, b)
		if elem == t.Elem {
			return t
		}
		c := *t
		c.Elem = elem
		return &c

	case shape.KindMap:
		key, elem := Substitute(t.Key, b), Substitute(t.Elem, b)
		if key == t.Key && elem == t.Elem {
			return t
		}
		c := *t
		c.Key, c.Elem = key, elem
		return &c

	case shape.KindUnion:
		members, changed := substituteAll(t.Members, b)
		if !changed {
			return t
		}
		u := shape.Union(members...)
		if u.Kind != shape.KindUnion {
			return u
		}
		c := *u
		c.GoType = t.GoType
		return &c

	case shape.KindAlias:
		underlying := Substitute(t.Underlying, b)
		if underlying == t.Underlying {
			return t
		}
		c := *t
		c.Underlying = underlying
		return &c

	case shape.KindRecord:
		args, changed := substituteAll(t.Args, b)
		if !changed {
			return t
		}
		c := *t
		c.Args = args
		return &c

	default:
		return t
	}
}

func substituteAll(types []*shape.Type, b Bindings) ([]*shape.Type, bool) {
	changed := false
	out := make([]*shape.Type, len(types))
	for i, m := range types {
		out[i] = Substitute(m, b)
		changed = changed || out[i] != m
	}

	return out, changed
}

// ConcreteFields returns the declared fields of the record t, in declaration
// order, with every field type substituted under t's bindings.
// A record without fields yields an empty slice.
func ConcreteFields(t *shape.Type) result.Result[string, []shape.Field] {
	if t.Kind != shape.KindRecord || t.Decl == nil {
		return result.Err[string, []shape.Field]("Expected a record type but found " + t.String())
	}

	b := BindingsOf(t)
	fields := make([]shape.Field, 0, len(t.Decl.Fields))
	for _, f := range t.Decl.Fields {
		fields = append(fields, f.WithType(Substitute(f.Type, b)))
	}

	return result.Ok[string](fields)
}
