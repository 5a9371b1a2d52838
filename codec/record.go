package codec

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/rafaeelricco/commit-gen/diagnostic"
	"github.com/rafaeelricco/commit-gen/internal/reflection"
	"github.com/rafaeelricco/commit-gen/options"
	"github.com/rafaeelricco/commit-gen/primitive"
	"github.com/rafaeelricco/commit-gen/result"
	"github.com/rafaeelricco/commit-gen/shape"
)

// Defaulter is implemented by record structs that fill in field defaults.
// SetDefaults runs on the zero value before decoded fields are assigned.
type Defaulter interface {
	SetDefaults()
}

// Validator is implemented by record structs with invariants spanning fields.
// Validate runs after every decoded field is assigned. Returning
// diagnostic.Violations reports each violation with its location.
type Validator interface {
	Validate() error
}

type fieldParser struct {
	field shape.Field
	parse Parser
}

// binding is the outcome of one declared field: set is false when the field
// was absent and nothing was bound to it.
type binding struct {
	field shape.Field
	value any
	set   bool
}

func recordParser(t *shape.Type) Parser {
	mustSupport(t, make(map[*shape.Record]bool))

	// field parsers are built on first decode so self-referencing records terminate
	fields := sync.OnceValue(func() result.Result[string, []fieldParser] {
		return result.Map(reflection.ConcreteFields(t), func(fs []shape.Field) []fieldParser {
			out := make([]fieldParser, 0, len(fs))
			for _, f := range fs {
				out = append(out, fieldParser{field: f, parse: ParserFor(f.Type)})
			}
			return out
		})
	})

	return func(v any, opts options.ParsingOptions) result.Result[string, any] {
		obj, ok := asDict(v)
		if !ok {
			return result.Err[string, any](fmt.Sprintf(
				"Expected dict but found %s, when decoding %s from value: %s",
				primitive.NameOf(v), t, dumps(v)))
		}

		fps, ok := fields().Get()
		if !ok {
			msg, _ := fields().Failure()
			return result.Err[string, any]("When decoding " + t.String() + "\n" + msg)
		}

		bound := make([]binding, 0, len(fps))
		for _, fp := range fps {
			raw, present := obj[fp.field.Name]
			if !present {
				fill := fp.field.IsOptional() && opts.FillMissingOptionals
				bound = append(bound, binding{field: fp.field, set: fill})
				continue
			}

			r := fp.parse(raw, opts)
			if msg, failed := r.Failure(); failed {
				return result.Err[string, any](fmt.Sprintf("parsing field '%s': %s", fp.field.Name, msg))
			}

			bound = append(bound, binding{field: fp.field, value: r.Unwrap(), set: true})
		}

		if rt := t.Decl.GoType; rt != nil {
			return construct(rt, bound)
		}

		return object(t, bound)
	}
}

// construct materializes a record struct: defaults, then decoded fields, then validation.
func construct(rt reflect.Type, bound []binding) result.Result[string, any] {
	ptr := reflect.New(rt)
	if d, ok := ptr.Interface().(Defaulter); ok {
		d.SetDefaults()
	}

	var violations diagnostic.Violations
	for _, b := range bound {
		if !b.set {
			if b.field.IsRequired() {
				violations.Required(b.field.Name)
			}
			continue
		}

		dst := ptr.Elem().FieldByIndex(b.field.Index)
		value, msg := convert(b.value, dst.Type())
		if msg != "" {
			return result.Err[string, any](fmt.Sprintf("parsing field '%s': %s", b.field.Name, msg))
		}
		dst.Set(value)
	}

	if err := violations.Err(); err != nil {
		return result.Err[string, any](err.Error())
	}

	if val, ok := ptr.Interface().(Validator); ok {
		if err := val.Validate(); err != nil {
			return result.Err[string, any](err.Error())
		}
	}

	return result.Ok[string](ptr.Elem().Interface())
}

// object builds the decoded form of a record that has no struct.
func object(t *shape.Type, bound []binding) result.Result[string, any] {
	var violations diagnostic.Violations

	members := make([]shape.Member, 0, len(bound))
	for _, b := range bound {
		switch {
		case b.set:
			members = append(members, shape.Member{Name: b.field.Name, Value: b.value})
		case b.field.HasDefault:
			members = append(members, shape.Member{Name: b.field.Name, Value: b.field.Default})
		default:
			violations.Required(b.field.Name)
		}
	}

	if err := violations.Err(); err != nil {
		return result.Err[string, any](err.Error())
	}

	obj := shape.Object{Record: t.String(), Members: members}
	if validate := t.Decl.Validate; validate != nil {
		if err := validate(obj); err != nil {
			return result.Err[string, any](err.Error())
		}
	}

	return result.Ok[string, any](obj)
}
