package reflection

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/rafaeelricco/commit-gen/primitive"
	"github.com/rafaeelricco/commit-gen/shape"
)

var (
	decimalType = reflect.TypeFor[decimal.Decimal]()
	enumType    = reflect.TypeFor[shape.Enum]()
	setMarker   = reflect.TypeFor[struct{}]()

	derived sync.Map // reflect.Type -> *shape.Type
)

// UnsupportedTypeError reports a Go type that has no descriptor.
type UnsupportedTypeError struct {
	Type   reflect.Type
	Reason string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("cannot describe Go type %v: %s", e.Type, e.Reason)
}

// Derive builds the descriptor of rt. Results are cached per type.
func Derive(rt reflect.Type) (*shape.Type, error) {
	if rt == nil {
		return nil, &UnsupportedTypeError{Reason: "nil type"}
	}

	if t, ok := derived.Load(rt); ok {
		return t.(*shape.Type), nil
	}

	d := deriver{records: make(map[reflect.Type]*shape.Record)}
	t, err := d.derive(rt)
	if err != nil {
		return nil, err
	}

	actual, _ := derived.LoadOrStore(rt, t)
	return actual.(*shape.Type), nil
}

// MustDerive is like Derive but panics on unsupported types.
func MustDerive(rt reflect.Type) *shape.Type {
	t, err := Derive(rt)
	if err != nil {
		panic(err)
	}

	return t
}

type deriver struct {
	// records holds the declarations being built, so self-references close the loop.
	records map[reflect.Type]*shape.Record
}

func (d *deriver) derive(rt reflect.Type) (*shape.Type, error) {
	if rt == decimalType {
		return shape.Decimal.Bind(rt), nil
	}

	if kind := primitive.FromReflectType(rt); kind != 0 {
		if reflect.PointerTo(rt).Implements(enumType) {
			values := reflect.New(rt).Interface().(shape.Enum).EnumValues()
			if len(values) == 0 {
				return nil, &UnsupportedTypeError{Type: rt, Reason: "enum without values"}
			}
			return shape.Literal(values...).Bind(rt), nil
		}

		return scalar(rt, kind), nil
	}

	switch rt.Kind() {
	case reflect.Interface:
		if rt.NumMethod() != 0 {
			return nil, &UnsupportedTypeError{Type: rt, Reason: "interface with methods"}
		}
		return shape.Any, nil

	case reflect.Pointer:
		if rt.Elem().Kind() == reflect.Pointer {
			return nil, &UnsupportedTypeError{Type: rt, Reason: "pointer to pointer"}
		}
		inner, err := d.derive(rt.Elem())
		if err != nil {
			return nil, err
		}
		if inner.Kind == shape.KindAny {
			return inner.Bind(rt), nil
		}
		return shape.Optional(inner).Bind(rt), nil

	case reflect.Slice, reflect.Array:
		elem, err := d.derive(rt.Elem())
		if err != nil {
			return nil, err
		}
		return shape.List(elem).Bind(rt), nil

	case reflect.Map:
		if rt.Key().Kind() != reflect.String {
			return nil, &UnsupportedTypeError{Type: rt, Reason: "map key is not a string"}
		}
		key, err := d.derive(rt.Key())
		if err != nil {
			return nil, err
		}
		if rt.Elem() == setMarker {
			return shape.Set(key).Bind(rt), nil
		}
		elem, err := d.derive(rt.Elem())
		if err != nil {
			return nil, err
		}
		return shape.Map(key, elem).Bind(rt), nil

	case reflect.Struct:
		return d.record(rt)

	default:
		return nil, &UnsupportedTypeError{Type: rt, Reason: "unsupported kind " + rt.Kind().String()}
	}
}

func scalar(rt reflect.Type, kind primitive.KindEnum) *shape.Type {
	var base *shape.Type
	switch {
	case kind == primitive.KindString:
		base = shape.String
	case kind == primitive.KindBool:
		base = shape.Bool
	case kind.IsInteger():
		base = shape.Int
	default:
		base = shape.Float
	}

	if primitive.IsNamed(rt) {
		return shape.Alias(rt.Name(), base).Bind(rt)
	}

	return base.Bind(rt)
}

func (d *deriver) record(rt reflect.Type) (*shape.Type, error) {
	if rec, ok := d.records[rt]; ok {
		return rec.Of(), nil
	}

	name := rt.Name()
	if name == "" {
		name = rt.String()
	}

	rec := &shape.Record{Name: name, GoType: rt}
	d.records[rt] = rec

	var fields []shape.Field
	for _, sf := range reflect.VisibleFields(rt) {
		if !sf.IsExported() || !reachable(rt, sf.Index) {
			continue
		}

		tagName, opts, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if tagName == "-" && opts == "" {
			continue
		}

		if sf.Anonymous && tagName == "" && sf.Type.Kind() == reflect.Struct {
			// promoted fields are listed on their own
			continue
		}

		ft, err := d.derive(sf.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s.%s: %w", name, sf.Name, err)
		}

		if tagName == "" {
			tagName = sf.Name
		}

		fields = append(fields, shape.Field{
			Name:       tagName,
			Type:       ft,
			HasDefault: hasOption(opts, "omitempty"),
			Index:      sf.Index,
		})
	}

	rec.Fields = fields

	return rec.Of(), nil
}

// reachable reports whether the field at index can be set without crossing
// an unexported or pointer embedding.
func reachable(rt reflect.Type, index []int) bool {
	for _, i := range index[:len(index)-1] {
		sf := rt.Field(i)
		if !sf.IsExported() || sf.Type.Kind() != reflect.Struct {
			return false
		}
		rt = sf.Type
	}

	return true
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == want {
			return true
		}
	}

	return false
}
