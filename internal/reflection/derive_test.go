package reflection

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaeelricco/commit-gen/shape"
)

type status string

func (status) EnumValues() []any { return []any{status("open"), status("closed")} }

type ticketID int64

type embedded struct {
	Hidden string `json:"hidden"`
}

type Audit struct {
	Author string `json:"author"`
}

type ticket struct {
	Audit
	embedded

	ID       ticketID            `json:"id"`
	Title    string              `json:"title"`
	Status   status              `json:"status"`
	Labels   map[string]struct{} `json:"labels"`
	Estimate *decimal.Decimal    `json:"estimate,omitempty"`
	Extra    map[string]any      `json:"extra,omitempty"`
	Parent   *ticket             `json:"parent"`
	Skipped  string              `json:"-"`
	Dash     string              `json:"-,"`
	NoTag    []uint8
	private  int
}

func TestDerive_Record(t *testing.T) {
	typ, err := Derive(reflect.TypeFor[ticket]())
	require.NoError(t, err)
	require.Equal(t, shape.KindRecord, typ.Kind)
	assert.Equal(t, reflect.TypeFor[ticket](), typ.GoType)

	fields := ConcreteFields(typ).Unwrap()
	assert.Equal(t, []string{
		"author", "id", "title", "status", "labels", "estimate", "extra", "parent", "-", "NoTag",
	}, names(fields))

	got := fieldTypes(fields)
	assert.Equal(t, "str", got["author"])
	assert.Equal(t, "ticketID", got["id"])
	assert.Equal(t, `Literal["open", "closed"]`, got["status"])
	assert.Equal(t, "set[str]", got["labels"])
	assert.Equal(t, "Decimal | None", got["estimate"])
	assert.Equal(t, "dict[str, Any]", got["extra"])
	assert.Equal(t, "ticket | None", got["parent"])
	assert.Equal(t, "list[int]", got["NoTag"])

	byName := map[string]shape.Field{}
	for _, f := range fields {
		byName[f.Name] = f
	}
	assert.True(t, byName["title"].IsRequired())
	assert.False(t, byName["estimate"].IsRequired(), "omitempty marks a default")
	assert.Equal(t, []int{0, 0}, byName["author"].Index)
}

func TestDerive_SelfReference(t *testing.T) {
	typ := MustDerive(reflect.TypeFor[ticket]())
	parent, ok := typ.Decl.Field("parent")
	require.True(t, ok)

	inner := parent.Type.Members[0]
	assert.Same(t, typ.Decl, inner.Decl, "recursive references share the declaration")
}

func TestDerive_Cached(t *testing.T) {
	a := MustDerive(reflect.TypeFor[[]ticketID]())
	b := MustDerive(reflect.TypeFor[[]ticketID]())
	assert.Same(t, a, b)
}

func TestDerive_Scalars(t *testing.T) {
	tests := []struct {
		rt   reflect.Type
		want string
		kind shape.Kind
	}{
		{reflect.TypeFor[string](), "str", shape.KindString},
		{reflect.TypeFor[bool](), "bool", shape.KindBool},
		{reflect.TypeFor[int8](), "int", shape.KindInt},
		{reflect.TypeFor[uint64](), "int", shape.KindInt},
		{reflect.TypeFor[float32](), "float", shape.KindFloat},
		{reflect.TypeFor[ticketID](), "ticketID", shape.KindAlias},
		{reflect.TypeFor[decimal.Decimal](), "Decimal", shape.KindDecimal},
		{reflect.TypeFor[any](), "Any", shape.KindAny},
		{reflect.TypeFor[*any](), "Any", shape.KindAny},
		{reflect.TypeFor[*string](), "str | None", shape.KindUnion},
		{reflect.TypeFor[[3]bool](), "list[bool]", shape.KindList},
	}

	for _, tt := range tests {
		t.Run(tt.rt.String(), func(t *testing.T) {
			typ, err := Derive(tt.rt)
			require.NoError(t, err)
			assert.Equal(t, tt.want, typ.String())
			assert.Equal(t, tt.kind, typ.Kind)
		})
	}
}

func TestDerive_Unsupported(t *testing.T) {
	tests := []reflect.Type{
		reflect.TypeFor[chan int](),
		reflect.TypeFor[func()](),
		reflect.TypeFor[complex128](),
		reflect.TypeFor[**int](),
		reflect.TypeFor[map[int]string](),
		reflect.TypeFor[error](),
		reflect.TypeFor[struct{ C chan int }](),
	}

	for _, rt := range tests {
		t.Run(rt.String(), func(t *testing.T) {
			_, err := Derive(rt)
			var unsupported *UnsupportedTypeError
			require.True(t, errors.As(err, &unsupported), "got %v", err)
		})
	}

	assert.Panics(t, func() { MustDerive(reflect.TypeFor[chan int]()) })
}
