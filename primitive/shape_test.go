package primitive

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShapeOf(t *testing.T) {
	type Status string

	tests := []struct {
		name  string
		value any
		want  ShapeEnum
		label string
	}{
		{"nil", nil, ShapeNull, "NoneType"},
		{"bool", true, ShapeBool, "bool"},
		{"int64", int64(3), ShapeInt, "int"},
		{"uint8", uint8(3), ShapeInt, "int"},
		{"float", 1.5, ShapeFloat, "float"},
		{"string", "x", ShapeString, "str"},
		{"named string", Status("ok"), ShapeString, "str"},
		{"list", []any{1}, ShapeList, "list"},
		{"typed list", []string{"a"}, ShapeList, "list"},
		{"dict", map[string]any{}, ShapeDict, "dict"},
		{"integer number", json.Number("12"), ShapeInt, "int"},
		{"float number", json.Number("1.0"), ShapeFloat, "float"},
		{"exponent number", json.Number("1e3"), ShapeFloat, "float"},
		{"nil pointer", (*int)(nil), ShapeNull, "NoneType"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShapeOf(tt.value))
			assert.Equal(t, tt.label, NameOf(tt.value))
		})
	}
}

func TestNameOf_NotJSON(t *testing.T) {
	assert.Equal(t, "chan int", NameOf(make(chan int)))
	assert.Equal(t, "map[int]string", NameOf(map[int]string{}))
}

func TestAsInteger(t *testing.T) {
	v, ok := AsInteger(int32(-4))
	assert.True(t, ok)
	assert.Equal(t, int64(-4), v)

	v, ok = AsInteger(uint64(math.MaxUint64))
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), v)

	v, ok = AsInteger(json.Number("18446744073709551615"))
	assert.True(t, ok)
	assert.Equal(t, uint64(math.MaxUint64), v)

	_, ok = AsInteger(true)
	assert.False(t, ok)

	_, ok = AsInteger(1.0)
	assert.False(t, ok)
}

func TestAsFloat(t *testing.T) {
	f, ok := AsFloat(float32(0.5))
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)

	f, ok = AsFloat(json.Number("2.25"))
	assert.True(t, ok)
	assert.Equal(t, 2.25, f)

	_, ok = AsFloat(json.Number("2"))
	assert.False(t, ok)

	_, ok = AsFloat(int64(2))
	assert.False(t, ok)
}

func TestKindEnum_FitsFloat(t *testing.T) {
	assert.True(t, KindFloat32.FitsFloat(1.5))
	assert.False(t, KindFloat32.FitsFloat(math.MaxFloat64))
	assert.True(t, KindFloat64.FitsFloat(math.MaxFloat64))
	assert.False(t, KindInt.FitsFloat(1))
}
