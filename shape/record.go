package shape

import (
	"reflect"
)

// Record declares a structural type: an ordered set of named fields whose
// types may refer to the declared type parameters through Param.
type Record struct {
	Name   string
	Params []string
	Fields []Field

	// GoType, when set, is the struct type decoded records are materialized as.
	// Every field must then carry its Index into that struct.
	GoType reflect.Type

	// Validate, when set, checks a decoded Object after all fields resolved.
	// Only used for records without a GoType.
	Validate func(Object) error
}

// Declare creates a record declaration.
func Declare(name string, params []string, fields ...Field) *Record {
	return &Record{Name: name, Params: params, Fields: fields}
}

// Define replaces the fields of r. It exists for self-referencing records,
// whose fields can only be built once r itself exists.
func (r *Record) Define(fields ...Field) *Record {
	r.Fields = fields
	return r
}

// Of instantiates r with args bound positionally to its parameters.
func (r *Record) Of(args ...*Type) *Type {
	return &Type{Kind: KindRecord, Decl: r, Args: args, GoType: r.GoType}
}

// Field looks up a declared field by name.
func (r *Record) Field(name string) (Field, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return Field{}, false
}

// Field is one declared field of a record.
type Field struct {
	Name string
	Type *Type

	// Default is applied when the field is absent from the input; a field
	// without one is required.
	Default    any
	HasDefault bool

	// Index locates the field in the record's GoType (see reflect.Value.FieldByIndex).
	Index []int
}

// NewField declares a required field.
func NewField(name string, t *Type) Field {
	return Field{Name: name, Type: t}
}

// WithDefault returns f with a default value, making it not required.
func (f Field) WithDefault(v any) Field {
	f.Default = v
	f.HasDefault = true

	return f
}

// WithType returns f with its type replaced.
func (f Field) WithType(t *Type) Field {
	f.Type = t
	return f
}

// IsOptional reports whether the field's type accepts null.
func (f Field) IsOptional() bool {
	return f.Type.IsOptional()
}

// IsRequired reports whether the field must be present in the input.
func (f Field) IsRequired() bool {
	return !f.HasDefault
}
