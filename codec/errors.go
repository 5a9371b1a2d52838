package codec

import (
	"fmt"
	"reflect"

	"github.com/rafaeelricco/commit-gen/shape"
)

// UnsupportedTypeError is raised when no parser can be built for a descriptor.
type UnsupportedTypeError struct {
	Type *shape.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "No JSON parser available for " + e.Type.String()
}

// UnsupportedValueError is returned when a Go value has no JSON representation.
type UnsupportedValueError struct {
	Type reflect.Type
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("Cannot convert %v to JSON", e.Type)
}

// DecodeError carries the breadcrumb message of a failed decode.
type DecodeError struct {
	Type    *shape.Type
	Message string
}

func (e *DecodeError) Error() string {
	return e.Message
}
