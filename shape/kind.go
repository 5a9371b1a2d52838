// Package shape describes the target types JSON values are decoded into.
//
// A *Type is a node of a closed tagged variant selected by Kind. Descriptors are
// either hand-authored with the constructors of this package, including generic
// records declared with type parameters, or derived from Go types by the codec.
//
// Key types:
//   - Type: one descriptor node (scalar, container, union, literal, alias, record, parameter)
//   - Record: a record declaration with ordered fields and declared type parameters
//   - Object: the decoded form of a record that is not bound to a Go struct
package shape

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind selects the variant of a Type.
type Kind int

const (
	_ Kind = iota // skip zero value, an invalid descriptor

	KindAny
	KindString
	KindBool
	KindFloat
	KindInt
	KindNull
	KindList
	KindSet
	KindMap
	KindDecimal
	KindUnion
	KindLiteral
	KindAlias
	KindRecord
	KindParam

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsScalar reports whether k is decoded by an exact runtime-shape check.
func (k Kind) IsScalar() bool {
	switch k {
	default:
		return false
	case KindString, KindBool, KindFloat, KindInt, KindNull:
		return true
	}
}

// IsContainer reports whether k has element descriptors.
func (k Kind) IsContainer() bool {
	switch k {
	default:
		return false
	case KindList, KindSet, KindMap:
		return true
	}
}
