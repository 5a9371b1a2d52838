package primitive

import (
	"math"
	"reflect"

	"github.com/rafaeelricco/commit-gen/utils"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the Go scalar kind a decoded JSON scalar is stored into.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	case KindFloat32:
		return 32
	case KindFloat64:
		return 64
	}
}

// FitsInt reports whether v is representable by the integer kind k.
func (k KindEnum) FitsInt(v int64) bool {
	switch {
	case k.IsSigned():
		lo, hi := signedBounds(k.Bits())
		return utils.IsInRange(lo, v, hi)
	case k.IsUnsigned():
		return v >= 0 && uint64(v) <= unsignedMax(k.Bits())
	default:
		return false
	}
}

// FitsUint reports whether v is representable by the integer kind k.
func (k KindEnum) FitsUint(v uint64) bool {
	switch {
	case k.IsSigned():
		_, hi := signedBounds(k.Bits())
		return v <= uint64(hi)
	case k.IsUnsigned():
		return v <= unsignedMax(k.Bits())
	default:
		return false
	}
}

// FitsFloat reports whether v is representable by the float kind k without overflowing to infinity.
func (k KindEnum) FitsFloat(v float64) bool {
	switch k {
	case KindFloat32:
		return math.IsNaN(v) || math.IsInf(v, 0) || utils.IsInRange(-math.MaxFloat32, v, math.MaxFloat32)
	case KindFloat64:
		return true
	default:
		return false
	}
}

func signedBounds(bits int) (int64, int64) {
	if bits >= 64 {
		return math.MinInt64, math.MaxInt64
	}

	hi := int64(1)<<(bits-1) - 1
	return -hi - 1, hi
}

func unsignedMax(bits int) uint64 {
	if bits >= 64 {
		return math.MaxUint64
	}

	return uint64(1)<<bits - 1
}

// FromReflectType returns the scalar kind backing rtype, following named types
// down to their underlying kind. It returns 0 for non-scalar types.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	}
}

// IsNamed reports whether rtype is a user-declared scalar type such as
// `type Status string`, as opposed to the predeclared one.
func IsNamed(rtype reflect.Type) bool {
	if FromReflectType(rtype) == 0 {
		return false
	}

	return rtype.PkgPath() != ""
}
