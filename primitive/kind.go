package primitive

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum classifies the leaf types a raw cell can be converted into.
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
	KindTime
	KindDuration
	KindUUID
	KindEnumMember // type implementing Enum
	KindText       // type implementing encoding.TextUnmarshaler
)

// Enum is implemented by types whose values form a closed, named set.
// EnumMembers must return every member; String names each of them.
type Enum interface {
	fmt.Stringer
	EnumMembers() []Enum
}

var (
	enumType            = reflect.TypeFor[Enum]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// IsNumber reports whether k is an integer or floating point kind.
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

func (k KindEnum) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only number kinds has meaningful bits amount, but requested for: " + k.String())
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
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

// FromReflectType returns the leaf kind of rtype or zero when rtype is not a
// leaf. Pointers are not unwrapped; see IsOptional.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil || rtype.Kind() == reflect.Interface {
		return 0
	}

	switch rtype {
	case reflect.TypeFor[time.Time]():
		return KindTime
	case reflect.TypeFor[time.Duration]():
		return KindDuration
	case reflect.TypeFor[uuid.UUID]():
		return KindUUID
	}

	if rtype.Kind() != reflect.Pointer && rtype.Implements(enumType) {
		return KindEnumMember
	}

	if rtype.Kind() != reflect.Pointer && reflect.PointerTo(rtype).Implements(textUnmarshalerType) {
		return KindText
	}

	// named types are accepted by their underlying kind
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

// IsOptional reports whether rtype is a pointer to a leaf type.
func IsOptional(rtype reflect.Type) bool {
	return rtype != nil && rtype.Kind() == reflect.Pointer && FromReflectType(rtype.Elem()) != 0
}

// IsLeaf reports whether a raw cell can be converted into rtype directly.
func IsLeaf(rtype reflect.Type) bool {
	return FromReflectType(rtype) != 0 || IsOptional(rtype)
}

// IsEnum reports whether rtype is an enum or an optional enum.
func IsEnum(rtype reflect.Type) bool {
	if IsOptional(rtype) {
		rtype = rtype.Elem()
	}

	return FromReflectType(rtype) == KindEnumMember
}
