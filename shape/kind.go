package shape

import (
	"reflect"

	"table-binder/primitive"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the structural classification of a member.
type Kind int

const (
	KindUnsupported Kind = iota
	KindScalar
	KindEnum
	KindObject
	KindArray // fixed size [N]T
	KindList  // []T
	KindMap   // map[K]V with a leaf K
)

// IsLeaf reports whether the kind is written from a single raw cell.
func (k Kind) IsLeaf() bool {
	return k == KindScalar || k == KindEnum
}

// IsSequence reports whether elements are addressed by index.
func (k Kind) IsSequence() bool {
	return k == KindArray || k == KindList
}

// Shape describes a member type. Elem is the element type of sequences and the
// value type of maps; Key is the key type of maps.
type Shape struct {
	Kind Kind
	Type reflect.Type
	Elem reflect.Type
	Key  reflect.Type
}

// ElemIsLeaf reports whether container elements are written from raw cells.
func (s Shape) ElemIsLeaf() bool {
	return s.Elem != nil && primitive.IsLeaf(s.Elem)
}

// ElemIsObject reports whether container elements are nested objects.
func (s Shape) ElemIsObject() bool {
	return s.Elem != nil && Of(s.Elem).Kind == KindObject
}

// Of classifies rtype.
func Of(rtype reflect.Type) Shape {
	s := Shape{Kind: KindUnsupported, Type: rtype}
	if rtype == nil {
		return s
	}

	switch {
	case primitive.IsEnum(rtype):
		s.Kind = KindEnum
		return s
	case primitive.IsLeaf(rtype):
		s.Kind = KindScalar
		return s
	}

	switch rtype.Kind() {
	case reflect.Struct:
		s.Kind = KindObject
	case reflect.Pointer:
		if rtype.Elem().Kind() == reflect.Struct {
			s.Kind = KindObject
		}
	case reflect.Array:
		s.Kind, s.Elem = KindArray, rtype.Elem()
	case reflect.Slice:
		s.Kind, s.Elem = KindList, rtype.Elem()
	case reflect.Map:
		if primitive.FromReflectType(rtype.Key()) != 0 {
			s.Kind, s.Key, s.Elem = KindMap, rtype.Key(), rtype.Elem()
		}
	}

	return s
}

// New builds the default instance of rtype: pointers point at a fresh zero
// value, maps are empty and ready for writes, everything else is zero.
func New(rtype reflect.Type) reflect.Value {
	switch rtype.Kind() {
	case reflect.Pointer:
		return reflect.New(rtype.Elem())
	case reflect.Map:
		return reflect.MakeMap(rtype)
	default:
		return reflect.New(rtype).Elem()
	}
}
