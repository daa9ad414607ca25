package shape

import (
	"reflect"
	"strings"
)

// DefaultTagKey is the struct tag read by StructIntrospector.
const DefaultTagKey = "table"

// Member is a resolved member of a live object.
type Member struct {
	Name     string
	Shape    Shape
	Writable bool
	// Value is the member's current value; it is settable when Writable.
	Value reflect.Value
}

// Introspector resolves named members on object values. obj is always a
// struct value; implementations report false for names they do not know.
type Introspector interface {
	Member(obj reflect.Value, name string) (Member, bool)
}

// Vivifier is implemented by introspectors that can create what a member is
// reached through, such as nil embedded pointers, before writing to it.
// obj must be addressable.
type Vivifier interface {
	VivifyMember(obj reflect.Value, name string) (Member, bool)
}

// Namer is implemented by introspectors able to list the member names they
// resolve on a type.
type Namer interface {
	Names(typ reflect.Type) []string
}

// StructIntrospector resolves exported struct fields, promoted fields included.
//
// A field matches by its Go name or by the alias in its tag, exactly first and
// then case-insensitively unless CaseSensitive is set. Tag options:
//
//	Name string `table:"-"`              // never bound nor read
//	City string `table:"town"`           // also reachable as "town"
//	ID   int    `table:",readonly"`      // read only: bindings skip it
type StructIntrospector struct {
	TagKey        string
	CaseSensitive bool
}

var (
	_ Introspector = StructIntrospector{}
	_ Vivifier     = StructIntrospector{}
	_ Namer        = StructIntrospector{}
)

type fieldInfo struct {
	field    reflect.StructField
	alias    string
	readonly bool
}

// Member implements Introspector.
func (si StructIntrospector) Member(obj reflect.Value, name string) (Member, bool) {
	if obj.Kind() != reflect.Struct {
		return Member{}, false
	}

	info, ok := si.lookup(obj.Type(), name)
	if !ok {
		return Member{}, false
	}

	fv, err := obj.FieldByIndexErr(info.field.Index)
	if err != nil {
		// promoted through a nil embedded pointer
		return Member{}, false
	}

	return info.member(fv), true
}

// VivifyMember implements Vivifier. Nil embedded pointers on the way to a
// writable field are allocated; read-only fields never allocate anything.
func (si StructIntrospector) VivifyMember(obj reflect.Value, name string) (Member, bool) {
	if obj.Kind() != reflect.Struct {
		return Member{}, false
	}

	info, ok := si.lookup(obj.Type(), name)
	if !ok {
		return Member{}, false
	}

	if info.readonly {
		return si.Member(obj, name)
	}

	fv, ok := fieldByIndexAlloc(obj, info.field.Index)
	if !ok {
		return Member{}, false
	}

	return info.member(fv), true
}

func (info fieldInfo) member(fv reflect.Value) Member {
	return Member{
		Name:     info.field.Name,
		Shape:    Of(info.field.Type),
		Writable: !info.readonly && fv.CanSet(),
		Value:    fv,
	}
}

// fieldByIndexAlloc is reflect.Value.FieldByIndex that allocates nil embedded
// pointers. It fails when such a pointer cannot be set.
func fieldByIndexAlloc(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}

				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v, true
}

// Names implements Namer.
func (si StructIntrospector) Names(typ reflect.Type) []string {
	var names []string

	for _, info := range si.fields(typ) {
		names = append(names, info.field.Name)
		if info.alias != "" && info.alias != info.field.Name {
			names = append(names, info.alias)
		}
	}

	return names
}

func (si StructIntrospector) lookup(typ reflect.Type, name string) (fieldInfo, bool) {
	fields := si.fields(typ)

	for _, info := range fields {
		if info.field.Name == name || info.alias == name {
			return info, true
		}
	}

	if si.CaseSensitive {
		return fieldInfo{}, false
	}

	for _, info := range fields {
		if strings.EqualFold(info.field.Name, name) || (info.alias != "" && strings.EqualFold(info.alias, name)) {
			return info, true
		}
	}

	return fieldInfo{}, false
}

func (si StructIntrospector) fields(typ reflect.Type) []fieldInfo {
	tagKey := si.TagKey
	if tagKey == "" {
		tagKey = DefaultTagKey
	}

	var result []fieldInfo

	for _, f := range reflect.VisibleFields(typ) {
		if !f.IsExported() {
			continue
		}

		alias, opts, _ := strings.Cut(f.Tag.Get(tagKey), ",")
		if alias == "-" {
			continue
		}

		result = append(result, fieldInfo{
			field:    f,
			alias:    alias,
			readonly: hasOption(opts, "readonly"),
		})
	}

	return result
}

func hasOption(opts, want string) bool {
	for opt := range strings.SplitSeq(opts, ",") {
		if strings.TrimSpace(opt) == want {
			return true
		}
	}

	return false
}
