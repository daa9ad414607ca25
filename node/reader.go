package node

import (
	"fmt"
	"reflect"

	"table-binder/fieldpath"
	"table-binder/shape"
	"table-binder/utils"
)

// Get reads p with a default Binder.
func Get(p fieldpath.Path, target any) (any, error) {
	return New().Get(p, target)
}

// GetAs reads p and asserts the result to T.
func GetAs[T any](b *Binder, p fieldpath.Path, target any) (T, error) {
	var zero T

	v, err := b.Get(p, target)
	if err != nil {
		return zero, err
	}

	if v == nil {
		return zero, nil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("path %q holds %T, not %T", p.Raw, v, zero)
	}

	return typed, nil
}

// Get returns the value stored at p inside target, a struct or a pointer to
// one. Nothing is created on the way; missing members, elements and entries
// fail with ErrLookup.
func (b *Binder) Get(p fieldpath.Path, target any) (any, error) {
	root := reflect.ValueOf(target)
	for root.Kind() == reflect.Pointer && !root.IsNil() {
		root = root.Elem()
	}

	if root.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w, got %T", ErrInvalidTarget, target)
	}

	if p.Len() == 0 {
		return nil, fmt.Errorf("%w: empty path", fieldpath.ErrInvalidPath)
	}

	v, err := b.get(p, 0, root)
	if err != nil {
		return nil, err
	}

	if !v.CanInterface() {
		return nil, mismatch(p, p.Len()-1, "value of type %s is not exported", v.Type())
	}

	return v.Interface(), nil
}

func (b *Binder) get(p fieldpath.Path, i int, obj reflect.Value) (reflect.Value, error) {
	seg := p.Segments[i]

	m, ok := b.introspector.Member(obj, seg.Name)
	if !ok {
		return reflect.Value{}, notFound(p, i, "no member %s on %s", seg.Name, obj.Type())
	}

	v := m.Value
	if seg.HasKey && !m.Shape.Kind.IsLeaf() {
		var err error

		v, err = b.element(p, i, m)
		if err != nil {
			return reflect.Value{}, err
		}
	}

	if p.IsLast(i) {
		return v, nil
	}

	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, notFound(p, i, "%s is nil", seg)
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, mismatch(p, i, "%s of type %s has no members", seg, v.Type())
	}

	return b.get(p, i+1, v)
}

// element resolves the keyed child of a collection member.
func (b *Binder) element(p fieldpath.Path, i int, m shape.Member) (reflect.Value, error) {
	seg := p.Segments[i]

	switch m.Shape.Kind {
	case shape.KindList, shape.KindArray:
		idx, err := parseIndex(p, i)
		if err != nil {
			return reflect.Value{}, err
		}

		if !utils.IsIndex(idx, m.Value.Len()) {
			return reflect.Value{}, notFound(p, i, "index %d out of range, %s has %d elements", idx, m.Name, m.Value.Len())
		}

		return m.Value.Index(idx), nil

	case shape.KindMap:
		key, err := b.coercer.Coerce(seg.Key, m.Shape.Key)
		if err != nil {
			return reflect.Value{}, pathError(p, i, fmt.Errorf("map key: %w", err))
		}

		v := m.Value.MapIndex(key)
		if !v.IsValid() {
			return reflect.Value{}, notFound(p, i, "key %q not in %s", seg.Key, m.Name)
		}

		return v, nil

	default:
		return reflect.Value{}, mismatch(p, i, "member %s of kind %s cannot be indexed", m.Name, m.Shape.Kind)
	}
}
