package node

import (
	"reflect"
	"strconv"
	"strings"

	"table-binder/fieldpath"
	"table-binder/shape"
	"table-binder/utils"
)

func (b *Binder) setList(req Request, i int, m shape.Member) error {
	list := m.Value

	if m.Shape.ElemIsLeaf() {
		v, err := b.leafElement(req, i, m)
		if err != nil {
			return err
		}

		list.Set(reflect.Append(list, v))

		return nil
	}

	idx, err := b.objectIndex(req, i, m)
	if err != nil {
		return err
	}

	if !utils.IsIndex(idx, list.Len()) {
		list.Set(reflect.Append(list, shape.New(m.Shape.Elem)))
		idx = list.Len() - 1
	}

	return b.descend(req, i, list.Index(idx))
}

// setArray binds into a fixed size array whose length is its leading run of
// non-zero slots. Writes that would leave a zero slot inside that run fail, so
// the run always holds every element bound so far.
func (b *Binder) setArray(req Request, i int, m shape.Member) error {
	p := req.Path
	arr := m.Value
	filled := filledLen(arr)

	if m.Shape.ElemIsLeaf() {
		v, err := b.leafElement(req, i, m)
		if err != nil {
			return err
		}

		if filled == arr.Len() {
			return mismatch(p, i, "array %s is full (%d slots)", m.Name, arr.Len())
		}

		if v.IsZero() {
			return mismatch(p, i, "array %s cannot store the zero value %q, use a list", m.Name, req.Raw)
		}

		arr.Index(filled).Set(v)

		return nil
	}

	idx, err := b.objectIndex(req, i, m)
	if err != nil {
		return err
	}

	var slot reflect.Value

	switch {
	case idx < filled:
		slot = arr.Index(idx)
	case filled == arr.Len():
		return mismatch(p, i, "array %s is full (%d slots)", m.Name, arr.Len())
	default:
		slot = arr.Index(filled)
		slot.Set(shape.New(m.Shape.Elem))
	}

	if err := b.descend(req, i, slot); err != nil {
		return err
	}

	if slot.IsZero() {
		return mismatch(p, i, "element of array %s is left empty by %q, use a list", m.Name, req.Raw)
	}

	return nil
}

// leafElement converts the raw cell for a leaf element container. The path
// must end here; any index in the segment is ignored.
func (b *Binder) leafElement(req Request, i int, m shape.Member) (reflect.Value, error) {
	if !req.Path.IsLast(i) {
		return reflect.Value{}, mismatch(req.Path, i, "elements of %s are leaves and have no members", m.Name)
	}

	v, err := b.coercer.Coerce(req.Raw, m.Shape.Elem)
	if err != nil {
		return reflect.Value{}, pathError(req.Path, i, err)
	}

	return v, nil
}

// objectIndex validates an object element container segment and returns the
// zero based index it carries.
func (b *Binder) objectIndex(req Request, i int, m shape.Member) (int, error) {
	p := req.Path

	if !m.Shape.ElemIsObject() {
		return 0, mismatch(p, i, "elements of %s (%s) are neither leaves nor objects", m.Name, m.Shape.Elem)
	}

	return parseIndex(p, i)
}

func parseIndex(p fieldpath.Path, i int) (int, error) {
	seg := p.Segments[i]
	if !seg.HasKey {
		return 0, mismatch(p, i, "collection member %s needs an index", seg.Name)
	}

	idx, err := strconv.Atoi(strings.TrimSpace(seg.Key))
	if err != nil || idx < 0 {
		return 0, mismatch(p, i, "index %q of %s is not a non-negative integer", seg.Key, seg.Name)
	}

	return idx, nil
}

// filledLen returns the length of the leading run of non-zero slots.
func filledLen(arr reflect.Value) int {
	for i := range arr.Len() {
		if arr.Index(i).IsZero() {
			return i
		}
	}

	return arr.Len()
}
