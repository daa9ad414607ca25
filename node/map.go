package node

import (
	"fmt"
	"reflect"

	"table-binder/shape"
)

func (b *Binder) setMap(req Request, i int, m shape.Member) error {
	p := req.Path
	seg := p.Segments[i]

	if !seg.HasKey {
		return mismatch(p, i, "map member %s needs a key", m.Name)
	}

	key, err := b.coercer.Coerce(seg.Key, m.Shape.Key)
	if err != nil {
		return pathError(p, i, fmt.Errorf("map key: %w", err))
	}

	if m.Value.IsNil() {
		m.Value.Set(shape.New(m.Shape.Type))
	}

	entries := m.Value

	if m.Shape.ElemIsLeaf() {
		if !p.IsLast(i) {
			return mismatch(p, i, "values of %s are leaves and have no members", m.Name)
		}

		if entries.MapIndex(key).IsValid() {
			return pathError(p, i, fmt.Errorf("%w %q in %s", ErrDuplicateKey, seg.Key, m.Name))
		}

		v, err := b.coercer.Coerce(req.Raw, m.Shape.Elem)
		if err != nil {
			return pathError(p, i, err)
		}

		entries.SetMapIndex(key, v)

		return nil
	}

	if !m.Shape.ElemIsObject() {
		return mismatch(p, i, "values of %s (%s) are neither leaves nor objects", m.Name, m.Shape.Elem)
	}

	// map values are not addressable: bind a copy and store it back
	holder := reflect.New(m.Shape.Elem).Elem()
	if existing := entries.MapIndex(key); existing.IsValid() {
		holder.Set(existing)
	} else {
		holder.Set(shape.New(m.Shape.Elem))
	}

	if err := b.descend(req, i, holder); err != nil {
		return err
	}

	entries.SetMapIndex(key, holder)

	return nil
}
