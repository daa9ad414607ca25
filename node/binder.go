package node

import (
	"fmt"
	"log/slog"
	"reflect"

	"table-binder/fieldpath"
	"table-binder/options"
	"table-binder/primitive"
	"table-binder/shape"
)

// Request is a single cell: a parsed header and the raw value under it.
type Request struct {
	Path fieldpath.Path
	Raw  string
}

// Binder writes and reads paths on object graphs.
type Binder struct {
	introspector shape.Introspector
	coercer      primitive.Coercer
	logger       *slog.Logger
}

type Option func(*Binder)

// WithIntrospector replaces the reflection based member resolution.
func WithIntrospector(i shape.Introspector) Option {
	return func(b *Binder) {
		b.introspector = i
	}
}

// WithConversions enables lenient conversion categories.
func WithConversions(allowed options.CategoryEnum) Option {
	return func(b *Binder) {
		b.coercer.Allowed = allowed
	}
}

// WithLogger sets the logger receiving debug records for skipped members.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binder) {
		b.logger = logger
	}
}

func New(opts ...Option) *Binder {
	b := &Binder{
		introspector: shape.StructIntrospector{},
		logger:       slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Introspector returns the member resolver used by b.
func (b *Binder) Introspector() shape.Introspector {
	return b.introspector
}

// Coercer returns the cell converter used by b.
func (b *Binder) Coercer() primitive.Coercer {
	return b.coercer
}

// Set binds one request with a default Binder.
func Set(req Request, target any) error {
	return New().Set(req, target)
}

// Set stores req.Raw at req.Path inside target, which must be a non-nil
// pointer to a struct.
func (b *Binder) Set(req Request, target any) error {
	root, err := settableRoot(target)
	if err != nil {
		return err
	}

	if req.Path.Len() == 0 {
		return fmt.Errorf("%w: empty path", fieldpath.ErrInvalidPath)
	}

	return b.set(req, 0, root)
}

// SetAll binds requests in order and stops at the first failure.
func (b *Binder) SetAll(reqs []Request, target any) error {
	for _, req := range reqs {
		if err := b.Set(req, target); err != nil {
			return err
		}
	}

	return nil
}

func (b *Binder) set(req Request, i int, obj reflect.Value) error {
	p := req.Path
	seg := p.Segments[i]

	m, ok := b.writableMember(obj, seg.Name)
	if !ok {
		b.logger.Debug("skipping unknown member", "path", p.Raw, "member", seg.Name, "type", obj.Type())
		return nil
	}

	if !m.Writable {
		b.logger.Debug("skipping read-only member", "path", p.Raw, "member", seg.Name, "type", obj.Type())
		return nil
	}

	switch m.Shape.Kind {
	case shape.KindScalar, shape.KindEnum:
		if !p.IsLast(i) {
			return mismatch(p, i, "leaf member %s has no members", m.Name)
		}

		v, err := b.coercer.Coerce(req.Raw, m.Shape.Type)
		if err != nil {
			return pathError(p, i, err)
		}

		m.Value.Set(v)

		return nil

	case shape.KindObject:
		if seg.HasKey {
			return mismatch(p, i, "object member %s cannot be indexed", m.Name)
		}

		return b.descend(req, i, m.Value)

	case shape.KindList:
		return b.setList(req, i, m)

	case shape.KindArray:
		return b.setArray(req, i, m)

	case shape.KindMap:
		return b.setMap(req, i, m)

	default:
		return mismatch(p, i, "member %s of type %s is not bindable", m.Name, m.Shape.Type)
	}
}

// writableMember resolves name for writing. Introspectors implementing
// shape.Vivifier create the nil embedded pointers the member is promoted
// through.
func (b *Binder) writableMember(obj reflect.Value, name string) (shape.Member, bool) {
	if v, ok := b.introspector.(shape.Vivifier); ok && obj.CanAddr() {
		return v.VivifyMember(obj, name)
	}

	return b.introspector.Member(obj, name)
}

// descend continues with the next segment inside v, a settable struct or
// pointer to struct. A nil pointer is replaced by a fresh instance.
func (b *Binder) descend(req Request, i int, v reflect.Value) error {
	if req.Path.IsLast(i) {
		return mismatch(req.Path, i, "%s is an object, the path must address one of its members", v.Type())
	}

	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(shape.New(v.Type()))
		}

		v = v.Elem()
	}

	return b.set(req, i+1, v)
}

func settableRoot(target any) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return reflect.Value{}, fmt.Errorf("%w, got %T", ErrInvalidTarget, target)
	}

	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w, got %T", ErrInvalidTarget, target)
	}

	return v, nil
}
