package table

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"table-binder/fieldpath"
	"table-binder/internal/common"
	"table-binder/internal/diagnostic"
	"table-binder/internal/match"
	"table-binder/node"
	"table-binder/shape"
)

// maxSuggestions bounds the "did you mean" list of unknown columns.
const maxSuggestions = 3

// Check reports, without binding any row, the columns of tbl that T cannot
// take: structural mismatches are errors, unknown and read-only members are
// warnings. Lint findings are included.
func Check[T any](tbl Table, opts ...Option[T]) diagnostic.Diagnostics {
	cfg := newConfig(opts)
	rtype := reflect.TypeFor[T]()

	c := checker{binder: cfg.binder, typeName: common.TypeName(rtype)}
	paths := c.lint(tbl)

	for _, p := range paths {
		c.path(p, rtype)
	}

	return c.diags
}

// Lint reports the findings that need no bound type: malformed headers,
// repeated headers and rows whose width differs from the header.
func Lint(tbl Table) diagnostic.Diagnostics {
	var c checker
	c.lint(tbl)

	return c.diags
}

type checker struct {
	binder   *node.Binder
	typeName string
	diags    diagnostic.Diagnostics
}

// lint records table level findings and returns the well formed paths.
func (c *checker) lint(tbl Table) []fieldpath.Path {
	var paths []fieldpath.Path

	seen := make(map[string]int, len(tbl.Header))

	for i, header := range tbl.Header {
		p, err := fieldpath.Parse(header)
		if err != nil {
			c.diags.AddError(diagnostic.CodeInvalidPath, err.Error(), c.typeName, header)
			continue
		}

		if first, dup := seen[header]; dup {
			c.diags.AddInfo(diagnostic.CodeRepeatedColumn,
				fmt.Sprintf("column %d repeats column %d", i, first), c.typeName, header)
		} else {
			seen[header] = i
		}

		paths = append(paths, p)
	}

	for i, row := range tbl.Rows {
		if len(row) != len(tbl.Header) {
			c.diags.AddError(diagnostic.CodeRowWidth,
				fmt.Sprintf("row %d has %d cells for %d columns", i, len(row), len(tbl.Header)),
				c.typeName, "")
		}
	}

	return paths
}

func (c *checker) path(p fieldpath.Path, root reflect.Type) {
	typ := root

	for i, seg := range p.Segments {
		if typ.Kind() == reflect.Pointer {
			typ = typ.Elem()
		}

		if typ.Kind() != reflect.Struct {
			c.mismatch(p, "%s is not an object", typ)
			return
		}

		m, ok := c.resolve(reflect.New(typ).Elem(), seg.Name)
		if !ok {
			c.unknown(p, seg, typ)
			return
		}

		if !m.Writable {
			c.diags.AddWarning(diagnostic.CodeReadOnlyMember,
				fmt.Sprintf("member %s of %s is read only, the column is skipped", m.Name, typ),
				c.typeName, p.Raw)

			return
		}

		next, ok := c.member(p, i, m)
		if !ok || next == nil {
			return
		}

		typ = next
	}
}

// member validates segment i against m. It returns the object type the next
// segment resolves in, or nil when the path ends at m.
func (c *checker) member(p fieldpath.Path, i int, m shape.Member) (reflect.Type, bool) {
	seg := p.Segments[i]
	last := p.IsLast(i)

	switch m.Shape.Kind {
	case shape.KindScalar, shape.KindEnum:
		if !last {
			return nil, c.mismatch(p, "leaf member %s has no members", m.Name)
		}

		return nil, true

	case shape.KindObject:
		if seg.HasKey {
			return nil, c.mismatch(p, "object member %s cannot be indexed", m.Name)
		}

		if last {
			return nil, c.mismatch(p, "%s is an object, the path must address one of its members", m.Name)
		}

		return m.Shape.Type, true

	case shape.KindList, shape.KindArray:
		if m.Shape.ElemIsLeaf() {
			if !last {
				return nil, c.mismatch(p, "elements of %s are leaves and have no members", m.Name)
			}

			return nil, true
		}

		if !m.Shape.ElemIsObject() {
			return nil, c.mismatch(p, "elements of %s (%s) are neither leaves nor objects", m.Name, m.Shape.Elem)
		}

		if !seg.HasKey {
			return nil, c.mismatch(p, "collection member %s needs an index", m.Name)
		}

		if idx, err := strconv.Atoi(strings.TrimSpace(seg.Key)); err != nil || idx < 0 {
			return nil, c.mismatch(p, "index %q of %s is not a non-negative integer", seg.Key, m.Name)
		}

		if last {
			return nil, c.mismatch(p, "elements of %s are objects, the path must address one of their members", m.Name)
		}

		return m.Shape.Elem, true

	case shape.KindMap:
		if !seg.HasKey {
			return nil, c.mismatch(p, "map member %s needs a key", m.Name)
		}

		if _, err := c.binder.Coercer().Coerce(seg.Key, m.Shape.Key); err != nil {
			return nil, c.mismatch(p, "map key of %s: %v", m.Name, err)
		}

		if m.Shape.ElemIsLeaf() {
			if !last {
				return nil, c.mismatch(p, "values of %s are leaves and have no members", m.Name)
			}

			return nil, true
		}

		if !m.Shape.ElemIsObject() {
			return nil, c.mismatch(p, "values of %s (%s) are neither leaves nor objects", m.Name, m.Shape.Elem)
		}

		if last {
			return nil, c.mismatch(p, "values of %s are objects, the path must address one of their members", m.Name)
		}

		return m.Shape.Elem, true

	default:
		return nil, c.mismatch(p, "member %s of type %s is not bindable", m.Name, m.Shape.Type)
	}
}

// resolve looks up name on a scratch value the way the binder does, so fields
// promoted through nil embedded pointers are found.
func (c *checker) resolve(obj reflect.Value, name string) (shape.Member, bool) {
	if v, ok := c.binder.Introspector().(shape.Vivifier); ok {
		return v.VivifyMember(obj, name)
	}

	return c.binder.Introspector().Member(obj, name)
}

func (c *checker) mismatch(p fieldpath.Path, format string, args ...any) bool {
	c.diags.AddError(diagnostic.CodeStructuralMismatch, fmt.Sprintf(format, args...), c.typeName, p.Raw)
	return false
}

func (c *checker) unknown(p fieldpath.Path, seg fieldpath.Segment, typ reflect.Type) {
	var suggestions []string
	if namer, ok := c.binder.Introspector().(shape.Namer); ok {
		suggestions = match.Suggest(seg.Name, namer.Names(typ), maxSuggestions)
	}

	c.diags.AddWarning(diagnostic.CodeUnknownMember,
		fmt.Sprintf("%s has no member %q, the column is skipped", typ, seg.Name),
		c.typeName, p.Raw, suggestions...)
}
