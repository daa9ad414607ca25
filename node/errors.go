package node

import (
	"errors"
	"fmt"

	"table-binder/fieldpath"
)

var (
	ErrInvalidTarget      = errors.New("target must be a non-nil pointer to a struct")
	ErrStructuralMismatch = errors.New("path does not match the member shape")
	ErrDuplicateKey       = errors.New("duplicate map key")
	ErrLookup             = errors.New("value not found")
)

// PathError locates a failure inside a path.
type PathError struct {
	Path    fieldpath.Path
	Index   int
	Segment fieldpath.Segment
	Err     error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q, segment %d (%s): %v", e.Path.Raw, e.Index, e.Segment, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func pathError(p fieldpath.Path, i int, err error) error {
	return &PathError{Path: p, Index: i, Segment: p.Segments[i], Err: err}
}

func mismatch(p fieldpath.Path, i int, format string, args ...any) error {
	return pathError(p, i, fmt.Errorf("%w: "+format, append([]any{ErrStructuralMismatch}, args...)...))
}

func notFound(p fieldpath.Path, i int, format string, args ...any) error {
	return pathError(p, i, fmt.Errorf("%w: "+format, append([]any{ErrLookup}, args...)...))
}
