package fieldpath

import (
	"errors"
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=SegmentType -output=segmenttype_string.go

// SegmentType tells plain member access apart from keyed element access.
type SegmentType int

const (
	Standard SegmentType = iota
	KeyedOrIndexer
)

// ErrInvalidPath is wrapped by every error returned from Parse.
var ErrInvalidPath = errors.New("invalid path")

// Segment is one dot separated unit of a Path.
type Segment struct {
	Name   string
	Key    string
	HasKey bool
}

// Type reports whether the segment carries a key.
func (s Segment) Type() SegmentType {
	if s.HasKey {
		return KeyedOrIndexer
	}

	return Standard
}

func (s Segment) String() string {
	if !s.HasKey {
		return s.Name
	}

	return s.Name + "[" + s.Key + "]"
}

// Path is a parsed header. It is immutable and can be shared between rows.
type Path struct {
	Raw      string
	Segments []Segment
}

func (p Path) String() string {
	return p.Raw
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// IsLast reports whether i is the index of the final segment.
func (p Path) IsLast(i int) bool {
	return i == len(p.Segments)-1
}

// Parse splits raw into segments.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Path{}, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	var segments []Segment

	for part := range strings.SplitSeq(raw, ".") {
		seg := parseSegment(part)
		if seg.Name == "" {
			return Path{}, fmt.Errorf("%w %q: empty member name in segment %q", ErrInvalidPath, raw, part)
		}

		segments = append(segments, seg)
	}

	return Path{Raw: raw, Segments: segments}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(raw string) Path {
	p, err := Parse(raw)
	if err != nil {
		panic(err)
	}

	return p
}

// ParseAll parses a header row. The first malformed header aborts.
func ParseAll(headers []string) ([]Path, error) {
	result := make([]Path, 0, len(headers))

	for i, h := range headers {
		p, err := Parse(h)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}

		result = append(result, p)
	}

	return result, nil
}

func parseSegment(part string) Segment {
	open := strings.IndexByte(part, '[')
	if open < 0 {
		return Segment{Name: part}
	}

	key := part[open+1:]
	if end := strings.IndexByte(key, ']'); end >= 0 {
		key = key[:end]
	}

	return Segment{
		Name:   part[:open],
		Key:    strings.ReplaceAll(key, `"`, ""),
		HasKey: true,
	}
}
