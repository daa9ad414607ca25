package fieldpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected []Segment
	}{
		{
			name:     "simple field",
			path:     "Name",
			expected: []Segment{{Name: "Name"}},
		},
		{
			name:     "nested field",
			path:     "Address.City",
			expected: []Segment{{Name: "Address"}, {Name: "City"}},
		},
		{
			name: "indexed element",
			path: "Orders[0].Lines[12].Sku",
			expected: []Segment{
				{Name: "Orders", Key: "0", HasKey: true},
				{Name: "Lines", Key: "12", HasKey: true},
				{Name: "Sku"},
			},
		},
		{
			name:     "quoted map key",
			path:     `Labels["env"]`,
			expected: []Segment{{Name: "Labels", Key: "env", HasKey: true}},
		},
		{
			name:     "empty key is still keyed",
			path:     "Tags[]",
			expected: []Segment{{Name: "Tags", Key: "", HasKey: true}},
		},
		{
			name:     "only first bracket pair is read",
			path:     "Grid[1][2]",
			expected: []Segment{{Name: "Grid", Key: "1", HasKey: true}},
		},
		{
			name:     "unterminated bracket takes the rest",
			path:     "Tags[abc",
			expected: []Segment{{Name: "Tags", Key: "abc", HasKey: true}},
		},
		{
			name:     "key with spaces",
			path:     `Labels["team name"]`,
			expected: []Segment{{Name: "Labels", Key: "team name", HasKey: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.Segments)
			assert.Equal(t, tt.path, p.String())
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, path := range []string{"", ".", "A..B", "A.", "[0]", "A.[1]"} {
		t.Run(path, func(t *testing.T) {
			_, err := Parse(path)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPath)
		})
	}
}

func TestSegmentType(t *testing.T) {
	p := MustParse("Orders[3].Id")

	assert.Equal(t, KeyedOrIndexer, p.Segments[0].Type())
	assert.Equal(t, Standard, p.Segments[1].Type())
	assert.Equal(t, "KeyedOrIndexer", p.Segments[0].Type().String())
	assert.Equal(t, "Orders[3]", p.Segments[0].String())
	assert.False(t, p.IsLast(0))
	assert.True(t, p.IsLast(1))
	assert.Equal(t, 2, p.Len())
}

func TestParseAll(t *testing.T) {
	paths, err := ParseAll([]string{"Name", "Address.City", "Tags[0]"})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, "City", paths[1].Segments[1].Name)

	_, err = ParseAll([]string{"Name", "Bad..Path"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "column 1")
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("") })
}
