package node_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"table-binder/fieldpath"
	"table-binder/node"
)

func TestGet_RoundTrip(t *testing.T) {
	cells := []struct {
		path     string
		raw      string
		expected any
	}{
		{"Name", "Ann", "Ann"},
		{"Address.City", "Metropolis", "Metropolis"},
		{"Billing.Zip", "10115", 10115},
		{"Tags[0]", "red", "red"},
		{"Tags[1]", "blue", "blue"},
		{"Scores[0]", "7", 7},
		{"Lines[0].Sku", "A-1", "A-1"},
		{"Lines[0].Qty", "2", 2},
		{"Items[0].Qty", "5", 5},
		{"Slots[0].Sku", "S", "S"},
		{`Labels["env"]`, "prod", "prod"},
		{"Limits[3]", "0.5", 0.5},
		{"Groups[g].Sku", "G", "G"},
		{"Refs[r].Qty", "8", 8},
		{"Status", "closed", StatusClosed},
		{"ID", "abcd", uuid.MustParse("abcd0000-0000-0000-0000-000000000000")},
	}

	b := node.New()

	var c Customer
	for _, cell := range cells {
		require.NoError(t, b.Set(node.Request{Path: fieldpath.MustParse(cell.path), Raw: cell.raw}, &c), cell.path)
	}

	for _, cell := range cells {
		t.Run(cell.path, func(t *testing.T) {
			got, err := b.Get(fieldpath.MustParse(cell.path), &c)
			require.NoError(t, err)

			if ptr, ok := got.(*int); ok {
				require.NotNil(t, ptr)
				got = *ptr
			}

			assert.Equal(t, cell.expected, got)
		})
	}
}

func TestGet_ValueTarget(t *testing.T) {
	c := Customer{Name: "Ann"}

	got, err := node.Get(fieldpath.MustParse("Name"), c)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)
}

func TestGet_Containers(t *testing.T) {
	c := Customer{Tags: []string{"a"}, Labels: map[string]string{"k": "v"}}

	got, err := node.Get(fieldpath.MustParse("Tags"), &c)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)

	got, err = node.Get(fieldpath.MustParse("Labels"), &c)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"k": "v"}, got)

	got, err = node.Get(fieldpath.MustParse("Billing"), &c)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGet_Lookup(t *testing.T) {
	c := Customer{
		Tags:   []string{"a"},
		Labels: map[string]string{"k": "v"},
		Items:  []*Line{nil},
	}

	paths := []string{
		"Nickname",
		"Tags[1]",
		"Labels[missing]",
		"Groups[any].Sku",
		"Billing.City",
		"Items[0].Sku",
		"Lines[0].Sku",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			_, err := node.Get(fieldpath.MustParse(path), &c)
			require.Error(t, err)
			assert.ErrorIs(t, err, node.ErrLookup)
		})
	}
}

func TestGet_PromotedThroughNilEmbeddedPointer(t *testing.T) {
	var s Shipment

	_, err := node.Get(fieldpath.MustParse("Ref"), &s)
	require.ErrorIs(t, err, node.ErrLookup)
	assert.Nil(t, s.Audit)

	s.Audit = &Audit{Ref: "r"}

	got, err := node.Get(fieldpath.MustParse("Ref"), &s)
	require.NoError(t, err)
	assert.Equal(t, "r", got)
}

func TestGet_Mismatch(t *testing.T) {
	var c Customer

	for _, path := range []string{"Name.First", "Address[0]", "Tags[x]"} {
		t.Run(path, func(t *testing.T) {
			_, err := node.Get(fieldpath.MustParse(path), &c)
			assert.ErrorIs(t, err, node.ErrStructuralMismatch)
		})
	}
}

func TestGet_DoesNotCreate(t *testing.T) {
	var c Customer

	_, err := node.Get(fieldpath.MustParse("Billing.City"), &c)
	require.Error(t, err)
	assert.Nil(t, c.Billing)

	_, err = node.Get(fieldpath.MustParse("Groups[a].Sku"), &c)
	require.Error(t, err)
	assert.Nil(t, c.Groups)
}

func TestGetAs(t *testing.T) {
	c := Customer{Status: StatusActive, Address: Address{City: "Gotham"}}
	b := node.New()

	status, err := node.GetAs[Status](b, fieldpath.MustParse("Status"), &c)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, status)

	_, err = node.GetAs[int](b, fieldpath.MustParse("Address.City"), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holds string")

	zip, err := node.GetAs[*int](b, fieldpath.MustParse("Address.Zip"), &c)
	require.NoError(t, err)
	assert.Nil(t, zip)
}

func TestGet_InvalidTarget(t *testing.T) {
	_, err := node.Get(fieldpath.MustParse("Name"), 42)
	assert.ErrorIs(t, err, node.ErrInvalidTarget)

	var c *Customer
	_, err = node.Get(fieldpath.MustParse("Name"), c)
	assert.ErrorIs(t, err, node.ErrInvalidTarget)
}

func Example() {
	type Pet struct {
		Name string
		Tags []string
	}

	type Owner struct {
		Name string
		Pets []Pet
	}

	headers := []string{"Name", "Pets[0].Name", "Pets[0].Tags[0]", "Pets[1].Name"}
	row := []string{"Ann", "Rex", "good boy", "Tom"}

	b := node.New()

	var owner Owner
	for i, h := range headers {
		req := node.Request{Path: fieldpath.MustParse(h), Raw: row[i]}
		if err := b.Set(req, &owner); err != nil {
			fmt.Println(err)
			return
		}
	}

	fmt.Printf("%+v\n", owner)

	name, _ := b.Get(fieldpath.MustParse("Pets[1].Name"), &owner)
	fmt.Println(name)
	// Output:
	// {Name:Ann Pets:[{Name:Rex Tags:[good boy]} {Name:Tom Tags:[]}]}
	// Tom
}
