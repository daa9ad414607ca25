// Package fieldpath parses the header paths used by fixture tables.
//
// A path is a dot separated list of segments. Each segment names a member and
// may carry a key in brackets that addresses a collection element:
//
//	Name
//	Address.City
//	Orders[0].Lines[1].Sku
//	Labels["env"]
//
// Double quotes inside a key are removed, so Labels["env"] and Labels[env]
// address the same entry. Only the first bracket pair of a segment is read.
package fieldpath
