// Package node writes raw fixture cells into object graphs and reads them back
// using fieldpath paths.
//
// Binder.Set walks a path from a root struct, creating nested objects,
// collection elements and map entries on the way, and stores the converted
// cell in the addressed leaf. Members the introspector does not know, or
// reports as read only, are skipped without error so fixtures keep working
// while the bound types evolve.
//
// Container policy:
//
//   - Lists ([]T) and arrays ([N]T) of leaves append on every write; the index
//     written in the path is ignored.
//   - Lists and arrays of objects read the index: an existing element is reused,
//     otherwise exactly one default element is appended whatever the index.
//     The length of an array is its prefix of non-zero slots, so a write
//     that would leave a zero slot in that prefix fails.
//   - Maps of leaves add one entry per write and reject a key that is already
//     present with ErrDuplicateKey.
//   - Maps of objects reuse the entry stored under the key or insert a default.
//
// Binder.Get walks the same paths without creating anything.
//
// A Binder holds no per-call state and may be shared between goroutines, as
// long as each target is bound by one goroutine at a time.
package node
