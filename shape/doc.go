// Package shape classifies the members of bound types and resolves them on
// live values.
//
// Every member falls into one Kind: a leaf (Scalar or Enum), a nested Object,
// or one of the three containers (Array, List, Map). The binder in package
// node dispatches on the Kind only.
//
// Member resolution goes through the Introspector contract. StructIntrospector
// is the reflection based default; hand-written adapters can implement the
// interface to expose computed or renamed members.
package shape
