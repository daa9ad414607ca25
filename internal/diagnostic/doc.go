// Package diagnostic collects structured findings about fixture tables:
// headers that do not parse, columns that bind to nothing, read-only columns
// and paths whose shape disagrees with the bound type.
//
// Each finding carries a stable code and, where possible, suggestions such as
// the member names closest to a misspelt column.
package diagnostic
