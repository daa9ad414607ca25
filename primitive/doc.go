// Package primitive classifies leaf types and converts raw fixture cells into
// them.
//
// Leaves are the Go basic kinds (and named types over them), time.Time,
// time.Duration, uuid.UUID, types implementing Enum and types implementing
// encoding.TextUnmarshaler. A pointer to a leaf is an optional leaf: the empty
// cell leaves it nil.
//
// Parsing is culture invariant: strconv rules for numbers and booleans, a fixed
// list of ISO and US date layouts for time.Time (offsets are normalised to UTC).
// UUID cells shorter than 32 hex digits are right padded with '0', so "1234"
// reads as 12340000-0000-0000-0000-000000000000.
package primitive
