package options

// CategoryEnum selects lenient conversions on top of the strict invariant
// parsing applied to every fixture cell.
type CategoryEnum int

const (
	CategoryTextualBool CategoryEnum = 1 << iota // string -> bool: yes, no, on, off, y, n besides strconv forms
	CategoryTimestamp                            // int(Unix seconds) -> time.Time
	CategoryNanoseconds                          // int(nanoseconds) -> time.Duration
	CategorySeconds                              // float(seconds) -> time.Duration

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // strict parsing only
)

// Has reports whether every category in want is enabled.
func (c CategoryEnum) Has(want CategoryEnum) bool {
	return c&want == want
}
