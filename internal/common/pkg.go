package common

import "reflect"

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// TypeName returns the printable name of t, or "<nil>" for a nil type.
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	return t.String()
}
