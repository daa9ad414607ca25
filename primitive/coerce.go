package primitive

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"table-binder/options"
)

var (
	ErrUnconvertible     = errors.New("value is not convertible")
	ErrUnknownEnumMember = errors.New("unknown enum member")
	ErrNotALeaf          = errors.New("type is not a leaf type")
)

// CoercionError reports a raw cell that could not be converted.
type CoercionError struct {
	Raw  string
	Type reflect.Type
	Err  error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Raw, e.Type, e.Err)
}

func (e *CoercionError) Unwrap() error {
	return e.Err
}

// uuidHexLen is the number of hex digits in a UUID without separators.
const uuidHexLen = 32

// Datetime layouts accepted for time.Time, tried in order. Values without an
// offset are read as UTC.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006",
}

// Coercer converts raw cells into leaf values. The zero value parses strictly.
type Coercer struct {
	Allowed options.CategoryEnum
}

// Coerce converts raw using strict parsing.
func Coerce(raw string, rtype reflect.Type) (reflect.Value, error) {
	return Coercer{}.Coerce(raw, rtype)
}

// Coerce converts raw into a value of exactly rtype. A pointer to a leaf type
// is optional: an empty raw yields a nil pointer.
func (c Coercer) Coerce(raw string, rtype reflect.Type) (reflect.Value, error) {
	if !IsOptional(rtype) {
		return c.coerceValue(raw, rtype)
	}

	if raw == "" {
		return reflect.Zero(rtype), nil
	}

	v, err := c.coerceValue(raw, rtype.Elem())
	if err != nil {
		return reflect.Value{}, err
	}

	ptr := reflect.New(rtype.Elem())
	ptr.Elem().Set(v)

	return ptr, nil
}

func (c Coercer) coerceValue(raw string, rtype reflect.Type) (reflect.Value, error) {
	kind := FromReflectType(rtype)

	v, err := c.parse(raw, rtype, kind)
	if err != nil {
		return reflect.Value{}, &CoercionError{Raw: raw, Type: rtype, Err: err}
	}

	if v.Type() != rtype {
		if !v.Type().ConvertibleTo(rtype) {
			return reflect.Value{}, &CoercionError{Raw: raw, Type: rtype, Err: ErrUnconvertible}
		}

		v = v.Convert(rtype)
	}

	return v, nil
}

func (c Coercer) parse(raw string, rtype reflect.Type, kind KindEnum) (reflect.Value, error) {
	switch {
	case kind == 0:
		return reflect.Value{}, ErrNotALeaf
	case kind == KindString:
		return reflect.ValueOf(raw), nil
	case kind == KindEnumMember:
		return parseEnum(raw, rtype)
	case kind == KindUUID:
		return parseUUID(raw)
	case kind == KindText:
		return parseText(raw, rtype)
	}

	trimmed := strings.TrimSpace(raw)

	switch {
	case kind.IsNumber():
		return parseNumber(trimmed, kind)
	case kind == KindBool:
		return c.parseBool(trimmed)
	case kind == KindTime:
		return c.parseTime(trimmed)
	case kind == KindDuration:
		return c.parseDuration(trimmed)
	default:
		return reflect.Value{}, ErrNotALeaf
	}
}

// parseNumber parses s with the bit size of kind. The result is an int64,
// uint64 or float64 and is converted to the target type by the caller.
func parseNumber(s string, kind KindEnum) (reflect.Value, error) {
	var (
		v   any
		err error
	)

	switch {
	case kind.IsSigned():
		v, err = strconv.ParseInt(s, 10, kind.Bits())
	case kind.IsUnsigned():
		v, err = strconv.ParseUint(s, 10, kind.Bits())
	default:
		v, err = strconv.ParseFloat(s, kind.Bits())
	}

	if err != nil {
		return reflect.Value{}, unconvertible(err)
	}

	return reflect.ValueOf(v), nil
}

func (c Coercer) parseBool(s string) (reflect.Value, error) {
	b, err := strconv.ParseBool(s)
	if err == nil {
		return reflect.ValueOf(b), nil
	}

	if c.Allowed.Has(options.CategoryTextualBool) {
		switch strings.ToLower(s) {
		case "yes", "y", "on":
			return reflect.ValueOf(true), nil
		case "no", "n", "off":
			return reflect.ValueOf(false), nil
		}
	}

	return reflect.Value{}, unconvertible(err)
}

func (c Coercer) parseTime(s string) (reflect.Value, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return reflect.ValueOf(t.UTC()), nil
		}
	}

	if c.Allowed.Has(options.CategoryTimestamp) {
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return reflect.ValueOf(time.Unix(n, 0).UTC()), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("%w: unrecognised date-time layout", ErrUnconvertible)
}

func (c Coercer) parseDuration(s string) (reflect.Value, error) {
	d, err := time.ParseDuration(s)
	if err == nil {
		return reflect.ValueOf(d), nil
	}

	if c.Allowed.Has(options.CategoryNanoseconds) {
		if n, perr := strconv.ParseInt(s, 10, 64); perr == nil {
			return reflect.ValueOf(time.Duration(n)), nil
		}
	}

	if c.Allowed.Has(options.CategorySeconds) {
		if f, perr := strconv.ParseFloat(s, 64); perr == nil {
			return reflect.ValueOf(time.Duration(f * float64(time.Second))), nil
		}
	}

	return reflect.Value{}, unconvertible(err)
}

func parseUUID(s string) (reflect.Value, error) {
	if len(s) < uuidHexLen {
		s += strings.Repeat("0", uuidHexLen-len(s))
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return reflect.Value{}, unconvertible(err)
	}

	return reflect.ValueOf(id), nil
}

func parseText(s string, rtype reflect.Type) (reflect.Value, error) {
	ptr := reflect.New(rtype)

	err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s))
	if err != nil {
		return reflect.Value{}, unconvertible(err)
	}

	return ptr.Elem(), nil
}

func parseEnum(s string, rtype reflect.Type) (reflect.Value, error) {
	if s == "" {
		return reflect.Value{}, fmt.Errorf("%w: empty value", ErrUnknownEnumMember)
	}

	members := reflect.Zero(rtype).Interface().(Enum).EnumMembers()

	for _, m := range members {
		if strings.EqualFold(m.String(), s) {
			return reflect.ValueOf(m), nil
		}
	}

	// numeric form of an integer enum, accepted only for defined members
	if n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64); err == nil {
		for _, m := range members {
			mv := reflect.ValueOf(m)
			if mv.CanInt() && mv.Int() == n {
				return mv, nil
			}
		}
	}

	return reflect.Value{}, fmt.Errorf("%w: %q", ErrUnknownEnumMember, s)
}

func unconvertible(err error) error {
	return fmt.Errorf("%w: %w", ErrUnconvertible, err)
}
