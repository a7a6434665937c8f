package argv

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// decodeOutcome describes the result of decoding a raw token into a slot.
// Overflow is distinct from a plain decode failure so the error message can
// report the valid range of the destination type.
type decodeOutcome int

const (
	decodeOK decodeOutcome = iota
	decodeFailed
	decodeOverflow
)

// Value is the typed slot a binding decodes into. Concrete slots are built
// with the exported constructors (Int, Uint, Float, Bool, String, Enum,
// List); the resolver only ever talks to this interface, which keeps the
// phase protocol independent of the destination type.
type Value interface {
	// decode parses raw into the slot. A non-nil error is only returned by
	// codecs that assemble their own message (enumerations).
	decode(raw string) (decodeOutcome, error)
	// typeName names the destination type for decode error messages.
	typeName() string
	// valueRange renders the representable range for overflow messages,
	// or "" for non-numeric slots.
	valueRange() string
	// isContainer reports whether the slot accumulates multiple values.
	isContainer() bool
	// resetSlot clears a container before its first matched value.
	resetSlot()
	// runCheck applies the attached validator to the current slot value.
	runCheck() error
}

// SignedValue constrains the signed integer destinations Int accepts.
type SignedValue interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedValue constrains the unsigned integer destinations Uint accepts.
type UnsignedValue interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// FloatValue constrains the floating point destinations Float accepts.
type FloatValue interface {
	~float32 | ~float64
}

// Scalar is a single-valued slot bound to caller-owned storage.
type Scalar[T any] struct {
	target *T
	parse  func(raw string, out *T) (decodeOutcome, error)
	name   string
	bounds string
	check  func(T) error
}

// Check attaches a validator run after a value has been decoded into the slot.
func (s *Scalar[T]) Check(fn func(T) error) *Scalar[T] {
	s.check = fn
	return s
}

func (s *Scalar[T]) decode(raw string) (decodeOutcome, error) { return s.parse(raw, s.target) }

func (s *Scalar[T]) typeName() string { return s.name }

func (s *Scalar[T]) valueRange() string { return s.bounds }

func (s *Scalar[T]) isContainer() bool { return false }

func (s *Scalar[T]) resetSlot() {}

func (s *Scalar[T]) runCheck() error {
	if s.check == nil {
		return nil
	}
	return s.check(*s.target)
}

// Int creates a slot for any signed integer type. The whole token must be a
// base-10 integer; values outside the type's range decode as overflow.
func Int[T SignedValue](target *T) *Scalar[T] {
	bits := reflect.TypeOf(*target).Bits()
	maxVal := int64(uint64(1)<<(bits-1) - 1)
	return &Scalar[T]{
		target: target,
		name:   fmt.Sprintf("%T", *target),
		bounds: fmt.Sprintf("[%d,%d]", -maxVal-1, maxVal),
		parse: func(raw string, out *T) (decodeOutcome, error) {
			v, err := strconv.ParseInt(raw, 10, bits)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return decodeOverflow, nil
				}
				return decodeFailed, nil
			}
			*out = T(v)
			return decodeOK, nil
		},
	}
}

// Uint creates a slot for any unsigned integer type.
func Uint[T UnsignedValue](target *T) *Scalar[T] {
	bits := reflect.TypeOf(*target).Bits()
	maxVal := uint64(1)<<bits - 1
	return &Scalar[T]{
		target: target,
		name:   fmt.Sprintf("%T", *target),
		bounds: fmt.Sprintf("[0,%d]", maxVal),
		parse: func(raw string, out *T) (decodeOutcome, error) {
			v, err := strconv.ParseUint(raw, 10, bits)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return decodeOverflow, nil
				}
				return decodeFailed, nil
			}
			*out = T(v)
			return decodeOK, nil
		},
	}
}

// Float creates a slot for float32 or float64 destinations.
func Float[T FloatValue](target *T) *Scalar[T] {
	bits := reflect.TypeOf(*target).Bits()
	maxVal := math.MaxFloat64
	if bits == 32 {
		maxVal = math.MaxFloat32
	}
	maxStr := strconv.FormatFloat(maxVal, 'g', -1, bits)
	return &Scalar[T]{
		target: target,
		name:   fmt.Sprintf("%T", *target),
		bounds: "[-" + maxStr + "," + maxStr + "]",
		parse: func(raw string, out *T) (decodeOutcome, error) {
			v, err := strconv.ParseFloat(raw, bits)
			if err != nil {
				if errors.Is(err, strconv.ErrRange) {
					return decodeOverflow, nil
				}
				return decodeFailed, nil
			}
			*out = T(v)
			return decodeOK, nil
		},
	}
}

// Bool creates a slot accepting exactly "0"/"false" and "1"/"true".
func Bool(target *bool) *Scalar[bool] {
	return &Scalar[bool]{
		target: target,
		name:   "bool",
		parse: func(raw string, out *bool) (decodeOutcome, error) {
			switch raw {
			case "0", "false":
				*out = false
			case "1", "true":
				*out = true
			default:
				return decodeFailed, nil
			}
			return decodeOK, nil
		},
	}
}

// String creates a slot that stores the raw token unchanged.
func String(target *string) *Scalar[string] {
	return &Scalar[string]{
		target: target,
		name:   "string",
		parse: func(raw string, out *string) (decodeOutcome, error) {
			*out = raw
			return decodeOK, nil
		},
	}
}

// Enum creates a slot that maps the raw token through a name table.
// An unmatched key fails immediately, listing every legal key in the
// message: sorted by underlying value when comparable, lexicographically
// otherwise, so the output is deterministic.
func Enum[T comparable](target *T, names map[string]T) *Scalar[T] {
	return &Scalar[T]{
		target: target,
		name:   fmt.Sprintf("%T", *target),
		parse: func(raw string, out *T) (decodeOutcome, error) {
			v, ok := names[raw]
			if !ok {
				return decodeFailed, NewParseError(ErrorTypeInvalidEnum,
					"You have chosen an invalid input value: "+raw+
						". Please use one of: "+enumKeyList(names))
			}
			*out = v
			return decodeOK, nil
		},
	}
}

// ListValue is a container slot: every decoded element is appended to the
// target collection, never replacing earlier elements within one pass.
type ListValue[T any] struct {
	target *[]T
	tmp    T
	elem   *Scalar[T]
	check  func([]T) error
}

// List creates a container slot over any scalar constructor, e.g.
// List(&paths, String) or List(&counts, Int).
func List[T any](target *[]T, elem func(*T) *Scalar[T]) *ListValue[T] {
	l := &ListValue[T]{target: target}
	l.elem = elem(&l.tmp)
	return l
}

// Check attaches a validator run once against the whole collection.
func (l *ListValue[T]) Check(fn func([]T) error) *ListValue[T] {
	l.check = fn
	return l
}

func (l *ListValue[T]) decode(raw string) (decodeOutcome, error) {
	out, err := l.elem.decode(raw)
	if out == decodeOK {
		*l.target = append(*l.target, l.tmp)
	}
	return out, err
}

func (l *ListValue[T]) typeName() string { return l.elem.typeName() }

func (l *ListValue[T]) valueRange() string { return l.elem.valueRange() }

func (l *ListValue[T]) isContainer() bool { return true }

func (l *ListValue[T]) resetSlot() { *l.target = nil }

func (l *ListValue[T]) runCheck() error {
	if l.check == nil {
		return nil
	}
	return l.check(*l.target)
}

// enumKeyList renders "[k1, k2, ...]" for enum error messages.
func enumKeyList[T comparable](names map[string]T) string {
	type pair struct {
		key string
		val T
	}
	pairs := make([]pair, 0, len(names))
	for k, v := range names {
		pairs = append(pairs, pair{key: k, val: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if c := compareEnumValues(pairs[i].val, pairs[j].val); c != 0 {
			return c < 0
		}
		return pairs[i].key < pairs[j].key
	})

	keys := make([]string, len(pairs))
	for i, p := range pairs {
		keys[i] = p.key
	}
	return "[" + strings.Join(keys, ", ") + "]"
}

// compareEnumValues orders enum values when their underlying kind is
// ordered; unordered kinds report 0 so the key sort decides.
func compareEnumValues(a, b any) int {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch ra.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch {
		case ra.Int() < rb.Int():
			return -1
		case ra.Int() > rb.Int():
			return 1
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch {
		case ra.Uint() < rb.Uint():
			return -1
		case ra.Uint() > rb.Uint():
			return 1
		}
	case reflect.Float32, reflect.Float64:
		switch {
		case ra.Float() < rb.Float():
			return -1
		case ra.Float() > rb.Float():
			return 1
		}
	case reflect.String:
		return strings.Compare(ra.String(), rb.String())
	}
	return 0
}
