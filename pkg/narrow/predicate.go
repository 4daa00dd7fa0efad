package narrow

import (
	"math/big"
	"reflect"
	"time"

	"golang.org/x/exp/constraints"
)

// Predicate reports whether value belongs to T. A Predicate that
// returns true must only do so for values whose dynamic type is
// assignable to T; AsSafely relies on that to narrow the value.
type Predicate[T any] func(value any) bool

// Number is the claim of IsNumber. The narrowed value keeps its
// original integer or floating-point type.
type Number any

// Array is the claim of IsArray. The narrowed value keeps its original
// slice or array type.
type Array any

// IsString reports whether value is a string.
var IsString Predicate[string] = func(value any) bool {
	_, ok := value.(string)
	return ok
}

// IsBoolean reports whether value is a bool.
var IsBoolean Predicate[bool] = func(value any) bool {
	_, ok := value.(bool)
	return ok
}

// IsNumber reports whether value has an integer or floating-point
// kind. NaN and the infinities are numbers.
var IsNumber Predicate[Number] = func(value any) bool {
	return isNumericKind(reflect.ValueOf(value).Kind())
}

// IsSymbol reports whether value is a Symbol.
var IsSymbol Predicate[Symbol] = func(value any) bool {
	_, ok := value.(Symbol)
	return ok
}

// IsBigint reports whether value is a non-nil *big.Int.
var IsBigint Predicate[*big.Int] = func(value any) bool {
	b, ok := value.(*big.Int)
	return ok && b != nil
}

// IsUndefined reports whether value is absent: the interface itself
// is nil. A typed nil is not undefined, see IsNull.
//
// encoding/json decodes a JSON null into a nil interface, so a null
// read from a map[string]any or []any document is undefined here.
var IsUndefined Predicate[any] = func(value any) bool {
	return value == nil
}

// IsNull reports whether value is a nil reference held in a non-nil
// interface: a nil pointer, map, slice, channel, func or interface.
// A JSON null decoded into an any is a nil interface and never
// satisfies IsNull; check such input with IsUndefined.
var IsNull Predicate[any] = func(value any) bool {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.Interface,
		reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// IsDate reports whether value is a time.Time holding a real instant.
// The zero Time, which is what a failed parse yields, is rejected.
var IsDate Predicate[time.Time] = func(value any) bool {
	t, ok := value.(time.Time)
	return ok && !t.IsZero()
}

// IsStringArray reports whether value is a slice or array of strings.
var IsStringArray = IsArray(IsString)

// IsArray returns a Predicate that reports whether a value is a slice
// or array whose elements all satisfy elem. An empty sequence passes
// for any elem. A nil slice is null, not an array.
func IsArray[E any](elem Predicate[E]) Predicate[Array] {
	return func(value any) bool {
		if items, ok := value.([]any); ok {
			if items == nil {
				return false
			}
			for _, item := range items {
				if elem == nil || !elem(item) {
					return false
				}
			}
			return true
		}

		rv := reflect.ValueOf(value)
		switch rv.Kind() {
		case reflect.Slice:
			if rv.IsNil() {
				return false
			}
		case reflect.Array:
		default:
			return false
		}

		for i := range rv.Len() {
			if elem == nil || !elem(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	}
}

// IsNumberOf returns a Predicate that matches exactly one numeric type
// N, so the narrowed value can be used as an N directly.
func IsNumberOf[N constraints.Integer | constraints.Float]() Predicate[N] {
	return func(value any) bool {
		_, ok := value.(N)
		return ok
	}
}

// Erase returns p with its claim dropped, for storing predicates of
// different claims side by side.
func Erase[T any](p Predicate[T]) Predicate[any] {
	if p == nil {
		return nil
	}
	return func(value any) bool {
		return p(value)
	}
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16,
		reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16,
		reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
