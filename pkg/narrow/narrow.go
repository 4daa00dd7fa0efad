package narrow

// AsSafely returns value narrowed to T when p reports true for it.
// Otherwise it returns orElse(value) when orElse is non-nil, and an
// *AssertionError when it is nil. A nil p never matches.
//
// The narrowed value is value itself; AsSafely never copies or
// converts it.
func AsSafely[T any](
	value any,
	p Predicate[T],
	orElse func(value any) T,
) (T, error) {
	if p != nil && p(value) {
		if t, ok := downcast[T](value); ok {
			return t, nil
		}
	}

	if orElse != nil {
		return orElse(value), nil
	}

	var zero T
	return zero, newAssertionError(value)
}

// MustAsSafely is like AsSafely without a fallback but panics with the
// *AssertionError instead of returning it.
func MustAsSafely[T any](value any, p Predicate[T]) T {
	t, err := AsSafely(value, p, nil)
	if err != nil {
		panic(err)
	}
	return t
}

// Pair is an ordered pair of predicates checked as a union. The zero
// Pair is empty and matches nothing.
type Pair[A, B any] struct {
	First  Predicate[A]
	Second Predicate[B]
}

// Either builds the Pair (first, second).
func Either[A, B any](first Predicate[A], second Predicate[B]) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// IsEmpty reports whether neither predicate is set.
func (p Pair[A, B]) IsEmpty() bool {
	return p.First == nil && p.Second == nil
}

// AsEither returns value narrowed to the union of A and B when either
// predicate of pair reports true for it. First is checked before
// Second, and Second is skipped once First matches. An empty pair
// never matches. On failure AsEither behaves as AsSafely does.
//
// Unions have at most two members.
func AsEither[A, B any](
	value any,
	pair Pair[A, B],
	orElse func(value any) Union[A, B],
) (Union[A, B], error) {
	if !pair.IsEmpty() {
		if pair.First != nil && pair.First(value) {
			if _, ok := downcast[A](value); ok {
				return Union[A, B]{value: value, branch: branchFirst}, nil
			}
		}
		if pair.Second != nil && pair.Second(value) {
			if _, ok := downcast[B](value); ok {
				return Union[A, B]{value: value, branch: branchSecond}, nil
			}
		}
	}

	if orElse != nil {
		return orElse(value), nil
	}

	return Union[A, B]{}, newAssertionError(value)
}

type branch uint8

const (
	branchNone branch = iota
	branchFirst
	branchSecond
)

// Union holds a value narrowed to A or B, tagged with the branch that
// matched. A Union produced by a fallback may match neither.
type Union[A, B any] struct {
	value  any
	branch branch
}

// UnionFirst returns a Union holding a in its first branch.
func UnionFirst[A, B any](a A) Union[A, B] {
	return Union[A, B]{value: a, branch: branchFirst}
}

// UnionSecond returns a Union holding b in its second branch.
func UnionSecond[A, B any](b B) Union[A, B] {
	return Union[A, B]{value: b, branch: branchSecond}
}

// UnionOther returns a Union holding v in neither branch.
func UnionOther[A, B any](v any) Union[A, B] {
	return Union[A, B]{value: v, branch: branchNone}
}

// First returns the value as an A if the first predicate matched.
func (u Union[A, B]) First() (A, bool) {
	if u.branch != branchFirst {
		var zero A
		return zero, false
	}
	return downcast[A](u.value)
}

// Second returns the value as a B if the second predicate matched.
func (u Union[A, B]) Second() (B, bool) {
	if u.branch != branchSecond {
		var zero B
		return zero, false
	}
	return downcast[B](u.value)
}

// Value returns the held value whatever the branch.
func (u Union[A, B]) Value() any {
	return u.value
}

// downcast is value.(T), extended so that an absent value narrows to
// the nil of an interface T.
func downcast[T any](value any) (T, bool) {
	if t, ok := value.(T); ok {
		return t, true
	}

	var zero T
	if value == nil && any(zero) == nil {
		return zero, true
	}
	return zero, false
}
