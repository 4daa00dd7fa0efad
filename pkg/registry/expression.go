package registry

import (
	"errors"
	"fmt"
	"strings"

	"digital.vasic.assafely/pkg/narrow"
)

const unionSeparator = "|"

// ErrInvalidExpression is returned for expressions that are empty
// or name more than two predicates.
var ErrInvalidExpression = errors.New("invalid expression")

// Expression names one predicate, or two predicates checked as a
// union.
type Expression struct {
	First  string
	Second string
}

// ParseExpression parses "name" or "first|second". Spaces around
// names are ignored.
//
// Examples:
//
//	"string"           -> {First: "string"}
//	"string|undefined" -> {First: "string", Second: "undefined"}
//	"a|b|c"            -> error
func ParseExpression(s string) (Expression, error) {
	parts := strings.Split(s, unionSeparator)
	if len(parts) > 2 {
		return Expression{}, fmt.Errorf(
			"%w %q: unions take exactly two members",
			ErrInvalidExpression, s,
		)
	}

	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return Expression{}, fmt.Errorf(
				"%w %q: empty member", ErrInvalidExpression, s,
			)
		}
	}

	expr := Expression{First: parts[0]}
	if len(parts) == 2 {
		expr.Second = parts[1]
	}
	return expr, nil
}

// IsUnion reports whether e names two predicates.
func (e Expression) IsUnion() bool {
	return e.Second != ""
}

func (e Expression) String() string {
	if e.IsUnion() {
		return e.First + unionSeparator + e.Second
	}
	return e.First
}

// Resolve looks up the predicates named by e in reg. A single name
// resolves to a pair whose Second is nil.
func Resolve(
	reg Registry,
	e Expression,
) (narrow.Pair[any, any], error) {
	var pair narrow.Pair[any, any]

	first, ok := reg.Lookup(e.First)
	if !ok {
		return narrow.Pair[any, any]{}, fmt.Errorf(
			"%w: %s", ErrUnknownPredicate, e.First,
		)
	}
	pair.First = first

	if e.IsUnion() {
		second, ok := reg.Lookup(e.Second)
		if !ok {
			return narrow.Pair[any, any]{}, fmt.Errorf(
				"%w: %s", ErrUnknownPredicate, e.Second,
			)
		}
		pair.Second = second
	}
	return pair, nil
}
