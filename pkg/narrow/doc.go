// Package narrow provides runtime type assertion for loosely typed
// values. A Predicate pairs a pure boolean test with a type claim;
// AsSafely applies it to a value of type any and returns the value
// narrowed to the claimed type, the result of a fallback, or an
// *AssertionError.
//
//	name, err := narrow.AsSafely(input["name"], narrow.IsString, nil)
//	if err != nil {
//		return err
//	}
//
// The union form checks a value against exactly two predicates:
//
//	u, err := narrow.AsEither(v, narrow.Either(narrow.IsString, narrow.IsUndefined), nil)
//
// Absent values are undefined, typed nils are null. A JSON null
// decoded into an any is absent, so IsUndefined matches it and IsNull
// does not:
//
//	var doc map[string]any
//	_ = json.Unmarshal([]byte(`{"a":null}`), &doc)
//	narrow.IsUndefined(doc["a"]) // true
//	narrow.IsNull(doc["a"])      // false
//
// Every predicate in this package is total: it returns false instead of
// panicking, whatever the input.
package narrow
