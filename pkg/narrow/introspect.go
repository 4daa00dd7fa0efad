package narrow

import (
	"fmt"
	"math/big"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// TypeTag returns the runtime type tag of value: "undefined",
// "string", "boolean", "number", "bigint", "symbol", "function" or
// "object". A value is tagged "string", "boolean" or "bigint" only
// when IsString, IsBoolean or IsBigint accepts it, so named string and
// bool types, json.Number and big.Int values are objects. Every
// integer and float kind is a "number", as for IsNumber. A typed nil is
// an "object". TypeTag never panics.
func TypeTag(value any) string {
	switch v := value.(type) {
	case nil:
		return "undefined"
	case string:
		return "string"
	case bool:
		return "boolean"
	case *big.Int:
		if v == nil {
			return "object"
		}
		return "bigint"
	case Symbol:
		return "symbol"
	}

	rv := reflect.ValueOf(value)
	switch k := rv.Kind(); {
	case isNumericKind(k):
		return "number"
	case k == reflect.Func && !rv.IsNil():
		return "function"
	}
	return "object"
}

// Keys returns the key names of value. Map keys are formatted with
// %v and sorted. Struct fields (through at most one pointer) are
// listed in declaration order, exported ones only, under their json
// tag name when one is set; fields tagged "-" are skipped. Slices and
// arrays yield their indices. Every other value, nil included, has no
// keys. Keys never panics.
func Keys(value any) []string {
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		keys := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			keys = append(keys, fmt.Sprint(iter.Key().Interface()))
		}
		slices.Sort(keys)
		return keys
	case reflect.Struct:
		return structKeys(rv.Type())
	case reflect.Slice, reflect.Array:
		keys := make([]string, rv.Len())
		for i := range keys {
			keys[i] = strconv.Itoa(i)
		}
		return keys
	}
	return nil
}

func structKeys(t reflect.Type) []string {
	var keys []string
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}
		keys = append(keys, name)
	}
	return keys
}
