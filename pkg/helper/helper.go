package helper

import (
	"reflect"
	"strings"
)

// ColumnMap reads the `db` tags of a struct (or pointer to one) and returns
// column -> value for every field that was supplied. Nil pointers, slices
// and maps are treated as not supplied; untagged fields and db:"-" are
// skipped. Pointer values are dereferenced.
func ColumnMap(v any) map[string]any {
	out := map[string]any{}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return out
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return out
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}

		column, _, _ := strings.Cut(field.Tag.Get("db"), ",")
		if column == "" || column == "-" {
			continue
		}

		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.Pointer:
			if fv.IsNil() {
				continue
			}
			out[column] = fv.Elem().Interface()
		case reflect.Slice, reflect.Map, reflect.Interface:
			if fv.IsNil() {
				continue
			}
			out[column] = fv.Interface()
		default:
			out[column] = fv.Interface()
		}
	}

	return out
}
