package scoped

import (
	"reflect"
	"strings"
	"unicode"
)

// structColumns lists the columns pgx.RowToStructByName maps onto T: the `db`
// tag of every exported field, or the snake_cased field name when untagged.
// Fields tagged `db:"-"` are skipped and untagged embedded structs are
// flattened. Returns nil if T is not a struct.
func structColumns[T any]() []string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	return appendStructColumns(nil, t)
}

func appendStructColumns(cols []string, t reflect.Type) []string {
	for i := range t.NumField() {
		f := t.Field(i)
		tag, tagged := f.Tag.Lookup("db")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if f.Anonymous && !tagged {
			ft := f.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				cols = appendStructColumns(cols, ft)
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = snakeCase(f.Name)
		}
		cols = append(cols, name)
	}
	return cols
}

// snakeCase turns "SiteID" into "site_id".
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
