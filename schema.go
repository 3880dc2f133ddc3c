package restify

import (
	"reflect"
	"strings"

	"github.com/ettle/strcase"
	"github.com/uptrace/bun"
)

// idField is the JSON name of the record identifier.
const idField = "id"

func typeOf[T any]() reflect.Type {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// fieldsForType maps the model's JSON field names to column names. The JSON
// name comes from the json tag (falling back to the Go name), the column from
// the bun tag (falling back to snake case). Relation fields and fields hidden
// from JSON are excluded, so they can never be filtered or sorted on.
func fieldsForType(t reflect.Type) map[string]string {
	out := map[string]string{}
	if t.Kind() != reflect.Struct {
		return out
	}
	collectFields(t, out)
	return out
}

func collectFields(t reflect.Type, out map[string]string) {
	baseModel := reflect.TypeOf(bun.BaseModel{})

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		if f.Anonymous {
			ft := f.Type
			for ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft == baseModel {
				continue
			}
			if ft.Kind() == reflect.Struct {
				collectFields(ft, out)
			}
			continue
		}

		if !f.IsExported() {
			continue
		}

		bunTag := strings.Split(f.Tag.Get("bun"), ",")[0]
		if strings.HasPrefix(bunTag, "rel:") {
			continue
		}

		jsonName := strings.Split(f.Tag.Get("json"), ",")[0]
		if jsonName == "-" {
			continue
		}
		if jsonName == "" {
			jsonName = f.Name
		}

		column := bunTag
		if column == "" {
			column = strcase.ToSnake(f.Name)
		}

		out[jsonName] = column
	}
}

// resourceSlug derives the default resource name for a model type.
func resourceSlug(t reflect.Type) string {
	return strcase.ToKebab(t.Name())
}

// extensionSlug builds a stable route-name suffix for an extension descriptor.
func extensionSlug(method Method, path string) string {
	cleaned := strings.NewReplacer("/", " ", ":", " ").Replace(path)
	parts := append([]string{strings.ToLower(string(method))}, strings.Fields(cleaned)...)
	return strcase.ToKebab(strings.Join(parts, " "))
}
