package csvtable

import (
	"fmt"
	"reflect"
)

// HeadersFromModel extracts the header row for a table by reflecting on a
// struct definition. Each exported field must carry a `csv:"Column Name"` tag;
// tag order is column order.
func HeadersFromModel(model interface{}) ([]string, error) {
	t := reflect.TypeOf(model)

	// Handle pointer to struct
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("model must be a struct, got %s", t.Kind())
	}

	headers := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		columnName := field.Tag.Get("csv")
		if columnName == "" {
			return nil, fmt.Errorf("field %s.%s missing 'csv' tag", t.Name(), field.Name)
		}

		headers = append(headers, columnName)
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("struct %s has no fields", t.Name())
	}

	return headers, nil
}
