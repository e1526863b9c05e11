// Package csvtable maps CSV files with a header row onto csv-tagged structs.
// It is deliberately tolerant on the read side: missing cells become zero
// values, unknown columns are ignored, and no row-level validation happens
// here. Writes always rewrite the whole file and flush before returning.
package csvtable

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// ReadModels reads all rows of the file at path and maps them to structs of
// type T using the header row and the struct's csv tags. A missing file is
// reported via the wrapped os.IsNotExist error so callers can decide whether
// that is fatal.
func ReadModels[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open table %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // rows may be ragged

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", path, err)
	}

	if len(records) < 2 {
		// Need at least a header row and one data row
		return []T{}, nil
	}

	headers := records[0]
	// Spreadsheet exports often carry a UTF-8 BOM on the first header cell
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], "\ufeff")
	}
	dataRows := records[1:]

	var model T
	t := reflect.TypeOf(model)

	// Build mapping of column name to index
	columnIndexes := make(map[string]int)
	for i, header := range headers {
		columnIndexes[header] = i
	}

	// Build mapping of column name to struct field
	fieldMap := make(map[string]reflect.StructField)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		columnName := field.Tag.Get("csv")
		if columnName != "" {
			fieldMap[columnName] = field
		}
	}

	results := make([]T, 0, len(dataRows))
	for rowIdx, row := range dataRows {
		result := reflect.New(t).Elem()

		for columnName, colIdx := range columnIndexes {
			field, ok := fieldMap[columnName]
			if !ok {
				// Column doesn't map to a field, skip it
				continue
			}

			if colIdx >= len(row) {
				// Cell is absent in this row
				continue
			}

			if err := setFieldValue(result.FieldByName(field.Name), row[colIdx]); err != nil {
				return nil, fmt.Errorf("%s row %d, column %s: %w", path, rowIdx+2, columnName, err)
			}
		}

		results = append(results, result.Interface().(T))
	}

	return results, nil
}

// WriteModels rewrites the file at path with a header row followed by one row
// per model. The file is synced to storage before the function returns.
func WriteModels[T any](path string, models []T) error {
	var model T
	headers, err := HeadersFromModel(model)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}

	t := reflect.TypeOf(model)
	for _, m := range models {
		v := reflect.ValueOf(m)
		row := make([]string, 0, t.NumField())

		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Tag.Get("csv") == "" {
				continue
			}
			row = append(row, formatFieldValue(v.Field(i)))
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush table %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync table %s: %w", path, err)
	}

	return nil
}

// EnsureFile creates a header-only file at path if no file exists there yet.
func EnsureFile(path string, headers []string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat table %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create table %s: %w", path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", path, err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush table %s: %w", path, err)
	}

	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync table %s: %w", path, err)
	}

	return nil
}

// setFieldValue converts a CSV cell to the appropriate Go type and sets it on
// the field. An empty cell always maps to the field's zero value.
func setFieldValue(field reflect.Value, cell string) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(cell)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cell == "" {
			field.SetInt(0)
		} else {
			intVal, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse int: %w", err)
			}
			field.SetInt(intVal)
		}

	case reflect.Float32, reflect.Float64:
		if cell == "" {
			field.SetFloat(0)
		} else {
			floatVal, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return fmt.Errorf("failed to parse float: %w", err)
			}
			field.SetFloat(floatVal)
		}

	case reflect.Bool:
		if cell == "" {
			field.SetBool(false)
		} else {
			boolVal, err := strconv.ParseBool(strings.TrimSpace(cell))
			if err != nil {
				return fmt.Errorf("failed to parse bool: %w", err)
			}
			field.SetBool(boolVal)
		}

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// formatFieldValue renders a struct field as a CSV cell.
func formatFieldValue(field reflect.Value) string {
	switch field.Kind() {
	case reflect.String:
		return field.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(field.Int(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(field.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(field.Bool())
	default:
		return fmt.Sprint(field.Interface())
	}
}
