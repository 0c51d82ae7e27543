package xconfig

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func applyDefaultTagsRecursive(v reflect.Value) error {
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if field.Kind() == reflect.Struct {
			if err := applyDefaultTagsRecursive(field); err != nil {
				return err
			}
			continue
		}

		defaultValue, ok := fieldType.Tag.Lookup("default")
		if !ok || !field.IsZero() {
			continue
		}

		if err := setValueFromString(field, defaultValue); err != nil {
			return fmt.Errorf("invalid default for field %s: %w", fieldType.Name, err)
		}
	}

	return nil
}

func setValueFromString(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		val, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean value %q", value)
		}
		field.SetBool(val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		val, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value %q", value)
		}
		if field.OverflowInt(val) {
			return fmt.Errorf("integer value %q overflows %s", value, field.Type())
		}
		field.SetInt(val)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %s", field.Type())
		}
		field.Set(reflect.ValueOf(parseCommaSeparated(value)).Convert(field.Type()))
	default:
		return fmt.Errorf("unsupported field type %s", field.Kind())
	}

	return nil
}

func parseCommaSeparated(value string) []string {
	var result []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
