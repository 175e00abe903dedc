package stringify

import (
	"fmt"
	"reflect"
	"strconv"
)

// Interface renders an arbitrary value.
func Interface(value any) string {
	switch typedValue := value.(type) {
	case nil:
		return "<nil>"
	case bool:
		return strconv.FormatBool(typedValue)
	case string:
		return typedValue
	case int:
		return strconv.Itoa(typedValue)
	case uint64:
		return strconv.FormatUint(typedValue, 10)
	case fmt.Stringer:
		return typedValue.String()
	}

	reflectValue := reflect.ValueOf(value)
	switch reflectValue.Kind() {
	case reflect.Slice, reflect.Array:
		return sliceReflect(reflectValue)
	default:
		return fmt.Sprint(value)
	}
}
