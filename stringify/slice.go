package stringify

import (
	"reflect"
	"strings"

	"github.com/kr/text"
)

func sliceReflect(value reflect.Value) (result string) {
	result += "["

	newLineVersion := false
	for i := 0; i < value.Len(); i++ {
		itemString := Interface(value.Index(i).Interface())
		if strings.Contains(itemString, "\n") {
			if !newLineVersion {
				result += "\n"

				newLineVersion = true
			}
			result += text.Indent(itemString+",\n", strings.Repeat(" ", IndentationSize))
		} else {
			result += itemString + ", "
		}
	}

	if !newLineVersion && len(result) >= 2 {
		result = result[:len(result)-2]
	}

	return result + "]"
}
