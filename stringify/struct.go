package stringify

import (
	"strings"

	"github.com/kr/text"
)

// Struct renders a struct with the given name and fields, one field per line.
func Struct(name string, fields ...*StructField) string {
	return structBuilder{
		name:   name,
		fields: fields,
	}.String()
}

type structBuilder struct {
	name   string
	fields []*StructField
}

func (s structBuilder) String() string {
	var builder strings.Builder

	builder.WriteString(s.name + " {\n")
	for _, field := range s.fields {
		builder.WriteString(text.Indent(field.String()+"\n", strings.Repeat(" ", IndentationSize)))
	}
	builder.WriteString("}")

	return builder.String()
}
