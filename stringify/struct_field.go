package stringify

// StructField is a named value rendered by Struct.
type StructField struct {
	name  string
	value any
}

func NewStructField(name string, value any) *StructField {
	return &StructField{
		name:  name,
		value: value,
	}
}

func (s *StructField) String() string {
	return s.name + ": " + Interface(s.value)
}
